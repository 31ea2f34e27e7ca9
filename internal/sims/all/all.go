// Package all links every built-in sim into the core registry.
package all

import (
	_ "cage/internal/sims/ants"
	_ "cage/internal/sims/briansbrain"
	_ "cage/internal/sims/chain"
	_ "cage/internal/sims/cyclic"
	_ "cage/internal/sims/elementary"
	_ "cage/internal/sims/lineartotal"
	_ "cage/internal/sims/packard"
	_ "cage/internal/sims/reduction"
	_ "cage/internal/sims/rug"
	_ "cage/internal/sims/stepping"
	_ "cage/internal/sims/sugar"
	_ "cage/pkg/sims/life"
)

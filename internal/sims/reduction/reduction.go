// Package reduction runs two-state reduction automata on a torus. On a von
// Neumann torus "or" grows diamonds and "xor" is the parity rule; on a
// Moore torus "or" grows squares.
package reduction

import (
	"fmt"
	"strings"

	"cage/internal/core"
	"cage/internal/initializer"
	"cage/pkg/cage"
)

// Operators are the supported reductions by name.
var Operators = map[string]func(acc, s uint8) uint8{
	"or":  cage.Or,
	"xor": cage.Xor,
	"and": cage.And,
}

// Neighborhoods are the supported maps by name.
var Neighborhoods = map[string]func(w, h int) *cage.Map{
	"vonneumann": cage.NewVonNeumannMap,
	"moore":      cage.NewMooreMap,
}

// Config holds parameters for a reduction automaton.
type Config struct {
	Width  int
	Height int
	Op     string
	Hood   string
	Seeds  int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 160, Height: 120, Op: "xor", Hood: "vonneumann", Seeds: 5}
}

// SquaresConfig is the "or" rule on a Moore torus.
func SquaresConfig() Config {
	c := DefaultConfig()
	c.Op = "or"
	c.Hood = "moore"
	return c
}

// FromMap populates a Config from a string map, starting at base.
func FromMap(base Config, cfg map[string]string) Config {
	c := base
	c.Width = core.IntFrom(cfg, "w", c.Width, 1)
	c.Height = core.IntFrom(cfg, "h", c.Height, 1)
	c.Op = strings.ToLower(core.StringFrom(cfg, "op", c.Op))
	c.Hood = strings.ToLower(core.StringFrom(cfg, "hood", c.Hood))
	c.Seeds = core.IntFrom(cfg, "seeds", c.Seeds, 0)
	return c
}

// New creates the sim under name. It fails for an unknown operator or
// neighborhood.
func New(name string, c Config) (*core.Engine, error) {
	op, ok := Operators[c.Op]
	if !ok {
		return nil, fmt.Errorf("%s: unknown op %q", name, c.Op)
	}
	newMap, ok := Neighborhoods[c.Hood]
	if !ok {
		return nil, fmt.Errorf("%s: unknown hood %q", name, c.Hood)
	}
	params := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		core.GridParams(c.Width, c.Height),
		{Name: "Rule", Params: []core.Parameter{
			core.StringParam("op", "Operator", c.Op),
			core.StringParam("hood", "Neighborhood", c.Hood),
			core.IntParam("seeds", "Seed cells", c.Seeds),
		}},
	}}
	return core.NewEngine(name, params, func(rng *cage.RNG) (*cage.Automaton, error) {
		a, err := cage.NewSynchronous(newMap(c.Width, c.Height), 2, cage.Reduction{Op: op})
		if err != nil {
			return nil, err
		}
		return a, initializer.Seed{Count: c.Seeds, RNG: rng}.Initialize(a)
	}), nil
}

func init() {
	core.Register("reduction", func(cfg map[string]string) (core.Sim, error) {
		return New("reduction", FromMap(DefaultConfig(), cfg))
	})
	core.Register("squares", func(cfg map[string]string) (core.Sim, error) {
		return New("squares", FromMap(SquaresConfig(), cfg))
	})
}

// Package packard implements Packard's averaging automaton over 256 states.
package packard

import (
	"cage/internal/core"
	"cage/internal/initializer"
	"cage/pkg/cage"
)

// States is fixed by the rule.
const States = 256

// Config holds parameters for the Packard automaton.
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config { return Config{Width: 160, Height: 120} }

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Width = core.IntFrom(cfg, "w", c.Width, 1)
	c.Height = core.IntFrom(cfg, "h", c.Height, 1)
	return c
}

// Rule is the floor of the inclusive Moore average.
func Rule(m *cage.Map, a cage.Address) uint8 {
	return uint8(m.InclusiveSum(a) / 9)
}

// New creates the sim for the configuration.
func New(c Config) *core.Engine {
	params := core.ParameterSnapshot{Groups: []core.ParameterGroup{core.GridParams(c.Width, c.Height)}}
	return core.NewEngine("packard", params, func(rng *cage.RNG) (*cage.Automaton, error) {
		a, err := cage.NewSynchronous(cage.NewMooreMap(c.Width, c.Height), States, cage.RuleFunc(Rule))
		if err != nil {
			return nil, err
		}
		return a, initializer.Random{RNG: rng}.Initialize(a)
	})
}

func init() {
	core.Register("packard", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg)), nil
	})
}

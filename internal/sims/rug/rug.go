// Package rug implements the rug rule: each cell becomes one more than the
// average of its Moore neighbors, modulo the state count.
package rug

import (
	"cage/internal/core"
	"cage/internal/initializer"
	"cage/pkg/cage"
)

// Config holds parameters for the rug automaton.
type Config struct {
	Width  int
	Height int
	States int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 160, Height: 120, States: 26}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Width = core.IntFrom(cfg, "w", c.Width, 1)
	c.Height = core.IntFrom(cfg, "h", c.Height, 1)
	if s := core.IntFrom(cfg, "states", c.States, 2); s <= 256 {
		c.States = s
	}
	return c
}

// Rule returns the rug transition for the given state count.
func Rule(states int) cage.RuleFunc {
	return func(m *cage.Map, a cage.Address) uint8 {
		return uint8((m.Average(a) + 1) % states)
	}
}

// New creates the sim for the configuration.
func New(c Config) *core.Engine {
	params := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		core.GridParams(c.Width, c.Height),
		{Name: "Rule", Params: []core.Parameter{core.IntParam("states", "States", c.States)}},
	}}
	return core.NewEngine("rug", params, func(rng *cage.RNG) (*cage.Automaton, error) {
		a, err := cage.NewSynchronous(cage.NewMooreMap(c.Width, c.Height), c.States, Rule(c.States))
		if err != nil {
			return nil, err
		}
		return a, initializer.Random{RNG: rng}.Initialize(a)
	})
}

func init() {
	core.Register("rug", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg)), nil
	})
}

// Package stepping implements the stepping stone model: with probability
// 1-threshold a cell copies the state of a random von Neumann neighbor.
package stepping

import (
	"cage/internal/core"
	"cage/internal/initializer"
	"cage/pkg/cage"
)

// Config holds parameters for the stepping stone model.
type Config struct {
	Width     int
	Height    int
	States    int
	Threshold float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 160, Height: 120, States: 4, Threshold: 0.9}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Width = core.IntFrom(cfg, "w", c.Width, 1)
	c.Height = core.IntFrom(cfg, "h", c.Height, 1)
	if s := core.IntFrom(cfg, "states", c.States, 2); s <= 256 {
		c.States = s
	}
	c.Threshold = core.FloatFrom(cfg, "threshold", c.Threshold, 0, 1)
	return c
}

// Rule draws all randomness from rng, so a seeded rng reproduces a run.
func Rule(threshold float64, rng *cage.RNG) cage.RuleFunc {
	return func(m *cage.Map, a cage.Address) uint8 {
		if rng.Float64() > threshold {
			return m.RandomState(a, rng)
		}
		return m.Get(a)
	}
}

// New creates the sim for the configuration.
func New(c Config) *core.Engine {
	params := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		core.GridParams(c.Width, c.Height),
		{Name: "Rule", Params: []core.Parameter{
			core.IntParam("states", "States", c.States),
			core.FloatParam("threshold", "Keep probability", c.Threshold),
		}},
	}}
	return core.NewEngine("stepping", params, func(rng *cage.RNG) (*cage.Automaton, error) {
		m := cage.NewVonNeumannMap(c.Width, c.Height)
		a, err := cage.NewSynchronous(m, c.States, Rule(c.Threshold, rng))
		if err != nil {
			return nil, err
		}
		return a, initializer.Random{RNG: rng}.Initialize(a)
	})
}

func init() {
	core.Register("stepping", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg)), nil
	})
}

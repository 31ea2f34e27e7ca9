// Package cyclic implements the Demons of Cycling Space: a cell advances to
// the next state, modulo the state count, when any von Neumann neighbor is
// already there.
package cyclic

import (
	"cage/internal/core"
	"cage/internal/initializer"
	"cage/pkg/cage"
)

// Config holds parameters for the cyclic automaton.
type Config struct {
	Width  int
	Height int
	States int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 160, Height: 120, States: 7}
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

// Rule returns the cyclic transition for the given state count.
func Rule(states int) cage.RuleFunc {
	return func(m *cage.Map, a cage.Address) uint8 {
		state := m.Get(a)
		next := uint8((int(state) + 1) % states)
		if m.HasWith(a, next) {
			return next
		}
		return state
	}
}

// New creates the sim for the configuration.
func New(c Config) *core.Engine {
	params := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		core.GridParams(c.Width, c.Height),
		{Name: "Rule", Params: []core.Parameter{core.IntParam("states", "States", c.States)}},
	}}
	return core.NewEngine("cyclic", params, func(rng *cage.RNG) (*cage.Automaton, error) {
		a, err := cage.NewSynchronous(cage.NewVonNeumannMap(c.Width, c.Height), c.States, Rule(c.States))
		if err != nil {
			return nil, err
		}
		return a, initializer.Random{RNG: rng}.Initialize(a)
	})
}

func init() {
	core.Register("cyclic", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg)), nil
	})
}

// Package sugar implements a Belousov-Zhabotinsky style reaction: healthy
// cells catch infection from their neighbors, infected cells grow sicker
// and sick cells recover.
package sugar

import (
	"cage/internal/core"
	"cage/internal/initializer"
	"cage/pkg/cage"
)

const (
	// States is fixed by the rule.
	States = 100

	healthy = 0
	sick    = States - 1
	// infection is added to the neighborhood mean every generation.
	infection = 15
)

// Config holds parameters for the reaction.
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

// Rule is the reaction's transition on a Moore map.
func Rule(m *cage.Map, a cage.Address) uint8 {
	switch state := m.Get(a); state {
	case healthy:
		return uint8(m.CountNonZero(a)/2 + m.CountWith(a, sick)/3)
	case sick:
		return healthy
	default:
		next := m.InclusiveSum(a)/(m.CountNonZero(a)+1) + infection
		if next >= States {
			return sick
		}
		return uint8(next)
	}
}

// New creates the sim for the configuration.
func New(c Config) *core.Engine {
	params := core.ParameterSnapshot{Groups: []core.ParameterGroup{core.GridParams(c.Width, c.Height)}}
	return core.NewEngine("sugar", params, func(rng *cage.RNG) (*cage.Automaton, error) {
		a, err := cage.NewSynchronous(cage.NewMooreMap(c.Width, c.Height), States, cage.RuleFunc(Rule))
		if err != nil {
			return nil, err
		}
		return a, initializer.Random{RNG: rng}.Initialize(a)
	})
}

func init() {
	core.Register("sugar", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg)), nil
	})
}

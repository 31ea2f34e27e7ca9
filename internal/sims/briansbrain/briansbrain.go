package briansbrain

import (
	"cage/internal/core"
	"cage/internal/initializer"
	"cage/pkg/cage"
)

const (
	stateDead  = 0
	stateOn    = 1
	stateDying = 2
)

// Config holds parameters for Brian's Brain.
type Config struct {
	Width     int
	Height    int
	Frequency float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Frequency: 0.125}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Width = core.IntFrom(cfg, "w", c.Width, 1)
	c.Height = core.IntFrom(cfg, "h", c.Height, 1)
	c.Frequency = core.FloatFrom(cfg, "frequency", c.Frequency, 0, 1)
	return c
}

// Rule is the three-state Brian's Brain transition: firing cells become
// refractory, refractory cells die, and dead cells fire with exactly two
// firing neighbors.
func Rule(m *cage.Map, a cage.Address) uint8 {
	switch m.Get(a) {
	case stateOn:
		return stateDying
	case stateDying:
		return stateDead
	default:
		if m.CountWith(a, stateOn) == 2 {
			return stateOn
		}
		return stateDead
	}
}

// New creates a Brain simulation with the provided configuration.
func New(c Config) *core.Engine {
	params := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		core.GridParams(c.Width, c.Height),
		{Name: "Seeding", Params: []core.Parameter{core.FloatParam("frequency", "Initial density", c.Frequency)}},
	}}
	return core.NewEngine("briansbrain", params, func(rng *cage.RNG) (*cage.Automaton, error) {
		a, err := cage.NewSynchronous(cage.NewMooreMap(c.Width, c.Height), 3, cage.RuleFunc(Rule))
		if err != nil {
			return nil, err
		}
		return a, initializer.Random{Frequency: c.Frequency, RNG: rng}.Initialize(a)
	})
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg)), nil
	})
}

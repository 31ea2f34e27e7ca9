package elementary

import (
	"strconv"

	"cage/internal/core"
	"cage/internal/initializer"
	"cage/pkg/cage"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width int
	Rule  uint8
	// Timed stops the run after Width/2 generations, long enough for a
	// single seed to reach both edges.
	Timed bool
	// Wrap joins the ends of the line into a circle. Unwrapped lines read
	// the border value past either end.
	Wrap bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Rule: 110, Timed: true}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	c.Width = core.IntFrom(cfg, "w", c.Width, 3)
	if r := core.IntFrom(cfg, "rule", -1, 0); r >= 0 && r <= 255 {
		c.Rule = uint8(r)
	}
	c.Timed = core.StringFrom(cfg, "timed", "true") != "false"
	c.Wrap = core.StringFrom(cfg, "wrap", "false") == "true"
	return c
}

// Snapshot describes the configuration for display.
func (c Config) Snapshot() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		core.GridParams(c.Width, 1),
		{Name: "Rule", Params: []core.Parameter{
			core.IntParam("rule", "Wolfram code", int(c.Rule)),
			core.StringParam("timed", "Stop at half width", strconv.FormatBool(c.Timed)),
			core.StringParam("wrap", "Wrap around", strconv.FormatBool(c.Wrap)),
		}},
	}}
}

// Build returns a radius one line seeded with a single live cell in the
// middle.
func Build(c Config) (*cage.Automaton, error) {
	m := cage.NewLineMap(c.Width, 1)
	if c.Wrap {
		m = cage.NewRadialMap(c.Width, 1)
	}
	var opts []cage.Option
	if c.Timed {
		opts = append(opts, cage.WithRunning(cage.RunningForHalfLength))
	}
	a, err := cage.NewSynchronous(m, 2, cage.NewLinearCoded(c.Rule), opts...)
	if err != nil {
		return nil, err
	}
	if err := initializer.NewPoint().Initialize(a); err != nil {
		return nil, err
	}
	return a, nil
}

// New creates the sim for the given configuration. The seed is unused;
// every reset starts from the same single cell.
func New(c Config) *core.Engine {
	return core.NewEngine("elementary", c.Snapshot(), func(*cage.RNG) (*cage.Automaton, error) {
		return Build(c)
	})
}

func init() {
	core.Register("elementary", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg)), nil
	})
}

// Package life implements Conway's Game of Life and its outer totalistic
// relatives on a toroidal Moore map.
package life

import (
	"fmt"
	"strings"

	"cage/internal/core"
	"cage/internal/initializer"
	"cage/pkg/cage"
)

// Config holds parameters for the Life family.
type Config struct {
	Width     int
	Height    int
	Rule      string
	Frequency float64
	Template  string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 128, Height: 96, Rule: "conway", Frequency: 0.5}
}

// FromMap populates a Config from a string map. "rule" accepts a preset
// name or a B/S string such as "36/23".
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	c.Width = core.IntFrom(cfg, "w", c.Width, 1)
	c.Height = core.IntFrom(cfg, "h", c.Height, 1)
	c.Rule = core.StringFrom(cfg, "rule", c.Rule)
	c.Frequency = core.FloatFrom(cfg, "frequency", c.Frequency, 0, 1)
	c.Template = strings.ToLower(core.StringFrom(cfg, "template", c.Template))
	return c
}

// Snapshot describes the configuration for display.
func (c Config) Snapshot() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		core.GridParams(c.Width, c.Height),
		{
			Name: "Rule",
			Params: []core.Parameter{
				core.StringParam("rule", "Rule", c.Rule),
				core.FloatParam("frequency", "Initial density", c.Frequency),
				core.StringParam("template", "Template", c.Template),
			},
		},
	}}
}

// Build constructs a seeded Life automaton.
func Build(c Config, rng *cage.RNG) (*cage.Automaton, error) {
	m := cage.NewMooreMap(c.Width, c.Height)
	rule, err := cage.TotalisticFor(c.Rule, m.Neighborhood())
	if err != nil {
		return nil, err
	}
	a, err := cage.NewSynchronous(m, 2, rule)
	if err != nil {
		return nil, err
	}
	var seed initializer.Initializer = initializer.Random{Frequency: c.Frequency, RNG: rng}
	if c.Template != "" {
		t, ok := initializer.Templates[c.Template]
		if !ok {
			return nil, fmt.Errorf("unknown template %q", c.Template)
		}
		seed = t
	}
	if err := seed.Initialize(a); err != nil {
		return nil, err
	}
	return a, nil
}

// New returns a Life sim for the configuration.
func New(c Config) *core.Engine {
	return core.NewEngine("life", c.Snapshot(), func(rng *cage.RNG) (*cage.Automaton, error) {
		return Build(c, rng)
	})
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg)), nil
	})
}

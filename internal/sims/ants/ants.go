// Package ants registers the agent-driven sims: genome ants and Langton's
// virtual ants on a torus without a cell rule.
package ants

import (
	"fmt"

	"cage/internal/core"
	"cage/pkg/cage"
	"cage/pkg/cage/ant"
)

// Config holds parameters for the genome ant sim.
type Config struct {
	Width  int
	Height int
	Ants   int
	Colors int
	States int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 160, Height: 120, Ants: 1, Colors: 4, States: 2}
}

// FromMap populates a Config from a string map. Colors and states must be
// powers of two; that is checked when the genomes are built.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Width = core.IntFrom(cfg, "w", c.Width, 1)
	c.Height = core.IntFrom(cfg, "h", c.Height, 1)
	c.Ants = core.IntFrom(cfg, "ants", c.Ants, 1)
	c.Colors = core.IntFrom(cfg, "colors", c.Colors, 1)
	c.States = core.IntFrom(cfg, "states", c.States, 1)
	return c
}

func agentMap(w, h int) *cage.Map {
	return cage.NewMap(cage.NewTorus(w, h), cage.Null{})
}

// Build places c.Ants randomized ants at the centre of an empty torus.
func Build(c Config, rng *cage.RNG) (*cage.Automaton, error) {
	genomes := make([]*ant.Genome, c.Ants)
	for i := range genomes {
		g, err := ant.NewGenome(c.Colors, c.States)
		if err != nil {
			return nil, fmt.Errorf("ant %d: %w", i, err)
		}
		g.Randomize(rng)
		genomes[i] = g
	}
	a, err := cage.NewAgentAutomaton(agentMap(c.Width, c.Height), c.Colors)
	if err != nil {
		return nil, err
	}
	centre := a.Map().Center()
	for _, g := range genomes {
		if err := a.Add(ant.New(g, centre, 0)); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// New creates the genome ant sim.
func New(c Config) *core.Engine {
	params := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		core.GridParams(c.Width, c.Height),
		{Name: "Ants", Params: []core.Parameter{
			core.IntParam("ants", "Ants", c.Ants),
			core.IntParam("colors", "Colors", c.Colors),
			core.IntParam("states", "States", c.States),
		}},
	}}
	return core.NewEngine("ant", params, func(rng *cage.RNG) (*cage.Automaton, error) {
		return Build(c, rng)
	})
}

// VantConfig holds parameters for the vant sim.
type VantConfig struct {
	Width  int
	Height int
	Vants  int
}

// DefaultVantConfig returns the default configuration.
func DefaultVantConfig() VantConfig {
	return VantConfig{Width: 160, Height: 120, Vants: 1}
}

// VantFromMap populates a VantConfig from a string map.
func VantFromMap(cfg map[string]string) VantConfig {
	c := DefaultVantConfig()
	c.Width = core.IntFrom(cfg, "w", c.Width, 1)
	c.Height = core.IntFrom(cfg, "h", c.Height, 1)
	c.Vants = core.IntFrom(cfg, "vants", c.Vants, 1)
	return c
}

// BuildVants puts the first vant at the centre and the rest at random
// cells, all facing east.
func BuildVants(c VantConfig, rng *cage.RNG) (*cage.Automaton, error) {
	a, err := cage.NewAgentAutomaton(agentMap(c.Width, c.Height), 2)
	if err != nil {
		return nil, err
	}
	m := a.Map()
	for i := 0; i < c.Vants; i++ {
		loc := m.Center()
		if i > 0 {
			loc = m.Random(rng)
		}
		if err := a.Add(ant.NewVant(loc, 0)); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// NewVants creates the vant sim.
func NewVants(c VantConfig) *core.Engine {
	params := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		core.GridParams(c.Width, c.Height),
		{Name: "Vants", Params: []core.Parameter{core.IntParam("vants", "Vants", c.Vants)}},
	}}
	return core.NewEngine("vant", params, func(rng *cage.RNG) (*cage.Automaton, error) {
		return BuildVants(c, rng)
	})
}

func init() {
	core.Register("ant", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg)), nil
	})
	core.Register("vant", func(cfg map[string]string) (core.Sim, error) {
		return NewVants(VantFromMap(cfg)), nil
	})
}

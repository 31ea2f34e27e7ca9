// Package chain simulates a chain reaction. Firing cells may emit
// particles that land on nearby charged cells and set them firing in the
// following generation.
package chain

import (
	"slices"

	"cage/internal/core"
	"cage/internal/initializer"
	"cage/pkg/cage"
)

// Cell states.
const (
	Charged uint8 = iota
	Firing
	Fired

	States = 3
)

// Config holds parameters for the reaction.
type Config struct {
	Width       int
	Height      int
	Probability float64
	Particles   int
	Radius      int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 160, Height: 120, Probability: 0.8, Particles: 2, Radius: 2}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Width = core.IntFrom(cfg, "w", c.Width, 1)
	c.Height = core.IntFrom(cfg, "h", c.Height, 1)
	c.Probability = core.FloatFrom(cfg, "probability", c.Probability, 0, 1)
	c.Particles = core.IntFrom(cfg, "particles", c.Particles, 0)
	c.Radius = core.IntFrom(cfg, "radius", c.Radius, 1)
	return c
}

// Reaction holds the particles in flight between generations.
type Reaction struct {
	cfg       Config
	rng       *cage.RNG
	particles []cage.Address
}

// NewReaction returns an empty reaction drawing randomness from rng.
func NewReaction(c Config, rng *cage.RNG) *Reaction {
	return &Reaction{cfg: c, rng: rng}
}

// Pending returns the particles emitted during the current pass.
func (r *Reaction) Pending() []cage.Address { return r.particles }

// Next burns out firing cells, emitting particles on the way.
func (r *Reaction) Next(m *cage.Map, a cage.Address) uint8 {
	state := m.Get(a)
	if state != Firing {
		return state
	}
	r.fire(a)
	return Fired
}

func (r *Reaction) fire(a cage.Address) {
	if r.rng.Float64() >= r.cfg.Probability {
		return
	}
	span := 2*r.cfg.Radius + 1
	for i := 0; i < r.cfg.Particles; i++ {
		var d cage.Address
		for d == (cage.Address{}) {
			d = cage.At(r.rng.IntN(span)-r.cfg.Radius, r.rng.IntN(span)-r.cfg.Radius)
		}
		r.particles = append(r.particles, a.Add(d))
	}
}

// Land ignites every charged cell hit by a particle and clears the list.
func (r *Reaction) Land(a *cage.Automaton) error {
	m := a.Map()
	for _, p := range r.particles {
		at, ok := m.Normalize(p)
		if !ok || m.Get(at) != Charged {
			continue
		}
		if err := m.Set(at, Firing); err != nil {
			return err
		}
	}
	r.particles = r.particles[:0]
	return nil
}

// Burning reports whether any cell is still firing.
func Burning(a *cage.Automaton) bool {
	return slices.Contains(a.Map().Cells(), Firing)
}

// Build returns an asynchronous automaton on a torus with no
// neighborhood, ignited at the centre.
func Build(c Config, rng *cage.RNG) (*cage.Automaton, error) {
	r := NewReaction(c, rng)
	m := cage.NewMap(cage.NewTorus(c.Width, c.Height), cage.Null{})
	a, err := cage.NewAsynchronous(m, States, r, cage.WithBetween(r.Land), cage.WithRunning(Burning))
	if err != nil {
		return nil, err
	}
	return a, initializer.Point{State: Firing}.Initialize(a)
}

// New creates the sim for the configuration.
func New(c Config) *core.Engine {
	params := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		core.GridParams(c.Width, c.Height),
		{Name: "Reaction", Params: []core.Parameter{
			core.FloatParam("probability", "Fire probability", c.Probability),
			core.IntParam("particles", "Particles per firing", c.Particles),
			core.IntParam("radius", "Particle range", c.Radius),
		}},
	}}
	return core.NewEngine("chain", params, func(rng *cage.RNG) (*cage.Automaton, error) {
		return Build(c, rng)
	})
}

func init() {
	core.Register("chain", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg)), nil
	})
}

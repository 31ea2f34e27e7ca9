// Package initializer seeds a freshly constructed automaton before its
// first generation. Initializers only use the public Map accessors.
package initializer

import (
	"errors"
	"fmt"

	"cage/pkg/cage"
)

// ErrDoesNotFit is returned when a pattern is larger than the map.
var ErrDoesNotFit = errors.New("pattern does not fit the map")

// Initializer populates an automaton's map.
type Initializer interface {
	Initialize(a *cage.Automaton) error
}

// Func adapts a function to the Initializer interface.
type Func func(a *cage.Automaton) error

// Initialize calls f(a).
func (f Func) Initialize(a *cage.Automaton) error { return f(a) }

// Chain applies initializers in order.
func Chain(inits ...Initializer) Initializer {
	return Func(func(a *cage.Automaton) error {
		for _, in := range inits {
			if err := in.Initialize(a); err != nil {
				return err
			}
		}
		return nil
	})
}

// Point sets a single cell to State, the map center when At is nil. A
// zero State clears the cell.
type Point struct {
	At    *cage.Address
	State uint8
}

// NewPoint returns a Point that sets the center cell to 1.
func NewPoint() Point { return Point{State: 1} }

func (p Point) Initialize(a *cage.Automaton) error {
	m := a.Map()
	at := m.Center()
	if p.At != nil {
		at = *p.At
	}
	return m.Set(at, p.State)
}

// Random sets each cell, with probability Frequency, to a uniformly chosen
// non-zero state. A zero Frequency means (states-1)/states.
type Random struct {
	Frequency float64
	RNG       *cage.RNG
}

func (r Random) Initialize(a *cage.Automaton) error {
	states := a.States()
	if states < 2 {
		return nil
	}
	freq := r.Frequency
	if freq <= 0 {
		freq = float64(states-1) / float64(states)
	}
	m := a.Map()
	topo := m.Topology()
	for i := 0; i < topo.Cells(); i++ {
		if r.RNG.Float64() < freq {
			if err := m.Set(topo.AddressAt(i), uint8(r.RNG.IntN(states-1)+1)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Seed places Count cells of State at distinct random addresses.
type Seed struct {
	Count int
	State uint8
	RNG   *cage.RNG
}

func (s Seed) Initialize(a *cage.Automaton) error {
	m := a.Map()
	topo := m.Topology()
	if s.Count < 0 || s.Count > topo.Cells() {
		return fmt.Errorf("seed %d cells into %d: %w", s.Count, topo.Cells(), ErrDoesNotFit)
	}
	state := s.State
	if state == 0 {
		state = 1
	}
	for _, i := range s.RNG.Perm(topo.Cells())[:s.Count] {
		if err := m.Set(topo.AddressAt(i), state); err != nil {
			return err
		}
	}
	return nil
}

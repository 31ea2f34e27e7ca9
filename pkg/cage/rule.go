package cage

import "fmt"

// Rule computes the next state of one cell. It is consulted exactly once
// per cell per generation and must only read from m.
type Rule interface {
	Next(m *Map, a Address) uint8
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc func(m *Map, a Address) uint8

// Next calls f(m, a).
func (f RuleFunc) Next(m *Map, a Address) uint8 { return f(m, a) }

// Checker is implemented by rules that only work on some maps. Automaton
// constructors call Check once before the first generation.
type Checker interface {
	Check(m *Map) error
}

// Reduction folds Op over the neighbor states, seeding the fold with the
// first neighbor. The cell's own state is ignored.
type Reduction struct {
	Op func(acc, state uint8) uint8
}

// Common reduction operators.
var (
	Or  = func(acc, s uint8) uint8 { return acc | s }
	Xor = func(acc, s uint8) uint8 { return acc ^ s }
	And = func(acc, s uint8) uint8 { return acc & s }
)

func (r Reduction) Next(m *Map, a Address) uint8 {
	ns := m.Neighbors(a)
	acc := m.Get(ns[0])
	for _, n := range ns[1:] {
		acc = r.Op(acc, m.Get(n))
	}
	return acc
}

func (r Reduction) Check(m *Map) error {
	if m.Neighborhood().Count() == 0 {
		return fmt.Errorf("reduction: %w", ErrNullNeighborhood)
	}
	return nil
}

// LinearCoded is the two-state, radius one family of one-dimensional
// rules named by an 8-bit code. Bit i of the code is the next state for
// the neighborhood whose (left, center, right) states spell i in binary.
type LinearCoded struct {
	table [2][2][2]uint8
}

// NewLinearCoded decodes code into a lookup table.
func NewLinearCoded(code uint8) *LinearCoded {
	r := &LinearCoded{}
	i := 0
	for left := 0; left < 2; left++ {
		for center := 0; center < 2; center++ {
			for right := 0; right < 2; right++ {
				r.table[left][center][right] = (code >> i) & 1
				i++
			}
		}
	}
	return r
}

// Code re-encodes the lookup table.
func (r *LinearCoded) Code() uint8 {
	var code uint8
	i := 0
	for left := 0; left < 2; left++ {
		for center := 0; center < 2; center++ {
			for right := 0; right < 2; right++ {
				code |= r.table[left][center][right] << i
				i++
			}
		}
	}
	return code
}

// Lookup returns the table entry for one neighborhood.
func (r *LinearCoded) Lookup(left, center, right uint8) uint8 {
	return r.table[left&1][center&1][right&1]
}

func (r *LinearCoded) Next(m *Map, a Address) uint8 {
	ns := m.Neighbors(a)
	right, left := m.Get(ns[0]), m.Get(ns[1])
	return r.Lookup(left, m.Get(a), right)
}

func (r *LinearCoded) Check(m *Map) error {
	if rad, ok := m.Neighborhood().(Radial); !ok || rad.Radius != 1 || m.Dimension() != 1 {
		return fmt.Errorf("linear coded rule needs a 1-D radius 1 map: %w", ErrUnsupportedMap)
	}
	return nil
}

// LinearTotalistic is a two-state one-dimensional rule whose next state
// depends only on the inclusive sum: bit s of the code is the next state
// for sum s.
type LinearTotalistic struct {
	Code uint64
}

func (r LinearTotalistic) Next(m *Map, a Address) uint8 {
	s := m.InclusiveSum(a)
	if s >= 64 {
		return 0
	}
	return uint8((r.Code >> s) & 1)
}

func (r LinearTotalistic) Check(m *Map) error {
	if m.Dimension() != 1 {
		return fmt.Errorf("linear totalistic rule: %w", ErrUnsupportedMap)
	}
	return nil
}

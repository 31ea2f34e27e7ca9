package cage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alive(m *Map) map[Address]bool {
	out := map[Address]bool{}
	topo := m.Topology()
	for i, v := range m.Cells() {
		if v != 0 {
			out[topo.AddressAt(i)] = true
		}
	}
	return out
}

func TestBlinkerOscillation(t *testing.T) {
	m := NewMooreMap(5, 5)
	rule, err := TotalisticFor("3/23", m.Neighborhood())
	require.NoError(t, err)
	a, err := NewSynchronous(m, 2, rule)
	require.NoError(t, err)

	horizontal := map[Address]bool{At(1, 2): true, At(2, 2): true, At(3, 2): true}
	vertical := map[Address]bool{At(2, 1): true, At(2, 2): true, At(2, 3): true}
	for addr := range horizontal {
		require.NoError(t, a.Map().Set(addr, 1))
	}

	require.NoError(t, a.Step())
	assert.Equal(t, 1, a.Generation())
	assert.Equal(t, vertical, alive(a.Map()))

	require.NoError(t, a.Step())
	assert.Equal(t, 2, a.Generation())
	assert.Equal(t, horizontal, alive(a.Map()))
}

func TestBlinkerAcrossSeam(t *testing.T) {
	m := NewMooreMap(6, 6)
	rule, err := TotalisticFor("B3/S23", m.Neighborhood())
	require.NoError(t, err)
	a, err := NewSynchronous(m, 2, rule)
	require.NoError(t, err)
	for _, x := range []int{5, 6, 7} {
		require.NoError(t, m.Set(At(x, 0), 1))
	}
	require.NoError(t, a.Step())
	assert.Equal(t, map[Address]bool{At(0, 5): true, At(0, 0): true, At(0, 1): true}, alive(a.Map()))
}

func seeded(t *testing.T, m *Map, seed int64) {
	t.Helper()
	rng := NewRNG(seed)
	for i := range m.Cells() {
		m.Cells()[i] = rng.Uint8n(2)
	}
}

func TestSynchronousIsOrderIndependent(t *testing.T) {
	rules := map[string]func(*Map) Rule{
		"xor": func(*Map) Rule { return Reduction{Op: Xor} },
		"life": func(m *Map) Rule {
			r, err := TotalisticFor("3/23", m.Neighborhood())
			require.NoError(t, err)
			return r
		},
	}
	for name, mk := range rules {
		t.Run(name, func(t *testing.T) {
			fwdMap, revMap := NewMooreMap(9, 7), NewMooreMap(9, 7)
			seeded(t, fwdMap, 42)
			seeded(t, revMap, 42)
			require.Equal(t, fwdMap.Cells(), revMap.Cells())

			fwd, err := NewSynchronous(fwdMap, 2, mk(fwdMap))
			require.NoError(t, err)
			rev, err := NewSynchronous(revMap, 2, mk(revMap), WithOrder(Reverse))
			require.NoError(t, err)
			for gen := 0; gen < 5; gen++ {
				require.NoError(t, fwd.Step())
				require.NoError(t, rev.Step())
				require.Equal(t, fwd.Map().Cells(), rev.Map().Cells(), "generation %d", gen+1)
			}
		})
	}
}

func TestAsynchronousDependsOnOrder(t *testing.T) {
	build := func(o Order) *Automaton {
		m := NewRadialMap(5, 1)
		require.NoError(t, m.Set(At1(2), 1))
		a, err := NewAsynchronous(m, 2, Reduction{Op: Or}, WithOrder(o))
		require.NoError(t, err)
		return a
	}
	fwd, rev := build(Forward), build(Reverse)
	require.NoError(t, fwd.Step())
	require.NoError(t, rev.Step())

	assert.Equal(t, []uint8{0, 1, 1, 1, 1}, fwd.Map().Cells())
	assert.Equal(t, []uint8{1, 1, 1, 1, 0}, rev.Map().Cells())

	// the same seed stepped synchronously only spreads one cell each way
	m := NewRadialMap(5, 1)
	require.NoError(t, m.Set(At1(2), 1))
	sync, err := NewSynchronous(m, 2, Reduction{Op: Or})
	require.NoError(t, err)
	require.NoError(t, sync.Step())
	assert.Equal(t, []uint8{0, 1, 0, 1, 0}, sync.Map().Cells())
}

func TestSynchronousSwapsBuffers(t *testing.T) {
	m := NewMooreMap(4, 4)
	a, err := NewSynchronous(m, 2, RuleFunc(func(m *Map, at Address) uint8 { return m.Get(at) }))
	require.NoError(t, err)
	before := &m.Cells()[0]
	scratch := &a.work.Cells()[0]

	require.NoError(t, a.Step())
	assert.Same(t, scratch, &a.Map().Cells()[0])
	assert.Same(t, before, &a.work.Cells()[0])
	assert.Same(t, m, a.Map())
}

func TestConstructorsCheckRules(t *testing.T) {
	_, err := NewSynchronous(NewMap(NewTorus(3, 3), Null{}), 2, Reduction{Op: Or})
	assert.ErrorIs(t, err, ErrNullNeighborhood)

	_, err = NewSynchronous(NewMooreMap(3, 3), 2, NewLinearCoded(30))
	assert.ErrorIs(t, err, ErrUnsupportedMap)

	_, err = NewAsynchronous(NewMooreMap(3, 3), 2, nil)
	assert.Error(t, err)

	a, err := NewAgentAutomaton(NewMap(NewTorus(3, 3), Null{}), 2)
	require.NoError(t, err)
	assert.Equal(t, AgentOnly, a.Discipline())
	assert.Nil(t, a.Rule())
}

type recorder struct {
	Base
	name string
	log  *[]string
	err  error
}

func (r *recorder) Update(*Automaton) error {
	*r.log = append(*r.log, "update "+r.name)
	return r.err
}

func (r *recorder) Between(*Automaton) error {
	*r.log = append(*r.log, "between "+r.name)
	return nil
}

func TestAgentRegistry(t *testing.T) {
	a, err := NewAgentAutomaton(NewMap(NewTorus(4, 4), Null{}), 2)
	require.NoError(t, err)
	var log []string
	x := &recorder{name: "x", log: &log}
	y := &recorder{name: "y", log: &log}
	z := &recorder{name: "z", log: &log}

	require.NoError(t, a.Add(x))
	require.NoError(t, a.Add(y))
	require.NoError(t, a.Add(z))
	assert.ErrorIs(t, a.Add(y), ErrDuplicateAgent)
	assert.Equal(t, []Agent{x, y, z}, a.Agents())

	require.NoError(t, a.Remove(y))
	assert.ErrorIs(t, a.Remove(y), ErrUnknownAgent)
	assert.Equal(t, []Agent{x, z}, a.Agents())

	require.NoError(t, a.Add(y))
	require.NoError(t, a.Step())
	assert.Equal(t, []string{
		"update x", "update z", "update y",
		"between x", "between z", "between y",
	}, log)
	assert.Equal(t, 1, a.Generation())
}

func TestAgentErrorStopsStep(t *testing.T) {
	a, err := NewAgentAutomaton(NewMap(NewTorus(4, 4), Null{}), 2)
	require.NoError(t, err)
	var log []string
	boom := errors.New("boom")
	require.NoError(t, a.Add(&recorder{name: "a", log: &log, err: boom}))
	require.NoError(t, a.Add(&recorder{name: "b", log: &log}))

	err = a.Step()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"update a"}, log)
}

func TestAgentsSeeNewGeneration(t *testing.T) {
	m := NewMooreMap(3, 3)
	a, err := NewSynchronous(m, 2, RuleFunc(func(*Map, Address) uint8 { return 1 }))
	require.NoError(t, err)
	var seen uint8
	probe := &probeAgent{fn: func(au *Automaton) { seen = au.Map().Get(At(0, 0)) }}
	require.NoError(t, a.Add(probe))
	require.NoError(t, a.Step())
	assert.Equal(t, uint8(1), seen)
}

type probeAgent struct {
	Base
	fn func(*Automaton)
}

func (p *probeAgent) Update(a *Automaton) error {
	p.fn(a)
	return nil
}

func TestRunningAndBetweenHooks(t *testing.T) {
	m := NewLineMap(10, 1)
	var betweenGens []int
	a, err := NewSynchronous(m, 2, NewLinearCoded(90),
		WithRunning(RunningForHalfLength),
		WithBetween(func(a *Automaton) error {
			betweenGens = append(betweenGens, a.Generation())
			return a.AgentsBetween()
		}),
	)
	require.NoError(t, err)

	steps := 0
	for a.Running() {
		require.NoError(t, a.Step())
		steps++
	}
	assert.Equal(t, 5, steps)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, betweenGens)

	unbounded, err := NewAgentAutomaton(NewMap(NewTorus(2, 2), Null{}), 2)
	require.NoError(t, err)
	assert.True(t, unbounded.Running())
}

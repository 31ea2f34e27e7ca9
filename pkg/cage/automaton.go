package cage

import "fmt"

// Discipline selects how an Automaton applies its rule each generation.
type Discipline int

const (
	// Synchronous computes every cell from the previous generation into a
	// scratch map and then swaps buffers.
	Synchronous Discipline = iota
	// Asynchronous writes each result in place, so cells visited later in
	// a pass see neighbors already updated in the same pass.
	Asynchronous
	// AgentOnly runs no rule; a generation is one round of agent updates.
	AgentOnly
)

func (d Discipline) String() string {
	switch d {
	case Synchronous:
		return "synchronous"
	case Asynchronous:
		return "asynchronous"
	case AgentOnly:
		return "agent"
	default:
		return "unknown"
	}
}

// Order is the cell visitation order of a rule pass.
type Order int

const (
	// Forward visits cells in ascending raster order (rows top to bottom,
	// columns left to right).
	Forward Order = iota
	// Reverse visits cells in descending raster order.
	Reverse
)

// Option customizes an Automaton at construction.
type Option func(*Automaton)

// WithRunning replaces the default always-true Running predicate.
func WithRunning(f func(*Automaton) bool) Option {
	return func(a *Automaton) { a.running = f }
}

// WithBetween replaces the default between-generations hook, which
// calls Between on every agent.
func WithBetween(f func(*Automaton) error) Option {
	return func(a *Automaton) { a.between = f }
}

// WithOrder sets the visitation order of the rule pass.
func WithOrder(o Order) Option {
	return func(a *Automaton) { a.order = o }
}

// RunningForHalfLength stops a run once the generation reaches half the
// first extent of the map, the usual stopping point for 1-D explorers.
func RunningForHalfLength(a *Automaton) bool {
	return a.generation < a.m.Topology().Extent()[0]/2
}

// Automaton advances a Map one generation at a time.
type Automaton struct {
	discipline Discipline
	states     int
	m          *Map
	work       *Map
	rule       Rule
	order      Order
	agents     []Agent
	generation int

	running func(*Automaton) bool
	between func(*Automaton) error
}

// NewSynchronous returns an automaton whose generations are computed from
// a consistent snapshot of the previous one.
func NewSynchronous(m *Map, states int, rule Rule, opts ...Option) (*Automaton, error) {
	a, err := newAutomaton(Synchronous, m, states, rule, opts)
	if err != nil {
		return nil, err
	}
	a.work = m.Clone()
	return a, nil
}

// NewAsynchronous returns an automaton that updates cells in place.
func NewAsynchronous(m *Map, states int, rule Rule, opts ...Option) (*Automaton, error) {
	return newAutomaton(Asynchronous, m, states, rule, opts)
}

// NewAgentAutomaton returns an automaton driven only by its agents.
func NewAgentAutomaton(m *Map, states int, opts ...Option) (*Automaton, error) {
	return newAutomaton(AgentOnly, m, states, nil, opts)
}

func newAutomaton(d Discipline, m *Map, states int, rule Rule, opts []Option) (*Automaton, error) {
	if m == nil {
		return nil, fmt.Errorf("%v automaton: nil map", d)
	}
	if d != AgentOnly && rule == nil {
		return nil, fmt.Errorf("%v automaton: nil rule", d)
	}
	if c, ok := rule.(Checker); ok {
		if err := c.Check(m); err != nil {
			return nil, err
		}
	}
	a := &Automaton{discipline: d, states: states, m: m, rule: rule}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Map returns the primary map. After a synchronous step it holds the new
// generation.
func (a *Automaton) Map() *Map { return a.m }

// Generation is the number of completed steps.
func (a *Automaton) Generation() int { return a.generation }

// States is the declared number of cell states.
func (a *Automaton) States() int { return a.states }

// Discipline reports how the rule is applied.
func (a *Automaton) Discipline() Discipline { return a.discipline }

// Rule returns the transition rule, or nil for agent-only automata.
func (a *Automaton) Rule() Rule { return a.rule }

// Running reports whether the run should continue.
func (a *Automaton) Running() bool {
	if a.running == nil {
		return true
	}
	return a.running(a)
}

// Step advances one generation: the rule pass, the generation counter,
// each agent's Update in registration order and finally Between. The
// first error aborts the step.
func (a *Automaton) Step() error {
	switch a.discipline {
	case Synchronous:
		a.pass(a.work)
		a.m.swap(a.work)
	case Asynchronous:
		a.pass(a.m)
	}
	a.generation++
	for _, ag := range a.agents {
		if err := ag.Update(a); err != nil {
			return fmt.Errorf("generation %d: agent at %v: %w", a.generation, ag.Location(), err)
		}
	}
	if err := a.Between(); err != nil {
		return fmt.Errorf("generation %d: between: %w", a.generation, err)
	}
	return nil
}

// pass evaluates the rule against the primary map for every cell and
// writes into dst, which is the primary map itself when asynchronous.
func (a *Automaton) pass(dst *Map) {
	topo := a.m.Topology()
	total := topo.Cells()
	cells := dst.cells
	visit := func(i int) {
		cells[i] = a.rule.Next(a.m, topo.AddressAt(i))
	}
	if a.order == Reverse {
		for i := total - 1; i >= 0; i-- {
			visit(i)
		}
		return
	}
	for i := 0; i < total; i++ {
		visit(i)
	}
}

// Between runs the between-generations hook. Step calls it; it is
// exported for drivers that replay the hook.
func (a *Automaton) Between() error {
	if a.between != nil {
		return a.between(a)
	}
	return a.AgentsBetween()
}

// AgentsBetween calls Between on every agent in registration order.
func (a *Automaton) AgentsBetween() error {
	for _, ag := range a.agents {
		if err := ag.Between(a); err != nil {
			return err
		}
	}
	return nil
}

// Add registers an agent. Agents update in the order they were added.
func (a *Automaton) Add(ag Agent) error {
	if a.indexOf(ag) >= 0 {
		return fmt.Errorf("add agent at %v: %w", ag.Location(), ErrDuplicateAgent)
	}
	a.agents = append(a.agents, ag)
	return nil
}

// Remove unregisters an agent, keeping the order of the rest.
func (a *Automaton) Remove(ag Agent) error {
	i := a.indexOf(ag)
	if i < 0 {
		return fmt.Errorf("remove agent at %v: %w", ag.Location(), ErrUnknownAgent)
	}
	a.agents = append(a.agents[:i], a.agents[i+1:]...)
	return nil
}

// Agents returns the registered agents in update order. The slice must
// not be modified.
func (a *Automaton) Agents() []Agent { return a.agents }

func (a *Automaton) indexOf(ag Agent) int {
	for i, other := range a.agents {
		if other == ag {
			return i
		}
	}
	return -1
}

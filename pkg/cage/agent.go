package cage

// Agent is a mobile entity that acts on the map independently of the
// rule. Agents are compared by identity, so implementations should be
// pointer types.
type Agent interface {
	Location() Address
	// Update runs once per generation, after the cellular pass.
	Update(a *Automaton) error
	// Between runs once per generation after every agent has updated.
	Between(a *Automaton) error
}

// Base carries a location and a no-op Between for embedding.
type Base struct {
	Loc Address
}

// Location returns the agent's current cell.
func (b *Base) Location() Address { return b.Loc }

// Between does nothing.
func (b *Base) Between(*Automaton) error { return nil }

package ant

import (
	"fmt"

	"cage/pkg/cage"
)

// Ant is a genome-driven agent facing one of the eight ordinal directions.
type Ant struct {
	cage.Base
	Genome    *Genome
	Direction cage.Direction
	State     int
}

// New places an ant at loc facing the given ordinal index in state 0.
func New(g *Genome, loc cage.Address, facing int) *Ant {
	return &Ant{
		Base:      cage.Base{Loc: loc},
		Genome:    g,
		Direction: cage.NewDirection(cage.Ordinal, facing),
	}
}

// Update repaints the current cell, changes state and performs the action.
func (a *Ant) Update(au *cage.Automaton) error {
	m := au.Map()
	cell := m.Get(a.Loc)
	mask := a.Genome.Mask()
	color := int(cell & mask)

	newColor, err := a.Genome.Color.Get(color, a.State)
	if err != nil {
		return err
	}
	newState, err := a.Genome.State.Get(color, a.State)
	if err != nil {
		return err
	}
	action, err := a.Genome.Action.Get(color, a.State)
	if err != nil {
		return err
	}
	if int(newColor) >= a.Genome.Colors() || int(newState) >= a.Genome.States() {
		return fmt.Errorf("genome output (%d,%d): %w", newColor, newState, ErrGeneRange)
	}

	if err := m.Set(a.Loc, cell&^mask|newColor); err != nil {
		return err
	}
	a.State = int(newState)
	return a.act(m, Action(action))
}

func (a *Ant) act(m *cage.Map, action Action) error {
	switch action {
	case ActionNone:
	case ActionLeft:
		a.Direction.TurnLeft()
	case ActionRight:
		a.Direction.TurnRight()
	case ActionAdvance:
		advance(m, &a.Base, a.Direction)
	default:
		return fmt.Errorf("%v: %w", action, ErrUnknownAction)
	}
	return nil
}

// advance moves b one step along d, folding the result through the
// map's topology. A bounded map leaves the agent in place at the edge.
func advance(m *cage.Map, b *cage.Base, d cage.Direction) {
	if next, ok := m.Normalize(d.Advance(b.Loc)); ok {
		b.Loc = next
	}
}

// Heading returns the direction the ant faces.
func (a *Ant) Heading() cage.Direction { return a.Direction }

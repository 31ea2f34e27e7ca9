package ant

import "cage/pkg/cage"

// Vant is Langton's virtual ant: on a live cell it turns right, on a dead
// cell left, flips the cell and steps forward.
type Vant struct {
	cage.Base
	Direction cage.Direction
}

// NewVant places a vant at loc facing the given cardinal index.
func NewVant(loc cage.Address, facing int) *Vant {
	return &Vant{Base: cage.Base{Loc: loc}, Direction: cage.NewDirection(cage.Cardinal, facing)}
}

func (v *Vant) Update(au *cage.Automaton) error {
	m := au.Map()
	state := m.Get(v.Loc)
	if state != 0 {
		v.Direction.TurnRight()
	} else {
		v.Direction.TurnLeft()
	}
	var flipped uint8
	if state == 0 {
		flipped = 1
	}
	if err := m.Set(v.Loc, flipped); err != nil {
		return err
	}
	advance(m, &v.Base, v.Direction)
	return nil
}

// Heading returns the direction the vant faces.
func (v *Vant) Heading() cage.Direction { return v.Direction }

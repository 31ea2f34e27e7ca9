package cage

// Compass is an ordered ring of unit offsets. Turning left moves one step
// forward through the ring, turning right one step back.
type Compass struct {
	Offsets []Address
	Icons   string
}

var (
	// Cardinal is east, north, west, south.
	Cardinal = &Compass{Offsets: []Address{{1, 0}, {0, -1}, {-1, 0}, {0, 1}}, Icons: "-|-|"}
	// Ordinal adds the diagonals, counter-clockwise from east.
	Ordinal = &Compass{
		Offsets: []Address{{1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}, {0, 1}, {1, 1}},
		Icons:   `-/|\-/|\`,
	}
	// HexagonalCompass matches the Hexagonal neighborhood.
	HexagonalCompass = &Compass{
		Offsets: []Address{{1, 0}, {1, 1}, {0, 1}, {-1, 0}, {-1, -1}, {0, -1}},
		Icons:   `-/\-/\`,
	}
)

// Direction is a facing on a compass.
type Direction struct {
	compass *Compass
	facing  int
}

// NewDirection returns a direction facing the given compass index.
func NewDirection(c *Compass, facing int) Direction {
	d := Direction{compass: c}
	d.Turn(facing)
	return d
}

// Facing returns the compass index.
func (d Direction) Facing() int { return d.facing }

// Compass returns the ring this direction turns on.
func (d Direction) Compass() *Compass { return d.compass }

// Turn rotates by n steps; positive is left.
func (d *Direction) Turn(n int) {
	d.facing = wrap(d.facing+n, len(d.compass.Offsets))
}

// TurnLeft rotates one step counter-clockwise.
func (d *Direction) TurnLeft() { d.Turn(1) }

// TurnRight rotates one step clockwise.
func (d *Direction) TurnRight() { d.Turn(-1) }

// Offset returns the unit step for the current facing.
func (d Direction) Offset() Address { return d.compass.Offsets[d.facing] }

// Icon returns a character depicting the facing.
func (d Direction) Icon() byte { return d.compass.Icons[d.facing] }

// Advance returns the address one step ahead of a, unnormalized.
func (d Direction) Advance(a Address) Address { return a.Add(d.Offset()) }

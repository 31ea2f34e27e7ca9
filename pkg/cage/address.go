package cage

import "fmt"

// Address identifies a cell. One-dimensional topologies use X only and
// treat any non-zero Y as outside the grid.
type Address struct {
	X, Y int
}

// At1 returns a one-dimensional address.
func At1(x int) Address { return Address{X: x} }

// At returns a two-dimensional address.
func At(x, y int) Address { return Address{X: x, Y: y} }

// Add offsets a by d on every axis.
func (a Address) Add(d Address) Address { return Address{X: a.X + d.X, Y: a.Y + d.Y} }

func (a Address) String() string { return fmt.Sprintf("(%d,%d)", a.X, a.Y) }

package cage

// Neighborhood enumerates the cells adjacent to an address. The count
// never varies by address and the order of Neighbors is stable, since
// direction-sensitive rules index into it. The cell itself is never
// included.
//
// The set is closed; new shapes are expressed as a Stencil.
type Neighborhood interface {
	Count() int
	// Neighbors appends the (unnormalized) neighbor addresses of a to dst.
	Neighbors(a Address, dst []Address) []Address

	neighborhood()
}

// Null has no neighbors. It is used when only agents act on the grid.
type Null struct{}

func (Null) Count() int                                  { return 0 }
func (Null) Neighbors(_ Address, dst []Address) []Address { return dst }
func (Null) neighborhood()                               {}

// Radial is the one-dimensional neighborhood of Radius cells on each
// side, ordered nearest first, right before left: x+1, x-1, x+2, x-2 and
// so on.
type Radial struct {
	Radius int
}

func (r Radial) Count() int { return 2 * r.Radius }

func (r Radial) Neighbors(a Address, dst []Address) []Address {
	for i := 1; i <= r.Radius; i++ {
		dst = append(dst, At1(a.X+i), At1(a.X-i))
	}
	return dst
}

func (Radial) neighborhood() {}

// Stencil is a neighborhood given by a fixed list of offsets.
type Stencil struct {
	Offsets []Address
}

func (s Stencil) Count() int { return len(s.Offsets) }

func (s Stencil) Neighbors(a Address, dst []Address) []Address {
	for _, d := range s.Offsets {
		dst = append(dst, a.Add(d))
	}
	return dst
}

func (Stencil) neighborhood() {}

var (
	vonNeumannOffsets = []Address{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	mooreOffsets      = []Address{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	hexagonalOffsets  = []Address{{1, 0}, {1, 1}, {0, 1}, {-1, -1}, {0, -1}, {1, -1}}
	knightsOffsets    = []Address{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
)

// VonNeumann is the four cardinal neighbors.
type VonNeumann struct{}

func (VonNeumann) Count() int { return len(vonNeumannOffsets) }
func (VonNeumann) Neighbors(a Address, dst []Address) []Address {
	return Stencil{Offsets: vonNeumannOffsets}.Neighbors(a, dst)
}
func (VonNeumann) neighborhood() {}

// Moore is the eight cardinal and ordinal neighbors.
type Moore struct{}

func (Moore) Count() int { return len(mooreOffsets) }
func (Moore) Neighbors(a Address, dst []Address) []Address {
	return Stencil{Offsets: mooreOffsets}.Neighbors(a, dst)
}
func (Moore) neighborhood() {}

// Hexagonal is six neighbors on a skewed square lattice.
type Hexagonal struct{}

func (Hexagonal) Count() int { return len(hexagonalOffsets) }
func (Hexagonal) Neighbors(a Address, dst []Address) []Address {
	return Stencil{Offsets: hexagonalOffsets}.Neighbors(a, dst)
}
func (Hexagonal) neighborhood() {}

// Knights is every cell a chess knight could move to.
type Knights struct{}

func (Knights) Count() int { return len(knightsOffsets) }
func (Knights) Neighbors(a Address, dst []Address) []Address {
	return Stencil{Offsets: knightsOffsets}.Neighbors(a, dst)
}
func (Knights) neighborhood() {}

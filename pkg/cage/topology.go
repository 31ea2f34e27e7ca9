package cage

// Topology describes the shape of a grid and how addresses are brought
// into range. Bounded topologies reject out-of-range addresses; wrapping
// topologies fold every address back onto the grid.
//
// The set of topologies is closed; use Line, Circle, Grid or Torus.
type Topology interface {
	// Dimension is 1 or 2.
	Dimension() int
	// Extent returns the size along each axis.
	Extent() []int
	// Cells is the total number of cells.
	Cells() int
	// Normalize maps a into range. ok is false when a bounded topology
	// has no cell at a.
	Normalize(a Address) (n Address, ok bool)
	// Border is the state reported for reads outside a bounded topology.
	Border() uint8
	// Index converts a normalized address into a buffer offset.
	Index(a Address) int
	// AddressAt is the inverse of Index and defines raster order.
	AddressAt(i int) Address

	topology()
}

func wrap(v, n int) int {
	return (v%n + n) % n
}

func positive(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}

// Line is a bounded row of cells.
type Line struct {
	Length      int
	BorderValue uint8
}

// NewLine returns a bounded line with a zero border.
func NewLine(length int) Line { return Line{Length: positive(length)} }

func (Line) Dimension() int          { return 1 }
func (l Line) Extent() []int         { return []int{l.Length} }
func (l Line) Cells() int            { return l.Length }
func (l Line) Border() uint8         { return l.BorderValue }
func (Line) Index(a Address) int     { return a.X }
func (Line) AddressAt(i int) Address { return At1(i) }
func (Line) topology()               {}

func (l Line) Normalize(a Address) (Address, bool) {
	if a.Y != 0 || a.X < 0 || a.X >= l.Length {
		return a, false
	}
	return a, true
}

// Circle is a row of cells whose ends are adjacent. Only X wraps; like
// Line, it rejects a non-zero Y.
type Circle struct {
	Length int
}

// NewCircle returns a wrapping line.
func NewCircle(length int) Circle { return Circle{Length: positive(length)} }

func (Circle) Dimension() int          { return 1 }
func (c Circle) Extent() []int         { return []int{c.Length} }
func (c Circle) Cells() int            { return c.Length }
func (Circle) Border() uint8           { return 0 }
func (Circle) Index(a Address) int     { return a.X }
func (Circle) AddressAt(i int) Address { return At1(i) }
func (Circle) topology()               {}

func (c Circle) Normalize(a Address) (Address, bool) {
	if a.Y != 0 {
		return a, false
	}
	return At1(wrap(a.X, c.Length)), true
}

// Grid is a bounded rectangle of cells.
type Grid struct {
	Width, Height int
	BorderValue   uint8
}

// NewGrid returns a bounded rectangle with a zero border.
func NewGrid(w, h int) Grid { return Grid{Width: positive(w), Height: positive(h)} }

func (Grid) Dimension() int            { return 2 }
func (g Grid) Extent() []int           { return []int{g.Width, g.Height} }
func (g Grid) Cells() int              { return g.Width * g.Height }
func (g Grid) Border() uint8           { return g.BorderValue }
func (g Grid) Index(a Address) int     { return a.Y*g.Width + a.X }
func (g Grid) AddressAt(i int) Address { return At(i%g.Width, i/g.Width) }
func (Grid) topology()                 {}

func (g Grid) Normalize(a Address) (Address, bool) {
	if a.X < 0 || a.X >= g.Width || a.Y < 0 || a.Y >= g.Height {
		return a, false
	}
	return a, true
}

// Torus is a rectangle whose opposite edges are adjacent.
type Torus struct {
	Width, Height int
}

// NewTorus returns a wrapping rectangle.
func NewTorus(w, h int) Torus { return Torus{Width: positive(w), Height: positive(h)} }

func (Torus) Dimension() int            { return 2 }
func (t Torus) Extent() []int           { return []int{t.Width, t.Height} }
func (t Torus) Cells() int              { return t.Width * t.Height }
func (Torus) Border() uint8             { return 0 }
func (t Torus) Index(a Address) int     { return a.Y*t.Width + a.X }
func (t Torus) AddressAt(i int) Address { return At(i%t.Width, i/t.Width) }
func (Torus) topology()                 {}

// Normalize wraps each axis independently.
func (t Torus) Normalize(a Address) (Address, bool) {
	return At(wrap(a.X, t.Width), wrap(a.Y, t.Height)), true
}

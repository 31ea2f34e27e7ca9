package cage

import "fmt"

// Map pairs a Topology with a Neighborhood and stores one state per cell.
type Map struct {
	topo  Topology
	hood  Neighborhood
	cells []uint8

	// scratch space for neighbor enumeration; maps are single threaded.
	nbuf []Address
}

// NewMap allocates a zeroed map over the given topology and neighborhood.
func NewMap(t Topology, n Neighborhood) *Map {
	return &Map{
		topo:  t,
		hood:  n,
		cells: make([]uint8, t.Cells()),
		nbuf:  make([]Address, 0, n.Count()),
	}
}

// NewLineMap is a bounded line with a radial neighborhood.
func NewLineMap(length, radius int) *Map { return NewMap(NewLine(length), Radial{Radius: radius}) }

// NewRadialMap is a wrapping line with a radial neighborhood.
func NewRadialMap(length, radius int) *Map {
	return NewMap(NewCircle(length), Radial{Radius: radius})
}

// NewVonNeumannMap is a torus with the von Neumann neighborhood.
func NewVonNeumannMap(w, h int) *Map { return NewMap(NewTorus(w, h), VonNeumann{}) }

// NewMooreMap is a torus with the Moore neighborhood.
func NewMooreMap(w, h int) *Map { return NewMap(NewTorus(w, h), Moore{}) }

// NewHexagonalMap is a torus with the hexagonal neighborhood.
func NewHexagonalMap(w, h int) *Map { return NewMap(NewTorus(w, h), Hexagonal{}) }

// NewKnightsMap is a torus with the knight's-move neighborhood.
func NewKnightsMap(w, h int) *Map { return NewMap(NewTorus(w, h), Knights{}) }

// Topology returns the map's shape.
func (m *Map) Topology() Topology { return m.topo }

// Neighborhood returns the map's adjacency.
func (m *Map) Neighborhood() Neighborhood { return m.hood }

// Cells exposes the backing buffer in raster order.
func (m *Map) Cells() []uint8 { return m.cells }

// Dimension is shorthand for Topology().Dimension().
func (m *Map) Dimension() int { return m.topo.Dimension() }

// Normalize brings a into range; see Topology.Normalize.
func (m *Map) Normalize(a Address) (Address, bool) { return m.topo.Normalize(a) }

// IsNormalized reports whether a already names a cell without folding.
func (m *Map) IsNormalized(a Address) bool {
	n, ok := m.topo.Normalize(a)
	return ok && n == a
}

// Get returns the state at a. Reads outside a bounded topology return
// the border value.
func (m *Map) Get(a Address) uint8 {
	n, ok := m.topo.Normalize(a)
	if !ok {
		return m.topo.Border()
	}
	return m.cells[m.topo.Index(n)]
}

// Set stores state at a, wrapping if the topology wraps.
func (m *Map) Set(a Address, state uint8) error {
	n, ok := m.topo.Normalize(a)
	if !ok {
		return fmt.Errorf("set %v: %w", a, ErrOutOfBounds)
	}
	m.cells[m.topo.Index(n)] = state
	return nil
}

// Reset returns the cell at a to the background state.
func (m *Map) Reset(a Address) error { return m.Set(a, 0) }

// Clear fills the map with zeros.
func (m *Map) Clear() {
	for i := range m.cells {
		m.cells[i] = 0
	}
}

// Center returns the cell at half of each extent, rounded down.
func (m *Map) Center() Address {
	ext := m.topo.Extent()
	if len(ext) == 1 {
		return At1(ext[0] / 2)
	}
	return At(ext[0]/2, ext[1]/2)
}

// Random returns a uniformly chosen valid address.
func (m *Map) Random(rng *RNG) Address {
	return m.topo.AddressAt(rng.IntN(m.topo.Cells()))
}

// Clone returns a map of the same shape and neighborhood with a zeroed
// buffer. Contents are not copied.
func (m *Map) Clone() *Map {
	return NewMap(m.topo, m.hood)
}

// Neighbors returns the neighbor addresses of a. The slice is reused by
// the next call on this map.
func (m *Map) Neighbors(a Address) []Address {
	m.nbuf = m.hood.Neighbors(a, m.nbuf[:0])
	return m.nbuf
}

// swap exchanges buffers with other in O(1).
func (m *Map) swap(other *Map) {
	m.cells, other.cells = other.cells, m.cells
}

package render

// History stacks successive generations of a one-dimensional automaton
// into a two-dimensional buffer. Rows fill from the top; once the buffer
// is full it scrolls up so the newest row is always at the bottom.
type History struct {
	w, h  int
	rows  int
	cells []uint8
}

// NewHistory allocates a w by h history.
func NewHistory(w, h int) *History {
	w, h = max(w, 1), max(h, 1)
	return &History{w: w, h: h, cells: make([]uint8, w*h)}
}

// Push appends a generation. Rows longer than the width are cut.
func (h *History) Push(row []uint8) {
	if h.rows == h.h {
		copy(h.cells, h.cells[h.w:])
		h.rows--
	}
	dst := h.cells[h.rows*h.w : (h.rows+1)*h.w]
	n := copy(dst, row)
	clear(dst[n:])
	h.rows++
}

// Reset empties the history.
func (h *History) Reset() {
	clear(h.cells)
	h.rows = 0
}

// Rows is the number of generations held.
func (h *History) Rows() int { return h.rows }

// Size returns the buffer dimensions.
func (h *History) Size() (int, int) { return h.w, h.h }

// Cells exposes the buffer in raster order.
func (h *History) Cells() []uint8 { return h.cells }

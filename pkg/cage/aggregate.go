package cage

// Aggregate queries over a cell's neighbors. All of them are derived from
// Neighborhood.Neighbors and read through Get, so borders and wrapping
// apply.

// States returns the neighbor states in neighborhood order.
func (m *Map) States(a Address) []uint8 {
	ns := m.Neighbors(a)
	out := make([]uint8, len(ns))
	for i, n := range ns {
		out[i] = m.Get(n)
	}
	return out
}

// InclusiveStates returns the neighbor states followed by the state at a.
func (m *Map) InclusiveStates(a Address) []uint8 {
	return append(m.States(a), m.Get(a))
}

// Sum adds the neighbor states.
func (m *Map) Sum(a Address) int {
	total := 0
	for _, n := range m.Neighbors(a) {
		total += int(m.Get(n))
	}
	return total
}

// InclusiveSum adds the neighbor states and the state at a.
func (m *Map) InclusiveSum(a Address) int {
	return m.Sum(a) + int(m.Get(a))
}

// Average is the truncated mean of the neighbor states, or 0 for an
// empty neighborhood.
func (m *Map) Average(a Address) int {
	count := m.hood.Count()
	if count == 0 {
		return 0
	}
	return m.Sum(a) / count
}

// InclusiveAverage is the truncated mean including the state at a.
func (m *Map) InclusiveAverage(a Address) int {
	return m.InclusiveSum(a) / (m.hood.Count() + 1)
}

// HasWith reports whether any neighbor is in state.
func (m *Map) HasWith(a Address, state uint8) bool {
	_, ok := m.FindFirstWith(a, state)
	return ok
}

// CountWith counts the neighbors in state.
func (m *Map) CountWith(a Address, state uint8) int {
	count := 0
	for _, n := range m.Neighbors(a) {
		if m.Get(n) == state {
			count++
		}
	}
	return count
}

// HasZero reports whether any neighbor is zero.
func (m *Map) HasZero(a Address) bool { return m.HasWith(a, 0) }

// CountZero counts the zero neighbors.
func (m *Map) CountZero(a Address) int { return m.CountWith(a, 0) }

// HasNonZero reports whether any neighbor is non-zero.
func (m *Map) HasNonZero(a Address) bool {
	for _, n := range m.Neighbors(a) {
		if m.Get(n) != 0 {
			return true
		}
	}
	return false
}

// CountNonZero counts the non-zero neighbors.
func (m *Map) CountNonZero(a Address) int {
	return m.hood.Count() - m.CountZero(a)
}

// FindFirstWith returns the index into the neighbor list of the first
// neighbor in state.
func (m *Map) FindFirstWith(a Address, state uint8) (int, bool) {
	for i, n := range m.Neighbors(a) {
		if m.Get(n) == state {
			return i, true
		}
	}
	return 0, false
}

// FindAllWith returns the neighbor indexes of every neighbor in state.
func (m *Map) FindAllWith(a Address, state uint8) []int {
	var found []int
	for i, n := range m.Neighbors(a) {
		if m.Get(n) == state {
			found = append(found, i)
		}
	}
	return found
}

// RandomState returns the state of a uniformly chosen neighbor. An empty
// neighborhood yields the state at a.
func (m *Map) RandomState(a Address, rng *RNG) uint8 {
	ns := m.Neighbors(a)
	if len(ns) == 0 {
		return m.Get(a)
	}
	return m.Get(ns[rng.IntN(len(ns))])
}

// Reduce left-folds op over the neighbor states starting from seed.
func (m *Map) Reduce(a Address, op func(acc, state int) int, seed int) int {
	acc := seed
	for _, n := range m.Neighbors(a) {
		acc = op(acc, int(m.Get(n)))
	}
	return acc
}

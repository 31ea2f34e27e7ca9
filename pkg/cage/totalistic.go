package cage

import (
	"fmt"
	"slices"
	"strings"
)

// TotalisticCode lists the neighbor totals that bring a dead cell to
// life (Born) and that keep a live cell alive (Stay).
type TotalisticCode struct {
	Born []int
	Stay []int
}

// Named totalistic rules.
var TotalisticPresets = map[string]string{
	"conway":   "3/23",
	"highlife": "36/23",
	"diamoeba": "35678/5678",
	"life34":   "34/34",
	"daynight": "3678/34678",
	"maze":     "3/12345",
	"2x2":      "36/125",
}

// ParseTotalistic parses "[Bb]digits/[Ss]digits", for example "3/23" or
// "B36/S23". Each digit names one total and may appear once per side.
func ParseTotalistic(s string) (TotalisticCode, error) {
	bornPart, stayPart, ok := strings.Cut(s, "/")
	if !ok {
		return TotalisticCode{}, fmt.Errorf("%q: missing '/': %w", s, ErrRuleSyntax)
	}
	born, err := parseTotals(bornPart, "Bb")
	if err != nil {
		return TotalisticCode{}, fmt.Errorf("%q born: %w", s, err)
	}
	stay, err := parseTotals(stayPart, "Ss")
	if err != nil {
		return TotalisticCode{}, fmt.Errorf("%q stay: %w", s, err)
	}
	return TotalisticCode{Born: born, Stay: stay}, nil
}

func parseTotals(s, prefix string) ([]int, error) {
	if s != "" && strings.ContainsRune(prefix, rune(s[0])) {
		s = s[1:]
	}
	if s == "" {
		return nil, fmt.Errorf("no totals: %w", ErrRuleSyntax)
	}
	totals := make([]int, 0, len(s))
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("unexpected %q: %w", c, ErrRuleSyntax)
		}
		n := int(c - '0')
		if slices.Contains(totals, n) {
			return nil, fmt.Errorf("repeated total %d: %w", n, ErrRuleSyntax)
		}
		totals = append(totals, n)
	}
	return totals, nil
}

// String renders the code in B/S notation.
func (c TotalisticCode) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for _, n := range c.Born {
		fmt.Fprintf(&b, "%d", n)
	}
	b.WriteString("/S")
	for _, n := range c.Stay {
		fmt.Fprintf(&b, "%d", n)
	}
	return b.String()
}

// Max returns the largest total named by the code.
func (c TotalisticCode) Max() int {
	hi := 0
	for _, n := range c.Born {
		hi = max(hi, n)
	}
	for _, n := range c.Stay {
		hi = max(hi, n)
	}
	return hi
}

// CodedTotalistic is a two-state rule driven by a TotalisticCode. Its
// table is indexed by [current state][neighbor sum].
type CodedTotalistic struct {
	code  TotalisticCode
	table [2][]uint8
}

// NewCodedTotalistic builds the lookup table for a neighborhood of the
// given size.
func NewCodedTotalistic(code TotalisticCode, neighbors int) (*CodedTotalistic, error) {
	if neighbors <= 0 {
		return nil, fmt.Errorf("totalistic rule %v: %w", code, ErrNullNeighborhood)
	}
	if code.Max() > neighbors {
		return nil, fmt.Errorf("totalistic rule %v over %d neighbors: %w", code, neighbors, ErrTotalTooLarge)
	}
	r := &CodedTotalistic{code: code}
	r.table[0] = make([]uint8, neighbors+1)
	r.table[1] = make([]uint8, neighbors+1)
	for _, n := range code.Born {
		r.table[0][n] = 1
	}
	for _, n := range code.Stay {
		r.table[1][n] = 1
	}
	return r, nil
}

// TotalisticFor parses s, resolving preset names, and builds the rule for
// the neighborhood n.
func TotalisticFor(s string, n Neighborhood) (*CodedTotalistic, error) {
	if preset, ok := TotalisticPresets[strings.ToLower(s)]; ok {
		s = preset
	}
	code, err := ParseTotalistic(s)
	if err != nil {
		return nil, err
	}
	return NewCodedTotalistic(code, n.Count())
}

// Code returns the rule's born/stay totals.
func (r *CodedTotalistic) Code() TotalisticCode { return r.code }

// Lookup returns the next state for a cell in state with the given sum.
func (r *CodedTotalistic) Lookup(state uint8, sum int) uint8 {
	row := r.table[0]
	if state != 0 {
		row = r.table[1]
	}
	if sum < 0 || sum >= len(row) {
		return 0
	}
	return row[sum]
}

func (r *CodedTotalistic) Next(m *Map, a Address) uint8 {
	return r.Lookup(m.Get(a), m.Sum(a))
}

func (r *CodedTotalistic) Check(m *Map) error {
	n := m.Neighborhood().Count()
	if n == 0 {
		return fmt.Errorf("totalistic rule %v: %w", r.code, ErrNullNeighborhood)
	}
	if r.code.Max() > n {
		return fmt.Errorf("totalistic rule %v over %d neighbors: %w", r.code, n, ErrTotalTooLarge)
	}
	return nil
}

package initializer

import (
	"fmt"

	"cage/pkg/cage"
)

// Pattern grafts rows of states onto the middle of a two-dimensional map.
// Rows may be ragged; zeros are written too.
type Pattern struct {
	Rows [][]uint8
}

// FromStrings builds a pattern from lines of decimal digits, one cell per
// character. '.' and ' ' are read as 0.
func FromStrings(lines ...string) (Pattern, error) {
	rows := make([][]uint8, len(lines))
	for y, line := range lines {
		row := make([]uint8, len(line))
		for x, c := range line {
			switch {
			case c == '.' || c == ' ':
			case c >= '0' && c <= '9':
				row[x] = uint8(c - '0')
			default:
				return Pattern{}, fmt.Errorf("pattern line %d: unexpected %q", y, c)
			}
		}
		rows[y] = row
	}
	return Pattern{Rows: rows}, nil
}

// Size returns the pattern's bounding box.
func (p Pattern) Size() (w, h int) {
	for _, row := range p.Rows {
		w = max(w, len(row))
	}
	return w, len(p.Rows)
}

func (p Pattern) Initialize(a *cage.Automaton) error {
	m := a.Map()
	ext := m.Topology().Extent()
	if len(ext) != 2 {
		return fmt.Errorf("pattern on %d-D map: %w", len(ext), cage.ErrUnsupportedMap)
	}
	w, h := p.Size()
	if w > ext[0] || h > ext[1] {
		return fmt.Errorf("%dx%d pattern on %dx%d map: %w", w, h, ext[0], ext[1], ErrDoesNotFit)
	}
	left := (ext[0] - w) / 2
	top := (ext[1] - h) / 2
	for y, row := range p.Rows {
		for x, v := range row {
			if err := m.Set(cage.At(left+x, top+y), v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Template is a named list of live coordinates.
type Template struct {
	Name        string
	Descr       string
	Coordinates [][2]int
	State       uint8
}

func (t Template) Initialize(a *cage.Automaton) error {
	state := t.State
	if state == 0 {
		state = 1
	}
	for _, c := range t.Coordinates {
		if err := a.Map().Set(cage.At(c[0], c[1]), state); err != nil {
			return fmt.Errorf("template %s: %w", t.Name, err)
		}
	}
	return nil
}

// Templates are well-known starting shapes.
var Templates = map[string]Template{
	"blinker": {Name: "blinker", Descr: "period 2 oscillator", Coordinates: [][2]int{{1, 2}, {2, 2}, {3, 2}}},
	"glider":  {Name: "glider", Descr: "diagonal spaceship", Coordinates: [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}},
	"stable": {
		Name:        "stable",
		Descr:       "block, beehive fragment and tub",
		Coordinates: [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {4, 2}, {4, 3}, {5, 3}},
	},
	"rpentomino": {Name: "rpentomino", Descr: "long-lived methuselah", Coordinates: [][2]int{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}}},
}

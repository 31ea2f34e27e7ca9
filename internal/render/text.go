package render

import (
	"bytes"

	"github.com/logrusorgru/aurora"

	"cage/internal/core"
	"cage/pkg/cage"
)

// heading is implemented by agents that face a direction.
type heading interface {
	Heading() cage.Direction
}

var stateColors = []aurora.Color{
	aurora.GreenFg, aurora.CyanFg, aurora.YellowFg, aurora.MagentaFg, aurora.RedFg, aurora.BlueFg,
}

// Text renders automata as character grids. Without colour agents are
// drawn as '@' so they stay visible.
type Text struct {
	icons Icons
	au    aurora.Aurora
	color bool
}

// NewText returns a renderer for an automaton with the given state count.
func NewText(states int, color bool) *Text {
	return &Text{icons: NewIcons(states), au: aurora.NewAurora(color), color: color}
}

// Line renders a one-dimensional row of cells.
func (t *Text) Line(cells []uint8) string {
	var b bytes.Buffer
	for _, c := range cells {
		t.writeCell(&b, c)
	}
	return b.String()
}

func (t *Text) writeCell(b *bytes.Buffer, c uint8) {
	icon := t.icons.Icon(c)
	if !t.color || c == 0 {
		b.WriteByte(icon)
		return
	}
	b.WriteString(t.au.Colorize(string(icon), stateColors[int(c-1)%len(stateColors)]).String())
}

// Frame renders a raster-order grid of size.W x size.H, one text line per
// row with no trailing newline. Agents are drawn in reverse video over
// their cell, and a facing agent gets a bold direction mark on the cell
// ahead of it.
func (t *Text) Frame(size core.Size, cells []uint8, agents []cage.Agent) string {
	if size.W <= 0 || size.H <= 0 || len(cells) < size.W*size.H {
		return ""
	}
	overlay := make(map[int]string, 2*len(agents))
	inside := func(a cage.Address) (int, bool) {
		if a.X < 0 || a.Y < 0 || a.X >= size.W || a.Y >= size.H {
			return 0, false
		}
		return a.Y*size.W + a.X, true
	}
	for _, ag := range agents {
		loc := ag.Location()
		h, ok := ag.(heading)
		if ok {
			d := h.Heading()
			if i, in := inside(d.Advance(loc)); in {
				if _, taken := overlay[i]; !taken {
					overlay[i] = t.au.Bold(string(d.Icon())).String()
				}
			}
		}
		if i, in := inside(loc); in {
			icon := string(t.icons.Icon(cells[i]))
			if !t.color {
				icon = "@"
			}
			overlay[i] = t.au.Reverse(t.au.Bold(icon)).String()
		}
	}

	var b bytes.Buffer
	for y := 0; y < size.H; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < size.W; x++ {
			i := y*size.W + x
			if s, ok := overlay[i]; ok {
				b.WriteString(s)
				continue
			}
			t.writeCell(&b, cells[i])
		}
	}
	return b.String()
}

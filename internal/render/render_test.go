package render

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cage/internal/core"
	"cage/pkg/cage"
	"cage/pkg/cage/ant"
)

func TestIconTables(t *testing.T) {
	tests := []struct {
		states int
		state  uint8
		want   byte
	}{
		{2, 0, ' '},
		{2, 1, '#'},
		{3, 1, '+'},
		{4, 1, '.'},
		{6, 4, '%'},
		{26, 10, 'a'},
		{100, 0, ' '},
		{100, 99, 'q'},
		{100, 1, '1'},
		{256, 255, 'q'},
	}
	for _, tc := range tests {
		assert.Equal(t, string(tc.want), string(NewIcons(tc.states).Icon(tc.state)), "states=%d state=%d", tc.states, tc.state)
	}
	assert.Equal(t, byte('#'), NewIcons(2).Icon(7), "out of range uses the last icon")
}

func TestLine(t *testing.T) {
	txt := NewText(2, false)
	assert.Equal(t, " ## #", txt.Line([]uint8{0, 1, 1, 0, 1}))
}

func TestFrameDrawsAgents(t *testing.T) {
	cells := []uint8{
		0, 1, 0, 0,
		0, 0, 0, 0,
		1, 0, 0, 1,
	}
	v := ant.NewVant(cage.At(1, 1), 0)
	frame := NewText(2, false).Frame(core.Size{W: 4, H: 3}, cells, []cage.Agent{v})
	want := strings.Join([]string{
		" #  ",
		" @- ",
		"#  #",
	}, "\n")
	assert.Equal(t, want, frame)
}

func TestFrameSkipsOffGridMarks(t *testing.T) {
	v := ant.NewVant(cage.At(1, 0), 1)
	frame := NewText(2, false).Frame(core.Size{W: 2, H: 1}, []uint8{0, 0}, []cage.Agent{v})
	assert.Equal(t, " @", frame)
	assert.Empty(t, NewText(2, false).Frame(core.Size{W: 3, H: 3}, []uint8{0}, nil))
}

func TestColourFrameUsesEscapes(t *testing.T) {
	v := ant.NewVant(cage.At(0, 0), 0)
	frame := NewText(2, true).Frame(core.Size{W: 2, H: 1}, []uint8{1, 0}, []cage.Agent{v})
	assert.Contains(t, frame, "\x1b[")
}

func TestHistoryScrolls(t *testing.T) {
	h := NewHistory(3, 2)
	h.Push([]uint8{1, 0, 0})
	assert.Equal(t, []uint8{1, 0, 0, 0, 0, 0}, h.Cells())
	h.Push([]uint8{0, 1})
	assert.Equal(t, []uint8{1, 0, 0, 0, 1, 0}, h.Cells())
	h.Push([]uint8{0, 0, 1, 1})
	assert.Equal(t, []uint8{0, 1, 0, 0, 0, 1}, h.Cells())
	assert.Equal(t, 2, h.Rows())

	h.Reset()
	assert.Zero(t, h.Rows())
	assert.Equal(t, make([]uint8, 6), h.Cells())
}

func TestFillBinary(t *testing.T) {
	buf := make([]byte, 8)
	Fill(buf, []uint8{1, 0}, 2, color.White, color.Black, nil)
	assert.Equal(t, []byte{255, 255, 255, 255, 0, 0, 0, 255}, buf)
}

func TestFillPalette(t *testing.T) {
	p := Palette(3)
	require.Len(t, p, 3)
	assert.Equal(t, color.RGBA{A: 255}, p[0])
	assert.Equal(t, color.RGBA{R: 255, G: 51, B: 51, A: 255}, p[1])

	buf := make([]byte, 12)
	Fill(buf, []uint8{0, 2, 9}, 3, color.White, color.Black, p)
	assert.Equal(t, []byte{p[2].R, p[2].G, p[2].B, 255}, buf[4:8])
	assert.Equal(t, buf[4:8], buf[8:12], "clamped to the last colour")

	Fill(buf, []uint8{1, 1, 1}, 3, color.White, color.Black, nil)
	assert.Equal(t, make([]byte, 12), buf)
}

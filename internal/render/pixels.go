package render

import (
	"image/color"
	"math"
)

// Fill converts cells into RGBA pixels in buf. Two-state automata use the
// on/off pair; anything larger uses palette.
func Fill(buf []byte, cells []uint8, states int, on, off color.Color, palette []color.RGBA) {
	if states <= 2 {
		fillBinaryRGBA(buf, cells, on, off)
		return
	}
	fillPaletteRGBA(buf, cells, palette)
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	onPx, offPx := rgba(on), rgba(off)
	for i, c := range cells {
		px := offPx
		if c != 0 {
			px = onPx
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// States past the end of the palette take its last colour. An empty
// palette clears the buffer to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Palette returns one opaque colour per state: black for 0, then a hue
// sweep that avoids wrapping back to red.
func Palette(states int) []color.RGBA {
	p := make([]color.RGBA, max(states, 1))
	p[0] = color.RGBA{A: 0xff}
	for s := 1; s < len(p); s++ {
		hue := 300 * float64(s-1) / float64(max(len(p)-1, 1))
		p[s] = hsv(hue, 0.8, 1)
	}
	return p
}

func hsv(h, s, v float64) color.RGBA {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g = c, x
	case h < 120:
		r, g = x, c
	case h < 180:
		g, b = c, x
	case h < 240:
		g, b = x, c
	case h < 300:
		r, b = x, c
	default:
		r, b = c, x
	}
	to := func(f float64) uint8 { return uint8(math.Round((f + m) * 255)) }
	return color.RGBA{R: to(r), G: to(g), B: to(b), A: 0xff}
}

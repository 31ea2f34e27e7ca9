//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from cell data.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	states  int
	palette []color.RGBA
}

// NewGridPainter allocates a painter for a w*h grid of an automaton with
// the given number of states.
func NewGridPainter(w, h, states int) *GridPainter {
	return &GridPainter{
		w:       w,
		h:       h,
		img:     ebiten.NewImage(w, h),
		buf:     make([]byte, 4*w*h),
		states:  states,
		palette: Palette(states),
	}
}

// Blit uploads cells into the painter image and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	Fill(gp.buf, cells, gp.states, on, off, gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

//go:build ebiten

package ui

import (
	"image/color"

	"cage/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 8
	lineHeight   = 16
)

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headerColor     = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	valueColor      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor        = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim   core.Sim
	width int
	title string
	rows  []Row
	panel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	return &HUD{
		sim:   sim,
		width: max(width, 0),
		title: Title(sim.Name()),
		rows:  Rows(sim.Parameters()),
	}
}

// Width is the horizontal space the panel occupies.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Draw paints the panel at offsetX with the given status line at the bottom.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, status string) {
	if h == nil || h.width == 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBackground)

	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	text.Draw(h.panel, h.title, face, panelPadding, y, headerColor)
	for _, r := range h.rows {
		y += lineHeight
		col := valueColor
		if r.Header {
			y += lineHeight / 2
			col = headerColor
		}
		text.Draw(h.panel, r.Text, face, panelPadding, y, col)
	}
	text.Draw(h.panel, status, face, panelPadding, height-panelPadding, dimColor)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

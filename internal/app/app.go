//go:build ebiten

package app

import (
	"image/color"

	"cage/internal/play"
	"cage/internal/render"
	"cage/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const panelWidth = 220

var burstKeys = []ebiten.Key{
	ebiten.Key0, ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
	ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// Game adapts a play session to the ebiten.Game interface.
type Game struct {
	s       *play.Session
	painter *render.GridPainter
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game for the provided session.
func New(s *play.Session, scale int) *Game {
	size := s.Size()
	return &Game{
		s:        s,
		painter:  render.NewGridPainter(size.W, size.H, s.Sim().States()),
		hud:      ui.NewHUD(s.Sim(), panelWidth),
		onColor:  color.White,
		offColor: color.Black,
		scale:    max(scale, 1),
	}
}

// Run opens the window and blocks until it closes.
func Run(g *Game, cfg Config) error {
	size := g.s.Size()
	ebiten.SetWindowTitle("cage - " + g.s.Sim().Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*g.scale+g.hud.Width(), size.H*g.scale)
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

// Update handles per-frame input and advances the session.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.s.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.s.Burst(1)
	}
	for i, k := range burstKeys {
		if inpututil.IsKeyJustPressed(k) {
			if i == 0 {
				i = 10
			}
			g.s.Burst(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.s.Reset(g.s.Seed()); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.s.Reseed(); err != nil {
			return err
		}
	}
	// A failed step halts the session; the window stays up to show it.
	_, _ = g.s.Tick()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.s.Cells(), g.onColor, g.offColor, g.scale)
	size := g.s.Size()
	g.hud.Draw(screen, size.W*g.scale, ui.Status(g.s.Sim().Generation(), g.s.Mode()))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.s.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}

// Package term is an interactive terminal player built on gocui.
package term

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"cage/internal/core"
	"cage/internal/play"
	"cage/internal/render"
)

// frameInterval is how often the field is redrawn. Steps are paced
// separately by the player's FixedStep.
const frameInterval = 16 * time.Millisecond

// maxCatchUp bounds the steps taken in one frame after a stall.
const maxCatchUp = 8

const (
	fieldView  = "field"
	statusView = "status"
	helpView   = "help"
)

type keyBinding struct {
	key     interface{}
	name    string
	descr   string
	handler func() error
}

// Player shows a session in the terminal. Space toggles running, enter
// single-steps, digits run a burst of that many steps (0 means ten), r
// resets with the same seed, s reseeds and q or escape quits.
type Player struct {
	s    *play.Session
	text *render.Text
	fs   *core.FixedStep
	keys []keyBinding
	log  *slog.Logger
}

// New wraps a session. tps bounds the free-running step rate.
func New(s *play.Session, tps int, color bool, log *slog.Logger) *Player {
	if log == nil {
		log = slog.Default()
	}
	p := &Player{s: s, text: render.NewText(s.Sim().States(), color), fs: core.NewFixedStep(tps), log: log}
	p.keys = []keyBinding{
		{gocui.KeySpace, "SPACE", "Run/pause", p.cmdToggle},
		{gocui.KeyEnter, "ENTER", "Step", p.cmdStep},
		{'r', "R", "Reset", p.cmdReset},
		{'s', "S", "Reseed", p.cmdReseed},
		{'q', "Q", "Quit", cmdQuit},
		{gocui.KeyEsc, "ESC", "Quit", cmdQuit},
		{gocui.KeyCtrlC, "^C", "Quit", cmdQuit},
	}
	for d := '0'; d <= '9'; d++ {
		n := int(d - '0')
		if n == 0 {
			n = 10
		}
		p.keys = append(p.keys, keyBinding{d, "", "", func() error { p.s.Burst(n); return nil }})
	}
	return p
}

// Run takes over the terminal until the user quits.
func (p *Player) Run() error {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer g.Close()

	g.SetManagerFunc(p.layout)
	for _, kb := range p.keys {
		h := kb.handler
		if err := g.SetKeybinding("", kb.key, gocui.ModNone, func(*gocui.Gui, *gocui.View) error { return h() }); err != nil {
			return fmt.Errorf("terminal: bind %v: %w", kb.key, err)
		}
	}

	done := make(chan struct{})
	defer close(done)
	go p.pump(g, done)

	if err := g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

// pump redraws the field every frame on the gocui loop and advances the
// session as far as the step pacing allows.
func (p *Player) pump(g *gocui.Gui, done <-chan struct{}) {
	t := time.NewTicker(frameInterval)
	defer t.Stop()
	for {
		select {
		case <-done:
			return
		case <-t.C:
			g.Update(func(g *gocui.Gui) error {
				p.advance()
				return p.draw(g)
			})
		}
	}
}

// advance ticks the session once per elapsed step interval, up to
// maxCatchUp times, and returns how many steps were taken.
func (p *Player) advance() int {
	n := 0
	for i := 0; i < maxCatchUp && p.fs.ShouldStep(); i++ {
		stepped, err := p.s.Tick()
		if err != nil {
			p.log.Warn("tick", "error", err)
			break
		}
		if stepped {
			n++
		}
	}
	return n
}

func (p *Player) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if v, err := g.SetView(fieldView, 0, 0, maxX-1, maxY-4); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = p.s.Sim().Name()
	}
	if v, err := g.SetView(statusView, 0, maxY-3, maxX-1, maxY-1); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Frame = false
	}
	if v, err := g.SetView(helpView, 0, maxY-2, maxX-1, maxY); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Frame = false
		fmt.Fprint(v, p.help())
	}
	return p.draw(g)
}

func (p *Player) draw(g *gocui.Gui) error {
	if v, err := g.View(fieldView); err == nil {
		v.Clear()
		fmt.Fprint(v, p.field())
	}
	if v, err := g.View(statusView); err == nil {
		v.Clear()
		fmt.Fprint(v, p.status())
	}
	return nil
}

func (p *Player) field() string {
	return p.text.Frame(p.s.Size(), p.s.Cells(), p.s.Agents())
}

func (p *Player) status() string {
	sim := p.s.Sim()
	line := fmt.Sprintf(" t = %d  %s  live %d  seed %d", sim.Generation(), p.s.Mode(), core.Live(sim.Cells()), p.s.Seed())
	if err := p.s.Err(); err != nil {
		line += "  " + aurora.Red(err.Error()).String()
	}
	return line
}

func (p *Player) help() string {
	var b bytes.Buffer
	b.WriteString(" ")
	for _, k := range p.keys {
		if k.name == "" {
			continue
		}
		if b.Len() > 1 {
			b.WriteString(", ")
		}
		b.WriteString(aurora.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	b.WriteString(", 0-9: Burst")
	return b.String()
}

func (p *Player) cmdToggle() error { p.s.Toggle(); return nil }

func (p *Player) cmdStep() error { p.s.Burst(1); return nil }

func (p *Player) cmdReset() error { return p.s.Reset(p.s.Seed()) }

func (p *Player) cmdReseed() error { return p.s.Reseed() }

func cmdQuit() error { return gocui.ErrQuit }

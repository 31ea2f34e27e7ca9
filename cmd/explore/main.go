// Command explore prints samples of one-dimensional rules, one block per
// code, to help classify their behaviour by eye.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/integrii/flaggy"

	"cage/internal/logging"
	"cage/internal/render"
	"cage/internal/sims/elementary"
	"cage/internal/sims/lineartotal"
	"cage/pkg/cage"
)

type options struct {
	family string
	width  int
	radius int
	from   int
	to     int
	stride int
	seed   int
	color  bool
}

func main() {
	o := options{family: "total", width: 79, radius: 2, from: 0, to: -1, stride: 2, seed: 1}
	flaggy.SetName("explore")
	flaggy.SetDescription("Sample one-dimensional cellular automaton rules")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&o.family, "f", "family", "Rule family [total|elementary]")
	flaggy.Int(&o.width, "w", "width", "Line length")
	flaggy.Int(&o.radius, "r", "radius", "Neighborhood radius for totalistic rules")
	flaggy.Int(&o.from, "a", "from", "First code")
	flaggy.Int(&o.to, "b", "to", "Last code, -1 for the last code of the family")
	flaggy.Int(&o.stride, "s", "stride", "Code increment")
	flaggy.Int(&o.seed, "e", "seed", "Seed for the random start of totalistic rules")
	flaggy.Bool(&o.color, "c", "color", "Colour the output")
	flaggy.Parse()

	if err := explore(os.Stdout, o); err != nil {
		logging.New(os.Stderr, logging.Config{Service: "explore"}).Error("explore failed", "error", err)
		os.Exit(1)
	}
}

func explore(out io.Writer, o options) error {
	var (
		last  int
		build func(code int) (*cage.Automaton, error)
	)
	switch o.family {
	case "total":
		if o.radius < 1 || o.radius > 30 {
			return fmt.Errorf("radius %d out of range 1..30", o.radius)
		}
		last = int(lineartotal.Codes(o.radius)) - 1
		build = func(code int) (*cage.Automaton, error) {
			c := lineartotal.Config{Width: o.width, Radius: o.radius, Code: uint64(code)}
			return lineartotal.Build(c, cage.NewRNG(int64(o.seed)))
		}
	case "elementary":
		last = 255
		build = func(code int) (*cage.Automaton, error) {
			return elementary.Build(elementary.Config{Width: o.width, Rule: uint8(code), Timed: true, Wrap: false})
		}
	default:
		return fmt.Errorf("unknown family %q", o.family)
	}
	to := o.to
	if to < 0 || to > last {
		to = last
	}
	if o.stride < 1 {
		return fmt.Errorf("stride must be positive, got %d", o.stride)
	}

	text := render.NewText(2, o.color)
	for code := max(o.from, 0); code <= to; code += o.stride {
		a, err := build(code)
		if err != nil {
			return fmt.Errorf("code %d: %w", code, err)
		}
		fmt.Fprintf(out, "%d/%d\n", code, last)
		fmt.Fprintln(out, text.Line(a.Map().Cells()))
		for a.Running() {
			if err := a.Step(); err != nil {
				return fmt.Errorf("code %d: %w", code, err)
			}
			fmt.Fprintln(out, text.Line(a.Map().Cells()))
		}
		fmt.Fprintln(out)
	}
	return nil
}

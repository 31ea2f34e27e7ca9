package core

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cage/pkg/cage"
)

// ErrNotReset is returned when stepping a sim before its first Reset.
var ErrNotReset = errors.New("sim has not been reset")

// BuildFunc constructs and seeds a fresh automaton. It receives the RNG
// derived from the reset seed and must draw all randomness from it.
type BuildFunc func(rng *cage.RNG) (*cage.Automaton, error)

// StepObserver is notified after every successful step.
type StepObserver interface {
	ObserveStep(sim string, a *cage.Automaton, took time.Duration)
}

// Engine adapts a cage.Automaton to the Sim interface. Reset rebuilds the
// automaton from scratch so a seed always reproduces the same run.
type Engine struct {
	name   string
	params ParameterSnapshot
	build  BuildFunc

	auto *cage.Automaton
	seed int64

	log      *slog.Logger
	observer StepObserver
}

// NewEngine wraps build under name. params describes the effective
// configuration for display.
func NewEngine(name string, params ParameterSnapshot, build BuildFunc) *Engine {
	return &Engine{name: name, params: params, build: build, log: slog.Default()}
}

// SetLogger replaces the engine's logger.
func (e *Engine) SetLogger(l *slog.Logger) {
	if l != nil {
		e.log = l
	}
}

// SetObserver attaches a step observer such as a metrics recorder.
func (e *Engine) SetObserver(o StepObserver) { e.observer = o }

// Name returns the simulation identifier.
func (e *Engine) Name() string { return e.name }

// Automaton exposes the current automaton, or nil before Reset.
func (e *Engine) Automaton() *cage.Automaton { return e.auto }

// Parameters returns the sim's configuration.
func (e *Engine) Parameters() ParameterSnapshot { return e.params }

// Seed returns the seed of the last Reset.
func (e *Engine) Seed() int64 { return e.seed }

// Reset rebuilds the automaton using the provided seed.
func (e *Engine) Reset(seed int64) error {
	a, err := e.build(cage.NewRNG(seed))
	if err != nil {
		e.log.Error("reset failed", "sim", e.name, "seed", seed, "error", err)
		return fmt.Errorf("%s: reset: %w", e.name, err)
	}
	e.auto = a
	e.seed = seed
	size := e.Size()
	e.log.Debug("sim reset", "sim", e.name, "seed", seed,
		"discipline", a.Discipline().String(), "w", size.W, "h", size.H, "agents", len(a.Agents()))
	return nil
}

// Step advances the automaton by one generation.
func (e *Engine) Step() error {
	if e.auto == nil {
		return fmt.Errorf("%s: %w", e.name, ErrNotReset)
	}
	start := time.Now()
	if err := e.auto.Step(); err != nil {
		e.log.Error("step failed", "sim", e.name, "generation", e.auto.Generation(), "error", err)
		return fmt.Errorf("%s: %w", e.name, err)
	}
	if e.observer != nil {
		e.observer.ObserveStep(e.name, e.auto, time.Since(start))
	}
	return nil
}

// Size returns the grid dimensions.
func (e *Engine) Size() Size {
	if e.auto == nil {
		return Size{}
	}
	ext := e.auto.Map().Topology().Extent()
	if len(ext) == 1 {
		return Size{W: ext[0], H: 1}
	}
	return Size{W: ext[0], H: ext[1]}
}

// Running reports whether the automaton wants another step.
func (e *Engine) Running() bool { return e.auto != nil && e.auto.Running() }

// Generation returns the number of completed steps.
func (e *Engine) Generation() int {
	if e.auto == nil {
		return 0
	}
	return e.auto.Generation()
}

// States returns the declared state count.
func (e *Engine) States() int {
	if e.auto == nil {
		return 0
	}
	return e.auto.States()
}

// Cells exposes the current grid values in raster order.
func (e *Engine) Cells() []uint8 {
	if e.auto == nil {
		return nil
	}
	return e.auto.Map().Cells()
}

// Agents returns the registered agents.
func (e *Engine) Agents() []cage.Agent {
	if e.auto == nil {
		return nil
	}
	return e.auto.Agents()
}

// Live counts the non-zero cells.
func Live(cells []uint8) int {
	n := 0
	for _, c := range cells {
		if c != 0 {
			n++
		}
	}
	return n
}

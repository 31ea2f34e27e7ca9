// Package play holds the interactive run loop shared by the terminal and
// GUI players: pause, bursts of single steps, resets, and a scrolling
// history for one-dimensional sims.
package play

import (
	"log/slog"
	"time"

	"cage/internal/core"
	"cage/internal/render"
	"cage/pkg/cage"
)

// Session drives a sim on behalf of a player. It is not safe for
// concurrent use; players call it from their event loop.
type Session struct {
	sim     core.Sim
	ctl     *core.Control
	seed    int64
	history *render.History
	log     *slog.Logger
	err     error
}

// NewSession resets sim with seed and starts it running. One-dimensional
// sims are shown as a history rows tall.
func NewSession(sim core.Sim, seed int64, rows int, log *slog.Logger) (*Session, error) {
	if log == nil {
		log = slog.Default()
	}
	s := &Session{sim: sim, ctl: core.NewControl(), log: log}
	if err := s.Reset(seed); err != nil {
		return nil, err
	}
	if size := sim.Size(); size.H == 1 && rows > 1 {
		s.history = render.NewHistory(size.W, rows)
		s.history.Push(sim.Cells())
	}
	return s, nil
}

// Sim returns the driven sim.
func (s *Session) Sim() core.Sim { return s.sim }

// Seed returns the seed of the last reset.
func (s *Session) Seed() int64 { return s.seed }

// Toggle pauses or resumes free running.
func (s *Session) Toggle() { s.ctl.Toggle() }

// Burst pauses and queues n single steps.
func (s *Session) Burst(n int) { s.ctl.Burst(n) }

// Paused reports whether the session is not free running.
func (s *Session) Paused() bool { return !s.ctl.Running() }

// Err returns the step error that halted the session, if any.
func (s *Session) Err() error { return s.err }

// Reset restarts the sim from seed and clears any halt.
func (s *Session) Reset(seed int64) error {
	if err := s.sim.Reset(seed); err != nil {
		return err
	}
	s.seed = seed
	s.err = nil
	if s.history != nil {
		s.history.Reset()
		s.history.Push(s.sim.Cells())
	}
	s.log.Info("session reset", "sim", s.sim.Name(), "seed", seed)
	return nil
}

// Reseed restarts the sim from a clock-derived seed.
func (s *Session) Reseed() error { return s.Reset(time.Now().UnixNano()) }

// Tick advances the sim if the control allows it, the sim still wants to
// run and no earlier step failed. It reports whether a step happened.
func (s *Session) Tick() (bool, error) {
	if s.err != nil || !s.sim.Running() || !s.ctl.Next() {
		return false, s.err
	}
	if err := s.sim.Step(); err != nil {
		s.err = err
		s.log.Error("session halted", "sim", s.sim.Name(), "generation", s.sim.Generation(), "error", err)
		return false, err
	}
	if s.history != nil {
		s.history.Push(s.sim.Cells())
	}
	return true, nil
}

// Size is the displayed grid size.
func (s *Session) Size() core.Size {
	if s.history != nil {
		w, h := s.history.Size()
		return core.Size{W: w, H: h}
	}
	return s.sim.Size()
}

// Cells is the displayed grid in raster order.
func (s *Session) Cells() []uint8 {
	if s.history != nil {
		return s.history.Cells()
	}
	return s.sim.Cells()
}

// Agents returns the agents to overlay. History views have none.
func (s *Session) Agents() []cage.Agent {
	if s.history != nil {
		return nil
	}
	return s.sim.Agents()
}

// Mode describes the run state for status lines.
func (s *Session) Mode() string {
	switch {
	case s.err != nil:
		return "halted"
	case !s.sim.Running():
		return "finished"
	case s.Paused():
		return "paused"
	default:
		return "running"
	}
}

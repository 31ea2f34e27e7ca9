package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// SetClock replaces the time source, for tests and replays.
func (f *FixedStep) SetClock(now func() time.Time) {
	f.now = now
	f.last = time.Time{}
}

// Interval is the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Control tracks a player's run state: free running, paused, or a
// pending burst of single steps that pauses again when spent.
type Control struct {
	running bool
	pending int
}

// NewControl returns a control that starts running.
func NewControl() *Control { return &Control{running: true} }

// Toggle switches between running and paused and drops any burst.
func (c *Control) Toggle() {
	c.running = !c.running
	c.pending = 0
}

// Burst pauses free running and queues n steps.
func (c *Control) Burst(n int) {
	c.running = false
	c.pending = n
}

// Running reports whether the control is free running.
func (c *Control) Running() bool { return c.running }

// Next reports whether the player should step on this tick.
func (c *Control) Next() bool {
	if c.running {
		return true
	}
	if c.pending > 0 {
		c.pending--
		return true
	}
	return false
}

package core

import "time"

// maxBacklog bounds how many ticks FixedStep will owe after a long stall.
const maxBacklog = 8

// Clock is the monotonic time source used to gate ticks.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock through time.Now, which carries a
// monotonic reading.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	clock       Clock
	tps         int
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	return NewFixedStepWithClock(tps, SystemClock{})
}

// NewFixedStepWithClock is NewFixedStep with an explicit time source.
func NewFixedStepWithClock(tps int, clock Clock) *FixedStep {
	if clock == nil {
		clock = SystemClock{}
	}
	fs := &FixedStep{clock: clock}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.tps = tps
	f.step = time.Second / time.Duration(tps)
}

// TPS returns the configured tick rate.
func (f *FixedStep) TPS() int { return f.tps }

// Interval returns the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
// Calling it repeatedly within one frame drains any backlog one tick at a time.
func (f *FixedStep) ShouldStep() bool {
	f.advance()
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Sync discards elapsed time so that the next tick is a full interval away.
// Paused loops call it every frame to avoid a burst of ticks on resume.
func (f *FixedStep) Sync() {
	f.last = f.clock.Now()
	f.accumulator = 0
}

func (f *FixedStep) advance() {
	now := f.clock.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta > 0 {
		f.accumulator += delta
	}
	if limit := f.step * maxBacklog; f.accumulator > limit {
		f.accumulator = limit
	}
}

package core

import "time"

// MaxCatchUp bounds how many ticks Advance reports after a long stall.
const MaxCatchUp = 5

// FixedStep paces simulation ticks at a steady rate independent of the frame
// rate of whoever drives it.
type FixedStep struct {
	tps         int
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep targeting tps ticks per second. The
// first call to Advance owes one tick.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate; non-positive values fall back to 60.
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

// Advance accounts for the time elapsed up to now and returns the number of
// ticks that are due, at most MaxCatchUp. Time beyond the cap is dropped.
func (f *FixedStep) Advance(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
	}
	if delta := now.Sub(f.last); delta > 0 {
		f.accumulator += delta
	}
	f.last = now

	due := 0
	for f.accumulator >= f.step && due < MaxCatchUp {
		f.accumulator -= f.step
		due++
	}
	if due == MaxCatchUp {
		f.accumulator = 0
	}
	return due
}

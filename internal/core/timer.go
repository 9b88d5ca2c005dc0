package core

import "time"

// FixedStep converts wall-clock time into a steady number of simulation ticks,
// so front ends with irregular frame cadence (terminals especially) advance
// the simulation at a fixed rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{}
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

// Steps reports how many ticks are due since the last call, capped at max so
// a stalled frame cannot trigger an unbounded catch-up burst. Leftover time
// beyond the cap is dropped.
func (f *FixedStep) Steps(max int) int {
	if max <= 0 {
		max = 1
	}
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now

	n := 0
	for f.accumulator >= f.step && n < max {
		f.accumulator -= f.step
		n++
	}
	if f.accumulator >= f.step {
		f.accumulator = 0
	}
	return n
}

// ShouldStep reports whether at least one tick is due. Equivalent to
// Steps(1) == 1.
func (f *FixedStep) ShouldStep() bool {
	return f.Steps(1) == 1
}

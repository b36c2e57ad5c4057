package bounce

import "time"

// FixedStep decouples the simulation rate from the frame rate. Each frame
// adds its wall-clock duration to an accumulator, which is then drained in
// whole ticks. A fast frame may run no ticks, a slow one several.
type FixedStep struct {
	tick     time.Duration
	maxFrame time.Duration
	acc      time.Duration
}

// NewFixedStep creates a scheduler for the given tick length. maxFrame caps
// how much time a single frame may add (0 = no cap).
func NewFixedStep(tick, maxFrame time.Duration) *FixedStep {
	return &FixedStep{tick: tick, maxFrame: maxFrame}
}

// Advance adds the frame's elapsed time and calls step once per whole tick
// available. It returns the number of ticks run.
func (f *FixedStep) Advance(elapsed time.Duration, step func()) int {
	if f.tick <= 0 || elapsed <= 0 {
		return 0
	}
	if f.maxFrame > 0 && elapsed > f.maxFrame {
		elapsed = f.maxFrame
	}

	f.acc += elapsed
	n := 0
	for f.acc >= f.tick {
		f.acc -= f.tick
		step()
		n++
	}
	return n
}

// Pending returns the unconsumed time left in the accumulator.
func (f *FixedStep) Pending() time.Duration {
	return f.acc
}

// Alpha returns how far the accumulator is into the next tick, in [0, 1).
// Renderers can use it to interpolate between ticks.
func (f *FixedStep) Alpha() float64 {
	if f.tick <= 0 {
		return 0
	}
	return float64(f.acc) / float64(f.tick)
}

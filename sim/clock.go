// Package sim runs the simulation: a fixed-timestep clock decoupled from the
// presentation rate, the loop that drives it, and the level session that owns
// the world.
package sim

import "time"

// Clock banks wall-clock time and drains it in fixed steps.
type Clock struct {
	FrameTime time.Duration
	MaxSkip   int

	acc time.Duration
}

func NewClock(frameTime time.Duration, maxSkip int) *Clock {
	return &Clock{FrameTime: frameTime, MaxSkip: maxSkip}
}

// Advance banks elapsed and reports how many fixed steps to run now and the
// interpolation alpha in [0,1) for presentation. When more than MaxSkip steps
// are owed, the whole frames beyond the cap are dropped and only the
// fractional remainder is kept.
func (c *Clock) Advance(elapsed time.Duration) (int, float64) {
	if elapsed > 0 {
		c.acc += elapsed
	}

	steps := 0
	for c.acc >= c.FrameTime && steps < c.MaxSkip {
		c.acc -= c.FrameTime
		steps++
	}
	if c.acc >= c.FrameTime {
		c.acc %= c.FrameTime
	}

	return steps, float64(c.acc) / float64(c.FrameTime)
}

// Pending is the banked time not yet simulated.
func (c *Clock) Pending() time.Duration {
	return c.acc
}

func (c *Clock) Reset() {
	c.acc = 0
}

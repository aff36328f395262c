package sim

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockAdvance(t *testing.T) {
	tests := []struct {
		name      string
		elapsed   []time.Duration
		wantSteps int
		wantAlpha float64
	}{
		{"nothing elapsed", []time.Duration{0}, 0, 0},
		{"partial frame", []time.Duration{4 * time.Millisecond}, 0, 0.4},
		{"two and a half frames", []time.Duration{25 * time.Millisecond}, 2, 0.5},
		{"remainder carries over", []time.Duration{25 * time.Millisecond, 5 * time.Millisecond}, 1, 0},
		{"exactly max skip", []time.Duration{50 * time.Millisecond}, 5, 0},
		{"over max skip keeps fraction", []time.Duration{87 * time.Millisecond}, 5, 0.7},
		{"far behind drops whole frames", []time.Duration{time.Second}, 5, 0},
		{"negative is ignored", []time.Duration{-time.Second}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClock(10*time.Millisecond, 5)
			var steps int
			var alpha float64
			for _, e := range tt.elapsed {
				steps, alpha = c.Advance(e)
			}
			assert.Equal(t, tt.wantSteps, steps)
			assert.InDelta(t, tt.wantAlpha, alpha, 1e-9)
		})
	}
}

func TestClockRandomFrames(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := NewClock(time.Second/60, 5)

	total := time.Duration(0)
	simulated := time.Duration(0)
	for i := 0; i < 1000; i++ {
		elapsed := time.Duration(rng.Int63n(int64(40 * time.Millisecond)))
		total += elapsed

		steps, alpha := c.Advance(elapsed)
		simulated += time.Duration(steps) * c.FrameTime

		assert.LessOrEqual(t, steps, c.MaxSkip)
		assert.GreaterOrEqual(t, alpha, 0.0)
		assert.Less(t, alpha, 1.0)
		assert.Less(t, c.Pending(), c.FrameTime)
	}
	// nothing is dropped while the host keeps up
	assert.Equal(t, total, simulated+c.Pending())
}

func TestFPSCounter(t *testing.T) {
	var f FPSCounter
	assert.Zero(t, f.FPS())

	for i := 0; i < 30; i++ {
		f.Tick(time.Second / 30)
	}
	assert.Zero(t, f.FPS(), "no full second yet")

	for i := 0; i < 30; i++ {
		f.Tick(time.Second / 30)
	}
	assert.InDelta(t, 30, f.FPS(), 1)
}

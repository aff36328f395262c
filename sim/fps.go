package sim

import "time"

// FPSCounter counts presentation ticks per wall-clock second.
type FPSCounter struct {
	frames int
	window time.Duration
	fps    float64
}

func (f *FPSCounter) Tick(elapsed time.Duration) {
	f.frames++
	f.window += elapsed
	if f.window >= time.Second {
		f.fps = float64(f.frames) / f.window.Seconds()
		f.frames = 0
		f.window = 0
	}
}

// FPS is the rate measured over the last full second.
func (f *FPSCounter) FPS() float64 {
	return f.fps
}

func msToDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

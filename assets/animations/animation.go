package animations

import "errors"

// ErrEmptyAnimation is returned when a frame is requested from an animation
// that has no frames loaded.
var ErrEmptyAnimation = errors.New("animation has no frames")

// Frame is an opaque handle into a sprite sheet.
type Frame int

type Animation struct {
	frames          []Frame
	FrameDurationMs float64
	Loop            bool
	Speed           float64 // multiplier on elapsed time, 1 is normal speed
	elapsed         float64
	index           int
}

func New(frames []Frame, frameDurationMs float64, loop bool) *Animation {
	return &Animation{
		frames:          frames,
		FrameDurationMs: frameDurationMs,
		Loop:            loop,
		Speed:           1,
	}
}

// FromIndices builds an animation from raw sheet indices.
func FromIndices(indices []int, frameDurationMs float64, loop bool) *Animation {
	frames := make([]Frame, len(indices))
	for i, idx := range indices {
		frames[i] = Frame(idx)
	}
	return New(frames, frameDurationMs, loop)
}

// Advance moves the clock forward by dtMs of wall-clock time. Single-frame
// animations never advance.
func (a *Animation) Advance(dtMs float64) {
	if len(a.frames) <= 1 {
		return
	}

	a.elapsed += dtMs * a.Speed
	if a.elapsed <= a.FrameDurationMs {
		return
	}

	a.elapsed = 0
	switch {
	case a.index < len(a.frames)-1:
		a.index++
	case a.Loop:
		a.index = 0
	}
}

func (a *Animation) Restart() {
	a.index = 0
	a.elapsed = 0
}

func (a *Animation) CurrentFrame() (Frame, error) {
	if len(a.frames) == 0 {
		return 0, ErrEmptyAnimation
	}
	return a.frames[a.index], nil
}

func (a *Animation) Index() int {
	return a.index
}

func (a *Animation) Len() int {
	return len(a.frames)
}

// Finished reports whether a one-shot animation is holding its last frame.
func (a *Animation) Finished() bool {
	return !a.Loop && len(a.frames) > 0 && a.index == len(a.frames)-1
}

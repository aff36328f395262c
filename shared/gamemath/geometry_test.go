package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersect(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Segment
		want   Point
		wantOK bool
	}{
		{
			name:   "crossing diagonals",
			a:      Segment{Point{0, 0}, Point{10, 10}},
			b:      Segment{Point{0, 10}, Point{10, 0}},
			want:   Point{5, 5},
			wantOK: true,
		},
		{
			name:   "touching at endpoint",
			a:      Segment{Point{0, 0}, Point{10, 0}},
			b:      Segment{Point{10, -5}, Point{10, 5}},
			want:   Point{10, 0},
			wantOK: true,
		},
		{
			name: "lines cross beyond segment",
			a:    Segment{Point{0, 0}, Point{4, 0}},
			b:    Segment{Point{5, -5}, Point{5, 5}},
		},
		{
			name: "parallel",
			a:    Segment{Point{0, 0}, Point{10, 0}},
			b:    Segment{Point{0, 1}, Point{10, 1}},
		},
		{
			name: "collinear overlapping",
			a:    Segment{Point{0, 0}, Point{10, 0}},
			b:    Segment{Point{5, 0}, Point{15, 0}},
		},
		{
			name: "zero length",
			a:    Segment{Point{3, 3}, Point{3, 3}},
			b:    Segment{Point{0, 3}, Point{10, 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Intersect(tt.a, tt.b)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want.X, got.X, 1e-9)
				assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
			}
		})
	}
}

func TestIntersectsRect(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 10, H: 10}

	assert.True(t, IntersectsRect(Segment{Point{0, 15}, Point{30, 15}}, r), "passes through")
	assert.True(t, IntersectsRect(Segment{Point{0, 15}, Point{15, 15}}, r), "ends inside")
	assert.False(t, IntersectsRect(Segment{Point{0, 0}, Point{30, 0}}, r), "above")
	assert.False(t, IntersectsRect(Segment{Point{12, 12}, Point{18, 18}}, r), "fully inside never touches an edge")
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	assert.True(t, a.Overlaps(Rect{X: 5, Y: 5, W: 10, H: 10}))
	assert.False(t, a.Overlaps(Rect{X: 10, Y: 0, W: 10, H: 10}), "shared right edge")
	assert.False(t, a.Overlaps(Rect{X: 0, Y: 10, W: 10, H: 10}), "shared bottom edge")
	assert.True(t, a.Overlaps(Rect{X: 9.5, Y: 9.5, W: 1, H: 1}))
}

func TestRectContainsStrict(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 16, H: 16}

	assert.True(t, r.ContainsStrict(Point{8, 8}))
	assert.False(t, r.ContainsStrict(Point{0, 8}), "on left edge")
	assert.False(t, r.ContainsStrict(Point{8, 16}), "on bottom edge")
}

func TestApplyFriction(t *testing.T) {
	assert.InDelta(t, 4.8, ApplyFriction(5, 0.2), 1e-9)
	assert.InDelta(t, -4.8, ApplyFriction(-5, 0.2), 1e-9)
	assert.Equal(t, 0.0, ApplyFriction(0.1, 0.2))
	assert.Equal(t, 0.0, ApplyFriction(-0.2, 0.2))
}

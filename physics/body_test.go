package physics

import (
	"math/rand"
	"testing"

	"github.com/automoto/slimehop/config"
	"github.com/automoto/slimehop/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPhysics = config.PhysicsConfig{GravityIncrease: 0.5, GravityMax: 9.8, CellSize: 16}

func newTestBody(grid *TileGrid, x, y, w, h float64) *Body {
	return NewBody(grid, x, y, config.BodyConfig{Width: w, Height: h}, testPhysics)
}

func TestRectFollowsOffsets(t *testing.T) {
	b := NewBody(nil, 100, 50, config.BodyConfig{OffsetX: 17, OffsetY: 5, Width: 15, Height: 32}, testPhysics)
	assert.Equal(t, gamemath.Rect{X: 117, Y: 55, W: 15, H: 32}, b.Rect())

	b.X = 10
	assert.Equal(t, 27.0, b.Rect().X)
}

func TestApplyGravityMonotonic(t *testing.T) {
	b := newTestBody(nil, 0, 0, 10, 10)
	b.DY = -8.75

	prev := b.DY
	for i := 0; i < 100; i++ {
		b.ApplyGravity()
		assert.GreaterOrEqual(t, b.DY, prev)
		assert.LessOrEqual(t, b.DY, testPhysics.GravityMax)
		prev = b.DY
	}
	assert.Equal(t, testPhysics.GravityMax, b.DY)
}

func TestMoveAndResolveZeroIsNoop(t *testing.T) {
	grid := NewTileGrid(64, 64, 16, rowOfTiles(48, 0, 3))
	b := newTestBody(grid, 3.5, 7.25, 10, 10)
	b.DX, b.DY = 1.5, -2

	res := b.MoveAndResolve(0, 0)

	assert.Equal(t, Resolution{}, res)
	assert.Equal(t, 3.5, b.X)
	assert.Equal(t, 7.25, b.Y)
	assert.Equal(t, 1.5, b.DX)
	assert.Equal(t, -2.0, b.DY)
}

func TestMoveAndResolveLanding(t *testing.T) {
	grid := NewTileGrid(64, 64, 16, []gamemath.Rect{{X: 0, Y: 20, W: 20, H: 10}})
	b := newTestBody(grid, 0, 0, 10, 15)
	b.DY = 5.5

	res := b.MoveAndResolve(0, b.DY)

	assert.True(t, res.Grounded)
	assert.False(t, res.HeadBump)
	assert.Equal(t, 5.0, b.Y)
	assert.Equal(t, 0.0, b.DY)
}

func TestMoveAndResolveHeadBump(t *testing.T) {
	grid := NewTileGrid(64, 64, 16, []gamemath.Rect{{X: 0, Y: 0, W: 32, H: 16}})
	b := newTestBody(grid, 4, 20, 10, 10)
	b.DY = -8

	res := b.MoveAndResolve(0, b.DY)

	assert.True(t, res.HeadBump)
	assert.Equal(t, 16.0, b.Y)
	assert.Equal(t, 0.0, b.DY)
}

func TestMoveAndResolveWalls(t *testing.T) {
	grid := NewTileGrid(128, 64, 16, []gamemath.Rect{
		{X: 64, Y: 0, W: 16, H: 64},
		{X: -16, Y: 0, W: 16, H: 64},
	})

	right := newTestBody(grid, 50, 10, 10, 10)
	res := right.MoveAndResolve(8, 0)
	assert.True(t, res.BlockedX)
	assert.Equal(t, 54.0, right.X)

	// the resolved coordinate is exactly zero and must still be written
	left := newTestBody(grid, 3, 10, 10, 10)
	res = left.MoveAndResolve(-5, 0)
	assert.True(t, res.BlockedX)
	assert.True(t, res.ResolvedX)
	assert.Equal(t, 0.0, left.X)
}

func TestMoveAndResolveOffsetBody(t *testing.T) {
	grid := NewTileGrid(128, 128, 16, rowOfTiles(96, 0, 7))
	b := NewBody(grid, 0, 50, config.BodyConfig{OffsetX: 17, OffsetY: 5, Width: 15, Height: 32}, testPhysics)

	res := b.MoveAndResolve(0, 9.8)

	require.True(t, res.Grounded)
	assert.Equal(t, 96.0, b.Rect().Bottom())
	assert.Equal(t, 59.0, b.Y)
}

func TestWalkingAlongFloorIsNotBlocked(t *testing.T) {
	grid := NewTileGrid(128, 64, 16, rowOfTiles(48, 0, 7))
	b := newTestBody(grid, 10, 38, 10, 10)

	res := b.MoveAndResolve(3.25, 0.5)

	assert.False(t, res.BlockedX)
	assert.True(t, res.Grounded)
	assert.Equal(t, 13.25, b.X)
	assert.Equal(t, 38.0, b.Y)
}

func TestMoveAndResolveNeverLeavesOverlap(t *testing.T) {
	const cols, rows = 12, 12
	rng := rand.New(rand.NewSource(7))

	// positions and deltas are multiples of 1/4 so the arithmetic is exact
	quarter := func(lo, hi float64) float64 {
		steps := int((hi - lo) * 4)
		return lo + float64(rng.Intn(steps+1))/4
	}

	for trial := 0; trial < 200; trial++ {
		var tiles []gamemath.Rect
		for c := 0; c < cols; c++ {
			for r := 0; r < rows; r++ {
				if rng.Float64() < 0.3 {
					tiles = append(tiles, gamemath.Rect{X: float64(c * 16), Y: float64(r * 16), W: 16, H: 16})
				}
			}
		}
		grid := NewTileGrid(cols*16, rows*16, 16, tiles)

		w := float64(4 + rng.Intn(13))
		h := float64(4 + rng.Intn(13))

		var b *Body
		for {
			b = newTestBody(grid, quarter(0, cols*16-w), quarter(0, rows*16-h), w, h)
			if _, hit := grid.FirstOverlapping(b.Rect()); !hit {
				break
			}
		}

		for step := 0; step < 20; step++ {
			b.MoveAndResolve(quarter(-15.75, 15.75), quarter(-15.75, 15.75))

			tile, hit := grid.FirstOverlapping(b.Rect())
			require.False(t, hit, "trial %d step %d: %+v overlaps %+v", trial, step, b.Rect(), tile)
		}
	}
}

func TestInterpolated(t *testing.T) {
	b := newTestBody(nil, 0, 0, 10, 10)
	b.SavePosition()
	b.MoveAndResolve(10, -4)

	x, y := b.Interpolated(0.5)
	assert.Equal(t, 5.0, x)
	assert.Equal(t, -2.0, y)

	b.Teleport(40, 40)
	x, y = b.Interpolated(0.3)
	assert.Equal(t, 40.0, x)
	assert.Equal(t, 40.0, y)
}

func TestOverlaps(t *testing.T) {
	a := newTestBody(nil, 0, 0, 10, 10)
	b := newTestBody(nil, 9, 9, 10, 10)
	c := newTestBody(nil, 10, 0, 10, 10)

	assert.True(t, a.Overlaps(b))
	assert.False(t, a.Overlaps(c))
}

func TestCanSee(t *testing.T) {
	grid := NewTileGrid(160, 64, 16, []gamemath.Rect{{X: 64, Y: 0, W: 16, H: 64}})

	slime := newTestBody(grid, 10, 20, 10, 10)
	player := newTestBody(grid, 120, 20, 10, 10)
	assert.False(t, slime.CanSee(player), "wall between them")

	open := NewTileGrid(160, 64, 16, nil)
	slime = newTestBody(open, 10, 20, 10, 10)
	player = newTestBody(open, 120, 20, 10, 10)
	assert.True(t, slime.CanSee(player))
}

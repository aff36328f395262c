package physics

import (
	"math"

	"github.com/automoto/slimehop/config"
	"github.com/automoto/slimehop/shared/gamemath"
)

type Facing int

const (
	FacingRight Facing = 1
	FacingLeft  Facing = -1
)

// Body is a kinematic rectangle moved through a TileGrid. X and Y are the
// draw origin; the collision rectangle sits at a fixed offset from it.
type Body struct {
	X, Y   float64
	DX, DY float64

	// position at the start of the current fixed step
	LastX, LastY float64

	OffsetX, OffsetY float64
	W, H             float64

	Facing Facing

	GravityIncrease float64
	GravityMax      float64

	grid *TileGrid
}

// Resolution reports what MoveAndResolve did on each axis.
type Resolution struct {
	ResolvedX bool // a new x was computed and written
	ResolvedY bool // a new y was computed and written
	BlockedX  bool // horizontal movement hit a tile
	Grounded  bool // landed on top of a tile
	HeadBump  bool // hit the underside of a tile
}

func NewBody(grid *TileGrid, x, y float64, shape config.BodyConfig, phys config.PhysicsConfig) *Body {
	return &Body{
		X:               x,
		Y:               y,
		LastX:           x,
		LastY:           y,
		OffsetX:         shape.OffsetX,
		OffsetY:         shape.OffsetY,
		W:               shape.Width,
		H:               shape.Height,
		Facing:          FacingRight,
		GravityIncrease: phys.GravityIncrease,
		GravityMax:      phys.GravityMax,
		grid:            grid,
	}
}

func (b *Body) Grid() *TileGrid {
	return b.grid
}

// Rect is the collision rectangle in world space.
func (b *Body) Rect() gamemath.Rect {
	return gamemath.Rect{X: b.X + b.OffsetX, Y: b.Y + b.OffsetY, W: b.W, H: b.H}
}

func (b *Body) Center() gamemath.Point {
	return b.Rect().Center()
}

func (b *Body) ApplyGravity() {
	b.DY = math.Min(b.DY+b.GravityIncrease, b.GravityMax)
}

// SavePosition records the current position as the interpolation start.
func (b *Body) SavePosition() {
	b.LastX, b.LastY = b.X, b.Y
}

// Teleport moves the body without leaving an interpolation trail.
func (b *Body) Teleport(x, y float64) {
	b.X, b.Y = x, y
	b.LastX, b.LastY = x, y
}

// Interpolated blends between the last two fixed-step positions.
func (b *Body) Interpolated(alpha float64) (float64, float64) {
	return gamemath.Lerp(b.LastX, b.X, alpha), gamemath.Lerp(b.LastY, b.Y, alpha)
}

func (b *Body) Overlaps(o *Body) bool {
	return b.Rect().Overlaps(o.Rect())
}

// MoveAndResolve displaces the body by (dx, dy), resolving tile collisions
// along X first and then along Y from the X-resolved rectangle. Landing or
// hitting a ceiling zeroes DY.
func (b *Body) MoveAndResolve(dx, dy float64) Resolution {
	var res Resolution
	if dx == 0 && dy == 0 {
		return res
	}
	if b.grid == nil {
		b.X += dx
		b.Y += dy
		return Resolution{ResolvedX: true, ResolvedY: true}
	}

	rect := b.Rect()

	var newX float64
	if tile, ok := b.grid.FirstOverlapping(rect.Translate(dx, 0)); ok {
		res.BlockedX = true
		switch {
		case rect.X < tile.X:
			newX, res.ResolvedX = tile.X-rect.W, true
		case rect.X > tile.X:
			newX, res.ResolvedX = tile.Right(), true
		}
	} else {
		newX, res.ResolvedX = rect.X+dx, true
	}
	if res.ResolvedX {
		rect.X = newX
		b.X = newX - b.OffsetX
	}

	var newY float64
	if tile, ok := b.grid.FirstOverlapping(rect.Translate(0, dy)); ok {
		switch {
		case rect.Y < tile.Y:
			newY, res.ResolvedY = tile.Y-rect.H, true
			res.Grounded = true
			b.DY = 0
		case rect.Y > tile.Y:
			newY, res.ResolvedY = tile.Bottom(), true
			res.HeadBump = true
			b.DY = 0
		}
	} else {
		newY, res.ResolvedY = rect.Y+dy, true
	}
	if res.ResolvedY {
		b.Y = newY - b.OffsetY
	}

	return res
}

// CanSee reports whether the straight line between the two body centers is
// free of tile edges.
func (b *Body) CanSee(target *Body) bool {
	if b.grid == nil {
		return true
	}
	return !b.grid.Blocked(gamemath.Segment{A: b.Center(), B: target.Center()})
}

package actors

import (
	"math/rand"

	"github.com/automoto/slimehop/assets/animations"
	"github.com/automoto/slimehop/config"
	"github.com/automoto/slimehop/physics"
	"github.com/automoto/slimehop/shared/gamemath"
)

// Slime wanders along platforms and drifts toward the player when it can
// see them. It never walks off a ledge.
type Slime struct {
	body *physics.Body
	cfg  config.SlimeConfig
	rng  *rand.Rand
	anim *animations.Animation
}

func NewSlime(body *physics.Body, cfg config.SlimeConfig, anims AnimationSet, rng *rand.Rand) *Slime {
	return &Slime{
		body: body,
		cfg:  cfg,
		rng:  rng,
		anim: anims.Get(config.Idle),
	}
}

func (s *Slime) Kind() Kind                       { return KindSlime }
func (s *Slime) Body() *physics.Body              { return s.body }
func (s *Slime) Animation() *animations.Animation { return s.anim }

func (s *Slime) FixedStep(step *Step) {
	b := s.body
	b.ApplyGravity()

	b.DX = gamemath.ApplyFriction(b.DX, s.cfg.Friction)
	if b.DX == 0 {
		b.DX = s.chooseDirection(step.Target) * s.cfg.MoveSpeed * s.rng.Float64()
	}

	b.MoveAndResolve(0, b.DY)

	if b.DX != 0 && s.groundAhead(b.DX) {
		b.MoveAndResolve(b.DX, 0)
	}

	switch {
	case b.DX > 0:
		b.Facing = physics.FacingRight
	case b.DX < 0:
		b.Facing = physics.FacingLeft
	}
}

// chooseDirection heads toward a visible target standing level with or above
// the slime, otherwise flips a coin.
func (s *Slime) chooseDirection(target *physics.Body) float64 {
	b := s.body
	if target != nil && target.Rect().Bottom() <= b.Rect().Bottom() && b.CanSee(target) {
		if target.Center().X < b.Center().X {
			return -1
		}
		return 1
	}
	if s.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// groundAhead looks one pixel below the left bottom corner after moving by
// dx, in either direction.
func (s *Slime) groundAhead(dx float64) bool {
	grid := s.body.Grid()
	if grid == nil {
		return false
	}

	r := s.body.Rect()
	_, ok := grid.TileAt(gamemath.Point{X: r.X + dx, Y: r.Bottom() + 1})
	return ok
}

func (s *Slime) OnCollision(Controller, *Step) bool {
	return false
}

package actors

import (
	"github.com/automoto/slimehop/assets/animations"
	"github.com/automoto/slimehop/config"
	"github.com/automoto/slimehop/physics"
)

// Pickup is a static entity the player interacts with by touching it:
// coins are collected once, the goal ends the level.
type Pickup struct {
	kind  Kind
	body  *physics.Body
	anim  *animations.Animation
	taken bool
}

func NewCoin(body *physics.Body, anims AnimationSet) *Pickup {
	return &Pickup{kind: KindCoin, body: body, anim: anims.Get(config.Idle)}
}

func NewGoal(body *physics.Body, anims AnimationSet) *Pickup {
	return &Pickup{kind: KindGoal, body: body, anim: anims.Get(config.Idle)}
}

func (p *Pickup) Kind() Kind                       { return p.kind }
func (p *Pickup) Body() *physics.Body              { return p.body }
func (p *Pickup) Animation() *animations.Animation { return p.anim }

func (p *Pickup) FixedStep(*Step) {}

// OnCollision consumes a coin the first time the player touches it.
func (p *Pickup) OnCollision(other Controller, _ *Step) bool {
	if p.kind != KindCoin || other.Kind() != KindPlayer || p.taken {
		return false
	}
	p.taken = true
	return true
}

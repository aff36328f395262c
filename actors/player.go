package actors

import (
	"github.com/automoto/slimehop/assets/animations"
	"github.com/automoto/slimehop/config"
	"github.com/automoto/slimehop/physics"
)

// Player is the state machine for the controllable character.
type Player struct {
	body  *physics.Body
	cfg   config.PlayerConfig
	state config.StateID

	anims   AnimationSet
	current *animations.Animation

	TimeSinceOnGround float64
	inGrace           bool
	graceTimer        float64

	Life  int
	Coins int
}

func NewPlayer(body *physics.Body, cfg config.PlayerConfig, anims AnimationSet) *Player {
	p := &Player{
		body:  body,
		cfg:   cfg,
		state: config.Falling,
		anims: anims,
		Life:  cfg.Life,

		// spawning mid-air does not grant a coyote jump
		TimeSinceOnGround: cfg.FallingAllowanceMs,
	}
	p.current = anims.Get(config.Falling)
	return p
}

func (p *Player) Kind() Kind                       { return KindPlayer }
func (p *Player) Body() *physics.Body              { return p.body }
func (p *Player) Animation() *animations.Animation { return p.current }
func (p *Player) State() config.StateID            { return p.state }
func (p *Player) InGracePeriod() bool              { return p.inGrace }
func (p *Player) Dead() bool                       { return p.Life <= 0 }

// SetState forces a state. Used when spawning and by tests.
func (p *Player) SetState(s config.StateID) {
	p.state = s
	p.selectAnimation()
}

func (p *Player) canJump() bool {
	if p.state == config.Falling {
		return p.TimeSinceOnGround < p.cfg.FallingAllowanceMs
	}
	return !p.state.Airborne()
}

func (p *Player) FixedStep(step *Step) {
	b := p.body
	b.ApplyGravity()
	p.TimeSinceOnGround += step.DtMs

	if p.inGrace {
		p.graceTimer += step.DtMs
		if p.graceTimer > p.cfg.GracePeriodMs {
			p.inGrace = false
			p.graceTimer = 0
		}
	}

	b.DX = 0

	if step.Commands.Has(config.CommandJump) && p.canJump() {
		b.DY = -p.cfg.JumpSpeed
		p.state = config.Jumping
		p.anims.Get(config.Jumping).Restart()
		step.Emit(config.TriggerJumped)
	}

	moving := false
	if step.Commands.Has(config.CommandMoveRight) {
		b.DX = p.cfg.WalkSpeed
		b.Facing = physics.FacingRight
		moving = true
	}
	if step.Commands.Has(config.CommandMoveLeft) {
		b.DX = -p.cfg.WalkSpeed
		b.Facing = physics.FacingLeft
		moving = true
	}

	if !p.state.Airborne() {
		if moving {
			p.state = config.Walking
		} else {
			p.state = config.Standing
		}
	}

	if p.state == config.Jumping && b.DY > 0 {
		p.state = config.Falling
	}

	if !p.state.Airborne() {
		b.DY = b.GravityIncrease
	}

	yBefore := b.Y
	res := b.MoveAndResolve(b.DX, b.DY)

	switch {
	case res.Grounded:
		p.TimeSinceOnGround = 0
		if b.DX != 0 {
			p.state = config.Walking
		} else {
			p.state = config.Standing
		}
	case res.HeadBump:
		b.DY = 0
		p.state = config.Falling
	case b.Y > yBefore:
		p.state = config.Falling
	}

	p.selectAnimation()
}

func (p *Player) selectAnimation() {
	next := p.anims.Get(p.state)
	if next != p.current {
		p.current = next
		if p.state != config.Jumping {
			p.current.Restart()
		}
	}
}

// OnCollision applies the effect of touching another entity. The player is
// never consumed.
func (p *Player) OnCollision(other Controller, step *Step) bool {
	switch other.Kind() {
	case KindSlime:
		if p.inGrace || p.Dead() {
			return false
		}
		p.Life -= p.cfg.SlimeDamage
		if p.Life > 0 {
			p.inGrace = true
			p.graceTimer = 0
			step.Emit(config.TriggerHit)
		} else {
			step.Emit(config.TriggerPlayerLost)
		}
	case KindCoin:
		p.Coins++
		step.Emit(config.TriggerCoinCollected)
	case KindGoal:
		step.Emit(config.TriggerPlayerWon)
	}
	return false
}

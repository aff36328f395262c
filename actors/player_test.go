package actors

import (
	"testing"

	"github.com/automoto/slimehop/config"
	"github.com/automoto/slimehop/physics"
	"github.com/automoto/slimehop/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1000.0 / 60

var (
	testPhysics = config.PhysicsConfig{GravityIncrease: 0.5, GravityMax: 9.8, CellSize: 16}
	testPlayer  = config.PlayerConfig{
		JumpSpeed:          8.75,
		WalkSpeed:          3.3,
		GracePeriodMs:      100,
		FallingAllowanceMs: 20,
		Life:               50,
		SlimeDamage:        10,
		Body:               config.BodyConfig{Width: 10, Height: 15},
	}
)

func newTestPlayer(grid *physics.TileGrid, x, y float64) *Player {
	body := physics.NewBody(grid, x, y, testPlayer.Body, testPhysics)
	return NewPlayer(body, testPlayer, NewAnimationSet(config.CharacterAnimations[config.SheetPlayer]))
}

func step(cmds ...string) *Step {
	return &Step{DtMs: dt, Commands: config.NewCommandSet(cmds...)}
}

func TestPlayerStartsFalling(t *testing.T) {
	p := newTestPlayer(nil, 0, 0)
	assert.Equal(t, config.Falling, p.State())
	assert.Equal(t, 50, p.Life)
}

func TestPlayerLandsOnTile(t *testing.T) {
	grid := physics.NewTileGrid(64, 64, 16, []gamemath.Rect{{X: 0, Y: 20, W: 20, H: 10}})
	p := newTestPlayer(grid, 0, 0)
	p.Body().DY = 5

	p.FixedStep(step())

	assert.Equal(t, 20-testPlayer.Body.Height, p.Body().Y)
	assert.Equal(t, config.Standing, p.State())
	assert.Equal(t, 0.0, p.TimeSinceOnGround)

	for i := 0; i < 30; i++ {
		p.FixedStep(step())
		assert.LessOrEqual(t, p.Body().DY, testPhysics.GravityIncrease)
		assert.Equal(t, 5.0, p.Body().Y)
		assert.Equal(t, config.Standing, p.State())
	}
}

func TestPlayerJump(t *testing.T) {
	grid := physics.NewTileGrid(64, 128, 16, []gamemath.Rect{{X: 0, Y: 100, W: 64, H: 16}})
	p := newTestPlayer(grid, 0, 85)
	p.FixedStep(step())
	require.Equal(t, config.Standing, p.State())

	s := step("Jump")
	p.FixedStep(s)

	assert.Equal(t, config.Jumping, p.State())
	assert.Equal(t, -testPlayer.JumpSpeed, p.Body().DY)
	assert.Equal(t, 85-testPlayer.JumpSpeed, p.Body().Y)
	assert.Equal(t, []config.Trigger{config.TriggerJumped}, s.Triggers)

	// holding jump mid-air does nothing
	s = step("Jump")
	p.FixedStep(s)
	assert.Empty(t, s.Triggers)

	for i := 0; i < 60 && p.State() == config.Jumping; i++ {
		p.FixedStep(step())
	}
	assert.Equal(t, config.Falling, p.State(), "apex passed")
	assert.Greater(t, p.Body().DY, 0.0)

	for i := 0; i < 120 && p.State() == config.Falling; i++ {
		p.FixedStep(step())
	}
	assert.Equal(t, config.Standing, p.State())
	assert.Equal(t, 85.0, p.Body().Y)
}

func TestPlayerCoyoteJump(t *testing.T) {
	tests := []struct {
		name        string
		sinceGround float64
		wantJump    bool
	}{
		{"inside allowance", testPlayer.FallingAllowanceMs - 1, true},
		{"at allowance", testPlayer.FallingAllowanceMs, false},
		{"past allowance", testPlayer.FallingAllowanceMs + 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer(physics.NewTileGrid(64, 64, 16, nil), 0, 0)
			p.SetState(config.Falling)
			// FixedStep adds the step's time before checking the window
			p.TimeSinceOnGround = tt.sinceGround - 16

			s := &Step{DtMs: 16, Commands: config.NewCommandSet("Jump")}
			p.FixedStep(s)

			if tt.wantJump {
				assert.Equal(t, config.Jumping, p.State())
				assert.Contains(t, s.Triggers, config.TriggerJumped)
			} else {
				assert.Equal(t, config.Falling, p.State())
				assert.Empty(t, s.Triggers)
			}
		})
	}
}

func TestPlayerWalkAndFallOffLedge(t *testing.T) {
	grid := physics.NewTileGrid(128, 128, 16, []gamemath.Rect{
		{X: 0, Y: 64, W: 16, H: 16},
		{X: 16, Y: 64, W: 16, H: 16},
	})
	p := newTestPlayer(grid, 10, 49)
	p.FixedStep(step())
	require.Equal(t, config.Standing, p.State())

	p.FixedStep(step("MoveRight"))
	assert.Equal(t, config.Walking, p.State())
	assert.Equal(t, physics.FacingRight, p.Body().Facing)
	assert.InDelta(t, 13.3, p.Body().X, 1e-9)

	for i := 0; i < 20 && p.State() == config.Walking; i++ {
		p.FixedStep(step("MoveRight"))
	}
	assert.Equal(t, config.Falling, p.State())
	assert.Greater(t, p.Body().Rect().X, 32.0-testPlayer.Body.Width)

	p.FixedStep(step("MoveLeft"))
	assert.Equal(t, physics.FacingLeft, p.Body().Facing)
	assert.Equal(t, config.Falling, p.State(), "moving in the air keeps the air state")
}

func TestPlayerHeadBump(t *testing.T) {
	grid := physics.NewTileGrid(64, 128, 16, []gamemath.Rect{
		{X: 0, Y: 0, W: 64, H: 16},
		{X: 0, Y: 60, W: 64, H: 16},
	})
	p := newTestPlayer(grid, 0, 45)
	p.FixedStep(step())
	require.Equal(t, config.Standing, p.State())

	p.FixedStep(step("Jump"))
	for i := 0; i < 10 && p.State() == config.Jumping; i++ {
		p.FixedStep(step())
	}

	assert.Equal(t, config.Falling, p.State())
	assert.Equal(t, 16.0, p.Body().Y)
	assert.Equal(t, 0.0, p.Body().DY)
}

func TestPlayerMoveLeftWinsOverMoveRight(t *testing.T) {
	grid := physics.NewTileGrid(64, 64, 16, []gamemath.Rect{{X: 0, Y: 32, W: 64, H: 16}})
	p := newTestPlayer(grid, 20, 17)
	p.FixedStep(step())
	require.Equal(t, config.Standing, p.State())

	p.FixedStep(step("MoveRight", "MoveLeft"))

	assert.Equal(t, -testPlayer.WalkSpeed, p.Body().DX)
	assert.Equal(t, physics.FacingLeft, p.Body().Facing)
	assert.Equal(t, config.Walking, p.State())
	assert.InDelta(t, 20-testPlayer.WalkSpeed, p.Body().X, 1e-9)
}

func TestPlayerIgnoresUnknownCommands(t *testing.T) {
	grid := physics.NewTileGrid(64, 64, 16, []gamemath.Rect{{X: 0, Y: 32, W: 64, H: 16}})
	p := newTestPlayer(grid, 0, 17)

	p.FixedStep(step("Fly", "Dash"))

	assert.Equal(t, config.Standing, p.State())
	assert.Equal(t, 0.0, p.Body().X)
}

func TestPlayerAnimationFollowsState(t *testing.T) {
	grid := physics.NewTileGrid(64, 64, 16, []gamemath.Rect{{X: 0, Y: 32, W: 64, H: 16}})
	p := newTestPlayer(grid, 0, 17)

	p.FixedStep(step())
	assert.Same(t, p.anims[config.Standing], p.Animation())

	p.FixedStep(step("MoveRight"))
	assert.Same(t, p.anims[config.Walking], p.Animation())

	p.FixedStep(step("Jump"))
	assert.Same(t, p.anims[config.Jumping], p.Animation())
}

func TestPlayerSlimeDamageAndGrace(t *testing.T) {
	p := newTestPlayer(physics.NewTileGrid(64, 64, 16, nil), 0, 0)
	slime := NewSlime(physics.NewBody(nil, 0, 0, config.BodyConfig{Width: 10, Height: 12}, testPhysics), config.SlimeConfig{}, nil, nil)

	s := step()
	p.OnCollision(slime, s)
	assert.Equal(t, 40, p.Life)
	assert.True(t, p.InGracePeriod())
	assert.Equal(t, []config.Trigger{config.TriggerHit}, s.Triggers)

	s = step()
	p.OnCollision(slime, s)
	assert.Equal(t, 40, p.Life, "no damage during grace")
	assert.Empty(t, s.Triggers)

	// grace clears once its timer exceeds the period
	for i := 0; i < 7; i++ {
		p.FixedStep(step())
	}
	assert.False(t, p.InGracePeriod())

	p.OnCollision(slime, step())
	assert.Equal(t, 30, p.Life)
}

func TestPlayerLosesAtZeroLife(t *testing.T) {
	p := newTestPlayer(nil, 0, 0)
	p.Life = 10
	slime := NewSlime(physics.NewBody(nil, 0, 0, config.BodyConfig{Width: 10, Height: 12}, testPhysics), config.SlimeConfig{}, nil, nil)

	s := step()
	p.OnCollision(slime, s)

	assert.True(t, p.Dead())
	assert.False(t, p.InGracePeriod())
	assert.Equal(t, []config.Trigger{config.TriggerPlayerLost}, s.Triggers)
}

func TestPlayerCollectsAndWins(t *testing.T) {
	p := newTestPlayer(nil, 0, 0)
	coin := NewCoin(physics.NewBody(nil, 0, 0, config.BodyConfig{Width: 15, Height: 15}, testPhysics), nil)
	goal := NewGoal(physics.NewBody(nil, 0, 0, config.BodyConfig{Width: 20, Height: 30}, testPhysics), nil)

	s := step()
	assert.False(t, p.OnCollision(coin, s))
	p.OnCollision(goal, s)

	assert.Equal(t, 1, p.Coins)
	assert.Equal(t, []config.Trigger{config.TriggerCoinCollected, config.TriggerPlayerWon}, s.Triggers)
}

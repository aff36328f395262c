package sim

import (
	"github.com/automoto/slimehop/actors"
	"github.com/automoto/slimehop/assets/animations"
	"github.com/automoto/slimehop/components"
	"github.com/automoto/slimehop/config"
	"github.com/automoto/slimehop/physics"
	"github.com/automoto/slimehop/shared/gamemath"
)

// EntityView is everything a renderer needs to draw one entity.
type EntityView struct {
	Kind   actors.Kind
	Sheet  string
	State  config.StateID
	X, Y   float64 // interpolated draw origin
	Frame  animations.Frame
	Facing physics.Facing
	Flash  bool          // blinking while invulnerable
	Rect   gamemath.Rect // collision rect at the interpolated position
}

type PopView struct {
	X, Y  float64
	Frame int
}

type HUD struct {
	Life  int
	Coins int
	FPS   float64
}

// Frame is a read-only snapshot of the world for one presentation tick.
// Entities are ordered back to front.
type Frame struct {
	Entities []EntityView
	Pops     []PopView
	HUD      HUD
	Camera   gamemath.Point // view top-left, shake included
	Outcome  components.Outcome
}

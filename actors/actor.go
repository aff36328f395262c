// Package actors holds the per-kind controllers that drive kinematic bodies
// each fixed step.
package actors

import (
	"github.com/automoto/slimehop/assets/animations"
	"github.com/automoto/slimehop/config"
	"github.com/automoto/slimehop/physics"
)

// Kind is the closed set of entity kinds.
type Kind int

const (
	KindPlayer Kind = iota
	KindSlime
	KindCoin
	KindGoal
)

var kindNames = [...]string{
	KindPlayer: "player",
	KindSlime:  "slime",
	KindCoin:   "coin",
	KindGoal:   "goal",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Step carries the inputs and outputs of one fixed step.
type Step struct {
	DtMs     float64
	Commands config.CommandSet

	// Target is the player's body. Controllers must not mutate it.
	Target *physics.Body

	Triggers []config.Trigger
}

func (s *Step) Emit(t config.Trigger) {
	s.Triggers = append(s.Triggers, t)
}

// Controller drives one body.
type Controller interface {
	Kind() Kind
	Body() *physics.Body
	Animation() *animations.Animation
	FixedStep(step *Step)

	// OnCollision is called when the receiver overlaps other. It reports
	// whether the receiver is consumed and should leave the world.
	OnCollision(other Controller, step *Step) bool
}

// AnimationSet holds one animation per state.
type AnimationSet map[config.StateID]*animations.Animation

// NewAnimationSet builds fresh animation clocks from definitions.
func NewAnimationSet(defs map[config.StateID]config.AnimationDef) AnimationSet {
	set := make(AnimationSet, len(defs))
	for state, def := range defs {
		set[state] = animations.FromIndices(def.Frames(), def.FrameMs, def.Loop)
	}
	return set
}

// Get returns the animation for state, or an empty one so callers always
// get a usable clock.
func (s AnimationSet) Get(state config.StateID) *animations.Animation {
	if a, ok := s[state]; ok {
		return a
	}
	return animations.New(nil, 0, false)
}

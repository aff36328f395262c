package systems

import (
	"github.com/automoto/slimehop/actors"
	"github.com/automoto/slimehop/components"
	"github.com/yohamta/donburi"
)

// FixedSystem advances the world by one fixed step.
type FixedSystem func(w donburi.World, step *actors.Step)

// FixedStepSystems run in this order every fixed step. The player moves
// before everything else so slimes see where it ended up.
var FixedStepSystems = []FixedSystem{
	ReadInput,
	SavePositions,
	UpdatePlayer,
	UpdateActors,
	UpdateInteractions,
	DispatchTriggers,
	FlushRemovals,
	UpdateLevel,
}

// RunFixedStep runs every fixed-step system once and returns the step with
// the triggers it emitted.
func RunFixedStep(w donburi.World, dtMs float64) *actors.Step {
	step := &actors.Step{DtMs: dtMs}
	for _, system := range FixedStepSystems {
		system(w, step)
	}
	return step
}

func UpdateLevel(w donburi.World, step *actors.Step) {
	entry, ok := components.Level.First(w)
	if !ok {
		return
	}
	level := components.Level.Get(entry)
	level.Steps++
	level.ElapsedMs += step.DtMs
}

// CurrentOutcome reports how the level has ended so far.
func CurrentOutcome(w donburi.World) components.Outcome {
	entry, ok := components.Level.First(w)
	if !ok {
		return components.OutcomePlaying
	}
	return components.Level.Get(entry).Outcome
}

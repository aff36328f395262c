package systems

import (
	"github.com/automoto/slimehop/actors"
	"github.com/automoto/slimehop/components"
	"github.com/automoto/slimehop/tags"
	"github.com/yohamta/donburi"
)

// SavePositions records every body's position as the interpolation start
// for this step.
func SavePositions(w donburi.World, _ *actors.Step) {
	for e := range components.Actor.Iter(w) {
		components.Actor.Get(e).Controller.Body().SavePosition()
	}
}

// UpdateActors steps every non-player controller still in the world.
func UpdateActors(w donburi.World, step *actors.Step) {
	for e := range components.Actor.Iter(w) {
		if e.HasComponent(tags.Player) || e.HasComponent(tags.Removal) {
			continue
		}
		components.Actor.Get(e).Controller.FixedStep(step)
	}
}

// FlushRemovals deletes every entity queued for removal during the step.
func FlushRemovals(w donburi.World, _ *actors.Step) {
	var doomed []donburi.Entity
	for e := range tags.Removal.Iter(w) {
		doomed = append(doomed, e.Entity())
	}
	for _, id := range doomed {
		w.Remove(id)
	}
}

// AdvanceAnimations runs once per presentation tick with that tick's
// wall-clock time, independent of how many fixed steps ran.
func AdvanceAnimations(w donburi.World, dtMs float64) {
	for e := range components.Actor.Iter(w) {
		components.Actor.Get(e).Controller.Animation().Advance(dtMs)
	}
}

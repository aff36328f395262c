package systems

import (
	"github.com/automoto/slimehop/actors"
	"github.com/automoto/slimehop/components"
	"github.com/automoto/slimehop/systems/factory"
	"github.com/automoto/slimehop/tags"
	"github.com/yohamta/donburi"
)

// UpdateInteractions resolves player contact with every other entity.
// Consumed entities are tagged for removal rather than deleted, so the pass
// never mutates the set it walks.
func UpdateInteractions(w donburi.World, step *actors.Step) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry).Controller

	var others []donburi.Entity
	for e := range components.Actor.Iter(w) {
		if e.Entity() == playerEntry.Entity() || e.HasComponent(tags.Removal) {
			continue
		}
		others = append(others, e.Entity())
	}

	for _, id := range others {
		entry := w.Entry(id)
		other := components.Actor.Get(entry).Controller
		if !player.Body().Overlaps(other.Body()) {
			continue
		}

		if other.OnCollision(player, step) {
			entry.AddComponent(tags.Removal)
			frame, _ := other.Animation().CurrentFrame()
			factory.CreatePop(w, other.Body().X, other.Body().Y, int(frame))
		}
		player.OnCollision(other, step)
	}
}

package systems

import (
	"github.com/automoto/slimehop/actors"
	"github.com/automoto/slimehop/components"
	"github.com/automoto/slimehop/tags"
	"github.com/yohamta/donburi"
)

// UpdatePlayer steps the player and publishes its body as the read-only
// target for the controllers that run after it.
func UpdatePlayer(w donburi.World, step *actors.Step) {
	entry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	player := components.Player.Get(entry).Controller
	player.FixedStep(step)
	step.Target = player.Body()
}

// PlayerController returns the player's controller, if one is spawned.
func PlayerController(w donburi.World) (*actors.Player, bool) {
	entry, ok := tags.Player.First(w)
	if !ok {
		return nil, false
	}
	return components.Player.Get(entry).Controller, true
}

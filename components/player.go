package components

import (
	"github.com/automoto/slimehop/actors"
	"github.com/yohamta/donburi"
)

// PlayerData gives systems typed access to the player controller and keeps
// per-run tallies.
type PlayerData struct {
	Controller *actors.Player
	Jumps      int
	Hits       int
}

var Player = donburi.NewComponentType[PlayerData]()

package systems

import (
	"github.com/automoto/slimehop/actors"
	"github.com/automoto/slimehop/components"
	cfg "github.com/automoto/slimehop/config"
	"github.com/yohamta/donburi"
)

// SetCommands stores the commands the next fixed step will see.
func SetCommands(w donburi.World, cmds cfg.CommandSet) {
	entry, ok := components.Input.First(w)
	if !ok {
		return
	}
	components.Input.Get(entry).Commands = cmds
}

func ReadInput(w donburi.World, step *actors.Step) {
	entry, ok := components.Input.First(w)
	if !ok {
		return
	}
	step.Commands = components.Input.Get(entry).Commands
}

package components

import (
	cfg "github.com/automoto/slimehop/config"
	"github.com/yohamta/donburi"
)

// InputData holds the commands active for the current fixed step.
type InputData struct {
	Commands cfg.CommandSet
}

var Input = donburi.NewComponentType[InputData]()

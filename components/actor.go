package components

import (
	"github.com/automoto/slimehop/actors"
	"github.com/yohamta/donburi"
)

// ActorData links an entity to the controller that drives its body.
type ActorData struct {
	Controller actors.Controller
}

var Actor = donburi.NewComponentType[ActorData]()

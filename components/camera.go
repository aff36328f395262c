package components

import (
	"github.com/automoto/slimehop/shared/gamemath"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Position gamemath.Point // top-left corner in world space
	Offset   gamemath.Point // shake offset applied on top of Position
}

var Camera = donburi.NewComponentType[CameraData]()

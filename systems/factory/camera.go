package factory

import (
	"github.com/automoto/slimehop/archetypes"
	"github.com/automoto/slimehop/components"
	"github.com/yohamta/donburi"
)

func CreateCamera(world donburi.World) *donburi.Entry {
	camera := archetypes.Camera.Spawn(world)
	components.Camera.SetValue(camera, components.CameraData{})
	return camera
}

package factory

import (
	"github.com/automoto/slimehop/archetypes"
	"github.com/automoto/slimehop/components"
	cfg "github.com/automoto/slimehop/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CreatePop spawns the rising sprite left behind by a collected coin.
// (x, y) is the coin's draw origin.
func CreatePop(world donburi.World, x, y float64, frame int) *donburi.Entry {
	pop := archetypes.Pop.Spawn(world)
	components.Pop.SetValue(pop, components.PopData{
		X:     x,
		Y:     y,
		Rise:  gween.New(0, float32(cfg.Pickup.PopRise), float32(cfg.Pickup.PopDurationMs), ease.OutQuad),
		Frame: frame,
	})
	return pop
}

package factory

import (
	"github.com/automoto/slimehop/actors"
	"github.com/automoto/slimehop/archetypes"
	"github.com/automoto/slimehop/components"
	cfg "github.com/automoto/slimehop/config"
	"github.com/automoto/slimehop/physics"
	"github.com/yohamta/donburi"
)

// CreateSlime spawns a slime sharing the level's RNG, so a seed replays the
// same wandering.
func CreateSlime(world donburi.World, x, y float64) *donburi.Entry {
	level := mustLevel(world)
	slime := archetypes.Slime.Spawn(world)

	body := physics.NewBody(level.Grid, x, y, cfg.Slime.Body, cfg.Physics)
	body.Facing = physics.FacingLeft
	ctrl := actors.NewSlime(body, cfg.Slime, GenerateAnimations(cfg.SheetSlime), level.Rand)

	components.Actor.SetValue(slime, components.ActorData{Controller: ctrl})
	components.Sprite.SetValue(slime, components.SpriteData{Sheet: cfg.SheetSlime})

	return slime
}

package factory

import (
	"github.com/automoto/slimehop/actors"
	"github.com/automoto/slimehop/archetypes"
	"github.com/automoto/slimehop/components"
	cfg "github.com/automoto/slimehop/config"
	"github.com/automoto/slimehop/physics"
	"github.com/yohamta/donburi"
)

func CreatePlayer(world donburi.World, x, y float64) *donburi.Entry {
	level := mustLevel(world)
	player := archetypes.Player.Spawn(world)

	body := physics.NewBody(level.Grid, x, y, cfg.Player.Body, cfg.Physics)
	ctrl := actors.NewPlayer(body, cfg.Player, GenerateAnimations(cfg.SheetPlayer))

	components.Player.SetValue(player, components.PlayerData{Controller: ctrl})
	components.Actor.SetValue(player, components.ActorData{Controller: ctrl})
	components.Sprite.SetValue(player, components.SpriteData{Sheet: cfg.SheetPlayer})

	return player
}

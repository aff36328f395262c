package factory

import (
	"github.com/automoto/slimehop/actors"
	"github.com/automoto/slimehop/archetypes"
	"github.com/automoto/slimehop/components"
	cfg "github.com/automoto/slimehop/config"
	"github.com/automoto/slimehop/physics"
	"github.com/yohamta/donburi"
)

func CreateCoin(world donburi.World, x, y float64) *donburi.Entry {
	level := mustLevel(world)
	coin := archetypes.Coin.Spawn(world)

	body := physics.NewBody(level.Grid, x, y, cfg.Pickup.Coin, cfg.Physics)
	ctrl := actors.NewCoin(body, GenerateAnimations(cfg.SheetCoin))

	components.Actor.SetValue(coin, components.ActorData{Controller: ctrl})
	components.Sprite.SetValue(coin, components.SpriteData{Sheet: cfg.SheetCoin})
	return coin
}

func CreateGoal(world donburi.World, x, y float64) *donburi.Entry {
	level := mustLevel(world)
	goal := archetypes.Goal.Spawn(world)

	body := physics.NewBody(level.Grid, x, y, cfg.Pickup.Goal, cfg.Physics)
	ctrl := actors.NewGoal(body, GenerateAnimations(cfg.SheetGoal))

	components.Actor.SetValue(goal, components.ActorData{Controller: ctrl})
	components.Sprite.SetValue(goal, components.SpriteData{Sheet: cfg.SheetGoal})
	return goal
}

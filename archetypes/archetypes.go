package archetypes

import (
	"github.com/automoto/slimehop/components"
	"github.com/automoto/slimehop/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Actor,
		components.Sprite,
	)
	Slime = newArchetype(
		tags.Slime,
		components.Actor,
		components.Sprite,
	)
	Coin = newArchetype(
		tags.Coin,
		components.Actor,
		components.Sprite,
	)
	Goal = newArchetype(
		tags.Goal,
		components.Actor,
		components.Sprite,
	)
	Level = newArchetype(
		components.Level,
	)
	Input = newArchetype(
		components.Input,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Pop = newArchetype(
		tags.Effect,
		components.Pop,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(world donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return world.Entry(world.Create(append(a.components, cs...)...))
}

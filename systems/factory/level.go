package factory

import (
	"math/rand"

	"github.com/automoto/slimehop/archetypes"
	"github.com/automoto/slimehop/components"
	cfg "github.com/automoto/slimehop/config"
	"github.com/automoto/slimehop/physics"
	"github.com/automoto/slimehop/shared/leveldata"
	"github.com/yohamta/donburi"
)

// CreateLevel spawns the level singleton with its tile grid and seeded RNG,
// plus the input, audio and camera singletons the systems expect.
func CreateLevel(world donburi.World, data *leveldata.LevelData, seed int64) *donburi.Entry {
	level := archetypes.Level.Spawn(world)

	grid := physics.NewTileGrid(data.MapWidth, data.MapHeight, cfg.Physics.CellSize, data.Tiles)
	components.Level.SetValue(level, components.LevelData{
		Name: data.Name,
		Grid: grid,
		Rand: rand.New(rand.NewSource(seed)),
	})

	archetypes.Input.Spawn(world)
	archetypes.Audio.Spawn(world)
	CreateCamera(world)

	return level
}

// PopulateLevel spawns every entity listed in the level data. The player is
// spawned first so it always has the lowest entity id.
func PopulateLevel(world donburi.World, data *leveldata.LevelData) *donburi.Entry {
	player := CreatePlayer(world, data.PlayerSpawn.X, data.PlayerSpawn.Y)
	for _, s := range data.Slimes {
		CreateSlime(world, s.X, s.Y)
	}
	for _, c := range data.Coins {
		CreateCoin(world, c.X, c.Y)
	}
	for _, g := range data.Goals {
		CreateGoal(world, g.X, g.Y)
	}
	return player
}

func mustLevel(world donburi.World) *components.LevelData {
	entry, ok := components.Level.First(world)
	if !ok {
		panic("factory: level must be created before its entities")
	}
	return components.Level.Get(entry)
}

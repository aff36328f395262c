// Package leveldata provides TMX level parsing for the simulation and the
// headless runner. It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

import (
	"errors"

	"github.com/automoto/slimehop/shared/gamemath"
)

// ErrTileOverlap is returned when two solid tiles in a level overlap.
var ErrTileOverlap = errors.New("solid tiles overlap")

// Object group and layer names read from TMX files.
const (
	SolidLayerProperty = "solid"
	SolidLayerName     = "Tiles"
	SolidObjectGroup   = "Solids"
	PlayerSpawnGroup   = "PlayerSpawn"
	SlimeGroup         = "Slimes"
	CoinGroup          = "Coins"
	GoalGroup          = "Goals"
)

// LevelData holds everything the simulation needs from a level file.
type LevelData struct {
	Name        string
	Tiles       []gamemath.Rect
	PlayerSpawn SpawnPoint
	Slimes      []SpawnPoint
	Coins       []SpawnPoint
	Goals       []SpawnPoint
	MapWidth    int
	MapHeight   int
	TileWidth   int
	TileHeight  int
}

// SpawnPoint is the draw origin an entity starts at.
type SpawnPoint struct {
	X, Y float64
}

package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/slimehop/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// LoadLevel parses a TMX file. It takes an fs.FS so callers can pass the
// embedded levels or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &LevelData{
		Name:       strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		MapWidth:   levelMap.Width * levelMap.TileWidth,
		MapHeight:  levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	// Solid tiles come from every tile layer named Tiles or flagged solid
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != SolidLayerName && !layer.Properties.GetBool(SolidLayerProperty) {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				data.Tiles = append(data.Tiles, gamemath.Rect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
	}

	hasPlayer := false
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			spawn := SpawnPoint{X: o.X, Y: o.Y}
			switch og.Name {
			case SolidObjectGroup:
				data.Tiles = append(data.Tiles, gamemath.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			case PlayerSpawnGroup:
				data.PlayerSpawn = spawn
				hasPlayer = true
			case SlimeGroup:
				data.Slimes = append(data.Slimes, spawn)
			case CoinGroup:
				data.Coins = append(data.Coins, spawn)
			case GoalGroup:
				data.Goals = append(data.Goals, spawn)
			}
		}
	}

	if !hasPlayer {
		return nil, fmt.Errorf("level %s: no %s object", tmxPath, PlayerSpawnGroup)
	}
	if err := checkOverlaps(data.Tiles); err != nil {
		return nil, fmt.Errorf("level %s: %w", tmxPath, err)
	}

	return data, nil
}

// checkOverlaps sweeps the tiles left to right and fails on the first pair
// whose rectangles overlap.
func checkOverlaps(tiles []gamemath.Rect) error {
	sorted := make([]gamemath.Rect, len(tiles))
	copy(sorted, tiles)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	for i, a := range sorted {
		for _, b := range sorted[i+1:] {
			if b.X >= a.Right() {
				break
			}
			if a.Overlaps(b) {
				return fmt.Errorf("%w: %+v and %+v", ErrTileOverlap, a, b)
			}
		}
	}
	return nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads
// each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*LevelData, []string, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*LevelData, len(matches))
	names := make([]string, 0, len(matches))

	for _, p := range matches {
		data, err := LoadLevel(fsys, p)
		if err != nil {
			return nil, nil, err
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

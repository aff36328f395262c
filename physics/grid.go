package physics

import (
	"math"
	"sort"

	"github.com/automoto/slimehop/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Resolv tags for the tile space
const (
	TagSolid  = "solid"
	tagSensor = "sensor"
)

// TileGrid is the static set of solid tiles for one level. It never changes
// after construction.
type TileGrid struct {
	space  *resolv.Space
	sensor *resolv.Object
	tiles  []gamemath.Rect
	width  int
	height int

	// resolv cells start at zero, so everything is shifted by the origin
	originX, originY float64
}

// NewTileGrid indexes tiles in a resolv space. Tiles are expected not to
// overlap; when they do, queries report the one added first.
func NewTileGrid(mapWidth, mapHeight, cellSize int, tiles []gamemath.Rect) *TileGrid {
	var minX, minY float64
	maxX, maxY := float64(mapWidth), float64(mapHeight)
	for _, t := range tiles {
		minX, minY = math.Min(minX, t.X), math.Min(minY, t.Y)
		maxX, maxY = math.Max(maxX, t.Right()), math.Max(maxY, t.Bottom())
	}
	originX := math.Floor(minX) - float64(cellSize)
	originY := math.Floor(minY) - float64(cellSize)

	g := &TileGrid{
		space: resolv.NewSpace(
			int(math.Ceil(maxX-originX))+cellSize,
			int(math.Ceil(maxY-originY))+cellSize,
			cellSize, cellSize,
		),
		tiles:   make([]gamemath.Rect, len(tiles)),
		width:   mapWidth,
		height:  mapHeight,
		originX: originX,
		originY: originY,
	}
	copy(g.tiles, tiles)

	for i, t := range g.tiles {
		obj := resolv.NewObject(t.X-originX, t.Y-originY, t.W, t.H, TagSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, t.W, t.H))
		obj.Data = i
		g.space.Add(obj)
	}

	g.sensor = resolv.NewObject(0, 0, 1, 1, tagSensor)
	g.space.Add(g.sensor)

	return g
}

// Width and Height are the map size in pixels.
func (g *TileGrid) Width() int  { return g.width }
func (g *TileGrid) Height() int { return g.height }

// Tiles returns a copy of every tile rectangle.
func (g *TileGrid) Tiles() []gamemath.Rect {
	out := make([]gamemath.Rect, len(g.tiles))
	copy(out, g.tiles)
	return out
}

// candidates returns the indices of tiles sharing a space cell with r, in
// insertion order. The sensor is grown by a pixel on each side because resolv
// maps the far edge to cells using an integer inset.
func (g *TileGrid) candidates(r gamemath.Rect) []int {
	g.sensor.X = r.X - g.originX - 1
	g.sensor.Y = r.Y - g.originY - 1
	g.sensor.W = r.W + 2
	g.sensor.H = r.H + 2
	g.sensor.Update()

	check := g.sensor.Check(0, 0, TagSolid)
	if check == nil {
		return nil
	}

	idx := make([]int, 0, len(check.Objects))
	for _, obj := range check.Objects {
		if i, ok := obj.Data.(int); ok {
			idx = append(idx, i)
		}
	}
	sort.Ints(idx)
	return idx
}

// FirstOverlapping returns the first tile whose rectangle overlaps r using
// the half-open AABB test.
func (g *TileGrid) FirstOverlapping(r gamemath.Rect) (gamemath.Rect, bool) {
	for _, i := range g.candidates(r) {
		if g.tiles[i].Overlaps(r) {
			return g.tiles[i], true
		}
	}
	return gamemath.Rect{}, false
}

// TileAt returns the tile strictly containing p.
func (g *TileGrid) TileAt(p gamemath.Point) (gamemath.Rect, bool) {
	for _, i := range g.candidates(gamemath.Rect{X: p.X, Y: p.Y}) {
		if g.tiles[i].ContainsStrict(p) {
			return g.tiles[i], true
		}
	}
	return gamemath.Rect{}, false
}

// Blocked reports whether any tile edge crosses s.
func (g *TileGrid) Blocked(s gamemath.Segment) bool {
	for _, i := range g.candidates(s.Bounds()) {
		if gamemath.IntersectsRect(s, g.tiles[i]) {
			return true
		}
	}
	return false
}

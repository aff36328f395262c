package physics

import (
	"testing"

	"github.com/automoto/slimehop/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowOfTiles(y float64, from, to int) []gamemath.Rect {
	var tiles []gamemath.Rect
	for c := from; c <= to; c++ {
		tiles = append(tiles, gamemath.Rect{X: float64(c * 16), Y: y, W: 16, H: 16})
	}
	return tiles
}

func TestFirstOverlapping(t *testing.T) {
	grid := NewTileGrid(160, 160, 16, rowOfTiles(64, 0, 9))

	tile, ok := grid.FirstOverlapping(gamemath.Rect{X: 20, Y: 60, W: 8, H: 8})
	require.True(t, ok)
	assert.Equal(t, gamemath.Rect{X: 16, Y: 64, W: 16, H: 16}, tile)

	_, ok = grid.FirstOverlapping(gamemath.Rect{X: 20, Y: 48, W: 8, H: 16})
	assert.False(t, ok, "touching the top edge is not an overlap")

	_, ok = grid.FirstOverlapping(gamemath.Rect{X: 20, Y: 10, W: 8, H: 8})
	assert.False(t, ok)
}

func TestFirstOverlappingLowestIndexWins(t *testing.T) {
	grid := NewTileGrid(64, 64, 16, []gamemath.Rect{
		{X: 16, Y: 0, W: 16, H: 16},
		{X: 0, Y: 0, W: 16, H: 16},
	})

	tile, ok := grid.FirstOverlapping(gamemath.Rect{X: 8, Y: 4, W: 16, H: 4})
	require.True(t, ok)
	assert.Equal(t, 16.0, tile.X)
}

func TestFirstOverlappingAcrossCellEdge(t *testing.T) {
	// the query reaches half a pixel into the next cell
	grid := NewTileGrid(64, 64, 16, []gamemath.Rect{{X: 32, Y: 0, W: 16, H: 16}})

	_, ok := grid.FirstOverlapping(gamemath.Rect{X: 17.5, Y: 0, W: 15, H: 16})
	assert.True(t, ok)
}

func TestTilesIsACopy(t *testing.T) {
	grid := NewTileGrid(64, 64, 16, rowOfTiles(0, 0, 1))

	tiles := grid.Tiles()
	tiles[0].X = 999
	assert.Equal(t, 0.0, grid.Tiles()[0].X)
	assert.Len(t, tiles, 2)
	assert.Equal(t, 64, grid.Width())
	assert.Equal(t, 64, grid.Height())
}

func TestTileAt(t *testing.T) {
	grid := NewTileGrid(64, 64, 16, rowOfTiles(32, 0, 3))

	_, ok := grid.TileAt(gamemath.Point{X: 8, Y: 40})
	assert.True(t, ok)

	_, ok = grid.TileAt(gamemath.Point{X: 8, Y: 32})
	assert.False(t, ok, "points on an edge are outside")

	_, ok = grid.TileAt(gamemath.Point{X: 8, Y: 20})
	assert.False(t, ok)
}

func TestBlocked(t *testing.T) {
	wall := gamemath.Rect{X: 48, Y: 0, W: 16, H: 64}
	grid := NewTileGrid(128, 64, 16, []gamemath.Rect{wall})

	assert.True(t, grid.Blocked(gamemath.Segment{A: gamemath.Point{X: 10, Y: 30}, B: gamemath.Point{X: 100, Y: 30}}))
	assert.False(t, grid.Blocked(gamemath.Segment{A: gamemath.Point{X: 10, Y: 30}, B: gamemath.Point{X: 40, Y: 10}}))
}

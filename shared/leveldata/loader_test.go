package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/slimehop/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tmxHeader = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="4" nextobjectid="8">
 <tileset firstgid="1" name="tiles" tilewidth="16" tileheight="16" tilecount="1" columns="1">
  <image source="tiles.png" width="16" height="16"/>
 </tileset>
 <layer id="1" name="Tiles" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,0,0,1,
1,1,1,1
</data>
 </layer>
`

const basicLevel = tmxHeader + ` <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="4" y="2"/>
 </objectgroup>
 <objectgroup id="3" name="Slimes">
  <object id="2" x="20" y="8"/>
  <object id="3" x="30" y="8"/>
 </objectgroup>
 <objectgroup id="4" name="Coins">
  <object id="4" x="40" y="6"/>
 </objectgroup>
 <objectgroup id="5" name="Goals">
  <object id="5" x="48" y="2"/>
 </objectgroup>
</map>
`

func TestLoadLevel(t *testing.T) {
	fsys := fstest.MapFS{"levels/basic.tmx": {Data: []byte(basicLevel)}}

	data, err := LoadLevel(fsys, "levels/basic.tmx")
	require.NoError(t, err)

	assert.Equal(t, "basic", data.Name)
	assert.Equal(t, 64, data.MapWidth)
	assert.Equal(t, 48, data.MapHeight)
	assert.Equal(t, 16, data.TileWidth)

	require.Len(t, data.Tiles, 5)
	assert.Contains(t, data.Tiles, gamemath.Rect{X: 48, Y: 16, W: 16, H: 16})
	assert.Contains(t, data.Tiles, gamemath.Rect{X: 0, Y: 32, W: 16, H: 16})

	assert.Equal(t, SpawnPoint{X: 4, Y: 2}, data.PlayerSpawn)
	assert.Len(t, data.Slimes, 2)
	assert.Equal(t, []SpawnPoint{{X: 40, Y: 6}}, data.Coins)
	assert.Len(t, data.Goals, 1)
}

func TestLoadLevelRejectsOverlap(t *testing.T) {
	level := tmxHeader + ` <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="4" y="2"/>
 </objectgroup>
 <objectgroup id="3" name="Solids">
  <object id="2" x="8" y="24" width="16" height="16"/>
 </objectgroup>
</map>
`
	fsys := fstest.MapFS{"bad.tmx": {Data: []byte(level)}}

	_, err := LoadLevel(fsys, "bad.tmx")
	assert.ErrorIs(t, err, ErrTileOverlap)
}

func TestLoadLevelAcceptsTouchingSolids(t *testing.T) {
	level := tmxHeader + ` <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="4" y="2"/>
 </objectgroup>
 <objectgroup id="3" name="Solids">
  <object id="2" x="0" y="16" width="48" height="16"/>
 </objectgroup>
</map>
`
	fsys := fstest.MapFS{"ok.tmx": {Data: []byte(level)}}

	data, err := LoadLevel(fsys, "ok.tmx")
	require.NoError(t, err)
	assert.Len(t, data.Tiles, 6)
}

func TestLoadLevelRequiresPlayerSpawn(t *testing.T) {
	fsys := fstest.MapFS{"empty.tmx": {Data: []byte(tmxHeader + "</map>\n")}}

	_, err := LoadLevel(fsys, "empty.tmx")
	assert.ErrorContains(t, err, "PlayerSpawn")
}

func TestLoadAllLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": {Data: []byte(basicLevel)},
		"levels/a.tmx": {Data: []byte(basicLevel)},
	}

	levels, names, err := LoadAllLevels(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Len(t, levels, 2)

	_, _, err = LoadAllLevels(fstest.MapFS{}, "levels")
	assert.Error(t, err)
}

func TestCheckOverlaps(t *testing.T) {
	assert.NoError(t, checkOverlaps([]gamemath.Rect{
		{X: 0, Y: 0, W: 16, H: 16},
		{X: 16, Y: 0, W: 16, H: 16},
		{X: 0, Y: 16, W: 16, H: 16},
	}))
	assert.ErrorIs(t, checkOverlaps([]gamemath.Rect{
		{X: 0, Y: 0, W: 32, H: 16},
		{X: 100, Y: 0, W: 16, H: 16},
		{X: 16, Y: 8, W: 16, H: 16},
	}), ErrTileOverlap)
}

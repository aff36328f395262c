// Package levels embeds the bundled TMX maps.
package levels

import (
	"embed"

	"github.com/automoto/slimehop/shared/leveldata"
)

//go:embed *.tmx
var FS embed.FS

// Default is the level played when none is named.
const Default = "meadow"

// LoadAll parses every bundled level.
func LoadAll() (map[string]*leveldata.LevelData, []string, error) {
	return leveldata.LoadAllLevels(FS, ".")
}

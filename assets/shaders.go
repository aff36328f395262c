package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// FlashShader whitens the player while it is invulnerable
	FlashShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	flashSrc, err := shaderFS.ReadFile("shaders/flash.kage")
	if err != nil {
		return err
	}
	FlashShader, err = ebiten.NewShader(flashSrc)
	if err != nil {
		return err
	}
	return nil
}

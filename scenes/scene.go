package scenes

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game. Update returns ebiten.Termination to quit.
type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// SceneChanger is implemented by the game to swap the active scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

package components

import "github.com/yohamta/donburi"

// SpriteData names the sheet an entity is drawn from.
type SpriteData struct {
	Sheet string
}

var Sprite = donburi.NewComponentType[SpriteData]()

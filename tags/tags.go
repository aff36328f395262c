package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Slime  = donburi.NewTag().SetName("Slime")
	Coin   = donburi.NewTag().SetName("Coin")
	Goal   = donburi.NewTag().SetName("Goal")
	Effect = donburi.NewTag().SetName("Effect")

	// Removal marks entities to delete once the current pass finishes.
	Removal = donburi.NewTag().SetName("Removal")
)

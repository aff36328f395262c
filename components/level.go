package components

import (
	"math/rand"

	"github.com/automoto/slimehop/physics"
	"github.com/yohamta/donburi"
)

// Outcome is how a level ended.
type Outcome int

const (
	OutcomePlaying Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	}
	return "playing"
}

type LevelData struct {
	Name      string
	Grid      *physics.TileGrid
	Rand      *rand.Rand
	Steps     int
	ElapsedMs float64 // simulated time
	Outcome   Outcome
}

var Level = donburi.NewComponentType[LevelData]()

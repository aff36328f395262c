package components

import (
	cfg "github.com/automoto/slimehop/config"
	"github.com/yohamta/donburi"
)

// AudioData queues triggers for the audio host (singleton component)
type AudioData struct {
	PendingSFX []cfg.Trigger
}

var Audio = donburi.NewComponentType[AudioData]()

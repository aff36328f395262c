package systems

import (
	"github.com/automoto/slimehop/actors"
	"github.com/automoto/slimehop/components"
	cfg "github.com/automoto/slimehop/config"
	"github.com/automoto/slimehop/tags"
	"github.com/yohamta/donburi"
)

// DispatchTriggers queues the step's triggers for the audio host, tallies
// them on the player and settles the level outcome. The first terminal
// trigger wins.
func DispatchTriggers(w donburi.World, step *actors.Step) {
	if len(step.Triggers) == 0 {
		return
	}

	if entry, ok := components.Audio.First(w); ok {
		audio := components.Audio.Get(entry)
		audio.PendingSFX = append(audio.PendingSFX, step.Triggers...)
	}

	var stats *components.PlayerData
	if entry, ok := tags.Player.First(w); ok {
		stats = components.Player.Get(entry)
	}
	var level *components.LevelData
	if entry, ok := components.Level.First(w); ok {
		level = components.Level.Get(entry)
	}

	for _, t := range step.Triggers {
		switch t {
		case cfg.TriggerJumped:
			if stats != nil {
				stats.Jumps++
			}
		case cfg.TriggerHit:
			if stats != nil {
				stats.Hits++
			}
			TriggerScreenShake(w, cfg.Camera.ShakeIntensity, cfg.Camera.ShakeDurationMs)
		case cfg.TriggerPlayerWon:
			settle(level, components.OutcomeWon)
		case cfg.TriggerPlayerLost:
			settle(level, components.OutcomeLost)
		}
	}
}

func settle(level *components.LevelData, outcome components.Outcome) {
	if level == nil || level.Outcome != components.OutcomePlaying {
		return
	}
	level.Outcome = outcome
}

// DrainSFX hands the queued triggers to the caller and empties the queue.
func DrainSFX(w donburi.World) []cfg.Trigger {
	entry, ok := components.Audio.First(w)
	if !ok {
		return nil
	}
	audio := components.Audio.Get(entry)
	if len(audio.PendingSFX) == 0 {
		return nil
	}
	out := audio.PendingSFX
	audio.PendingSFX = nil
	return out
}

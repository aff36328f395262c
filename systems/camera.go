package systems

import (
	"math"

	"github.com/automoto/slimehop/components"
	"github.com/automoto/slimehop/config"
	"github.com/automoto/slimehop/shared/gamemath"
	"github.com/automoto/slimehop/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// UpdateCamera follows the player's interpolated position, keeping the view
// inside the map, and applies any active screen shake as an offset.
func UpdateCamera(w donburi.World, dtMs, alpha, viewW, viewH float64) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	updateScreenShake(cameraEntry, camera, dtMs)

	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	body := components.Player.Get(playerEntry).Controller.Body()

	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	grid := components.Level.Get(levelEntry).Grid
	if grid == nil {
		return
	}

	x, y := body.Interpolated(alpha)
	centerX := x + body.OffsetX + body.W/2
	centerY := y + body.OffsetY + body.H/2

	// Camera bounds: the level always fills the view when it is big enough
	maxX := math.Max(0, float64(grid.Width())-viewW)
	maxY := math.Max(0, float64(grid.Height())-viewH)
	targetX := gamemath.Clamp(centerX-viewW/2, 0, maxX)
	targetY := gamemath.Clamp(centerY-viewH/2, 0, maxY)

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// updateScreenShake decays the shake and removes it once finished
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData, dtMs float64) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		camera.Offset = gamemath.Point{}
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed += dtMs
	intensity, done := shake.Intensity.Update(float32(dtMs))

	// Oscillate in step units so the shake looks the same at any tick rate
	phase := shake.Elapsed / config.Loop.FrameTimeMs()
	camera.Offset = gamemath.Point{
		X: math.Sin(phase*1.1) * float64(intensity),
		Y: math.Cos(phase*1.3) * float64(intensity),
	}

	if done {
		camera.Offset = gamemath.Point{}
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(w donburi.World, intensity, durationMs float64) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}

	data := components.ScreenShakeData{
		Peak:      intensity,
		Intensity: gween.New(float32(intensity), 0, float32(durationMs), ease.OutQuad),
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		// Only override if new shake is stronger
		if intensity > components.ScreenShake.Get(cameraEntry).Peak {
			components.ScreenShake.SetValue(cameraEntry, data)
		}
		return
	}
	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.SetValue(cameraEntry, data)
}

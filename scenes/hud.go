package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/slimehop/components"
	cfg "github.com/automoto/slimehop/config"
	"github.com/automoto/slimehop/fonts"
	"github.com/automoto/slimehop/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	hudBarWidth  = 100
	hudBarHeight = 8
)

// drawHUD renders the life bar, coin count and optionally the FPS.
func drawHUD(screen *ebiten.Image, hud sim.HUD, muted bool) {
	margin := float32(cfg.HUD.Margin)

	// Background (dark gray)
	vector.FillRect(screen, margin, margin, hudBarWidth, hudBarHeight, color.RGBA{40, 40, 40, 255}, false)

	ratio := float32(0)
	if cfg.Player.Life > 0 {
		ratio = float32(max(hud.Life, 0)) / float32(cfg.Player.Life)
	}
	barColor := color.RGBA{40, 220, 40, 255}
	if ratio <= 0.3 {
		barColor = cfg.HUD.LowLife
	}
	vector.FillRect(screen, margin, margin, hudBarWidth*min(ratio, 1), hudBarHeight, barColor, false)

	face := fonts.HUD.Get()
	lineY := int(cfg.HUD.Margin + hudBarHeight + cfg.HUD.LineHeight)
	text.Draw(screen, fmt.Sprintf("Coins %d", hud.Coins), face, int(cfg.HUD.Margin), lineY, cfg.HUD.TextColor)

	right := screen.Bounds().Dx() - int(cfg.HUD.Margin)
	if cfg.Debug.ShowFPS {
		fps := fmt.Sprintf("%.0f FPS", hud.FPS)
		w := text.BoundString(face, fps).Dx()
		text.Draw(screen, fps, face, right-w, int(cfg.HUD.Margin+cfg.HUD.LineHeight)-4, cfg.HUD.TextColor)
	}
	if muted {
		w := text.BoundString(face, "muted").Dx()
		text.Draw(screen, "muted", face, right-w, lineY, cfg.HUD.TextColor)
	}
}

// drawOutcome dims the screen and shows the result once the level ends.
func drawOutcome(screen *ebiten.Image, outcome components.Outcome, best string) {
	if outcome == components.OutcomePlaying {
		return
	}
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	title := "YOU WIN"
	titleColor := cfg.Gold
	if outcome == components.OutcomeLost {
		title = "GAME OVER"
		titleColor = cfg.LightRed
	}
	titleFont := fonts.Title.Get()
	drawCentered(screen, title, titleFont, height/2-10, titleColor)

	hintFont := fonts.HUD.Get()
	if best != "" {
		drawCentered(screen, best, hintFont, height/2+14, cfg.White)
	}
	drawCentered(screen, "R to retry   N for next level   L for levels", hintFont, height/2+32, cfg.White)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, c color.Color) {
	w := text.BoundString(face, s).Dx()
	text.Draw(screen, s, face, (screen.Bounds().Dx()-w)/2, y, c)
}

package scenes

import (
	"image/color"

	"github.com/automoto/slimehop/actors"
	"github.com/automoto/slimehop/assets"
	"github.com/automoto/slimehop/assets/animations"
	cfg "github.com/automoto/slimehop/config"
	"github.com/automoto/slimehop/physics"
	"github.com/automoto/slimehop/shared/gamemath"
	"github.com/automoto/slimehop/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const flashAmount = 0.7

var drawOp = &ebiten.DrawImageOptions{}
var shaderOp = &ebiten.DrawRectShaderOptions{}

// drawTiles draws every solid tile that intersects the view.
func drawTiles(screen *ebiten.Image, tiles []gamemath.Rect, tile *ebiten.Image, camera gamemath.Point) {
	b := screen.Bounds()
	view := gamemath.Rect{X: camera.X, Y: camera.Y, W: float64(b.Dx()), H: float64(b.Dy())}
	tw, th := tile.Bounds().Dx(), tile.Bounds().Dy()

	for _, t := range tiles {
		if !t.Overlaps(view) {
			continue
		}
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Scale(t.W/float64(tw), t.H/float64(th))
		drawOp.GeoM.Translate(t.X-camera.X, t.Y-camera.Y)
		screen.DrawImage(tile, drawOp)
	}
}

// drawEntities draws the snapshot back to front. Flashing entities are
// whitened with the flash shader on alternate blink phases.
func drawEntities(screen *ebiten.Image, frame *sim.Frame, sheets *assets.SheetSet, blinkOn bool) {
	for i := range frame.Entities {
		e := &frame.Entities[i]
		img := sheets.Frame(e.Sheet, e.Frame)
		w := img.Bounds().Dx()

		var geoM ebiten.GeoM
		if e.Facing == physics.FacingLeft && e.Kind != actors.KindCoin {
			geoM.Scale(-1, 1)
			geoM.Translate(float64(w), 0)
		}
		geoM.Translate(e.X-frame.Camera.X, e.Y-frame.Camera.Y)

		if e.Flash && blinkOn && assets.FlashShader != nil {
			drawFlashed(screen, img, geoM)
			continue
		}
		drawOp.GeoM = geoM
		drawOp.ColorScale.Reset()
		screen.DrawImage(img, drawOp)
	}
}

func drawFlashed(screen, img *ebiten.Image, geoM ebiten.GeoM) {
	b := img.Bounds()
	shaderOp.GeoM = geoM
	shaderOp.Images[0] = img
	shaderOp.Uniforms = map[string]any{"Amount": float32(flashAmount)}
	screen.DrawRectShader(b.Dx(), b.Dy(), assets.FlashShader, shaderOp)
}

// drawPops draws collected coins rising and fading out.
func drawPops(screen *ebiten.Image, frame *sim.Frame, sheets *assets.SheetSet) {
	for _, p := range frame.Pops {
		img := sheets.Frame(cfg.SheetCoin, animations.Frame(p.Frame))
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.ColorScale.ScaleAlpha(0.8)
		drawOp.GeoM.Translate(p.X-frame.Camera.X, p.Y-frame.Camera.Y)
		screen.DrawImage(img, drawOp)
	}
}

var (
	debugTileColor   = color.RGBA{R: 255, G: 255, B: 255, A: 90}
	debugPlayerColor = color.RGBA{R: 0, G: 120, B: 255, A: 255}
	debugOtherColor  = color.RGBA{R: 255, G: 60, B: 60, A: 255}
)

// drawDebug outlines tile and body collision rects.
func drawDebug(screen *ebiten.Image, frame *sim.Frame, tiles []gamemath.Rect) {
	cam := frame.Camera
	for _, t := range tiles {
		vector.StrokeRect(screen, float32(t.X-cam.X), float32(t.Y-cam.Y), float32(t.W), float32(t.H), 1, debugTileColor, false)
	}
	for _, e := range frame.Entities {
		c := debugOtherColor
		if e.Kind == actors.KindPlayer {
			c = debugPlayerColor
		}
		r := e.Rect
		vector.StrokeRect(screen, float32(r.X-cam.X), float32(r.Y-cam.Y), float32(r.W), float32(r.H), 1, c, false)
	}
}

// Package assets provides everything the ebiten host draws and plays: the
// bundled levels, generated sprite sheets, shaders and synthesized sound.
package assets

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/slimehop/assets/animations"
	"github.com/automoto/slimehop/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SheetSet holds one generated sprite sheet per sheet key, cut into frames.
// Frames are flat-shaded silhouettes that change per index, so animation
// timing is visible without art files.
type SheetSet struct {
	sheets map[string]*ebiten.Image
	frames map[string][]*ebiten.Image
	tile   *ebiten.Image
	blank  *ebiten.Image
}

type frameDrawer func(dst *ebiten.Image, index, count int)

var sheetDrawers = map[string]frameDrawer{
	config.SheetPlayer: drawPlayerFrame,
	config.SheetSlime:  drawSlimeFrame,
	config.SheetCoin:   drawCoinFrame,
	config.SheetGoal:   drawGoalFrame,
}

// LoadSheets generates every sheet named in config.CharacterAnimations.
func LoadSheets() *SheetSet {
	s := &SheetSet{
		sheets: make(map[string]*ebiten.Image),
		frames: make(map[string][]*ebiten.Image),
		tile:   newTile(),
		blank:  ebiten.NewImage(1, 1),
	}

	for key, defs := range config.CharacterAnimations {
		count := 0
		for _, def := range defs {
			count = max(count, def.First+def.Count)
		}
		size := config.SheetFrame[key]
		w, h := size[0], size[1]

		sheet := ebiten.NewImage(w*count, h)
		frames := make([]*ebiten.Image, count)
		for i := range frames {
			frame := sheet.SubImage(image.Rect(i*w, 0, (i+1)*w, h)).(*ebiten.Image)
			if draw, ok := sheetDrawers[key]; ok {
				draw(frame, i, count)
			}
			frames[i] = frame
		}
		s.sheets[key] = sheet
		s.frames[key] = frames
	}
	return s
}

// Frame returns the image for a frame handle, or a blank image if the sheet
// or index is unknown.
func (s *SheetSet) Frame(sheet string, f animations.Frame) *ebiten.Image {
	frames := s.frames[sheet]
	if int(f) < 0 || int(f) >= len(frames) {
		return s.blank
	}
	return frames[f]
}

func (s *SheetSet) Tile() *ebiten.Image {
	return s.tile
}

func newTile() *ebiten.Image {
	size := config.Physics.CellSize
	img := ebiten.NewImage(size, size)
	img.Fill(config.TileBrown)
	vector.DrawFilledRect(img, 0, 0, float32(size), 3, config.SlimeGreen, false)
	vector.StrokeRect(img, 0, 0, float32(size), float32(size), 1, color.RGBA{80, 56, 34, 255}, false)
	return img
}

func origin(dst *ebiten.Image) (float32, float32) {
	b := dst.Bounds()
	return float32(b.Min.X), float32(b.Min.Y)
}

// drawPlayerFrame draws the character inside its collision box, legs
// swapping with the frame index.
func drawPlayerFrame(dst *ebiten.Image, index, _ int) {
	ox, oy := origin(dst)
	body := config.Player.Body
	x, y := ox+float32(body.OffsetX), oy+float32(body.OffsetY)
	w, h := float32(body.Width), float32(body.Height)

	stride := float32(index%3) * 2
	vector.DrawFilledRect(dst, x, y+6, w, h-14, config.PlayerBlue, false)
	vector.DrawFilledCircle(dst, x+w/2, y+4, 5, config.PlayerBlue, true)
	vector.DrawFilledRect(dst, x+1+stride, y+h-8, 4, 8, config.White, false)
	vector.DrawFilledRect(dst, x+w-5-stride, y+h-8, 4, 8, config.White, false)
}

func drawSlimeFrame(dst *ebiten.Image, index, count int) {
	ox, oy := origin(dst)
	body := config.Slime.Body
	squash := float32(2 * math.Sin(float64(index)/float64(count)*2*math.Pi))
	x := ox + float32(body.OffsetX) - squash/2
	y := oy + float32(body.OffsetY) + 2 + squash
	w := float32(body.Width) + squash
	h := float32(body.Height) - 2 - squash
	vector.DrawFilledRect(dst, x, y, w, h, config.SlimeGreen, true)
	vector.DrawFilledRect(dst, x+2, y+2, 2, 2, config.White, false)
}

// drawCoinFrame narrows the coin with the frame index so it appears to spin.
func drawCoinFrame(dst *ebiten.Image, index, count int) {
	ox, oy := origin(dst)
	size := float32(config.Pickup.Coin.Width)
	w := size * float32(math.Abs(math.Cos(float64(index)/float64(count)*math.Pi)))
	w = max(w, 2)
	vector.DrawFilledRect(dst, ox+(size-w)/2, oy+1, w, size-2, config.Gold, true)
}

func drawGoalFrame(dst *ebiten.Image, _, _ int) {
	ox, oy := origin(dst)
	w, h := float32(config.Pickup.Goal.Width), float32(config.Pickup.Goal.Height)
	vector.DrawFilledRect(dst, ox+w/2-1, oy, 3, h, config.PostGray, false)
	vector.DrawFilledRect(dst, ox, oy+2, w, 10, config.Yellow, false)
}

// Package ui builds ebitenui screens for the game window.
package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// LevelEntry is one row of the level list.
type LevelEntry struct {
	Name string
	Best string // empty until the level has been won
	Last bool   // the level played most recently
}

type LevelSelectUI struct {
	UI *ebitenui.UI

	OnPick func(name string)
	OnQuit func()

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewLevelSelectUI(entries []LevelEntry, onPick func(name string), onQuit func()) *LevelSelectUI {
	ui := &LevelSelectUI{
		OnPick: onPick,
		OnQuit: onQuit,
	}
	ui.loadFonts()
	ui.buildUI(entries)
	return ui
}

func (ui *LevelSelectUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatal("failed to load UI font", "error", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 18}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 9}
}

func (ui *LevelSelectUI) buildUI(entries []LevelEntry) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("SLIMEHOP", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	for i, entry := range entries {
		contentContainer.AddChild(ui.buildLevelRow(i, entry))
	}

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text("Click a level or press its number. Esc quits.", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{160, 160, 180, 255},
		}),
	)
	contentContainer.AddChild(hintLabel)

	contentContainer.AddChild(ui.buildQuitButton())

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *LevelSelectUI) buildLevelRow(i int, entry LevelEntry) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	idle := color.RGBA{60, 60, 80, 255}
	if entry.Last {
		idle = color.RGBA{80, 80, 120, 255}
	}
	name := entry.Name
	levelBtn := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 22)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(idle),
			Hover:   image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		}),
		widget.ButtonOpts.Text(fmt.Sprintf("%d  %s", i+1, name), &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnPick != nil {
				ui.OnPick(name)
			}
		}),
	)
	row.AddChild(levelBtn)

	best := entry.Best
	if best == "" {
		best = "not won yet"
	}
	bestLabel := widget.NewLabel(
		widget.LabelOpts.Text(best, &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	row.AddChild(bestLabel)

	return row
}

func (ui *LevelSelectUI) buildQuitButton() *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 24)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text("Quit", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnQuit != nil {
				ui.OnQuit()
			}
		}),
	)
}

func (ui *LevelSelectUI) Update() {
	ui.UI.Update()
}

func (ui *LevelSelectUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}

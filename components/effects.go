package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Peak      float64      // starting intensity in pixels
	Intensity *gween.Tween // decays from Peak to zero
	Elapsed   float64      // ms, drives the oscillation
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// PopData is a short-lived sprite that rises and fades where a coin was taken
type PopData struct {
	X, Y  float64
	Rise  *gween.Tween
	Frame int
	Done  bool
	Value float64 // current rise offset in pixels
}

var Pop = donburi.NewComponentType[PopData]()

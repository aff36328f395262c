package scenes

import (
	"github.com/automoto/slimehop/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Bindings maps each command to the keys that hold it.
type Bindings map[config.Command][]ebiten.Key

var DefaultBindings = Bindings{
	config.CommandMoveLeft:  {ebiten.KeyLeft, ebiten.KeyA},
	config.CommandMoveRight: {ebiten.KeyRight, ebiten.KeyD},
	config.CommandJump:      {ebiten.KeyX, ebiten.KeyW, ebiten.KeyUp, ebiten.KeySpace},
}

// Keyboard reads the held commands. Gamepads are polled too, using the
// standard layout.
type Keyboard struct {
	bindings Bindings
}

func NewKeyboard(b Bindings) *Keyboard {
	if b == nil {
		b = DefaultBindings
	}
	return &Keyboard{bindings: b}
}

// Commands samples the current key state. It is the loop's InputSource.
func (k *Keyboard) Commands() config.CommandSet {
	var set config.CommandSet
	for cmd, keys := range k.bindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				set = set.With(cmd)
				break
			}
		}
	}
	return set | gamepadCommands()
}

const stickDeadzone = 0.25

var gamepadIDs []ebiten.GamepadID

func gamepadCommands() config.CommandSet {
	var set config.CommandSet
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		axis := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if axis < -stickDeadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft) {
			set = set.With(config.CommandMoveLeft)
		}
		if axis > stickDeadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight) {
			set = set.With(config.CommandMoveRight)
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			set = set.With(config.CommandJump)
		}
	}
	return set
}

// Scene-level keys, edge triggered.
var (
	restartKeys     = []ebiten.Key{ebiten.KeyR}
	nextLevelKeys   = []ebiten.Key{ebiten.KeyN}
	levelSelectKeys = []ebiten.Key{ebiten.KeyL, ebiten.KeyEscape}
	muteKeys        = []ebiten.Key{ebiten.KeyM}
	debugKeys       = []ebiten.Key{ebiten.KeyF3}
	quitKeys        = []ebiten.Key{ebiten.KeyEscape}
)

func justPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

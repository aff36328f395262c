package config

// AnimationDef describes one strip of frames inside a character sheet.
type AnimationDef struct {
	First   int     `yaml:"first"`
	Count   int     `yaml:"count"`
	FrameMs float64 `yaml:"frame_ms"`
	Loop    bool    `yaml:"loop"`
}

// Frames expands the strip into sheet indices.
func (d AnimationDef) Frames() []int {
	frames := make([]int, d.Count)
	for i := range frames {
		frames[i] = d.First + i
	}
	return frames
}

// Sheet keys
const (
	SheetPlayer = "player"
	SheetSlime  = "slime"
	SheetCoin   = "coin"
	SheetGoal   = "goal"
)

// SheetFrame is the frame size of each sheet in pixels.
var SheetFrame map[string][2]int

// CharacterAnimations maps a sheet key to its animation definitions.
var CharacterAnimations map[string]map[StateID]AnimationDef

func resetAnimations() {
	SheetFrame = map[string][2]int{
		SheetPlayer: {50, 37},
		SheetSlime:  {32, 32},
		SheetCoin:   {15, 15},
		SheetGoal:   {20, 30},
	}

	CharacterAnimations = map[string]map[StateID]AnimationDef{
		SheetPlayer: {
			Standing: {First: 0, Count: 3, FrameMs: 300, Loop: true},
			Walking:  {First: 3, Count: 6, FrameMs: 100, Loop: true},
			Jumping:  {First: 9, Count: 4, FrameMs: 50, Loop: false},
			Falling:  {First: 13, Count: 2, FrameMs: 100, Loop: true},
		},
		SheetSlime: {
			Idle: {First: 0, Count: 10, FrameMs: 100, Loop: true},
		},
		SheetCoin: {
			Idle: {First: 0, Count: 6, FrameMs: 100, Loop: true},
		},
		SheetGoal: {
			Idle: {First: 0, Count: 1, FrameMs: 0, Loop: false},
		},
	}
}

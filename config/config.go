package config

import (
	"image/color"
	"time"
)

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	GravityIncrease float64 `yaml:"gravity_increase"` // added to dy every fixed step
	GravityMax      float64 `yaml:"gravity_max"`      // terminal fall speed
	CellSize        int     `yaml:"cell_size"`        // spatial hash cell for the tile grid
}

// BodyConfig describes a collision rectangle relative to the draw origin.
type BodyConfig struct {
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	JumpSpeed float64 `yaml:"jump_speed"`
	WalkSpeed float64 `yaml:"walk_speed"`

	// Timers (milliseconds of simulated time)
	GracePeriodMs      float64 `yaml:"grace_period_ms"`
	FallingAllowanceMs float64 `yaml:"falling_allowance_ms"`

	// Combat
	Life        int `yaml:"life"`
	SlimeDamage int `yaml:"slime_damage"`

	Body BodyConfig `yaml:"body"`
}

// SlimeConfig contains configuration for the wandering slime enemy
type SlimeConfig struct {
	MoveSpeed float64    `yaml:"move_speed"`
	Friction  float64    `yaml:"friction"`
	Body      BodyConfig `yaml:"body"`
}

// PickupConfig contains collision sizes for coins and the goal signpost
type PickupConfig struct {
	Coin BodyConfig `yaml:"coin"`
	Goal BodyConfig `yaml:"goal"`

	// Coin pop effect
	PopRise       float64 `yaml:"pop_rise"`
	PopDurationMs float64 `yaml:"pop_duration_ms"`
}

// LoopConfig contains fixed-timestep loop configuration
type LoopConfig struct {
	TickRate int `yaml:"tick_rate"` // fixed steps per simulated second
	MaxSkip  int `yaml:"max_skip"`  // catch-up steps allowed per presentation tick
}

// FrameTime is the simulated duration of one fixed step.
func (l LoopConfig) FrameTime() time.Duration {
	return time.Second / time.Duration(l.TickRate)
}

// FrameTimeMs is FrameTime in milliseconds.
func (l LoopConfig) FrameTimeMs() float64 {
	return 1000.0 / float64(l.TickRate)
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"follow_smoothing"` // 0.0-1.0, 1 snaps to the target
	ShakeIntensity  float64 `yaml:"shake_intensity"`  // pixels, on player hit
	ShakeDurationMs float64 `yaml:"shake_duration_ms"`
}

// HUDConfig contains HUD layout configuration
type HUDConfig struct {
	Margin     float64
	LineHeight float64
	TextColor  color.RGBA
	LowLife    color.RGBA
}

// DebugConfig contains developer toggles
type DebugConfig struct {
	DrawCollisionRects bool `yaml:"draw_collision_rects"`
	ShowFPS            bool `yaml:"show_fps"`
}

// Config holds general game configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Scale  int    `yaml:"scale"`
	Title  string `yaml:"title"`
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Slime SlimeConfig
var Pickup PickupConfig
var Loop LoopConfig
var Camera CameraConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	SlimeGreen   = color.RGBA{R: 90, G: 200, B: 90, A: 255}
	SkyBlue      = color.RGBA{R: 96, G: 160, B: 220, A: 255}
	TileBrown    = color.RGBA{R: 120, G: 84, B: 52, A: 255}
	PlayerBlue   = color.RGBA{R: 60, G: 100, B: 200, A: 255}
	Gold         = color.RGBA{R: 255, G: 200, B: 40, A: 255}
	PostGray     = color.RGBA{R: 170, G: 170, B: 170, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	Reset()
}

// Reset restores every global to its built-in default.
func Reset() {
	C = &Config{
		Width:  600,
		Height: 338,
		Scale:  2,
		Title:  "Slimehop",
	}

	Physics = PhysicsConfig{
		GravityIncrease: 0.5,
		GravityMax:      9.8,
		CellSize:        16,
	}

	Player = PlayerConfig{
		JumpSpeed:          8.75,
		WalkSpeed:          3.3,
		GracePeriodMs:      100,
		FallingAllowanceMs: 20,
		Life:               50,
		SlimeDamage:        10,
		Body: BodyConfig{
			OffsetX: 17,
			OffsetY: 5,
			Width:   15,
			Height:  32,
		},
	}

	Slime = SlimeConfig{
		MoveSpeed: 5.5,
		Friction:  0.2,
		Body: BodyConfig{
			OffsetX: 10,
			OffsetY: 20,
			Width:   10,
			Height:  12,
		},
	}

	Pickup = PickupConfig{
		Coin:          BodyConfig{Width: 15, Height: 15},
		Goal:          BodyConfig{Width: 20, Height: 30},
		PopRise:       12,
		PopDurationMs: 250,
	}

	Loop = LoopConfig{
		TickRate: 60,
		MaxSkip:  5,
	}

	Camera = CameraConfig{
		FollowSmoothing: 1.0,
		ShakeIntensity:  3.0,
		ShakeDurationMs: 200,
	}

	HUD = HUDConfig{
		Margin:     8,
		LineHeight: 14,
		TextColor:  White,
		LowLife:    LightRed,
	}

	Debug = DebugConfig{}

	resetAnimations()
	resetAudio()
}

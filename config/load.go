package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the override file searched for in the working directory.
const DefaultFileName = "slimehop.yaml"

// Overrides mirrors the tunable globals. Fields omitted from the YAML keep
// their current values.
type Overrides struct {
	Window  Config        `yaml:"window"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Slime   SlimeConfig   `yaml:"slime"`
	Pickup  PickupConfig  `yaml:"pickup"`
	Loop    LoopConfig    `yaml:"loop"`
	Camera  CameraConfig  `yaml:"camera"`
	Audio   AudioConfig   `yaml:"audio"`
	Debug   DebugConfig   `yaml:"debug"`
}

func current() Overrides {
	return Overrides{
		Window:  *C,
		Physics: Physics,
		Player:  Player,
		Slime:   Slime,
		Pickup:  Pickup,
		Loop:    Loop,
		Camera:  Camera,
		Audio:   Audio,
		Debug:   Debug,
	}
}

func (o Overrides) apply() {
	w := o.Window
	C = &w
	Physics = o.Physics
	Player = o.Player
	Slime = o.Slime
	Pickup = o.Pickup
	Loop = o.Loop
	Camera = o.Camera
	Audio = o.Audio
	Debug = o.Debug
}

// Load resolves the override file and applies it on top of the defaults.
// Search order: customPath -> ./slimehop.yaml -> ~/.config/slimehop/config.yaml.
// It returns the path that was applied, or "" when only defaults are in use.
func Load(customPath string) (string, error) {
	Reset()

	if customPath != "" {
		if err := LoadFile(customPath); err != nil {
			return "", err
		}
		return customPath, nil
	}

	for _, path := range []string{DefaultFileName, userConfigPath()} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := LoadFile(path); err != nil {
			return "", err
		}
		return path, nil
	}
	return "", nil
}

// LoadFile applies a single override file on top of the current values.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Apply(data)
}

// Apply parses YAML overrides and applies them on top of the current values.
// Nothing is applied when the document is invalid.
func Apply(data []byte) error {
	o := current()
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if err := o.validate(); err != nil {
		return err
	}
	o.apply()
	return nil
}

func (o Overrides) validate() error {
	switch {
	case o.Loop.TickRate <= 0:
		return fmt.Errorf("loop.tick_rate must be positive, got %d", o.Loop.TickRate)
	case o.Loop.MaxSkip <= 0:
		return fmt.Errorf("loop.max_skip must be positive, got %d", o.Loop.MaxSkip)
	case o.Physics.CellSize <= 0:
		return fmt.Errorf("physics.cell_size must be positive, got %d", o.Physics.CellSize)
	case o.Physics.GravityMax < 0:
		return fmt.Errorf("physics.gravity_max must not be negative, got %v", o.Physics.GravityMax)
	}
	return nil
}

func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "slimehop", "config.yaml")
}

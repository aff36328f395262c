// slimehop is a small tile platformer: walk, jump over slimes, collect coins
// and reach the signpost.
//
// Usage:
//
//	slimehop [play]          - Play (the default command)
//	slimehop levels          - List bundled levels
//	slimehop runs            - Show recent runs
//
// Global flags:
//
//	--config <path>  - YAML config overrides, reloaded on change
//	--db <path>      - Run history database
//	--debug          - Debug logging and collision rects
package main

import (
	"fmt"
	"os"

	"github.com/automoto/slimehop/config"
	"github.com/automoto/slimehop/scenes"
	"github.com/automoto/slimehop/storage"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagDebug  bool
)

type Game struct {
	scene scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(scenes.Scene)
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slimehop",
	Short: "Slimehop - a tiny tile platformer",
	Long: `Slimehop is a side-scrolling platformer. Collect the coins, avoid the
slimes and touch the signpost to win.

Controls:
  Left/A, Right/D  - Walk
  X/W/Up/Space     - Jump
  R                - Restart level
  N                - Next level
  M                - Mute
  F3               - Debug overlay
  Esc              - Quit`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config overrides")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultDBPath, "Path to run history database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Debug logging and collision rects")

	addPlayFlags(rootCmd)
	addPlayFlags(playCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(runsCmd)
}

// setup configures logging and applies config overrides before any command.
func setup(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "slimehop",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)

	path, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if path != "" {
		log.Info("Config loaded", "path", path)
	}
	flagConfig = path

	if flagDebug {
		config.Debug.DrawCollisionRects = true
		config.Debug.ShowFPS = true
	}
	return nil
}

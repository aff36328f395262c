package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/automoto/slimehop/assets"
	"github.com/automoto/slimehop/assets/levels"
	"github.com/automoto/slimehop/config"
	"github.com/automoto/slimehop/fonts"
	"github.com/automoto/slimehop/scenes"
	"github.com/automoto/slimehop/storage"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagLevel string
	flagSeed  int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level",
	Long: `Open the game window on a level.

Without --level the game opens on the level list, with the last played
level highlighted. Press L or Esc in a level to return to the list.

Examples:
  slimehop play
  slimehop play --level ledges
  slimehop play --config ./slimehop.yaml --debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagLevel, "level", "", "Level to play")
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	all, _, err := levels.LoadAll()
	if err != nil {
		return err
	}

	session := &scenes.Session{
		Levels: all,
		Seed:   flagSeed,
	}
	if session.Seed == 0 {
		session.Seed = time.Now().UnixNano()
	}

	// Initialize persistence and load saved settings
	settings, err := storage.OpenSettings("slimehop")
	if err != nil {
		log.Warn("Could not initialize persistence", "error", err)
	}
	session.Settings = settings
	if saved, err := settings.Load(); err != nil {
		log.Warn("Could not read saved settings", "error", err)
	} else if saved != nil {
		session.Saved = *saved
	}

	runs, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without run history
		log.Warn("Could not open run history", "error", err)
	} else {
		session.Runs = runs
		defer runs.Close()
	}

	if flagConfig != "" {
		watcher, err := config.NewWatcher(flagConfig)
		if err != nil {
			log.Warn("Config hot reload disabled", "error", err)
		} else {
			session.Watcher = watcher
			defer watcher.Close()
		}
	}

	if flagLevel != "" {
		if _, ok := all[flagLevel]; !ok {
			return fmt.Errorf("unknown level %q, run 'slimehop levels' to list them", flagLevel)
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}
	if err := assets.LoadShaders(); err != nil {
		return fmt.Errorf("failed to load shaders: %w", err)
	}

	ebiten.SetWindowSize(config.C.Width*config.C.Scale, config.C.Height*config.C.Scale)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	game := &Game{}
	game.scene = firstScene(game, session, flagLevel)

	err = ebiten.RunGame(game)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// firstScene goes straight into the flagged level, otherwise to the level
// list.
func firstScene(game *Game, session *scenes.Session, level string) scenes.Scene {
	if level != "" {
		return scenes.NewPlatformerScene(game, session, level)
	}
	return scenes.NewLevelSelectScene(game, session)
}

// simrun plays a level without a window, feeding commands from a YAML input
// script, and prints how the run went. Runs with the same seed and script
// are identical.
//
// Usage:
//
//	simrun --level meadow --script walk.yaml --steps 600 --seed 7
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"

	"github.com/automoto/slimehop/assets/levels"
	"github.com/automoto/slimehop/components"
	"github.com/automoto/slimehop/config"
	"github.com/automoto/slimehop/sim"
	"github.com/automoto/slimehop/storage"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagLevel    string
	flagScript   string
	flagConfig   string
	flagSteps    int
	flagSeed     int64
	flagRealtime bool
	flagDBPath   string
	flagVerbose  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "simrun",
	Short: "Run a level headless from an input script",
	Long: `simrun steps a level with scripted input and prints a summary.

The script is YAML:

  entries:
    - hold: [MoveRight]
      steps: 40
    - hold: [MoveRight, Jump]
      steps: 3

Without --steps the run lasts as long as the script. It always stops early
once the level is won or lost.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagLevel, "level", levels.Default, "Level to run")
	rootCmd.Flags().StringVar(&flagScript, "script", "", "Path to YAML input script (empty = no input)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config overrides")
	rootCmd.Flags().IntVar(&flagSteps, "steps", 0, "Fixed steps to run (0 = script length)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 1, "RNG seed")
	rootCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace steps at the tick rate instead of as fast as possible")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "", "Record the run in this database")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")
}

// boundedRun stops the loop after a number of steps or once the level ends.
type boundedRun struct {
	*sim.Level
	loop     *sim.GameLoop
	limit    int
	steps    int
	triggers map[config.Trigger]int
}

func (b *boundedRun) FixedStep(cmds config.CommandSet) {
	if b.done() {
		return
	}
	b.Level.FixedStep(cmds)
	b.steps++
	for _, t := range b.Level.DrainTriggers() {
		b.triggers[t]++
	}
	if b.done() && b.loop != nil {
		b.loop.Stop()
	}
}

func (b *boundedRun) done() bool {
	return b.steps >= b.limit || b.Level.Outcome() != components.OutcomePlaying
}

func run(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "simrun",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)

	if _, err := config.Load(flagConfig); err != nil {
		return err
	}

	all, _, err := levels.LoadAll()
	if err != nil {
		return err
	}
	data, ok := all[flagLevel]
	if !ok {
		return fmt.Errorf("unknown level %q", flagLevel)
	}

	script := &sim.Script{}
	if flagScript != "" {
		raw, err := os.ReadFile(flagScript)
		if err != nil {
			return fmt.Errorf("failed to read script: %w", err)
		}
		if script, err = sim.ParseScript(raw); err != nil {
			return err
		}
	}

	limit := flagSteps
	if limit <= 0 {
		limit = script.Len()
	}
	if limit <= 0 {
		return fmt.Errorf("nothing to run: give --steps or a non-empty --script")
	}

	b := &boundedRun{
		Level:    sim.NewLevel(data, sim.LevelOptions{Seed: flagSeed}),
		limit:    limit,
		triggers: make(map[config.Trigger]int),
	}
	b.loop = sim.NewGameLoop(b, script.Source(), config.Loop)

	if flagRealtime {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := b.loop.Run(ctx); err != nil && ctx.Err() == nil {
			return err
		}
	} else {
		frame := config.Loop.FrameTime()
		for !b.done() {
			b.loop.Frame(frame)
		}
	}

	summary := b.Summary()
	printSummary(summary, b.triggers)

	if flagDBPath != "" {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		id, err := store.SaveRun(summary.Record())
		if err != nil {
			return err
		}
		log.Info("Run recorded", "id", id, "db", flagDBPath)
	}
	return nil
}

func printSummary(s sim.Summary, triggers map[config.Trigger]int) {
	outcome := s.Outcome.String()
	fmt.Printf("Level:    %s (seed %d)\n", s.Level, s.Seed)
	fmt.Printf("Outcome:  %s\n", outcome)
	fmt.Printf("Steps:    %d (%.2fs simulated)\n", s.Steps, s.ElapsedMs/1000)
	fmt.Printf("Coins:    %d\n", s.Coins)
	fmt.Printf("Life:     %d\n", s.Life)
	fmt.Printf("Jumps:    %d\n", s.Jumps)
	fmt.Printf("Hits:     %d\n", s.Hits)

	if len(triggers) == 0 {
		return
	}
	keys := make([]config.Trigger, 0, len(triggers))
	for t := range triggers {
		keys = append(keys, t)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	fmt.Println()
	fmt.Println("Triggers:")
	for _, t := range keys {
		fmt.Printf("  %-14s %d\n", t, triggers[t])
	}
}

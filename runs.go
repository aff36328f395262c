package main

import (
	"fmt"

	"github.com/automoto/slimehop/assets/levels"
	"github.com/automoto/slimehop/storage"
	"github.com/spf13/cobra"
)

var flagLimit int

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List bundled levels",
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recent runs",
	Long: `Display the most recent recorded runs, newest first, and the best
time for each level that has been won.

Examples:
  slimehop runs
  slimehop runs --limit 5`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runLevels(_ *cobra.Command, _ []string) error {
	all, names, err := levels.LoadAll()
	if err != nil {
		return err
	}

	fmt.Printf("  %-10s  %-9s  %-6s  %-5s\n", "Level", "Size", "Slimes", "Coins")
	fmt.Printf("  %-10s  %-9s  %-6s  %-5s\n", "-----", "----", "------", "-----")
	for _, name := range names {
		data := all[name]
		size := fmt.Sprintf("%dx%d", data.MapWidth/data.TileWidth, data.MapHeight/data.TileHeight)
		marker := ""
		if name == levels.Default {
			marker = " (default)"
		}
		fmt.Printf("  %-10s  %-9s  %-6d  %-5d%s\n", name, size, len(data.Slimes), len(data.Coins), marker)
	}
	return nil
}

func runRuns(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'slimehop play' to record the first one!")
		return nil
	}

	// Print header
	fmt.Printf("  %-10s  %-7s  %-8s  %-5s  %-4s  %s\n", "Level", "Outcome", "Time", "Coins", "Life", "Date")
	fmt.Printf("  %-10s  %-7s  %-8s  %-5s  %-4s  %s\n", "-----", "-------", "----", "-----", "----", "----")

	seen := make(map[string]bool)
	var order []string
	for _, r := range runs {
		fmt.Printf("  %-10s  %-7s  %-8s  %-5d  %-4d  %s\n",
			r.Level, r.Outcome, formatMs(r.ElapsedMs), r.Coins, r.Life, r.CreatedAt.Format("2006-01-02 15:04"))
		if !seen[r.Level] {
			seen[r.Level] = true
			order = append(order, r.Level)
		}
	}

	fmt.Println()
	for _, level := range order {
		best, ok, err := store.BestRun(level)
		if err != nil {
			return err
		}
		if ok {
			fmt.Printf("Best %s: %s\n", level, best.Result())
		}
	}
	return nil
}

func formatMs(ms int64) string {
	return fmt.Sprintf("%.2fs", float64(ms)/1000)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/virus-dodge/internal/games/dodge"
	"github.com/vovakirdan/virus-dodge/internal/platform/tui"
	"github.com/vovakirdan/virus-dodge/internal/storage"
)

var (
	flagBrowse bool
	flagClear  bool
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top Virus Dodge runs.

Examples:
  dodge scores
  dodge scores --limit 25
  dodge scores --browse
  dodge scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse top and recent runs interactively")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all saved runs")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearRuns(dodge.GameID); err != nil {
			return err
		}
		fmt.Println("All runs deleted.")
		return nil

	case flagBrowse:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, dodge.GameID, dodge.GameTitle, width, height)
	}

	runs, err := store.TopRuns(dodge.GameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", dodge.GameTitle)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dodge play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-20s  %s\n", "Rank", "Score", "Source", "Seed", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-20s  %s\n", "----", "-----", "------", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-8s  %-20d  %s\n", i+1, r.Score, r.Source, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.Stats(dodge.GameID); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Average: %.1f\n", stats.Best, stats.Runs, stats.AvgScore)
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagScoresSize  int
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 scores for a board size, or browse all board
sizes interactively.

Examples:
  2048 scores
  2048 scores --size 5
  2048 scores --interactive`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresSize, "size", 4, "Board side length")
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse scores in a TUI table")
}

func runScores(_ *cobra.Command, _ []string) error {
	if flagScoresSize < config.MinBoardSize || flagScoresSize > config.MaxBoardSize {
		return fmt.Errorf("board size %d out of range %d-%d", flagScoresSize, config.MinBoardSize, config.MaxBoardSize)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunScoreboard(store, flagScoresSize, width, height)
	}

	scores, err := store.TopScores(flagScoresSize, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %dx%d board\n\n", flagScoresSize, flagScoresSize)

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play '2048 play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Max tile", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "-----", "--------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8d  %s\n", i+1, entry.Score, entry.MaxTile, dateStr)
	}

	high, err := store.HighScore(flagScoresSize)
	if err == nil && high > 0 {
		fmt.Println()
		fmt.Printf("Best: %d\n", high)
	}

	return nil
}

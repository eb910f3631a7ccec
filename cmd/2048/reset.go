package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagResetSize int
	flagResetAll  bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear stored scores",
	Long: `Delete the score history and high score for one board size, or
everything with --all.

Examples:
  2048 reset --size 4
  2048 reset --all`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().IntVar(&flagResetSize, "size", 0, "Board side length to clear")
	resetCmd.Flags().BoolVar(&flagResetAll, "all", false, "Clear scores for every board size")
}

func runReset(_ *cobra.Command, _ []string) error {
	if !flagResetAll && flagResetSize == 0 {
		return fmt.Errorf("specify --size N or --all")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagResetAll {
		if err := store.ClearAll(); err != nil {
			return err
		}
		fmt.Println("All scores cleared.")
		return nil
	}

	if err := store.ClearScores(flagResetSize); err != nil {
		return err
	}
	fmt.Printf("Scores for the %dx%d board cleared.\n", flagResetSize, flagResetSize)
	return nil
}

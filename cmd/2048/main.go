// 2048 is a terminal implementation of the sliding-tile puzzle.
//
// Usage:
//
//	2048 play               - Play on the terminal
//	2048 scores             - Show high scores
//	2048 stats              - Show aggregated statistics
//	2048 reset              - Clear stored scores
//	2048 serve              - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible games (0 = random)
//	--db <path>     - Set database path (default: ~/.2048/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `2048 is a terminal puzzle game: slide numbered tiles across an NxN
grid, merge equal neighbours and chase the 2048 tile. High scores are stored
per board size.

Available commands:
  play     - Play on the local terminal
  scores   - View high scores
  stats    - View aggregated statistics
  reset    - Clear stored scores
  serve    - Start SSH server for remote play

Examples:
  2048 play
  2048 play --size 5
  2048 scores --interactive
  2048 serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.2048/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
}

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagStatsSize int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated statistics",
	Long: `Display games played, best score, best tile and average score,
either for one board size or for all sizes that have recorded games.

Examples:
  2048 stats
  2048 stats --size 5`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsSize, "size", 0, "Board side length (0 = all sizes)")
}

func runStats(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	var all []*storage.BoardStats
	if flagStatsSize > 0 {
		stats, err := store.GetBoardStats(flagStatsSize)
		if err != nil {
			return fmt.Errorf("retrieving stats: %w", err)
		}
		all = append(all, stats)
	} else {
		bySize, err := store.GetAllBoardStats()
		if err != nil {
			return fmt.Errorf("retrieving stats: %w", err)
		}
		for _, stats := range bySize {
			all = append(all, stats)
		}
		sort.Slice(all, func(i, j int) bool { return all[i].BoardSize < all[j].BoardSize })
	}

	played := false
	for _, stats := range all {
		if stats.GamesCount > 0 {
			played = true
		}
	}
	if len(all) == 0 || !played {
		fmt.Println("No games recorded yet.")
		return nil
	}

	fmt.Printf("  %-6s  %-6s  %-10s  %-9s  %-10s  %s\n", "Board", "Games", "Best", "Best tile", "Avg score", "Last played")
	fmt.Printf("  %-6s  %-6s  %-10s  %-9s  %-10s  %s\n", "-----", "-----", "----", "---------", "---------", "-----------")

	for _, stats := range all {
		if stats.GamesCount == 0 {
			continue
		}
		boardStr := fmt.Sprintf("%dx%d", stats.BoardSize, stats.BoardSize)
		lastStr := stats.LastPlayed.Format("2006-01-02 15:04")
		fmt.Printf("  %-6s  %-6d  %-10d  %-9d  %-10.1f  %s\n",
			boardStr, stats.GamesCount, stats.HighScore, stats.BestTile, stats.AvgScore, lastStr)
	}

	return nil
}

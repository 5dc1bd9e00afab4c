package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vspivak/twenty48/internal/registry"
	"github.com/vspivak/twenty48/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats [mode]",
	Short: "Show aggregate play statistics",
	Long: `Display aggregate statistics: games played, high score, best
tile, and average score. With no argument, shows all modes.

Examples:
  twenty48 stats
  twenty48 stats classic`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		gameID := args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'twenty48 list' to see available modes.")
			os.Exit(1)
		}

		stats, err := store.GetGameStats(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			os.Exit(1)
		}

		printStats(stats)
		return
	}

	allStats, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(allStats) == 0 {
		fmt.Println("No games played yet.")
		return
	}

	ids := make([]string, 0, len(allStats))
	for id := range allStats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for i, id := range ids {
		if i > 0 {
			fmt.Println()
		}
		printStats(allStats[id])
	}
}

func printStats(stats *storage.GameStats) {
	fmt.Printf("Statistics - %s\n", stats.GameID)
	fmt.Println()

	if stats.GamesCount == 0 {
		fmt.Println("  No games played yet.")
		return
	}

	fmt.Printf("  Games played:  %d\n", stats.GamesCount)
	fmt.Printf("  High score:    %d\n", stats.HighScore)
	fmt.Printf("  Best tile:     %d\n", stats.BestTile)
	fmt.Printf("  Average score: %.1f\n", stats.AvgScore)
	fmt.Printf("  Total score:   %d\n", stats.TotalScore)
	fmt.Printf("  Last played:   %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
}

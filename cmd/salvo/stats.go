package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akulikov/salvo/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate win/loss statistics",
	Long: `Display totals across every recorded match: games played, wins,
losses, win rate, and the fewest shots it ever took you to win.

Examples:
  salvo stats
  salvo stats --db ./matches.db`,
	Run: runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	sum, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Salvo - Statistics")
	fmt.Println()

	if sum.Games == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'salvo play' to record your first match!")
		return
	}

	winRate := float64(sum.Wins) / float64(sum.Games) * 100

	fmt.Printf("  %-14s %d\n", "Games:", sum.Games)
	fmt.Printf("  %-14s %d\n", "Wins:", sum.Wins)
	fmt.Printf("  %-14s %d\n", "Losses:", sum.Losses)
	fmt.Printf("  %-14s %.1f%%\n", "Win rate:", winRate)
	if sum.BestWin > 0 {
		fmt.Printf("  %-14s %d shots\n", "Best win:", sum.BestWin)
	}
	fmt.Printf("  %-14s %.0fs\n", "Avg duration:", sum.AvgDuration)
}

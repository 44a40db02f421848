package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best rounds",
	Long: `Display the highest scoring rounds recorded in the scores database.

Examples:
  gridsnake scores
  gridsnake scores --limit 25
  gridsnake scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the round history (keeps the best score)")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Round history cleared.")
		return
	}

	scores, err := store.TopScores(flagLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Grid Snake")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Run 'gridsnake play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-10s  %s\n", "Rank", "Score", "Session", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %s\n", "----", "-----", "-------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-10s  %s\n", i+1, entry.Score, shortID(entry.SessionID), dateStr)
	}

	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Rounds: %d  Average: %.1f\n", stats.Rounds, stats.AvgScore)
	}
	if best, err := store.BestScore(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}

// shortID returns the first eight characters of a session ID.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/storage"
)

var flagReset bool

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show or reset the best score",
	Long: `Print the persisted best score.

The best score is what the game shows as "Best" and only changes when a
round beats it. --reset clears it; the round history is kept.

Examples:
  gridsnake best
  gridsnake best --reset`,
	Args: cobra.NoArgs,
	Run:  runBest,
}

func init() {
	bestCmd.Flags().BoolVar(&flagReset, "reset", false, "Clear the best score")
}

func runBest(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := store.ClearBestScore(); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Best score cleared.")
		return
	}

	best, err := store.BestScore()
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error reading best score: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(best)
}

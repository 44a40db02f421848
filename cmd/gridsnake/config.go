package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the game config as YAML after applying the search order:

  1. --config <path>
  2. ~/.gridsnake/configs/snake.yaml
  3. ./configs/snake.yaml
  4. built-in defaults

The output is a valid config file and can be used as a starting point.

Examples:
  gridsnake config > ~/.gridsnake/configs/snake.yaml
  gridsnake config --config ./big-board.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	data, err := config.Marshal(loadConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}

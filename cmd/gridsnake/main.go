// gridsnake is the classic snake game for the terminal, playable locally or
// over SSH.
//
// Usage:
//
//	gridsnake                - Open the start menu (same as play)
//	gridsnake play           - Open the start menu
//	gridsnake scores         - Show the best rounds
//	gridsnake best [--reset] - Show or clear the best score
//	gridsnake serve          - Start SSH server for remote play
//	gridsnake config         - Print the effective game config
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for a reproducible food sequence
//	--db <path>      - Set database path (default: ~/.gridsnake/scores.db)
//	--config <path>  - Use a custom game config YAML
//	--log <path>     - Log file (default: ~/.gridsnake/gridsnake.log, "" to disable)
//	--debug          - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridsnake",
	Short: "Grid Snake - the classic snake game in your terminal",
	Long: `Grid Snake is the classic snake game on a fixed grid.

Steer the snake to the food, grow one segment per bite and avoid the walls
and your own tail. The best score is kept between runs.

Available commands:
  play     - Play locally (default)
  scores   - Show the best rounds
  best     - Show or reset the best score
  serve    - Start SSH server for remote play
  config   - Print the effective game config

Examples:
  gridsnake
  gridsnake play --seed 42
  gridsnake best --reset
  gridsnake serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gridsnake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.gridsnake/gridsnake.log", "Path to log file (empty to disable)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game config or exits.
func loadConfig() config.SnakeConfig {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// openLogger opens the log file named by --log. The terminal belongs to the
// game, so local sessions never log to stderr.
func openLogger() (*log.Logger, io.Closer, error) {
	if flagLogPath == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	path, err := expandHome(flagLogPath)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "gridsnake",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f, nil
}

// expandHome expands a leading ~ to the home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

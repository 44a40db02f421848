package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play locally",
	Long: `Open the start menu and play on this terminal.

Controls:
  Arrows/WASD/HJKL - Steer
  P                - Pause
  R                - Restart the round
  Enter            - Next round (restart: manual)
  Ctrl+S           - Screenshot to ~/.gridsnake/screenshots
  Esc/B            - Back to menu
  Q/Ctrl+C         - Quit

Examples:
  gridsnake play
  gridsnake play --seed 42
  gridsnake play --config ./big-board.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	snakeCfg := loadConfig()

	logger, logFile, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	width, height := core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.GameOptions{
		Snake: snakeCfg,
		Runtime: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    flagSeed,
		},
		Store:  store,
		Logger: logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logFile.Close()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gravity-dodge/internal/core"
	"github.com/vovakirdan/gravity-dodge/internal/logging"
	"github.com/vovakirdan/gravity-dodge/internal/platform/tui"
	"github.com/vovakirdan/gravity-dodge/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space/Up/W - Start, jump, restart after game over
  Ctrl+S     - Save a PNG screenshot to ~/.gravdodge/screenshots
  ?          - Show all keys
  Q/Ctrl+C   - Quit

When --config points at a file, edits to it are picked up while playing and
apply from the next run.

Examples:
  dodge play
  dodge play --fps 30
  dodge play --seed 42
  dodge play --config ./my-dodge.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed

	logger, closeLog, err := logging.New(flagDebug, "dodge")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.RunOptions{
		Options: tui.Options{
			Config: loadGameConfig(),
			Store:  store,
			Logger: logger,
		},
		ConfigPath: flagConfig,
	}, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// dodge-desktop runs Gravity Dodge in a native window.
//
// Controls: Space/Up/W or left click to start and jump, Esc to quit.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravity-dodge/internal/config"
	"github.com/vovakirdan/gravity-dodge/internal/logging"
	"github.com/vovakirdan/gravity-dodge/internal/platform/desktop"
	"github.com/vovakirdan/gravity-dodge/internal/storage"
)

var (
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge-desktop",
	Short: "Gravity Dodge in a native window",
	Long: `Play Gravity Dodge in a desktop window.

Controls:
  Space/Up/W/Click - Start, jump, restart after game over
  Esc              - Quit`,
	Args: cobra.NoArgs,
	Run:  runDesktop,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.gravdodge/scores.db", "Path to scores database")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Write a debug log to ~/.gravdodge/dodge.log")
}

func runDesktop(_ *cobra.Command, _ []string) {
	logger, closeLog, err := logging.New(flagDebug, "dodge-desktop")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer closeLog()

	cfg, err := config.LoadDodge(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runErr := desktop.Run(desktop.Options{
		Config: cfg,
		Store:  store,
		Logger: logger,
		Seed:   seed,
	}, flagFPS)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

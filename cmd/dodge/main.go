// dodge is a one-button gravity dodge game for the terminal.
//
// Usage:
//
//	dodge play       - Play in the terminal
//	dodge serve      - Start SSH server for remote play
//	dodge scores     - Show the best score and run history
//	dodge snapshot   - Simulate a run headlessly and save a PNG
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.gravdodge/scores.db)
//	--config <path>  - Load game tuning from a YAML file
//	--debug          - Write a debug log to ~/.gravdodge/dodge.log
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravity-dodge/internal/config"
)

var (
	// Global flags
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
	Use:   "dodge",
	Short: "Gravity Dodge - a one-button reflex game for your terminal",
	Long: `Gravity Dodge drops a sprite under gravity; one button makes it jump.
Obstacles scroll in from the right, hugging the ceiling or the floor.
Each obstacle you get past scores a point and speeds up the next ones.

Available commands:
  play      - Play in the terminal
  serve     - Start SSH server for remote play
  scores    - View the best score and run history
  snapshot  - Render a simulated frame to PNG

Examples:
  dodge play
  dodge play --config ./my-dodge.yaml
  dodge serve --ssh :2222
  dodge scores
  dodge snapshot --ticks 600 --out frame.png`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gravdodge/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write a debug log to ~/.gravdodge/dodge.log")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(snapshotCmd)
}

// loadGameConfig loads the tuning, warning and falling back to defaults when
// the custom file is unusable.
func loadGameConfig() config.DodgeConfig {
	cfg, err := config.LoadDodge(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}
	return cfg
}

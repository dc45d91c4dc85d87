package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gravity-dodge/internal/platform/tui"
	"github.com/vovakirdan/gravity-dodge/internal/storage"
)

var (
	flagInteractive bool
	flagRecent      bool
	flagLimit       int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best score and run history",
	Long: `Display the best score and the top runs.

Examples:
  dodge scores
  dodge scores --recent --limit 20
  dodge scores -i        # Browse the history in a table
  dodge scores --clear   # Forget every run and the best score`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the history in a table")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest runs instead of the best")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history and the best score")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	best, err := store.LoadHighScore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving high score: %v\n", err)
		os.Exit(1)
	}

	var scores []storage.ScoreEntry
	title := "Top Runs"
	if flagRecent {
		title = "Recent Runs"
		scores, err = store.RecentScores(flagLimit)
	} else {
		scores, err = store.TopScores(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best: %d\n", best)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dodge play' to set the first high score!")
		return
	}

	fmt.Println(title)
	fmt.Printf("  %-4s  %-8s  %-16s  %s\n", "Rank", "Score", "Date", "Run")
	fmt.Printf("  %-4s  %-8s  %-16s  %s\n", "----", "-----", "----", "---")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-16s  %s\n", i+1, entry.Score, dateStr, entry.RunID)
	}

	if stats, err := store.Stats(); err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Average: %.1f\n", stats.Runs, stats.AvgScore)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/maxvk/flapmax/internal/platform/tui"
	"github.com/maxvk/flapmax/internal/scoreboard"
	"github.com/maxvk/flapmax/internal/storage"
)

var flagScoresInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high-score board",
	Long: `Display the top 10 recorded runs.

Examples:
  flapmax scores
  flapmax scores -i
  flapmax scores --db ./scores.db`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse the board in a full-screen table")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	board := scoreboard.New(store)

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, err := tui.RunScoreboard(board, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	entries, err := board.Top(scoreboard.Capacity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("flapmax - High Scores")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'flapmax play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-14s  %-8s  %-8s  %s\n", "Rank", "Name", "Score", "Coins", "Date")
	fmt.Printf("  %-4s  %-14s  %-8s  %-8s  %s\n", "----", "----", "-----", "-----", "----")

	for _, e := range entries {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-14s  %-8d  %-8d  %s\n", e.Rank, e.Name, e.MainScore, e.CoinScore, dateStr)
	}

	fmt.Println()
	if high, err := board.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}

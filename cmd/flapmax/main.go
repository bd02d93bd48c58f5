// flapmax is a flappy-style arcade game for the terminal.
//
// Usage:
//
//	flapmax play             - Play in the current terminal
//	flapmax scores           - Show the high-score board
//	flapmax serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.flapmax/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flapmax",
	Short: "flapmax - a flappy-style arcade game for your terminal",
	Long: `flapmax is a terminal arcade game: flap through pole gaps, grab
coins and burgers, and keep your energy above zero.

Available commands:
  play     - Play in the current terminal
  scores   - View the high-score board
  serve    - Start SSH server for remote play

Examples:
  flapmax play
  flapmax play --difficulty hard
  flapmax scores
  flapmax serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flapmax/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// invaders is a terminal Space Invaders: defend the bottom of the screen
// from an ever-faster descending swarm.
//
// Usage:
//
//	invaders play            - Play in the current terminal
//	invaders serve           - Start SSH server for remote play
//	invaders scores          - Show the high score table
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.invaders/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
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
	Use:   "invaders",
	Short: "Space Invaders in your terminal",
	Long: `Invaders is a terminal rendition of the classic arcade shooter:
move your ship, shoot rockets, dodge bombs and survive the swarm.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View the high score table

Examples:
  invaders play
  invaders play --difficulty hard
  invaders serve --ssh :2222
  invaders scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invaders/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// hexsnake is a terminal snake game played on a hexagonal board with
// two linked faces joined by wrap portals.
//
// Usage:
//
//	hexsnake play            - Play in the current terminal
//	hexsnake serve           - Start SSH server for remote play
//	hexsnake scores          - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.hexsnake/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/hexsnake/internal/games/hexsnake"
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
	Use:   "hexsnake",
	Short: "Hex Snake - snake on a hexagonal board, in your terminal",
	Long: `Hex Snake is a terminal snake game played on a hexagonal board.
The board has two faces glued along one randomly chosen pair of opposite
edges; crossing that edge wraps the snake onto the mirrored cell of the
other face.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  hexsnake play
  hexsnake play --seed 42
  hexsnake serve --ssh :2222
  hexsnake scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hexsnake/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

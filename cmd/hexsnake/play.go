package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hexsnake/internal/core"
	"github.com/vovakirdan/hexsnake/internal/games/hexsnake"
	"github.com/vovakirdan/hexsnake/internal/platform/tui"
	"github.com/vovakirdan/hexsnake/internal/registry"
	"github.com/vovakirdan/hexsnake/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play hex snake",
	Long: `Start a game in the current terminal.

Controls:
  Left/A/H   - Turn left (60 degrees counterclockwise)
  Right/D/L  - Turn right (60 degrees clockwise)
  P          - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  hexsnake play
  hexsnake play --seed 42
  hexsnake play --config ./my-hexsnake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path before creation; Reset reads it
	hexsnake.SetConfigPath(flagConfig)

	game, err := registry.Create("hexsnake")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

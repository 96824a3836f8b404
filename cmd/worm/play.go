package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-worm/internal/config"
	"github.com/vovakirdan/tui-worm/internal/platform/tui"
	"github.com/vovakirdan/tui-worm/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [difficulty]",
	Short: "Play a worm variant",
	Long: `Start playing at the given difficulty.

Controls:
  Left/A/H    - Steer left (hold)
  Right/D/L   - Steer right (hold)
  Enter/Space - Pause, or restart after a crash
  B/Esc       - Leave (while paused or after a crash)
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Difficulties: very_easy, easy, medium (default), hard.

Examples:
  worm play
  worm play hard
  worm play easy --config ./my-worm.yaml
  worm play medium --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	arg := string(config.DifficultyMedium)
	if len(args) > 0 {
		arg = args[0]
	}

	gameID, err := resolveGameID(arg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'worm list' to see available variants.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	runErr := tui.Run(game, store, runtimeConfig())
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

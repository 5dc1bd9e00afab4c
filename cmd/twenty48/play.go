package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vspivak/twenty48/internal/core"
	"github.com/vspivak/twenty48/internal/games/twenty48"
	"github.com/vspivak/twenty48/internal/platform/tui"
	"github.com/vspivak/twenty48/internal/registry"
	"github.com/vspivak/twenty48/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Arrows/WASD  - Tilt the board
  P            - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Modes:
  classic - Game ends when the target tile appears
  endless - Keep merging past the target until the board is stuck

Examples:
  twenty48 play classic
  twenty48 play endless
  twenty48 play classic --config ./my-rules.yaml
  twenty48 play classic --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'twenty48 list' to see available modes.")
		os.Exit(1)
	}

	// Terminal size, with sane defaults when not a TTY
	width, height := 80, 24
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

	// Custom rules config applies to all modes
	twenty48.SetConfigPath(flagConfig)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

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

// twenty48 is a terminal 2048 game with local and SSH play.
//
// Usage:
//
//	twenty48 list              - List available modes
//	twenty48 play <mode>       - Play a mode
//	twenty48 menu              - Start the interactive mode picker
//	twenty48 serve             - Start SSH server for remote play
//	twenty48 scores <mode>     - Show high scores for a mode
//	twenty48 stats [mode]      - Show aggregate play statistics
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.twenty48/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import variants to register them
	_ "github.com/vspivak/twenty48/internal/games/twenty48"
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
	Use:   "twenty48",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `twenty48 is a terminal rendition of the 2048 sliding-tile game.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  stats    - View aggregate play statistics

Examples:
  twenty48 play classic
  twenty48 play endless --seed 42
  twenty48 menu
  twenty48 serve --ssh :2222
  twenty48 scores classic`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.twenty48/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
}

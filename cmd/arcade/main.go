// arcade is a local-multiplayer TUI arcade: 2-4 players share one
// keyboard in box-physics games rendered in the terminal.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show the leaderboard for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/arcade.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/box-arcade/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/box-arcade/internal/games/brickbreaker"
	_ "github.com/vovakirdan/box-arcade/internal/games/survival"
	_ "github.com/vovakirdan/box-arcade/internal/games/tag"
	_ "github.com/vovakirdan/box-arcade/internal/games/traillock"
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
	Use:   "arcade",
	Short: "Box Arcade - Local-multiplayer box games in your terminal",
	Long: `Box Arcade is a terminal gaming platform for quick local-multiplayer
matches: everyone plays on one keyboard.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View leaderboards

Examples:
  arcade list
  arcade play tag --players 2
  arcade play survival
  arcade menu
  arcade serve --ssh :2222
  arcade scores tag`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

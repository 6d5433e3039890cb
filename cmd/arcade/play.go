package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/box-arcade/internal/config"
	"github.com/vovakirdan/box-arcade/internal/core"
	"github.com/vovakirdan/box-arcade/internal/games/brickbreaker"
	"github.com/vovakirdan/box-arcade/internal/games/survival"
	"github.com/vovakirdan/box-arcade/internal/games/tag"
	"github.com/vovakirdan/box-arcade/internal/games/traillock"
	"github.com/vovakirdan/box-arcade/internal/platform/tui"
	"github.com/vovakirdan/box-arcade/internal/registry"
	"github.com/vovakirdan/box-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagKeys       string
	flagPlayers    int
	flagBots       int
	flagMatchTime  int
	flagMap        int
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Seat layout (one shared keyboard):
  Player 1: WASD
  Player 2: Arrow keys
  Player 3: IJKL
  Player 4: Numpad 8/5/4/6

Platform keys:
  P          - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Gentler configs, progression from zero
  normal - Progression from 30%
  hard   - Harsher configs, progression from 70%
  fixed  - No progression

Examples:
  arcade play tag --players 2
  arcade play tag --players 1 --bots 1 --map 2
  arcade play survival --difficulty hard
  arcade play survival_pvp --players 3
  arcade play brickbreaker --config ./my-brick.yaml
  arcade play traillock --players 4`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagKeys, "keys", "", "Path to custom keybindings JSON")
	playCmd.Flags().IntVar(&flagPlayers, "players", 0, "Number of human players (game default if 0)")
	playCmd.Flags().IntVar(&flagBots, "bots", -1, "Number of bot players (game default if negative)")
	playCmd.Flags().IntVar(&flagMatchTime, "match-time", 0, "Match length in seconds (game default if 0)")
	playCmd.Flags().IntVar(&flagMap, "map", -1, "Platform layout index (game default if negative)")
}

// gameOptions packs the per-game flags for a game's Reset.
func gameOptions() map[string]string {
	opts := make(map[string]string)
	if flagConfig != "" {
		opts["config"] = flagConfig
	}
	if flagPlayers > 0 {
		opts["players"] = strconv.Itoa(flagPlayers)
	}
	if flagBots >= 0 {
		opts["bots"] = strconv.Itoa(flagBots)
	}
	if flagMatchTime > 0 {
		opts["match_time"] = strconv.Itoa(flagMatchTime)
	}
	if flagMap >= 0 {
		opts["map"] = strconv.Itoa(flagMap)
	}
	return opts
}

// applyGameFlags routes config path and difficulty to the right package.
func applyGameFlags(gameID string) {
	switch gameID {
	case "tag":
		tag.SetConfigPath(flagConfig)
		tag.SetDifficultyPreset(flagDifficulty)
	case "survival", "survival_pvp":
		survival.SetConfigPath(flagConfig)
		survival.SetDifficultyPreset(flagDifficulty)
	case "brickbreaker":
		brickbreaker.SetConfigPath(flagConfig)
		brickbreaker.SetDifficultyPreset(flagDifficulty)
	case "traillock":
		traillock.SetConfigPath(flagConfig)
		traillock.SetDifficultyPreset(flagDifficulty)
	}
}

// terminalSize probes the terminal, falling back to 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	kb, err := config.LoadKeybindings(flagKeys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading keybindings: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()
	cfg := core.DefaultConfig()
	cfg.ScreenW = width
	cfg.ScreenH = height
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Options = gameOptions()

	applyGameFlags(gameID)

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

	runErr := tui.Run(game, store, cfg, kb)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

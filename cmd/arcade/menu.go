package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/box-arcade/internal/config"
	"github.com/vovakirdan/box-arcade/internal/core"
	"github.com/vovakirdan/box-arcade/internal/platform/tui"
	"github.com/vovakirdan/box-arcade/internal/registry"
	"github.com/vovakirdan/box-arcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Leaderboards
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./arcade.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagKeys, "keys", "", "Path to custom keybindings JSON")
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
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

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed per match
		cfg.Seed = time.Now().UnixNano()
		if err := tui.Run(game, store, cfg, kb); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}

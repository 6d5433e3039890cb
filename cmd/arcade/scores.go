package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/box-arcade/internal/registry"
	"github.com/vovakirdan/box-arcade/internal/storage"
)

var flagRecent bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show the leaderboard for a game",
	Long: `Display the top 10 scores for the specified game, ranked in the
direction the game scores in (Tag ranks ascending, everything else
descending).

Examples:
  arcade scores tag
  arcade scores survival
  arcade scores traillock --recent`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show recent match results instead of the leaderboard")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRecent {
		printRecent(store, gameID, game.Title())
		return
	}

	scores, err := store.TopScores(gameID, 10, game.HigherIsBetter())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Leaderboard - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to get on the board!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "----", "------", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10s  %-10.1f  %s\n",
			i+1, entry.Player, entry.Value, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, ok, err := store.BestScore(gameID, game.HigherIsBetter()); err == nil && ok {
		fmt.Println()
		fmt.Printf("Best: %.1f\n", best)
	}
}

func printRecent(store *storage.Store, gameID, title string) {
	matches, err := store.RecentMatches(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recent matches - %s\n", title)
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		return
	}

	fmt.Printf("  %-10s  %-7s  %-9s  %s\n", "Winner", "Players", "Duration", "Date")
	fmt.Printf("  %-10s  %-7s  %-9s  %s\n", "------", "-------", "--------", "----")
	for _, m := range matches {
		winner := m.Winner
		if winner == "" {
			winner = "(draw)"
		}
		fmt.Printf("  %-10s  %-7d  %-8.1fs  %s\n",
			winner, m.Players, m.Duration, m.CreatedAt.Format("2006-01-02 15:04"))
	}
}

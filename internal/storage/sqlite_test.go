package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/box-arcade/internal/registry"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveScoresAndTopScores(t *testing.T) {
	store := openTestStore(t)

	err := store.SaveScores("survival", []registry.Score{
		{Name: "P1", Value: 42.5},
		{Name: "P2", Value: 18.0},
	})
	if err != nil {
		t.Fatalf("SaveScores() failed: %v", err)
	}
	err = store.SaveScores("survival", []registry.Score{
		{Name: "P1", Value: 63.2},
	})
	if err != nil {
		t.Fatalf("SaveScores() failed: %v", err)
	}

	// Different game stays separate
	err = store.SaveScores("tag", []registry.Score{{Name: "P1", Value: 30.0}})
	if err != nil {
		t.Fatalf("SaveScores() failed: %v", err)
	}

	// Survival: higher is better
	scores, err := store.TopScores("survival", 10, true)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Value != 63.2 || scores[0].Player != "P1" {
		t.Errorf("Expected best 63.2 by P1, got %v by %s", scores[0].Value, scores[0].Player)
	}
	if scores[2].Value != 18.0 {
		t.Errorf("Expected worst 18.0, got %v", scores[2].Value)
	}
}

func TestTopScoresLowerIsBetter(t *testing.T) {
	store := openTestStore(t)

	err := store.SaveScores("tag", []registry.Score{
		{Name: "P1", Value: 41.0}, // "it" time: less is better
		{Name: "P2", Value: 12.4},
		{Name: "Bot1", Value: 36.6},
	})
	if err != nil {
		t.Fatalf("SaveScores() failed: %v", err)
	}

	scores, err := store.TopScores("tag", 2, false)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 scores, got %d", len(scores))
	}
	if scores[0].Player != "P2" {
		t.Errorf("Expected best entry P2, got %s", scores[0].Player)
	}
}

func TestBestScore(t *testing.T) {
	store := openTestStore(t)

	// Empty game has no best
	if _, ok, err := store.BestScore("survival", true); err != nil || ok {
		t.Fatalf("BestScore on empty = ok=%v err=%v, want no score", ok, err)
	}

	err := store.SaveScores("survival", []registry.Score{
		{Name: "P1", Value: 10},
		{Name: "P2", Value: 55},
	})
	if err != nil {
		t.Fatalf("SaveScores() failed: %v", err)
	}

	best, ok, err := store.BestScore("survival", true)
	if err != nil || !ok {
		t.Fatalf("BestScore() failed: ok=%v err=%v", ok, err)
	}
	if best != 55 {
		t.Errorf("Expected best 55, got %v", best)
	}

	best, ok, err = store.BestScore("survival", false)
	if err != nil || !ok {
		t.Fatalf("BestScore() failed: ok=%v err=%v", ok, err)
	}
	if best != 10 {
		t.Errorf("Expected best 10 with lower-is-better, got %v", best)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	err := store.SaveScores("tag", []registry.Score{{Name: "P1", Value: 1}})
	if err != nil {
		t.Fatalf("SaveScores() failed: %v", err)
	}
	err = store.SaveScores("survival", []registry.Score{{Name: "P1", Value: 2}})
	if err != nil {
		t.Fatalf("SaveScores() failed: %v", err)
	}

	if err := store.ClearScores("tag"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores("tag", 10, false)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected no tag scores after clear, got %d", len(scores))
	}

	// Other games untouched
	scores, err = store.TopScores("survival", 10, true)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Errorf("Expected survival scores to survive, got %d", len(scores))
	}
}

func TestSaveAndRecentMatches(t *testing.T) {
	store := openTestStore(t)

	for i, winner := range []string{"P1", "P2", ""} {
		_, err := store.SaveMatch(MatchResult{
			GameID:   "traillock",
			Winner:   winner,
			Players:  2,
			Duration: float64(30 + i),
		})
		if err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	matches, err := store.RecentMatches("traillock", 2)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(matches))
	}
	// Latest first; the draw was inserted last
	if matches[0].Winner != "" {
		t.Errorf("Expected latest match to be the draw, got winner %q", matches[0].Winner)
	}
	if matches[1].Winner != "P2" {
		t.Errorf("Expected second match winner P2, got %q", matches[1].Winner)
	}
}

// Package storage provides SQLite-based persistence for game scores and
// local match results. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/box-arcade/internal/registry"
)

// DefaultPath is where the arcade keeps its database unless overridden.
const DefaultPath = "~/.arcade/arcade.db"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single recorded score. Value is in whatever unit
// the game scores in (seconds, bricks, rounds); Player is the display name
// of the seat or bot that earned it.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Player    string
	Value     float64
	CreatedAt time.Time
}

// MatchResult represents one finished local match.
type MatchResult struct {
	ID        int64
	GameID    string
	Winner    string // Display name; empty on a draw
	Players   int
	Duration  float64 // Seconds
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL,
			value REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, value DESC);

		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			winner TEXT,
			players INTEGER NOT NULL DEFAULT 1,
			duration_secs REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_game_id ON matches(game_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScores records the final standings of one session in a single
// transaction, one row per player.
func (s *Store) SaveScores(gameID string, scores []registry.Score) error {
	if len(scores) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	for _, sc := range scores {
		if _, err := tx.Exec(
			"INSERT INTO scores (game_id, player, value) VALUES (?, ?, ?)",
			gameID, sc.Name, sc.Value,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: cannot save score: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit scores: %w", err)
	}
	return nil
}

// TopScores retrieves the top N scores for the given game, best first.
// higherIsBetter selects the sort direction, matching the game's scoring.
func (s *Store) TopScores(gameID string, limit int, higherIsBetter bool) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	order := "ASC"
	if higherIsBetter {
		order = "DESC"
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player, value, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY value `+order+`
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	entries, err := scanScores(rows)
	if err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

func scanScores(rows *sql.Rows) ([]ScoreEntry, error) {
	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Player, &e.Value, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// BestScore returns the best recorded value for the given game, in the
// game's own win direction. ok is false when no scores exist.
func (s *Store) BestScore(gameID string, higherIsBetter bool) (value float64, ok bool, err error) {
	agg := "MIN(value)"
	if higherIsBetter {
		agg = "MAX(value)"
	}

	var best sql.NullFloat64
	err = s.db.QueryRow(
		"SELECT "+agg+" FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !best.Valid {
		return 0, false, nil
	}
	return best.Float64, true, nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// SaveMatch records the outcome of one finished local match.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(result MatchResult) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO matches (game_id, winner, players, duration_secs)
		 VALUES (?, ?, ?, ?)`,
		result.GameID, result.Winner, result.Players, result.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentMatches retrieves the latest N match results for the given game.
func (s *Store) RecentMatches(gameID string, limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, winner, players, duration_secs, created_at
		 FROM matches
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var results []MatchResult
	for rows.Next() {
		var m MatchResult
		var winner sql.NullString
		var createdAt any
		if err := rows.Scan(&m.ID, &m.GameID, &winner, &m.Players, &m.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		m.Winner = winner.String

		switch v := createdAt.(type) {
		case time.Time:
			m.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				m.CreatedAt = parsed
			}
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

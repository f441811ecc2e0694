// Package storage provides SQLite-based persistence for finished match
// results. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcome values stored in the matches table.
const (
	OutcomeWin  = "win"
	OutcomeLoss = "loss"
)

// Store manages the SQLite database connection for match results.
type Store struct {
	db *sql.DB
}

// MatchResult records one finished game.
type MatchResult struct {
	ID            int64
	Outcome       string // "win" or "loss"
	PlayerShots   int
	OpponentShots int
	DurationSecs  int
	CreatedAt     time.Time
}

// Summary holds aggregate statistics across all recorded matches.
type Summary struct {
	Games       int
	Wins        int
	Losses      int
	BestWin     int // Fewest player shots in a win, 0 if no wins
	AvgDuration float64
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

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			outcome TEXT NOT NULL,
			player_shots INTEGER NOT NULL,
			opponent_shots INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_outcome ON matches(outcome);
		CREATE INDEX IF NOT EXISTS idx_matches_recent ON matches(created_at DESC);
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

// SaveResult records a finished match. Returns the ID of the inserted row.
func (s *Store) SaveResult(r MatchResult) (int64, error) {
	if r.Outcome != OutcomeWin && r.Outcome != OutcomeLoss {
		return 0, fmt.Errorf("storage: invalid outcome %q", r.Outcome)
	}

	result, err := s.db.Exec(
		"INSERT INTO matches (outcome, player_shots, opponent_shots, duration_secs) VALUES (?, ?, ?, ?)",
		r.Outcome, r.PlayerShots, r.OpponentShots, r.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Recent retrieves the most recent match results, newest first.
func (s *Store) Recent(limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, outcome, player_shots, opponent_shots, duration_secs, created_at
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []MatchResult
	for rows.Next() {
		var r MatchResult
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Outcome, &r.PlayerShots, &r.OpponentShots, &r.DurationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseCreatedAt(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Stats returns aggregate statistics across all recorded matches.
func (s *Store) Stats() (Summary, error) {
	var sum Summary

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'win' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'loss' THEN 1 ELSE 0 END), 0),
		        COALESCE(AVG(duration_secs), 0)
		 FROM matches`,
	).Scan(&sum.Games, &sum.Wins, &sum.Losses, &sum.AvgDuration)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot compute stats: %w", err)
	}

	var best sql.NullInt64
	err = s.db.QueryRow(
		"SELECT MIN(player_shots) FROM matches WHERE outcome = 'win'",
	).Scan(&best)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot compute best win: %w", err)
	}
	if best.Valid {
		sum.BestWin = int(best.Int64)
	}

	return sum, nil
}

// Clear deletes all recorded matches.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// parseCreatedAt handles the driver returning either time.Time or a string.
func parseCreatedAt(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

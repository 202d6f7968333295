// Package storage provides SQLite-based persistence for the per-session
// play history. The JSON statistics documents keep only aggregates;
// this ledger keeps every individual session so score history survives.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the session ledger.
type Store struct {
	db *sql.DB
}

// SessionEntry is one recorded game session.
type SessionEntry struct {
	ID           int64
	GameID       string
	Profile      string
	DurationSecs int
	Score        int
	CreatedAt    time.Time
}

// GameSummary aggregates the ledger for one game.
type GameSummary struct {
	GameID     string
	Sessions   int
	Playtime   int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// Open creates or opens the ledger database at the given path.
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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			profile TEXT NOT NULL DEFAULT 'default',
			duration_secs INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_game_id ON sessions(game_id);
		CREATE INDEX IF NOT EXISTS idx_sessions_top ON sessions(game_id, score DESC);
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

// SaveSession appends one completed session to the ledger.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(profile, gameID string, durationSecs, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO sessions (game_id, profile, duration_secs, score) VALUES (?, ?, ?, ?)",
		gameID, profile, durationSecs, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N sessions for a game by score.
func (s *Store) TopScores(gameID string, limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, profile, duration_secs, score, created_at
		 FROM sessions
		 WHERE game_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// RecentSessions retrieves the most recent sessions across all games.
func (s *Store) RecentSessions(limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, profile, duration_secs, score, created_at
		 FROM sessions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// HighScore returns the highest recorded score for a game.
// Returns 0 if the game has no sessions.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM sessions WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Summary aggregates the ledger for one game.
func (s *Store) Summary(gameID string) (*GameSummary, error) {
	summary := &GameSummary{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(duration_secs), 0), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0)
		 FROM sessions WHERE game_id = ?`,
		gameID,
	).Scan(&summary.Sessions, &summary.Playtime, &summary.HighScore, &summary.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game summary: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM sessions WHERE game_id = ? ORDER BY created_at DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		summary.LastPlayed = parseTimestamp(lastPlayed)
	}

	return summary, nil
}

// ClearSessions deletes all recorded sessions for a game.
func (s *Store) ClearSessions(gameID string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

func scanSessions(rows *sql.Rows) ([]SessionEntry, error) {
	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Profile, &e.DurationSecs, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTimestamp handles both time.Time and string values coming back
// from the driver.
func parseTimestamp(v any) time.Time {
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

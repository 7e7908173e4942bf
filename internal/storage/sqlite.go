// Package storage provides SQLite-based persistence for player progress and
// attempt history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/kidsquids/internal/catalog"
)

// Store manages the SQLite database connection. It is safe for concurrent
// use by several SSH sessions.
type Store struct {
	db *sql.DB
}

// Attempt is one finished level attempt.
type Attempt struct {
	ID         int64
	Profile    string
	SessionID  string
	Mode       catalog.Mode
	Difficulty catalog.Difficulty
	Level      int
	Score      int
	Stars      int
	Coins      int
	Success    bool
	Duration   time.Duration
	CreatedAt  time.Time
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
		CREATE TABLE IF NOT EXISTS kv (
			profile TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (profile, key)
		);

		CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile TEXT NOT NULL,
			session_id TEXT NOT NULL,
			mode TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			level INTEGER NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			stars INTEGER NOT NULL DEFAULT 0,
			coins INTEGER NOT NULL DEFAULT 0,
			success INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_attempts_profile ON attempts(profile, id DESC);
		CREATE INDEX IF NOT EXISTS idx_attempts_mode ON attempts(profile, mode, difficulty);
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

// GetValue returns a profile's value for key and whether it exists.
func (s *Store) GetValue(profile, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(
		"SELECT value FROM kv WHERE profile = ? AND key = ?",
		profile, key,
	).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read %s: %w", key, err)
	}
	return value, true, nil
}

// SetValue stores a profile's value for key, replacing any previous value.
func (s *Store) SetValue(profile, key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (profile, key, value) VALUES (?, ?, ?)
		 ON CONFLICT(profile, key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		profile, key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", key, err)
	}
	return nil
}

// Profiles returns every profile that has stored values.
func (s *Store) Profiles() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT profile FROM kv ORDER BY profile")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return profiles, nil
}

// SaveAttempt records a finished attempt. A missing session ID is filled
// with a fresh UUID. Returns the ID of the inserted record.
func (s *Store) SaveAttempt(a Attempt) (int64, error) {
	if a.SessionID == "" {
		a.SessionID = uuid.NewString()
	}

	result, err := s.db.Exec(
		`INSERT INTO attempts
		 (profile, session_id, mode, difficulty, level, score, stars, coins, success, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.Profile,
		a.SessionID,
		string(a.Mode),
		string(a.Difficulty),
		a.Level,
		a.Score,
		a.Stars,
		a.Coins,
		a.Success,
		a.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save attempt: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentAttempts retrieves a profile's most recent attempts, newest first.
func (s *Store) RecentAttempts(profile string, limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, profile, session_id, mode, difficulty, level, score, stars, coins,
		        success, duration_ms, created_at
		 FROM attempts
		 WHERE profile = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		profile, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		var mode, difficulty string
		var durationMS int64
		var createdAt any

		if err := rows.Scan(
			&a.ID,
			&a.Profile,
			&a.SessionID,
			&mode,
			&difficulty,
			&a.Level,
			&a.Score,
			&a.Stars,
			&a.Coins,
			&a.Success,
			&durationMS,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		a.Mode = catalog.Mode(mode)
		a.Difficulty = catalog.Difficulty(difficulty)
		a.Duration = time.Duration(durationMS) * time.Millisecond
		a.CreatedAt = parseTime(createdAt)
		attempts = append(attempts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return attempts, nil
}

// ClearAttempts deletes a profile's attempt history.
func (s *Store) ClearAttempts(profile string) error {
	_, err := s.db.Exec("DELETE FROM attempts WHERE profile = ?", profile)
	if err != nil {
		return fmt.Errorf("storage: cannot clear attempts: %w", err)
	}
	return nil
}

// ModeStats contains aggregated attempt statistics for one mode and
// difficulty.
type ModeStats struct {
	Mode       catalog.Mode
	Difficulty catalog.Difficulty
	Attempts   int
	Successes  int
	BestScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// AttemptStats aggregates a profile's attempts per mode and difficulty.
func (s *Store) AttemptStats(profile string) ([]ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode, difficulty, COUNT(*), COALESCE(SUM(success), 0), MAX(score), AVG(score), MAX(created_at)
		 FROM attempts
		 WHERE profile = ?
		 GROUP BY mode, difficulty
		 ORDER BY mode, difficulty`,
		profile,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get attempt stats: %w", err)
	}
	defer rows.Close()

	var stats []ModeStats
	for rows.Next() {
		var ms ModeStats
		var mode, difficulty string
		var lastPlayed any
		if err := rows.Scan(&mode, &difficulty, &ms.Attempts, &ms.Successes, &ms.BestScore, &ms.AvgScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ms.Mode = catalog.Mode(mode)
		ms.Difficulty = catalog.Difficulty(difficulty)
		ms.LastPlayed = parseTime(lastPlayed)
		stats = append(stats, ms)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles the datetime column arriving as time.Time or string.
func parseTime(v any) time.Time {
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

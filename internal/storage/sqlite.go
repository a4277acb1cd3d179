// Package storage provides SQLite-based persistence for solved levels.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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
)

// Store manages the SQLite database connection for solve records.
type Store struct {
	db *sql.DB
}

// Solve is one completed level run.
type Solve struct {
	ID        int64
	SessionID string
	LevelID   string
	Moves     int
	Duration  time.Duration
	CreatedAt time.Time
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	LevelID    string
	Solves     int
	BestMoves  int
	AvgMoves   float64
	LastSolved time.Time
}

// NewSessionID returns a fresh identifier for a play session.
func NewSessionID() string {
	return uuid.NewString()
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
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			level_id TEXT NOT NULL,
			moves INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_level_id ON solves(level_id);
		CREATE INDEX IF NOT EXISTS idx_solves_best ON solves(level_id, moves ASC, duration_ms ASC);
		CREATE INDEX IF NOT EXISTS idx_solves_session ON solves(session_id);
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

// SaveSolve records a completed level. An empty SessionID gets a fresh one.
// Returns the ID of the inserted record.
func (s *Store) SaveSolve(solve Solve) (int64, error) {
	if solve.LevelID == "" {
		return 0, errors.New("storage: solve has no level id")
	}
	if solve.SessionID == "" {
		solve.SessionID = NewSessionID()
	}

	result, err := s.db.Exec(
		"INSERT INTO solves (session_id, level_id, moves, duration_ms) VALUES (?, ?, ?, ?)",
		solve.SessionID, solve.LevelID, solve.Moves, solve.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestSolves retrieves the top N solves for a level.
// Fewer moves rank first, then shorter duration.
func (s *Store) BestSolves(levelID string, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, level_id, moves, duration_ms, created_at
		 FROM solves
		 WHERE level_id = ?
		 ORDER BY moves ASC, duration_ms ASC, id ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var e Solve
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SessionID, &e.LevelID, &e.Moves, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMs) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		solves = append(solves, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return solves, nil
}

// BestMoves returns the lowest move count recorded for a level.
// The bool is false when the level has never been solved.
func (s *Store) BestMoves(levelID string) (int, bool, error) {
	var moves sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(moves) FROM solves WHERE level_id = ?",
		levelID,
	).Scan(&moves)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best moves: %w", err)
	}

	if !moves.Valid {
		return 0, false, nil
	}
	return int(moves.Int64), true, nil
}

// SolvedLevels returns the set of level IDs with at least one solve.
func (s *Store) SolvedLevels() (map[string]bool, error) {
	rows, err := s.db.Query("SELECT DISTINCT level_id FROM solves")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solved levels: %w", err)
	}
	defer rows.Close()

	solved := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		solved[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return solved, nil
}

// SessionSolves returns every solve recorded under a session, oldest first.
func (s *Store) SessionSolves(sessionID string) ([]Solve, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, level_id, moves, duration_ms, created_at
		 FROM solves
		 WHERE session_id = ?
		 ORDER BY id ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var e Solve
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SessionID, &e.LevelID, &e.Moves, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMs) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		solves = append(solves, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return solves, nil
}

// ClearSolves deletes all solves for the given level.
func (s *Store) ClearSolves(levelID string) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// AllLevelStats retrieves statistics for every level that has been solved.
func (s *Store) AllLevelStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), MIN(moves), AVG(moves), MAX(created_at)
		 FROM solves
		 GROUP BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var st LevelStats
		var lastSolved any
		if err := rows.Scan(&st.LevelID, &st.Solves, &st.BestMoves, &st.AvgMoves, &lastSolved); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastSolved = parseTime(lastSolved)
		stats[st.LevelID] = &st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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

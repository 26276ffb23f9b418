// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcome is how a run ended.
type Outcome string

const (
	OutcomeDied Outcome = "died"
	OutcomeWon  Outcome = "won"
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Run is one finished platformer session.
type Run struct {
	ID           int64
	PackID       string
	Player       string
	Score        int
	LevelReached int // 1-based
	Outcome      Outcome
	Ticks        uint64
	CreatedAt    time.Time
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pack_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			level_reached INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_pack_id ON runs(pack_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(pack_id, score DESC);
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

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.PackID == "" {
		return 0, errors.New("storage: run has no pack id")
	}
	result, err := s.db.Exec(
		`INSERT INTO runs (pack_id, player, score, level_reached, outcome, ticks)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.PackID, r.Player, r.Score, r.LevelReached, string(r.Outcome), int64(r.Ticks), //#nosec G115 -- tick counts stay far below 2^63
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, pack_id, player, score, level_reached, outcome, ticks, created_at`

// TopScores retrieves the top N runs for the given pack.
// Results are ordered by score descending, earliest first on ties.
func (s *Store) TopScores(packID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE pack_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		packID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanRuns(rows)
}

// RecentRuns retrieves the most recent runs across all packs.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent runs: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r         Run
			outcome   string
			ticks     int64
			createdAt any
		)
		if err := rows.Scan(&r.ID, &r.PackID, &r.Player, &r.Score, &r.LevelReached, &outcome, &ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = Outcome(outcome)
		r.Ticks = uint64(max(ticks, 0)) //#nosec G115 -- clamped to non-negative
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
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

// HighScore returns the highest score for the given pack.
// Returns 0 if no runs exist.
func (s *Store) HighScore(packID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE pack_id = ?",
		packID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all runs for the given pack.
func (s *Store) ClearScores(packID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE pack_id = ?", packID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// PackStats contains aggregated statistics for a level pack.
type PackStats struct {
	PackID     string
	Runs       int
	Wins       int
	HighScore  int
	AvgScore   float64
	BestLevel  int
	LastPlayed time.Time
}

// PackStats retrieves aggregated statistics for a specific pack.
func (s *Store) PackStats(packID string) (*PackStats, error) {
	stats := &PackStats{PackID: packID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(level_reached), 0), MAX(created_at)
		 FROM runs WHERE pack_id = ?`,
		string(OutcomeWon), packID,
	).Scan(&stats.Runs, &stats.Wins, &stats.HighScore, &stats.AvgScore, &stats.BestLevel, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get pack stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// AllPackStats retrieves statistics for every pack that has been played.
func (s *Store) AllPackStats() (map[string]*PackStats, error) {
	rows, err := s.db.Query(
		`SELECT pack_id, COUNT(*),
		        SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END),
		        MAX(score), AVG(score), MAX(level_reached), MAX(created_at)
		 FROM runs
		 GROUP BY pack_id`,
		string(OutcomeWon),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all pack stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PackStats)
	for rows.Next() {
		var ps PackStats
		var lastPlayed any
		if err := rows.Scan(&ps.PackID, &ps.Runs, &ps.Wins, &ps.HighScore, &ps.AvgScore, &ps.BestLevel, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.LastPlayed = parseTime(lastPlayed)
		stats[ps.PackID] = &ps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

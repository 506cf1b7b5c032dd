// Package storage provides SQLite-based persistence for level progress.
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

// Store manages the SQLite database connection for progress persistence.
// It is safe for concurrent use by multiple sessions.
type Store struct {
	db *sql.DB
}

// Progress is the saved state of one level.
type Progress struct {
	Pack        string
	Level       string
	Completed   bool
	BestMoves   int // 0 when no completion is recorded
	BestPath    string
	Completions int
	UpdatedAt   time.Time
}

// HasBest reports whether a best move count is stored.
func (p Progress) HasBest() bool {
	return p.BestMoves > 0
}

// Completion is a single solved-level record.
type Completion struct {
	ID        int64
	Pack      string
	Level     string
	Moves     int
	Path      string
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

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// SSH sessions write concurrently. Transactions take the write lock at
	// BEGIN so busy_timeout applies instead of a mid-transaction SQLITE_BUSY.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)&_txlock=immediate")
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
		CREATE TABLE IF NOT EXISTS level_progress (
			pack TEXT NOT NULL,
			level TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			best_moves INTEGER,
			best_path TEXT NOT NULL DEFAULT '',
			completions INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (pack, level)
		);

		CREATE TABLE IF NOT EXISTS completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pack TEXT NOT NULL,
			level TEXT NOT NULL,
			moves INTEGER NOT NULL,
			path TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_completions_level ON completions(pack, level);
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

// RecordCompletion marks a level completed and logs the completion.
// The best move count and path are replaced only when moves is strictly
// lower than the stored best, or when none is stored yet. improved reports
// whether that happened.
func (s *Store) RecordCompletion(pack, level string, moves int, path string) (improved bool, err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback() //nolint:errcheck // Original error is more useful
		}
	}()

	var best sql.NullInt64
	err = tx.QueryRow(
		"SELECT best_moves FROM level_progress WHERE pack = ? AND level = ?",
		pack, level,
	).Scan(&best)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		improved = true
		_, err = tx.Exec(
			`INSERT INTO level_progress (pack, level, completed, best_moves, best_path, completions)
			 VALUES (?, ?, 1, ?, ?, 1)`,
			pack, level, moves, path,
		)
	case err != nil:
		return false, fmt.Errorf("storage: cannot query progress: %w", err)
	default:
		improved = !best.Valid || int64(moves) < best.Int64
		if improved {
			_, err = tx.Exec(
				`UPDATE level_progress
				 SET completed = 1, best_moves = ?, best_path = ?,
				     completions = completions + 1, updated_at = CURRENT_TIMESTAMP
				 WHERE pack = ? AND level = ?`,
				moves, path, pack, level,
			)
		} else {
			_, err = tx.Exec(
				`UPDATE level_progress
				 SET completed = 1, completions = completions + 1, updated_at = CURRENT_TIMESTAMP
				 WHERE pack = ? AND level = ?`,
				pack, level,
			)
		}
	}
	if err != nil {
		return false, fmt.Errorf("storage: cannot save progress: %w", err)
	}

	_, err = tx.Exec(
		"INSERT INTO completions (pack, level, moves, path) VALUES (?, ?, ?, ?)",
		pack, level, moves, path,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot save completion: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("storage: cannot commit: %w", err)
	}
	return improved, nil
}

const progressColumns = `pack, level, completed, best_moves, best_path, completions, updated_at`

// Progress returns the saved state of one level. A level never completed
// yields a zero Progress with Pack and Level set.
func (s *Store) Progress(pack, level string) (Progress, error) {
	row := s.db.QueryRow(
		`SELECT `+progressColumns+` FROM level_progress WHERE pack = ? AND level = ?`,
		pack, level,
	)
	p, err := scanProgress(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Progress{Pack: pack, Level: level}, nil
	}
	if err != nil {
		return Progress{}, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	return p, nil
}

// PackProgress returns saved progress for every level of a pack, keyed by
// level ID.
func (s *Store) PackProgress(pack string) (map[string]Progress, error) {
	rows, err := s.db.Query(
		`SELECT `+progressColumns+` FROM level_progress WHERE pack = ?`,
		pack,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	defer rows.Close()

	result := make(map[string]Progress)
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		result[p.Level] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return result, nil
}

// AllProgress returns every saved level ordered by pack and level.
func (s *Store) AllProgress() ([]Progress, error) {
	rows, err := s.db.Query(
		`SELECT ` + progressColumns + ` FROM level_progress ORDER BY pack, level`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	defer rows.Close()

	var result []Progress
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return result, nil
}

// RecentCompletions returns the latest completions, newest first.
func (s *Store) RecentCompletions(limit int) ([]Completion, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, pack, level, moves, path, created_at
		 FROM completions
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completions: %w", err)
	}
	defer rows.Close()

	var entries []Completion
	for rows.Next() {
		var c Completion
		var createdAt any
		if err := rows.Scan(&c.ID, &c.Pack, &c.Level, &c.Moves, &c.Path, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		c.CreatedAt = parseTime(createdAt)
		entries = append(entries, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// ClearProgress deletes saved progress and completions for a pack, or for
// every pack when pack is empty.
func (s *Store) ClearProgress(pack string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}

	for _, table := range []string{"level_progress", "completions"} {
		query := "DELETE FROM " + table
		var args []any
		if pack != "" {
			query += " WHERE pack = ?"
			args = append(args, pack)
		}
		if _, err := tx.Exec(query, args...); err != nil {
			tx.Rollback() //nolint:errcheck // Original error is more useful
			return fmt.Errorf("storage: cannot clear progress: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProgress(row scanner) (Progress, error) {
	var p Progress
	var completed int
	var best sql.NullInt64
	var updatedAt any
	if err := row.Scan(&p.Pack, &p.Level, &completed, &best, &p.BestPath, &p.Completions, &updatedAt); err != nil {
		return Progress{}, err
	}
	p.Completed = completed != 0
	if best.Valid {
		p.BestMoves = int(best.Int64)
	}
	p.UpdatedAt = parseTime(updatedAt)
	return p, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Package storage provides SQLite-based persistence for grid bookmarks.
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

	"github.com/vovakirdan/tui-pathfinder/internal/pathfind"
)

// Store manages the SQLite database connection for bookmarks.
type Store struct {
	db *sql.DB
}

// Bookmark is a named grid recipe. Replaying it regenerates the same grid;
// search results are never stored.
type Bookmark struct {
	ID          int64
	Name        string
	Cols        int
	Rows        int
	Probability float64
	Seed        int64
	Start       pathfind.Position
	Goal        pathfind.Position
	CreatedAt   time.Time
}

// BookmarkFromSpec names a grid spec.
func BookmarkFromSpec(name string, spec pathfind.Spec) Bookmark {
	return Bookmark{
		Name:        name,
		Cols:        spec.Cols,
		Rows:        spec.Rows,
		Probability: spec.ObstacleProbability,
		Seed:        spec.Seed,
		Start:       spec.Start,
		Goal:        spec.Goal,
	}
}

// Spec returns the grid spec the bookmark replays.
func (b Bookmark) Spec() pathfind.Spec {
	return pathfind.Spec{
		Cols:                b.Cols,
		Rows:                b.Rows,
		ObstacleProbability: b.Probability,
		Start:               b.Start,
		Goal:                b.Goal,
		Seed:                b.Seed,
	}
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
		CREATE TABLE IF NOT EXISTS bookmarks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			cols INTEGER NOT NULL,
			rows INTEGER NOT NULL,
			probability REAL NOT NULL,
			seed INTEGER NOT NULL,
			start_x INTEGER NOT NULL,
			start_y INTEGER NOT NULL,
			goal_x INTEGER NOT NULL,
			goal_y INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_bookmarks_created ON bookmarks(created_at DESC);
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

// SaveBookmark stores b under its name, replacing any bookmark with the same name.
// Returns the ID of the stored record.
func (s *Store) SaveBookmark(b Bookmark) (int64, error) {
	if b.Name == "" {
		return 0, fmt.Errorf("storage: bookmark name is empty")
	}
	if err := b.Spec().Validate(); err != nil {
		return 0, fmt.Errorf("storage: cannot save bookmark %q: %w", b.Name, err)
	}

	_, err := s.db.Exec(
		`INSERT INTO bookmarks
		 (name, cols, rows, probability, seed, start_x, start_y, goal_x, goal_y)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   cols = excluded.cols,
		   rows = excluded.rows,
		   probability = excluded.probability,
		   seed = excluded.seed,
		   start_x = excluded.start_x,
		   start_y = excluded.start_y,
		   goal_x = excluded.goal_x,
		   goal_y = excluded.goal_y,
		   created_at = CURRENT_TIMESTAMP`,
		b.Name, b.Cols, b.Rows, b.Probability, b.Seed,
		b.Start.X, b.Start.Y, b.Goal.X, b.Goal.Y,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save bookmark: %w", err)
	}

	// LastInsertId is unreliable for upserts; read the row back.
	var id int64
	if err := s.db.QueryRow("SELECT id FROM bookmarks WHERE name = ?", b.Name).Scan(&id); err != nil {
		return 0, fmt.Errorf("storage: cannot get bookmark ID: %w", err)
	}
	return id, nil
}

// Bookmarks retrieves the most recent bookmarks, newest first.
func (s *Store) Bookmarks(limit int) ([]Bookmark, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(
		`SELECT id, name, cols, rows, probability, seed, start_x, start_y, goal_x, goal_y, created_at
		 FROM bookmarks
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query bookmarks: %w", err)
	}
	defer rows.Close()

	var entries []Bookmark
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BookmarkByName retrieves a bookmark by name. Returns nil if it does not exist.
func (s *Store) BookmarkByName(name string) (*Bookmark, error) {
	row := s.db.QueryRow(
		`SELECT id, name, cols, rows, probability, seed, start_x, start_y, goal_x, goal_y, created_at
		 FROM bookmarks
		 WHERE name = ?`,
		name,
	)
	b, err := scanBookmark(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query bookmark: %w", err)
	}
	return &b, nil
}

// DeleteBookmark removes a bookmark by name and reports whether it existed.
func (s *Store) DeleteBookmark(name string) (bool, error) {
	res, err := s.db.Exec("DELETE FROM bookmarks WHERE name = ?", name)
	if err != nil {
		return false, fmt.Errorf("storage: cannot delete bookmark: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	return n > 0, nil
}

// BookmarkCount returns the number of stored bookmarks.
func (s *Store) BookmarkCount() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM bookmarks").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count bookmarks: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookmark(r rowScanner) (Bookmark, error) {
	var b Bookmark
	var createdAt any
	err := r.Scan(
		&b.ID,
		&b.Name,
		&b.Cols,
		&b.Rows,
		&b.Probability,
		&b.Seed,
		&b.Start.X,
		&b.Start.Y,
		&b.Goal.X,
		&b.Goal.Y,
		&createdAt,
	)
	if err != nil {
		return Bookmark{}, err
	}
	b.CreatedAt = parseTime(createdAt)
	return b, nil
}

// parseTime handles both time.Time and string datetime columns.
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

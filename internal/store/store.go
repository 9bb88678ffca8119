// Package store handles SQLite persistence of recently practiced texts.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Recent describes one previously practiced file. Only file metadata is
// recorded; cursor position and verdicts are session-scoped and never
// persisted.
type Recent struct {
	Path     string
	Language string
	OpenedAt time.Time
	Opens    int
}

// Store wraps SQLite access for the recents list.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS recents (
			path TEXT PRIMARY KEY,
			language TEXT NOT NULL,
			opened_at TEXT NOT NULL,
			opens INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_recents_opened_at ON recents(opened_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Touch records that path was opened now, creating the row on first open
// and bumping the open count afterwards.
func (s *Store) Touch(ctx context.Context, path, language string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO recents (path, language, opened_at, opens)
		 VALUES (?, ?, ?, 1)
		 ON CONFLICT(path) DO UPDATE SET
			language = excluded.language,
			opened_at = excluded.opened_at,
			opens = opens + 1`,
		path, language, time.Now().Format(time.RFC3339Nano),
	)
	return err
}

// ListRecent returns up to limit recents, most recently opened first.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]Recent, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT path, language, opened_at, opens
		 FROM recents
		 ORDER BY opened_at DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var recents []Recent
	for rows.Next() {
		var r Recent
		var openedAt string
		if err := rows.Scan(&r.Path, &r.Language, &openedAt, &r.Opens); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, openedAt)
		if err != nil {
			return nil, err
		}
		r.OpenedAt = parsed
		recents = append(recents, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return recents, nil
}

// Forget removes path from the recents list. Removing an unknown path is
// not an error.
func (s *Store) Forget(ctx context.Context, path string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM recents WHERE path = ?`, path)
	return err
}

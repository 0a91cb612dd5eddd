// Package sqlite persists the sessions and speakers that the validation
// services answer for. Deletes are soft: rows are flagged rather than
// removed, and flagged rows report as not existing.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	berr "github.com/next-trace/scg-conference-bus/contract/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL DEFAULT '',
	deleted    INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS speakers (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL DEFAULT '',
	deleted    INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);
`

// Store is a SQLite-backed store for sessions and speakers.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens (and if needed initializes) a SQLite store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}

	return s.sqlDB.Close()
}

// CreateSession inserts a session row. Re-creating an id that was soft-deleted
// revives it.
func (s *Store) CreateSession(ctx context.Context, id, title string) error {
	return s.create(ctx, "sessions", "title", id, title)
}

// DeleteSession flags the session as deleted without removing the row.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	return s.softDelete(ctx, "sessions", id)
}

// SessionExists reports whether the session exists and is not soft-deleted.
func (s *Store) SessionExists(ctx context.Context, id string) (bool, error) {
	return s.exists(ctx, "sessions", id)
}

// CreateSpeaker inserts a speaker row. Re-creating an id that was soft-deleted
// revives it.
func (s *Store) CreateSpeaker(ctx context.Context, id, name string) error {
	return s.create(ctx, "speakers", "name", id, name)
}

// DeleteSpeaker flags the speaker as deleted without removing the row.
func (s *Store) DeleteSpeaker(ctx context.Context, id string) error {
	return s.softDelete(ctx, "speakers", id)
}

// SpeakerExists reports whether the speaker exists and is not soft-deleted.
func (s *Store) SpeakerExists(ctx context.Context, id string) (bool, error) {
	return s.exists(ctx, "speakers", id)
}

func (s *Store) create(ctx context.Context, table, labelCol, id, label string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s id is required", strings.TrimSuffix(table, "s"))
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (id, %s, deleted, created_at) VALUES (?, ?, 0, ?)
		 ON CONFLICT(id) DO UPDATE SET %s = excluded.%s, deleted = 0`,
		table, labelCol, labelCol, labelCol,
	)

	if _, err := s.sqlDB.ExecContext(ctx, query, id, label, s.now().UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("insert %s %s: %w", table, id, errors.Join(berr.ErrStoreFailed, err))
	}

	return nil
}

func (s *Store) softDelete(ctx context.Context, table, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	query := fmt.Sprintf(`UPDATE %s SET deleted = 1 WHERE id = ?`, table)

	res, err := s.sqlDB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", table, id, errors.Join(berr.ErrStoreFailed, err))
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("delete %s %s: no such row", table, id)
	}

	return nil
}

func (s *Store) exists(ctx context.Context, table, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	query := fmt.Sprintf(`SELECT 1 FROM %s WHERE id = ? AND deleted = 0`, table)

	var one int

	err := s.sqlDB.QueryRowContext(ctx, query, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("lookup %s %s: %w", table, id, errors.Join(berr.ErrStoreFailed, err))
	}

	return true, nil
}

package tokenstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Ensure SQLite implements Store.
var _ Store = (*SQLite)(nil)

// SQLite keeps the credential in a single-row table inside a local
// database. Useful for clients that already maintain local state in
// SQLite; callers own the *sql.DB and import the driver
// (e.g. modernc.org/sqlite).
type SQLite struct {
	db *sql.DB
}

// NewSQLite binds the store to db and ensures the backing table exists.
func NewSQLite(ctx context.Context, db *sql.DB) (*SQLite, error) {
	if db == nil {
		return nil, fmt.Errorf("tokenstore: nil database handle")
	}
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS auth_token (
  id    INTEGER PRIMARY KEY CHECK (id = 1),
  token TEXT NOT NULL
);`)
	if err != nil {
		return nil, fmt.Errorf("tokenstore: create auth_token table: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(ctx context.Context) (string, error) {
	var token string
	err := s.db.QueryRowContext(ctx, `SELECT token FROM auth_token WHERE id = 1`).Scan(&token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("tokenstore: query token: %w", err)
	}
	if token == "" {
		return "", ErrNotFound
	}
	return token, nil
}

func (s *SQLite) Set(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO auth_token (id, token) VALUES (1, ?)
ON CONFLICT (id) DO UPDATE SET token = excluded.token`, token)
	if err != nil {
		return fmt.Errorf("tokenstore: persist token: %w", err)
	}
	return nil
}

func (s *SQLite) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM auth_token WHERE id = 1`); err != nil {
		return fmt.Errorf("tokenstore: delete token: %w", err)
	}
	return nil
}

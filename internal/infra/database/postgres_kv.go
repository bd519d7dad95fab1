// internal/infra/database/postgres_kv.go
package database

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresKV implements storage.KeyValue over a single 'app_state' table
// (key TEXT PRIMARY KEY, value TEXT NOT NULL, updated_at TIMESTAMPTZ).
// It backs the pending-notification list, the user preferences document
// and the activity log.
type PostgresKV struct {
	db *sql.DB
}

func NewPostgresKV(db *sql.DB) *PostgresKV {
	return &PostgresKV{db: db}
}

func (s *PostgresKV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM app_state WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("error reading app state key %q: %w", key, err)
	}
	return value, true, nil
}

func (s *PostgresKV) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO app_state (key, value, updated_at)
               VALUES ($1, $2, NOW())
               ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("error writing app state key %q: %w", key, err)
	}
	return nil
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// BaseRepository provides the key-value state access shared by all
// repositories. Application state lives in a single app_state table keyed by
// blob name, with one JSON document per key.
type BaseRepository struct {
	DB *sql.DB
}

// getState reads the JSON blob stored under key. found is false when the key
// has never been written.
func (r *BaseRepository) getState(ctx context.Context, key string) (value []byte, found bool, err error) {
	query := `SELECT value FROM app_state WHERE key = ?;`

	err = r.DB.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read state %q: %w", key, err)
	}
	return value, true, nil
}

// setState overwrites the JSON blob stored under key.
func (r *BaseRepository) setState(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO app_state (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at;
	`

	if _, err := r.DB.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to write state %q: %w", key, err)
	}
	return nil
}

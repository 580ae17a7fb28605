package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Keys the store persists its state slices under.
const (
	KeyUser     = "user"
	KeyGoals    = "goals"
	KeyLanguage = "language"
)

// StateStore is the durable key-value adapter backing the goal store. Values
// are opaque string blobs; the store decides their encoding.
type StateStore struct {
	sqldb *sql.DB
}

func NewStateStore(sqldb *sql.DB) *StateStore {
	return &StateStore{sqldb: sqldb}
}

// Load returns the blob stored under key, reporting absence via ok=false.
func (s *StateStore) Load(ctx context.Context, key string) (string, bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, fmt.Errorf("state key is required")
	}
	var value string
	err := s.sqldb.QueryRowContext(ctx, `SELECT value FROM app_state WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load state %q: %w", key, err)
	}
	return value, true, nil
}

// Save upserts the blob stored under key.
func (s *StateStore) Save(ctx context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("state key is required")
	}
	_, err := s.sqldb.ExecContext(ctx, `
INSERT INTO app_state(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, value)
	if err != nil {
		return fmt.Errorf("save state %q: %w", key, err)
	}
	return nil
}

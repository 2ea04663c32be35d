package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Session record keys. These mirror the browser local-storage keys the
// backend contract was written against.
const (
	KeyToken        = "token"
	KeyRefreshToken = "refreshToken"
	KeyUserEmail    = "userEmail"
)

// SessionRepo persists the minimal session record: token, refresh token and
// the email the identity is reconstructed from. Nothing else is stored
// client-side.
type SessionRepo struct {
	db *sql.DB
}

func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Get returns the stored value for key, or "" when the key is absent.
func (r *SessionRepo) Get(ctx context.Context, key string) (string, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key)

	var v string
	if err := row.Scan(&v); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("session get %s: %w", key, err)
	}
	return v, nil
}

func (r *SessionRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("session set %s: %w", key, err)
	}
	return nil
}

// Clear removes every session key. Used by logout and by the forced
// teardown on a 401 response.
func (r *SessionRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}

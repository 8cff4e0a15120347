package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mrozco/galleria/gallery/domain"
)

var _ domain.SessionRepository = (*KVSessionRepository)(nil)

// KVSessionRepository persists the session flag as a JSON boolean under its
// own key, independent of the collection snapshot.
type KVSessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new KVSessionRepository from a standard
// sql.DB
func NewSessionRepository(sqlDB *sql.DB) *KVSessionRepository {
	return &KVSessionRepository{db: sqlDB}
}

// Load returns the persisted session flag, false when absent.
func (r *KVSessionRepository) Load(ctx context.Context) (bool, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, getEntryQuery, sessionKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read session flag: %w", err)
	}

	var authorized bool
	if err := json.Unmarshal([]byte(raw), &authorized); err != nil {
		return false, fmt.Errorf("failed to deserialize session flag: %w", err)
	}
	return authorized, nil
}

// Save writes the session flag.
func (r *KVSessionRepository) Save(ctx context.Context, authorized bool) error {
	raw, err := json.Marshal(authorized)
	if err != nil {
		return fmt.Errorf("failed to serialize session flag: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, putEntryQuery, sessionKey, string(raw)); err != nil {
		return fmt.Errorf("failed to write session flag: %w", err)
	}
	return nil
}

// Clear removes the session flag entry entirely.
func (r *KVSessionRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteEntryQuery, sessionKey); err != nil {
		return fmt.Errorf("failed to remove session flag: %w", err)
	}
	return nil
}

package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mrozco/galleria/gallery/domain"
)

var _ domain.CollectionRepository = (*KVCollectionRepository)(nil)

// KVCollectionRepository persists the whole gallery collection as one JSON
// array under a single key. Field names in the serialized records are the
// storage contract and must not change.
type KVCollectionRepository struct {
	db *sql.DB
}

// NewCollectionRepository creates a new KVCollectionRepository from a
// standard sql.DB
func NewCollectionRepository(sqlDB *sql.DB) *KVCollectionRepository {
	return &KVCollectionRepository{db: sqlDB}
}

// Load returns the persisted collection, (nil, nil) when no snapshot
// exists. A snapshot that fails to deserialize is reported as an error; the
// caller decides how to degrade.
func (r *KVCollectionRepository) Load(ctx context.Context) ([]domain.ImageRecord, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, getEntryQuery, collectionKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read collection snapshot: %w", err)
	}

	var records []domain.ImageRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("failed to deserialize collection snapshot: %w", err)
	}
	return records, nil
}

// Save replaces the persisted snapshot with the given collection.
func (r *KVCollectionRepository) Save(ctx context.Context, records []domain.ImageRecord) error {
	if records == nil {
		records = []domain.ImageRecord{}
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to serialize collection snapshot: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, putEntryQuery, collectionKey, string(raw)); err != nil {
		return fmt.Errorf("failed to write collection snapshot: %w", err)
	}
	return nil
}

// Clear removes the persisted snapshot entry entirely.
func (r *KVCollectionRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteEntryQuery, collectionKey); err != nil {
		return fmt.Errorf("failed to remove collection snapshot: %w", err)
	}
	return nil
}

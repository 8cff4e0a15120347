package domain

import (
	"context"
	"time"
)

// ImageRecord is the canonical unit of the gallery: a fully decoded image
// together with the metadata captured at ingestion.
// ID, Data, AddedAt, Width and Height never change after the record is
// admitted; a record only exists once both encoding and dimension probing
// have succeeded.
type ImageRecord struct {
	ID          string    `json:"id"`
	Data        string    `json:"data"`
	DisplayName string    `json:"displayName"`
	AddedAt     time.Time `json:"addedAt"`
	Featured    bool      `json:"featured"`
	Caption     string    `json:"caption"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
}

// FieldPatch carries the mutable fields of an ImageRecord. Nil fields are
// left untouched by an update.
type FieldPatch struct {
	DisplayName *string
	Caption     *string
	Featured    *bool
}

// Direction selects which neighbor a record swaps with during a reorder.
type Direction string

const (
	MoveUp   Direction = "up"
	MoveDown Direction = "down"
)

// CollectionRepository persists the ordered gallery collection as a single
// snapshot. Collection order is the only ranking that is ever stored;
// display order is always derived.
type CollectionRepository interface {
	// Load returns the persisted collection. A missing snapshot yields
	// (nil, nil); a snapshot that cannot be deserialized yields an error.
	Load(ctx context.Context) ([]ImageRecord, error)

	// Save replaces the persisted snapshot with the given collection.
	Save(ctx context.Context, records []ImageRecord) error

	// Clear removes the persisted snapshot entirely, which is distinct
	// from saving an empty collection.
	Clear(ctx context.Context) error
}

// SessionRepository persists the session flag independently of the gallery
// collection.
type SessionRepository interface {
	// Load returns the persisted session flag, false when absent.
	Load(ctx context.Context) (bool, error)

	Save(ctx context.Context, authorized bool) error

	Clear(ctx context.Context) error
}

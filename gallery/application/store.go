package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/mrozco/galleria/gallery/domain"
)

// GalleryStore is the exclusive owner of the ordered image collection.
// Every mutation applies to the in-memory collection and persists a snapshot
// before returning. The mutex serializes each read-modify-write-persist
// cycle, so two ingestion batches landing close together cannot lose each
// other's prepends.
//
// Persistence failures never roll the in-memory collection back: the error
// returned by a mutation wraps domain.ErrPersist and callers surface it as a
// warning while the in-memory state stays authoritative for the session.
type GalleryStore struct {
	mu      sync.Mutex
	records []domain.ImageRecord
	repo    domain.CollectionRepository
}

func NewGalleryStore(repo domain.CollectionRepository) *GalleryStore {
	return &GalleryStore{repo: repo}
}

// Hydrate loads the persisted collection. Missing or malformed snapshots
// degrade to an empty collection; startup never fails on bad storage.
func (s *GalleryStore) Hydrate(ctx context.Context) {
	records, err := s.repo.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Could not hydrate gallery collection, starting empty")
		records = nil
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()
}

// IngestBatch prepends the batch to the collection, first batch item ahead
// of the second and all of them ahead of every pre-existing record.
func (s *GalleryStore) IngestBatch(ctx context.Context, batch []domain.ImageRecord) error {
	if len(batch) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.ImageRecord, 0, len(batch)+len(s.records))
	next = append(next, batch...)
	next = append(next, s.records...)
	s.records = next

	return s.persistLocked(ctx)
}

// Remove deletes the record with the given id. Absent ids are a no-op, not
// an error.
func (s *GalleryStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.ImageRecord, 0, len(s.records))
	for _, r := range s.records {
		if r.ID != id {
			next = append(next, r)
		}
	}
	if len(next) == len(s.records) {
		return nil
	}
	s.records = next

	return s.persistLocked(ctx)
}

// Reorder moves the record one position toward the start (up) or the end
// (down) of the collection. Moving the first record up or the last record
// down is a no-op, as is an unknown id.
func (s *GalleryStore) Reorder(ctx context.Context, id string, dir domain.Direction) error {
	if dir != domain.MoveUp && dir != domain.MoveDown {
		return fmt.Errorf("unknown direction %q", dir)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil
	}

	target := idx + 1
	if dir == domain.MoveUp {
		target = idx - 1
	}
	if target < 0 || target >= len(s.records) {
		return nil
	}

	s.records[idx], s.records[target] = s.records[target], s.records[idx]

	return s.persistLocked(ctx)
}

// UpdateField merges the patch into the matching record. Unknown ids are a
// no-op.
func (s *GalleryStore) UpdateField(ctx context.Context, id string, patch domain.FieldPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil
	}

	r := &s.records[idx]
	if patch.DisplayName != nil {
		r.DisplayName = *patch.DisplayName
	}
	if patch.Caption != nil {
		r.Caption = *patch.Caption
	}
	if patch.Featured != nil {
		r.Featured = *patch.Featured
	}

	return s.persistLocked(ctx)
}

// Clear empties the collection and removes the persisted snapshot entirely,
// which is distinct from persisting an empty collection.
func (s *GalleryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil

	if err := s.repo.Clear(ctx); err != nil {
		wrapped := fmt.Errorf("%w: %v", domain.ErrPersist, err)
		log.Warn().Err(err).Msg("Snapshot removal failed; in-memory collection remains authoritative")
		return wrapped
	}
	return nil
}

// Snapshot returns a copy of the current collection in collection order.
// Readers only ever observe committed state.
func (s *GalleryStore) Snapshot() []domain.ImageRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.ImageRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *GalleryStore) indexLocked(id string) int {
	for i, r := range s.records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (s *GalleryStore) persistLocked(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.records); err != nil {
		wrapped := fmt.Errorf("%w: %v", domain.ErrPersist, err)
		log.Warn().Err(err).Int("records", len(s.records)).Msg("Snapshot write failed; in-memory collection remains authoritative")
		return wrapped
	}
	return nil
}

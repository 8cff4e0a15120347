package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mrozco/galleria/gallery/domain"
)

type fakeCollectionRepo struct {
	mu      sync.Mutex
	records []domain.ImageRecord
	loadErr error
	saveErr error
	saves   int
	cleared int
}

func (f *fakeCollectionRepo) Load(ctx context.Context) ([]domain.ImageRecord, error) {
	return f.records, f.loadErr
}

func (f *fakeCollectionRepo) Save(ctx context.Context, records []domain.ImageRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	snapshot := make([]domain.ImageRecord, len(records))
	copy(snapshot, records)
	f.records = snapshot
	f.saves++
	return nil
}

func (f *fakeCollectionRepo) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.records = nil
	f.cleared++
	return nil
}

func batch(idPrefix string, n int) []domain.ImageRecord {
	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	out := make([]domain.ImageRecord, n)
	for i := range out {
		out[i] = domain.ImageRecord{
			ID:      idPrefix + string(rune('0'+i)),
			AddedAt: at,
		}
	}
	return out
}

func TestGalleryStore_IngestBatchOrder(t *testing.T) {
	repo := &fakeCollectionRepo{}
	store := NewGalleryStore(repo)
	ctx := context.Background()

	if err := store.IngestBatch(ctx, batch("a", 3)); err != nil {
		t.Fatalf("IngestBatch() error = %v", err)
	}
	if err := store.IngestBatch(ctx, batch("d", 2)); err != nil {
		t.Fatalf("IngestBatch() error = %v", err)
	}

	want := []string{"d0", "d1", "a0", "a1", "a2"}
	got := store.Snapshot()
	if len(got) != len(want) {
		t.Fatalf("collection length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("collection[%d].ID = %q, want %q", i, got[i].ID, want[i])
		}
	}

	// The persisted snapshot tracks the in-memory collection.
	if len(repo.records) != len(want) || repo.records[0].ID != "d0" {
		t.Errorf("persisted snapshot does not match collection: %v", repo.records)
	}
}

func TestGalleryStore_IngestEmptyBatchIsNoop(t *testing.T) {
	repo := &fakeCollectionRepo{}
	store := NewGalleryStore(repo)

	if err := store.IngestBatch(context.Background(), nil); err != nil {
		t.Fatalf("IngestBatch() error = %v", err)
	}
	if repo.saves != 0 {
		t.Errorf("saves = %d, want 0", repo.saves)
	}
}

func TestGalleryStore_ConcurrentIngestLosesNothing(t *testing.T) {
	repo := &fakeCollectionRepo{}
	store := NewGalleryStore(repo)
	ctx := context.Background()

	var wg sync.WaitGroup
	for _, prefix := range []string{"x", "y", "z"} {
		wg.Add(1)
		go func(prefix string) {
			defer wg.Done()
			if err := store.IngestBatch(ctx, batch(prefix, 2)); err != nil {
				t.Errorf("IngestBatch(%q) error = %v", prefix, err)
			}
		}(prefix)
	}
	wg.Wait()

	got := store.Snapshot()
	if len(got) != 6 {
		t.Fatalf("collection length = %d, want 6", len(got))
	}

	seen := make(map[string]bool)
	for _, r := range got {
		if seen[r.ID] {
			t.Fatalf("duplicate id %q in collection", r.ID)
		}
		seen[r.ID] = true
	}
}

func TestGalleryStore_Remove(t *testing.T) {
	repo := &fakeCollectionRepo{}
	store := NewGalleryStore(repo)
	ctx := context.Background()

	if err := store.IngestBatch(ctx, batch("a", 3)); err != nil {
		t.Fatalf("IngestBatch() error = %v", err)
	}
	savesBefore := repo.saves

	if err := store.Remove(ctx, "a1"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	got := store.Snapshot()
	if len(got) != 2 || got[0].ID != "a0" || got[1].ID != "a2" {
		t.Fatalf("collection after remove = %v", got)
	}

	// Removing an unknown id is a no-op and does not persist.
	if err := store.Remove(ctx, "missing"); err != nil {
		t.Fatalf("Remove(missing) error = %v", err)
	}
	if repo.saves != savesBefore+1 {
		t.Errorf("saves = %d, want %d", repo.saves, savesBefore+1)
	}
}

func TestGalleryStore_Reorder(t *testing.T) {
	tests := []struct {
		name string
		id   string
		dir  domain.Direction
		want []string
	}{
		{
			name: "move middle up",
			id:   "a1",
			dir:  domain.MoveUp,
			want: []string{"a1", "a0", "a2"},
		},
		{
			name: "move middle down",
			id:   "a1",
			dir:  domain.MoveDown,
			want: []string{"a0", "a2", "a1"},
		},
		{
			name: "move first up clamps",
			id:   "a0",
			dir:  domain.MoveUp,
			want: []string{"a0", "a1", "a2"},
		},
		{
			name: "move last down clamps",
			id:   "a2",
			dir:  domain.MoveDown,
			want: []string{"a0", "a1", "a2"},
		},
		{
			name: "unknown id is a no-op",
			id:   "missing",
			dir:  domain.MoveUp,
			want: []string{"a0", "a1", "a2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewGalleryStore(&fakeCollectionRepo{})
			ctx := context.Background()
			if err := store.IngestBatch(ctx, batch("a", 3)); err != nil {
				t.Fatalf("IngestBatch() error = %v", err)
			}

			if err := store.Reorder(ctx, tt.id, tt.dir); err != nil {
				t.Fatalf("Reorder() error = %v", err)
			}

			got := store.Snapshot()
			for i := range tt.want {
				if got[i].ID != tt.want[i] {
					t.Fatalf("collection = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestGalleryStore_ReorderUnknownDirection(t *testing.T) {
	store := NewGalleryStore(&fakeCollectionRepo{})

	if err := store.Reorder(context.Background(), "a0", "sideways"); err == nil {
		t.Error("Reorder() with unknown direction should return an error")
	}
}

func TestGalleryStore_UpdateField(t *testing.T) {
	repo := &fakeCollectionRepo{}
	store := NewGalleryStore(repo)
	ctx := context.Background()

	if err := store.IngestBatch(ctx, batch("a", 2)); err != nil {
		t.Fatalf("IngestBatch() error = %v", err)
	}

	name := "Renamed"
	featured := true
	err := store.UpdateField(ctx, "a1", domain.FieldPatch{DisplayName: &name, Featured: &featured})
	if err != nil {
		t.Fatalf("UpdateField() error = %v", err)
	}

	got := store.Snapshot()
	if got[1].DisplayName != "Renamed" {
		t.Errorf("DisplayName = %q, want %q", got[1].DisplayName, "Renamed")
	}
	if !got[1].Featured {
		t.Error("Featured = false, want true")
	}
	if got[1].Caption != "" {
		t.Errorf("Caption = %q, want unchanged empty string", got[1].Caption)
	}

	// Unknown id is a no-op.
	if err := store.UpdateField(ctx, "missing", domain.FieldPatch{DisplayName: &name}); err != nil {
		t.Fatalf("UpdateField(missing) error = %v", err)
	}
}

func TestGalleryStore_Clear(t *testing.T) {
	repo := &fakeCollectionRepo{}
	store := NewGalleryStore(repo)
	ctx := context.Background()

	if err := store.IngestBatch(ctx, batch("a", 2)); err != nil {
		t.Fatalf("IngestBatch() error = %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	if got := store.Snapshot(); len(got) != 0 {
		t.Errorf("collection after clear = %v, want empty", got)
	}
	if repo.cleared != 1 {
		t.Errorf("cleared = %d, want 1 (snapshot must be removed, not saved empty)", repo.cleared)
	}
}

func TestGalleryStore_PersistFailureKeepsMemory(t *testing.T) {
	repo := &fakeCollectionRepo{saveErr: errors.New("quota exceeded")}
	store := NewGalleryStore(repo)

	err := store.IngestBatch(context.Background(), batch("a", 2))
	if !errors.Is(err, domain.ErrPersist) {
		t.Fatalf("IngestBatch() error = %v, want ErrPersist", err)
	}

	// The in-memory collection is never rolled back on a failed write.
	if got := store.Snapshot(); len(got) != 2 {
		t.Errorf("collection after failed persist = %v, want the batch", got)
	}
}

func TestGalleryStore_Hydrate(t *testing.T) {
	tests := []struct {
		name string
		repo *fakeCollectionRepo
		want int
	}{
		{
			name: "loads persisted collection",
			repo: &fakeCollectionRepo{records: batch("a", 3)},
			want: 3,
		},
		{
			name: "missing snapshot yields empty collection",
			repo: &fakeCollectionRepo{},
			want: 0,
		},
		{
			name: "corrupt snapshot degrades to empty collection",
			repo: &fakeCollectionRepo{loadErr: errors.New("unexpected end of JSON input")},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewGalleryStore(tt.repo)
			store.Hydrate(context.Background())

			if got := len(store.Snapshot()); got != tt.want {
				t.Errorf("collection length = %d, want %d", got, tt.want)
			}
		})
	}
}

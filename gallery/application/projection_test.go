package application

import (
	"testing"
	"time"

	"github.com/mrozco/galleria/gallery/domain"
)

func record(id string, featured bool, addedAt time.Time) domain.ImageRecord {
	return domain.ImageRecord{
		ID:          id,
		DisplayName: id + ".jpg",
		AddedAt:     addedAt,
		Featured:    featured,
	}
}

func ids(records []domain.ImageRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestProject_SortOrder(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// Collection order: newest first, but featured records are scattered.
	records := []domain.ImageRecord{
		record("d", false, base.Add(4*time.Hour)),
		record("c", true, base.Add(3*time.Hour)),
		record("b", false, base.Add(2*time.Hour)),
		record("a", true, base.Add(1*time.Hour)),
	}

	projection := Project(records, DisplayConfig{})

	want := []string{"c", "a", "d", "b"}
	got := ids(projection.DisplayList)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("displayList = %v, want %v", got, want)
		}
	}
}

func TestProject_SortIsStableForEqualKeys(t *testing.T) {
	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// Same batch, same timestamp: collection order must break the tie.
	records := []domain.ImageRecord{
		record("first", false, at),
		record("second", false, at),
		record("third", false, at),
	}

	projection := Project(records, DisplayConfig{})

	want := []string{"first", "second", "third"}
	got := ids(projection.DisplayList)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("displayList = %v, want %v", got, want)
		}
	}
}

func TestProject_Filter(t *testing.T) {
	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	records := []domain.ImageRecord{
		{ID: "1", DisplayName: "Sunset.jpg", Caption: "", AddedAt: at},
		{ID: "2", DisplayName: "IMG_0042.jpg", Caption: "sunset over the bay", AddedAt: at},
		{ID: "3", DisplayName: "portrait.png", Caption: "studio", AddedAt: at},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "empty query retains all",
			query: "",
			want:  []string{"1", "2", "3"},
		},
		{
			name:  "whitespace-only query retains all",
			query: "   ",
			want:  []string{"1", "2", "3"},
		},
		{
			name:  "case-insensitive match on name",
			query: "SUNSET",
			want:  []string{"1", "2"},
		},
		{
			name:  "match on caption",
			query: "bay",
			want:  []string{"2"},
		},
		{
			name:  "query is trimmed",
			query: "  studio  ",
			want:  []string{"3"},
		},
		{
			name:  "no match",
			query: "zebra",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projection := Project(records, DisplayConfig{Query: tt.query})

			got := ids(projection.DisplayList)
			if len(got) != len(tt.want) {
				t.Fatalf("displayList = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("displayList = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestProject_Hero(t *testing.T) {
	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		records []domain.ImageRecord
		want    string
	}{
		{
			name: "first featured in collection order",
			records: []domain.ImageRecord{
				record("a", false, at),
				record("b", true, at),
				record("c", true, at),
			},
			want: "b",
		},
		{
			name: "no featured falls back to first record",
			records: []domain.ImageRecord{
				record("a", false, at),
				record("b", false, at),
			},
			want: "a",
		},
		{
			name:    "empty collection has no hero",
			records: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projection := Project(tt.records, DisplayConfig{})

			if tt.want == "" {
				if projection.Hero != nil {
					t.Fatalf("Hero = %v, want nil", projection.Hero)
				}
				return
			}
			if projection.Hero == nil {
				t.Fatal("Hero = nil, want a record")
			}
			if projection.Hero.ID != tt.want {
				t.Errorf("Hero.ID = %q, want %q", projection.Hero.ID, tt.want)
			}
		})
	}
}

func TestProject_DoesNotMutateInput(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	records := []domain.ImageRecord{
		record("a", false, base.Add(1*time.Hour)),
		record("b", true, base.Add(2*time.Hour)),
	}

	Project(records, DisplayConfig{Query: "a"})

	if records[0].ID != "a" || records[1].ID != "b" {
		t.Errorf("input collection was mutated: %v", ids(records))
	}
}

func TestDisplayConfig_Clamp(t *testing.T) {
	tests := []struct {
		name    string
		columns int
		want    int
	}{
		{name: "zero selects default", columns: 0, want: DefaultColumns},
		{name: "below range", columns: 1, want: MinColumns},
		{name: "above range", columns: 9, want: MaxColumns},
		{name: "in range", columns: 3, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DisplayConfig{Columns: tt.columns}.Clamp()
			if got.Columns != tt.want {
				t.Errorf("Columns = %d, want %d", got.Columns, tt.want)
			}
		})
	}
}

package application

import (
	"sort"
	"strings"

	"github.com/mrozco/galleria/gallery/domain"
)

// Supported grid density range, matching the presentation layer's selector.
const (
	MinColumns     = 2
	MaxColumns     = 6
	DefaultColumns = 4
)

// DisplayConfig is the ephemeral per-render configuration supplied by the
// presentation layer. It is never persisted.
type DisplayConfig struct {
	Query   string
	Columns int
}

// Clamp bounds the density selector to the supported column range. A zero
// value selects the default density.
func (c DisplayConfig) Clamp() DisplayConfig {
	switch {
	case c.Columns == 0:
		c.Columns = DefaultColumns
	case c.Columns < MinColumns:
		c.Columns = MinColumns
	case c.Columns > MaxColumns:
		c.Columns = MaxColumns
	}
	return c
}

// Projection is the derived view the presentation layer consumes. Hero is
// nil when the collection is empty.
type Projection struct {
	DisplayList []domain.ImageRecord
	Hero        *domain.ImageRecord
	Columns     int
}

// Project derives the display list and hero from the current collection.
// It never mutates its input and is deterministic for identical inputs, so
// it is safe to call on every render.
//
// Featured records sort ahead of the rest; within each group the most
// recently added record comes first, with collection order breaking ties.
// A non-empty query (after trimming) retains only records whose display
// name or caption contains it case-insensitively. The hero is the first
// featured record in collection order, else the first record.
func Project(records []domain.ImageRecord, cfg DisplayConfig) Projection {
	cfg = cfg.Clamp()

	list := make([]domain.ImageRecord, len(records))
	copy(list, records)

	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Featured != list[j].Featured {
			return list[i].Featured
		}
		return list[i].AddedAt.After(list[j].AddedAt)
	})

	if q := strings.ToLower(strings.TrimSpace(cfg.Query)); q != "" {
		filtered := list[:0]
		for _, r := range list {
			if strings.Contains(strings.ToLower(r.DisplayName), q) ||
				strings.Contains(strings.ToLower(r.Caption), q) {
				filtered = append(filtered, r)
			}
		}
		list = filtered
	}

	var hero *domain.ImageRecord
	for _, r := range records {
		if r.Featured {
			h := r
			hero = &h
			break
		}
	}
	if hero == nil && len(records) > 0 {
		h := records[0]
		hero = &h
	}

	return Projection{DisplayList: list, Hero: hero, Columns: cfg.Columns}
}

package application

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mrozco/galleria/gallery/domain"
)

// Pipeline normalizes heterogeneous raw inputs into canonical ImageRecords.
// Non-image inputs are silently dropped; inputs that fail decoding are
// excluded from their batch without aborting the rest of it.
type Pipeline struct {
	now   func() time.Time
	newID func() string
}

func NewPipeline() *Pipeline {
	return &Pipeline{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Assemble produces the batch of canonical records for a batch of raw
// inputs. Per-item decoding runs concurrently, but Assemble returns only
// once every item's outcome is known, and successes are reassembled in the
// order the inputs were supplied regardless of which decode finished first.
func (p *Pipeline) Assemble(inputs []RawInput) []domain.ImageRecord {
	candidates := make([]RawInput, 0, len(inputs))
	for _, in := range inputs {
		if strings.HasPrefix(in.ContentType, "image/") {
			candidates = append(candidates, in)
		}
	}

	type outcome struct {
		record domain.ImageRecord
		err    error
	}
	outcomes := make([]outcome, len(candidates))

	var wg sync.WaitGroup
	for i, in := range candidates {
		// Identity and timestamp are assigned in supply order so batch
		// scheduling cannot reorder them.
		record := domain.ImageRecord{
			ID:          p.newID(),
			DisplayName: in.Name,
			AddedAt:     p.now(),
		}

		wg.Add(1)
		go func(i int, in RawInput, record domain.ImageRecord) {
			defer wg.Done()
			data, w, h, err := decodeInput(in)
			if err != nil {
				outcomes[i] = outcome{err: err}
				return
			}
			record.Data = data
			record.Width = w
			record.Height = h
			outcomes[i] = outcome{record: record}
		}(i, in, record)
	}
	wg.Wait()

	records := make([]domain.ImageRecord, 0, len(candidates))
	for i, out := range outcomes {
		if out.err != nil {
			log.Warn().Err(out.err).Str("input", candidates[i].Name).Msg("Dropping input from batch")
			continue
		}
		records = append(records, out.record)
	}
	return records
}

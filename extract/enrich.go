package extract

import (
	"context"
	"time"

	"github.com/fwojciec/edhgrab"
	"golang.org/x/sync/errgroup"
)

// Enrichment batch defaults.
const (
	// DefaultBatchSize is how many card lookups run at once.
	DefaultBatchSize = 5

	// DefaultBatchDelay is the courtesy pause between batches.
	DefaultBatchDelay = 200 * time.Millisecond
)

// Enricher resolves card names to full card details in fixed-size
// batches. A failed lookup degrades to a name-only record; it never
// aborts the pass.
type Enricher struct {
	Cards      edhgrab.CardService
	BatchSize  int
	BatchDelay time.Duration
}

// EnrichNames resolves details for every name. The result keeps the
// order of the input: results[i] corresponds to names[i] and is never
// nil. Duplicate names are looked up once per pass.
func (e *Enricher) EnrichNames(ctx context.Context, names []string) ([]*edhgrab.CardDetails, error) {
	batchSize := e.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	delay := e.BatchDelay
	if delay <= 0 {
		delay = DefaultBatchDelay
	}

	// Request-scoped memo: each distinct name is fetched once.
	memo := make(map[string]*edhgrab.CardDetails)
	var unique []string
	for _, name := range names {
		if _, ok := memo[name]; ok {
			continue
		}
		memo[name] = nil
		unique = append(unique, name)
	}

	for start := 0; start < len(unique); start += batchSize {
		if start > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		end := min(start+batchSize, len(unique))
		batch := unique[start:end]

		// Results slot by index, not by completion order.
		batchResults := make([]*edhgrab.CardDetails, len(batch))

		g, gctx := errgroup.WithContext(ctx)
		for i, name := range batch {
			g.Go(func() error {
				details, err := e.Cards.FindCardByName(gctx, name)
				if err != nil {
					if gctx.Err() != nil {
						return gctx.Err()
					}
					// Renderers show the missing fields as "N/A".
					details = &edhgrab.CardDetails{Name: name}
				}
				batchResults[i] = details
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		for i, name := range batch {
			memo[name] = batchResults[i]
		}
	}

	results := make([]*edhgrab.CardDetails, len(names))
	for i, name := range names {
		results[i] = memo[name]
	}
	return results, nil
}

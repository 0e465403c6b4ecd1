package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/sbasearch/core"
)

const (
	// DefaultConcurrency is the enrichment fan-out used when the input
	// does not specify one.
	DefaultConcurrency = 3

	// MaxConcurrency caps the enrichment fan-out.
	MaxConcurrency = 10

	missingIdentifiers = "Missing UEI or CAGE code"
)

// ProfileFetcher fetches the detail record for one entity.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, uei, cageCode string) (any, error)
}

// Enricher fetches profile details for a batch of search results under a
// bounded worker pool.
type Enricher struct {
	fetcher    ProfileFetcher
	pool       *ants.Pool
	logger     *slog.Logger
	onProgress func(done, total int)
}

// EnricherOption configures an Enricher.
type EnricherOption func(*Enricher)

// WithEnricherLogger sets a custom logger.
// Default is slog.Default().
func WithEnricherLogger(logger *slog.Logger) EnricherOption {
	return func(e *Enricher) {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
	}
}

// WithProgress sets a callback invoked after each item completes.
func WithProgress(fn func(done, total int)) EnricherOption {
	return func(e *Enricher) {
		e.onProgress = fn
	}
}

// NewEnricher creates an enricher with the given concurrency, clamped to
// [1, MaxConcurrency]. A concurrency of 0 means DefaultConcurrency.
func NewEnricher(fetcher ProfileFetcher, concurrency int, opts ...EnricherOption) (*Enricher, error) {
	if fetcher == nil {
		return nil, ErrClientRequired
	}

	if concurrency == 0 {
		concurrency = DefaultConcurrency
	}
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > MaxConcurrency {
		concurrency = MaxConcurrency
	}

	pool, err := ants.NewPool(concurrency)
	if err != nil {
		return nil, err
	}

	e := &Enricher{
		fetcher: fetcher,
		pool:    pool,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Enrich fetches one profile detail per result. The returned slice is
// index-aligned with results: slot i always holds the outcome for results[i],
// whatever order the fetches complete in. A per-item failure only marks its
// own slot.
func (e *Enricher) Enrich(ctx context.Context, results []core.RawResult) []core.ProfileDetail {
	details := make([]core.ProfileDetail, len(results))
	total := len(results)

	var done atomic.Int64
	var wg sync.WaitGroup
	for i := range results {
		index := i
		result := results[i]
		wg.Add(1)
		err := e.pool.Submit(func() {
			defer wg.Done()
			details[index] = e.fetchOne(ctx, result)
			if e.onProgress != nil {
				e.onProgress(int(done.Add(1)), total)
			}
		})
		if err != nil {
			wg.Done()
			details[index] = core.ProfileFailure(err.Error())
		}
	}
	wg.Wait()

	return details
}

func (e *Enricher) fetchOne(ctx context.Context, result core.RawResult) core.ProfileDetail {
	uei, cageCode := result.Identifiers()
	if uei == "" || cageCode == "" {
		return core.ProfileFailure(missingIdentifiers)
	}

	profile, err := e.fetcher.FetchProfile(ctx, uei, cageCode)
	if err != nil {
		e.logger.Warn("profile request failed", "uei", uei, "cageCode", cageCode, "err", err)
		return core.ProfileFailure(err.Error())
	}
	return core.ProfileOf(profile)
}

// Release releases the worker pool.
// The enricher should not be used after calling Release.
func (e *Enricher) Release() {
	if e.pool != nil {
		e.pool.Release()
	}
}

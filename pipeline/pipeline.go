package pipeline

import (
	"context"
	"log/slog"

	"github.com/poiesic/sbasearch/core"
	"github.com/poiesic/sbasearch/filter"
	"github.com/poiesic/sbasearch/storage"
)

// Searcher executes the canonical search request.
type Searcher interface {
	Search(ctx context.Context, filters *core.Filters) (*core.SearchResponse, error)
}

// Client is the full search API surface the pipeline needs.
type Client interface {
	Searcher
	ProfileFetcher
}

// Pipeline runs one search end to end.
type Pipeline struct {
	client  Client
	dataset storage.DatasetRepository
	monitor RunMonitor
	logger  *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithDataset sets the repository runs are persisted to.
// Without one, records are only returned to the caller.
func WithDataset(dataset storage.DatasetRepository) Option {
	return func(p *Pipeline) error {
		p.dataset = dataset
		return nil
	}
}

// WithMonitor sets a run monitor.
func WithMonitor(monitor RunMonitor) Option {
	return func(p *Pipeline) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		p.monitor = monitor
		return nil
	}
}

// New creates a pipeline around the given API client.
func New(client Client, opts ...Option) (*Pipeline, error) {
	if client == nil {
		return nil, ErrClientRequired
	}

	p := &Pipeline{
		client:  client,
		monitor: &noopMonitor{},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Result is the outcome of one run.
type Result struct {
	Summary *core.RunSummary
	Records []*core.OutputRecord
}

// Run executes one search run. It fails before any network call when the
// input is invalid or no filter facet is engaged; a search failure or a
// domain error in the search response aborts the run. Per-item enrichment
// failures are recorded on the affected records only.
func (p *Pipeline) Run(ctx context.Context, input *core.RunInput) (*Result, error) {
	if err := core.ValidateRunInput(input); err != nil {
		return nil, err
	}

	filters, err := filter.Build(input)
	if err != nil {
		return nil, err
	}

	active := filter.CountActive(filters)
	if active == 0 {
		return nil, ErrNoActiveFilters
	}
	p.monitor.FiltersBuilt(filters, active)

	p.logger.Info("executing search", "activeFilters", active)
	response, err := p.client.Search(ctx, filters)
	if err != nil {
		return nil, err
	}
	results := response.Results
	p.monitor.SearchCompleted(len(results))
	p.logger.Info("search completed", "results", len(results))

	sliced := results
	if input.MaxItems > 0 && len(results) > input.MaxItems {
		sliced = results[:input.MaxItems]
	}

	var details []core.ProfileDetail
	if input.IncludeProfiles && len(sliced) > 0 {
		details, err = p.enrich(ctx, input, sliced)
		if err != nil {
			return nil, err
		}
	}

	records := make([]*core.OutputRecord, len(sliced))
	for i, result := range sliced {
		var detail *core.ProfileDetail
		if details != nil {
			detail = &details[i]
		}
		records[i] = core.Transform(result, detail)
	}

	summary := &core.RunSummary{
		TotalResults: len(results),
		Exported:     len(records),
		Filters:      filters,
		MeiliFilter:  response.MeiliFilter,
	}

	if p.dataset != nil {
		runID, err := p.dataset.AppendRun(ctx, summary, records)
		if err != nil {
			return nil, err
		}
		p.logger.Info("stored run", "runId", runID, "records", len(records))
	}

	p.monitor.RunCompleted(summary)
	return &Result{Summary: summary, Records: records}, nil
}

func (p *Pipeline) enrich(ctx context.Context, input *core.RunInput, results []core.RawResult) ([]core.ProfileDetail, error) {
	concurrency := input.ProfileConcurrency
	p.logger.Info("fetching profiles", "items", len(results), "concurrency", effectiveConcurrency(concurrency))

	enricher, err := NewEnricher(p.client, concurrency,
		WithEnricherLogger(p.logger),
		WithProgress(p.monitor.EnrichmentProgress),
	)
	if err != nil {
		return nil, err
	}
	defer enricher.Release()

	return enricher.Enrich(ctx, results), nil
}

func effectiveConcurrency(requested int) int {
	switch {
	case requested == 0:
		return DefaultConcurrency
	case requested < 1:
		return 1
	case requested > MaxConcurrency:
		return MaxConcurrency
	default:
		return requested
	}
}

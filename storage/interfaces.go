package storage

import (
	"context"

	"github.com/poiesic/sbasearch/core"
)

// DatasetRepository persists the output of pipeline runs.
type DatasetRepository interface {
	// AppendRun stores the records and summary of one completed run.
	// Assigns a fresh run id, sets it on the summary, and returns it.
	AppendRun(ctx context.Context, summary *core.RunSummary, records []*core.OutputRecord) (uint64, error)

	// GetRunSummary retrieves the summary stored for a run.
	// Returns ErrNotFound when the run does not exist.
	GetRunSummary(ctx context.Context, runID uint64) (*core.RunSummary, error)

	// GetRecords retrieves all records of a run in export order.
	// Returns ErrNotFound when the run does not exist.
	GetRecords(ctx context.Context, runID uint64) ([]*core.OutputRecord, error)

	// LatestRunID returns the id of the most recent run, or ErrNotFound
	// when no run has been stored.
	LatestRunID(ctx context.Context) (uint64, error)

	// GetRecordByFingerprint returns the most recently stored record whose
	// entity fingerprint matches. Returns ErrNotFound when none matches.
	GetRecordByFingerprint(ctx context.Context, fingerprint core.ID) (*core.OutputRecord, error)

	// Close closes the storage backend and releases resources.
	Close() error
}

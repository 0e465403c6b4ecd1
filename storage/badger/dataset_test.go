package badger

import (
	"context"
	"fmt"
	"testing"

	"github.com/poiesic/sbasearch/core"
	"github.com/poiesic/sbasearch/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDataset(t *testing.T) *DatasetRepository {
	t.Helper()
	repo, backend, err := NewMemoryDataset()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func sampleRecords(n int) []*core.OutputRecord {
	records := make([]*core.OutputRecord, n)
	for i := range records {
		records[i] = core.Transform(core.RawResult{
			"uei":                 fmt.Sprintf("U%d", i),
			"cage_code":           fmt.Sprintf("C%d", i),
			"legal_business_name": fmt.Sprintf("Business %d", i),
		}, nil)
	}
	return records
}

func sampleSummary(total, exported int) *core.RunSummary {
	return &core.RunSummary{
		TotalResults: total,
		Exported:     exported,
		Filters:      core.BaseFilters(),
		MeiliFilter:  "state IN [CA]",
	}
}

func TestAppendRun(t *testing.T) {
	ctx := context.Background()
	repo := setupDataset(t)

	t.Run("assigns sequential run ids starting at 1", func(t *testing.T) {
		first, err := repo.AppendRun(ctx, sampleSummary(1, 1), sampleRecords(1))
		require.NoError(t, err)
		assert.Equal(t, uint64(1), first)

		second, err := repo.AppendRun(ctx, sampleSummary(2, 2), sampleRecords(2))
		require.NoError(t, err)
		assert.Equal(t, uint64(2), second)
	})

	t.Run("sets the run id on the summary", func(t *testing.T) {
		summary := sampleSummary(0, 0)
		runID, err := repo.AppendRun(ctx, summary, nil)
		require.NoError(t, err)
		assert.Equal(t, runID, summary.RunID)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := repo.AppendRun(cancelled, sampleSummary(0, 0), nil)
		assert.Error(t, err)
	})
}

func TestGetRunSummary(t *testing.T) {
	ctx := context.Background()
	repo := setupDataset(t)

	runID, err := repo.AppendRun(ctx, sampleSummary(5, 3), sampleRecords(3))
	require.NoError(t, err)

	t.Run("round-trips", func(t *testing.T) {
		summary, err := repo.GetRunSummary(ctx, runID)
		require.NoError(t, err)
		assert.Equal(t, runID, summary.RunID)
		assert.Equal(t, 5, summary.TotalResults)
		assert.Equal(t, 3, summary.Exported)
		assert.Equal(t, "state IN [CA]", summary.MeiliFilter)
		require.NotNil(t, summary.Filters)
		assert.Equal(t, core.OperatorOr, summary.Filters.NAICS.OperatorType)
	})

	t.Run("unknown run", func(t *testing.T) {
		_, err := repo.GetRunSummary(ctx, 999)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestGetRecords(t *testing.T) {
	ctx := context.Background()
	repo := setupDataset(t)

	runID, err := repo.AppendRun(ctx, sampleSummary(10, 10), sampleRecords(10))
	require.NoError(t, err)

	t.Run("returns records in export order", func(t *testing.T) {
		records, err := repo.GetRecords(ctx, runID)
		require.NoError(t, err)
		require.Len(t, records, 10)
		for i, record := range records {
			assert.Equal(t, fmt.Sprintf("Business %d", i), record.BusinessName)
		}
	})

	t.Run("empty run is not an error", func(t *testing.T) {
		emptyID, err := repo.AppendRun(ctx, sampleSummary(0, 0), nil)
		require.NoError(t, err)

		records, err := repo.GetRecords(ctx, emptyID)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("unknown run", func(t *testing.T) {
		_, err := repo.GetRecords(ctx, 999)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestLatestRunID(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		repo := setupDataset(t)
		_, err := repo.LatestRunID(ctx)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("tracks the newest run", func(t *testing.T) {
		repo := setupDataset(t)
		for i := 0; i < 3; i++ {
			_, err := repo.AppendRun(ctx, sampleSummary(i, i), sampleRecords(i))
			require.NoError(t, err)
		}
		latest, err := repo.LatestRunID(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), latest)
	})
}

func TestGetRecordByFingerprint(t *testing.T) {
	ctx := context.Background()
	repo := setupDataset(t)

	_, err := repo.AppendRun(ctx, sampleSummary(2, 2), sampleRecords(2))
	require.NoError(t, err)

	t.Run("finds a stored record", func(t *testing.T) {
		fingerprint := core.IDFromContent("U1|C1")
		record, err := repo.GetRecordByFingerprint(ctx, fingerprint)
		require.NoError(t, err)
		assert.Equal(t, "Business 1", record.BusinessName)
	})

	t.Run("later runs win for the same entity", func(t *testing.T) {
		updated := core.Transform(core.RawResult{
			"uei":                 "U1",
			"cage_code":           "C1",
			"legal_business_name": "Business 1 Renamed",
		}, nil)
		_, err := repo.AppendRun(ctx, sampleSummary(1, 1), []*core.OutputRecord{updated})
		require.NoError(t, err)

		record, err := repo.GetRecordByFingerprint(ctx, core.IDFromContent("U1|C1"))
		require.NoError(t, err)
		assert.Equal(t, "Business 1 Renamed", record.BusinessName)
	})

	t.Run("unknown fingerprint", func(t *testing.T) {
		_, err := repo.GetRecordByFingerprint(ctx, core.IDFromContent("nope|nope"))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

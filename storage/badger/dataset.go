package badger

import (
	"context"
	"encoding/binary"
	"errors"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/sbasearch/core"
	"github.com/poiesic/sbasearch/storage"
)

// DatasetRepository is a badger-backed implementation of
// storage.DatasetRepository.
type DatasetRepository struct {
	backend *Backend
	runSeq  *badger.Sequence
	logger  *slog.Logger
}

var _ storage.DatasetRepository = (*DatasetRepository)(nil)

// NewDatasetRepository creates a dataset repository on the given backend.
func NewDatasetRepository(backend *Backend) (*DatasetRepository, error) {
	runSeq, err := backend.GetSequence(runIDSeq)
	if err != nil {
		return nil, err
	}
	return &DatasetRepository{
		backend: backend,
		runSeq:  runSeq,
		logger:  slog.Default(),
	}, nil
}

// AppendRun stores the summary and records of one run under a fresh run id.
func (r *DatasetRepository) AppendRun(ctx context.Context, summary *core.RunSummary, records []*core.OutputRecord) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	next, err := r.runSeq.Next()
	if err != nil {
		return 0, err
	}
	// Sequences start at 0; run ids start at 1.
	runID := next + 1
	summary.RunID = runID

	err = r.backend.WithTx(func(tx *badger.Txn) error {
		data, err := storage.MarshalRunSummary(summary)
		if err != nil {
			return err
		}
		if err := tx.Set(makeRunSummaryKey(runID), data); err != nil {
			return err
		}

		for i, record := range records {
			value, err := storage.MarshalOutputRecord(record)
			if err != nil {
				return err
			}
			key := makeRecordKey(runID, uint64(i))
			if err := tx.Set(key, value); err != nil {
				return err
			}
			if fingerprint, ok := storage.RecordFingerprint(record); ok {
				if err := tx.Set(makeFingerprintKey(fingerprint), key); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return 0, err
	}
	return runID, nil
}

// GetRunSummary retrieves the summary stored for a run.
func (r *DatasetRepository) GetRunSummary(ctx context.Context, runID uint64) (*core.RunSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var summary *core.RunSummary
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeRunSummaryKey(runID))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			summary, err = storage.UnmarshalRunSummary(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// GetRecords retrieves all records of a run in export order.
func (r *DatasetRepository) GetRecords(ctx context.Context, runID uint64) ([]*core.OutputRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var records []*core.OutputRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Existence check so a missing run is distinguishable from an
		// empty one.
		if _, err := tx.Get(makeRunSummaryKey(runID)); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}

		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeRecordPrefix(runID)
		it := tx.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				record, err := storage.UnmarshalOutputRecord(val)
				if err != nil {
					return err
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// LatestRunID returns the id of the most recent run.
func (r *DatasetRepository) LatestRunID(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var latest uint64
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(runSummaryPrefix + ":")
		opts.Reverse = true
		opts.PrefetchValues = false
		it := tx.NewIterator(opts)
		defer it.Close()

		// Reverse iteration seeks from the highest possible key in the
		// prefix range.
		seek := append([]byte(runSummaryPrefix+":"), 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff)
		it.Seek(seek)
		if !it.Valid() {
			return storage.ErrNotFound
		}
		key := it.Item().Key()
		latest = runIDFromSummaryKey(key)
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return latest, nil
}

// GetRecordByFingerprint returns the most recently stored record for an
// entity fingerprint.
func (r *DatasetRepository) GetRecordByFingerprint(ctx context.Context, fingerprint core.ID) (*core.OutputRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var record *core.OutputRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeFingerprintKey(fingerprint))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}

		var recordKey []byte
		if err := item.Value(func(val []byte) error {
			recordKey = append([]byte(nil), val...)
			return nil
		}); err != nil {
			return err
		}

		recordItem, err := tx.Get(recordKey)
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return recordItem.Value(func(val []byte) error {
			record, err = storage.UnmarshalOutputRecord(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Close releases the run sequence. The backend is closed by its owner.
func (r *DatasetRepository) Close() error {
	if r.runSeq != nil {
		if err := r.runSeq.Release(); err != nil {
			r.logger.Error("error releasing run sequence", "err", err)
			return err
		}
	}
	return nil
}

func runIDFromSummaryKey(key []byte) uint64 {
	prefixLen := len(runSummaryPrefix) + 1
	if len(key) < prefixLen+8 {
		return 0
	}
	return binary.BigEndian.Uint64(key[prefixLen : prefixLen+8])
}

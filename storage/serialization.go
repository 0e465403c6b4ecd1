package storage

import (
	"encoding/json"
	"fmt"

	"github.com/poiesic/sbasearch/core"
)

// MarshalOutputRecord serializes an output record to its JSON form.
func MarshalOutputRecord(record *core.OutputRecord) ([]byte, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return data, nil
}

// UnmarshalOutputRecord deserializes an output record from bytes.
func UnmarshalOutputRecord(data []byte) (*core.OutputRecord, error) {
	var record core.OutputRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &record, nil
}

// MarshalRunSummary serializes a run summary to its JSON form.
func MarshalRunSummary(summary *core.RunSummary) ([]byte, error) {
	data, err := json.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return data, nil
}

// UnmarshalRunSummary deserializes a run summary from bytes.
func UnmarshalRunSummary(data []byte) (*core.RunSummary, error) {
	var summary core.RunSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &summary, nil
}

// RecordFingerprint derives the entity fingerprint of a record from its UEI
// and CAGE code. Returns false when either identifier is missing, in which
// case the record is not indexed by entity.
func RecordFingerprint(record *core.OutputRecord) (core.ID, bool) {
	uei, _ := record.UEI.(string)
	cage, _ := record.CageCode.(string)
	if uei == "" || cage == "" {
		return 0, false
	}
	return core.IDFromContent(uei + "|" + cage), true
}

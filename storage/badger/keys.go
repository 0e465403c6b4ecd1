package badger

import (
	"encoding/binary"

	"github.com/poiesic/sbasearch/core"
)

const (
	runSummaryPrefix  = "runsum"
	runRecordPrefix   = "runrec"
	fingerprintPrefix = "recfp"
	runIDSeq          = "runseq"
)

func makeRunSummaryKey(runID uint64) []byte {
	prefix := runSummaryPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	// BigEndian so lexicographic order matches run order
	binary.BigEndian.PutUint64(buf[offset:], runID)
	return buf
}

func makeRecordKey(runID, index uint64) []byte {
	prefix := runRecordPrefix + ":"
	buf := make([]byte, len(prefix)+16)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], runID)
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], index)
	return buf
}

func makeRecordPrefix(runID uint64) []byte {
	prefix := runRecordPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], runID)
	return buf
}

func makeFingerprintKey(fingerprint core.ID) []byte {
	prefix := fingerprintPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(fingerprint))
	return buf
}

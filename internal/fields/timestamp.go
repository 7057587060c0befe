package fields

import "github.com/chaisql/firevalue/internal/model"

// timestampTokenSize is the fixed cost of a Timestamp or ServerTimestamp
// in an index entry.
const timestampTokenSize = 8

// TimestampValue wraps a concrete, backend-committed timestamp.
type TimestampValue struct {
	ts model.Timestamp
}

func NewTimestamp(ts model.Timestamp) TimestampValue {
	return TimestampValue{ts: ts}
}

func (TimestampValue) TypeOrder() TypeOrder { return TypeOrderTimestamp }

func (v TimestampValue) Value(*Options) any { return v.ts.ToDate() }

func (v TimestampValue) Equals(other Value) bool {
	o, ok := other.(TimestampValue)
	return ok && v.ts.Equals(o.ts)
}

// Compare orders a concrete Timestamp before any ServerTimestamp,
// regardless of localWriteTime, since a sentinel always sorts after every
// committed value.
func (v TimestampValue) Compare(other Value, bytesRemaining uint) SizedComparison {
	switch o := other.(type) {
	case TimestampValue:
		return SizedComparison{Cmp: v.ts.Compare(o.ts), Bytes: v.TruncatedSize(bytesRemaining)}
	case ServerTimestampValue:
		return SizedComparison{Cmp: -1, Bytes: v.TruncatedSize(bytesRemaining)}
	default:
		return defaultCompare(v, other, bytesRemaining)
	}
}

func (TimestampValue) TruncatedSize(uint) uint {
	return timestampTokenSize
}

func (v TimestampValue) String() string {
	return v.ts.String()
}

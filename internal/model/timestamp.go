package model

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dromara/carbon/v2"
)

// Timestamp is a sortable (seconds, nanos) instant, matching the range and
// precision of a Firestore server timestamp.
type Timestamp struct {
	seconds int64
	nanos   int32
}

// NewTimestamp returns a Timestamp built from seconds since the Unix epoch
// and a nanosecond offset. nanos must be in [0, 1e9) once normalized; values
// outside that range after normalization indicate a programmer error, since
// timestamps are always built before being compared.
func NewTimestamp(seconds int64, nanos int32) Timestamp {
	if nanos < 0 || nanos >= 1e9 {
		extraSeconds := int64(nanos) / 1e9
		seconds += extraSeconds
		nanos -= int32(extraSeconds * 1e9)
		if nanos < 0 {
			nanos += 1e9
			seconds--
		}
	}
	if nanos < 0 || nanos >= 1e9 {
		panic(errors.AssertionFailedf("timestamp nanos out of range after normalization: %d", nanos))
	}
	return Timestamp{seconds: seconds, nanos: nanos}
}

// TimestampFromTime converts a time.Time to a Timestamp.
func TimestampFromTime(t time.Time) Timestamp {
	return NewTimestamp(t.Unix(), int32(t.Nanosecond()))
}

func (ts Timestamp) Seconds() int64 { return ts.seconds }
func (ts Timestamp) Nanos() int32   { return ts.nanos }

// Compare orders timestamps by seconds, then by nanos.
func (ts Timestamp) Compare(other Timestamp) int {
	if ts.seconds != other.seconds {
		if ts.seconds < other.seconds {
			return -1
		}
		return 1
	}
	if ts.nanos != other.nanos {
		if ts.nanos < other.nanos {
			return -1
		}
		return 1
	}
	return 0
}

// Equals reports whether ts and other refer to the same instant.
func (ts Timestamp) Equals(other Timestamp) bool {
	return ts.Compare(other) == 0
}

// ToDate converts ts to a UTC time.Time.
func (ts Timestamp) ToDate() time.Time {
	return time.Unix(ts.seconds, int64(ts.nanos)).UTC()
}

// String formats ts using carbon, the same timestamp-formatting dependency
// the rest of this lineage's type system relies on for human-readable dates.
func (ts Timestamp) String() string {
	return carbon.CreateFromStdTime(ts.ToDate()).ToRfc3339String()
}

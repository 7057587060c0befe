// Package fields implements the Firestore field-value model: a closed set
// of immutable value variants and the byte-budgeted comparator that orders
// them identically to the backend's index entries.
package fields

import "github.com/cockroachdb/errors"

// TypeOrder is the fixed cross-type sort key. Values of different
// TypeOrder always compare by TypeOrder alone; values sharing a TypeOrder
// (Integer/Double, Timestamp/ServerTimestamp) implement their own
// same-order comparison.
type TypeOrder uint8

const (
	TypeOrderNull TypeOrder = iota
	TypeOrderBoolean
	TypeOrderNumber
	TypeOrderTimestamp
	TypeOrderString
	TypeOrderBlob
	TypeOrderRef
	TypeOrderGeoPoint
	TypeOrderArray
	TypeOrderObject
)

func (t TypeOrder) String() string {
	switch t {
	case TypeOrderNull:
		return "null"
	case TypeOrderBoolean:
		return "boolean"
	case TypeOrderNumber:
		return "number"
	case TypeOrderTimestamp:
		return "timestamp"
	case TypeOrderString:
		return "string"
	case TypeOrderBlob:
		return "blob"
	case TypeOrderRef:
		return "ref"
	case TypeOrderGeoPoint:
		return "geopoint"
	case TypeOrderArray:
		return "array"
	case TypeOrderObject:
		return "object"
	default:
		panic(errors.AssertionFailedf("unknown type order %d", uint8(t)))
	}
}

// SizedComparison is the result of a byte-budgeted comparison: an ordering
// together with the number of bytes that comparison consumed against the
// caller's shared budget.
type SizedComparison struct {
	Cmp   int
	Bytes uint
}

// Value is implemented by every field-value variant.
type Value interface {
	// TypeOrder returns this value's position in the fixed cross-type sort
	// order.
	TypeOrder() TypeOrder

	// Value dematerializes this value into a host representation. opts may
	// be nil, in which case default server-timestamp resolution applies.
	Value(opts *Options) any

	// Equals reports whether other is the same variant and carries the
	// same data under this package's equality rules (which diverge from
	// Compare for NaN, ±0, and Integer/Double).
	Equals(other Value) bool

	// Compare orders this value against other, never examining more than
	// bytesRemaining bytes' worth of either side's representation, and
	// reports how many bytes it actually consumed.
	Compare(other Value, bytesRemaining uint) SizedComparison

	// TruncatedSize upper-bounds the bytes this value would contribute to
	// an index entry given bytesRemaining.
	TruncatedSize(bytesRemaining uint) uint

	String() string
}

// IndexTruncationThresholdBytes is the maximum number of bytes a single
// index entry may consume.
const IndexTruncationThresholdBytes = 1500

// CompareTo orders a and b using the full index truncation budget,
// discarding the byte-accounting half of the result. Most callers outside
// the comparator's own chaining logic want this instead of Compare.
func CompareTo(a, b Value) int {
	return a.Compare(b, IndexTruncationThresholdBytes).Cmp
}

// defaultCompare handles every heterogeneous-type pair: the ordering is
// fixed by TypeOrder, and the cost charged is the smaller-typed side's
// TruncatedSize. It must never be called with two values sharing a
// TypeOrder — those pairs have their own same-order comparison logic.
func defaultCompare(a, b Value, bytesRemaining uint) SizedComparison {
	oa, ob := a.TypeOrder(), b.TypeOrder()
	if oa == ob {
		panic(errors.AssertionFailedf("defaultCompare called with values sharing type order %v", oa))
	}

	if oa < ob {
		return SizedComparison{Cmp: -1, Bytes: a.TruncatedSize(bytesRemaining)}
	}
	return SizedComparison{Cmp: 1, Bytes: b.TruncatedSize(bytesRemaining)}
}

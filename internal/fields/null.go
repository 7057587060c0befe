package fields

// nullTagSize is the TruncatedSize of Null: a bare type tag, no payload.
const nullTagSize = 1

// NullValue is the singleton Firestore null.
type NullValue struct{}

// Null is the shared Null instance.
var Null = NullValue{}

func (NullValue) TypeOrder() TypeOrder { return TypeOrderNull }

func (NullValue) Value(*Options) any { return nil }

func (NullValue) Equals(other Value) bool {
	_, ok := other.(NullValue)
	return ok
}

func (v NullValue) Compare(other Value, bytesRemaining uint) SizedComparison {
	if _, ok := other.(NullValue); ok {
		return SizedComparison{Cmp: 0, Bytes: v.TruncatedSize(bytesRemaining)}
	}
	return defaultCompare(v, other, bytesRemaining)
}

func (NullValue) TruncatedSize(uint) uint {
	return nullTagSize
}

func (NullValue) String() string { return "null" }

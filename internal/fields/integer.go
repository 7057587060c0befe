package fields

import "strconv"

// IntegerValue is a signed 64-bit integer.
type IntegerValue int64

func NewInteger(v int64) IntegerValue { return IntegerValue(v) }

func (IntegerValue) TypeOrder() TypeOrder { return TypeOrderNumber }

func (v IntegerValue) Value(*Options) any { return int64(v) }

// Equals requires the other value to also be an Integer: a numerically
// equal Double never equals an Integer, even though they Compare equal.
func (v IntegerValue) Equals(other Value) bool {
	o, ok := other.(IntegerValue)
	return ok && v == o
}

func (v IntegerValue) Compare(other Value, bytesRemaining uint) SizedComparison {
	switch o := other.(type) {
	case IntegerValue:
		return SizedComparison{Cmp: numericCompare(float64(v), float64(o)), Bytes: v.TruncatedSize(bytesRemaining)}
	case DoubleValue:
		return SizedComparison{Cmp: numericCompare(float64(v), float64(o)), Bytes: v.TruncatedSize(bytesRemaining)}
	default:
		return defaultCompare(v, other, bytesRemaining)
	}
}

func (IntegerValue) TruncatedSize(uint) uint {
	return numberTokenSize
}

func (v IntegerValue) String() string {
	return strconv.FormatInt(int64(v), 10)
}

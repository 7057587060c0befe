package fields

import "strconv"

// DoubleValue is an IEEE-754 double. NaN and ±0 carry custom semantics:
// see numericCompare and doubleNumericEquals.
type DoubleValue float64

func NewDouble(v float64) DoubleValue { return DoubleValue(v) }

func (DoubleValue) TypeOrder() TypeOrder { return TypeOrderNumber }

func (v DoubleValue) Value(*Options) any { return float64(v) }

// Equals requires the other value to also be a Double.
func (v DoubleValue) Equals(other Value) bool {
	o, ok := other.(DoubleValue)
	return ok && doubleNumericEquals(float64(v), float64(o))
}

func (v DoubleValue) Compare(other Value, bytesRemaining uint) SizedComparison {
	switch o := other.(type) {
	case DoubleValue:
		return SizedComparison{Cmp: numericCompare(float64(v), float64(o)), Bytes: v.TruncatedSize(bytesRemaining)}
	case IntegerValue:
		return SizedComparison{Cmp: numericCompare(float64(v), float64(o)), Bytes: v.TruncatedSize(bytesRemaining)}
	default:
		return defaultCompare(v, other, bytesRemaining)
	}
}

func (DoubleValue) TruncatedSize(uint) uint {
	return numberTokenSize
}

func (v DoubleValue) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

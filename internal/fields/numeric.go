package fields

import "math"

// numberTokenSize is the fixed, undividable cost of a Number (Integer or
// Double) in an index entry. It is charged regardless of the remaining
// budget, since a number cannot be partially encoded; like the other
// fixed-size tokens, it may make TruncatedSize overshoot bytesRemaining.
const numberTokenSize = 8

// numericCompare implements the divergent NaN ordering Compare uses across
// Integer and Double: NaN sorts below every non-NaN number, and two NaNs
// compare equal. -0 and +0 already compare equal under plain float64 <, >,
// so no special case is needed for them here.
func numericCompare(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// doubleNumericEquals implements Double's Equals semantics: NaN equals
// NaN, but -0 does not equal +0.
func doubleNumericEquals(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	if a == 0 && b == 0 {
		return math.Signbit(a) == math.Signbit(b)
	}
	return a == b
}

package fields

// ArrayValue is an ordered, immutable list of field values.
type ArrayValue struct {
	items []Value
}

func NewArray(items ...Value) ArrayValue {
	return ArrayValue{items: items}
}

func (v ArrayValue) Len() int { return len(v.items) }

func (v ArrayValue) Get(i int) Value { return v.items[i] }

func (ArrayValue) TypeOrder() TypeOrder { return TypeOrderArray }

func (v ArrayValue) Value(opts *Options) any {
	out := make([]any, len(v.items))
	for i, item := range v.items {
		out[i] = item.Value(opts)
	}
	return out
}

func (v ArrayValue) Equals(other Value) bool {
	o, ok := other.(ArrayValue)
	if !ok || len(v.items) != len(o.items) {
		return false
	}
	for i := range v.items {
		if !v.items[i].Equals(o.items[i]) {
			return false
		}
	}
	return true
}

// Compare walks both arrays index by index while the shared budget holds
// out. A mismatch at any index stops the walk immediately and charges only
// the losing element's TruncatedSize computed against the original budget
// — the per-element costs accumulated before the mismatch are discarded,
// per the comparator's loser-charged-at-original-budget accounting rule.
// If the budget runs out before a mismatch or the end of the shorter
// array, the arrays compare equal for the bytes actually examined. If the
// walk reaches the end of the shorter array with no mismatch, the shorter
// array is less; equal length is equal.
func (v ArrayValue) Compare(other Value, bytesRemaining uint) SizedComparison {
	o, ok := other.(ArrayValue)
	if !ok {
		return defaultCompare(v, other, bytesRemaining)
	}

	initial := bytesRemaining
	budget := bytesRemaining

	n := len(v.items)
	if len(o.items) < n {
		n = len(o.items)
	}

	i := 0
	for i < n && budget > 0 {
		c := v.items[i].Compare(o.items[i], budget)
		if c.Bytes > budget {
			budget = 0
		} else {
			budget -= c.Bytes
		}

		if c.Cmp != 0 {
			loser := v.items[i]
			if c.Cmp > 0 {
				loser = o.items[i]
			}
			return SizedComparison{Cmp: c.Cmp, Bytes: loser.TruncatedSize(initial)}
		}
		i++
	}

	if i < n {
		// budget ran out before a mismatch was found or the shorter array
		// was exhausted: what was examined was equal.
		return SizedComparison{Cmp: 0, Bytes: initial - budget}
	}

	switch {
	case len(v.items) < len(o.items):
		return SizedComparison{Cmp: -1, Bytes: initial - budget}
	case len(v.items) > len(o.items):
		return SizedComparison{Cmp: 1, Bytes: initial - budget}
	default:
		return SizedComparison{Cmp: 0, Bytes: initial - budget}
	}
}

func (v ArrayValue) TruncatedSize(bytesRemaining uint) uint {
	var total uint
	for _, item := range v.items {
		if bytesRemaining == 0 {
			break
		}
		c := item.TruncatedSize(bytesRemaining)
		if c > bytesRemaining {
			c = bytesRemaining
		}
		total += c
		bytesRemaining -= c
	}
	return total
}

func (v ArrayValue) String() string {
	s := "["
	for i, item := range v.items {
		if i > 0 {
			s += ", "
		}
		s += item.String()
	}
	return s + "]"
}

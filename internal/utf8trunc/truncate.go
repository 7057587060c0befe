// Package utf8trunc computes byte-budgeted truncation points for strings the
// way Firestore's index entries do: ordering and truncation both operate on
// the string's UTF-16 code unit sequence (not its UTF-8 bytes or its Go
// runes), because that is the code unit space Firestore's string ordering is
// defined over. A surrogate pair is never split.
package utf8trunc

import "unicode/utf16"

// Table is a cached, monotonic prefix-byte-cost table over a string's UTF-16
// code units. It lets repeated truncation queries against the same string
// (at different thresholds, as the byte-budgeted comparator chains
// comparisons against a shrinking budget) answer in O(log n) after one O(n)
// build, and it is safe to share across goroutines: it never changes once
// built, so a race just means the table gets built more than once.
type Table struct {
	units  []uint16
	prefix []int // prefix[i] = UTF-8 byte cost of encoding units[0:i]; len(prefix) == len(units)+1
}

// Build computes the prefix-cost table for s. It is the expensive,
// memoizable half of truncation; callers should cache the result per string
// and reuse it across thresholds.
func Build(s string) *Table {
	units := utf16.Encode([]rune(s))
	prefix := make([]int, len(units)+1)

	i := 0
	for i < len(units) {
		u := units[i]
		if isHighSurrogate(u) && i+1 < len(units) && isLowSurrogate(units[i+1]) {
			// prefix[i+1] is not a valid breakpoint (it would split the
			// pair); give it the same cost as prefix[i] so the table stays
			// non-decreasing and the binary search below, which always
			// resolves ties to the leftmost index, skips over it.
			prefix[i+1] = prefix[i]
			prefix[i+2] = prefix[i] + 4
			i += 2
			continue
		}
		prefix[i+1] = prefix[i] + codeUnitCost(u)
		i++
	}

	return &Table{units: units, prefix: prefix}
}

func isHighSurrogate(u uint16) bool { return u >= 0xD800 && u <= 0xDBFF }
func isLowSurrogate(u uint16) bool  { return u >= 0xDC00 && u <= 0xDFFF }

func codeUnitCost(u uint16) int {
	switch {
	case u <= 0x7F:
		return 1
	case u <= 0x7FF:
		return 2
	default:
		return 3
	}
}

// Units returns the UTF-16 code unit sequence, for raw code-unit-order
// comparisons. Callers must not mutate the returned slice.
func (t *Table) Units() []uint16 { return t.units }

// Substring reconstructs the string formed by the first n UTF-16 code
// units. n must be a value previously returned by Truncate, so it never
// falls inside a surrogate pair.
func (t *Table) Substring(n int) string {
	return string(utf16.Decode(t.units[:n]))
}

// Len returns the total UTF-8 byte count of the whole string.
func (t *Table) Len() int { return t.prefix[len(t.prefix)-1] }

// Truncate returns the smallest prefix length i (in UTF-16 code units) whose
// UTF-8 byte cost is at least threshold, along with that cost, never
// splitting a surrogate pair. The returned cost may therefore exceed
// threshold when the last code unit taken is multi-byte. If the entire
// string's cost is below threshold, it returns the full length. For
// threshold == 0 it returns (0, 0).
func (t *Table) Truncate(threshold int) (units int, bytes int) {
	if threshold <= 0 {
		return 0, 0
	}

	// binary search the smallest index i such that prefix[i] >= threshold.
	lo, hi := 0, len(t.prefix)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if t.prefix[mid] >= threshold {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return lo, t.prefix[lo]
}

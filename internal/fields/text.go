package fields

import (
	"sync/atomic"
	"unicode/utf16"

	"github.com/chaisql/firevalue/internal/utf8trunc"
)

// StringValue is a Unicode string, ordered and truncated in UTF-16
// code-unit space to match the backend's index entries.
type StringValue struct {
	s   string
	tbl atomic.Pointer[utf8trunc.Table]
}

func NewString(s string) *StringValue {
	return &StringValue{s: s}
}

func (v *StringValue) table() *utf8trunc.Table {
	if t := v.tbl.Load(); t != nil {
		return t
	}
	// Building the table is pure and deterministic; a concurrent race just
	// means it gets built more than once, and the last store wins.
	t := utf8trunc.Build(v.s)
	v.tbl.Store(t)
	return t
}

func (*StringValue) TypeOrder() TypeOrder { return TypeOrderString }

func (v *StringValue) Value(*Options) any { return v.s }

func (v *StringValue) Equals(other Value) bool {
	o, ok := other.(*StringValue)
	return ok && v.s == o.s
}

func (v *StringValue) Compare(other Value, bytesRemaining uint) SizedComparison {
	o, ok := other.(*StringValue)
	if !ok {
		return defaultCompare(v, other, bytesRemaining)
	}
	return stringCompare(bytesRemaining, v, o)
}

func (v *StringValue) TruncatedSize(bytesRemaining uint) uint {
	_, bytes := v.table().Truncate(int(bytesRemaining))
	return uint(bytes)
}

func (v *StringValue) String() string { return v.s }

// stringCompare implements the string comparator: 1 byte of overhead is
// reserved, both sides are truncated against remaining-1, and the
// truncated prefixes are compared in raw UTF-16 code-unit order. If the
// prefixes are equal but exactly one side was truncated to get there, the
// truncated side sorts higher, since it stands for a string that continues
// beyond what was examined.
func stringCompare(remaining uint, l, r *StringValue) SizedComparison {
	var budget uint
	if remaining > 0 {
		budget = remaining - 1
	}

	tl, tr := l.table(), r.table()
	unitsL, bytesL := tl.Truncate(int(budget))
	unitsR, bytesR := tr.Truncate(int(budget))

	cmp := compareUTF16(tl.Units()[:unitsL], tr.Units()[:unitsR])
	if cmp == 0 {
		lTruncated := unitsL < len(tl.Units())
		rTruncated := unitsR < len(tr.Units())
		switch {
		case lTruncated && !rTruncated:
			cmp = 1
		case rTruncated && !lTruncated:
			cmp = -1
		}
	}

	minBytes := bytesL
	if bytesR < minBytes {
		minBytes = bytesR
	}
	return SizedComparison{Cmp: cmp, Bytes: uint(minBytes) + 1}
}

func compareUTF16(a, b []uint16) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// ImmediatePredecessor returns the string that immediately precedes s in
// code-unit order: the last code unit decremented by one, or the string
// with its last code unit dropped if that unit was already zero. Used to
// build exclusive range bounds.
func ImmediatePredecessor(s string) string {
	units := utf16.Encode([]rune(s))
	if len(units) == 0 {
		return ""
	}
	last := units[len(units)-1]
	if last == 0 {
		return string(utf16.Decode(units[:len(units)-1]))
	}
	out := make([]uint16, len(units))
	copy(out, units)
	out[len(out)-1] = last - 1
	return string(utf16.Decode(out))
}

// ImmediateSuccessor returns the string that immediately follows s in
// code-unit order: s with a zero code unit appended.
func ImmediateSuccessor(s string) string {
	return s + "\x00"
}

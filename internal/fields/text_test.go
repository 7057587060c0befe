package fields_test

import (
	"testing"

	"github.com/chaisql/firevalue/internal/fields"
	"github.com/stretchr/testify/require"
)

func TestImmediatePredecessor(t *testing.T) {
	require.Equal(t, "a", fields.ImmediatePredecessor("b"))
	require.Equal(t, "bbBA", fields.ImmediatePredecessor("bbBB"))
	require.Equal(t, "aaa", fields.ImmediatePredecessor("aaa\x00"))
	require.Equal(t, "", fields.ImmediatePredecessor("\x00"))
	require.Equal(t, "", fields.ImmediatePredecessor(""))
}

func TestImmediateSuccessor(t *testing.T) {
	require.Equal(t, "hello\x00", fields.ImmediateSuccessor("hello"))
}

func TestStringCompareOrdersByCodeUnit(t *testing.T) {
	a := fields.NewString("apple")
	b := fields.NewString("banana")
	require.Equal(t, -1, fields.CompareTo(a, b))
	require.Equal(t, 1, fields.CompareTo(b, a))
	require.Equal(t, 0, fields.CompareTo(a, fields.NewString("apple")))
}

func TestStringCompareTruncatedSideSortsHigher(t *testing.T) {
	// "ab" truncated to fit a 2-byte budget (1 after the 1-byte
	// reservation) becomes "a", equal to the untruncated "a" but the
	// truncated side must still sort higher.
	short := fields.NewString("a")
	long := fields.NewString("ab")

	cmp := long.Compare(short, 2)
	require.Equal(t, 1, cmp.Cmp)
}

func TestStringEqualsIsExactEvenWhenCompareTies(t *testing.T) {
	a := fields.NewString("a")
	b := fields.NewString("ab")
	require.False(t, a.Equals(b))
}

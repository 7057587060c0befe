package fields_test

import (
	"testing"

	"github.com/chaisql/firevalue/internal/fields"
	"github.com/stretchr/testify/require"
)

func TestBlobCompareLexicographic(t *testing.T) {
	a := fields.NewBlob([]byte{1, 2, 3})
	b := fields.NewBlob([]byte{1, 2, 4})
	require.Equal(t, -1, fields.CompareTo(a, b))
}

func TestBlobTruncatedSizeCappedByBudget(t *testing.T) {
	b := fields.NewBlob([]byte{1, 2, 3, 4, 5})
	require.EqualValues(t, 3, b.TruncatedSize(3))
	require.EqualValues(t, 5, b.TruncatedSize(10))
}

func TestBlobEquals(t *testing.T) {
	a := fields.NewBlob([]byte{1, 2})
	b := fields.NewBlob([]byte{1, 2})
	c := fields.NewBlob([]byte{1, 3})
	require.True(t, a.Equals(b))
	require.False(t, a.Equals(c))
}

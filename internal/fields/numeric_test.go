package fields_test

import (
	"math"
	"testing"

	"github.com/chaisql/firevalue/internal/fields"
	"github.com/stretchr/testify/require"
)

func TestIntegerDoubleCompareButNotEqual(t *testing.T) {
	one := fields.NewInteger(1)
	oneD := fields.NewDouble(1.0)

	require.Equal(t, 0, fields.CompareTo(one, oneD))
	require.False(t, one.Equals(oneD))
	require.False(t, oneD.Equals(one))
}

func TestDoubleNaNEquality(t *testing.T) {
	nan1 := fields.NewDouble(math.NaN())
	nan2 := fields.NewDouble(math.NaN())
	require.True(t, nan1.Equals(nan2))
	require.Equal(t, -1, fields.CompareTo(nan1, fields.NewDouble(1)))
}

func TestDoubleSignedZero(t *testing.T) {
	negZero := fields.NewDouble(math.Copysign(0, -1))
	posZero := fields.NewDouble(0)

	require.False(t, negZero.Equals(posZero))
	require.Equal(t, 0, fields.CompareTo(negZero, posZero))
}

func TestNumberTruncatedSizeIsFixed(t *testing.T) {
	require.EqualValues(t, 8, fields.NewInteger(42).TruncatedSize(0))
	require.EqualValues(t, 8, fields.NewDouble(42).TruncatedSize(1500))
}

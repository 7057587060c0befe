package fields_test

import (
	"testing"

	"github.com/chaisql/firevalue/internal/fields"
	"github.com/chaisql/firevalue/internal/model"
	"github.com/stretchr/testify/require"
)

func TestCrossTypeOrderingFollowsTypeOrder(t *testing.T) {
	ordered := []fields.Value{
		fields.Null,
		fields.False,
		fields.NewInteger(0),
		fields.NewTimestamp(model.NewTimestamp(0, 0)),
		fields.NewString(""),
		fields.NewBlob(nil),
		fields.NewGeoPoint(0, 0),
		fields.NewArray(),
		fields.EmptyObject,
	}

	for i := range ordered {
		for j := range ordered {
			want := 0
			switch {
			case i < j:
				want = -1
			case i > j:
				want = 1
			}
			require.Equal(t, want, fields.CompareTo(ordered[i], ordered[j]),
				"comparing index %d to %d", i, j)
		}
	}
}

func TestCompareIsAntiSymmetric(t *testing.T) {
	values := []fields.Value{
		fields.Null, fields.True, fields.False,
		fields.NewInteger(1), fields.NewInteger(2), fields.NewDouble(1.5),
		fields.NewString("a"), fields.NewString("b"),
	}

	for _, a := range values {
		for _, b := range values {
			require.Equal(t, -fields.CompareTo(a, b), fields.CompareTo(b, a))
		}
	}
}

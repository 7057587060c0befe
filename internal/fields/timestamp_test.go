package fields_test

import (
	"testing"

	"github.com/chaisql/firevalue/internal/fields"
	"github.com/chaisql/firevalue/internal/model"
	"github.com/stretchr/testify/require"
)

func TestConcreteTimestampPrecedesServerTimestamp(t *testing.T) {
	concrete := fields.NewTimestamp(model.NewTimestamp(10, 0))
	sentinel := fields.NewServerTimestamp(model.NewTimestamp(1, 0), nil)

	require.Equal(t, -1, fields.CompareTo(concrete, sentinel))
	require.Equal(t, 1, fields.CompareTo(sentinel, concrete))
}

func TestServerTimestampsSortByLocalWriteTime(t *testing.T) {
	earlier := fields.NewServerTimestamp(model.NewTimestamp(1, 0), nil)
	later := fields.NewServerTimestamp(model.NewTimestamp(2, 0), nil)

	require.Equal(t, -1, fields.CompareTo(earlier, later))
}

func TestServerTimestampValueResolution(t *testing.T) {
	prev := fields.NewInteger(7)
	ts := model.NewTimestamp(100, 0)
	sentinel := fields.NewServerTimestamp(ts, prev)

	require.Nil(t, sentinel.Value(fields.DefaultOptions))
	require.Equal(t, ts.ToDate(), sentinel.Value(fields.FromSnapshotOptions("estimate")))
	require.Equal(t, int64(7), sentinel.Value(fields.FromSnapshotOptions("previous")))

	withoutPrev := fields.NewServerTimestamp(ts, nil)
	require.Nil(t, withoutPrev.Value(fields.FromSnapshotOptions("previous")))
}

package sortedmap_test

import (
	"testing"

	"github.com/chaisql/firevalue/internal/sortedmap"
	"github.com/stretchr/testify/require"
)

func collect(m *sortedmap.SortedMap[int]) []string {
	var keys []string
	m.InorderTraversal(func(k string, v int) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

func TestInsertOrderIndependence(t *testing.T) {
	pairs := map[string]int{"b": 2, "a": 1, "d": 4, "c": 3, "e": 5}

	orders := [][]string{
		{"a", "b", "c", "d", "e"},
		{"e", "d", "c", "b", "a"},
		{"c", "a", "e", "b", "d"},
	}

	var results [][]string
	for _, order := range orders {
		m := sortedmap.Empty[int]()
		for _, k := range order {
			m = m.Insert(k, pairs[k])
		}
		results = append(results, collect(m))
	}

	for i := 1; i < len(results); i++ {
		require.Equal(t, results[0], results[i])
	}
	require.Equal(t, []string{"a", "b", "c", "d", "e"}, results[0])
}

func TestRemoveThenInsertIsEquivalent(t *testing.T) {
	m := sortedmap.Empty[int]()
	for _, k := range []string{"a", "b", "c"} {
		m = m.Insert(k, len(k))
	}

	removed := m.Remove("b")
	restored := removed.Insert("b", 1)

	require.Equal(t, collect(m), collect(restored))
	require.Equal(t, m.Len(), restored.Len())
}

func TestGetAndLen(t *testing.T) {
	m := sortedmap.Empty[string]()
	require.Equal(t, 0, m.Len())

	m = m.Insert("x", "1")
	m = m.Insert("y", "2")
	m = m.Insert("x", "1-updated")

	require.Equal(t, 2, m.Len())
	v, ok := m.Get("x")
	require.True(t, ok)
	require.Equal(t, "1-updated", v)

	_, ok = m.Get("z")
	require.False(t, ok)
}

func TestInsertDoesNotMutatePriorMap(t *testing.T) {
	base := sortedmap.Empty[int]().Insert("a", 1)
	next := base.Insert("b", 2)

	require.Equal(t, []string{"a"}, collect(base))
	require.Equal(t, []string{"a", "b"}, collect(next))
}

func TestIterator(t *testing.T) {
	m := sortedmap.Empty[int]()
	for _, k := range []string{"c", "a", "b"} {
		m = m.Insert(k, 0)
	}

	it := m.Iterator()
	var keys []string
	for it.HasNext() {
		k, _ := it.Next()
		keys = append(keys, k)
	}
	require.Equal(t, []string{"a", "b", "c"}, keys)
}

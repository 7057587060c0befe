package utf8trunc_test

import (
	"testing"

	"github.com/chaisql/firevalue/internal/utf8trunc"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		s         string
		threshold int
		wantUnits int
		wantBytes int
		wantPfx   string
	}{
		{"clément", 3, 3, 4, "clé"},
		{"€uro", 4, 2, 4, "€u"},
		{"€uro", 1, 1, 3, "€"},
		{"\U00010348pp", 4, 2, 4, "\U00010348"},
		{"clément", 0, 0, 0, ""},
		{"", 5, 0, 0, ""},
		{"hello", 1000, 5, 5, "hello"},
	}

	for _, tt := range tests {
		tbl := utf8trunc.Build(tt.s)
		units, bytes := tbl.Truncate(tt.threshold)
		require.Equal(t, tt.wantUnits, units, "units for %q/%d", tt.s, tt.threshold)
		require.Equal(t, tt.wantBytes, bytes, "bytes for %q/%d", tt.s, tt.threshold)
		require.Equal(t, tt.wantPfx, tbl.Substring(units))
	}
}

func TestTruncateNeverSplitsSurrogatePair(t *testing.T) {
	s := "a\U00010348b"
	tbl := utf8trunc.Build(s)
	for threshold := 0; threshold <= tbl.Len()+1; threshold++ {
		units, _ := tbl.Truncate(threshold)
		// a valid truncation point must decode cleanly: reconstructing it
		// must never produce the UTF-8 replacement rune from a lone
		// surrogate half.
		pfx := tbl.Substring(units)
		require.NotContains(t, pfx, "�")
	}
}

package model

import (
	"strings"

	"github.com/chaisql/firevalue/internal/utf8trunc"
)

// DocumentKey identifies a document by its ordered path segments
// (collection, document id, collection, document id, ...).
type DocumentKey struct {
	segments []string
}

func NewDocumentKey(segments ...string) DocumentKey {
	return DocumentKey{segments: segments}
}

func (k DocumentKey) Segments() []string { return k.segments }

func (k DocumentKey) Equals(other DocumentKey) bool {
	if len(k.segments) != len(other.segments) {
		return false
	}
	for i := range k.segments {
		if k.segments[i] != other.segments[i] {
			return false
		}
	}
	return true
}

// TruncatedPath truncates k's path to fit budget bytes, stopping as soon as
// the budget is exhausted. A single byte of separator overhead is charged
// between consecutive segments (but not before the first). Each segment is
// itself truncated at a UTF-16 code unit boundary via utf8trunc.
func (k DocumentKey) TruncatedPath(budget int) (byteLength int, path []string) {
	remaining := budget

	for i, seg := range k.segments {
		if i > 0 {
			if remaining <= 0 {
				break
			}
			remaining--
			byteLength++
		}
		if remaining <= 0 {
			break
		}

		tbl := utf8trunc.Build(seg)
		units, bytes := tbl.Truncate(remaining)
		remaining -= bytes
		byteLength += bytes
		path = append(path, tbl.Substring(units))

		if units < len(tbl.Units()) {
			// the segment itself was truncated; nothing left to spend on
			// further segments.
			break
		}
	}

	return byteLength, path
}

// TruncatedComparator compares two already-truncated paths (as returned by
// TruncatedPath) segment by segment using raw string order, falling back to
// segment count when one path is a prefix of the other.
func TruncatedComparator(a, b []string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	for i := 0; i < n; i++ {
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
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

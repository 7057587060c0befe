// Package assert provides small testing helpers shared by this module's test
// suites, in the spirit of testify's require package but tuned to the
// cockroachdb/errors idioms used throughout the codebase.
package assert

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func Error(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		return
	}
	t.Fatal("expected error to be present, but got nil instead")
}

func ErrorIs(t testing.TB, err error, target error) {
	t.Helper()
	if errors.Is(err, target) {
		return
	}
	t.Fatalf("expected error to be %v but got %v instead", target, err)
}

func NoError(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		return
	}
	t.Fatalf("expected error to be nil but got %q instead", err)
}

func Panics(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("expected fn to panic, but it returned normally")
		}
	}()
	fn()
}

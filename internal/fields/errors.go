package fields

import "github.com/cockroachdb/errors"

// emptyPathPanic builds the assertion panic raised when a structural
// Object operation is given an empty path, which is always a programmer
// error rather than a runtime condition.
func emptyPathPanic(op string) error {
	return errors.AssertionFailedf("fields: %s called with an empty path", op)
}

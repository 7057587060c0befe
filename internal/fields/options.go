package fields

import "github.com/cockroachdb/errors"

// ServerTimestampBehavior selects how a ServerTimestamp resolves to a host
// value under Value(opts).
type ServerTimestampBehavior uint8

const (
	// ServerTimestampDefault resolves unresolved server timestamps to nil.
	ServerTimestampDefault ServerTimestampBehavior = iota
	// ServerTimestampEstimate resolves to the local write time.
	ServerTimestampEstimate
	// ServerTimestampPrevious resolves to the field's previous value, or
	// nil if it had none.
	ServerTimestampPrevious
)

// Options controls dematerialization via Value.Value.
type Options struct {
	ServerTimestamps ServerTimestampBehavior
}

// DefaultOptions resolves server timestamps to nil, matching the behavior
// of a nil *Options.
var DefaultOptions = &Options{ServerTimestamps: ServerTimestampDefault}

func (o *Options) serverTimestampBehavior() ServerTimestampBehavior {
	if o == nil {
		return ServerTimestampDefault
	}
	return o.ServerTimestamps
}

// FromSnapshotOptions parses the server-timestamp behavior named by s, as
// it would arrive from a snapshot-options string such as "estimate" or
// "previous". An empty string or "default" means the default behavior. Any
// other value is a programmer error.
func FromSnapshotOptions(s string) *Options {
	switch s {
	case "", "default":
		return &Options{ServerTimestamps: ServerTimestampDefault}
	case "estimate":
		return &Options{ServerTimestamps: ServerTimestampEstimate}
	case "previous":
		return &Options{ServerTimestamps: ServerTimestampPrevious}
	default:
		panic(errors.AssertionFailedf("unrecognized serverTimestamps option %q", s))
	}
}

package fields

import "github.com/chaisql/firevalue/internal/model"

// ServerTimestampValue is a local-view sentinel standing in for a field
// until the backend commits the real value. It sorts among its own kind by
// localWriteTime, and strictly after every concrete Timestamp.
type ServerTimestampValue struct {
	localWriteTime model.Timestamp
	previousValue  Value // nil if there was none
}

func NewServerTimestamp(localWriteTime model.Timestamp, previousValue Value) ServerTimestampValue {
	return ServerTimestampValue{localWriteTime: localWriteTime, previousValue: previousValue}
}

func (ServerTimestampValue) TypeOrder() TypeOrder { return TypeOrderTimestamp }

func (v ServerTimestampValue) Value(opts *Options) any {
	switch opts.serverTimestampBehavior() {
	case ServerTimestampEstimate:
		return v.localWriteTime.ToDate()
	case ServerTimestampPrevious:
		if v.previousValue != nil {
			return v.previousValue.Value(opts)
		}
		return nil
	default:
		return nil
	}
}

func (v ServerTimestampValue) Equals(other Value) bool {
	o, ok := other.(ServerTimestampValue)
	if !ok || !v.localWriteTime.Equals(o.localWriteTime) {
		return false
	}
	switch {
	case v.previousValue == nil && o.previousValue == nil:
		return true
	case v.previousValue == nil || o.previousValue == nil:
		return false
	default:
		return v.previousValue.Equals(o.previousValue)
	}
}

// Compare orders two ServerTimestamps by localWriteTime, and any
// ServerTimestamp strictly after every concrete Timestamp.
func (v ServerTimestampValue) Compare(other Value, bytesRemaining uint) SizedComparison {
	switch o := other.(type) {
	case ServerTimestampValue:
		return SizedComparison{Cmp: v.localWriteTime.Compare(o.localWriteTime), Bytes: v.TruncatedSize(bytesRemaining)}
	case TimestampValue:
		return SizedComparison{Cmp: 1, Bytes: v.TruncatedSize(bytesRemaining)}
	default:
		return defaultCompare(v, other, bytesRemaining)
	}
}

func (ServerTimestampValue) TruncatedSize(uint) uint {
	return timestampTokenSize
}

func (v ServerTimestampValue) String() string {
	return "ServerTimestamp(" + v.localWriteTime.String() + ")"
}

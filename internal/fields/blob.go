package fields

import (
	"encoding/base64"

	"github.com/chaisql/firevalue/internal/model"
)

// BlobValue is an opaque byte sequence.
type BlobValue struct {
	b model.Blob
}

func NewBlob(b []byte) BlobValue {
	return BlobValue{b: model.NewBlob(b)}
}

func (BlobValue) TypeOrder() TypeOrder { return TypeOrderBlob }

func (v BlobValue) Value(*Options) any { return v.b.Bytes() }

func (v BlobValue) Equals(other Value) bool {
	o, ok := other.(BlobValue)
	return ok && v.b.Equals(o.b)
}

func (v BlobValue) Compare(other Value, bytesRemaining uint) SizedComparison {
	o, ok := other.(BlobValue)
	if !ok {
		return defaultCompare(v, other, bytesRemaining)
	}
	return SizedComparison{Cmp: v.b.Compare(o.b), Bytes: v.TruncatedSize(bytesRemaining)}
}

func (v BlobValue) TruncatedSize(bytesRemaining uint) uint {
	size := v.b.Size()
	if size > bytesRemaining {
		return bytesRemaining
	}
	return size
}

func (v BlobValue) String() string {
	return base64.StdEncoding.EncodeToString(v.b.Bytes())
}

package model

import "bytes"

// Blob is an opaque, immutable sequence of bytes.
type Blob struct {
	b []byte
}

// NewBlob wraps x. The caller must not mutate x afterwards.
func NewBlob(x []byte) Blob {
	return Blob{b: x}
}

func (b Blob) Bytes() []byte { return b.b }

func (b Blob) Size() uint {
	return uint(len(b.b))
}

func (b Blob) Compare(other Blob) int {
	return bytes.Compare(b.b, other.b)
}

func (b Blob) Equals(other Blob) bool {
	return bytes.Equal(b.b, other.b)
}

package storage

import (
	"bytes"
	"encoding/gob"

	"github.com/valyala/bytebufferpool"
)

type Encoder[T any] interface {
	Encode(data T) ([]byte, error)
	Decode(src []byte, dst *T) error
}

type GobEncoder[T any] struct{}

func (e GobEncoder[T]) Encode(data T) ([]byte, error) {
	b := bytebufferpool.Get()
	defer bytebufferpool.Put(b)
	if err := gob.NewEncoder(b).Encode(data); err != nil {
		return nil, err
	}
	// The pooled buffer is reused after Put, copy out of it.
	out := make([]byte, b.Len())
	copy(out, b.Bytes())
	return out, nil
}

func (e GobEncoder[T]) Decode(src []byte, dst *T) error {
	return gob.NewDecoder(bytes.NewReader(src)).Decode(dst)
}

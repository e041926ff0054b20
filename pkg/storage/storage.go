// Package storage persists paste records. Every implementation exposes the
// same versioned compare-and-update primitive; it is what linearizes
// concurrent view-consuming reads of a single record and keeps the view quota
// from being overrun. The engine behind the interface is interchangeable.
package storage

import (
	"context"
	"errors"

	"github.com/pudottapommin/pastebin-lite/pkg/pastes"
)

var (
	ErrRecordNotFound = errors.New("storage: record not found")
	ErrDuplicateID    = errors.New("storage: record id already exists")
	// ErrVersionConflict means the record changed between Get and
	// CompareAndUpdate. Callers re-read and retry.
	ErrVersionConflict = errors.New("storage: record version conflict")
)

type Store interface {
	// Put inserts a new record, failing with ErrDuplicateID if the id is taken.
	Put(ctx context.Context, p pastes.Paste) error
	// Get returns the record and its current version.
	Get(ctx context.Context, id string) (pastes.Paste, uint64, error)
	// CompareAndUpdate replaces the record only if its stored version still
	// equals version. On success the version advances by one.
	CompareAndUpdate(ctx context.Context, id string, version uint64, p pastes.Paste) error
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}

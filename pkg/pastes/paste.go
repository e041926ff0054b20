// Package pastes holds the paste record and its lifecycle engine: the pure
// rules deciding when a record is available, how a view is consumed and when
// the record retires.
package pastes

import (
	"time"
)

// Paste is the sole persistent entity. ID, Content, TTLSeconds, MaxViews,
// CreatedAt and ExpiresAt are fixed at creation; only CurrentViews and
// IsActive change afterwards, and IsActive only ever flips true -> false.
type Paste struct {
	ID           string
	Content      string
	TTLSeconds   *uint64
	MaxViews     *uint64
	CurrentViews uint64
	CreatedAt    time.Time
	ExpiresAt    *time.Time
	IsActive     bool
}

// New builds a fresh record with the expiry derived from createdAt. Input
// shape (non-empty content, positive ttl/maxViews) is validated at the HTTP
// boundary; the engine assumes it holds.
func New(id, content string, ttlSeconds, maxViews *uint64, createdAt time.Time) Paste {
	createdAt = createdAt.UTC()
	return Paste{
		ID:         id,
		Content:    content,
		TTLSeconds: ttlSeconds,
		MaxViews:   maxViews,
		CreatedAt:  createdAt,
		ExpiresAt:  DeriveExpiry(createdAt, ttlSeconds),
		IsActive:   true,
	}
}

// RemainingViews reports how many consuming reads are left, nil when the
// record has no view quota.
func (p Paste) RemainingViews() *uint64 {
	if p.MaxViews == nil {
		return nil
	}
	var left uint64
	if p.CurrentViews < *p.MaxViews {
		left = *p.MaxViews - p.CurrentViews
	}
	return &left
}

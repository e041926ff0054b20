// Package clock supplies timestamps to the rest of the service. Every
// availability decision reads time from a Source, never from time.Now
// directly, so tests and deterministic deployments can simulate arbitrary
// instants via a per-request override.
package clock

import (
	"time"
)

type Source struct {
	deterministic bool
}

func New(deterministic bool) *Source {
	return &Source{deterministic: deterministic}
}

func (s *Source) Deterministic() bool {
	return s.deterministic
}

// Now returns the wall clock in UTC.
func (s *Source) Now() time.Time {
	return time.Now().UTC()
}

// At returns the override when deterministic mode is on and an override was
// supplied, otherwise the wall clock. The override is normalized to UTC.
func (s *Source) At(override *time.Time) time.Time {
	if s.deterministic && override != nil {
		return override.UTC()
	}
	return time.Now().UTC()
}

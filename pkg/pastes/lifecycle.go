package pastes

import (
	"time"
)

// Reason classifies why a record is unavailable. ReasonNone means available.
type Reason uint8

const (
	ReasonNone Reason = iota
	// ReasonInactive covers records retired for no condition Evaluate can
	// still compute from the record itself.
	ReasonInactive
	ReasonExpired
	ReasonViewLimitReached
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "available"
	case ReasonInactive:
		return "paste not available"
	case ReasonExpired:
		return "paste has expired"
	case ReasonViewLimitReached:
		return "view limit exceeded"
	default:
		return "unknown"
	}
}

// UnavailableError carries the reason a record could not be read. Callers map
// every reason to the same 404-class outcome; the reason is for diagnostics.
type UnavailableError struct {
	Reason Reason
}

func (e *UnavailableError) Error() string {
	return e.Reason.String()
}

// DeriveExpiry computes createdAt + ttlSeconds, or nil when the record never
// time-expires. The result is always UTC.
func DeriveExpiry(createdAt time.Time, ttlSeconds *uint64) *time.Time {
	if ttlSeconds == nil {
		return nil
	}
	t := createdAt.UTC().Add(time.Duration(*ttlSeconds) * time.Second)
	return &t
}

// Evaluate computes the availability of p at now. Both read paths use this
// single primitive so they can never disagree about what "expired" means.
// Comparisons are done on UTC-normalized instants; a store that hands back a
// zone-stripped timestamp cannot change the verdict. The expiry boundary is
// exclusive: the record is gone at exactly ExpiresAt.
//
// The reason names the condition, not the stored flag: a retired record whose
// quota is exhausted keeps reporting ReasonViewLimitReached. ReasonInactive is
// only for records retired with no computable condition left to explain it.
func (p Paste) Evaluate(now time.Time) Reason {
	if p.ExpiresAt != nil && !now.UTC().Before(p.ExpiresAt.UTC()) {
		return ReasonExpired
	}
	if p.MaxViews != nil && p.CurrentViews >= *p.MaxViews {
		return ReasonViewLimitReached
	}
	if !p.IsActive {
		return ReasonInactive
	}
	return ReasonNone
}

// ConsumeView applies one quota-consuming read to p at now and returns the
// state to persist. It is pure; the caller commits the result through the
// store's conditional update.
//
// On an unavailable record no view is consumed, ever. If the record is still
// flagged active the observed condition is resolved into retirement (IsActive
// false) and changed is true so the caller persists it; repeat calls on an
// already retired record report changed false.
//
// On an available record CurrentViews rises by exactly one, and the increment
// that reaches MaxViews retires the record in the same returned state. That
// increment is itself the last permitted view: it succeeds, and only the next
// call observes ReasonViewLimitReached.
func ConsumeView(p Paste, now time.Time) (updated Paste, reason Reason, changed bool) {
	if reason = p.Evaluate(now); reason != ReasonNone {
		if p.IsActive {
			p.IsActive = false
			return p, reason, true
		}
		return p, reason, false
	}
	p.CurrentViews++
	if p.MaxViews != nil && p.CurrentViews >= *p.MaxViews {
		p.IsActive = false
	}
	return p, ReasonNone, true
}

// Package service is the access façade over the paste lifecycle: it threads
// the clock into every engine call, generates identifiers, and drives the
// store's conditional-update loop for quota-consuming reads.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pudottapommin/pastebin-lite/pkg/clock"
	"github.com/pudottapommin/pastebin-lite/pkg/pastes"
	"github.com/pudottapommin/pastebin-lite/pkg/storage"
	"github.com/pudottapommin/pastebin-lite/pkg/token"
)

// maxUpdateAttempts bounds the conditional-update retry loop. Losing a race
// a few times is normal contention; losing it this often signals a deeper
// problem and is escalated instead of spinning.
const maxUpdateAttempts = 5

var ErrTransientStore = errors.New("service: record update kept conflicting")

type Service struct {
	store storage.Store
	clk   *clock.Source
	l     *slog.Logger
}

func New(store storage.Store, clk *clock.Source, l *slog.Logger) *Service {
	return &Service{store: store, clk: clk, l: l}
}

type CreateInput struct {
	Content    string
	TTLSeconds *uint64
	MaxViews   *uint64
	// At is the deterministic-clock override, nil outside test mode.
	At *time.Time
}

// View is what a successful read returns. RemainingViews is the count left
// after this read, nil when the record has no view quota.
type View struct {
	Content        string
	RemainingViews *uint64
	ExpiresAt      *time.Time
}

func (s *Service) Create(ctx context.Context, in CreateInput) (pastes.Paste, error) {
	now := s.clk.At(in.At)
	id, err := token.New()
	if err != nil {
		return pastes.Paste{}, err
	}
	p := pastes.New(id, in.Content, in.TTLSeconds, in.MaxViews, now)
	if err = s.store.Put(ctx, p); err != nil {
		return pastes.Paste{}, fmt.Errorf("failed to store paste: %w", err)
	}
	createdTotal.Inc()
	return p, nil
}

// ReadConsuming fetches the record and consumes one view through the store's
// compare-and-update. On a version conflict another reader won the race; the
// record is re-read and the engine re-evaluated against the committed state,
// so a quota of N admits exactly N concurrent readers.
func (s *Service) ReadConsuming(ctx context.Context, id string, at *time.Time) (*View, error) {
	now := s.clk.At(at)
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		p, version, err := s.store.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		updated, reason, changed := pastes.ConsumeView(p, now)
		if changed {
			if err = s.store.CompareAndUpdate(ctx, id, version, updated); err != nil {
				if errors.Is(err, storage.ErrVersionConflict) {
					conflictTotal.Inc()
					continue
				}
				if errors.Is(err, storage.ErrRecordNotFound) {
					return nil, err
				}
				return nil, fmt.Errorf("failed to update paste: %w", err)
			}
		}
		if reason != pastes.ReasonNone {
			viewsTotal.WithLabelValues(outcomeLabel(reason)).Inc()
			return nil, &pastes.UnavailableError{Reason: reason}
		}
		viewsTotal.WithLabelValues("ok").Inc()
		return &View{
			Content:        updated.Content,
			RemainingViews: updated.RemainingViews(),
			ExpiresAt:      updated.ExpiresAt,
		}, nil
	}
	s.l.Error("record update kept conflicting", slog.String("id", id), slog.Int("attempts", maxUpdateAttempts))
	return nil, ErrTransientStore
}

// ReadExempt evaluates availability without consuming a view or writing
// anything. Time expiry still applies; it is not a consumable resource.
func (s *Service) ReadExempt(ctx context.Context, id string, at *time.Time) (*View, error) {
	now := s.clk.At(at)
	p, _, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if reason := p.Evaluate(now); reason != pastes.ReasonNone {
		return nil, &pastes.UnavailableError{Reason: reason}
	}
	return &View{
		Content:        p.Content,
		RemainingViews: p.RemainingViews(),
		ExpiresAt:      p.ExpiresAt,
	}, nil
}

func (s *Service) Healthy(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *Service) URL(domain, id string) string {
	return strings.TrimSuffix(domain, "/") + "/p/" + id
}

func outcomeLabel(r pastes.Reason) string {
	switch r {
	case pastes.ReasonExpired:
		return "expired"
	case pastes.ReasonViewLimitReached:
		return "view_limit"
	default:
		return "inactive"
	}
}

package api

import (
	"log/slog"

	"github.com/alexedwards/flow"
	"github.com/pudottapommin/pastebin-lite/config"
	"github.com/pudottapommin/pastebin-lite/pkg/service"
)

type handlers struct {
	l   *slog.Logger
	cfg *config.Config
	svc *service.Service
}

func NewHandlers(cfg *config.Config, svc *service.Service, l *slog.Logger) *handlers {
	return &handlers{cfg: cfg, svc: svc, l: l}
}

func (h *handlers) AddHandlers(e *flow.Mux) {
	e.HandleFunc("/api/healthz", h.healthzGET, "GET")
	e.HandleFunc("/api/pastes", h.pastePOST, "POST")
	// The bare GET consumes a view; /peek reports availability without
	// touching the quota.
	e.HandleFunc("/api/pastes/:id", h.pasteGET, "GET")
	e.HandleFunc("/api/pastes/:id/peek", h.pastePeekGET, "GET")
}

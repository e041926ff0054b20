package web

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
	e.HandleFunc("/", h.indexGET, "GET")
	e.HandleFunc("/p/:id", h.pasteGET, "GET")
}

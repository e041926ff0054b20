package app

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/alexedwards/flow"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/pudottapommin/golib/http/middleware/compressor"
	"github.com/pudottapommin/golib/http/middleware/logger"
	"github.com/pudottapommin/golib/http/middleware/requestid"
	"github.com/pudottapommin/pastebin-lite/config"
	"github.com/pudottapommin/pastebin-lite/internal/api"
	"github.com/pudottapommin/pastebin-lite/internal/metrics"
	"github.com/pudottapommin/pastebin-lite/internal/web"
	"github.com/pudottapommin/pastebin-lite/pkg/server"
	"github.com/pudottapommin/pastebin-lite/pkg/service"
)

type App struct {
	*server.Server
	svc *service.Service
	cfg *config.Config
	l   *slog.Logger
}

func New(ctx context.Context, svc *service.Service, cfg *config.Config, l *slog.Logger) *App {
	return &App{Server: server.New(ctx, flow.New()), svc: svc, cfg: cfg, l: l}
}

func (a *App) Run(addr string) error {
	a.E().Use(
		requestid.New().Handler,
		logger.New(logger.WithLogger(a.l, "[HTTP]"), logger.WithNext(func(w http.ResponseWriter, r *http.Request) bool {
			return strings.HasPrefix(r.URL.Path, "/metrics") || strings.HasPrefix(r.URL.Path, "/.well-known")
		})).Handler,
		compressor.MustNew(),
		metrics.Middleware(),
	)

	{
		h := api.NewHandlers(a.cfg, a.svc, a.l)
		h.AddHandlers(a.E())
	}
	if a.cfg.UI {
		h := web.NewHandlers(a.cfg, a.svc, a.l)
		h.AddHandlers(a.E())
	}
	a.E().Handle("/metrics", promhttp.Handler(), "GET")

	a.l.Debug("Server started", "address", addr)
	return a.Server.Run(addr)
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.Server.Shutdown(ctx)
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pudottapommin/pastebin-lite/config"
	"github.com/pudottapommin/pastebin-lite/internal/app"
	"github.com/pudottapommin/pastebin-lite/pkg/clock"
	"github.com/pudottapommin/pastebin-lite/pkg/service"
	"github.com/pudottapommin/pastebin-lite/pkg/storage"
	"github.com/valkey-io/valkey-go"
)

func main() {
	cfg := new(config.Config)
	if err := cfg.Load(); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logLvl := slog.LevelDebug
	if cfg.IsProd {
		logLvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLvl}))
	slog.SetDefault(logger)

	if cfg.TestMode {
		logger.Warn("deterministic clock enabled, requests may override time")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, cleanup, err := newStore(ctx, cfg)
	if err != nil {
		logger.Error("failed to initialize storage", "error", err, "backend", cfg.Storage)
		os.Exit(1)
	}
	defer cleanup()

	svc := service.New(store, clock.New(cfg.TestMode), logger)
	webApp := app.New(ctx, svc, cfg, logger)
	if err = webApp.Run(cfg.Host); err != nil {
		logger.Error("failed to run server", "error", err)
		os.Exit(1)
	}
}

func newStore(ctx context.Context, cfg *config.Config) (storage.Store, func(), error) {
	switch cfg.Storage {
	case "memory":
		return storage.NewMemory(), func() {}, nil

	case "valkey":
		db, err := valkey.NewClient(valkey.ClientOption{InitAddress: []string{cfg.DB}})
		if err != nil {
			return nil, nil, err
		}
		var encryptor storage.Encryptor
		if cfg.SecretKey != "" {
			if encryptor, err = storage.NewDefaultEncryptor([]byte(cfg.SecretKey)); err != nil {
				db.Close()
				return nil, nil, err
			}
		}
		store, err := storage.NewValkey(db, encryptor)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return store, db.Close, nil

	case "postgres":
		if err := storage.Migrate(migrateURL(cfg.PostgresDSN)); err != nil {
			return nil, nil, err
		}
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		if err = pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return storage.NewPostgres(pool), pool.Close, nil

	default:
		return nil, nil, errors.New("unknown storage backend: " + cfg.Storage)
	}
}

// migrateURL rewrites a postgres DSN into golang-migrate's pgx5 scheme.
func migrateURL(dsn string) string {
	if rest, ok := strings.CutPrefix(dsn, "postgresql://"); ok {
		return "pgx5://" + rest
	}
	if rest, ok := strings.CutPrefix(dsn, "postgres://"); ok {
		return "pgx5://" + rest
	}
	return dsn
}

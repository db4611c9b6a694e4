package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/heartmarshall/editorial-admin/internal/adapter/export"
	"github.com/heartmarshall/editorial-admin/internal/adapter/postgres"
	articlerepo "github.com/heartmarshall/editorial-admin/internal/adapter/postgres/article"
	auditrepo "github.com/heartmarshall/editorial-admin/internal/adapter/postgres/audit"
	versionrepo "github.com/heartmarshall/editorial-admin/internal/adapter/postgres/version"
	"github.com/heartmarshall/editorial-admin/internal/adapter/provider/contentstore"
	"github.com/heartmarshall/editorial-admin/internal/adapter/provider/identity"
	"github.com/heartmarshall/editorial-admin/internal/adapter/redis"
	"github.com/heartmarshall/editorial-admin/internal/auth"
	"github.com/heartmarshall/editorial-admin/internal/config"
	"github.com/heartmarshall/editorial-admin/internal/metrics"
	"github.com/heartmarshall/editorial-admin/internal/transport/middleware"
	"github.com/heartmarshall/editorial-admin/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and Redis, wires the admin services and serves HTTP until ctx
// is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	redisClient, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()
	ledger := redis.NewTokenLedger(redisClient)

	sinkFile, err := os.OpenFile(cfg.Export.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
	if err != nil {
		return fmt.Errorf("open export sink: %w", err)
	}
	defer sinkFile.Close()

	contentClient := contentstore.NewClient(logger, cfg.ContentStore)
	identityClient := identity.NewClient(logger, cfg.Identity)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	svcs := NewServices(logger, cfg, Backends{
		Audit:    auditrepo.New(pool),
		Articles: articlerepo.New(pool),
		Versions: versionrepo.New(pool),
		Tx:       postgres.NewTxManager(pool),
		Ledger:   ledger,
		Content:  contentClient,
		Identity: identityClient,
		Sink:     export.NewWriter(sinkFile),
	}, m)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := NewRouter(logger, cfg, Router{
		Admin: rest.NewAdminHandler(svcs.Audit, svcs.Gate, svcs.Bulk, svcs.Versions, svcs.Ownership, logger),
		Health: rest.NewHealthHandler(BuildVersion(),
			rest.HealthCheck{Name: "database", Pinger: pool},
			rest.HealthCheck{Name: "redis", Pinger: ledger},
			rest.HealthCheck{Name: "content_store", Pinger: contentClient, Optional: true},
			rest.HealthCheck{Name: "identity", Pinger: identityClient, Optional: true},
		),
		Tokens:   auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		Metrics:  m,
		Gatherer: registry,
		Limiter:  limiter,
	})

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	}
}

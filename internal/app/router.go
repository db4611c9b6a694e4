package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/editorial-admin/internal/config"
	"github.com/heartmarshall/editorial-admin/internal/domain"
	"github.com/heartmarshall/editorial-admin/internal/metrics"
	"github.com/heartmarshall/editorial-admin/internal/transport/middleware"
	"github.com/heartmarshall/editorial-admin/internal/transport/rest"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (domain.Actor, error)
}

// Router holds what NewRouter mounts.
type Router struct {
	Admin    *rest.AdminHandler
	Health   *rest.HealthHandler
	Tokens   tokenValidator
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Limiter  *middleware.RateLimiter
}

// NewRouter builds the HTTP handler: health probes and /metrics are public,
// every /admin route requires an administrator token.
func NewRouter(logger *slog.Logger, cfg *config.Config, rt Router) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(rt.Gatherer, promhttp.HandlerOpts{}))

	rt.Admin.Register(mux, middleware.AdminOnly)

	var limit middleware.Middleware
	if rt.Limiter != nil {
		limit = rt.Limiter.Limit(cfg.RateLimit.PerMinute)
	}

	// Metrics must stay innermost to see the matched route pattern.
	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(rt.Tokens),
		limit,
		middleware.Metrics(rt.Metrics),
	)(mux)
}

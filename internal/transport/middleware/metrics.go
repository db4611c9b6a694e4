package middleware

import (
	"net/http"
	"time"
)

type requestObserver interface {
	ObserveRequest(method, path string, status int, d time.Duration)
}

// Metrics records request duration per route pattern. It must wrap the mux
// directly so the matched pattern is visible after the handler returns.
func Metrics(obs requestObserver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			noteRoute(r.Context(), r.Pattern)
			path := r.Pattern
			if path == "" {
				path = "unmatched"
			}
			obs.ObserveRequest(r.Method, path, sw.status, time.Since(start))
		})
	}
}

package middleware

import (
	"context"
	"net/http"

	"github.com/heartmarshall/editorial-admin/internal/domain"
	"github.com/heartmarshall/editorial-admin/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrUnauthorized for anonymous requests and
// domain.ErrForbidden if the context user is not admin.
func RequireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}

// AdminOnly rejects requests whose context user is not an administrator.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch err := RequireAdmin(r.Context()); err {
		case nil:
			next.ServeHTTP(w, r)
		case domain.ErrUnauthorized:
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		default:
			http.Error(w, "forbidden", http.StatusForbidden)
		}
	})
}

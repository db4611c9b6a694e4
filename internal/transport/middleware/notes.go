package middleware

import (
	"context"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/editorial-admin/pkg/ctxutil"
)

// requestNotes carries what inner middleware learn about a request (the
// authenticated user, the matched route) back out to Logger and Recovery,
// which only hold the request as it was before Auth and the mux touched it.
type requestNotes struct {
	mu      sync.Mutex
	userID  uuid.UUID
	hasUser bool
	route   string
}

type notesKey struct{}

func withNotes(r *http.Request) (*http.Request, *requestNotes) {
	if n, ok := r.Context().Value(notesKey{}).(*requestNotes); ok {
		return r, n
	}
	n := &requestNotes{}
	return r.WithContext(context.WithValue(r.Context(), notesKey{}, n)), n
}

func notesFrom(ctx context.Context) *requestNotes {
	n, _ := ctx.Value(notesKey{}).(*requestNotes)
	return n
}

func noteUser(ctx context.Context, id uuid.UUID) {
	if n := notesFrom(ctx); n != nil {
		n.mu.Lock()
		n.userID, n.hasUser = id, true
		n.mu.Unlock()
	}
}

func noteRoute(ctx context.Context, route string) {
	if n := notesFrom(ctx); n != nil {
		n.mu.Lock()
		n.route = route
		n.mu.Unlock()
	}
}

func (n *requestNotes) user() (uuid.UUID, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.userID, n.hasUser
}

func (n *requestNotes) matchedRoute() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.route
}

// requestUser returns the authenticated user of r, whether it was set on r
// itself or noted by Auth further down the chain.
func requestUser(r *http.Request) (uuid.UUID, bool) {
	if id, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return id, true
	}
	if n := notesFrom(r.Context()); n != nil {
		return n.user()
	}
	return uuid.Nil, false
}

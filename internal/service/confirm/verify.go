package confirm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/heartmarshall/editorial-admin/internal/domain"
	"github.com/heartmarshall/editorial-admin/pkg/ctxutil"
)

const tokenField = "confirmation_token"

// Verify redeems token for op on targets. The token must have been issued to
// the authenticated actor for exactly this operation, parameters and target
// set, must not be expired, and can be redeemed only once.
func (g *Gate) Verify(ctx context.Context, token string, op domain.Operation, targets []uuid.UUID) error {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if token == "" {
		return domain.NewValidationError(tokenField, "required")
	}

	claims := &confirmationClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return g.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(g.clock),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.NewValidationError(tokenField, "expired")
		}
		return domain.NewValidationError(tokenField, "invalid")
	}
	if !parsed.Valid {
		return domain.NewValidationError(tokenField, "invalid")
	}

	if claims.Subject != actorID.String() {
		return domain.NewValidationError(tokenField, "issued to another user")
	}
	if claims.Operation != op.Kind.String() || claims.Digest != bindingDigest(op, targets) {
		return domain.NewValidationError(tokenField, "does not match the operation or targets")
	}

	ttl := claims.ExpiresAt.Sub(g.clock())
	if ttl < time.Second {
		ttl = time.Second
	}
	first, err := g.ledger.Consume(ctx, claims.ID, ttl)
	if err != nil {
		return fmt.Errorf("consume confirmation token: %w", err)
	}
	if !first {
		g.log.WarnContext(ctx, "confirmation token replayed",
			slog.String("token_id", claims.ID),
			slog.String("actor_id", actorID.String()),
		)
		return domain.NewValidationError(tokenField, "already used")
	}
	return nil
}

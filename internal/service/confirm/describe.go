package confirm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/heartmarshall/editorial-admin/internal/domain"
	"github.com/heartmarshall/editorial-admin/pkg/ctxutil"
)

// Describe summarises the effect of op on targets. When the operation needs
// confirmation the summary carries a token for the authenticated actor.
func (g *Gate) Describe(ctx context.Context, op domain.Operation, targets []uuid.UUID) (domain.ImpactSummary, error) {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ImpactSummary{}, domain.ErrUnauthorized
	}

	errs := op.Validate()
	if len(targets) == 0 {
		errs = append(errs, domain.FieldError{Field: "item_ids", Message: "required"})
	}
	for i, id := range targets {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("item_ids[%d]", i), Message: "required"})
		}
	}
	if len(errs) > 0 {
		return domain.ImpactSummary{}, domain.NewValidationErrors(errs)
	}

	summary := domain.ImpactSummary{
		Operation:            op,
		TargetCount:          len(targets),
		Description:          describe(op, len(targets)),
		RequiresConfirmation: g.RequiresConfirmation(op.Kind, len(targets)),
	}
	if !summary.RequiresConfirmation {
		return summary, nil
	}

	tokenID, err := uuid.NewV7()
	if err != nil {
		return domain.ImpactSummary{}, fmt.Errorf("generate token id: %w", err)
	}
	now := g.clock()
	expiresAt := now.Add(g.ttl)

	claims := confirmationClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID.String(),
			Subject:   actorID.String(),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Operation: op.Kind.String(),
		Digest:    bindingDigest(op, targets),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return domain.ImpactSummary{}, fmt.Errorf("sign confirmation token: %w", err)
	}

	summary.Token = signed
	summary.ExpiresAt = &expiresAt

	g.log.InfoContext(ctx, "confirmation issued",
		slog.String("token_id", tokenID.String()),
		slog.String("operation", op.String()),
		slog.Int("targets", len(targets)),
	)
	return summary, nil
}

func describe(op domain.Operation, n int) string {
	noun := "articles"
	if n == 1 {
		noun = "article"
	}
	switch op.Kind {
	case domain.OperationSetStatus:
		return fmt.Sprintf("Change the status of %d %s to %s.", n, noun, op.NewStatus)
	case domain.OperationDelete:
		return fmt.Sprintf("Delete %d %s. Deleted articles disappear from every listing.", n, noun)
	case domain.OperationExport:
		return fmt.Sprintf("Export the content of %d %s as %s.", n, noun, op.Parameters()["format"])
	case domain.OperationTransferOwnership:
		return fmt.Sprintf("Transfer ownership of %d %s to user %s. The current owners lose ownership.", n, noun, op.NewOwnerID)
	}
	return fmt.Sprintf("%s on %d %s.", op, n, noun)
}

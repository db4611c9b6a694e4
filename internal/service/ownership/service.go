package ownership

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/editorial-admin/internal/domain"
)

type articleRepo interface {
	GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Article, error)
	SwapOwner(ctx context.Context, id, expected, next uuid.UUID) (domain.Article, error)
}

type identityResolver interface {
	Resolve(ctx context.Context, userID uuid.UUID) (domain.Identity, error)
}

type confirmationVerifier interface {
	Verify(ctx context.Context, token string, op domain.Operation, targets []uuid.UUID) error
}

type auditLogger interface {
	Append(ctx context.Context, draft domain.ActionDraft) (domain.ActionRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service coordinates single-article ownership transfers.
type Service struct {
	articles   articleRepo
	identities identityResolver
	confirm    confirmationVerifier
	audit      auditLogger
	tx         txManager
	clock      func() time.Time
	log        *slog.Logger
}

// NewService creates a new ownership Service.
func NewService(
	log *slog.Logger,
	articles articleRepo,
	identities identityResolver,
	confirm confirmationVerifier,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		articles:   articles,
		identities: identities,
		confirm:    confirm,
		audit:      audit,
		tx:         tx,
		clock:      time.Now,
		log:        log.With("service", "ownership"),
	}
}

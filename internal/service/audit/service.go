package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/editorial-admin/internal/config"
	"github.com/heartmarshall/editorial-admin/internal/domain"
	"github.com/microcosm-cc/bluemonday"
)

type recordStore interface {
	Append(ctx context.Context, rec domain.ActionRecord) (domain.ActionRecord, error)
	Query(ctx context.Context, f domain.AuditFilter) (domain.AuditPage, error)
	Stream(ctx context.Context, f domain.AuditFilter, fn func(domain.ActionRecord) error) error
}

type identityResolver interface {
	Resolve(ctx context.Context, userID uuid.UUID) (domain.Identity, error)
}

// Service is the append-only audit log. Records can be appended and queried;
// nothing in this package updates or removes them.
type Service struct {
	store      recordStore
	identities identityResolver
	policy     *bluemonday.Policy
	cfg        config.AuditConfig
	clock      func() time.Time
	log        *slog.Logger
}

// NewService creates a new audit Service. identities may be nil, in which case
// display names are taken from the draft or the request context only.
func NewService(
	log *slog.Logger,
	store recordStore,
	identities identityResolver,
	cfg config.AuditConfig,
) *Service {
	return &Service{
		store:      store,
		identities: identities,
		policy:     bluemonday.StrictPolicy(),
		cfg:        cfg,
		clock:      time.Now,
		log:        log.With("service", "audit"),
	}
}

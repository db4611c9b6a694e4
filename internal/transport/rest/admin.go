package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/editorial-admin/internal/domain"
	"github.com/heartmarshall/editorial-admin/internal/service/bulk"
	"github.com/heartmarshall/editorial-admin/internal/service/version"
)

type auditQuerier interface {
	Query(ctx context.Context, f domain.AuditFilter) (domain.AuditPage, error)
}

type impactDescriber interface {
	Describe(ctx context.Context, op domain.Operation, targets []uuid.UUID) (domain.ImpactSummary, error)
}

type bulkExecutor interface {
	Execute(ctx context.Context, in bulk.ExecuteInput) (*domain.BulkOperationResult, error)
}

type versionService interface {
	ListVersions(ctx context.Context, articleID uuid.UUID, order domain.VersionOrder) ([]domain.ArticleVersion, error)
	GetVersion(ctx context.Context, articleID uuid.UUID, number int) (domain.ArticleVersion, error)
	Snapshot(ctx context.Context, input version.SnapshotInput) (domain.ArticleVersion, error)
	Restore(ctx context.Context, input version.RestoreInput) (domain.ArticleVersion, error)
}

type ownershipService interface {
	Transfer(ctx context.Context, req domain.OwnershipTransferRequest) (*domain.TransferOutcome, error)
}

// AdminHandler serves the administrator REST endpoints. Routes are expected
// to sit behind middleware.AdminOnly.
type AdminHandler struct {
	audit     auditQuerier
	confirm   impactDescriber
	bulk      bulkExecutor
	versions  versionService
	ownership ownershipService
	log       *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(
	audit auditQuerier,
	confirm impactDescriber,
	bulk bulkExecutor,
	versions versionService,
	ownership ownershipService,
	logger *slog.Logger,
) *AdminHandler {
	return &AdminHandler{
		audit:     audit,
		confirm:   confirm,
		bulk:      bulk,
		versions:  versions,
		ownership: ownership,
		log:       logger.With("handler", "admin"),
	}
}

// Register mounts the admin routes on mux, each wrapped by mw.
func (h *AdminHandler) Register(mux *http.ServeMux, mw func(http.Handler) http.Handler) {
	routes := []struct {
		pattern string
		handler http.HandlerFunc
	}{
		{"GET /admin/audit", h.QueryAudit},
		{"POST /admin/confirmations", h.Describe},
		{"POST /admin/bulk", h.ExecuteBulk},
		{"GET /admin/articles/{id}/versions", h.ListVersions},
		{"GET /admin/articles/{id}/versions/{n}", h.GetVersion},
		{"POST /admin/articles/{id}/versions", h.Snapshot},
		{"POST /admin/articles/{id}/restore", h.Restore},
		{"POST /admin/articles/{id}/transfer", h.TransferOwnership},
	}
	for _, rt := range routes {
		mux.Handle(rt.pattern, mw(rt.handler))
	}
}

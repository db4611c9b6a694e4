package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/editorial-admin/internal/config"
	"github.com/heartmarshall/editorial-admin/internal/domain"
	"github.com/heartmarshall/editorial-admin/internal/metrics"
	"github.com/heartmarshall/editorial-admin/internal/service/article"
	"github.com/heartmarshall/editorial-admin/internal/service/audit"
	"github.com/heartmarshall/editorial-admin/internal/service/bulk"
	"github.com/heartmarshall/editorial-admin/internal/service/confirm"
	"github.com/heartmarshall/editorial-admin/internal/service/ownership"
	"github.com/heartmarshall/editorial-admin/internal/service/version"
)

type auditStore interface {
	Append(ctx context.Context, rec domain.ActionRecord) (domain.ActionRecord, error)
	Query(ctx context.Context, f domain.AuditFilter) (domain.AuditPage, error)
	Stream(ctx context.Context, f domain.AuditFilter, fn func(domain.ActionRecord) error) error
}

type articleStore interface {
	Get(ctx context.Context, id uuid.UUID) (domain.Article, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Article, error)
	SwapStatus(ctx context.Context, id uuid.UUID, expected, next domain.ArticleStatus) (domain.Article, error)
	SwapOwner(ctx context.Context, id, expected, next uuid.UUID) (domain.Article, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (domain.Article, error)
}

type versionStore interface {
	Append(ctx context.Context, v domain.ArticleVersion) (domain.ArticleVersion, error)
	List(ctx context.Context, articleID uuid.UUID, order domain.VersionOrder) ([]domain.ArticleVersion, error)
	Get(ctx context.Context, articleID uuid.UUID, number int) (domain.ArticleVersion, error)
}

type contentStore interface {
	Read(ctx context.Context, articleID uuid.UUID) ([]byte, error)
	Write(ctx context.Context, articleID uuid.UUID, content []byte) error
}

type identityProvider interface {
	Resolve(ctx context.Context, userID uuid.UUID) (domain.Identity, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type tokenLedger interface {
	Consume(ctx context.Context, tokenID string, ttl time.Duration) (bool, error)
}

type exportSink interface {
	Write(ctx context.Context, doc domain.ExportDocument) error
}

// Backends are the storage and collaborator implementations the admin
// services run on. Postgres, Redis and HTTP clients in production; memory
// stores in tests.
type Backends struct {
	Audit      auditStore
	Articles   articleStore
	Versions   versionStore
	Tx         txRunner
	Ledger     tokenLedger
	Content    contentStore
	Identity   identityProvider
	Sink       exportSink
	Authorizer article.Authorizer
}

// Services groups the admin services built on one set of backends.
type Services struct {
	Audit     *audit.Service
	Gate      *confirm.Gate
	Articles  *article.Service
	Bulk      *bulk.Executor
	Versions  *version.Service
	Ownership *ownership.Service
}

// NewServices wires the admin services. m may be nil.
func NewServices(logger *slog.Logger, cfg *config.Config, b Backends, m *metrics.Metrics) *Services {
	auditSvc := audit.NewService(logger, b.Audit, b.Identity, cfg.Audit)
	gate := confirm.NewGate(logger, cfg.Confirmation, b.Ledger)
	articleSvc := article.NewService(logger, b.Articles, b.Content, b.Sink, b.Identity, b.Authorizer, b.Tx)

	var executor *bulk.Executor
	if m != nil {
		executor = bulk.NewExecutor(logger, articleSvc, auditSvc, gate, m, cfg.Bulk)
	} else {
		executor = bulk.NewExecutor(logger, articleSvc, auditSvc, gate, nil, cfg.Bulk)
	}

	return &Services{
		Audit:     auditSvc,
		Gate:      gate,
		Articles:  articleSvc,
		Bulk:      executor,
		Versions:  version.NewService(logger, b.Versions, b.Articles, b.Identity, b.Content, auditSvc, b.Tx),
		Ownership: ownership.NewService(logger, b.Articles, b.Identity, gate, auditSvc, b.Tx),
	}
}

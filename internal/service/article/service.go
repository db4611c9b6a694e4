package article

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/editorial-admin/internal/domain"
)

type articleRepo interface {
	Get(ctx context.Context, id uuid.UUID) (domain.Article, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Article, error)
	SwapStatus(ctx context.Context, id uuid.UUID, expected, next domain.ArticleStatus) (domain.Article, error)
	SwapOwner(ctx context.Context, id, expected, next uuid.UUID) (domain.Article, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (domain.Article, error)
}

type contentReader interface {
	Read(ctx context.Context, articleID uuid.UUID) ([]byte, error)
}

type exportSink interface {
	Write(ctx context.Context, doc domain.ExportDocument) error
}

type identityResolver interface {
	Resolve(ctx context.Context, userID uuid.UUID) (domain.Identity, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Authorizer decides whether actor may perform action on an article.
// A non-nil error denies; denials should wrap domain.ErrForbidden.
type Authorizer interface {
	Authorize(ctx context.Context, actor domain.Actor, action domain.ActionKind, a domain.Article) error
}

// AuthorizerFunc adapts a function to the Authorizer interface.
type AuthorizerFunc func(ctx context.Context, actor domain.Actor, action domain.ActionKind, a domain.Article) error

// Authorize calls f.
func (f AuthorizerFunc) Authorize(ctx context.Context, actor domain.Actor, action domain.ActionKind, a domain.Article) error {
	return f(ctx, actor, action, a)
}

// AllowAll permits every action.
type AllowAll struct{}

// Authorize always returns nil.
func (AllowAll) Authorize(context.Context, domain.Actor, domain.ActionKind, domain.Article) error {
	return nil
}

// Service applies single-article mutations on behalf of the bulk executor.
// It does not write audit records; the caller records the batch.
type Service struct {
	articles   articleRepo
	content    contentReader
	sink       exportSink
	identities identityResolver
	authorizer Authorizer
	tx         txManager
	clock      func() time.Time
	log        *slog.Logger
}

// NewService creates a new article Service. A nil authorizer allows everything.
func NewService(
	log *slog.Logger,
	articles articleRepo,
	content contentReader,
	sink exportSink,
	identities identityResolver,
	authorizer Authorizer,
	tx txManager,
) *Service {
	if authorizer == nil {
		authorizer = AllowAll{}
	}
	return &Service{
		articles:   articles,
		content:    content,
		sink:       sink,
		identities: identities,
		authorizer: authorizer,
		tx:         tx,
		clock:      time.Now,
		log:        log.With("service", "article"),
	}
}

package version

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/editorial-admin/internal/domain"
)

type versionRepo interface {
	Append(ctx context.Context, v domain.ArticleVersion) (domain.ArticleVersion, error)
	List(ctx context.Context, articleID uuid.UUID, order domain.VersionOrder) ([]domain.ArticleVersion, error)
	Get(ctx context.Context, articleID uuid.UUID, number int) (domain.ArticleVersion, error)
}

type articleRepo interface {
	Get(ctx context.Context, id uuid.UUID) (domain.Article, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Article, error)
}

type identityResolver interface {
	Resolve(ctx context.Context, userID uuid.UUID) (domain.Identity, error)
}

type contentWriter interface {
	Write(ctx context.Context, articleID uuid.UUID, content []byte) error
}

type auditLogger interface {
	Append(ctx context.Context, draft domain.ActionDraft) (domain.ActionRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service keeps the append-only version history of articles.
type Service struct {
	versions   versionRepo
	articles   articleRepo
	identities identityResolver
	content    contentWriter
	audit      auditLogger
	tx         txManager
	clock      func() time.Time
	log        *slog.Logger
}

// NewService creates a new version Service.
func NewService(
	log *slog.Logger,
	versions versionRepo,
	articles articleRepo,
	identities identityResolver,
	content contentWriter,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		versions:   versions,
		articles:   articles,
		identities: identities,
		content:    content,
		audit:      audit,
		tx:         tx,
		clock:      time.Now,
		log:        log.With("service", "version"),
	}
}

// loadLive returns the article if it exists and is not deleted.
func loadLive(a domain.Article, err error) (domain.Article, error) {
	if err != nil {
		return domain.Article{}, err
	}
	if a.IsDeleted() {
		return domain.Article{}, domain.ErrNotFound
	}
	return a, nil
}

// currentOwner reads the article and resolves its owner before any row is
// locked. A failed lookup leaves the snapshot with the id alone.
func (s *Service) currentOwner(ctx context.Context, articleID uuid.UUID) (domain.OwnerSnapshot, error) {
	a, err := loadLive(s.articles.Get(ctx, articleID))
	if err != nil {
		return domain.OwnerSnapshot{}, fmt.Errorf("load article: %w", err)
	}

	ident, err := s.identities.Resolve(ctx, a.OwnerID)
	if err != nil {
		s.log.WarnContext(ctx, "resolve article owner",
			slog.String("user_id", a.OwnerID.String()),
			slog.String("error", err.Error()),
		)
		return domain.OwnerSnapshot{UserID: a.OwnerID}, nil
	}
	return ident.Snapshot(), nil
}

// ownerUnchanged reports a conflict when the article changed hands between
// currentOwner and the locked read.
func ownerUnchanged(a domain.Article, owner domain.OwnerSnapshot) error {
	if a.OwnerID != owner.UserID {
		return fmt.Errorf("owner changed to %s: %w", a.OwnerID, domain.ErrConflict)
	}
	return nil
}

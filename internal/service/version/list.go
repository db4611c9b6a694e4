package version

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/heartmarshall/editorial-admin/internal/domain"
)

// ListVersions returns the full history of an article in the requested order.
// An empty order means oldest first.
func (s *Service) ListVersions(ctx context.Context, articleID uuid.UUID, order domain.VersionOrder) ([]domain.ArticleVersion, error) {
	if articleID == uuid.Nil {
		return nil, domain.NewValidationError("article_id", "required")
	}
	if order == "" {
		order = domain.VersionOrderOldestFirst
	}
	if !order.IsValid() {
		return nil, domain.NewValidationError("order", "invalid value")
	}

	if _, err := s.articles.Get(ctx, articleID); err != nil {
		return nil, fmt.Errorf("load article: %w", err)
	}

	versions, err := s.versions.List(ctx, articleID, order)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	if versions == nil {
		versions = []domain.ArticleVersion{}
	}
	return versions, nil
}

// GetVersion returns one version of an article. Numbers outside the history
// are not found.
func (s *Service) GetVersion(ctx context.Context, articleID uuid.UUID, number int) (domain.ArticleVersion, error) {
	if articleID == uuid.Nil {
		return domain.ArticleVersion{}, domain.NewValidationError("article_id", "required")
	}

	v, err := s.versions.Get(ctx, articleID, number)
	if err != nil {
		return domain.ArticleVersion{}, fmt.Errorf("get version: %w", err)
	}
	return v, nil
}

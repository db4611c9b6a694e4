package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/editorial-admin/internal/domain"
)

// VersionStore is an in-memory append-only version history.
type VersionStore struct {
	mu       sync.RWMutex
	versions map[uuid.UUID][]domain.ArticleVersion
}

// NewVersionStore creates an empty VersionStore.
func NewVersionStore() *VersionStore {
	return &VersionStore{versions: make(map[uuid.UUID][]domain.ArticleVersion)}
}

// Append stores v as the next version of its article.
func (s *VersionStore) Append(ctx context.Context, v domain.ArticleVersion) (domain.ArticleVersion, error) {
	if err := ctx.Err(); err != nil {
		return domain.ArticleVersion{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.versions[v.ArticleID]
	v.VersionNumber = len(history) + 1
	v.Content = slices.Clone(v.Content)
	s.versions[v.ArticleID] = append(history, v)
	return v, nil
}

// List returns every version of an article in the requested order.
func (s *VersionStore) List(ctx context.Context, articleID uuid.UUID, order domain.VersionOrder) ([]domain.ArticleVersion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	out := slices.Clone(s.versions[articleID])
	s.mu.RUnlock()

	if order == domain.VersionOrderNewestFirst {
		slices.Reverse(out)
	}
	return out, nil
}

// Get returns one version of an article.
func (s *VersionStore) Get(ctx context.Context, articleID uuid.UUID, number int) (domain.ArticleVersion, error) {
	if err := ctx.Err(); err != nil {
		return domain.ArticleVersion{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.versions[articleID]
	if number < 1 || number > len(history) {
		return domain.ArticleVersion{}, fmt.Errorf("article_version %s/%d: %w", articleID, number, domain.ErrNotFound)
	}
	return history[number-1], nil
}

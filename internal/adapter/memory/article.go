package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/editorial-admin/internal/domain"
)

// ArticleStore is an in-memory table of article admin rows.
type ArticleStore struct {
	mu       sync.Mutex
	articles map[uuid.UUID]domain.Article
	clock    func() time.Time
}

// NewArticleStore creates a store holding the given articles.
func NewArticleStore(articles ...domain.Article) *ArticleStore {
	s := &ArticleStore{articles: make(map[uuid.UUID]domain.Article), clock: time.Now}
	for _, a := range articles {
		s.articles[a.ID] = a
	}
	return s
}

// Put inserts or replaces an article.
func (s *ArticleStore) Put(a domain.Article) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.articles[a.ID] = a
}

// Get returns an article, including soft-deleted ones.
func (s *ArticleStore) Get(ctx context.Context, id uuid.UUID) (domain.Article, error) {
	if err := ctx.Err(); err != nil {
		return domain.Article{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.articles[id]
	if !ok {
		return domain.Article{}, fmt.Errorf("article %s: %w", id, domain.ErrNotFound)
	}
	return a, nil
}

// GetForUpdate is Get; the store has no row locks.
func (s *ArticleStore) GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Article, error) {
	return s.Get(ctx, id)
}

// SwapOwner sets the owner to next if it is currently expected.
func (s *ArticleStore) SwapOwner(ctx context.Context, id, expected, next uuid.UUID) (domain.Article, error) {
	return s.update(ctx, id, func(a *domain.Article) error {
		if a.OwnerID != expected {
			return domain.ErrConflict
		}
		a.OwnerID = next
		return nil
	})
}

// SwapStatus sets the status to next if it is currently expected.
func (s *ArticleStore) SwapStatus(ctx context.Context, id uuid.UUID, expected, next domain.ArticleStatus) (domain.Article, error) {
	return s.update(ctx, id, func(a *domain.Article) error {
		if a.Status != expected {
			return domain.ErrConflict
		}
		a.Status = next
		return nil
	})
}

// SoftDelete marks the article deleted.
func (s *ArticleStore) SoftDelete(ctx context.Context, id uuid.UUID) (domain.Article, error) {
	return s.update(ctx, id, func(a *domain.Article) error {
		now := s.clock().UTC()
		a.DeletedAt = &now
		return nil
	})
}

func (s *ArticleStore) update(ctx context.Context, id uuid.UUID, fn func(*domain.Article) error) (domain.Article, error) {
	if err := ctx.Err(); err != nil {
		return domain.Article{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.articles[id]
	if !ok || a.IsDeleted() {
		return domain.Article{}, fmt.Errorf("article %s: %w", id, domain.ErrNotFound)
	}
	if err := fn(&a); err != nil {
		return domain.Article{}, fmt.Errorf("article %s: %w", id, err)
	}
	a.UpdatedAt = s.clock().UTC()
	s.articles[id] = a
	return a, nil
}

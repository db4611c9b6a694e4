package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/editorial-admin/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedArticle inserts an article owned by owner in draft status.
func SeedArticle(t *testing.T, pool *pgxpool.Pool, owner uuid.UUID) domain.Article {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	a := domain.Article{
		ID:        uuid.New(),
		Title:     "Test Article " + uniqueSuffix(),
		OwnerID:   owner,
		Status:    domain.ArticleStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO articles (id, title, owner_id, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.Title, a.OwnerID, string(a.Status), a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedArticle: %v", err)
	}

	return a
}

// LockArticle marks the article as exclusively locked by holder.
func LockArticle(t *testing.T, pool *pgxpool.Pool, articleID, holder uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`UPDATE articles SET locked_by = $2 WHERE id = $1`, articleID, holder)
	if err != nil {
		t.Fatalf("testhelper: LockArticle: %v", err)
	}
}

// CountActions returns how many action records of kind reference target.
func CountActions(t *testing.T, pool *pgxpool.Pool, target uuid.UUID, kind domain.ActionKind) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM action_records WHERE target_id = $1 AND action_kind = $2`,
		target, string(kind),
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountActions: %v", err)
	}
	return n
}

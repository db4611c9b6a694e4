// Package article implements the administrative article row store using
// PostgreSQL. Content bytes live in the external content store; this table
// holds ownership, workflow status, lock and deletion state.
package article

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/editorial-admin/internal/adapter/postgres"
	"github.com/heartmarshall/editorial-admin/internal/domain"
)

const table = "articles"

var columns = []string{
	"id", "title", "owner_id", "status", "locked_by", "deleted_at", "created_at", "updated_at",
}

// Repo provides article row persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new article repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns the article, including soft-deleted rows.
func (r *Repo) Get(ctx context.Context, id uuid.UUID) (domain.Article, error) {
	return r.get(ctx, id, "")
}

// GetForUpdate returns the article and locks its row until the surrounding
// transaction ends. Must be called inside RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Article, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, suffix string) (domain.Article, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id.String()})
	if suffix != "" {
		b = b.Suffix(suffix)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return domain.Article{}, fmt.Errorf("build get article: %w", err)
	}

	a, err := scanArticle(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.Article{}, postgres.MapError(err, "article", id)
	}
	return a, nil
}

// ---------------------------------------------------------------------------
// Compare-and-swap writes
// ---------------------------------------------------------------------------

// SwapOwner changes the owner only if it still equals expected.
// Returns domain.ErrConflict when the stored owner differs and
// domain.ErrNotFound when the article is missing or deleted.
func (r *Repo) SwapOwner(ctx context.Context, id, expected, next uuid.UUID) (domain.Article, error) {
	return r.swap(ctx, id, "owner_id", expected.String(), next)
}

// SwapStatus changes the workflow status only if it still equals expected.
func (r *Repo) SwapStatus(ctx context.Context, id uuid.UUID, expected, next domain.ArticleStatus) (domain.Article, error) {
	return r.swap(ctx, id, "status", string(expected), string(next))
}

// SoftDelete marks a live article as deleted.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) (domain.Article, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("deleted_at", squirrel.Expr("now()")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id.String(), "deleted_at": nil}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return domain.Article{}, fmt.Errorf("build soft delete article: %w", err)
	}

	a, err := scanArticle(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.Article{}, postgres.MapError(err, "article", id)
	}
	return a, nil
}

func (r *Repo) swap(ctx context.Context, id uuid.UUID, column string, expected, next any) (domain.Article, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set(column, next).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id.String(), column: expected, "deleted_at": nil}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return domain.Article{}, fmt.Errorf("build swap article %s: %w", column, err)
	}

	a, err := scanArticle(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.Article{}, postgres.MapError(err, "article", id)
	}

	// No row matched: distinguish a missing article from a stale expectation.
	current, getErr := r.Get(ctx, id)
	if getErr != nil {
		return domain.Article{}, getErr
	}
	if current.IsDeleted() {
		return domain.Article{}, fmt.Errorf("article %s is deleted: %w", id, domain.ErrNotFound)
	}
	return domain.Article{}, fmt.Errorf("article %s %s changed concurrently: %w", id, column, domain.ErrConflict)
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func joinColumns() string {
	return strings.Join(columns, ", ")
}

func scanArticle(row pgx.Row) (domain.Article, error) {
	var (
		a         domain.Article
		status    string
		lockedBy  *uuid.UUID
		deletedAt *time.Time
	)

	if err := row.Scan(&a.ID, &a.Title, &a.OwnerID, &status, &lockedBy, &deletedAt, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return domain.Article{}, err
	}

	a.Status = domain.ArticleStatus(status)
	a.LockedBy = lockedBy
	a.DeletedAt = deletedAt
	return a, nil
}

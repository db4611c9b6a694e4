// Package version implements the append-only article version store using PostgreSQL.
package version

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/editorial-admin/internal/adapter/postgres"
	"github.com/heartmarshall/editorial-admin/internal/domain"
)

const table = "article_versions"

var columns = []string{
	"article_id", "version_number", "content", "created_by", "created_at",
	"status_at_snapshot", "change_summary", "restored_from",
}

// appendSQL assigns the next version number inside the insert. Callers must
// hold the article row lock so concurrent appends serialize.
const appendSQL = `
INSERT INTO article_versions
    (article_id, version_number, content, created_by, created_at, status_at_snapshot, change_summary, restored_from)
SELECT $1::uuid, COALESCE(MAX(version_number), 0) + 1, $2::bytea, $3::uuid, $4::timestamptz, $5::text, $6::text, $7::integer
FROM article_versions
WHERE article_id = $1::uuid
RETURNING version_number`

// Repo provides version persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new version repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Append stores v as the next version of its article and returns it with the
// assigned version number. VersionNumber on input is ignored.
func (r *Repo) Append(ctx context.Context, v domain.ArticleVersion) (domain.ArticleVersion, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var restoredFrom *int32
	if v.RestoredFrom != nil {
		n := int32(*v.RestoredFrom)
		restoredFrom = &n
	}

	var number int32
	err := q.QueryRow(ctx, appendSQL,
		v.ArticleID, v.Content, v.CreatedBy, v.CreatedAt, string(v.StatusAtSnapshot), v.ChangeSummary, restoredFrom,
	).Scan(&number)
	if err != nil {
		return domain.ArticleVersion{}, postgres.MapError(err, "article_version", v.ArticleID)
	}

	v.VersionNumber = int(number)
	return v, nil
}

// List returns the full history of an article in the requested order.
func (r *Repo) List(ctx context.Context, articleID uuid.UUID, order domain.VersionOrder) ([]domain.ArticleVersion, error) {
	dir := "ASC"
	if order == domain.VersionOrderNewestFirst {
		dir = "DESC"
	}

	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"article_id": articleID.String()}).
		OrderBy("version_number " + dir).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list article_versions: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "article_versions", articleID)
	}
	defer rows.Close()

	var versions []domain.ArticleVersion
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "article_versions", articleID)
	}

	return versions, nil
}

// Get returns one version or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, articleID uuid.UUID, number int) (domain.ArticleVersion, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"article_id": articleID.String(), "version_number": number}).
		ToSql()
	if err != nil {
		return domain.ArticleVersion{}, fmt.Errorf("build get article_version: %w", err)
	}

	v, err := scanVersion(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.ArticleVersion{}, fmt.Errorf("version %d: %w", number, err)
	}
	return v, nil
}

func scanVersion(row pgx.Row) (domain.ArticleVersion, error) {
	var (
		v            domain.ArticleVersion
		number       int32
		status       string
		createdAt    time.Time
		restoredFrom *int32
	)

	err := row.Scan(&v.ArticleID, &number, &v.Content, &v.CreatedBy, &createdAt, &status, &v.ChangeSummary, &restoredFrom)
	if err != nil {
		return domain.ArticleVersion{}, postgres.MapError(err, "article_version", nil)
	}

	v.VersionNumber = int(number)
	v.StatusAtSnapshot = domain.ArticleStatus(status)
	v.CreatedAt = createdAt.UTC()
	if restoredFrom != nil {
		n := int(*restoredFrom)
		v.RestoredFrom = &n
	}
	return v, nil
}

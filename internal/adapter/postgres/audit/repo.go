// Package audit implements the action record store using PostgreSQL.
// The store is append-only: it exposes no update or delete.
package audit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/editorial-admin/internal/adapter/postgres"
	"github.com/heartmarshall/editorial-admin/internal/domain"
)

const table = "action_records"

var columns = []string{
	"id", "seq", "actor_id", "actor_display_name", "target_kind", "target_id",
	"owner_id", "owner_display_name", "action_kind", "occurred_at", "notes", "metadata",
}

// insertColumns is columns without seq, which the database assigns.
var insertColumns = []string{
	"id", "actor_id", "actor_display_name", "target_kind", "target_id",
	"owner_id", "owner_display_name", "action_kind", "occurred_at", "notes", "metadata",
}

// Repo provides action record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new audit repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Append inserts a record and returns it with the store-assigned seq.
// Runs inside the caller's transaction when one is present in ctx.
func (r *Repo) Append(ctx context.Context, rec domain.ActionRecord) (domain.ActionRecord, error) {
	meta, err := domain.EncodeMetadata(rec.Metadata)
	if err != nil {
		return domain.ActionRecord{}, fmt.Errorf("action_record %s: %w", rec.ID, err)
	}

	var ownerID *uuid.UUID
	if !rec.TargetOwner.IsZero() {
		id := rec.TargetOwner.UserID
		ownerID = &id
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns(insertColumns...).
		Values(
			rec.ID, rec.ActorID, rec.ActorDisplayName, string(rec.TargetKind), rec.TargetID,
			ownerID, rec.TargetOwner.DisplayName, string(rec.Kind), rec.OccurredAt, rec.Notes, meta,
		).
		Suffix("RETURNING seq").
		ToSql()
	if err != nil {
		return domain.ActionRecord{}, fmt.Errorf("build insert action_record: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	if err := q.QueryRow(ctx, query, args...).Scan(&rec.Seq); err != nil {
		return domain.ActionRecord{}, postgres.MapError(err, "action_record", rec.ID)
	}

	return rec, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Query returns one page of records matching f, ordered by occurred_at DESC
// with seq as tie-breaker, plus the total number of matches.
// f.Limit must already be normalized by the caller.
func (r *Repo) Query(ctx context.Context, f domain.AuditFilter) (domain.AuditPage, error) {
	where := buildWhere(f)
	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return domain.AuditPage{}, fmt.Errorf("build count action_records: %w", err)
	}

	var total int64
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return domain.AuditPage{}, postgres.MapError(err, "action_records count", nil)
	}

	listSQL, listArgs, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("occurred_at DESC", "seq DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return domain.AuditPage{}, fmt.Errorf("build query action_records: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return domain.AuditPage{}, postgres.MapError(err, "action_records query", nil)
	}
	defer rows.Close()

	records := make([]domain.ActionRecord, 0, f.Limit)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return domain.AuditPage{}, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return domain.AuditPage{}, postgres.MapError(err, "action_records query", nil)
	}

	return domain.AuditPage{Records: records, Total: int(total)}, nil
}

// Stream calls fn for every record matching f in chronological order
// (oldest first). Offset and Limit are ignored. Used for exports.
func (r *Repo) Stream(ctx context.Context, f domain.AuditFilter, fn func(domain.ActionRecord) error) error {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(buildWhere(f)).
		OrderBy("occurred_at ASC", "seq ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("build stream action_records: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "action_records stream", nil)
	}
	defer rows.Close()

	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return postgres.MapError(rows.Err(), "action_records stream", nil)
}

// ---------------------------------------------------------------------------
// Filter building
// ---------------------------------------------------------------------------

// buildWhere translates the filter into a squirrel predicate. A target filter
// also matches bulk records whose item_ids contain the target.
func buildWhere(f domain.AuditFilter) squirrel.And {
	where := squirrel.And{}

	if f.ActorID != nil {
		where = append(where, squirrel.Eq{"actor_id": f.ActorID.String()})
	}
	if f.TargetID != nil {
		where = append(where, squirrel.Or{
			squirrel.Eq{"target_id": f.TargetID.String()},
			squirrel.Expr("metadata -> 'item_ids' @> jsonb_build_array(?::text)", f.TargetID.String()),
		})
	}
	if f.Kind != nil {
		where = append(where, squirrel.Eq{"action_kind": string(*f.Kind)})
	}
	if f.OccurredAfter != nil {
		where = append(where, squirrel.GtOrEq{"occurred_at": *f.OccurredAfter})
	}
	if f.OccurredBefore != nil {
		where = append(where, squirrel.Lt{"occurred_at": *f.OccurredBefore})
	}
	if text := strings.TrimSpace(f.TextQuery); text != "" {
		pattern := "%" + escapeLike(text) + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"notes": pattern},
			squirrel.ILike{"target_id::text": pattern},
			squirrel.ILike{"owner_display_name": pattern},
			squirrel.ILike{"actor_display_name": pattern},
		})
	}

	return where
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ---------------------------------------------------------------------------
// Mapping helpers: row -> domain
// ---------------------------------------------------------------------------

func scanRecord(row pgx.Row) (domain.ActionRecord, error) {
	var (
		rec               domain.ActionRecord
		targetKind, kind  string
		targetID, ownerID *uuid.UUID
		ownerName         string
		occurredAt        time.Time
		meta              []byte
	)

	err := row.Scan(
		&rec.ID, &rec.Seq, &rec.ActorID, &rec.ActorDisplayName, &targetKind, &targetID,
		&ownerID, &ownerName, &kind, &occurredAt, &rec.Notes, &meta,
	)
	if err != nil {
		return domain.ActionRecord{}, postgres.MapError(err, "action_record scan", nil)
	}

	rec.TargetKind = domain.TargetKind(targetKind)
	rec.TargetID = targetID
	rec.Kind = domain.ActionKind(kind)
	rec.OccurredAt = occurredAt.UTC()
	if ownerID != nil {
		rec.TargetOwner = domain.OwnerSnapshot{UserID: *ownerID, DisplayName: ownerName}
	}

	rec.Metadata, err = domain.DecodeMetadata(rec.Kind, meta)
	if err != nil {
		return domain.ActionRecord{}, fmt.Errorf("action_record %s: %w", rec.ID, err)
	}

	return rec, nil
}

package bulk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/heartmarshall/editorial-admin/internal/domain"
	"github.com/heartmarshall/editorial-admin/pkg/ctxutil"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

const cancelledDetail = "batch cancelled before item started"

// Execute applies in.Operation to every item in in.ItemIDs.
//
// Item failures never abort the batch; each is classified and reported in the
// result. Exactly one bulk_operation record is appended once all items have
// finished. If that append fails the result is still returned, together with
// an error wrapping domain.ErrUnaudited.
func (e *Executor) Execute(ctx context.Context, in ExecuteInput) (*domain.BulkOperationResult, error) {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	actor := domain.Actor{
		ID:          actorID,
		DisplayName: ctxutil.UserNameFromCtx(ctx),
		Role:        domain.UserRole(ctxutil.UserRoleFromCtx(ctx)),
	}

	if err := in.Validate(e.cfg.MaxItems); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Prepare runs first so a rejected operation does not spend the
	// single-use confirmation token.
	op := in.Operation
	if err := e.items.Prepare(ctx, op); err != nil {
		return nil, err
	}
	if e.gate.RequiresConfirmation(op.Kind, len(in.ItemIDs)) {
		if err := e.gate.Verify(ctx, in.ConfirmationToken, op, in.ItemIDs); err != nil {
			return nil, err
		}
	}

	operationID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate operation id: %w", err)
	}

	ctx, span := e.tracer.Start(ctx, "bulk.execute")
	defer span.End()
	span.SetAttributes(
		attribute.String("bulk.operation_id", operationID.String()),
		attribute.String("bulk.operation", op.Kind.String()),
		attribute.Int("bulk.item_count", len(in.ItemIDs)),
	)

	result := &domain.BulkOperationResult{
		OperationID:      operationID,
		Operation:        op,
		RequestedItemIDs: slices.Clone(in.ItemIDs),
		StartedAt:        e.clock().UTC(),
	}

	outcomes := e.run(ctx, actor, in.ItemIDs, op)

	result.SuccessfulItemIDs = make([]uuid.UUID, 0, len(in.ItemIDs))
	result.FailedItems = make([]domain.FailedItem, 0)
	for i, id := range in.ItemIDs {
		o := outcomes[i]
		if o.err == nil {
			result.SuccessfulItemIDs = append(result.SuccessfulItemIDs, id)
			e.metrics.ObserveItem(op.Kind, "succeeded")
			continue
		}
		result.FailedItems = append(result.FailedItems, domain.FailedItem{
			ItemID: id,
			Kind:   o.kind,
			Detail: o.err.Error(),
		})
		e.metrics.ObserveItem(op.Kind, o.kind.String())
	}
	result.FinishedAt = e.clock().UTC()
	e.metrics.ObserveBatch(op.Kind, result.FinishedAt.Sub(result.StartedAt))

	span.SetAttributes(
		attribute.Int("bulk.succeeded", result.SucceededCount()),
		attribute.Int("bulk.failed", result.FailedCount()),
	)

	// The items are done; the record is written even if the caller has gone.
	rec, err := e.audit.Append(context.WithoutCancel(ctx), e.batchDraft(actor, result))
	if err != nil {
		e.metrics.AuditWriteFailed(op.Kind)
		span.RecordError(err)
		span.SetStatus(codes.Error, "audit_write_failed")
		e.log.ErrorContext(ctx, "bulk operation applied but not audited",
			slog.String("operation_id", operationID.String()),
			slog.String("operation", op.String()),
			slog.Int("succeeded", result.SucceededCount()),
			slog.Int("failed", result.FailedCount()),
			slog.String("error", err.Error()),
		)
		return result, fmt.Errorf("bulk %s: %w: %w", operationID, domain.ErrUnaudited, err)
	}
	result.AuditRecordID = &rec.ID

	e.log.InfoContext(ctx, "bulk operation executed",
		slog.String("operation_id", operationID.String()),
		slog.String("operation", op.String()),
		slog.String("actor_id", actor.ID.String()),
		slog.Int("succeeded", result.SucceededCount()),
		slog.Int("failed", result.FailedCount()),
	)

	return result, nil
}

type outcome struct {
	err  error
	kind domain.FailureKind
}

// run dispatches items in input order to at most cfg.Workers goroutines.
// Each goroutine writes only its own slot of the returned slice.
func (e *Executor) run(ctx context.Context, actor domain.Actor, ids []uuid.UUID, op domain.Operation) []outcome {
	outcomes := make([]outcome, len(ids))

	var g errgroup.Group
	g.SetLimit(e.cfg.Workers)

	for i, id := range ids {
		if ctx.Err() != nil {
			outcomes[i] = outcome{err: errors.New(cancelledDetail), kind: domain.FailureTransient}
			continue
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				outcomes[i] = outcome{err: errors.New(cancelledDetail), kind: domain.FailureTransient}
				return nil
			}
			outcomes[i] = e.applyItem(ctx, actor, id, op)
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

// applyItem runs one mutation detached from the caller's cancellation but
// bounded by the per-item timeout.
func (e *Executor) applyItem(ctx context.Context, actor domain.Actor, id uuid.UUID, op domain.Operation) outcome {
	itemCtx := context.WithoutCancel(ctx)
	if e.cfg.ItemTimeout > 0 {
		var cancel context.CancelFunc
		itemCtx, cancel = context.WithTimeout(itemCtx, e.cfg.ItemTimeout)
		defer cancel()
	}

	err := e.items.Apply(itemCtx, actor, id, op)
	if err == nil {
		return outcome{}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(itemCtx.Err(), context.DeadlineExceeded) {
		return outcome{
			err:  fmt.Errorf("timed out after %s: %w", e.cfg.ItemTimeout, err),
			kind: domain.FailureTransient,
		}
	}
	return outcome{err: err, kind: domain.ClassifyFailure(err)}
}

func (e *Executor) batchDraft(actor domain.Actor, r *domain.BulkOperationResult) domain.ActionDraft {
	return domain.ActionDraft{
		ActorID:          actor.ID,
		ActorDisplayName: actor.DisplayName,
		TargetKind:       domain.TargetArticle,
		Kind:             domain.ActionBulkOperation,
		Notes:            fmt.Sprintf("%s on %d articles", r.Operation, len(r.RequestedItemIDs)),
		Metadata: domain.BulkOperationMetadata{
			OperationID:    r.OperationID,
			Operation:      r.Operation.Kind,
			ItemCount:      len(r.RequestedItemIDs),
			SucceededCount: r.SucceededCount(),
			FailedCount:    r.FailedCount(),
			ItemIDs:        slices.Clone(r.RequestedItemIDs),
			Parameters:     r.Operation.Parameters(),
		},
	}
}

// RetryableItems returns the ids of items that failed with a transient
// error, in input order. Resubmitting them is the caller's decision.
func RetryableItems(r *domain.BulkOperationResult) []uuid.UUID {
	if r == nil {
		return nil
	}
	var ids []uuid.UUID
	for _, f := range r.FailedItems {
		if f.Kind.Retryable() {
			ids = append(ids, f.ItemID)
		}
	}
	return ids
}

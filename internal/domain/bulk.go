package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// FailedItem is the outcome of one bulk item that did not succeed.
type FailedItem struct {
	ItemID uuid.UUID
	Kind   FailureKind
	Detail string
}

// BulkOperationResult is the outcome of one bulk invocation. Every requested
// id appears exactly once across SuccessfulItemIDs and FailedItems.
type BulkOperationResult struct {
	OperationID       uuid.UUID
	Operation         Operation
	RequestedItemIDs  []uuid.UUID
	SuccessfulItemIDs []uuid.UUID
	FailedItems       []FailedItem
	AuditRecordID     *uuid.UUID
	StartedAt         time.Time
	FinishedAt        time.Time
}

// SucceededCount returns the number of successful items.
func (r *BulkOperationResult) SucceededCount() int { return len(r.SuccessfulItemIDs) }

// FailedCount returns the number of failed items.
func (r *BulkOperationResult) FailedCount() int { return len(r.FailedItems) }

// ClassifyFailure maps a per-item error onto a failure kind. Unknown errors
// are treated as transient.
func ClassifyFailure(err error) FailureKind {
	switch {
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrUnauthorized):
		return FailurePermissionDenied
	case errors.Is(err, ErrNotFound):
		return FailureNotFound
	case errors.Is(err, ErrConflict), errors.Is(err, ErrAlreadyExists):
		return FailureConflict
	case errors.Is(err, ErrValidation):
		return FailureValidation
	}
	return FailureTransient
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// OwnerSnapshot is the owner of the target at the time of an action,
// denormalized because the owner may change later.
type OwnerSnapshot struct {
	UserID      uuid.UUID
	DisplayName string
}

// IsZero reports whether no owner was captured.
func (o OwnerSnapshot) IsZero() bool {
	return o.UserID == uuid.Nil
}

// ActionDraft is what a component submits to the audit log. Identity and
// timestamp are assigned by the log.
type ActionDraft struct {
	ActorID          uuid.UUID
	ActorDisplayName string
	TargetKind       TargetKind
	TargetID         *uuid.UUID // nil for batch records
	TargetOwner      OwnerSnapshot
	Kind             ActionKind
	Notes            string
	Metadata         Metadata
}

// Validate checks the draft against the action taxonomy.
func (d ActionDraft) Validate() error {
	var errs []FieldError

	if d.ActorID == uuid.Nil {
		errs = append(errs, FieldError{Field: "actor_id", Message: "required"})
	}
	if !d.TargetKind.IsValid() {
		errs = append(errs, FieldError{Field: "target_kind", Message: "invalid value"})
	}
	if !d.Kind.IsValid() {
		errs = append(errs, FieldError{Field: "action_kind", Message: "invalid value"})
	} else {
		if d.Kind != ActionBulkOperation && (d.TargetID == nil || *d.TargetID == uuid.Nil) {
			errs = append(errs, FieldError{Field: "target_id", Message: "required"})
		}
		errs = append(errs, ValidateMetadata(d.Kind, d.Metadata)...)
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// ActionRecord is one immutable fact about an administrative action.
type ActionRecord struct {
	ID               uuid.UUID
	Seq              int64
	ActorID          uuid.UUID
	ActorDisplayName string
	TargetKind       TargetKind
	TargetID         *uuid.UUID
	TargetOwner      OwnerSnapshot
	Kind             ActionKind
	OccurredAt       time.Time
	Notes            string
	Metadata         Metadata
}

// AuditFilter narrows an audit query. Nil fields do not filter.
// OccurredAfter is inclusive, OccurredBefore exclusive.
type AuditFilter struct {
	ActorID        *uuid.UUID
	TargetID       *uuid.UUID
	Kind           *ActionKind
	OccurredAfter  *time.Time
	OccurredBefore *time.Time
	TextQuery      string
	Offset         int
	Limit          int
}

// AuditPage is one page of query results, newest first.
type AuditPage struct {
	Records []ActionRecord
	Total   int
}

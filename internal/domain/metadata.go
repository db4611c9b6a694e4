package domain

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Metadata is the typed payload of an action record. Each ActionKind has
// exactly one metadata variant; the set is closed to this package.
type Metadata interface {
	Kind() ActionKind
	validate() []FieldError
}

// ViewMetadata carries no fields.
type ViewMetadata struct{}

// EditMetadata describes a saved content version.
type EditMetadata struct {
	VersionNumber int  `json:"version_number"`
	AutoSave      bool `json:"autosave,omitempty"`
}

// StatusChangeMetadata describes a workflow status transition.
type StatusChangeMetadata struct {
	PreviousStatus ArticleStatus `json:"previous_status"`
	NewStatus      ArticleStatus `json:"new_status"`
}

// OwnershipTransferMetadata describes a change of article owner.
type OwnershipTransferMetadata struct {
	PreviousOwnerID uuid.UUID `json:"previous_owner_id"`
	NewOwnerID      uuid.UUID `json:"new_owner_id"`
	Reason          string    `json:"reason,omitempty"`
}

// DeleteMetadata describes a soft delete.
type DeleteMetadata struct {
	PreviousStatus ArticleStatus `json:"previous_status,omitempty"`
}

// RestoreMetadata links a restore-created version to its source.
type RestoreMetadata struct {
	RestoredFromVersion int `json:"restored_from_version"`
	NewVersion          int `json:"new_version"`
}

// ExportMetadata describes an export of article content.
type ExportMetadata struct {
	Format ExportFormat `json:"format,omitempty"`
}

// CommentAddMetadata references a newly added comment.
type CommentAddMetadata struct {
	CommentID uuid.UUID `json:"comment_id"`
}

// CommentResolveMetadata references a resolved comment.
type CommentResolveMetadata struct {
	CommentID uuid.UUID `json:"comment_id"`
}

// BulkOperationMetadata summarizes one bulk invocation. Per-item failure
// detail is not retained here; it lives in BulkOperationResult.
type BulkOperationMetadata struct {
	OperationID    uuid.UUID         `json:"operation_id"`
	Operation      OperationKind     `json:"operation"`
	ItemCount      int               `json:"item_count"`
	SucceededCount int               `json:"succeeded_count"`
	FailedCount    int               `json:"failed_count"`
	ItemIDs        []uuid.UUID       `json:"item_ids,omitempty"`
	Parameters     map[string]string `json:"parameters,omitempty"`
}

func (ViewMetadata) Kind() ActionKind              { return ActionView }
func (EditMetadata) Kind() ActionKind              { return ActionEdit }
func (StatusChangeMetadata) Kind() ActionKind      { return ActionStatusChange }
func (OwnershipTransferMetadata) Kind() ActionKind { return ActionOwnershipTransfer }
func (DeleteMetadata) Kind() ActionKind            { return ActionDelete }
func (RestoreMetadata) Kind() ActionKind           { return ActionRestore }
func (ExportMetadata) Kind() ActionKind            { return ActionExport }
func (CommentAddMetadata) Kind() ActionKind        { return ActionCommentAdd }
func (CommentResolveMetadata) Kind() ActionKind    { return ActionCommentResolve }
func (BulkOperationMetadata) Kind() ActionKind     { return ActionBulkOperation }

func (ViewMetadata) validate() []FieldError { return nil }

func (m EditMetadata) validate() []FieldError {
	if m.VersionNumber < 1 {
		return []FieldError{{Field: "metadata.version_number", Message: "must be at least 1"}}
	}
	return nil
}

func (m StatusChangeMetadata) validate() []FieldError {
	var errs []FieldError
	if !m.PreviousStatus.IsValid() {
		errs = append(errs, FieldError{Field: "metadata.previous_status", Message: "invalid value"})
	}
	if !m.NewStatus.IsValid() {
		errs = append(errs, FieldError{Field: "metadata.new_status", Message: "invalid value"})
	}
	return errs
}

func (m OwnershipTransferMetadata) validate() []FieldError {
	var errs []FieldError
	if m.PreviousOwnerID == uuid.Nil {
		errs = append(errs, FieldError{Field: "metadata.previous_owner_id", Message: "required"})
	}
	if m.NewOwnerID == uuid.Nil {
		errs = append(errs, FieldError{Field: "metadata.new_owner_id", Message: "required"})
	}
	return errs
}

func (m DeleteMetadata) validate() []FieldError {
	if m.PreviousStatus != "" && !m.PreviousStatus.IsValid() {
		return []FieldError{{Field: "metadata.previous_status", Message: "invalid value"}}
	}
	return nil
}

func (m RestoreMetadata) validate() []FieldError {
	var errs []FieldError
	if m.RestoredFromVersion < 1 {
		errs = append(errs, FieldError{Field: "metadata.restored_from_version", Message: "must be at least 1"})
	}
	if m.NewVersion <= m.RestoredFromVersion {
		errs = append(errs, FieldError{Field: "metadata.new_version", Message: "must be greater than restored_from_version"})
	}
	return errs
}

func (m ExportMetadata) validate() []FieldError {
	if m.Format != "" && !m.Format.IsValid() {
		return []FieldError{{Field: "metadata.format", Message: "invalid value"}}
	}
	return nil
}

func (m CommentAddMetadata) validate() []FieldError {
	if m.CommentID == uuid.Nil {
		return []FieldError{{Field: "metadata.comment_id", Message: "required"}}
	}
	return nil
}

func (m CommentResolveMetadata) validate() []FieldError {
	if m.CommentID == uuid.Nil {
		return []FieldError{{Field: "metadata.comment_id", Message: "required"}}
	}
	return nil
}

func (m BulkOperationMetadata) validate() []FieldError {
	var errs []FieldError
	if m.OperationID == uuid.Nil {
		errs = append(errs, FieldError{Field: "metadata.operation_id", Message: "required"})
	}
	if !m.Operation.IsValid() {
		errs = append(errs, FieldError{Field: "metadata.operation", Message: "invalid value"})
	}
	if m.ItemCount < 1 {
		errs = append(errs, FieldError{Field: "metadata.item_count", Message: "must be at least 1"})
	}
	if m.SucceededCount < 0 || m.FailedCount < 0 || m.SucceededCount+m.FailedCount > m.ItemCount {
		errs = append(errs, FieldError{Field: "metadata.succeeded_count", Message: "counts exceed item_count"})
	}
	return errs
}

// ValidateMetadata checks that m is the variant required by kind and that
// its required fields are present.
func ValidateMetadata(kind ActionKind, m Metadata) []FieldError {
	if m == nil {
		if kind == ActionView {
			return nil
		}
		return []FieldError{{Field: "metadata", Message: "required for " + kind.String()}}
	}
	if m.Kind() != kind {
		return []FieldError{{Field: "metadata", Message: fmt.Sprintf("%s payload does not match action %s", m.Kind(), kind)}}
	}
	return m.validate()
}

// EncodeMetadata serializes metadata for storage.
func EncodeMetadata(m Metadata) ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode %s metadata: %w", m.Kind(), err)
	}
	return b, nil
}

// DecodeMetadata restores the metadata variant for kind from its stored form.
func DecodeMetadata(kind ActionKind, raw []byte) (Metadata, error) {
	var (
		m   Metadata
		err error
	)

	switch kind {
	case ActionView:
		return ViewMetadata{}, nil
	case ActionEdit:
		m, err = decodeInto[EditMetadata](raw)
	case ActionStatusChange:
		m, err = decodeInto[StatusChangeMetadata](raw)
	case ActionOwnershipTransfer:
		m, err = decodeInto[OwnershipTransferMetadata](raw)
	case ActionDelete:
		m, err = decodeInto[DeleteMetadata](raw)
	case ActionRestore:
		m, err = decodeInto[RestoreMetadata](raw)
	case ActionExport:
		m, err = decodeInto[ExportMetadata](raw)
	case ActionCommentAdd:
		m, err = decodeInto[CommentAddMetadata](raw)
	case ActionCommentResolve:
		m, err = decodeInto[CommentResolveMetadata](raw)
	case ActionBulkOperation:
		m, err = decodeInto[BulkOperationMetadata](raw)
	default:
		return nil, fmt.Errorf("decode metadata: unknown action kind %q", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s metadata: %w", kind, err)
	}
	return m, nil
}

func decodeInto[T Metadata](raw []byte) (Metadata, error) {
	var v T
	if len(raw) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

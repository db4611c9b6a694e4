package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/editorial-admin/internal/domain"
	"github.com/heartmarshall/editorial-admin/internal/service/bulk"
)

type operationRequest struct {
	Kind       string `json:"kind"                   validate:"required,oneof=set_status delete export transfer_ownership"`
	NewStatus  string `json:"new_status,omitempty"   validate:"omitempty,oneof=draft in_review final published archived"`
	NewOwnerID string `json:"new_owner_id,omitempty" validate:"omitempty,uuid"`
	Format     string `json:"format,omitempty"       validate:"omitempty,oneof=ndjson"`
}

func (o operationRequest) toDomain() domain.Operation {
	owner, _ := uuid.Parse(o.NewOwnerID)
	return domain.Operation{
		Kind:       domain.OperationKind(o.Kind),
		NewStatus:  domain.ArticleStatus(o.NewStatus),
		NewOwnerID: owner,
		Format:     domain.ExportFormat(o.Format),
	}
}

type operationResponse struct {
	Kind       domain.OperationKind `json:"kind"`
	Parameters map[string]string    `json:"parameters,omitempty"`
}

func toOperationResponse(op domain.Operation) operationResponse {
	return operationResponse{Kind: op.Kind, Parameters: op.Parameters()}
}

type confirmationRequest struct {
	Operation operationRequest `json:"operation"`
	ItemIDs   []string         `json:"item_ids" validate:"required,min=1"`
}

type impactResponse struct {
	Operation            operationResponse `json:"operation"`
	TargetCount          int               `json:"target_count"`
	Description          string            `json:"description"`
	RequiresConfirmation bool              `json:"requires_confirmation"`
	Token                string            `json:"confirmation_token,omitempty"`
	ExpiresAt            *time.Time        `json:"expires_at,omitempty"`
}

func toImpactResponse(s domain.ImpactSummary) impactResponse {
	return impactResponse{
		Operation:            toOperationResponse(s.Operation),
		TargetCount:          s.TargetCount,
		Description:          s.Description,
		RequiresConfirmation: s.RequiresConfirmation,
		Token:                s.Token,
		ExpiresAt:            s.ExpiresAt,
	}
}

type bulkRequest struct {
	ItemIDs           []string         `json:"item_ids"                     validate:"required,min=1"`
	Operation         operationRequest `json:"operation"`
	ConfirmationToken string           `json:"confirmation_token,omitempty"`
}

type failedItemResponse struct {
	ItemID    uuid.UUID          `json:"item_id"`
	Kind      domain.FailureKind `json:"kind"`
	Detail    string             `json:"detail,omitempty"`
	Retryable bool               `json:"retryable"`
}

type bulkResultResponse struct {
	OperationID       uuid.UUID            `json:"operation_id"`
	Operation         operationResponse    `json:"operation"`
	RequestedCount    int                  `json:"requested_count"`
	SucceededCount    int                  `json:"succeeded_count"`
	FailedCount       int                  `json:"failed_count"`
	SuccessfulItemIDs []uuid.UUID          `json:"successful_item_ids"`
	FailedItems       []failedItemResponse `json:"failed_items"`
	RetryableItemIDs  []uuid.UUID          `json:"retryable_item_ids"`
	AuditRecordID     *uuid.UUID           `json:"audit_record_id"`
	StartedAt         time.Time            `json:"started_at"`
	FinishedAt        time.Time            `json:"finished_at"`
}

func toBulkResultResponse(r *domain.BulkOperationResult) bulkResultResponse {
	failed := make([]failedItemResponse, 0, len(r.FailedItems))
	for _, f := range r.FailedItems {
		failed = append(failed, failedItemResponse{
			ItemID:    f.ItemID,
			Kind:      f.Kind,
			Detail:    f.Detail,
			Retryable: f.Kind.Retryable(),
		})
	}
	succeeded := r.SuccessfulItemIDs
	if succeeded == nil {
		succeeded = []uuid.UUID{}
	}
	retryable := bulk.RetryableItems(r)
	if retryable == nil {
		retryable = []uuid.UUID{}
	}

	return bulkResultResponse{
		OperationID:       r.OperationID,
		Operation:         toOperationResponse(r.Operation),
		RequestedCount:    len(r.RequestedItemIDs),
		SucceededCount:    r.SucceededCount(),
		FailedCount:       r.FailedCount(),
		SuccessfulItemIDs: succeeded,
		FailedItems:       failed,
		RetryableItemIDs:  retryable,
		AuditRecordID:     r.AuditRecordID,
		StartedAt:         r.StartedAt,
		FinishedAt:        r.FinishedAt,
	}
}

type snapshotRequest struct {
	Content  string `json:"content"            validate:"required"`
	Summary  string `json:"summary,omitempty"  validate:"max=500"`
	AutoSave bool   `json:"auto_save,omitempty"`
}

type restoreRequest struct {
	TargetVersion *int `json:"target_version" validate:"required"`
}

type versionResponse struct {
	ArticleID        uuid.UUID            `json:"article_id"`
	VersionNumber    int                  `json:"version_number"`
	Content          string               `json:"content"`
	CreatedBy        uuid.UUID            `json:"created_by"`
	CreatedAt        time.Time            `json:"created_at"`
	StatusAtSnapshot domain.ArticleStatus `json:"status_at_snapshot"`
	ChangeSummary    string               `json:"change_summary,omitempty"`
	RestoredFrom     *int                 `json:"restored_from,omitempty"`
}

func toVersionResponse(v domain.ArticleVersion) versionResponse {
	return versionResponse{
		ArticleID:        v.ArticleID,
		VersionNumber:    v.VersionNumber,
		Content:          string(v.Content),
		CreatedBy:        v.CreatedBy,
		CreatedAt:        v.CreatedAt,
		StatusAtSnapshot: v.StatusAtSnapshot,
		ChangeSummary:    v.ChangeSummary,
		RestoredFrom:     v.RestoredFrom,
	}
}

type transferRequest struct {
	CurrentOwnerID    string `json:"current_owner_id"             validate:"required,uuid"`
	ProposedOwnerID   string `json:"proposed_owner_id"            validate:"required,uuid"`
	Reason            string `json:"reason,omitempty"             validate:"max=1000"`
	ConfirmationToken string `json:"confirmation_token,omitempty"`
}

type identityResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	Email       string    `json:"email,omitempty"`
	DisplayName string    `json:"display_name,omitempty"`
}

type transferResponse struct {
	ArticleID     uuid.UUID        `json:"article_id"`
	PreviousOwner identityResponse `json:"previous_owner"`
	NewOwner      identityResponse `json:"new_owner"`
	AuditRecordID uuid.UUID        `json:"audit_record_id"`
	TransferredAt time.Time        `json:"transferred_at"`
}

func toIdentityResponse(i domain.Identity) identityResponse {
	return identityResponse{UserID: i.UserID, Email: i.Email, DisplayName: i.DisplayName}
}

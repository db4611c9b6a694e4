package domain

import (
	"time"

	"github.com/google/uuid"
)

// OwnershipTransferRequest is a single proposed change of owner.
type OwnershipTransferRequest struct {
	ArticleID         uuid.UUID
	CurrentOwnerID    uuid.UUID
	ProposedOwnerID   uuid.UUID
	Reason            string
	ConfirmationToken string
}

// TransferOutcome describes an applied ownership transfer.
type TransferOutcome struct {
	ArticleID     uuid.UUID
	PreviousOwner Identity
	NewOwner      Identity
	Record        ActionRecord
	TransferredAt time.Time
}

package rest

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/editorial-admin/internal/domain"
)

// TransferOwnership hands an article to a new owner.
// POST /admin/articles/{id}/transfer
func (h *AdminHandler) TransferOwnership(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req transferRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out, err := h.ownership.Transfer(r.Context(), domain.OwnershipTransferRequest{
		ArticleID:         articleID,
		CurrentOwnerID:    uuid.MustParse(req.CurrentOwnerID),
		ProposedOwnerID:   uuid.MustParse(req.ProposedOwnerID),
		Reason:            req.Reason,
		ConfirmationToken: req.ConfirmationToken,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, transferResponse{
		ArticleID:     out.ArticleID,
		PreviousOwner: toIdentityResponse(out.PreviousOwner),
		NewOwner:      toIdentityResponse(out.NewOwner),
		AuditRecordID: out.Record.ID,
		TransferredAt: out.TransferredAt,
	})
}

package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/editorial-admin/internal/domain"
	"github.com/heartmarshall/editorial-admin/internal/service/bulk"
)

type unauditedResponse struct {
	Error  string             `json:"error"`
	Result bulkResultResponse `json:"result"`
}

// Describe returns the impact summary of an operation and, when required,
// a confirmation token bound to the caller, operation and targets.
// POST /admin/confirmations
func (h *AdminHandler) Describe(w http.ResponseWriter, r *http.Request) {
	var req confirmationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	ids, errs := parseUUIDs("item_ids", req.ItemIDs)
	if len(errs) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(errs))
		return
	}

	summary, err := h.confirm.Describe(r.Context(), req.Operation.toDomain(), ids)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toImpactResponse(summary))
}

// ExecuteBulk applies one operation to many articles.
// POST /admin/bulk
func (h *AdminHandler) ExecuteBulk(w http.ResponseWriter, r *http.Request) {
	var req bulkRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	ids, errs := parseUUIDs("item_ids", req.ItemIDs)
	if len(errs) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(errs))
		return
	}

	result, err := h.bulk.Execute(r.Context(), bulk.ExecuteInput{
		ItemIDs:           ids,
		Operation:         req.Operation.toDomain(),
		ConfirmationToken: req.ConfirmationToken,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUnaudited) && result != nil {
			h.log.ErrorContext(r.Context(), "bulk operation not audited",
				slog.String("operation_id", result.OperationID.String()),
				slog.String("error", err.Error()),
			)
			writeJSON(w, http.StatusInternalServerError, unauditedResponse{
				Error:  "operation applied but audit record could not be written",
				Result: toBulkResultResponse(result),
			})
			return
		}
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toBulkResultResponse(result))
}

package bulk

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/heartmarshall/editorial-admin/internal/domain"
)

// ExecuteInput holds the parameters of one bulk invocation.
type ExecuteInput struct {
	ItemIDs           []uuid.UUID
	Operation         domain.Operation
	ConfirmationToken string
}

// Validate checks all fields and collects all errors.
func (i ExecuteInput) Validate(maxItems int) error {
	var errs []domain.FieldError

	switch {
	case len(i.ItemIDs) == 0:
		errs = append(errs, domain.FieldError{Field: "item_ids", Message: "required"})
	case maxItems > 0 && len(i.ItemIDs) > maxItems:
		errs = append(errs, domain.FieldError{Field: "item_ids", Message: fmt.Sprintf("max %d items", maxItems)})
	}

	seen := make(map[uuid.UUID]struct{}, len(i.ItemIDs))
	for idx, id := range i.ItemIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("item_ids[%d]", idx), Message: "required"})
			continue
		}
		if _, dup := seen[id]; dup {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("item_ids[%d]", idx), Message: "duplicate id"})
			continue
		}
		seen[id] = struct{}{}
	}

	errs = append(errs, i.Operation.Validate()...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

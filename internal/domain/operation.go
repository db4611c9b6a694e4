package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Operation is one per-item mutation together with its parameters.
type Operation struct {
	Kind       OperationKind
	NewStatus  ArticleStatus // set_status
	NewOwnerID uuid.UUID     // transfer_ownership
	Format     ExportFormat  // export
}

// SetStatus builds a set_status operation.
func SetStatus(status ArticleStatus) Operation {
	return Operation{Kind: OperationSetStatus, NewStatus: status}
}

// Delete builds a delete operation.
func Delete() Operation {
	return Operation{Kind: OperationDelete}
}

// Export builds an export operation.
func Export(format ExportFormat) Operation {
	return Operation{Kind: OperationExport, Format: format}
}

// TransferOwnership builds a transfer_ownership operation.
func TransferOwnership(newOwner uuid.UUID) Operation {
	return Operation{Kind: OperationTransferOwnership, NewOwnerID: newOwner}
}

// Validate checks that the parameters required by the kind are present.
func (o Operation) Validate() []FieldError {
	var errs []FieldError
	switch o.Kind {
	case OperationSetStatus:
		if !o.NewStatus.IsValid() {
			errs = append(errs, FieldError{Field: "operation.new_status", Message: "invalid value"})
		}
	case OperationTransferOwnership:
		if o.NewOwnerID == uuid.Nil {
			errs = append(errs, FieldError{Field: "operation.new_owner_id", Message: "required"})
		}
	case OperationExport:
		if o.Format != "" && !o.Format.IsValid() {
			errs = append(errs, FieldError{Field: "operation.format", Message: "invalid value"})
		}
	case OperationDelete:
	default:
		errs = append(errs, FieldError{Field: "operation.kind", Message: "invalid value"})
	}
	return errs
}

// Parameters returns the operation parameters as flat strings for the audit
// trail and for binding confirmation tokens.
func (o Operation) Parameters() map[string]string {
	switch o.Kind {
	case OperationSetStatus:
		return map[string]string{"new_status": o.NewStatus.String()}
	case OperationTransferOwnership:
		return map[string]string{"new_owner_id": o.NewOwnerID.String()}
	case OperationExport:
		f := o.Format
		if f == "" {
			f = ExportFormatNDJSON
		}
		return map[string]string{"format": f.String()}
	}
	return nil
}

func (o Operation) String() string {
	switch o.Kind {
	case OperationSetStatus:
		return fmt.Sprintf("set_status(%s)", o.NewStatus)
	case OperationTransferOwnership:
		return fmt.Sprintf("transfer_ownership(%s)", o.NewOwnerID)
	case OperationExport:
		if o.Format != "" {
			return fmt.Sprintf("export(%s)", o.Format)
		}
	}
	return o.Kind.String()
}

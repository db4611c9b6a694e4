package domain

// ActionKind is the closed set of administrative actions that can be recorded.
type ActionKind string

const (
	ActionView              ActionKind = "view"
	ActionEdit              ActionKind = "edit"
	ActionStatusChange      ActionKind = "status_change"
	ActionOwnershipTransfer ActionKind = "ownership_transfer"
	ActionDelete            ActionKind = "delete"
	ActionRestore           ActionKind = "restore"
	ActionExport            ActionKind = "export"
	ActionCommentAdd        ActionKind = "comment_add"
	ActionCommentResolve    ActionKind = "comment_resolve"
	ActionBulkOperation     ActionKind = "bulk_operation"
)

func (k ActionKind) String() string { return string(k) }

func (k ActionKind) IsValid() bool {
	switch k {
	case ActionView, ActionEdit, ActionStatusChange, ActionOwnershipTransfer,
		ActionDelete, ActionRestore, ActionExport, ActionCommentAdd,
		ActionCommentResolve, ActionBulkOperation:
		return true
	}
	return false
}

// AllActionKinds lists every recordable action kind.
func AllActionKinds() []ActionKind {
	return []ActionKind{
		ActionView, ActionEdit, ActionStatusChange, ActionOwnershipTransfer,
		ActionDelete, ActionRestore, ActionExport, ActionCommentAdd,
		ActionCommentResolve, ActionBulkOperation,
	}
}

// TargetKind identifies the kind of entity an action was taken against.
type TargetKind string

const (
	TargetArticle TargetKind = "article"
)

func (k TargetKind) String() string { return string(k) }

func (k TargetKind) IsValid() bool {
	return k == TargetArticle
}

// ArticleStatus is the editorial workflow state of an article.
type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "draft"
	ArticleStatusInReview  ArticleStatus = "in_review"
	ArticleStatusFinal     ArticleStatus = "final"
	ArticleStatusPublished ArticleStatus = "published"
	ArticleStatusArchived  ArticleStatus = "archived"
)

func (s ArticleStatus) String() string { return string(s) }

func (s ArticleStatus) IsValid() bool {
	switch s {
	case ArticleStatusDraft, ArticleStatusInReview, ArticleStatusFinal,
		ArticleStatusPublished, ArticleStatusArchived:
		return true
	}
	return false
}

// OperationKind is a per-item mutation supported by the bulk executor.
type OperationKind string

const (
	OperationSetStatus         OperationKind = "set_status"
	OperationDelete            OperationKind = "delete"
	OperationExport            OperationKind = "export"
	OperationTransferOwnership OperationKind = "transfer_ownership"
)

func (k OperationKind) String() string { return string(k) }

func (k OperationKind) IsValid() bool {
	switch k {
	case OperationSetStatus, OperationDelete, OperationExport, OperationTransferOwnership:
		return true
	}
	return false
}

// ActionKind returns the action kind a single application of the operation
// corresponds to.
func (k OperationKind) ActionKind() ActionKind {
	switch k {
	case OperationSetStatus:
		return ActionStatusChange
	case OperationDelete:
		return ActionDelete
	case OperationExport:
		return ActionExport
	case OperationTransferOwnership:
		return ActionOwnershipTransfer
	}
	return ""
}

// FailureKind classifies why a single bulk item failed.
type FailureKind string

const (
	FailurePermissionDenied FailureKind = "permission_denied"
	FailureNotFound         FailureKind = "not_found"
	FailureConflict         FailureKind = "conflict"
	FailureValidation       FailureKind = "validation"
	FailureTransient        FailureKind = "transient_error"
)

func (k FailureKind) String() string { return string(k) }

func (k FailureKind) IsValid() bool {
	switch k {
	case FailurePermissionDenied, FailureNotFound, FailureConflict, FailureValidation, FailureTransient:
		return true
	}
	return false
}

// Retryable reports whether a caller may resubmit an item that failed this way.
func (k FailureKind) Retryable() bool {
	return k == FailureTransient
}

// VersionOrder selects the ordering of a version listing.
type VersionOrder string

const (
	VersionOrderOldestFirst VersionOrder = "oldest_first"
	VersionOrderNewestFirst VersionOrder = "newest_first"
)

func (o VersionOrder) String() string { return string(o) }

func (o VersionOrder) IsValid() bool {
	return o == VersionOrderOldestFirst || o == VersionOrderNewestFirst
}

// ExportFormat is the serialization used by the export operation.
type ExportFormat string

const (
	ExportFormatNDJSON ExportFormat = "ndjson"
)

func (f ExportFormat) String() string { return string(f) }

func (f ExportFormat) IsValid() bool {
	return f == ExportFormatNDJSON
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleEditor UserRole = "editor"
	UserRoleAdmin  UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleEditor, UserRoleAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether the role carries administrative privileges.
func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

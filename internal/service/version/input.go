package version

import (
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/heartmarshall/editorial-admin/internal/domain"
)

const maxSummaryLen = 500

// SnapshotInput holds the parameters for recording a new version.
type SnapshotInput struct {
	ArticleID uuid.UUID
	Content   []byte
	Summary   string
	AutoSave  bool
}

// Validate checks all fields and collects all errors.
func (i SnapshotInput) Validate() error {
	var errs []domain.FieldError

	if i.ArticleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "article_id", Message: "required"})
	}
	if i.Content == nil {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if utf8.RuneCountInString(i.Summary) > maxSummaryLen {
		errs = append(errs, domain.FieldError{Field: "summary", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RestoreInput holds the parameters for restoring an earlier version. A
// TargetVersion that does not exist, zero and negatives included, is not found.
type RestoreInput struct {
	ArticleID     uuid.UUID
	TargetVersion int
}

// Validate checks all fields and collects all errors.
func (i RestoreInput) Validate() error {
	var errs []domain.FieldError

	if i.ArticleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "article_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

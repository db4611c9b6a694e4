package audit

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/editorial-admin/internal/domain"
)

// Query returns one page of matching records, newest first, and the total
// number of matches.
func (s *Service) Query(ctx context.Context, f domain.AuditFilter) (domain.AuditPage, error) {
	f, err := s.normalizeFilter(f)
	if err != nil {
		return domain.AuditPage{}, err
	}

	page, err := s.store.Query(ctx, f)
	if err != nil {
		return domain.AuditPage{}, fmt.Errorf("query action records: %w", err)
	}
	if page.Records == nil {
		page.Records = []domain.ActionRecord{}
	}
	return page, nil
}

// Export streams every matching record, oldest first, to fn. Offset and limit
// are ignored.
func (s *Service) Export(ctx context.Context, f domain.AuditFilter, fn func(domain.ActionRecord) error) error {
	f.Offset, f.Limit = 0, 0
	if errs := validateFilter(f); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	f.TextQuery = strings.TrimSpace(f.TextQuery)

	if err := s.store.Stream(ctx, f, fn); err != nil {
		return fmt.Errorf("stream action records: %w", err)
	}
	return nil
}

func (s *Service) normalizeFilter(f domain.AuditFilter) (domain.AuditFilter, error) {
	errs := validateFilter(f)
	if f.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if f.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return f, domain.NewValidationErrors(errs)
	}

	if f.Limit == 0 {
		f.Limit = s.cfg.DefaultLimit
	}
	if f.Limit > s.cfg.MaxLimit {
		f.Limit = s.cfg.MaxLimit
	}
	f.TextQuery = strings.TrimSpace(f.TextQuery)
	return f, nil
}

func validateFilter(f domain.AuditFilter) []domain.FieldError {
	var errs []domain.FieldError
	if f.Kind != nil && !f.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "action_kind", Message: "invalid value"})
	}
	if f.OccurredAfter != nil && f.OccurredBefore != nil && !f.OccurredAfter.Before(*f.OccurredBefore) {
		errs = append(errs, domain.FieldError{Field: "occurred_before", Message: "must be after occurred_after"})
	}
	if len(f.TextQuery) > 200 {
		errs = append(errs, domain.FieldError{Field: "q", Message: "max 200 characters"})
	}
	return errs
}

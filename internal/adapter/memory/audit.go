// Package memory provides in-process stores for tests and local wiring.
// They follow the same contracts as the Postgres repositories.
package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/editorial-admin/internal/domain"
)

// AuditStore is an append-only in-memory action record store.
type AuditStore struct {
	mu      sync.RWMutex
	records []domain.ActionRecord
	seq     int64
}

// NewAuditStore creates an empty AuditStore.
func NewAuditStore() *AuditStore {
	return &AuditStore{}
}

// Append stores rec and assigns its sequence number.
func (s *AuditStore) Append(ctx context.Context, rec domain.ActionRecord) (domain.ActionRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.ActionRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.records {
		if r.ID == rec.ID {
			return domain.ActionRecord{}, domain.ErrAlreadyExists
		}
	}
	s.seq++
	rec.Seq = s.seq
	s.records = append(s.records, rec)
	return rec, nil
}

// Query returns one page of matching records, newest first.
func (s *AuditStore) Query(ctx context.Context, f domain.AuditFilter) (domain.AuditPage, error) {
	if err := ctx.Err(); err != nil {
		return domain.AuditPage{}, err
	}

	matched := s.match(f)
	slices.SortFunc(matched, func(a, b domain.ActionRecord) int {
		if c := b.OccurredAt.Compare(a.OccurredAt); c != 0 {
			return c
		}
		return cmp.Compare(b.Seq, a.Seq)
	})

	page := domain.AuditPage{Total: len(matched), Records: []domain.ActionRecord{}}
	if f.Offset >= len(matched) {
		return page, nil
	}
	end := len(matched)
	if f.Limit > 0 && f.Offset+f.Limit < end {
		end = f.Offset + f.Limit
	}
	page.Records = matched[f.Offset:end]
	return page, nil
}

// Stream calls fn for every matching record, oldest first.
func (s *AuditStore) Stream(ctx context.Context, f domain.AuditFilter, fn func(domain.ActionRecord) error) error {
	matched := s.match(f)
	slices.SortFunc(matched, func(a, b domain.ActionRecord) int {
		if c := a.OccurredAt.Compare(b.OccurredAt); c != 0 {
			return c
		}
		return cmp.Compare(a.Seq, b.Seq)
	})

	for _, r := range matched {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(r); err != nil {
			return err
		}
	}
	return nil
}

func (s *AuditStore) match(f domain.AuditFilter) []domain.ActionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(f.TextQuery)
	var out []domain.ActionRecord
	for _, r := range s.records {
		if f.ActorID != nil && r.ActorID != *f.ActorID {
			continue
		}
		if f.TargetID != nil && !targets(r, *f.TargetID) {
			continue
		}
		if f.Kind != nil && r.Kind != *f.Kind {
			continue
		}
		if f.OccurredAfter != nil && r.OccurredAt.Before(*f.OccurredAfter) {
			continue
		}
		if f.OccurredBefore != nil && !r.OccurredAt.Before(*f.OccurredBefore) {
			continue
		}
		if q != "" && !containsText(r, q) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// targets reports whether r is about id, directly or as a bulk item.
func targets(r domain.ActionRecord, id uuid.UUID) bool {
	if r.TargetID != nil && *r.TargetID == id {
		return true
	}
	if m, ok := r.Metadata.(domain.BulkOperationMetadata); ok {
		return slices.Contains(m.ItemIDs, id)
	}
	return false
}

func containsText(r domain.ActionRecord, q string) bool {
	fields := []string{r.Notes, r.TargetOwner.DisplayName, r.ActorDisplayName}
	if r.TargetID != nil {
		fields = append(fields, r.TargetID.String())
	}
	for _, s := range fields {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

package rest

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/editorial-admin/internal/adapter/export"
	"github.com/heartmarshall/editorial-admin/internal/domain"
)

type auditPageResponse struct {
	Records []export.Record `json:"records"`
	Total   int             `json:"total"`
	Offset  int             `json:"offset"`
}

// QueryAudit returns audit records matching the query filters, newest first.
// GET /admin/audit?actor_id=&target_id=&action_kind=&occurred_after=&occurred_before=&q=&offset=&limit=
func (h *AdminHandler) QueryAudit(w http.ResponseWriter, r *http.Request) {
	f, err := parseAuditFilter(r.URL.Query())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := h.audit.Query(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	records := make([]export.Record, 0, len(page.Records))
	for _, rec := range page.Records {
		out, err := export.FromRecord(rec)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		records = append(records, out)
	}

	writeJSON(w, http.StatusOK, auditPageResponse{
		Records: records,
		Total:   page.Total,
		Offset:  f.Offset,
	})
}

func parseAuditFilter(q url.Values) (domain.AuditFilter, error) {
	var (
		f    domain.AuditFilter
		errs []domain.FieldError
	)

	parseID := func(key string) *uuid.UUID {
		v := q.Get(key)
		if v == "" {
			return nil
		}
		id, err := uuid.Parse(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: key, Message: "must be a UUID"})
			return nil
		}
		return &id
	}
	parseWhen := func(key string) *time.Time {
		v := q.Get(key)
		if v == "" {
			return nil
		}
		t, err := parseTime(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: key, Message: "must be RFC 3339 or YYYY-MM-DD"})
			return nil
		}
		return &t
	}
	parseInt := func(key string) int {
		v := q.Get(key)
		if v == "" {
			return 0
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: key, Message: "must be an integer"})
			return 0
		}
		return n
	}

	f.ActorID = parseID("actor_id")
	f.TargetID = parseID("target_id")
	if v := q.Get("action_kind"); v != "" {
		kind := domain.ActionKind(v)
		f.Kind = &kind
	}
	f.OccurredAfter = parseWhen("occurred_after")
	f.OccurredBefore = parseWhen("occurred_before")
	f.TextQuery = q.Get("q")
	f.Offset = parseInt("offset")
	f.Limit = parseInt("limit")

	if len(errs) > 0 {
		return domain.AuditFilter{}, domain.NewValidationErrors(errs)
	}
	return f, nil
}

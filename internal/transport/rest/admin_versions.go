package rest

import (
	"net/http"

	"github.com/heartmarshall/editorial-admin/internal/domain"
	"github.com/heartmarshall/editorial-admin/internal/service/version"
)

type versionListResponse struct {
	Versions []versionResponse `json:"versions"`
}

// ListVersions returns every version of an article.
// GET /admin/articles/{id}/versions?order=newest_first
func (h *AdminHandler) ListVersions(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	order := domain.VersionOrder(r.URL.Query().Get("order"))
	if order != "" && !order.IsValid() {
		handleError(h.log, w, r, domain.NewValidationError("order", "must be oldest_first or newest_first"))
		return
	}

	versions, err := h.versions.ListVersions(r.Context(), articleID, order)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := versionListResponse{Versions: make([]versionResponse, 0, len(versions))}
	for _, v := range versions {
		resp.Versions = append(resp.Versions, toVersionResponse(v))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetVersion returns one version of an article.
// GET /admin/articles/{id}/versions/{n}
func (h *AdminHandler) GetVersion(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	n, err := pathInt(r, "n")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	v, err := h.versions.GetVersion(r.Context(), articleID, n)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toVersionResponse(v))
}

// Snapshot records the submitted content as the next version.
// POST /admin/articles/{id}/versions
func (h *AdminHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req snapshotRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	v, err := h.versions.Snapshot(r.Context(), version.SnapshotInput{
		ArticleID: articleID,
		Content:   []byte(req.Content),
		Summary:   req.Summary,
		AutoSave:  req.AutoSave,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toVersionResponse(v))
}

// Restore copies an earlier version forward as a new version.
// POST /admin/articles/{id}/restore
func (h *AdminHandler) Restore(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req restoreRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	v, err := h.versions.Restore(r.Context(), version.RestoreInput{
		ArticleID:     articleID,
		TargetVersion: *req.TargetVersion,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toVersionResponse(v))
}

package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"imagetagger/internal/delivery/http/helpers"
	"imagetagger/internal/store"
)

type ExportController struct {
	Logger *slog.Logger
	Store  *store.Store
}

func NewExportController(logger *slog.Logger, s *store.Store) *ExportController {
	return &ExportController{Logger: logger, Store: s}
}

// Annotations godoc
// @Summary Export the full dataset as a JSON download
// @Description Returns a detached snapshot of every collection, served as an attachment. The body is the raw snapshot document, not the usual envelope.
// @Tags export
// @Produce json
// @Success 200 {object} domain.Snapshot
// @Router /export/annotations [get]
func (c *ExportController) Annotations(w http.ResponseWriter, r *http.Request) {
	snap := c.Store.Export()
	body, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="annotations_export.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// Save godoc
// @Summary Persist the current state immediately
// @Tags export
// @Security BearerAuth
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/save [post]
func (c *ExportController) Save(w http.ResponseWriter, r *http.Request) {
	if err := c.Store.Save(); err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "snapshot saved"})
}

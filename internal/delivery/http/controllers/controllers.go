// Package controllers contains the HTTP handlers. They are thin glue: decode
// the request, call the store or a service, map errors, encode the envelope.
package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"imagetagger/internal/delivery/http/helpers"
	"imagetagger/internal/domain"
)

// respondError maps a store/service error to the HTTP error envelope.
// NotFound and Validation are caller errors and not logged; everything else
// is logged and reported as internal with a generic message, keeping the
// detail out of the response body.
func respondError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrValidation):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
	}
}

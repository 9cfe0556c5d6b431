package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"bengkel-backend/internal/logger"
	"bengkel-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// writeError maps the service error taxonomy onto HTTP status codes:
// 404 missing entity, 400 bad state or bad payload, 401 bad credentials,
// 403 unapproved account or insufficient rights, 500 everything else.
func writeError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrInvalidState), errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrNotApproved), errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	default:
		logger.Error("internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeValidationError(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

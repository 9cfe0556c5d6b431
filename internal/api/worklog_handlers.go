package api

import (
	"encoding/json"
	"net/http"

	"bengkel-backend/internal/domain"
)

type workLogRequest struct {
	LogDate           string `json:"log_date,omitempty"`
	Notes             string `json:"notes"`
	TargetDescription string `json:"target_description,omitempty"`
}

func (s *Server) handleCreateWorkLog(w http.ResponseWriter, r *http.Request) {
	var req workLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	claims := claimsFrom(r.Context())
	log := &domain.WorkLog{
		UserID:            claims.UserID,
		Notes:             req.Notes,
		TargetDescription: req.TargetDescription,
	}
	if req.LogDate != "" {
		t, err := parseDate(req.LogDate)
		if err != nil {
			writeValidationError(w, err.Error())
			return
		}
		log.LogDate = t
	}

	if err := s.worklogs.CreateWorkLog(r.Context(), log); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, log)
}

func (s *Server) handleMyWorkLogs(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	offset, limit := pagination(r)
	logs, err := s.worklogs.ListWorkLogs(r.Context(), claims.UserID, offset, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

func (s *Server) handleUserWorkLogs(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "user_id")
	if !ok {
		writeValidationError(w, "invalid user id")
		return
	}

	offset, limit := pagination(r)
	logs, err := s.worklogs.ListWorkLogs(r.Context(), userID, offset, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

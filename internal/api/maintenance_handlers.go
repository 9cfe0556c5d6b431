package api

import (
	"encoding/json"
	"net/http"
)

type maintenanceReportRequest struct {
	ToolID      int32  `json:"tool_id"`
	Description string `json:"description"`
}

func (s *Server) handleMaintenanceReport(w http.ResponseWriter, r *http.Request) {
	var req maintenanceReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	claims := claimsFrom(r.Context())
	report, err := s.maintenance.CreateReport(r.Context(), req.ToolID, claims.UserID, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, report)
}

func (s *Server) handleListMaintenance(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	reports, err := s.maintenance.ListReports(r.Context(), offset, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

func (s *Server) handleAssignTechnician(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeValidationError(w, "invalid report id")
		return
	}
	techID, ok := pathID(r, "tech_id")
	if !ok {
		writeValidationError(w, "invalid technician id")
		return
	}

	report, err := s.maintenance.AssignTechnician(r.Context(), id, techID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleResolveMaintenance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeValidationError(w, "invalid report id")
		return
	}

	report, err := s.maintenance.ResolveReport(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

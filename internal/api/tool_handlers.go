package api

import (
	"encoding/json"
	"net/http"

	"bengkel-backend/internal/domain"
)

func (s *Server) handleListTools(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	tools, err := s.tools.ListTools(r.Context(), offset, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tools)
}

func (s *Server) handleGetTool(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeValidationError(w, "invalid tool id")
		return
	}

	tool, err := s.tools.GetTool(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

func (s *Server) handleCreateTool(w http.ResponseWriter, r *http.Request) {
	var tool domain.Tool
	if err := json.NewDecoder(r.Body).Decode(&tool); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	if err := s.tools.CreateTool(r.Context(), &tool); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tool)
}

func (s *Server) handleUpdateTool(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeValidationError(w, "invalid tool id")
		return
	}

	var tool domain.Tool
	if err := json.NewDecoder(r.Body).Decode(&tool); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}
	tool.ID = id

	if err := s.tools.UpdateTool(r.Context(), &tool); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

func (s *Server) handleDeleteTool(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeValidationError(w, "invalid tool id")
		return
	}

	if err := s.tools.DeleteTool(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

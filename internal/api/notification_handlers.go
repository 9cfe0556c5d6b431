package api

import "net/http"

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	offset, limit := pagination(r)
	notes, err := s.notifications.ListNotifications(r.Context(), claims.UserID, offset, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

func (s *Server) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeValidationError(w, "invalid notification id")
		return
	}

	claims := claimsFrom(r.Context())
	note, err := s.notifications.MarkRead(r.Context(), id, claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (s *Server) handleMarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	if err := s.notifications.MarkAllRead(r.Context(), claims.UserID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

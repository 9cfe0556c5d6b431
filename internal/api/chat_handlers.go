package api

import "net/http"

func (s *Server) handleChatHistory(w http.ResponseWriter, r *http.Request) {
	otherID, ok := pathID(r, "other_user_id")
	if !ok {
		writeValidationError(w, "invalid user id")
		return
	}

	claims := claimsFrom(r.Context())
	messages, err := s.chat.History(r.Context(), claims.UserID, otherID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

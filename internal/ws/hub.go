package ws

import (
	"log/slog"
	"sync"

	"bengkel-backend/internal/logger"
)

// Hub is the in-memory registry of live chat connections, keyed by user ID.
// One registered connection per user: a new connection for the same user
// takes over the registry slot.
type Hub struct {
	mu       sync.RWMutex
	sessions map[int32]*Session
	log      *slog.Logger
}

func NewHub() *Hub {
	return &Hub{
		sessions: make(map[int32]*Session),
		log:      logger.WithComponent("ws-hub"),
	}
}

// Connect registers a session. If the user already has one, the prior handle
// is dropped from the registry but not closed; its own read loop ends it.
func (h *Hub) Connect(s *Session) {
	h.mu.Lock()
	replaced := h.sessions[s.userID] != nil
	h.sessions[s.userID] = s
	h.mu.Unlock()

	if replaced {
		h.log.Info("replaced existing connection", "user_id", s.userID)
	}
	h.log.Debug("user connected", "user_id", s.userID)
}

// Disconnect removes the session, but only if it is still the registered one.
// A stale session replaced by a newer connection must not evict its successor.
func (h *Hub) Disconnect(s *Session) {
	h.mu.Lock()
	if h.sessions[s.userID] == s {
		delete(h.sessions, s.userID)
	}
	h.mu.Unlock()

	s.close()
	h.log.Debug("user disconnected", "user_id", s.userID)
}

// Send delivers v to the user's live connection if there is one. Delivery is
// best-effort: an offline user or a write failure is not an error, the
// message is already persisted.
func (h *Hub) Send(userID int32, v interface{}) bool {
	h.mu.RLock()
	s := h.sessions[userID]
	h.mu.RUnlock()

	if s == nil {
		return false
	}
	if err := s.send(v); err != nil {
		h.log.Warn("failed to deliver message", "user_id", userID, "error", err)
		return false
	}
	return true
}

// Broadcast delivers v to every registered connection, best-effort, with the
// same write discipline as Send.
func (h *Hub) Broadcast(v interface{}) {
	h.mu.RLock()
	sessions := make([]*Session, 0, len(h.sessions))
	for _, s := range h.sessions {
		sessions = append(sessions, s)
	}
	h.mu.RUnlock()

	for _, s := range sessions {
		if err := s.send(v); err != nil {
			h.log.Warn("failed to broadcast message", "user_id", s.userID, "error", err)
		}
	}
}

// Online reports whether the user currently has a live connection.
func (h *Hub) Online(userID int32) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.sessions[userID]
	return ok
}

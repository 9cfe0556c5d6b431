package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"bengkel-backend/internal/logger"
	"bengkel-backend/internal/security"
	"bengkel-backend/internal/service"
)

// inboundMessage is the client-to-server chat frame.
type inboundMessage struct {
	ReceiverID    int32  `json:"receiver_id"`
	Content       string `json:"content"`
	AttachmentURL string `json:"attachment_url,omitempty"`
}

type errorFrame struct {
	Error string `json:"error"`
}

// Handler upgrades chat connections and runs the per-connection read loop.
// Authentication uses a token query parameter because browsers cannot set
// headers on websocket upgrades.
type Handler struct {
	hub      *Hub
	chat     service.ChatService
	tokens   security.TokenManager
	upgrader websocket.Upgrader
	log      *slog.Logger
}

func NewHandler(hub *Hub, chat service.ChatService, tokens security.TokenManager) *Handler {
	return &Handler{
		hub:    hub,
		chat:   chat,
		tokens: tokens,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		log: logger.WithComponent("ws-handler"),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", "error", err)
		return
	}

	claims, err := h.tokens.ValidateToken(r.URL.Query().Get("token"))
	if err != nil {
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "invalid token"))
		conn.Close()
		return
	}

	session := NewSession(claims.UserID, conn)
	h.hub.Connect(session)
	defer h.hub.Disconnect(session)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var in inboundMessage
		if err := json.Unmarshal(data, &in); err != nil || in.ReceiverID == 0 {
			session.send(errorFrame{Error: "Invalid data format"})
			continue
		}

		// Persist first: a message is only routed once it is stored.
		msg, err := h.chat.SaveMessage(r.Context(), claims.UserID, in.ReceiverID, in.Content, in.AttachmentURL)
		if err != nil {
			h.log.Warn("failed to save chat message",
				"sender_id", claims.UserID, "receiver_id", in.ReceiverID, "error", err)
			session.send(errorFrame{Error: "Invalid data format"})
			continue
		}

		h.hub.Send(in.ReceiverID, msg)
	}
}

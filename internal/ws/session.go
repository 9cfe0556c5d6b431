package ws

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeTimeout = 10 * time.Second

// Session wraps one user's websocket connection. Writes are serialized
// because gorilla/websocket allows at most one concurrent writer.
type Session struct {
	userID int32
	conn   *websocket.Conn

	mu     sync.Mutex
	closed bool
}

func NewSession(userID int32, conn *websocket.Conn) *Session {
	return &Session{userID: userID, conn: conn}
}

func (s *Session) UserID() int32 {
	return s.userID
}

func (s *Session) send(v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return websocket.ErrCloseSent
	}
	s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return s.conn.WriteJSON(v)
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.conn.Close()
}

package chat

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/net/websocket"
)

// wsEnvelope is the frame exchanged with the widget over WebSocket.
type wsEnvelope struct {
	Type      string    `json:"type"` // "message", "history", "closed", "ping", "pong", "error"
	Text      string    `json:"text,omitempty"`
	IsBot     bool      `json:"isBot,omitempty"`
	Timestamp string    `json:"timestamp,omitempty"`
	Messages  []Message `json:"messages,omitempty"`
}

// wsHub tracks the active visitor connection per session so operator
// replies can be pushed without polling.
type wsHub struct {
	mu    sync.RWMutex
	conns map[string]*websocket.Conn
}

func newWSHub() *wsHub {
	return &wsHub{conns: make(map[string]*websocket.Conn)}
}

func (h *wsHub) register(sessionID string, conn *websocket.Conn) {
	h.mu.Lock()
	h.conns[sessionID] = conn
	h.mu.Unlock()
}

func (h *wsHub) unregister(sessionID string, conn *websocket.Conn) {
	h.mu.Lock()
	if h.conns[sessionID] == conn {
		delete(h.conns, sessionID)
	}
	h.mu.Unlock()
}

func (h *wsHub) send(sessionID string, msg Message) {
	h.mu.RLock()
	conn, ok := h.conns[sessionID]
	h.mu.RUnlock()
	if !ok {
		return
	}
	_ = websocket.JSON.Send(conn, wsEnvelope{
		Type:      "message",
		Text:      msg.Text,
		IsBot:     msg.IsBot,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *wsHub) closed(sessionID string) {
	h.mu.RLock()
	conn, ok := h.conns[sessionID]
	h.mu.RUnlock()
	if !ok {
		return
	}
	_ = websocket.JSON.Send(conn, wsEnvelope{Type: "closed"})
}

// HandleWebSocket upgrades GET /api/chat/live/{sessionID}/ws so the widget
// receives operator turns as they arrive instead of polling.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	websocket.Handler(func(conn *websocket.Conn) {
		h.serveWS(conn, sessionID)
	}).ServeHTTP(w, r)
}

func (h *Handler) serveWS(conn *websocket.Conn, sessionID string) {
	sess, ok := h.sessions.Get(sessionID)
	if !ok {
		_ = websocket.JSON.Send(conn, wsEnvelope{Type: "error", Text: "session not found"})
		return
	}

	_ = websocket.JSON.Send(conn, wsEnvelope{Type: "history", Messages: sess.Messages})

	h.hub.register(sessionID, conn)
	defer h.hub.unregister(sessionID, conn)

	h.logger.Info("chat: websocket opened", "session_id", sessionID)

	for {
		var env wsEnvelope
		if err := websocket.JSON.Receive(conn, &env); err != nil {
			h.logger.Debug("chat: websocket closed", "session_id", sessionID, "error", err)
			return
		}

		if env.Type == "ping" {
			_ = websocket.JSON.Send(conn, wsEnvelope{Type: "pong"})
			continue
		}
		if env.Type != "message" || strings.TrimSpace(env.Text) == "" {
			continue
		}

		if !h.sessions.Append(sessionID, Message{Text: env.Text, IsBot: false, Type: ModeLive}) {
			_ = websocket.JSON.Send(conn, wsEnvelope{Type: "closed"})
			return
		}
	}
}

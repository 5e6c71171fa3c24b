package chat

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Mearaf/codebridge-website/pkg/logging"
)

// Handler exposes the chat widget and live hand-off endpoints.
type Handler struct {
	responder *Responder
	sessions  SessionStore
	logger    *logging.Logger
	hub       *wsHub
}

// NewHandler creates a chat handler.
func NewHandler(responder *Responder, sessions SessionStore, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		responder: responder,
		sessions:  sessions,
		logger:    logger,
		hub:       newWSHub(),
	}
}

// chatRequest is the POST /api/chat body.
type chatRequest struct {
	Message             string    `json:"message"`
	ConversationHistory []Message `json:"conversationHistory"`
	ChatType            Mode      `json:"chatType"`
	UserID              string    `json:"userId"`
}

// chatResponse mirrors the widget contract: the reply text, the mode that
// actually produced it, and a server timestamp.
type chatResponse struct {
	Response  string    `json:"response"`
	Type      Mode      `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"sessionId,omitempty"`
}

// HandleChat handles POST /api/chat.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}
	if req.UserID == "" {
		req.UserID = uuid.NewString()
	}

	reply := h.responder.Respond(r.Context(), req.UserID, req.Message, req.ConversationHistory, req.ChatType)

	writeJSON(w, http.StatusOK, chatResponse{
		Response:  reply.Text,
		Type:      reply.Mode,
		Timestamp: time.Now().UTC(),
		SessionID: reply.SessionID,
	})
}

// HandleListSessions handles GET /api/chat/live/sessions. Closed sessions
// never appear here.
func (h *Handler) HandleListSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.sessions.ListActive())
}

// HandleGetSession handles GET /api/chat/live/{sessionID}.
func (h *Handler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessions.Get(chi.URLParam(r, "sessionID"))
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// sessionMessageRequest is the POST body for appending a turn.
type sessionMessageRequest struct {
	Text  string `json:"text"`
	IsBot bool   `json:"isBot"`
}

// HandleSessionMessage handles POST /api/chat/live/{sessionID}/message.
// An unknown or closed session yields success=false, not a fault.
func (h *Handler) HandleSessionMessage(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var req sessionMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	msg := Message{Text: req.Text, IsBot: req.IsBot, Type: ModeLive}
	if !h.sessions.Append(sessionID, msg) {
		writeJSON(w, http.StatusNotFound, map[string]bool{"success": false})
		return
	}

	h.hub.send(sessionID, msg)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleCloseSession handles POST /api/chat/live/{sessionID}/close.
// Closing an already-closed session still succeeds.
func (h *Handler) HandleCloseSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if !h.sessions.Close(sessionID) {
		writeJSON(w, http.StatusNotFound, map[string]bool{"success": false})
		return
	}
	h.hub.closed(sessionID)
	h.logger.Info("chat: live session closed", "session_id", sessionID)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"success": false, "message": message})
}

package chat

import "time"

// Mode selects how a visitor message is answered. Wire values match the
// widget: "scripted" for canned keyword replies, "ai" for generative
// responses, "live" for human hand-off.
type Mode string

const (
	ModeScripted Mode = "scripted"
	ModeAI       Mode = "ai"
	ModeLive     Mode = "live"
)

// Status is the lifecycle state of a live hand-off session.
type Status string

const (
	StatusWaiting Status = "waiting"
	StatusActive  Status = "active"
	StatusClosed  Status = "closed"
)

// Message is one turn in a conversation. IsBot covers both automated
// replies and human operator replies; Type records which path produced it.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	IsBot     bool      `json:"isBot"`
	Timestamp time.Time `json:"timestamp"`
	Type      Mode      `json:"type,omitempty"`
}

// Session is one visitor's live hand-off conversation. Sessions live in
// memory for the life of the process and are only ever marked closed,
// never deleted.
type Session struct {
	ID           string    `json:"id"`
	VisitorID    string    `json:"userId"`
	Status       Status    `json:"status"`
	Messages     []Message `json:"messages"`
	CreatedAt    time.Time `json:"createdAt"`
	LastActivity time.Time `json:"lastActivity"`
}

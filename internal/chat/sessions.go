package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// seedMessage opens every hand-off session so the visitor knows a human is
// on the way.
const seedMessage = "Thanks for reaching out! I'm connecting you with one of our technology consultants. They'll be with you shortly to provide personalized assistance."

// SessionStore manages live hand-off sessions. Injectable so tests get an
// isolated instance and a persistent store can replace the in-memory one
// without touching call sites.
type SessionStore interface {
	// Create opens a new session in the waiting state with a seed message.
	Create(visitorID string) Session
	// Get returns a copy of the session.
	Get(id string) (Session, bool)
	// GetByVisitor returns the visitor's open (waiting or active) session.
	GetByVisitor(visitorID string) (Session, bool)
	// Append adds a turn to an open session. It returns false when the
	// session is unknown or already closed; neither is a fault.
	Append(id string, msg Message) bool
	// ListActive returns sessions in the waiting or active state.
	ListActive() []Session
	// Close marks a session closed. Idempotent: closing a closed session
	// still returns true; only an unknown id returns false.
	Close(id string) bool
}

// InMemorySessionStore is the process-wide session registry. A single
// RWMutex guards the table and every per-session turn list, so appends to
// one session keep their FIFO order under concurrent requests.
type InMemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewInMemorySessionStore creates an empty registry.
func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{
		sessions: make(map[string]*Session),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *InMemorySessionStore) Create(visitorID string) Session {
	now := s.now()
	sess := &Session{
		ID:        "live_" + uuid.NewString(),
		VisitorID: visitorID,
		Status:    StatusWaiting,
		Messages: []Message{{
			ID:        "msg_" + uuid.NewString(),
			Text:      seedMessage,
			IsBot:     true,
			Timestamp: now,
			Type:      ModeLive,
		}},
		CreatedAt:    now,
		LastActivity: now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return *sess
}

func (s *InMemorySessionStore) Get(id string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, false
	}
	return snapshot(sess), true
}

func (s *InMemorySessionStore) GetByVisitor(visitorID string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sess := range s.sessions {
		if sess.VisitorID == visitorID && sess.Status != StatusClosed {
			return snapshot(sess), true
		}
	}
	return Session{}, false
}

func (s *InMemorySessionStore) Append(id string, msg Message) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || sess.Status == StatusClosed {
		return false
	}

	if msg.ID == "" {
		msg.ID = "msg_" + uuid.NewString()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = s.now()
	}
	sess.Messages = append(sess.Messages, msg)
	sess.LastActivity = msg.Timestamp

	// First operator reply moves the session out of the waiting queue.
	if msg.IsBot && sess.Status == StatusWaiting {
		sess.Status = StatusActive
	}
	return true
}

func (s *InMemorySessionStore) ListActive() []Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		if sess.Status == StatusWaiting || sess.Status == StatusActive {
			active = append(active, snapshot(sess))
		}
	}
	return active
}

func (s *InMemorySessionStore) Close(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	sess.Status = StatusClosed
	return true
}

// snapshot copies a session so callers never hold a reference into the
// locked table.
func snapshot(sess *Session) Session {
	out := *sess
	out.Messages = make([]Message, len(sess.Messages))
	copy(out.Messages, sess.Messages)
	return out
}

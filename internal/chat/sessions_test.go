package chat

import (
	"fmt"
	"sync"
	"testing"
)

func TestCreateSeedsWaitingSession(t *testing.T) {
	store := NewInMemorySessionStore()

	sess := store.Create("visitor-1")

	if sess.Status != StatusWaiting {
		t.Errorf("status = %s, want waiting", sess.Status)
	}
	if len(sess.Messages) != 1 || !sess.Messages[0].IsBot {
		t.Fatalf("expected a single bot seed message, got %v", sess.Messages)
	}
	if sess.Messages[0].Text != seedMessage {
		t.Errorf("unexpected seed text: %q", sess.Messages[0].Text)
	}
}

func TestGetByVisitorSkipsClosed(t *testing.T) {
	store := NewInMemorySessionStore()

	first := store.Create("visitor-1")
	store.Close(first.ID)

	if _, ok := store.GetByVisitor("visitor-1"); ok {
		t.Error("closed session should not be returned for visitor")
	}

	second := store.Create("visitor-1")
	got, ok := store.GetByVisitor("visitor-1")
	if !ok || got.ID != second.ID {
		t.Errorf("expected new open session %s, got %v ok=%v", second.ID, got.ID, ok)
	}
}

func TestAppendTransitionsWaitingToActive(t *testing.T) {
	store := NewInMemorySessionStore()
	sess := store.Create("visitor-1")

	// Visitor turns do not activate the session.
	store.Append(sess.ID, Message{Text: "anyone there?", IsBot: false, Type: ModeLive})
	got, _ := store.Get(sess.ID)
	if got.Status != StatusWaiting {
		t.Errorf("status after visitor turn = %s, want waiting", got.Status)
	}

	// First operator reply does.
	store.Append(sess.ID, Message{Text: "Hi, Alex here.", IsBot: true, Type: ModeLive})
	got, _ = store.Get(sess.ID)
	if got.Status != StatusActive {
		t.Errorf("status after operator turn = %s, want active", got.Status)
	}
}

func TestAppendUnknownOrClosedReturnsFalse(t *testing.T) {
	store := NewInMemorySessionStore()

	if store.Append("nope", Message{Text: "hello"}) {
		t.Error("append to unknown session should return false")
	}

	sess := store.Create("visitor-1")
	store.Close(sess.ID)
	if store.Append(sess.ID, Message{Text: "too late"}) {
		t.Error("append to closed session should return false")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	store := NewInMemorySessionStore()
	sess := store.Create("visitor-1")

	if !store.Close(sess.ID) {
		t.Fatal("first close should return true")
	}
	if !store.Close(sess.ID) {
		t.Error("second close should still return true")
	}
	if store.Close("unknown") {
		t.Error("closing an unknown id should return false")
	}
}

func TestListActiveExcludesClosed(t *testing.T) {
	store := NewInMemorySessionStore()

	open := store.Create("visitor-1")
	closed := store.Create("visitor-2")
	store.Close(closed.ID)

	active := store.ListActive()
	if len(active) != 1 || active[0].ID != open.ID {
		t.Errorf("expected only %s active, got %v", open.ID, active)
	}
}

func TestAppendOrderPreservedUnderConcurrency(t *testing.T) {
	store := NewInMemorySessionStore()
	sess := store.Create("visitor-1")

	const writers = 8
	const perWriter = 25

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				store.Append(sess.ID, Message{Text: fmt.Sprintf("w%d-%d", w, i)})
				// Concurrent reads must not corrupt the log.
				store.ListActive()
			}
		}(w)
	}
	wg.Wait()

	got, _ := store.Get(sess.ID)
	if len(got.Messages) != 1+writers*perWriter {
		t.Fatalf("lost updates: %d messages, want %d", len(got.Messages), 1+writers*perWriter)
	}

	// Each writer's own messages must appear in its submission order.
	next := make(map[int]int)
	for _, m := range got.Messages[1:] {
		var w, i int
		if _, err := fmt.Sscanf(m.Text, "w%d-%d", &w, &i); err != nil {
			t.Fatalf("unexpected message %q", m.Text)
		}
		if i != next[w] {
			t.Fatalf("writer %d message %d arrived out of order (want %d)", w, i, next[w])
		}
		next[w]++
	}
}

func TestSnapshotIsolation(t *testing.T) {
	store := NewInMemorySessionStore()
	sess := store.Create("visitor-1")

	got, _ := store.Get(sess.ID)
	got.Messages[0].Text = "mutated"

	fresh, _ := store.Get(sess.ID)
	if fresh.Messages[0].Text != seedMessage {
		t.Error("caller mutation leaked into the store")
	}
}

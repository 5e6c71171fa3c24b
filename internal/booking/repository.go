package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository persists confirmed bookings.
type Repository interface {
	Create(ctx context.Context, b *Booking) (*Booking, error)
	ListUpcoming(ctx context.Context) ([]*Booking, error)
}

// InMemoryRepository keeps bookings in a map; used in tests and when no
// database is configured.
type InMemoryRepository struct {
	mu       sync.RWMutex
	bookings map[string]*Booking
	now      func() time.Time
}

// NewInMemoryRepository creates an empty in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		bookings: make(map[string]*Booking),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, b *Booking) (*Booking, error) {
	stored := *b
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if stored.Status == "" {
		stored.Status = "scheduled"
	}
	stored.CreatedAt = r.now()

	r.mu.Lock()
	r.bookings[stored.ID] = &stored
	r.mu.Unlock()

	out := stored
	return &out, nil
}

func (r *InMemoryRepository) ListUpcoming(ctx context.Context) ([]*Booking, error) {
	now := r.now()

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Booking
	for _, b := range r.bookings {
		if b.ScheduledFor.After(now) && b.Status == "scheduled" {
			cp := *b
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledFor.Before(out[j].ScheduledFor) })
	return out, nil
}

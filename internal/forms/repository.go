package forms

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository persists form submissions. Callers validate before calling.
type Repository interface {
	CreateContact(ctx context.Context, req *CreateContactRequest) (*ContactMessage, error)
	ListContacts(ctx context.Context) ([]*ContactMessage, error)

	// CreateSignup deduplicates on email: a repeat signup returns the
	// existing record and isNew=false.
	CreateSignup(ctx context.Context, email string) (signup *EmailSignup, isNew bool, err error)
	ListSignups(ctx context.Context) ([]*EmailSignup, error)

	CreateIntake(ctx context.Context, req *CreateIntakeRequest) (*ClientIntake, error)
	ListIntakes(ctx context.Context) ([]*ClientIntake, error)
}

// InMemoryRepository backs the forms pipeline with maps; used in tests and
// when no database is configured.
type InMemoryRepository struct {
	mu       sync.RWMutex
	contacts map[string]*ContactMessage
	signups  map[string]*EmailSignup // keyed by normalized email
	intakes  map[string]*ClientIntake
	now      func() time.Time
}

// NewInMemoryRepository creates an empty in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		contacts: make(map[string]*ContactMessage),
		signups:  make(map[string]*EmailSignup),
		intakes:  make(map[string]*ClientIntake),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (r *InMemoryRepository) CreateContact(ctx context.Context, req *CreateContactRequest) (*ContactMessage, error) {
	c := &ContactMessage{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: r.now(),
	}

	r.mu.Lock()
	r.contacts[c.ID] = c
	r.mu.Unlock()

	out := *c
	return &out, nil
}

func (r *InMemoryRepository) ListContacts(ctx context.Context) ([]*ContactMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*ContactMessage, 0, len(r.contacts))
	for _, c := range r.contacts {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *InMemoryRepository) CreateSignup(ctx context.Context, email string) (*EmailSignup, bool, error) {
	key := strings.ToLower(strings.TrimSpace(email))

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.signups[key]; ok {
		cp := *existing
		return &cp, false, nil
	}

	s := &EmailSignup{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: r.now(),
	}
	r.signups[key] = s
	cp := *s
	return &cp, true, nil
}

func (r *InMemoryRepository) ListSignups(ctx context.Context) ([]*EmailSignup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*EmailSignup, 0, len(r.signups))
	for _, s := range r.signups {
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *InMemoryRepository) CreateIntake(ctx context.Context, req *CreateIntakeRequest) (*ClientIntake, error) {
	in := &ClientIntake{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Email:           req.Email,
		BusinessType:    req.BusinessType,
		CurrentTools:    req.CurrentTools,
		MainStruggles:   req.MainStruggles,
		ProjectTimeline: req.ProjectTimeline,
		Budget:          req.Budget,
		AdditionalInfo:  req.AdditionalInfo,
		CreatedAt:       r.now(),
	}

	r.mu.Lock()
	r.intakes[in.ID] = in
	r.mu.Unlock()

	out := *in
	return &out, nil
}

func (r *InMemoryRepository) ListIntakes(ctx context.Context) ([]*ClientIntake, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*ClientIntake, 0, len(r.intakes))
	for _, in := range r.intakes {
		cp := *in
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

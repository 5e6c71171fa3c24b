package content

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository serves marketing content. Reads vastly outnumber writes; the
// write paths exist for seeding and the occasional new post.
type Repository interface {
	ListTestimonials(ctx context.Context) ([]*Testimonial, error)
	ListFeaturedTestimonials(ctx context.Context) ([]*Testimonial, error)
	CreateTestimonial(ctx context.Context, req *CreateTestimonialRequest) (*Testimonial, error)

	// ListPublishedArticles excludes drafts.
	ListPublishedArticles(ctx context.Context) ([]*Article, error)
	ListFeaturedArticles(ctx context.Context) ([]*Article, error)
	// GetArticleBySlug returns ErrArticleNotFound for unknown or
	// unpublished slugs.
	GetArticleBySlug(ctx context.Context, slug string) (*Article, error)
	CreateArticle(ctx context.Context, req *CreateArticleRequest) (*Article, error)
}

// InMemoryRepository holds content in maps; used in tests and when no
// database is configured.
type InMemoryRepository struct {
	mu           sync.RWMutex
	testimonials map[string]*Testimonial
	articles     map[string]*Article // keyed by slug
	now          func() time.Time
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		testimonials: make(map[string]*Testimonial),
		articles:     make(map[string]*Article),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (r *InMemoryRepository) ListTestimonials(ctx context.Context) ([]*Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filterTestimonials(func(*Testimonial) bool { return true }), nil
}

func (r *InMemoryRepository) ListFeaturedTestimonials(ctx context.Context) ([]*Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filterTestimonials(func(t *Testimonial) bool { return t.Featured }), nil
}

func (r *InMemoryRepository) filterTestimonials(keep func(*Testimonial) bool) []*Testimonial {
	out := make([]*Testimonial, 0, len(r.testimonials))
	for _, t := range r.testimonials {
		if keep(t) {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *InMemoryRepository) CreateTestimonial(ctx context.Context, req *CreateTestimonialRequest) (*Testimonial, error) {
	t := &Testimonial{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Title:     req.Title,
		Company:   req.Company,
		Quote:     req.Quote,
		Rating:    req.Rating,
		Featured:  req.Featured,
		CreatedAt: r.now(),
	}

	r.mu.Lock()
	r.testimonials[t.ID] = t
	r.mu.Unlock()

	cp := *t
	return &cp, nil
}

func (r *InMemoryRepository) ListPublishedArticles(ctx context.Context) ([]*Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filterArticles(func(a *Article) bool { return a.Published }), nil
}

func (r *InMemoryRepository) ListFeaturedArticles(ctx context.Context) ([]*Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filterArticles(func(a *Article) bool { return a.Published && a.Featured }), nil
}

func (r *InMemoryRepository) filterArticles(keep func(*Article) bool) []*Article {
	out := make([]*Article, 0, len(r.articles))
	for _, a := range r.articles {
		if keep(a) {
			cp := *a
			cp.Tags = append([]string(nil), a.Tags...)
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PublishedAt.After(out[j].PublishedAt) })
	return out
}

func (r *InMemoryRepository) GetArticleBySlug(ctx context.Context, slug string) (*Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.articles[slug]
	if !ok || !a.Published {
		return nil, ErrArticleNotFound
	}
	cp := *a
	cp.Tags = append([]string(nil), a.Tags...)
	return &cp, nil
}

func (r *InMemoryRepository) CreateArticle(ctx context.Context, req *CreateArticleRequest) (*Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.articles[req.Slug]; exists {
		return nil, ErrSlugTaken
	}

	now := r.now()
	a := &Article{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Slug:        req.Slug,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		Category:    req.Category,
		Tags:        append([]string(nil), req.Tags...),
		ReadTime:    req.ReadTime,
		Featured:    req.Featured,
		Published:   req.Published,
		AuthorName:  req.AuthorName,
		PublishedAt: now,
		UpdatedAt:   now,
	}
	r.articles[a.Slug] = a

	cp := *a
	cp.Tags = append([]string(nil), a.Tags...)
	return &cp, nil
}

package content

import (
	"strings"
	"time"
)

// Testimonial is a client quote shown on the marketing site.
type Testimonial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Company   string    `json:"company,omitempty"`
	Quote     string    `json:"quote"`
	Rating    int       `json:"rating"`
	Featured  bool      `json:"featured"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateTestimonialRequest is the POST /api/testimonials body.
type CreateTestimonialRequest struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Quote    string `json:"quote"`
	Rating   int    `json:"rating"`
	Featured bool   `json:"featured"`
}

func (r *CreateTestimonialRequest) Validate() []string {
	var problems []string
	if strings.TrimSpace(r.Name) == "" {
		problems = append(problems, "name is required")
	}
	if strings.TrimSpace(r.Title) == "" {
		problems = append(problems, "title is required")
	}
	if strings.TrimSpace(r.Quote) == "" {
		problems = append(problems, "quote is required")
	}
	if r.Rating < 1 || r.Rating > 5 {
		problems = append(problems, "rating must be between 1 and 5")
	}
	return problems
}

// Article is a blog post. Only published articles are served publicly;
// drafts stay hidden until flipped.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	ReadTime    string    `json:"readTime"`
	Featured    bool      `json:"featured"`
	Published   bool      `json:"published"`
	AuthorName  string    `json:"authorName"`
	PublishedAt time.Time `json:"publishedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateArticleRequest is the POST /api/articles body.
type CreateArticleRequest struct {
	Title      string   `json:"title"`
	Slug       string   `json:"slug"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	ReadTime   string   `json:"readTime"`
	Featured   bool     `json:"featured"`
	Published  bool     `json:"published"`
	AuthorName string   `json:"authorName"`
}

func (r *CreateArticleRequest) Validate() []string {
	var problems []string
	if strings.TrimSpace(r.Title) == "" {
		problems = append(problems, "title is required")
	}
	if !validSlug(r.Slug) {
		problems = append(problems, "slug must be lowercase letters, digits, and hyphens")
	}
	if strings.TrimSpace(r.Excerpt) == "" {
		problems = append(problems, "excerpt is required")
	}
	if strings.TrimSpace(r.Content) == "" {
		problems = append(problems, "content is required")
	}
	if strings.TrimSpace(r.Category) == "" {
		problems = append(problems, "category is required")
	}
	if strings.TrimSpace(r.AuthorName) == "" {
		problems = append(problems, "authorName is required")
	}
	return problems
}

func validSlug(slug string) bool {
	if slug == "" {
		return false
	}
	for _, c := range slug {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return false
		}
	}
	return slug[0] != '-' && slug[len(slug)-1] != '-'
}

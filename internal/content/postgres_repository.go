package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repository needs; pgxmock satisfies
// it in tests.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresRepository stores marketing content in the relational database.
type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	if db == nil {
		panic("content: db required")
	}
	return &PostgresRepository{db: db}
}

const testimonialColumns = "id, name, title, company, quote, rating, featured, created_at"

func (r *PostgresRepository) ListTestimonials(ctx context.Context) ([]*Testimonial, error) {
	return r.queryTestimonials(ctx, fmt.Sprintf(`
		SELECT %s FROM testimonials ORDER BY created_at DESC
	`, testimonialColumns))
}

func (r *PostgresRepository) ListFeaturedTestimonials(ctx context.Context) ([]*Testimonial, error) {
	return r.queryTestimonials(ctx, fmt.Sprintf(`
		SELECT %s FROM testimonials WHERE featured ORDER BY created_at DESC
	`, testimonialColumns))
}

func (r *PostgresRepository) queryTestimonials(ctx context.Context, query string) ([]*Testimonial, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("content: select testimonials: %w", err)
	}
	defer rows.Close()

	var out []*Testimonial
	for rows.Next() {
		var t Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Title, &t.Company, &t.Quote, &t.Rating, &t.Featured, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("content: scan testimonial: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) CreateTestimonial(ctx context.Context, req *CreateTestimonialRequest) (*Testimonial, error) {
	t := &Testimonial{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Title:    req.Title,
		Company:  req.Company,
		Quote:    req.Quote,
		Rating:   req.Rating,
		Featured: req.Featured,
	}
	if err := r.db.QueryRow(ctx, `
		INSERT INTO testimonials (id, name, title, company, quote, rating, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`, t.ID, t.Name, t.Title, t.Company, t.Quote, t.Rating, t.Featured).Scan(&t.CreatedAt); err != nil {
		return nil, fmt.Errorf("content: insert testimonial: %w", err)
	}
	return t, nil
}

const articleColumns = "id, title, slug, excerpt, content, category, tags, read_time, featured, published, author_name, published_at, updated_at"

func (r *PostgresRepository) ListPublishedArticles(ctx context.Context) ([]*Article, error) {
	return r.queryArticles(ctx, fmt.Sprintf(`
		SELECT %s FROM articles WHERE published ORDER BY published_at DESC
	`, articleColumns))
}

func (r *PostgresRepository) ListFeaturedArticles(ctx context.Context) ([]*Article, error) {
	return r.queryArticles(ctx, fmt.Sprintf(`
		SELECT %s FROM articles WHERE published AND featured ORDER BY published_at DESC
	`, articleColumns))
}

func (r *PostgresRepository) queryArticles(ctx context.Context, query string, args ...any) ([]*Article, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("content: select articles: %w", err)
	}
	defer rows.Close()

	var out []*Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetArticleBySlug(ctx context.Context, slug string) (*Article, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM articles WHERE slug = $1 AND published
	`, articleColumns), slug)
	if err != nil {
		return nil, fmt.Errorf("content: select article: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("content: select article: %w", err)
		}
		return nil, ErrArticleNotFound
	}
	return scanArticle(rows)
}

func (r *PostgresRepository) CreateArticle(ctx context.Context, req *CreateArticleRequest) (*Article, error) {
	a := &Article{
		ID:         uuid.NewString(),
		Title:      req.Title,
		Slug:       req.Slug,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		Category:   req.Category,
		Tags:       req.Tags,
		ReadTime:   req.ReadTime,
		Featured:   req.Featured,
		Published:  req.Published,
		AuthorName: req.AuthorName,
	}
	err := r.db.QueryRow(ctx, `
		INSERT INTO articles (id, title, slug, excerpt, content, category, tags, read_time, featured, published, author_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING published_at, updated_at
	`, a.ID, a.Title, a.Slug, a.Excerpt, a.Content, a.Category, a.Tags,
		a.ReadTime, a.Featured, a.Published, a.AuthorName,
	).Scan(&a.PublishedAt, &a.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("content: insert article: %w", err)
	}
	return a, nil
}

func scanArticle(rows pgx.Rows) (*Article, error) {
	var a Article
	if err := rows.Scan(
		&a.ID, &a.Title, &a.Slug, &a.Excerpt, &a.Content, &a.Category, &a.Tags,
		&a.ReadTime, &a.Featured, &a.Published, &a.AuthorName, &a.PublishedAt, &a.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("content: scan article: %w", err)
	}
	return &a, nil
}

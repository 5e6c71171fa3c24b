package forms

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

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

// PostgresRepository stores form submissions in the relational database.
type PostgresRepository struct {
	db DB
}

// NewPostgresRepository initializes a repo backed by pgx.
func NewPostgresRepository(db DB) *PostgresRepository {
	if db == nil {
		panic("forms: db required")
	}
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateContact(ctx context.Context, req *CreateContactRequest) (*ContactMessage, error) {
	c := &ContactMessage{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	query := `
		INSERT INTO contacts (id, name, email, subject, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	if err := r.db.QueryRow(ctx, query, c.ID, c.Name, c.Email, c.Subject, c.Message).Scan(&c.CreatedAt); err != nil {
		return nil, fmt.Errorf("forms: insert contact: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) ListContacts(ctx context.Context) ([]*ContactMessage, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, subject, message, created_at
		FROM contacts
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("forms: select contacts: %w", err)
	}
	defer rows.Close()

	var out []*ContactMessage
	for rows.Next() {
		var c ContactMessage
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("forms: scan contact: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) CreateSignup(ctx context.Context, email string) (*EmailSignup, bool, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	// Existing subscription wins; repeat signups are not an error.
	var existing EmailSignup
	err := r.db.QueryRow(ctx, `
		SELECT id, email, created_at FROM email_signups WHERE lower(email) = $1
	`, normalized).Scan(&existing.ID, &existing.Email, &existing.CreatedAt)
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("forms: lookup signup: %w", err)
	}

	s := &EmailSignup{ID: uuid.NewString(), Email: email}
	var createdAt time.Time
	if err := r.db.QueryRow(ctx, `
		INSERT INTO email_signups (id, email) VALUES ($1, $2) RETURNING created_at
	`, s.ID, s.Email).Scan(&createdAt); err != nil {
		return nil, false, fmt.Errorf("forms: insert signup: %w", err)
	}
	s.CreatedAt = createdAt
	return s, true, nil
}

func (r *PostgresRepository) ListSignups(ctx context.Context) ([]*EmailSignup, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, email, created_at FROM email_signups ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("forms: select signups: %w", err)
	}
	defer rows.Close()

	var out []*EmailSignup
	for rows.Next() {
		var s EmailSignup
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("forms: scan signup: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) CreateIntake(ctx context.Context, req *CreateIntakeRequest) (*ClientIntake, error) {
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
	}
	query := `
		INSERT INTO client_intakes (id, name, email, business_type, current_tools, main_struggles, project_timeline, budget, additional_info)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`
	if err := r.db.QueryRow(ctx, query,
		in.ID, in.Name, in.Email, in.BusinessType, in.CurrentTools,
		in.MainStruggles, in.ProjectTimeline, in.Budget, in.AdditionalInfo,
	).Scan(&in.CreatedAt); err != nil {
		return nil, fmt.Errorf("forms: insert intake: %w", err)
	}
	return in, nil
}

func (r *PostgresRepository) ListIntakes(ctx context.Context) ([]*ClientIntake, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, business_type, current_tools, main_struggles, project_timeline, budget, additional_info, created_at
		FROM client_intakes
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("forms: select intakes: %w", err)
	}
	defer rows.Close()

	var out []*ClientIntake
	for rows.Next() {
		var in ClientIntake
		if err := rows.Scan(
			&in.ID, &in.Name, &in.Email, &in.BusinessType, &in.CurrentTools,
			&in.MainStruggles, &in.ProjectTimeline, &in.Budget, &in.AdditionalInfo, &in.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("forms: scan intake: %w", err)
		}
		out = append(out, &in)
	}
	return out, rows.Err()
}

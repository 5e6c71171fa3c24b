package booking

import (
	"context"
	"fmt"
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

// PostgresRepository stores bookings in the relational database.
type PostgresRepository struct {
	db DB
}

// NewPostgresRepository initializes a repo backed by pgx.
func NewPostgresRepository(db DB) *PostgresRepository {
	if db == nil {
		panic("booking: db required")
	}
	return &PostgresRepository{db: db}
}

// Create inserts a new booking row.
func (r *PostgresRepository) Create(ctx context.Context, b *Booking) (*Booking, error) {
	stored := *b
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if stored.Status == "" {
		stored.Status = "scheduled"
	}

	query := `
		INSERT INTO calendar_bookings (id, google_event_id, client_name, client_email, client_phone, message, scheduled_for, duration_minutes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`
	var createdAt time.Time
	if err := r.db.QueryRow(ctx, query,
		stored.ID,
		stored.EventID,
		stored.Name,
		stored.Email,
		stored.Phone,
		stored.Message,
		stored.ScheduledFor,
		stored.DurationMinutes,
		stored.Status,
	).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("booking: insert failed: %w", err)
	}

	stored.CreatedAt = createdAt
	return &stored, nil
}

// ListUpcoming returns scheduled bookings that start in the future.
func (r *PostgresRepository) ListUpcoming(ctx context.Context) ([]*Booking, error) {
	query := `
		SELECT id, google_event_id, client_name, client_email, client_phone, message, scheduled_for, duration_minutes, status, created_at
		FROM calendar_bookings
		WHERE scheduled_for > NOW() AND status = 'scheduled'
		ORDER BY scheduled_for
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("booking: select upcoming failed: %w", err)
	}
	defer rows.Close()

	var out []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID,
			&b.EventID,
			&b.Name,
			&b.Email,
			&b.Phone,
			&b.Message,
			&b.ScheduledFor,
			&b.DurationMinutes,
			&b.Status,
			&b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("booking: scan failed: %w", err)
		}
		out = append(out, &b)
	}
	return out, rows.Err()
}

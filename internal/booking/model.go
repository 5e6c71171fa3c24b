package booking

import (
	"strings"
	"time"
)

// Booking is a confirmed consultation backed by a real calendar event.
type Booking struct {
	ID              string    `json:"id"`
	EventID         string    `json:"googleEventId"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Message         string    `json:"message"`
	ScheduledFor    time.Time `json:"scheduledFor"`
	DurationMinutes int       `json:"duration"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CreateBookingRequest is the POST /api/calendar/book body.
type CreateBookingRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Message      string `json:"message"`
	ScheduledFor string `json:"scheduledFor"` // RFC 3339
}

// Validate returns the list of field problems, empty when the request is
// usable. The parsed time is available via ScheduledAt after validation.
func (r *CreateBookingRequest) Validate() []string {
	var problems []string
	if strings.TrimSpace(r.Name) == "" {
		problems = append(problems, "name is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		problems = append(problems, "email is required")
	}
	if strings.TrimSpace(r.ScheduledFor) == "" {
		problems = append(problems, "scheduledFor is required")
	} else if _, err := time.Parse(time.RFC3339, r.ScheduledFor); err != nil {
		problems = append(problems, "scheduledFor must be an RFC 3339 timestamp")
	}
	return problems
}

// ScheduledAt parses the requested start time. Call Validate first.
func (r *CreateBookingRequest) ScheduledAt() (time.Time, error) {
	return time.Parse(time.RFC3339, r.ScheduledFor)
}

package booking

import (
	"context"
	"time"

	"github.com/Mearaf/codebridge-website/internal/availability"
)

// EventRequest describes a calendar event to create.
type EventRequest struct {
	Summary       string
	Description   string
	Start         time.Time
	End           time.Time
	AttendeeEmail string
}

// Event is the provider's record of a created calendar event.
type Event struct {
	ID          string `json:"id"`
	HTMLLink    string `json:"htmlLink"`
	MeetingLink string `json:"meetingLink"`
}

// CalendarProvider is the external calendar the booking flow depends on.
// Unlike the chat provider, its failures are NOT swallowed: a booking must
// never report success without a real calendar event behind it.
type CalendarProvider interface {
	// BusyIntervals lists occupied ranges within [from, to).
	BusyIntervals(ctx context.Context, from, to time.Time) ([]availability.BusyInterval, error)
	// CreateEvent creates an event and returns its identifiers.
	CreateEvent(ctx context.Context, req EventRequest) (*Event, error)
}

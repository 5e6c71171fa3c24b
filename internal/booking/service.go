package booking

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Mearaf/codebridge-website/internal/availability"
	"github.com/Mearaf/codebridge-website/internal/observability/metrics"
	"github.com/Mearaf/codebridge-website/pkg/logging"
)

var tracer = otel.Tracer("codebridge.internal.booking")

// Service computes availability and books consultations against the
// external calendar.
type Service struct {
	provider CalendarProvider
	repo     Repository
	window   availability.Config
	loc      *time.Location
	logger   *logging.Logger
	metrics  *metrics.BookingMetrics
}

// NewService constructs a booking service. The location fixes which wall
// clock the business-hours window is interpreted in.
func NewService(provider CalendarProvider, repo Repository, window availability.Config, loc *time.Location, logger *logging.Logger, m *metrics.BookingMetrics) *Service {
	if repo == nil {
		panic("booking: repository required")
	}
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		provider: provider,
		repo:     repo,
		window:   window,
		loc:      loc,
		logger:   logger,
		metrics:  m,
	}
}

// Availability returns the free slots on the given day. Calendar provider
// failures propagate: offering slots we cannot verify risks double-booking.
func (s *Service) Availability(ctx context.Context, day time.Time) ([]availability.Slot, error) {
	ctx, span := tracer.Start(ctx, "booking.availability")
	defer span.End()
	span.SetAttributes(attribute.String("codebridge.date", day.Format("2006-01-02")))

	if s.provider == nil {
		return nil, ErrCalendarUnavailable
	}

	day = day.In(s.loc)
	from := time.Date(day.Year(), day.Month(), day.Day(), s.window.StartHour, 0, 0, 0, s.loc)
	to := time.Date(day.Year(), day.Month(), day.Day(), s.window.EndHour, 0, 0, 0, s.loc)

	busy, err := s.provider.BusyIntervals(ctx, from, to)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}

	slots, err := availability.SlotsForDay(day, s.window, busy)
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveAvailability()
	return slots, nil
}

// Book creates the calendar event first and only then records the booking;
// a provider failure aborts the whole operation.
func (s *Service) Book(ctx context.Context, req *CreateBookingRequest) (*Booking, *Event, error) {
	ctx, span := tracer.Start(ctx, "booking.book")
	defer span.End()

	scheduledFor, err := req.ScheduledAt()
	if err != nil {
		return nil, nil, fmt.Errorf("booking: bad scheduledFor: %w", err)
	}
	scheduledFor = scheduledFor.In(s.loc)
	span.SetAttributes(attribute.String("codebridge.scheduled_for", scheduledFor.Format(time.RFC3339)))

	if s.provider == nil {
		return nil, nil, ErrCalendarUnavailable
	}

	duration := time.Duration(s.window.SlotMinutes) * time.Minute
	description := req.Message
	if req.Phone != "" {
		description = fmt.Sprintf("%s\n\nPhone: %s", req.Message, req.Phone)
	}

	event, err := s.provider.CreateEvent(ctx, EventRequest{
		Summary:       fmt.Sprintf("CodeBridge Consultation with %s", req.Name),
		Description:   description,
		Start:         scheduledFor,
		End:           scheduledFor.Add(duration),
		AttendeeEmail: req.Email,
	})
	if err != nil {
		span.RecordError(err)
		s.metrics.ObserveBooking("calendar_error")
		return nil, nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}

	booking, err := s.repo.Create(ctx, &Booking{
		EventID:         event.ID,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Message:         req.Message,
		ScheduledFor:    scheduledFor,
		DurationMinutes: s.window.SlotMinutes,
		Status:          "scheduled",
	})
	if err != nil {
		span.RecordError(err)
		s.metrics.ObserveBooking("store_error")
		return nil, nil, err
	}

	s.metrics.ObserveBooking("created")
	s.logger.Info("booking created", "booking_id", booking.ID, "event_id", event.ID, "scheduled_for", scheduledFor)
	return booking, event, nil
}

// ListUpcoming returns future scheduled bookings.
func (s *Service) ListUpcoming(ctx context.Context) ([]*Booking, error) {
	return s.repo.ListUpcoming(ctx)
}

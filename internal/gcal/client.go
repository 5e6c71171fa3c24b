// Package gcal implements booking.CalendarProvider against the Google
// Calendar v3 API.
package gcal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/Mearaf/codebridge-website/internal/availability"
	"github.com/Mearaf/codebridge-website/internal/booking"
)

// Config holds calendar connection settings.
type Config struct {
	CredentialsJSON []byte
	CalendarID      string // "primary" for the business account's default calendar
	BusinessEmail   string // always invited alongside the client
	Timezone        string
}

// Client wraps the Calendar API for the booking flow.
type Client struct {
	svc           *calendar.Service
	calendarID    string
	businessEmail string
	timezone      string
}

// NewClient builds an authenticated calendar client from service-account
// credentials JSON.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if len(cfg.CredentialsJSON) == 0 {
		return nil, errors.New("gcal: credentials are required")
	}
	if cfg.CalendarID == "" {
		cfg.CalendarID = "primary"
	}

	svc, err := calendar.NewService(ctx,
		option.WithCredentialsJSON(cfg.CredentialsJSON),
		option.WithScopes(calendar.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("gcal: failed to create calendar service: %w", err)
	}

	return &Client{
		svc:           svc,
		calendarID:    cfg.CalendarID,
		businessEmail: cfg.BusinessEmail,
		timezone:      cfg.Timezone,
	}, nil
}

// BusyIntervals lists occupied ranges within [from, to). All-day events
// block the whole day.
func (c *Client) BusyIntervals(ctx context.Context, from, to time.Time) ([]availability.BusyInterval, error) {
	events, err := c.svc.Events.List(c.calendarID).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("gcal: list events: %w", err)
	}

	var busy []availability.BusyInterval
	for _, item := range events.Items {
		interval, ok := eventInterval(item, from.Location())
		if !ok {
			continue
		}
		busy = append(busy, interval)
	}
	return busy, nil
}

func eventInterval(ev *calendar.Event, loc *time.Location) (availability.BusyInterval, bool) {
	if ev.Start == nil || ev.End == nil {
		return availability.BusyInterval{}, false
	}

	// Timed event.
	if ev.Start.DateTime != "" && ev.End.DateTime != "" {
		start, err1 := time.Parse(time.RFC3339, ev.Start.DateTime)
		end, err2 := time.Parse(time.RFC3339, ev.End.DateTime)
		if err1 != nil || err2 != nil {
			return availability.BusyInterval{}, false
		}
		return availability.BusyInterval{Start: start, End: end}, true
	}

	// All-day event: Date is a civil date in the calendar's zone.
	if ev.Start.Date != "" && ev.End.Date != "" {
		start, err1 := time.ParseInLocation("2006-01-02", ev.Start.Date, loc)
		end, err2 := time.ParseInLocation("2006-01-02", ev.End.Date, loc)
		if err1 != nil || err2 != nil {
			return availability.BusyInterval{}, false
		}
		return availability.BusyInterval{Start: start, End: end}, true
	}

	return availability.BusyInterval{}, false
}

// CreateEvent creates the consultation event with a Meet link, reminders,
// and invitations to the client and the business inbox.
func (c *Client) CreateEvent(ctx context.Context, req booking.EventRequest) (*booking.Event, error) {
	attendees := []*calendar.EventAttendee{{Email: req.AttendeeEmail}}
	if c.businessEmail != "" {
		attendees = append(attendees, &calendar.EventAttendee{Email: c.businessEmail})
	}

	ev := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.Start.Format(time.RFC3339),
			TimeZone: c.timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.End.Format(time.RFC3339),
			TimeZone: c.timezone,
		},
		Attendees: attendees,
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 30},
			},
			ForceSendFields: []string{"UseDefault"},
		},
		ConferenceData: &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId:             "meet-" + uuid.NewString(),
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{Type: "hangoutsMeet"},
			},
		},
	}

	created, err := c.svc.Events.Insert(c.calendarID, ev).
		ConferenceDataVersion(1).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("gcal: insert event: %w", err)
	}

	return &booking.Event{
		ID:          created.Id,
		HTMLLink:    created.HtmlLink,
		MeetingLink: created.HangoutLink,
	}, nil
}

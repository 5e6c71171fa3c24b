package booking

import "errors"

var (
	// ErrCalendarUnavailable wraps provider failures; the handler maps it
	// to a 502 so a booking never silently "succeeds".
	ErrCalendarUnavailable = errors.New("calendar provider unavailable")

	// ErrBookingNotFound is returned when a booking id is unknown.
	ErrBookingNotFound = errors.New("booking not found")
)

package booking

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Mearaf/codebridge-website/pkg/logging"
)

// Handler exposes the availability and booking endpoints.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a booking handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

// slotResponse is one entry of the availability payload.
type slotResponse struct {
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	DisplayTime string    `json:"displayTime"`
}

// HandleAvailability handles GET /api/calendar/availability?date=YYYY-MM-DD.
func (h *Handler) HandleAvailability(w http.ResponseWriter, r *http.Request) {
	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		writeError(w, http.StatusBadRequest, "date parameter is required")
		return
	}
	day, err := time.ParseInLocation("2006-01-02", dateParam, h.service.loc)
	if err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	slots, err := h.service.Availability(r.Context(), day)
	if err != nil {
		h.logger.Error("availability lookup failed", "error", err, "date", dateParam)
		writeError(w, http.StatusBadGateway, "failed to fetch calendar availability")
		return
	}

	out := make([]slotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, slotResponse{StartTime: s.Start, EndTime: s.End, DisplayTime: s.Label})
	}
	writeJSON(w, http.StatusOK, map[string]any{"availableSlots": out})
}

// HandleBook handles POST /api/calendar/book.
func (h *Handler) HandleBook(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if problems := req.Validate(); len(problems) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Validation error",
			"errors":  problems,
		})
		return
	}

	booking, event, err := h.service.Book(r.Context(), &req)
	if err != nil {
		// A failed calendar write is a hard error; pretending the booking
		// succeeded would double-book the consultant.
		h.logger.Error("booking failed", "error", err, "email", req.Email)
		if errors.Is(err, ErrCalendarUnavailable) {
			writeError(w, http.StatusBadGateway, "failed to create calendar event")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to save booking")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success":       true,
		"booking":       booking,
		"calendarEvent": event,
	})
}

// HandleListUpcoming handles GET /api/calendar/bookings.
func (h *Handler) HandleListUpcoming(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.ListUpcoming(r.Context())
	if err != nil {
		h.logger.Error("failed to list upcoming bookings", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list bookings")
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"success": false, "message": message})
}

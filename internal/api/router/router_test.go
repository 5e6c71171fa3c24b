package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Mearaf/codebridge-website/internal/availability"
	"github.com/Mearaf/codebridge-website/internal/booking"
	"github.com/Mearaf/codebridge-website/internal/chat"
	"github.com/Mearaf/codebridge-website/internal/content"
	"github.com/Mearaf/codebridge-website/internal/forms"
	"github.com/Mearaf/codebridge-website/pkg/logging"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.Default()

	sessions := chat.NewInMemorySessionStore()
	responder := chat.NewResponder(nil, sessions, time.Second, logger, nil)
	chatHandler := chat.NewHandler(responder, sessions, logger)

	bookingService := booking.NewService(nil, booking.NewInMemoryRepository(),
		availability.DefaultConfig(), time.UTC, logger, nil)
	bookingHandler := booking.NewHandler(bookingService, logger)

	formsHandler := forms.NewHandler(forms.NewInMemoryRepository(), nil, logger)
	contentHandler := content.NewHandler(content.NewInMemoryRepository(), logger)

	return New(&Config{
		Logger:         logger,
		ChatHandler:    chatHandler,
		BookingHandler: bookingHandler,
		FormsHandler:   formsHandler,
		ContentHandler: contentHandler,
	})
}

func TestRouterHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", resp["status"])
	}
}

func TestRouterChatEndpoint(t *testing.T) {
	router := newTestRouter(t)

	body, _ := json.Marshal(map[string]string{"message": "hello"})
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}
	var resp struct {
		Response string `json:"response"`
		Type     string `json:"type"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode chat response: %v", err)
	}
	if resp.Type != "scripted" {
		t.Errorf("expected scripted response, got %q", resp.Type)
	}
	if resp.Response == "" {
		t.Error("expected non-empty response text")
	}
}

func TestRouterContactEndpoint(t *testing.T) {
	router := newTestRouter(t)

	body, _ := json.Marshal(forms.CreateContactRequest{
		Name:    "Router Test",
		Email:   "router@example.com",
		Subject: "Consulting inquiry",
		Message: "Interested in services",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rr.Code, rr.Body.String())
	}
}

func TestRouterAvailabilityWithoutCalendar(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/calendar/availability?date=2026-09-15", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	// No provider is configured, so the failure surfaces instead of
	// being papered over with an empty slot list.
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected status %d, got %d", http.StatusBadGateway, rr.Code)
	}
}

func TestRouterArticleNotFound(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/articles/missing-slug", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
}

func TestRouterFormRateLimit(t *testing.T) {
	logger := logging.Default()
	router := New(&Config{
		Logger:            logger,
		FormsHandler:      forms.NewHandler(forms.NewInMemoryRepository(), nil, logger),
		FormRatePerSecond: 1,
		FormRateBurst:     1,
	})

	body, _ := json.Marshal(forms.CreateSignupRequest{Email: "a@example.com"})

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/email-signup", bytes.NewReader(body))
	req.Header.Set("X-Real-Ip", "203.0.113.10")
	router.ServeHTTP(first, req)
	if first.Code != http.StatusCreated {
		t.Fatalf("first request status = %d", first.Code)
	}

	second := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPost, "/api/email-signup", bytes.NewReader(body))
	req2.Header.Set("X-Real-Ip", "203.0.113.10")
	router.ServeHTTP(second, req2)
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", second.Code)
	}
}

func TestRouterUnmountedHandlersLeave404(t *testing.T) {
	router := New(&Config{Logger: logging.Default()})

	req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
}

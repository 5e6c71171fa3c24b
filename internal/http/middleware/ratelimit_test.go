package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimiterBurstThenDeny(t *testing.T) {
	rl := NewRateLimiter(1, 3)

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d should be within burst", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("request beyond burst should be denied")
	}
	// A different IP has its own bucket.
	if !rl.Allow("10.0.0.2") {
		t.Fatal("separate IP should not share the bucket")
	}
}

func TestRateLimitMiddlewareReturns429(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mw := RateLimit(1, 1)
	wrapped := mw(handler)

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.Header.Set("X-Real-Ip", "203.0.113.9")
	wrapped.ServeHTTP(first, req)
	if first.Code != http.StatusOK {
		t.Fatalf("first request status = %d", first.Code)
	}

	second := httptest.NewRecorder()
	wrapped.ServeHTTP(second, req.Clone(req.Context()))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", second.Code)
	}
}

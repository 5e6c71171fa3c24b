package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestChatMetricsCount(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewChatMetrics(reg)

	m.ObserveResponse("scripted")
	m.ObserveResponse("scripted")
	m.ObserveResponse("ai")
	m.ObserveFallback()

	if got := testutil.ToFloat64(m.responsesTotal.WithLabelValues("scripted")); got != 2 {
		t.Errorf("scripted responses = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.fallbacksTotal); got != 1 {
		t.Errorf("fallbacks = %v, want 1", got)
	}
}

func TestNilReceiversAreSafe(t *testing.T) {
	var cm *ChatMetrics
	var bm *BookingMetrics

	// Must not panic when metrics are not wired.
	cm.ObserveResponse("ai")
	cm.ObserveFallback()
	cm.ObserveGenerateLatency(0.1)
	bm.ObserveAvailability()
	bm.ObserveBooking("created")
}

func TestBookingMetricsCount(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBookingMetrics(reg)

	m.ObserveAvailability()
	m.ObserveBooking("created")
	m.ObserveBooking("calendar_error")

	if got := testutil.ToFloat64(m.availabilityTotal); got != 1 {
		t.Errorf("availability = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.bookingsTotal.WithLabelValues("calendar_error")); got != 1 {
		t.Errorf("calendar_error bookings = %v, want 1", got)
	}
}

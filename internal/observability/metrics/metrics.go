package metrics

import "github.com/prometheus/client_golang/prometheus"

// ChatMetrics counts chat responses by mode and generative fallbacks.
type ChatMetrics struct {
	responsesTotal  *prometheus.CounterVec
	fallbacksTotal  prometheus.Counter
	generateLatency prometheus.Histogram
}

func NewChatMetrics(reg prometheus.Registerer) *ChatMetrics {
	m := &ChatMetrics{
		responsesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "codebridge",
			Subsystem: "chat",
			Name:      "responses_total",
			Help:      "Chat responses served, by effective mode",
		}, []string{"mode"}),
		fallbacksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "codebridge",
			Subsystem: "chat",
			Name:      "generative_fallbacks_total",
			Help:      "Generative requests silently downgraded to scripted replies",
		}),
		generateLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "codebridge",
			Subsystem: "chat",
			Name:      "generate_latency_seconds",
			Help:      "Latency of generative provider calls",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.responsesTotal, m.fallbacksTotal, m.generateLatency)
	return m
}

func (m *ChatMetrics) ObserveResponse(mode string) {
	if m == nil {
		return
	}
	m.responsesTotal.WithLabelValues(mode).Inc()
}

func (m *ChatMetrics) ObserveFallback() {
	if m == nil {
		return
	}
	m.fallbacksTotal.Inc()
}

func (m *ChatMetrics) ObserveGenerateLatency(seconds float64) {
	if m == nil {
		return
	}
	m.generateLatency.Observe(seconds)
}

// BookingMetrics counts availability lookups and booking outcomes.
type BookingMetrics struct {
	availabilityTotal prometheus.Counter
	bookingsTotal     *prometheus.CounterVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		availabilityTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "codebridge",
			Subsystem: "booking",
			Name:      "availability_requests_total",
			Help:      "Availability lookups served",
		}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "codebridge",
			Subsystem: "booking",
			Name:      "bookings_total",
			Help:      "Booking attempts, by outcome",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.availabilityTotal, m.bookingsTotal)
	return m
}

func (m *BookingMetrics) ObserveAvailability() {
	if m == nil {
		return
	}
	m.availabilityTotal.Inc()
}

func (m *BookingMetrics) ObserveBooking(status string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(status).Inc()
}

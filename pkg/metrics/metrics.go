package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// APIMetrics records the dashboard API's operational counters.
type APIMetrics struct {
	logins           *prometheus.CounterVec
	salesCreated     prometheus.Counter
	paymentCallbacks *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
}

// NewAPIMetrics registers the API metrics on the provided registerer.
func NewAPIMetrics(reg prometheus.Registerer) *APIMetrics {
	if reg == nil {
		return &APIMetrics{}
	}
	logins := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_logins_total",
		Help: "Login attempts by result.",
	}, []string{"result"})
	salesCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sales_created_total",
		Help: "Sales records created.",
	})
	paymentCallbacks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_callbacks_total",
		Help: "Payment gateway callbacks by status.",
	}, []string{"status"})
	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request duration in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "status"})
	reg.MustRegister(logins, salesCreated, paymentCallbacks, requestDuration)
	return &APIMetrics{
		logins:           logins,
		salesCreated:     salesCreated,
		paymentCallbacks: paymentCallbacks,
		requestDuration:  requestDuration,
	}
}

// IncLogin records a login attempt outcome ("success" or "failure").
func (m *APIMetrics) IncLogin(result string) {
	if m == nil || m.logins == nil {
		return
	}
	m.logins.WithLabelValues(normalizeLabel(result)).Inc()
}

// IncSaleCreated counts a persisted sale.
func (m *APIMetrics) IncSaleCreated() {
	if m == nil || m.salesCreated == nil {
		return
	}
	m.salesCreated.Inc()
}

// IncPaymentCallback counts a gateway callback by its reported status.
func (m *APIMetrics) IncPaymentCallback(status string) {
	if m == nil || m.paymentCallbacks == nil {
		return
	}
	m.paymentCallbacks.WithLabelValues(normalizeLabel(status)).Inc()
}

// ObserveRequest records one served request.
func (m *APIMetrics) ObserveRequest(method, status string, duration time.Duration) {
	if m == nil || m.requestDuration == nil {
		return
	}
	m.requestDuration.WithLabelValues(normalizeLabel(method), normalizeLabel(status)).Observe(duration.Seconds())
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "atn_portal"

// Submission outcomes.
const (
	OutcomeSent      = "sent"
	OutcomeInvalid   = "invalid"
	OutcomeDuplicate = "duplicate"
	OutcomeFailed    = "failed"
)

// Metrics holds the portal's Prometheus collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// Submissions by request type and outcome
	Submissions *prometheus.CounterVec

	// Workflow delivery latency by result, one observation per Send
	DeliveryDuration *prometheus.HistogramVec

	// Individual workflow attempts by HTTP status class ("2xx", "5xx", "error")
	DeliveryAttempts *prometheus.CounterVec

	// RUT validations by outcome
	RUTValidations *prometheus.CounterVec

	// HTTP requests by method, chi route pattern and status code
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New registers every collector, plus the Go runtime and process collectors,
// on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := NewWith(reg)
	m.registry = reg
	return m
}

// NewWith registers the portal collectors on reg.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Request submissions by request type and outcome",
		}, []string{"type", "outcome"}),

		DeliveryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "workflow_delivery_duration_seconds",
			Help:      "Duration of workflow deliveries including retries",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"result"}),

		DeliveryAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workflow_attempts_total",
			Help:      "Workflow HTTP attempts by status class",
		}, []string{"status"}),

		RUTValidations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rut_validations_total",
			Help:      "RUT validations by outcome",
		}, []string{"outcome"}),

		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code",
		}, []string{"method", "route", "code"}),

		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// Handler exposes the registry created by New. Metrics built with NewWith
// are served from the default gatherer.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.registry == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) IncSubmission(requestType, outcome string) {
	if m != nil {
		m.Submissions.WithLabelValues(requestType, outcome).Inc()
	}
}

func (m *Metrics) ObserveDelivery(d time.Duration, success bool) {
	if m != nil {
		result := "success"
		if !success {
			result = "failure"
		}
		m.DeliveryDuration.WithLabelValues(result).Observe(d.Seconds())
	}
}

// IncDeliveryAttempt counts one HTTP attempt; status 0 means no response.
func (m *Metrics) IncDeliveryAttempt(status int) {
	if m != nil {
		m.DeliveryAttempts.WithLabelValues(statusClass(status)).Inc()
	}
}

func (m *Metrics) IncRUTValidation(outcome string) {
	if m != nil {
		m.RUTValidations.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) ObserveHTTP(method, route string, code int, d time.Duration) {
	if m != nil {
		m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
		m.HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
	}
}

func statusClass(status int) string {
	if status < 100 || status > 599 {
		return "error"
	}
	return strconv.Itoa(status/100) + "xx"
}

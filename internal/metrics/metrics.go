package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Business logic metrics
	authRegistrationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_registrations_total",
			Help: "Total number of successful registrations",
		},
	)

	authLoginsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_logins_total",
			Help: "Total number of successful logins",
		},
	)

	authLoginsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_logins_failed_total",
			Help: "Total number of failed login attempts",
		},
	)

	// Failed profile inserts never fail the registration, so this
	// counter is how operators notice them.
	profileWritesFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_profile_writes_failed_total",
			Help: "Total number of failed role-profile inserts after a successful registration",
		},
		[]string{"table"},
	)
)

// RecordHTTPRequest records HTTP request metrics.
func RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}

func RecordRegistration() { authRegistrationsTotal.Inc() }

func RecordLogin() { authLoginsTotal.Inc() }

func RecordLoginFailure() { authLoginsFailed.Inc() }

func RecordProfileWriteFailure(table string) {
	profileWritesFailed.WithLabelValues(table).Inc()
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() http.Handler { return promhttp.Handler() }

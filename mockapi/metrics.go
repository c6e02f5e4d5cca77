package mockapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsPath serves the request metrics of a Server in the Prometheus text format.
const MetricsPath = "/metrics"

type serverMetrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// newServerMetrics uses its own registry so that any number of servers can coexist in one
// process.
func newServerMetrics() *serverMetrics {
	m := &serverMetrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scooter_mock_requests_total",
				Help: "Total number of requests served by the mock scooter API",
			},
			[]string{"method", "path", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "scooter_mock_request_duration_seconds",
				Help:    "Duration of requests served by the mock scooter API",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
	}
	m.registry.MustRegister(m.requests, m.duration)
	return m
}

func (m *serverMetrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// observe records every request and logs it at debug level.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		path := routePattern(r)
		status := strconv.Itoa(ww.Status())

		s.metrics.requests.WithLabelValues(r.Method, path, status).Inc()
		s.metrics.duration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
		s.loggers.Debugf("mock API: %s %s -> %d", r.Method, r.URL.Path, ww.Status())
	})
}

// unmatchedRoute is the path label of requests that no route handled.
const unmatchedRoute = "unmatched"

// routePattern keeps the label set bounded: neither courier ids nor unknown paths become label
// values.
func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return unmatchedRoute
}

// Package metrics exposes business and HTTP metrics in Prometheus format.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"funeral_quote/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "funeral_quote"

type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	SessionsStartedTotal prometheus.Counter
	EstimatesSavedTotal  *prometheus.CounterVec
	EstimateTotalYen     *prometheus.HistogramVec
	PrintPublishedTotal  prometheus.Counter
}

var _ interfaces.IMetricsRecorder = (*Metrics)(nil)

func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by route, method and status.",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by route.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		SessionsStartedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_sessions_started_total",
			Help:      "Quote sessions started, including sessions opened from an estimate.",
		}),
		EstimatesSavedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "estimates_saved_total",
				Help:      "Saved estimates by document type.",
			},
			[]string{"document_type"},
		),
		EstimateTotalYen: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "estimate_total_yen",
				Help:      "Untaxed total of saved estimates.",
				Buckets:   []float64{300000, 500000, 1000000, 1500000, 2000000, 3000000, 5000000, 10000000},
			},
			[]string{"document_type"},
		),
		PrintPublishedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "print_payloads_published_total",
			Help:      "Payloads written to the print hand-off slot.",
		}),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.SessionsStartedTotal,
		m.EstimatesSavedTotal,
		m.EstimateTotalYen,
		m.PrintPublishedTotal,
	)
	return m
}

func (m *Metrics) SessionStarted() {
	m.SessionsStartedTotal.Inc()
}

func (m *Metrics) EstimateSaved(documentType string, totalPrice int64) {
	m.EstimatesSavedTotal.WithLabelValues(documentType).Inc()
	m.EstimateTotalYen.WithLabelValues(documentType).Observe(float64(totalPrice))
}

func (m *Metrics) PrintPublished() {
	m.PrintPublishedTotal.Inc()
}

// Middleware records every request under its route template so that session
// ids do not explode label cardinality.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

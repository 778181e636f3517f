package prometheus

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sm8ta/registration_microservice/internal/core/ports"
)

const appName = "registration_microservice"

type PrometheusAdapter struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	registrationsTotal  *prometheus.CounterVec
	loginAttemptsTotal  *prometheus.CounterVec
}

func NewPrometheusAdapter(registerer prometheus.Registerer) *PrometheusAdapter {
	adapter := &PrometheusAdapter{
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: ports.MetricHTTPRequests,
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status", "app_name"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    ports.MetricRequestDuration,
				Help:    "Duration API requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method", "status", "app_name"},
		),
		registrationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: ports.MetricRegistrations,
				Help: "Registration attempts by result",
			},
			[]string{"result", "app_name"},
		),
		loginAttemptsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: ports.MetricLoginAttempts,
				Help: "Login attempts by method and result",
			},
			[]string{"method", "result", "app_name"},
		),
	}

	registerer.MustRegister(
		adapter.httpRequestsTotal,
		adapter.httpRequestDuration,
		adapter.registrationsTotal,
		adapter.loginAttemptsTotal,
	)

	// Export the health series before the first scrape.
	adapter.httpRequestsTotal.WithLabelValues("/health", "GET", "200", appName).Add(0)
	return adapter
}

func (p *PrometheusAdapter) IncrementCounter(name string, labels map[string]string) {
	switch name {
	case ports.MetricRegistrations:
		p.registrationsTotal.WithLabelValues(labels["result"], appName).Inc()
	case ports.MetricLoginAttempts:
		p.loginAttemptsTotal.WithLabelValues(labels["method"], labels["result"], appName).Inc()
	default:
		p.httpRequestsTotal.WithLabelValues(
			labels["path"],
			labels["method"],
			labels["status"],
			appName,
		).Inc()
	}
}

func (p *PrometheusAdapter) RecordDuration(name string, duration time.Duration, labels map[string]string) {
	p.httpRequestDuration.WithLabelValues(
		labels["path"],
		labels["method"],
		labels["status"],
		appName,
	).Observe(duration.Seconds())
}

func (p *PrometheusAdapter) RecordMetrics(c *gin.Context, start time.Time) {
	status := fmt.Sprintf("%d", c.Writer.Status())
	labels := map[string]string{
		"path":   c.FullPath(),
		"method": c.Request.Method,
		"status": status,
	}

	p.IncrementCounter(ports.MetricHTTPRequests, labels)
	p.RecordDuration(ports.MetricRequestDuration, time.Since(start), labels)
}

var _ ports.MetricsPort = (*PrometheusAdapter)(nil)

package ports

import (
	"time"

	"github.com/gin-gonic/gin"
)

type MetricsPort interface {
	IncrementCounter(name string, labels map[string]string)
	RecordDuration(name string, duration time.Duration, labels map[string]string)
	RecordMetrics(c *gin.Context, start time.Time)
}

const (
	MetricHTTPRequests    = "http_requests_total"
	MetricRequestDuration = "api_request_duration_seconds"
	MetricRegistrations   = "user_registrations_total"
	MetricLoginAttempts   = "user_login_attempts_total"
)

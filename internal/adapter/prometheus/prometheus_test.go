package prometheus

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/sm8ta/registration_microservice/internal/core/ports"
)

func TestPrometheusAdapter_Counters(t *testing.T) {
	p := NewPrometheusAdapter(prometheus.NewRegistry())

	p.IncrementCounter(ports.MetricRegistrations, map[string]string{"result": "success"})
	p.IncrementCounter(ports.MetricRegistrations, map[string]string{"result": "success"})
	p.IncrementCounter(ports.MetricLoginAttempts, map[string]string{"method": "email", "result": "invalid_password"})

	assert.Equal(t, 2.0, testutil.ToFloat64(p.registrationsTotal.WithLabelValues("success", appName)))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.loginAttemptsTotal.WithLabelValues("email", "invalid_password", appName)))
}

func TestPrometheusAdapter_RecordMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	p := NewPrometheusAdapter(prometheus.NewRegistry())

	router := gin.New()
	router.POST("/login", func(c *gin.Context) {
		defer p.RecordMetrics(c, time.Now())
		c.Status(http.StatusBadRequest)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(p.httpRequestsTotal.WithLabelValues("/login", "POST", "400", appName)))
	assert.Equal(t, 1, testutil.CollectAndCount(p.httpRequestDuration))
}

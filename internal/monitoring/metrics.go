package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registrations_total",
			Help: "Total registration attempts by outcome",
		},
		[]string{"outcome"},
	)

	checkinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkins_total",
			Help: "Total attendees checked in by mode",
		},
		[]string{"mode"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// TrackRegistration records one registration attempt. Outcomes: "created",
// "full", "duplicate_email", "not_found", "error".
func TrackRegistration(outcome string) {
	registrationsTotal.WithLabelValues(outcome).Inc()
}

// TrackCheckins records n attendees checked in via mode "single" or "bulk".
func TrackCheckins(mode string, n int) {
	checkinsTotal.WithLabelValues(mode).Add(float64(n))
}

// RequestMetrics observes request latency per route and tags every request
// with an X-Request-ID for log correlation, generating one when the client
// did not send any.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequestDuration.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}

package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/PratikDhanave/event-registration-service/internal/handlers"
	"github.com/PratikDhanave/event-registration-service/internal/monitoring"
	"github.com/PratikDhanave/event-registration-service/internal/service"
	"github.com/PratikDhanave/event-registration-service/internal/store"
)

// NewRouter wires the public endpoints and the API.
// Public: /health, /ready, /metrics
// API: /events, /attendees, /register, /bulk-check-in
func NewRouter(db *store.PostgresStore, events *service.EventService, registrations *service.RegistrationService, checkins *service.CheckinService) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(monitoring.RequestMetrics())

	// Liveness: confirms the process is running.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Readiness: confirms the DB dependency is reachable.
	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers.RegisterEventRoutes(r, events)
	handlers.RegisterAttendeeRoutes(r, registrations)
	handlers.RegisterCheckinRoutes(r, checkins)

	return r
}

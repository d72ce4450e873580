package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PratikDhanave/event-registration-service/internal/models"
	"github.com/PratikDhanave/event-registration-service/internal/monitoring"
	"github.com/PratikDhanave/event-registration-service/internal/service"
)

// RegisterAttendeeRoutes registers the registration endpoints.
//
// POST /attendees?event_id=  register an attendee (capacity enforced)
// GET  /attendees?event_id=  list attendees of an event
func RegisterAttendeeRoutes(r gin.IRoutes, svc *service.RegistrationService) {
	r.POST("/attendees", func(c *gin.Context) {
		id, ok := eventID(c)
		if !ok {
			return
		}

		var req models.AttendeeCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}
		if req.FirstName == "" || req.LastName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "first_name and last_name required"})
			return
		}
		if req.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email required"})
			return
		}
		if req.PhoneNumber == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "phone_number required"})
			return
		}

		attendee, err := svc.Register(c.Request.Context(), id, service.RegisterInput{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
		})
		if err != nil {
			switch {
			case errors.Is(err, models.ErrEventNotFound):
				monitoring.TrackRegistration("not_found")
				c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			case errors.Is(err, models.ErrEventFull):
				monitoring.TrackRegistration("full")
				c.JSON(http.StatusBadRequest, gin.H{"error": "Event is full"})
			case errors.Is(err, models.ErrDuplicateEmail):
				monitoring.TrackRegistration("duplicate_email")
				c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			default:
				monitoring.TrackRegistration("error")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "db write failed"})
			}
			return
		}

		monitoring.TrackRegistration("created")
		c.JSON(http.StatusCreated, gin.H{
			"message":  "registration is successfully done",
			"attendee": attendee,
		})
	})

	r.GET("/attendees", func(c *gin.Context) {
		id, ok := eventID(c)
		if !ok {
			return
		}

		attendees, err := svc.List(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
			return
		}
		c.JSON(http.StatusOK, attendees)
	})
}

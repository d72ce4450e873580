package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PratikDhanave/event-registration-service/internal/models"
	"github.com/PratikDhanave/event-registration-service/internal/service"
)

// parseRFC3339 parses an RFC3339 timestamp and normalizes it to UTC.
func parseRFC3339(ts string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// eventID reads the event_id query parameter.
func eventID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Query("event_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event_id must be an integer"})
		return 0, false
	}
	return id, true
}

// RegisterEventRoutes registers the event lifecycle endpoints.
//
// POST   /events           create
// GET    /events           list (filters: status, location, start_time)
// PUT    /events?event_id= partial update
// DELETE /events?event_id= delete (cascades to attendees)
func RegisterEventRoutes(r gin.IRoutes, svc *service.EventService) {
	r.POST("/events", func(c *gin.Context) {
		var req models.EventCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}

		if req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
			return
		}
		if req.Location == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "location required"})
			return
		}
		if req.MaxAttendees <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max_attendees must be positive"})
			return
		}

		start, err := parseRFC3339(req.StartTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_time must be RFC3339"})
			return
		}
		end, err := parseRFC3339(req.EndTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_time must be RFC3339"})
			return
		}

		ev, err := svc.Create(c.Request.Context(), service.CreateEventInput{
			Name:         req.Name,
			Description:  req.Description,
			StartTime:    start,
			EndTime:      end,
			Location:     req.Location,
			MaxAttendees: req.MaxAttendees,
			Status:       req.Status,
		})
		if err != nil {
			renderEventError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "event created successfully",
			"event":   ev,
		})
	})

	r.GET("/events", func(c *gin.Context) {
		var filter service.EventFilter
		filter.Status = c.Query("status")
		filter.Location = c.Query("location")

		if ts := c.Query("start_time"); ts != "" {
			from, err := parseRFC3339(ts)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "start_time must be RFC3339"})
				return
			}
			filter.StartFrom = from
		}

		events, err := svc.List(c.Request.Context(), filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
			return
		}
		c.JSON(http.StatusOK, events)
	})

	r.PUT("/events", func(c *gin.Context) {
		id, ok := eventID(c)
		if !ok {
			return
		}

		var req models.EventUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}

		patch := service.UpdateEventPatch{
			Name:         req.Name,
			Description:  req.Description,
			Location:     req.Location,
			MaxAttendees: req.MaxAttendees,
			Status:       req.Status,
		}
		if req.StartTime != nil {
			start, err := parseRFC3339(*req.StartTime)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "start_time must be RFC3339"})
				return
			}
			patch.StartTime = &start
		}
		if req.EndTime != nil {
			end, err := parseRFC3339(*req.EndTime)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "end_time must be RFC3339"})
				return
			}
			patch.EndTime = &end
		}

		ev, err := svc.Update(c.Request.Context(), id, patch)
		if err != nil {
			// Update-not-found is 400, kept from the original API contract.
			if errors.Is(err, models.ErrEventNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "event not found"})
				return
			}
			renderEventError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "event updated successfully",
			"event":   ev,
		})
	})

	r.DELETE("/events", func(c *gin.Context) {
		id, ok := eventID(c)
		if !ok {
			return
		}

		if err := svc.Delete(c.Request.Context(), id); err != nil {
			if errors.Is(err, models.ErrEventNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db delete failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "event deleted successfully"})
	})
}

func renderEventError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidTimeRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_time must be after start_time"})
	case errors.Is(err, models.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be scheduled or completed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db write failed"})
	}
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PratikDhanave/event-registration-service/internal/models"
	"github.com/PratikDhanave/event-registration-service/internal/monitoring"
	"github.com/PratikDhanave/event-registration-service/internal/service"
)

// RegisterCheckinRoutes registers the check-in endpoints.
//
// POST /register?attendee_id=  set one attendee's check-in flag
// POST /bulk-check-in          multipart CSV upload, first column = attendee id
func RegisterCheckinRoutes(r gin.IRoutes, svc *service.CheckinService) {
	r.POST("/register", func(c *gin.Context) {
		attendeeID, err := strconv.ParseInt(c.Query("attendee_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "attendee_id must be an integer"})
			return
		}

		var req models.CheckinRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.CheckInStatus == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "check_in_status required"})
			return
		}

		if err := svc.CheckIn(c.Request.Context(), attendeeID, *req.CheckInStatus); err != nil {
			if errors.Is(err, models.ErrAttendeeNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "attendee not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db write failed"})
			return
		}

		monitoring.TrackCheckins("single", 1)
		c.JSON(http.StatusOK, gin.H{"message": "check-in done successfully"})
	})

	r.POST("/bulk-check-in", func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file upload required"})
			return
		}

		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read uploaded file"})
			return
		}
		defer f.Close()

		count, err := svc.BulkCheckIn(c.Request.Context(), f)
		if err != nil {
			if errors.Is(err, models.ErrNoAttendeesMatched) {
				c.JSON(http.StatusNotFound, gin.H{"error": "No valid attendees found in the file"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "bulk check-in failed"})
			return
		}

		monitoring.TrackCheckins("bulk", count)
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("check-in successful for %d attendees", count),
			"count":   count,
		})
	})
}

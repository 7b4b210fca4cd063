package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"slotify/config"
	"slotify/models"
	"slotify/services/availability"
	"slotify/utils"
)

// TimeslotHandler serves availability queries.
type TimeslotHandler struct {
	Service availability.Service
}

// ListTimeslotsHandler handles POST /api/timeslots/:did. The response for a
// given (day, team, region, duration) is cached briefly; event writes for
// the day invalidate it.
func (h *TimeslotHandler) ListTimeslotsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	dayID := c.Param("did")

	var req models.TimeslotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Debug("Invalid timeslot request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if slots, ok := utils.GetCachedTimeslots(ctx, dayID, req.Team, req.Region, req.Duration); ok {
		c.JSON(http.StatusOK, gin.H{"message": "Timeslots fetched", "timeslots": slots})
		return
	}

	slots, err := h.Service.ListAvailableSlots(ctx, availability.Query{
		DayID:    dayID,
		TeamID:   req.Team,
		RegionID: req.Region,
		Duration: req.Duration,
	})
	if err != nil {
		switch {
		case availability.IsInvalidQuery(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid availability query", "message": err.Error()})
		case availability.IsTeamNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": "Team not found", "message": err.Error()})
		default:
			logger.Error("Failed to compute timeslots",
				zap.String("did", dayID), zap.String("team", req.Team), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute timeslots"})
		}
		return
	}

	ttl := time.Duration(config.AppConfig.TimeslotCacheTTLSec) * time.Second
	if ttl > 0 {
		utils.SetCachedTimeslots(ctx, dayID, req.Team, req.Region, req.Duration, slots, ttl)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Timeslots fetched", "timeslots": slots})
}

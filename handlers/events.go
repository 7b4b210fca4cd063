package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"slotify/middleware"
	"slotify/models"
	eventSvc "slotify/services/event"
	"slotify/utils"
)

// EventHandler serves event reads and the guarded write path.
type EventHandler struct {
	Service eventSvc.EventService
}

// writeEventError maps coded service failures to HTTP statuses.
func writeEventError(c *gin.Context, err error) {
	switch {
	case eventSvc.IsInvalidInput(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event payload", "message": err.Error()})
	case eventSvc.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found", "message": err.Error()})
	case eventSvc.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": "Timeslot no longer available", "message": err.Error()})
	case eventSvc.IsForbidden(err):
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient privileges", "message": err.Error()})
	default:
		utils.GetLogger().Error("Event operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Event operation failed"})
	}
}

// ListEventsByMonthHandler handles GET /api/events/month/:mid.
func (h *EventHandler) ListEventsByMonthHandler(c *gin.Context) {
	events, err := h.Service.ListByMonth(c.Request.Context(), middleware.GetRole(c), c.Param("mid"))
	if err != nil {
		writeEventError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// ListEventsByDayHandler handles GET /api/events/day/:did.
func (h *EventHandler) ListEventsByDayHandler(c *gin.Context) {
	events, err := h.Service.ListByDay(c.Request.Context(), middleware.GetRole(c), c.Param("did"))
	if err != nil {
		writeEventError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// GetEventHandler handles GET /api/events/:id.
func (h *EventHandler) GetEventHandler(c *gin.Context) {
	ev, err := h.Service.Get(c.Request.Context(), middleware.GetRole(c), c.Param("id"))
	if err != nil {
		writeEventError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": ev})
}

// CreateEventHandler handles POST /api/events.
func (h *EventHandler) CreateEventHandler(c *gin.Context) {
	var input models.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	ev, err := h.Service.Create(c.Request.Context(),
		middleware.GetUID(c), middleware.GetDisplayName(c), middleware.GetRole(c), input)
	if err != nil {
		writeEventError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Event created", "event": ev})
}

// UpdateEventHandler handles PUT /api/events/:id.
func (h *EventHandler) UpdateEventHandler(c *gin.Context) {
	var input models.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	ev, err := h.Service.Update(c.Request.Context(), middleware.GetUID(c), middleware.GetRole(c), c.Param("id"), input)
	if err != nil {
		writeEventError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event updated", "event": ev})
}

// DeleteEventHandler handles DELETE /api/events/:id.
func (h *EventHandler) DeleteEventHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), middleware.GetUID(c), middleware.GetRole(c), c.Param("id")); err != nil {
		writeEventError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}

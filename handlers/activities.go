package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"slotify/middleware"
	"slotify/models"
	eventSvc "slotify/services/event"
)

// ActivityHandler serves the per-event comment thread.
type ActivityHandler struct {
	Service eventSvc.ActivityService
}

// ListActivityHandler handles GET /api/events/:id/activity.
func (h *ActivityHandler) ListActivityHandler(c *gin.Context) {
	activity, err := h.Service.ListActivity(c.Request.Context(), middleware.GetRole(c), c.Param("id"))
	if err != nil {
		writeEventError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activity": activity})
}

// SubmitActivityHandler handles POST /api/events/:id/activity. One note per
// author per event; posting again replaces the previous note.
func (h *ActivityHandler) SubmitActivityHandler(c *gin.Context) {
	var input models.ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	note, err := h.Service.SubmitActivity(c.Request.Context(),
		middleware.GetUID(c), middleware.GetDisplayName(c), c.Param("id"), input)
	if err != nil {
		writeEventError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Activity saved", "activity": note})
}

// DeleteActivityHandler handles DELETE /api/activity/:aid.
func (h *ActivityHandler) DeleteActivityHandler(c *gin.Context) {
	if err := h.Service.DeleteActivity(c.Request.Context(), middleware.GetUID(c), middleware.GetRole(c), c.Param("aid")); err != nil {
		writeEventError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted"})
}

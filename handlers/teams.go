package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	teamRepoPkg "slotify/database/repository/team"
	"slotify/middleware"
	"slotify/models"
	"slotify/services/permission"
	"slotify/utils"
)

// TeamHandler serves team lookups for the booking form.
type TeamHandler struct {
	Repo teamRepoPkg.TeamRepository
}

// projectTeam filters a team through the caller's read table. Operating
// hours and durations are user-level fields; guests only see the card.
func projectTeam(role models.Role, team models.Team) models.TeamClient {
	fields := permission.ReadableFields(role, permission.ResourceTeam)
	view := models.TeamClient{ID: team.ID}
	if fields["access"] {
		view.Access = team.Access
	}
	if fields["name"] {
		view.Name = team.Name
	}
	if fields["imageUrl"] {
		view.ImageURL = team.ImageURL
	}
	if fields["brands"] {
		view.Brands = team.Brands
	}
	if fields["platforms"] {
		view.Platforms = team.Platforms
	}
	if fields["duration"] {
		view.Durations = team.Durations
	}
	if fields["times"] {
		view.Times = team.Times
	}
	return view
}

// ListTeamsHandler handles GET /api/teams.
func (h *TeamHandler) ListTeamsHandler(c *gin.Context) {
	role := middleware.GetRole(c)

	teams, err := h.Repo.List(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list teams", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list teams"})
		return
	}

	views := make([]models.TeamClient, 0, len(teams))
	for _, team := range teams {
		if !permission.CanRead(role, team.Access) {
			continue
		}
		views = append(views, projectTeam(role, team))
	}
	c.JSON(http.StatusOK, gin.H{"teams": views})
}

// GetTeamHandler handles GET /api/teams/:id.
func (h *TeamHandler) GetTeamHandler(c *gin.Context) {
	role := middleware.GetRole(c)
	teamID := c.Param("id")
	ctx := c.Request.Context()

	team, ok := utils.GetCachedTeam(ctx, teamID)
	if !ok {
		var err error
		team, err = h.Repo.GetByID(ctx, teamID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
				return
			}
			utils.GetLogger().Error("Failed to fetch team", zap.String("team", teamID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch team"})
			return
		}
		utils.SetCachedTeam(ctx, *team)
	}

	if !permission.CanRead(role, team.Access) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"team": projectTeam(role, *team)})
}

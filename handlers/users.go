package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	userRepoPkg "slotify/database/repository/user"
	"slotify/middleware"
	"slotify/models"
	"slotify/services/permission"
	"slotify/utils"
)

// UserHandler serves profile reads and the self-service profile update.
type UserHandler struct {
	Repo userRepoPkg.UserRepository
}

// projectUser filters a user document through the caller's read table.
func projectUser(role models.Role, user models.User) models.UserClient {
	fields := permission.ReadableFields(role, permission.ResourceUser)
	var view models.UserClient
	if fields["uid"] {
		view.UID = user.UID
	}
	if fields["role"] {
		view.Role = user.Role
	}
	if fields["firstName"] {
		view.FirstName = user.FirstName
	}
	if fields["lastName"] {
		view.LastName = user.LastName
	}
	if fields["email"] {
		view.Email = user.Email
	}
	if fields["team"] {
		view.Team = user.Team
	}
	if fields["region"] {
		view.Region = user.Region
	}
	if fields["about"] {
		view.About = user.About
	}
	if fields["optinComments"] {
		view.OptinComments = user.OptinComments
	}
	return view
}

// GetProfileHandler handles GET /api/users/me. Callers always see their own
// full document.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	uid := middleware.GetUID(c)

	user, err := h.Repo.GetByUID(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		utils.GetLogger().Error("Failed to fetch profile", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateProfileHandler handles PUT /api/users/me. Role is never writable
// here; it comes from the identity provider's custom claims.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	uid := middleware.GetUID(c)

	var input models.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	user := models.User{
		UID:           uid,
		Role:          middleware.GetRole(c),
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		Team:          input.Team,
		Region:        input.Region,
		About:         input.About,
		OptinComments: input.OptinComments,
	}
	if err := h.Repo.Upsert(c.Request.Context(), user); err != nil {
		utils.GetLogger().Error("Failed to update profile", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "user": user})
}

// GetUserHandler handles GET /api/users/:uid. The document is filtered
// through the caller's read table; guests resolve an empty field set.
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	role := middleware.GetRole(c)
	uid := c.Param("uid")

	user, err := h.Repo.GetByUID(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		utils.GetLogger().Error("Failed to fetch user", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": projectUser(role, *user)})
}

// ListUsersHandler handles GET /api/users.
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	role := middleware.GetRole(c)

	users, err := h.Repo.List(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}

	views := make([]models.UserClient, 0, len(users))
	for _, user := range users {
		views = append(views, projectUser(role, user))
	}
	c.JSON(http.StatusOK, gin.H{"users": views})
}

package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"slotify/handlers"
	"slotify/middleware"
	"slotify/models"
	"slotify/utils"
)

// RegisterTimeslotRoutes registers availability endpoints. Availability is
// public: guests browse slots before signing in.
func RegisterTimeslotRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/timeslots")
	{
		api.POST("/:did", hb.ListTimeslotsHandler)
	}
}

// RegisterEventRoutes registers event and activity endpoints. Reads accept
// anonymous callers and degrade the projection to guest fields; writes
// require an authenticated user.
func RegisterEventRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/events")
	api.Use(middleware.FirebaseAuthMiddleware(true))
	{
		api.GET("/month/:mid", hb.ListEventsByMonthHandler)
		api.GET("/day/:did", hb.ListEventsByDayHandler)
		api.GET("/:id", hb.GetEventHandler)

		protected := api.Group("")
		protected.Use(middleware.RequireRole(models.RoleUser))
		protected.POST("", hb.CreateEventHandler)
		protected.PUT("/:id", hb.UpdateEventHandler)
		protected.DELETE("/:id", hb.DeleteEventHandler)

		protected.GET("/:id/activity", hb.ListActivityHandler)
		protected.POST("/:id/activity", hb.SubmitActivityHandler)
	}

	activity := r.Group("/api/activity")
	activity.Use(middleware.FirebaseAuthMiddleware(false), middleware.RequireRole(models.RoleUser))
	{
		activity.DELETE("/:aid", hb.DeleteActivityHandler)
	}
}

// RegisterTeamRoutes registers team lookup endpoints.
func RegisterTeamRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/teams")
	api.Use(middleware.FirebaseAuthMiddleware(true))
	{
		api.GET("", hb.ListTeamsHandler)
		api.GET("/:id", hb.GetTeamHandler)
	}
}

// RegisterTaxonomyRoutes registers the booking-form lookup endpoints.
func RegisterTaxonomyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.FirebaseAuthMiddleware(true))
	{
		api.GET("/regions", hb.ListRegionsHandler)
		api.GET("/platforms", hb.ListPlatformsHandler)
		api.GET("/brands", hb.ListBrandsHandler)
	}
}

// RegisterUserRoutes registers profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	api.Use(middleware.FirebaseAuthMiddleware(false))
	{
		api.GET("/me", hb.GetProfileHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
		api.GET("/:uid", hb.GetUserHandler)

		moderator := api.Group("")
		moderator.Use(middleware.RequireRole(models.RoleModerator))
		moderator.GET("", hb.ListUsersHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Healthy() {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterTimeslotRoutes(r, hb)
	RegisterEventRoutes(r, hb)
	RegisterTeamRoutes(r, hb)
	RegisterTaxonomyRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterHealthRoute(r)
}

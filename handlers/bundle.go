// File: slotify/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Availability endpoints
	ListTimeslotsHandler gin.HandlerFunc

	// Event endpoints
	ListEventsByMonthHandler gin.HandlerFunc
	ListEventsByDayHandler   gin.HandlerFunc
	GetEventHandler          gin.HandlerFunc
	CreateEventHandler       gin.HandlerFunc
	UpdateEventHandler       gin.HandlerFunc
	DeleteEventHandler       gin.HandlerFunc

	// Activity endpoints
	ListActivityHandler   gin.HandlerFunc
	SubmitActivityHandler gin.HandlerFunc
	DeleteActivityHandler gin.HandlerFunc

	// Team endpoints
	ListTeamsHandler gin.HandlerFunc
	GetTeamHandler   gin.HandlerFunc

	// Taxonomy endpoints
	ListRegionsHandler   gin.HandlerFunc
	ListPlatformsHandler gin.HandlerFunc
	ListBrandsHandler    gin.HandlerFunc

	// User endpoints
	GetProfileHandler    gin.HandlerFunc
	UpdateProfileHandler gin.HandlerFunc
	GetUserHandler       gin.HandlerFunc
	ListUsersHandler     gin.HandlerFunc
}

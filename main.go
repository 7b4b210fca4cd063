// File: slotify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotify/config"
	"slotify/cron"
	"slotify/database"
	activityRepoPkg "slotify/database/repository/activity"
	eventRepoPkg "slotify/database/repository/event"
	taxonomyRepoPkg "slotify/database/repository/taxonomy"
	teamRepoPkg "slotify/database/repository/team"
	userRepoPkg "slotify/database/repository/user"
	"slotify/handlers"
	"slotify/middleware"
	"slotify/routes"
	"slotify/services/availability"
	eventSvcPkg "slotify/services/event"
	"slotify/services/tasks"
	"slotify/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	teamRepo := teamRepoPkg.NewMongoTeamRepo()
	eventRepo := eventRepoPkg.NewMongoEventRepo()
	activityRepo := activityRepoPkg.NewMongoActivityRepo()
	taxonomyRepo := taxonomyRepoPkg.NewMongoTaxonomyRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	policy := availability.Policy{
		GranularityMinutes:     config.AppConfig.SlotGranularityMin,
		CutoffHour:             config.AppConfig.BookingCutoffHour,
		MinLeadDays:            config.AppConfig.BookingMinLeadDays,
		DefaultBookingDuration: config.AppConfig.DefaultEventDurationMin,
	}

	availabilityService := &availability.DefaultService{
		TeamRepo:  teamRepo,
		EventRepo: eventRepo,
		Policy:    policy,
	}

	reminderScheduler := tasks.NewScheduler()
	defer reminderScheduler.Close()

	eventService := &eventSvcPkg.DefaultEventService{
		Repo:       eventRepo,
		Activities: activityRepo,
		Teams:      teamRepo,
		Reminders:  reminderScheduler,
		Policy:     policy,
	}

	timeslotHandler := &handlers.TimeslotHandler{Service: availabilityService}
	eventHandler := &handlers.EventHandler{Service: eventService}
	activityHandler := &handlers.ActivityHandler{Service: eventService}
	teamHandler := &handlers.TeamHandler{Repo: teamRepo}
	taxonomyHandler := &handlers.TaxonomyHandler{Repo: taxonomyRepo}
	userHandler := &handlers.UserHandler{Repo: userRepo}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Availability endpoints.
		ListTimeslotsHandler: timeslotHandler.ListTimeslotsHandler,

		// Event endpoints.
		ListEventsByMonthHandler: eventHandler.ListEventsByMonthHandler,
		ListEventsByDayHandler:   eventHandler.ListEventsByDayHandler,
		GetEventHandler:          eventHandler.GetEventHandler,
		CreateEventHandler:       eventHandler.CreateEventHandler,
		UpdateEventHandler:       eventHandler.UpdateEventHandler,
		DeleteEventHandler:       eventHandler.DeleteEventHandler,

		// Activity endpoints.
		ListActivityHandler:   activityHandler.ListActivityHandler,
		SubmitActivityHandler: activityHandler.SubmitActivityHandler,
		DeleteActivityHandler: activityHandler.DeleteActivityHandler,

		// Team endpoints.
		ListTeamsHandler: teamHandler.ListTeamsHandler,
		GetTeamHandler:   teamHandler.GetTeamHandler,

		// Taxonomy endpoints.
		ListRegionsHandler:   taxonomyHandler.ListRegionsHandler,
		ListPlatformsHandler: taxonomyHandler.ListPlatformsHandler,
		ListBrandsHandler:    taxonomyHandler.ListBrandsHandler,

		// User endpoints.
		GetProfileHandler:    userHandler.GetProfileHandler,
		UpdateProfileHandler: userHandler.UpdateProfileHandler,
		GetUserHandler:       userHandler.GetUserHandler,
		ListUsersHandler:     userHandler.ListUsersHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	cron.InitReminderWorker(eventRepo)
	utils.StartHealthMonitor(utils.CacheClient, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

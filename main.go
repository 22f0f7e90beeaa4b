package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/martinbaumann-sky/BaumannCo/config"
	"github.com/martinbaumann-sky/BaumannCo/handlers"
	"github.com/martinbaumann-sky/BaumannCo/middleware"
	"github.com/martinbaumann-sky/BaumannCo/routes"
	"github.com/martinbaumann-sky/BaumannCo/services/availability"
	"github.com/martinbaumann-sky/BaumannCo/services/booking"
	"github.com/martinbaumann-sky/BaumannCo/services/gcal"
	"github.com/martinbaumann-sky/BaumannCo/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if err := config.Validate(); err != nil {
		logger.Sugar().Fatalf("main: invalid configuration: %v", err)
	}
	schedule, err := config.Schedule()
	if err != nil {
		logger.Sugar().Fatalf("main: invalid schedule configuration: %v", err)
	}

	cacheClient := utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// External calendar collaborator.
	tokenStore := gcal.NewFileTokenStore(config.AppConfig.GoogleTokenPath)
	connector := gcal.NewConnector(
		config.AppConfig.GoogleClientID,
		config.AppConfig.GoogleClientSecret,
		config.AppConfig.GoogleRedirectURI,
		tokenStore,
	)
	calendarClient := gcal.NewClient(connector, config.AppConfig.GoogleCalendarID, schedule.Location, logger)

	// Services.
	availabilityService := &availability.DefaultService{
		Schedule:  schedule,
		Clock:     availability.ZoneClock{Loc: schedule.Location},
		Calendar:  calendarClient,
		Formatter: availability.SpanishFormatter{},
		Cache:     cacheClient,
		CacheTTL:  time.Duration(config.AppConfig.AvailabilityCacheTTLSec) * time.Second,
		Logger:    logger,
	}
	bookingService := &booking.DefaultService{
		Calendar: calendarClient,
		Loc:      schedule.Location,
		Logger:   logger,
	}

	// Handlers.
	authHandler := handlers.NewGoogleAuthHandler(connector, logger)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)

	handlerBundle := &handlers.HandlerBundle{
		StatusHandler:        authHandler.StatusHandler,
		AuthURLHandler:       authHandler.AuthURLHandler,
		OAuthCallbackHandler: authHandler.OAuthCallbackHandler,
		AvailabilityHandler:  availabilityHandler.GetAvailabilityHandler,
		CreateBookingHandler: bookingHandler.CreateBookingHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "4000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Booking API listening on %s, OAuth redirect %s", srv.Addr, config.AppConfig.GoogleRedirectURI)
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

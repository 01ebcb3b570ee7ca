// File: fixora/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fixora/config"
	"fixora/cron"
	"fixora/database"
	bookingRepoPkg "fixora/database/repository/booking"
	catalogRepoPkg "fixora/database/repository/catalog"
	workerRepoPkg "fixora/database/repository/worker"
	"fixora/handlers"
	"fixora/middleware"
	"fixora/routes"
	"fixora/services/availability"
	"fixora/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	workerRepo := workerRepoPkg.NewMongoWorkerRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// engine.
	matchConfig := availability.MatchConfig{
		OverlapThreshold:    config.AppConfig.MatchOverlapThreshold,
		KeywordFloor:        config.AppConfig.MatchKeywordFloor,
		DefaultPrice:        config.AppConfig.DefaultServicePrice,
		MaxConcurrentChecks: config.AppConfig.MatchMaxConcurrentChecks,
	}
	availabilityService := availability.NewDefaultAvailabilityService(
		catalogRepo,
		workerRepo,
		bookingRepo,
		matchConfig,
		logger,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(
		availabilityService,
		catalogRepo,
		utils.GetCacheClient(),
		logger,
	)

	routes.RegisterRoutes(router, availabilityHandler)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)
	cron.InitWarmWorker(availabilityService)

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

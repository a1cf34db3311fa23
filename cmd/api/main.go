package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/timmy/photofeed/internal/api"
	"github.com/timmy/photofeed/internal/config"
	"github.com/timmy/photofeed/internal/logger"
	"github.com/timmy/photofeed/internal/service"
	"github.com/timmy/photofeed/internal/source/flickr"
)

func main() {
	// Load configuration
	// Support CONFIG_PATH environment variable for production deployments
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	appLogger := logger.NewDefault()
	logger.SetDefaultLogger(appLogger)
	defer logger.Sync()

	// Initialize upstream source and service
	feedSource := flickr.NewAdapter(&flickr.Config{
		FeedURL:  cfg.Flickr.BaseURL,
		Timeout:  cfg.Flickr.Timeout,
		PageSize: cfg.Flickr.PageSize,
	})
	feedService := service.NewFeedService(feedSource, appLogger.WithField(logger.FieldComponent, "feed"))

	// Setup router
	router, err := api.SetupRouter(api.RouterDeps{
		Feed:       feedService,
		SourceName: feedSource.GetDisplayName(),
		Logger:     appLogger,
	}, &cfg.Server)
	if err != nil {
		logger.Fatal("Failed to set up router: %v", err)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		appLogger.WithFields(logger.Fields{
			"port":            cfg.Server.Port,
			"mode":            cfg.Server.Mode,
			"allowed_origins": cfg.Server.CORS.AllowedOrigins,
		}).Info("Starting API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}

// ABOUTME: Main entry point for the image search API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"imagesearch-app-api/api"
	"imagesearch-app-api/api/handlers"
	"imagesearch-app-api/core/archive"
	"imagesearch-app-api/core/interfaces"
	"imagesearch-app-api/core/providers"
	"imagesearch-app-api/core/search"
	stdhttp "imagesearch-app-api/infrastructure/http/standard"
	logruslogger "imagesearch-app-api/infrastructure/logger/logrus"
	"imagesearch-app-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.NewLogrusLogger(logruslogger.Options{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	logger.Info("Starting Image Search API", map[string]interface{}{
		"port":          cfg.Server.Port,
		"brave_enabled": cfg.Providers.BraveAPIKey != "",
	})

	// Separate clients: provider searches and bulk thumbnail downloads
	// run under different timeouts.
	searchDeps := interfaces.Dependencies{
		HTTPClient: stdhttp.NewStandardHTTPClient(cfg.HTTP.SearchTimeout),
		Logger:     logger,
	}
	downloadDeps := interfaces.Dependencies{
		HTTPClient: stdhttp.NewStandardHTTPClient(cfg.HTTP.DownloadTimeout),
		Logger:     logger,
	}

	// Create provider adapters. Order sets merge priority.
	commons := providers.NewCommonsProvider(searchDeps, cfg.Providers.CommonsUserAgent)
	openverse := providers.NewOpenverseProvider(searchDeps)
	brave := providers.NewBraveProvider(searchDeps, cfg.Providers.BraveAPIKey)
	if !brave.Enabled() {
		logger.Warn("BRAVE_API_KEY not set, Brave provider disabled", nil)
	}

	// Create services
	searchService := search.NewService(searchDeps, []providers.Provider{commons, openverse, brave}, commons)
	archiveService := archive.NewService(downloadDeps, providers.NewCommonsProvider(downloadDeps, cfg.Providers.CommonsUserAgent))

	// Create API with middleware
	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger: logger,
	})

	// Create and register handlers
	searchHandler := handlers.NewSearchHandler(searchService)
	searchHandler.RegisterRoutes(humaAPI)

	downloadHandler := handlers.NewDownloadHandler(archiveService, logger)
	downloadHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.HTTP.DownloadTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

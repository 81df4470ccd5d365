// ABOUTME: Main entry point for the Episodes API server
// ABOUTME: Wires together all components and starts the HTTP server

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

	"episodes-app-api/api"
	"episodes-app-api/api/handlers"
	"episodes-app-api/core/interfaces"
	"episodes-app-api/core/podcast"
	"episodes-app-api/core/sources"
	"episodes-app-api/core/workers"
	"episodes-app-api/infrastructure/cache/memory"
	"episodes-app-api/infrastructure/cache/redis"
	"episodes-app-api/infrastructure/cache/sqlite"
	stdhttp "episodes-app-api/infrastructure/http/standard"
	logruslogger "episodes-app-api/infrastructure/logger/logrus"
	"episodes-app-api/pkg/config"
	"episodes-app-api/pkg/featureflags"
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
	logger := logruslogger.NewLogger(cfg.Server.LogLevel)
	logger.Info("Starting Episodes API", map[string]interface{}{
		"port":          cfg.Server.Port,
		"cache_type":    cfg.Cache.Type,
		"fetch_timeout": cfg.Server.FetchTimeoutSeconds,
	})

	// Create cache
	cache := buildCache(cfg, logger)

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create source adapters
	episodeSources := []interfaces.EpisodeSource{
		sources.NewSpotifyAdapter(deps, cfg.Spotify),
	}
	youtubeAdapter, err := sources.NewYouTubeAdapter(deps, cfg.YouTube)
	if err != nil {
		logger.Error("YouTube adapter unavailable, continuing without it", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		episodeSources = append(episodeSources, youtubeAdapter)
	}

	// Create podcast service
	fetchTimeout := time.Duration(cfg.Server.FetchTimeoutSeconds) * time.Second
	podcastService := podcast.NewService(deps, fetchTimeout, episodeSources...)

	// Feature flags: diagnostics and rate limiting on by default,
	// background refresh opt-in
	flags := featureflags.NewEnvManager("FEATURE_", map[featureflags.FeatureFlag]bool{
		featureflags.DiagnosticsEnabled: true,
		featureflags.RateLimitEnabled:   true,
	})
	flagCtx := context.Background()

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger: logger,
	}
	if flags.IsEnabled(flagCtx, featureflags.RateLimitEnabled) {
		apiConfig.RateLimit = 100 // 100 requests per minute
		apiConfig.RateWindow = time.Minute
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	episodeHandler := handlers.NewEpisodeHandler(podcastService)
	episodeHandler.RegisterRoutes(humaAPI)
	if flags.IsEnabled(flagCtx, featureflags.DiagnosticsEnabled) {
		episodeHandler.RegisterDiagnosticRoutes(humaAPI)
	}

	// Optional background refresh keeps the snapshot warm
	if flags.IsEnabled(flagCtx, featureflags.BackgroundRefreshEnabled) {
		refreshWorker := workers.NewRefreshWorker(podcastService, logger, workers.RefreshWorkerConfig{
			Interval: time.Duration(cfg.Server.RefreshIntervalMinutes) * time.Minute,
			Timeout:  2 * fetchTimeout,
		})
		if err := refreshWorker.Start(); err != nil {
			logger.Error("Failed to start refresh worker", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer refreshWorker.Stop()
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
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

// buildCache selects the configured cache backend, falling back to memory
// when the backend cannot be reached.
func buildCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache()
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLitePath)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache()
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLitePath,
		})
		return sqliteCache
	default:
		logger.Info("Using memory cache", nil)
		return memory.NewMemoryCache()
	}
}

func init() {
	// Print banner
	fmt.Println(`
    ______      _                __                ___    ____  ____
   / ____/___  (_)________  ____/ /__  _____      /   |  / __ \/  _/
  / __/ / __ \/ / ___/ __ \/ __  / _ \/ ___/     / /| | / /_/ // /
 / /___/ /_/ / (__  ) /_/ / /_/ /  __(__  )     / ___ |/ ____// /
/_____/ .___/_/____/\____/\__,_/\___/____/     /_/  |_/_/   /___/
     /_/
	`)
}

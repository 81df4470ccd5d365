// Package core contains the business logic for the Episodes API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (Episode, PodcastData)
// - rss: Tolerant RSS 2.0 feed parsing
// - sources: Platform adapters that fetch episodes (Spotify, YouTube)
// - podcast: Merge engine and refresh orchestration
// - workers: Background refresh worker
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies in the service layer
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "episodes-app-api/core/podcast"
//	    "episodes-app-api/core/sources"
//	    "episodes-app-api/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create the service over its source adapters
//	spotify := sources.NewSpotifyAdapter(deps, spotifyConfig)
//	service := podcast.NewService(deps, 30*time.Second, spotify)
//
//	// Serve the merged feed
//	data := service.GetPodcastData(ctx)
package core

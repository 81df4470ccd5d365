// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Resolved once at process start and passed into constructors explicitly

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache backend configuration
	Cache CacheConfig

	// Spotify contains the Spotify RSS source configuration
	Spotify SpotifyConfig

	// YouTube contains the YouTube source configuration
	YouTube YouTubeConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// FetchTimeoutSeconds bounds each source adapter fetch during a refresh
	FetchTimeoutSeconds int

	// LogLevel sets the logger verbosity (debug/info/warn/error)
	LogLevel string

	// RefreshIntervalMinutes is the background refresh cadence
	RefreshIntervalMinutes int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLitePath is the database file path for the sqlite backend
	SQLitePath string
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SpotifyConfig holds the Spotify RSS source configuration
type SpotifyConfig struct {
	// RSSURL is the show's RSS feed URL
	RSSURL string

	// DefaultThumbnail is used when a feed item supplies no image
	DefaultThumbnail string
}

// YouTubeConfig holds the YouTube source configuration
type YouTubeConfig struct {
	// APIKey enables the Data API path; empty falls back to the channel feed
	APIKey string

	// ChannelID is the show's YouTube channel id
	ChannelID string

	// FeedURL overrides the default channel feed URL for the fallback path
	FeedURL string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:                   getEnvOrDefault("PORT", "8000"),
			FetchTimeoutSeconds:    getEnvAsIntOrDefault("FETCH_TIMEOUT_SECONDS", 30),
			LogLevel:               getEnvOrDefault("LOG_LEVEL", "info"),
			RefreshIntervalMinutes: getEnvAsIntOrDefault("REFRESH_INTERVAL_MINUTES", 30),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLitePath: getEnvOrDefault("SQLITE_PATH", "episodes.db"),
		},
		Spotify: SpotifyConfig{
			RSSURL:           os.Getenv("SPOTIFY_RSS_URL"),
			DefaultThumbnail: getEnvOrDefault("SPOTIFY_DEFAULT_THUMBNAIL", ""),
		},
		YouTube: YouTubeConfig{
			APIKey:    os.Getenv("YOUTUBE_API_KEY"),
			ChannelID: os.Getenv("YOUTUBE_CHANNEL_ID"),
			FeedURL:   os.Getenv("YOUTUBE_RSS_URL"),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.FetchTimeoutSeconds < 1 {
		return errors.New("fetch timeout must be at least 1 second")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" && c.Cache.Type != "sqlite" {
		return errors.New("cache type must be 'redis', 'memory' or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Spotify.RSSURL == "" {
		return errors.New("SPOTIFY_RSS_URL is required")
	}

	if c.YouTube.ChannelID == "" && c.YouTube.FeedURL == "" {
		return errors.New("YOUTUBE_CHANNEL_ID or YOUTUBE_RSS_URL is required")
	}

	return nil
}

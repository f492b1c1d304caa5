// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, providers, and logging

package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Providers contains image provider configuration
	Providers ProvidersConfig

	// HTTP contains outbound HTTP client configuration
	HTTP HTTPConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// ProvidersConfig holds per-provider settings
type ProvidersConfig struct {
	// CommonsUserAgent identifies this application to Wikimedia, which
	// rejects anonymous clients. Required.
	CommonsUserAgent string

	// BraveAPIKey is the Brave subscription token. Optional: when empty,
	// the Brave provider runs in degraded mode and contributes nothing.
	BraveAPIKey string
}

// HTTPConfig holds outbound HTTP client timeouts
type HTTPConfig struct {
	// SearchTimeout bounds each provider search request
	SearchTimeout time.Duration

	// DownloadTimeout bounds each bulk image download request
	DownloadTimeout time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is the minimum log level (debug/info/warn/error)
	Level string

	// File, when set, routes logs to a rotated file instead of stdout
	File string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Providers: ProvidersConfig{
			CommonsUserAgent: getEnvOrDefault("COMMONS_USER_AGENT", "image-search-project/0.1 (dev@example.com)"),
			BraveAPIKey:      getEnvOrDefault("BRAVE_API_KEY", ""),
		},
		HTTP: HTTPConfig{
			SearchTimeout:   time.Duration(getEnvAsIntOrDefault("SEARCH_TIMEOUT_SECONDS", 20)) * time.Second,
			DownloadTimeout: time.Duration(getEnvAsIntOrDefault("DOWNLOAD_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
			File:  getEnvOrDefault("LOG_FILE", ""),
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

// Validate checks if the configuration is valid. A missing Brave API key is
// not an error; that provider degrades silently.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Providers.CommonsUserAgent == "" {
		return errors.New("commons user agent cannot be empty")
	}

	if c.HTTP.SearchTimeout < time.Second {
		return errors.New("search timeout must be at least 1 second")
	}

	if c.HTTP.DownloadTimeout < time.Second {
		return errors.New("download timeout must be at least 1 second")
	}

	return nil
}

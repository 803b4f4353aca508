package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

var (
	ErrMissingAPIKey = errors.New("YouTube API key is required")
)

const (
	defaultPort           = "8080"
	defaultRequestTimeout = 10 * time.Second
)

// Config holds the application configuration
type Config struct {
	YouTubeAPIKey  string
	Port           string
	RequestTimeout time.Duration
	AllowedOrigins []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Get YouTube API key from environment
	apiKey := os.Getenv("YOUTUBE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("YOUTUBE_API_KEY environment variable is required")
	}

	// Get server port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	// Get upstream request timeout from environment or use default
	timeout := defaultRequestTimeout
	if raw := os.Getenv("REQUEST_TIMEOUT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT value %q: %v", raw, err)
		}
		timeout = parsed
	}

	// Get allowed CORS origins from environment or use defaults
	origins := []string{"http://localhost:3000", "http://localhost:3001"}
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		origins = nil
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
	}

	return &Config{
		YouTubeAPIKey:  apiKey,
		Port:           port,
		RequestTimeout: timeout,
		AllowedOrigins: origins,
	}, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.YouTubeAPIKey == "" {
		return fmt.Errorf("%w: YOUTUBE_API_KEY environment variable is not set", ErrMissingAPIKey)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %v", c.RequestTimeout)
	}
	return nil
}

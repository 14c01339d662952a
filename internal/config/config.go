// Package config provides configuration management for the Gamja MCP
// gateway. Configuration is loaded from environment variables with
// sensible defaults; main optionally pre-loads a .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// DefaultContentAPIURL is the upstream content API used when
// CONTENT_API_URL is not set.
const DefaultContentAPIURL = "https://jeongcheogi.edugamja.com"

// Config holds the complete gateway configuration in a flat structure.
type Config struct {
	// Server settings
	// Addr is the address to bind the HTTP server (e.g., ":8080").
	Addr string `validate:"required"`

	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeout time.Duration `validate:"gt=0"`

	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration `validate:"gt=0"`

	// IdleTimeout is the maximum duration to wait for the next request
	// when keep-alives are enabled. Zero disables the timeout.
	IdleTimeout time.Duration `validate:"gte=0"`

	// Content API settings
	// ContentAPIURL is the base URL of the upstream educational content API.
	ContentAPIURL string `validate:"required,url"`

	// ContentAPIKey is sent to the content API in the x-mcp-api-key
	// header. Optional; the upstream may not require it.
	ContentAPIKey string

	// Auth settings
	// StaticToken is the legacy pre-shared bearer token (MCP_AUTH_TOKEN).
	// Empty disables the static bypass; OAuth tokens still work.
	StaticToken string

	// Username and Password gate the OAuth authorize login form.
	Username string `validate:"required"`
	Password string `validate:"required"`

	// Store settings
	// RedisAddr selects the Redis-backed store when non-empty;
	// otherwise the in-memory store is used.
	RedisAddr     string
	RedisPassword string
	RedisDB       int `validate:"gte=0"`

	// KeyPrefix namespaces all OAuth keys in a shared Redis instance.
	KeyPrefix string
}

// Load reads configuration from environment variables and returns a
// Config. It sets default values for optional fields and validates the
// result.
func Load() (*Config, error) {
	readTimeout, err := parseDurationWithDefault("SERVER_READ_TIMEOUT", "30s")
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := parseDurationWithDefault("SERVER_WRITE_TIMEOUT", "30s")
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_WRITE_TIMEOUT: %w", err)
	}

	idleTimeout, err := parseDurationWithDefault("SERVER_IDLE_TIMEOUT", "120s")
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_IDLE_TIMEOUT: %w", err)
	}

	redisDB, err := parseIntWithDefault("REDIS_DB", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		Addr:         getEnvWithDefault("SERVER_ADDR", ":8080"),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,

		ContentAPIURL: getEnvWithDefault("CONTENT_API_URL", DefaultContentAPIURL),
		ContentAPIKey: os.Getenv("CONTENT_API_KEY"),

		StaticToken: os.Getenv("MCP_AUTH_TOKEN"),
		Username:    os.Getenv("AUTH_USERNAME"),
		Password:    os.Getenv("AUTH_PASSWORD"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,
		KeyPrefix:     os.Getenv("OAUTH_KEY_PREFIX"),
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnvWithDefault returns the environment variable value or the default if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseDurationWithDefault parses a duration from an environment variable.
// If the variable is not set, it uses the default value.
func parseDurationWithDefault(key, defaultValue string) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	return time.ParseDuration(value)
}

// parseIntWithDefault parses an integer from an environment variable.
// If the variable is not set, it uses the default value.
func parseIntWithDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(value)
}

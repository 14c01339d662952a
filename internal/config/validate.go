package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// envNames maps Config field names back to the environment variables
// they are loaded from, so validation errors name the variable the
// operator has to fix.
var envNames = map[string]string{
	"Addr":          "SERVER_ADDR",
	"ReadTimeout":   "SERVER_READ_TIMEOUT",
	"WriteTimeout":  "SERVER_WRITE_TIMEOUT",
	"IdleTimeout":   "SERVER_IDLE_TIMEOUT",
	"ContentAPIURL": "CONTENT_API_URL",
	"ContentAPIKey": "CONTENT_API_KEY",
	"StaticToken":   "MCP_AUTH_TOKEN",
	"Username":      "AUTH_USERNAME",
	"Password":      "AUTH_PASSWORD",
	"RedisAddr":     "REDIS_ADDR",
	"RedisPassword": "REDIS_PASSWORD",
	"RedisDB":       "REDIS_DB",
	"KeyPrefix":     "OAUTH_KEY_PREFIX",
}

// Validate checks that the configuration is valid and complete.
// It returns an error naming the offending environment variable.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		name := envNames[fe.StructField()]
		if name == "" {
			name = fe.StructField()
		}
		return fmt.Errorf("invalid config: %s failed %q validation", name, fe.Tag())
	}
	return fmt.Errorf("invalid config: %w", err)
}

package config

import (
	"strings"
	"testing"
	"time"
)

// clearEnv unsets every variable Load reads so ambient environment does
// not leak into the table cases.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_ADDR", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT",
		"SERVER_IDLE_TIMEOUT", "CONTENT_API_URL", "CONTENT_API_KEY",
		"MCP_AUTH_TOKEN", "AUTH_USERNAME", "AUTH_PASSWORD",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "OAUTH_KEY_PREFIX",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	// Note: Cannot use t.Parallel() with t.Setenv as it modifies process env
	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     bool
		errContains string
		validate    func(t *testing.T, cfg *Config)
	}{
		{
			name: "required credentials set",
			envVars: map[string]string{
				"AUTH_USERNAME": "admin",
				"AUTH_PASSWORD": "secret",
			},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Addr != ":8080" {
					t.Errorf("default Addr = %q, want :8080", cfg.Addr)
				}
				if cfg.ContentAPIURL != DefaultContentAPIURL {
					t.Errorf("default ContentAPIURL = %q", cfg.ContentAPIURL)
				}
				if cfg.ReadTimeout != 30*time.Second {
					t.Errorf("default ReadTimeout = %v", cfg.ReadTimeout)
				}
				if cfg.IdleTimeout != 120*time.Second {
					t.Errorf("default IdleTimeout = %v", cfg.IdleTimeout)
				}
				if cfg.RedisAddr != "" {
					t.Errorf("RedisAddr = %q, want empty", cfg.RedisAddr)
				}
			},
		},
		{
			name: "explicit values override defaults",
			envVars: map[string]string{
				"SERVER_ADDR":      ":9090",
				"CONTENT_API_URL":  "https://content.example.com",
				"CONTENT_API_KEY":  "k",
				"MCP_AUTH_TOKEN":   "legacy-token",
				"AUTH_USERNAME":    "admin",
				"AUTH_PASSWORD":    "secret",
				"REDIS_ADDR":       "localhost:6379",
				"REDIS_DB":         "3",
				"OAUTH_KEY_PREFIX": "gamja:",
			},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Addr != ":9090" {
					t.Errorf("Addr = %q", cfg.Addr)
				}
				if cfg.ContentAPIURL != "https://content.example.com" {
					t.Errorf("ContentAPIURL = %q", cfg.ContentAPIURL)
				}
				if cfg.StaticToken != "legacy-token" {
					t.Errorf("StaticToken = %q", cfg.StaticToken)
				}
				if cfg.RedisDB != 3 {
					t.Errorf("RedisDB = %d", cfg.RedisDB)
				}
				if cfg.KeyPrefix != "gamja:" {
					t.Errorf("KeyPrefix = %q", cfg.KeyPrefix)
				}
			},
		},
		{
			name: "missing AUTH_USERNAME",
			envVars: map[string]string{
				"AUTH_PASSWORD": "secret",
			},
			wantErr:     true,
			errContains: "AUTH_USERNAME",
		},
		{
			name: "missing AUTH_PASSWORD",
			envVars: map[string]string{
				"AUTH_USERNAME": "admin",
			},
			wantErr:     true,
			errContains: "AUTH_PASSWORD",
		},
		{
			name: "invalid duration",
			envVars: map[string]string{
				"AUTH_USERNAME":       "admin",
				"AUTH_PASSWORD":       "secret",
				"SERVER_READ_TIMEOUT": "not-a-duration",
			},
			wantErr:     true,
			errContains: "SERVER_READ_TIMEOUT",
		},
		{
			name: "invalid redis db",
			envVars: map[string]string{
				"AUTH_USERNAME": "admin",
				"AUTH_PASSWORD": "secret",
				"REDIS_DB":      "three",
			},
			wantErr:     true,
			errContains: "REDIS_DB",
		},
		{
			name: "invalid content api url",
			envVars: map[string]string{
				"AUTH_USERNAME":   "admin",
				"AUTH_PASSWORD":   "secret",
				"CONTENT_API_URL": "not a url",
			},
			wantErr:     true,
			errContains: "CONTENT_API_URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Load() expected error")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("Load() error = %v, want containing %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestValidateNil(t *testing.T) {
	t.Parallel()
	if err := Validate(nil); err == nil {
		t.Error("Validate(nil) expected error")
	}
}

package transport

import (
	"fmt"
	"log/slog"

	"github.com/edugamja/gamja-mcp/internal/config"
	"github.com/edugamja/gamja-mcp/internal/mcp"
	"github.com/edugamja/gamja-mcp/internal/oauth"
	pkgoauth "github.com/edugamja/gamja-mcp/pkg/oauth"
)

// Config holds the dependencies needed to construct the transport layer.
type Config struct {
	// ServerConfig is the server configuration.
	ServerConfig *config.Config

	// Validator validates bearer tokens on the MCP endpoint.
	Validator oauth.TokenValidator

	// Authorizer drives code issuance, token exchange, and client
	// registration.
	Authorizer *oauth.Authorizer

	// Credentials verifies login submissions and exposes the static
	// legacy token.
	Credentials oauth.CredentialsProvider

	// MCPHandler processes MCP protocol requests.
	MCPHandler mcp.Handler

	// Logger is used by the logging and recovery middleware.
	// Nil falls back to slog.Default().
	Logger *slog.Logger
}

// NewTransportServices creates the complete HTTP transport layer from
// the configuration: routing, middleware, and every endpoint handler.
// This is a convenience function for dependency injection.
func NewTransportServices(cfg *Config) (Server, Router, error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.ServerConfig == nil {
		return nil, nil, fmt.Errorf("server config cannot be nil")
	}
	if cfg.Validator == nil {
		return nil, nil, fmt.Errorf("token validator cannot be nil")
	}
	if cfg.Authorizer == nil {
		return nil, nil, fmt.Errorf("authorizer cannot be nil")
	}
	if cfg.Credentials == nil {
		return nil, nil, fmt.Errorf("credentials provider cannot be nil")
	}
	if cfg.MCPHandler == nil {
		return nil, nil, fmt.Errorf("mcp handler cannot be nil")
	}

	responder := NewErrorResponder()

	recoveryMiddleware := NewRecoveryMiddleware(responder, cfg.Logger)
	requestIDMiddleware := NewRequestIDMiddleware()
	loggingMiddleware := NewLoggingMiddleware(cfg.Logger)
	corsMiddleware := NewCORSMiddleware()
	authMiddleware := NewAuthMiddleware(cfg.Validator, responder)

	router := NewRouter()

	// CORS runs inside logging so preflights are logged too; recovery
	// stays outermost.
	router.Use(recoveryMiddleware, requestIDMiddleware, loggingMiddleware, corsMiddleware)

	// Public endpoints. Patterns carry no method prefix: each handler
	// does its own method check so rejections use the endpoint's own
	// 405 body.
	router.Handle(pkgoauth.PathProtectedResourceMetadata, NewProtectedResourceHandler(responder))
	router.Handle(pkgoauth.PathAuthorizationServerMetadata, NewAuthorizationServerHandler(responder))
	router.Handle(pkgoauth.PathRegister, NewRegisterHandler(cfg.Authorizer, responder))
	router.Handle(pkgoauth.PathAuthorize, NewAuthorizeHandler(cfg.Authorizer, cfg.Credentials, responder))
	router.Handle(pkgoauth.PathToken, NewTokenHandler(cfg.Authorizer, responder))
	router.Handle(pkgoauth.PathLegacyLogin, NewLoginHandler(cfg.Credentials, responder))
	router.Handle("/health", NewHealthHandler(responder))

	// "/" is the mux catch-all: home page on the exact path, JSON 404
	// for everything unmatched.
	router.Handle("/", NewHomeHandler(responder))

	// Protected MCP endpoint.
	mcpHandler := NewMCPHandler(cfg.MCPHandler, responder)
	router.Handle("/mcp", authMiddleware.Authenticate()(mcpHandler))

	server := NewServer(cfg.ServerConfig, router)

	return server, router, nil
}

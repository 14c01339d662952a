// Package transport provides the HTTP transport layer for the Gamja MCP
// gateway. It ties bearer-token validation to MCP protocol handling and
// serves the OAuth 2.1 endpoints, metadata documents, and HTML pages.
package transport

import (
	"log/slog"
	"net/http"

	"github.com/edugamja/gamja-mcp/internal/config"
	"github.com/edugamja/gamja-mcp/internal/mcp"
	"github.com/edugamja/gamja-mcp/internal/oauth"
	"github.com/edugamja/gamja-mcp/internal/transport/internal/handlers"
	transporthttp "github.com/edugamja/gamja-mcp/internal/transport/internal/http"
	"github.com/edugamja/gamja-mcp/internal/transport/internal/middleware"
	"github.com/edugamja/gamja-mcp/internal/transport/transportcore"
)

// Re-export types from transportcore so external packages can import
// transport without creating cycles.

// Middleware is a function that wraps an http.Handler.
type Middleware = transportcore.Middleware

// Server manages the HTTP server lifecycle.
type Server = transportcore.Server

// Router handles HTTP request routing and middleware composition.
type Router = transportcore.Router

// AuthMiddleware provides bearer token validation middleware.
type AuthMiddleware = transportcore.AuthMiddleware

// ErrorResponder handles error responses for the gateway's endpoints.
type ErrorResponder = transportcore.ErrorResponder

// NewServer creates a configured HTTP server.
// The server is configured with timeouts from the config and uses the provided router.
func NewServer(cfg *config.Config, router Router) Server {
	return transporthttp.NewServer(cfg, router)
}

// NewRouter creates a new HTTP router backed by http.ServeMux.
func NewRouter() Router {
	return transporthttp.NewRouter()
}

// NewErrorResponder creates the gateway's error responder. Challenge
// headers are derived per request, so the responder carries no state.
func NewErrorResponder() ErrorResponder {
	return transporthttp.NewErrorResponder()
}

// NewAuthMiddleware creates bearer token authentication middleware.
func NewAuthMiddleware(validator oauth.TokenValidator, responder ErrorResponder) AuthMiddleware {
	return middleware.NewAuthMiddleware(validator, responder)
}

// NewCORSMiddleware creates permissive CORS middleware that also
// short-circuits OPTIONS preflight requests.
func NewCORSMiddleware() Middleware {
	return middleware.NewCORSMiddleware()
}

// NewRequestIDMiddleware creates middleware that tags each request with
// a unique ID for log correlation.
func NewRequestIDMiddleware() Middleware {
	return middleware.NewRequestIDMiddleware()
}

// NewLoggingMiddleware creates request logging middleware.
// If logger is nil, it uses the default slog logger.
func NewLoggingMiddleware(logger *slog.Logger) Middleware {
	return middleware.NewLoggingMiddleware(logger)
}

// NewRecoveryMiddleware creates panic recovery middleware.
// If logger is nil, it uses the default slog logger.
func NewRecoveryMiddleware(responder ErrorResponder, logger *slog.Logger) Middleware {
	return middleware.NewRecoveryMiddleware(responder, logger)
}

// NewMCPHandler creates the MCP protocol handler for POST /mcp.
func NewMCPHandler(handler mcp.Handler, responder ErrorResponder) http.Handler {
	return handlers.NewMCPHandler(handler, responder)
}

// NewAuthorizeHandler creates the OAuth authorization endpoint handler.
func NewAuthorizeHandler(authorizer *oauth.Authorizer, credentials oauth.CredentialsProvider, responder ErrorResponder) http.Handler {
	return handlers.NewAuthorizeHandler(authorizer, credentials, responder)
}

// NewTokenHandler creates the OAuth token endpoint handler.
func NewTokenHandler(authorizer *oauth.Authorizer, responder ErrorResponder) http.Handler {
	return handlers.NewTokenHandler(authorizer, responder)
}

// NewRegisterHandler creates the dynamic client registration handler.
func NewRegisterHandler(authorizer *oauth.Authorizer, responder ErrorResponder) http.Handler {
	return handlers.NewRegisterHandler(authorizer, responder)
}

// NewLoginHandler creates the legacy login endpoint handler.
func NewLoginHandler(credentials oauth.CredentialsProvider, responder ErrorResponder) http.Handler {
	return handlers.NewLoginHandler(credentials, responder)
}

// NewProtectedResourceHandler creates the RFC 9728 metadata handler.
func NewProtectedResourceHandler(responder ErrorResponder) http.Handler {
	return handlers.NewProtectedResourceHandler(responder)
}

// NewAuthorizationServerHandler creates the RFC 8414 metadata handler.
func NewAuthorizationServerHandler(responder ErrorResponder) http.Handler {
	return handlers.NewAuthorizationServerHandler(responder)
}

// NewHomeHandler creates the handler for "/" and unmatched paths.
func NewHomeHandler(responder ErrorResponder) http.Handler {
	return handlers.NewHomeHandler(responder)
}

// NewHealthHandler creates the health check page handler.
func NewHealthHandler(responder ErrorResponder) http.Handler {
	return handlers.NewHealthHandler(responder)
}

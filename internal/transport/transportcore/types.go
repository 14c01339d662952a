// Package transportcore provides core types, interfaces, and primitives for the transport layer.
// This package exists to break import cycles between the transport package and its internal subpackages.
package transportcore

import (
	"context"
	"net/http"

	internalerrors "github.com/edugamja/gamja-mcp/internal/errors"
)

// Middleware is a function that wraps an http.Handler.
// It can modify the request, response, or perform additional logic
// before or after calling the next handler in the chain.
type Middleware func(http.Handler) http.Handler

// Server manages the HTTP server lifecycle.
// Implementations must support graceful shutdown and provide
// access to the bound address after startup.
type Server interface {
	// Start begins serving HTTP requests on the configured address.
	// This is a blocking call that returns when the server stops
	// or encounters an error during startup.
	Start() error

	// Shutdown gracefully shuts down the server without interrupting
	// active connections. It waits for active connections to close
	// or the context to be cancelled/expired.
	Shutdown(ctx context.Context) error

	// Addr returns the address the server is listening on.
	// This is useful when the server is configured to bind to a random port.
	Addr() string
}

// Router handles HTTP request routing and middleware composition.
// It extends http.Handler with pattern-based routing and middleware support.
type Router interface {
	http.Handler

	// Handle registers a handler for the given pattern.
	// The pattern syntax follows http.ServeMux conventions.
	Handle(pattern string, handler http.Handler)

	// HandleFunc registers a handler function for the given pattern.
	HandleFunc(pattern string, handler http.HandlerFunc)

	// Use applies middleware to all subsequent route registrations.
	// Middleware is applied in the order registered.
	Use(middlewares ...Middleware)
}

// AuthMiddleware provides bearer token validation middleware.
// It accepts either the static legacy token or an OAuth 2.1 access
// token per RFC 6750.
type AuthMiddleware interface {
	// Authenticate validates the Bearer token and adds the access token
	// record to the request context. The static legacy token passes
	// with no record.
	//
	// Returns 401 Unauthorized with a WWW-Authenticate header derived
	// from the request origin if validation fails.
	Authenticate() Middleware
}

// ErrorResponder handles error responses for the gateway's endpoints.
// Unauthorized responses follow RFC 6750 (Bearer Token Usage) and
// RFC 9728 (Protected Resource Metadata); OAuth endpoint failures
// follow RFC 6749 error bodies.
type ErrorResponder interface {
	// Unauthorized sends a 401 Unauthorized response. The
	// WWW-Authenticate header points at the protected resource
	// metadata document on the request's own origin, and the body
	// carries the validation failure reason.
	//
	// Format: WWW-Authenticate: Bearer resource_metadata="<url>"
	Unauthorized(w http.ResponseWriter, r *http.Request, err error)

	// OAuthError sends an RFC 6749 error body with the error's status.
	OAuthError(w http.ResponseWriter, oerr *internalerrors.OAuthError)

	// MethodNotAllowed sends a 405 response with an Allow header and a
	// JSON body carrying the given message.
	MethodNotAllowed(w http.ResponseWriter, allow, message string)

	// NotFound sends a 404 Not Found response with a JSON body.
	NotFound(w http.ResponseWriter)

	// InternalError sends a 500 Internal Server Error response.
	// The response body contains a JSON error message.
	InternalError(w http.ResponseWriter, err error)
}

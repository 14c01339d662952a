package transport

import (
	"github.com/edugamja/gamja-mcp/internal/transport/transportcore"
)

// Re-export sentinel errors from transportcore.
var (
	// ErrMissingAuthHeader indicates the Authorization header is absent.
	ErrMissingAuthHeader = transportcore.ErrMissingAuthHeader

	// ErrInvalidAuthFormat indicates the Authorization header does not
	// carry a Bearer token.
	ErrInvalidAuthFormat = transportcore.ErrInvalidAuthFormat

	// ErrMethodNotAllowed indicates the HTTP method is not allowed for the endpoint.
	ErrMethodNotAllowed = transportcore.ErrMethodNotAllowed

	// ErrServerClosed indicates the server has been closed and cannot accept requests.
	ErrServerClosed = transportcore.ErrServerClosed
)

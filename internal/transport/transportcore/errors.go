package transportcore

import (
	"errors"
)

// Sentinel errors for transport operations.
// The auth error messages are client-visible: they become the body of
// 401 responses, so their wording is part of the endpoint contract.
var (
	// ErrMissingAuthHeader indicates the Authorization header is absent.
	ErrMissingAuthHeader = errors.New("Authorization header required")

	// ErrInvalidAuthFormat indicates the Authorization header does not
	// carry a Bearer token.
	ErrInvalidAuthFormat = errors.New("Invalid authorization format. Use: Bearer <token>")

	// ErrMethodNotAllowed indicates the HTTP method is not allowed for the endpoint.
	ErrMethodNotAllowed = errors.New("method not allowed")

	// ErrServerClosed indicates the server has been closed and cannot accept requests.
	ErrServerClosed = errors.New("server closed")
)

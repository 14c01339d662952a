// Package middleware provides HTTP middleware for the transport layer.
package middleware

import (
	"net/http"
	"strings"

	"github.com/edugamja/gamja-mcp/internal/oauth"
	"github.com/edugamja/gamja-mcp/internal/transport/transportcore"
	pkgoauth "github.com/edugamja/gamja-mcp/pkg/oauth"
)

// authMiddleware implements transportcore.AuthMiddleware.
type authMiddleware struct {
	validator oauth.TokenValidator
	responder transportcore.ErrorResponder
}

// NewAuthMiddleware creates bearer token authentication middleware.
// It validates tokens using the provided TokenValidator and stores the
// resulting access token record in the request context.
func NewAuthMiddleware(
	validator oauth.TokenValidator,
	responder transportcore.ErrorResponder,
) transportcore.AuthMiddleware {
	if validator == nil {
		panic("validator cannot be nil")
	}
	if responder == nil {
		panic("responder cannot be nil")
	}

	return &authMiddleware{
		validator: validator,
		responder: responder,
	}
}

// Authenticate validates the Bearer token and adds the access token
// record to context. The static legacy token validates with a nil
// record.
//
// Returns 401 Unauthorized with WWW-Authenticate header if validation fails.
func (m *authMiddleware) Authenticate() transportcore.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := extractBearerToken(r)
			if err != nil {
				m.responder.Unauthorized(w, r, err)
				return
			}

			record, err := m.validator.ValidateToken(r.Context(), token)
			if err != nil {
				m.responder.Unauthorized(w, r, err)
				return
			}

			ctx := transportcore.ContextWithToken(r.Context(), record)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken extracts the Bearer token from the Authorization header.
// The two failure modes carry distinct client-visible messages: a
// missing header versus a header with the wrong scheme.
//
// Format: Authorization: Bearer <token>
func extractBearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get(pkgoauth.HeaderAuthorization)
	if authHeader == "" {
		return "", transportcore.ErrMissingAuthHeader
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", transportcore.ErrInvalidAuthFormat
	}

	// Scheme comparison is case-insensitive per RFC 6750
	if !strings.EqualFold(parts[0], pkgoauth.TokenTypeBearer) {
		return "", transportcore.ErrInvalidAuthFormat
	}

	return strings.TrimSpace(parts[1]), nil
}

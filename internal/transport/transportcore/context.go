package transportcore

import (
	"context"

	"github.com/edugamja/gamja-mcp/internal/oauth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// TokenContextKey is the context key for the validated access token.
	TokenContextKey contextKey = "oauth_token"

	// RequestIDContextKey is the context key for the request ID.
	RequestIDContextKey contextKey = "request_id"
)

// TokenFromContext extracts the validated access token from the request
// context. Returns nil and false if no token record is present. A
// request authenticated with the static legacy token carries no record,
// so handlers must not assume a record exists for authenticated calls.
func TokenFromContext(ctx context.Context) (*oauth.AccessToken, bool) {
	if ctx == nil {
		return nil, false
	}
	token, ok := ctx.Value(TokenContextKey).(*oauth.AccessToken)
	return token, ok
}

// ContextWithToken adds the validated access token to the request context.
func ContextWithToken(ctx context.Context, token *oauth.AccessToken) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, TokenContextKey, token)
}

// RequestIDFromContext extracts the request ID from the context.
// Returns "" if none was assigned.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(RequestIDContextKey).(string)
	return id
}

// ContextWithRequestID adds the request ID to the request context.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, RequestIDContextKey, id)
}

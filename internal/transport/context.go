package transport

import (
	"context"

	"github.com/edugamja/gamja-mcp/internal/oauth"
	"github.com/edugamja/gamja-mcp/internal/transport/transportcore"
)

// TokenFromContext extracts the validated access token from the request
// context. Returns nil and false if no token record is present; a
// request that authenticated with the static legacy token carries no
// record.
func TokenFromContext(ctx context.Context) (*oauth.AccessToken, bool) {
	return transportcore.TokenFromContext(ctx)
}

// RequestIDFromContext extracts the request ID from the context.
func RequestIDFromContext(ctx context.Context) string {
	return transportcore.RequestIDFromContext(ctx)
}

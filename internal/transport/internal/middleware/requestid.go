package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/edugamja/gamja-mcp/internal/transport/transportcore"
)

// requestIDHeader is the header carrying the request ID. An incoming
// value from a trusted proxy is reused; otherwise a new one is minted.
const requestIDHeader = "X-Request-ID"

// NewRequestIDMiddleware creates middleware that assigns each request a
// unique ID, stores it in the request context, and echoes it in the
// response headers for log correlation.
func NewRequestIDMiddleware() transportcore.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set(requestIDHeader, id)

			ctx := transportcore.ContextWithRequestID(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

package middleware

import (
	"net/http"

	"github.com/edugamja/gamja-mcp/internal/transport/transportcore"
)

// CORS header values. The gateway serves browser-based MCP clients from
// arbitrary origins, so the policy is wide open.
const (
	corsAllowOrigin  = "*"
	corsAllowMethods = "GET, POST, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization"
)

// NewCORSMiddleware creates middleware that sets permissive CORS
// headers on every response and short-circuits OPTIONS preflight
// requests before they reach authentication or routing.
func NewCORSMiddleware() transportcore.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", corsAllowOrigin)
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

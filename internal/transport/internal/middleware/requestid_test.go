package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/edugamja/gamja-mcp/internal/transport/transportcore"
)

func TestRequestIDMiddleware_AssignsID(t *testing.T) {
	t.Parallel()

	var ctxID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = transportcore.RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	NewRequestIDMiddleware()(next).ServeHTTP(w, req)

	if ctxID == "" {
		t.Fatal("expected a request ID in context")
	}
	if got := w.Header().Get("X-Request-ID"); got != ctxID {
		t.Errorf("header ID = %q, want %q", got, ctxID)
	}
}

func TestRequestIDMiddleware_ReusesIncoming(t *testing.T) {
	t.Parallel()

	var ctxID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = transportcore.RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "upstream-id")
	w := httptest.NewRecorder()

	NewRequestIDMiddleware()(next).ServeHTTP(w, req)

	if ctxID != "upstream-id" {
		t.Errorf("context ID = %q, want upstream-id", ctxID)
	}
	if got := w.Header().Get("X-Request-ID"); got != "upstream-id" {
		t.Errorf("header ID = %q, want upstream-id", got)
	}
}

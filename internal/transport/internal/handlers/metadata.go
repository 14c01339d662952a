package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/edugamja/gamja-mcp/internal/oauth"
	"github.com/edugamja/gamja-mcp/internal/transport/transportcore"
	pkgoauth "github.com/edugamja/gamja-mcp/pkg/oauth"
)

// metadataHandler serves the two well-known OAuth metadata documents.
// Both are pure functions of the request's own origin so the server
// stays portable across deployment hostnames.
type metadataHandler struct {
	responder transportcore.ErrorResponder
	build     func(origin string) any
}

// NewProtectedResourceHandler creates the RFC 9728 protected resource
// metadata handler.
func NewProtectedResourceHandler(responder transportcore.ErrorResponder) http.Handler {
	return newMetadataHandler(responder, func(origin string) any {
		return oauth.NewProtectedResourceMetadata(origin)
	})
}

// NewAuthorizationServerHandler creates the RFC 8414 authorization
// server metadata handler.
func NewAuthorizationServerHandler(responder transportcore.ErrorResponder) http.Handler {
	return newMetadataHandler(responder, func(origin string) any {
		return oauth.NewAuthorizationServerMetadata(origin)
	})
}

func newMetadataHandler(responder transportcore.ErrorResponder, build func(origin string) any) http.Handler {
	if responder == nil {
		panic("responder cannot be nil")
	}
	return &metadataHandler{responder: responder, build: build}
}

func (h *metadataHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.responder.MethodNotAllowed(w, http.MethodGet, "Method not allowed")
		return
	}

	doc := h.build(oauth.ServerURL(r))

	w.Header().Set(pkgoauth.HeaderContentType, pkgoauth.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		slog.Error("failed to encode metadata document", "error", err)
	}
}

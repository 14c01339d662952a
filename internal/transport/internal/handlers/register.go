package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	internalerrors "github.com/edugamja/gamja-mcp/internal/errors"
	"github.com/edugamja/gamja-mcp/internal/oauth"
	"github.com/edugamja/gamja-mcp/internal/transport/transportcore"
	pkgoauth "github.com/edugamja/gamja-mcp/pkg/oauth"
)

// registerHandler implements RFC 7591 dynamic client registration.
type registerHandler struct {
	authorizer *oauth.Authorizer
	responder  transportcore.ErrorResponder
}

// NewRegisterHandler creates the client registration endpoint handler.
func NewRegisterHandler(authorizer *oauth.Authorizer, responder transportcore.ErrorResponder) http.Handler {
	if authorizer == nil {
		panic("authorizer cannot be nil")
	}
	if responder == nil {
		panic("responder cannot be nil")
	}

	return &registerHandler{
		authorizer: authorizer,
		responder:  responder,
	}
}

func (h *registerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.responder.OAuthError(w, internalerrors.NewOAuthError(
			http.StatusMethodNotAllowed,
			internalerrors.ErrorCodeInvalidRequest,
			"Method must be POST",
		))
		return
	}

	var req oauth.RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.OAuthError(w, internalerrors.InvalidClientMetadata(err.Error()))
		return
	}

	client, oerr := h.authorizer.Register(r.Context(), req)
	if oerr != nil {
		h.responder.OAuthError(w, oerr)
		return
	}

	w.Header().Set(pkgoauth.HeaderContentType, pkgoauth.ContentTypeJSON)
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(client); err != nil {
		slog.Error("failed to encode registration response", "error", err)
	}
}

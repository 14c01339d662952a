package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	internalerrors "github.com/edugamja/gamja-mcp/internal/errors"
	"github.com/edugamja/gamja-mcp/internal/oauth"
	"github.com/edugamja/gamja-mcp/internal/transport/transportcore"
	pkgoauth "github.com/edugamja/gamja-mcp/pkg/oauth"
)

// tokenHandler implements the OAuth 2.1 token endpoint. It accepts the
// exchange parameters as either a JSON or a form-encoded body, selected
// by Content-Type.
type tokenHandler struct {
	authorizer *oauth.Authorizer
	responder  transportcore.ErrorResponder
}

// NewTokenHandler creates the token endpoint handler.
func NewTokenHandler(authorizer *oauth.Authorizer, responder transportcore.ErrorResponder) http.Handler {
	if authorizer == nil {
		panic("authorizer cannot be nil")
	}
	if responder == nil {
		panic("responder cannot be nil")
	}

	return &tokenHandler{
		authorizer: authorizer,
		responder:  responder,
	}
}

func (h *tokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.responder.OAuthError(w, internalerrors.NewOAuthError(
			http.StatusMethodNotAllowed,
			internalerrors.ErrorCodeInvalidRequest,
			"Method must be POST",
		))
		return
	}

	req, oerr := h.parseTokenRequest(r)
	if oerr != nil {
		h.responder.OAuthError(w, oerr)
		return
	}

	resp, oerr := h.authorizer.Exchange(r.Context(), req)
	if oerr != nil {
		h.responder.OAuthError(w, oerr)
		return
	}

	w.Header().Set(pkgoauth.HeaderContentType, pkgoauth.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode token response", "error", err)
	}
}

// parseTokenRequest reads the exchange parameters from the body. A JSON
// Content-Type selects the JSON shape; anything else is read as a form.
func (h *tokenHandler) parseTokenRequest(r *http.Request) (oauth.TokenRequest, *internalerrors.OAuthError) {
	var req oauth.TokenRequest

	contentType := r.Header.Get(pkgoauth.HeaderContentType)
	if strings.Contains(contentType, pkgoauth.ContentTypeJSON) {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, internalerrors.InvalidRequest("malformed JSON body")
		}
		return req, nil
	}

	if err := r.ParseForm(); err != nil {
		return req, internalerrors.InvalidRequest("malformed form body")
	}
	req.GrantType = r.PostForm.Get("grant_type")
	req.Code = r.PostForm.Get("code")
	req.CodeVerifier = r.PostForm.Get("code_verifier")
	req.ClientID = r.PostForm.Get("client_id")
	req.RedirectURI = r.PostForm.Get("redirect_uri")
	return req, nil
}

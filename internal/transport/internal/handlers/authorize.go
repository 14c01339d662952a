package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/url"

	internalerrors "github.com/edugamja/gamja-mcp/internal/errors"
	"github.com/edugamja/gamja-mcp/internal/oauth"
	"github.com/edugamja/gamja-mcp/internal/transport/transportcore"
	pkgoauth "github.com/edugamja/gamja-mcp/pkg/oauth"
)

// Client-visible login form errors. The audience is Korean students, so
// these stay localized.
const (
	errMissingAuthorizeParams = "필수 파라미터가 누락되었습니다 (client_id, redirect_uri, code_challenge)"
	errBadCredentials         = "아이디 또는 패스워드가 올바르지 않습니다"
)

// authorizeHandler implements the OAuth 2.1 authorization endpoint.
// GET renders the login form with the OAuth parameters echoed into
// hidden fields; POST verifies credentials, mints an authorization
// code, and redirects back to the client.
type authorizeHandler struct {
	authorizer  *oauth.Authorizer
	credentials oauth.CredentialsProvider
	responder   transportcore.ErrorResponder
}

// NewAuthorizeHandler creates the authorization endpoint handler.
func NewAuthorizeHandler(
	authorizer *oauth.Authorizer,
	credentials oauth.CredentialsProvider,
	responder transportcore.ErrorResponder,
) http.Handler {
	if authorizer == nil {
		panic("authorizer cannot be nil")
	}
	if credentials == nil {
		panic("credentials cannot be nil")
	}
	if responder == nil {
		panic("responder cannot be nil")
	}

	return &authorizeHandler{
		authorizer:  authorizer,
		credentials: credentials,
		responder:   responder,
	}
}

func (h *authorizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.serveLoginForm(w, r)
	case http.MethodPost:
		h.serveLoginSubmission(w, r)
	default:
		h.responder.MethodNotAllowed(w, "GET, POST", "Method not allowed")
	}
}

// serveLoginForm renders the login page. Missing required parameters
// produce the form with an inline error and HTTP 400; the values the
// caller did supply are still echoed so a corrected resubmission keeps
// them.
func (h *authorizeHandler) serveLoginForm(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := loginDataFromValues(q)

	if data.ClientID == "" || data.RedirectURI == "" || data.CodeChallenge == "" {
		data.Error = errMissingAuthorizeParams
		h.renderLogin(w, http.StatusBadRequest, data)
		return
	}

	h.renderLogin(w, http.StatusOK, data)
}

// serveLoginSubmission verifies the submitted credentials and redirects
// back to the client with a fresh authorization code. Credentials are
// process-wide, not per client. The redirect URI is used as given; no
// allow-list check against the client registration happens here.
func (h *authorizeHandler) serveLoginSubmission(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.responder.OAuthError(w, internalerrors.InvalidRequest("malformed form body"))
		return
	}

	data := loginDataFromValues(r.PostForm)
	username := r.PostForm.Get("username")
	password := r.PostForm.Get("password")

	if !h.credentials.Verify(username, password) {
		data.Error = errBadCredentials
		h.renderLogin(w, http.StatusUnauthorized, data)
		return
	}

	code, err := h.authorizer.IssueCode(r.Context(), oauth.AuthorizeRequest{
		ClientID:            data.ClientID,
		RedirectURI:         data.RedirectURI,
		CodeChallenge:       data.CodeChallenge,
		CodeChallengeMethod: data.CodeChallengeMethod,
		Scope:               data.Scope,
	})
	if err != nil {
		slog.Error("authorization code issuance failed", "error", err, "client_id", data.ClientID)
		h.responder.InternalError(w, err)
		return
	}

	redirect, err := url.Parse(data.RedirectURI)
	if err != nil {
		slog.Warn("unparseable redirect_uri", "error", err)
		h.responder.InternalError(w, err)
		return
	}
	params := redirect.Query()
	params.Set("code", code)
	if data.State != "" {
		params.Set("state", data.State)
	}
	redirect.RawQuery = params.Encode()

	http.Redirect(w, r, redirect.String(), http.StatusFound)
}

func (h *authorizeHandler) renderLogin(w http.ResponseWriter, status int, data loginPageData) {
	renderHTMLStatus(w, status, "login", func(buf *bytes.Buffer) error {
		return loginTemplate.Execute(buf, data)
	}, h.responder)
}

// loginDataFromValues reads the OAuth parameters from a query string or
// form body, applying the scope and challenge method defaults.
func loginDataFromValues(values url.Values) loginPageData {
	data := loginPageData{
		ClientID:            values.Get("client_id"),
		RedirectURI:         values.Get("redirect_uri"),
		State:               values.Get("state"),
		Scope:               values.Get("scope"),
		CodeChallenge:       values.Get("code_challenge"),
		CodeChallengeMethod: values.Get("code_challenge_method"),
	}
	if data.Scope == "" {
		data.Scope = pkgoauth.ScopeRead
	}
	if data.CodeChallengeMethod == "" {
		data.CodeChallengeMethod = pkgoauth.CodeChallengeMethodS256
	}
	return data
}

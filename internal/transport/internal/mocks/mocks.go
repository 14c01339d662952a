// Package mocks provides mock implementations for testing the transport layer.
package mocks

import (
	"context"
	"encoding/json"
	"net/http"

	internalerrors "github.com/edugamja/gamja-mcp/internal/errors"
	"github.com/edugamja/gamja-mcp/internal/mcp"
	"github.com/edugamja/gamja-mcp/internal/oauth"
)

// TokenValidator is a mock implementation of oauth.TokenValidator.
type TokenValidator struct {
	ValidateFunc func(ctx context.Context, token string) (*oauth.AccessToken, error)
}

// ValidateToken calls the mock ValidateFunc.
func (m *TokenValidator) ValidateToken(ctx context.Context, token string) (*oauth.AccessToken, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(ctx, token)
	}
	return nil, nil
}

// Credentials is a mock implementation of oauth.CredentialsProvider.
type Credentials struct {
	Username string
	Password string
	Token    string
}

// Verify compares against the mock's fixed values.
func (m *Credentials) Verify(username, password string) bool {
	return username == m.Username && password == m.Password
}

// StaticToken returns the mock's fixed token.
func (m *Credentials) StaticToken() string {
	return m.Token
}

// MCPHandler is a mock implementation of mcp.Handler.
type MCPHandler struct {
	HandleFunc func(ctx context.Context, req *mcp.Request) (*mcp.Response, error)
}

// HandleRequest calls the mock HandleFunc.
func (m *MCPHandler) HandleRequest(ctx context.Context, req *mcp.Request) (*mcp.Response, error) {
	if m.HandleFunc != nil {
		return m.HandleFunc(ctx, req)
	}
	return &mcp.Response{
		JSONRPC: mcp.JSONRPCVersion,
		ID:      req.ID,
	}, nil
}

// ErrorResponder is a mock implementation of transportcore.ErrorResponder.
// It records calls and writes minimal responses so handlers under test
// produce observable status codes.
type ErrorResponder struct {
	UnauthorizedCalled     bool
	UnauthorizedErr        error
	OAuthErrorCalled       bool
	OAuthErr               *internalerrors.OAuthError
	MethodNotAllowedCalled bool
	MethodNotAllowedAllow  string
	NotFoundCalled         bool
	InternalCalled         bool
	InternalErr            error
}

// Unauthorized records the call and writes a 401 response.
func (m *ErrorResponder) Unauthorized(w http.ResponseWriter, r *http.Request, err error) {
	m.UnauthorizedCalled = true
	m.UnauthorizedErr = err
	w.WriteHeader(http.StatusUnauthorized)
}

// OAuthError records the call and writes the error's status and body.
func (m *ErrorResponder) OAuthError(w http.ResponseWriter, oerr *internalerrors.OAuthError) {
	m.OAuthErrorCalled = true
	m.OAuthErr = oerr
	w.WriteHeader(oerr.Status)
	_ = json.NewEncoder(w).Encode(oerr)
}

// MethodNotAllowed records the call and writes a 405 response.
func (m *ErrorResponder) MethodNotAllowed(w http.ResponseWriter, allow, message string) {
	m.MethodNotAllowedCalled = true
	m.MethodNotAllowedAllow = allow
	w.WriteHeader(http.StatusMethodNotAllowed)
}

// NotFound records the call and writes a 404 response.
func (m *ErrorResponder) NotFound(w http.ResponseWriter) {
	m.NotFoundCalled = true
	w.WriteHeader(http.StatusNotFound)
}

// InternalError records the call and writes a 500 response.
func (m *ErrorResponder) InternalError(w http.ResponseWriter, err error) {
	m.InternalCalled = true
	m.InternalErr = err
	w.WriteHeader(http.StatusInternalServerError)
}

package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/edugamja/gamja-mcp/internal/oauth"
	"github.com/edugamja/gamja-mcp/internal/transport/transportcore"
	pkgoauth "github.com/edugamja/gamja-mcp/pkg/oauth"
)

// loginRequest is the legacy login request body.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse is the legacy login response body. On success it hands
// out the static bearer token directly.
type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Error   string `json:"error,omitempty"`
}

// loginHandler implements the pre-OAuth login endpoint. Clients that
// predate the PKCE flow exchange a username/password for the static
// bearer token here.
type loginHandler struct {
	credentials oauth.CredentialsProvider
	responder   transportcore.ErrorResponder
}

// NewLoginHandler creates the legacy login endpoint handler.
func NewLoginHandler(credentials oauth.CredentialsProvider, responder transportcore.ErrorResponder) http.Handler {
	if credentials == nil {
		panic("credentials cannot be nil")
	}
	if responder == nil {
		panic("responder cannot be nil")
	}

	return &loginHandler{
		credentials: credentials,
		responder:   responder,
	}
}

func (h *loginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeJSON(w, http.StatusMethodNotAllowed, loginResponse{
			Success: false,
			Error:   "Method not allowed. Use POST.",
		})
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, loginResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid JSON body: %s", err.Error()),
		})
		return
	}

	if req.Username == "" || req.Password == "" {
		h.writeJSON(w, http.StatusBadRequest, loginResponse{
			Success: false,
			Error:   "Username and password are required",
		})
		return
	}

	if !h.credentials.Verify(req.Username, req.Password) {
		h.writeJSON(w, http.StatusUnauthorized, loginResponse{
			Success: false,
			Error:   "Invalid credentials",
		})
		return
	}

	h.writeJSON(w, http.StatusOK, loginResponse{
		Success: true,
		Token:   h.credentials.StaticToken(),
	})
}

func (h *loginHandler) writeJSON(w http.ResponseWriter, status int, resp loginResponse) {
	w.Header().Set(pkgoauth.HeaderContentType, pkgoauth.ContentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode login response", "error", err)
	}
}

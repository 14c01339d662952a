package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	internalerrors "github.com/edugamja/gamja-mcp/internal/errors"
	"github.com/edugamja/gamja-mcp/internal/oauth"
	"github.com/edugamja/gamja-mcp/internal/transport/internal/mocks"
)

func TestRegisterHandler_Success(t *testing.T) {
	t.Parallel()

	handler := NewRegisterHandler(newAuthorizer(t), &mocks.ErrorResponder{})

	body := `{"client_name":"Test Client","redirect_uris":["https://client.example/cb"]}`
	req := httptest.NewRequest(http.MethodPost, "/oauth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %v, want 201, body = %s", w.Code, w.Body.String())
	}

	var client oauth.ClientRegistration
	if err := json.NewDecoder(w.Body).Decode(&client); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if !strings.HasPrefix(client.ClientID, "client_") {
		t.Errorf("client_id = %q, want client_ prefix", client.ClientID)
	}
	if client.ClientName != "Test Client" {
		t.Errorf("client_name = %q, want Test Client", client.ClientName)
	}
	if len(client.GrantTypes) != 1 || client.GrantTypes[0] != "authorization_code" {
		t.Errorf("grant_types = %v, want [authorization_code]", client.GrantTypes)
	}
	if len(client.ResponseTypes) != 1 || client.ResponseTypes[0] != "code" {
		t.Errorf("response_types = %v, want [code]", client.ResponseTypes)
	}
	if client.TokenEndpointAuthMethod != "none" {
		t.Errorf("token_endpoint_auth_method = %q, want none", client.TokenEndpointAuthMethod)
	}
	if client.ClientIDIssuedAt == 0 {
		t.Error("expected client_id_issued_at to be set")
	}
}

func TestRegisterHandler_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		method    string
		body      string
		wantCode  int
		wantError string
	}{
		{
			name:      "GET not allowed",
			method:    http.MethodGet,
			wantCode:  http.StatusMethodNotAllowed,
			wantError: internalerrors.ErrorCodeInvalidRequest,
		},
		{
			name:      "malformed JSON",
			method:    http.MethodPost,
			body:      "{not json",
			wantCode:  http.StatusBadRequest,
			wantError: internalerrors.ErrorCodeInvalidClientMetadata,
		},
		{
			name:      "missing redirect_uris",
			method:    http.MethodPost,
			body:      `{"client_name":"Test Client"}`,
			wantCode:  http.StatusBadRequest,
			wantError: internalerrors.ErrorCodeInvalidClientMetadata,
		},
		{
			name:      "empty redirect_uris",
			method:    http.MethodPost,
			body:      `{"redirect_uris":[]}`,
			wantCode:  http.StatusBadRequest,
			wantError: internalerrors.ErrorCodeInvalidClientMetadata,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			responder := &mocks.ErrorResponder{}
			handler := NewRegisterHandler(newAuthorizer(t), responder)

			req := httptest.NewRequest(tt.method, "/oauth/register", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("status = %v, want %v", w.Code, tt.wantCode)
			}
			if !responder.OAuthErrorCalled {
				t.Fatal("expected an OAuth error")
			}
			if responder.OAuthErr.ErrorCode != tt.wantError {
				t.Errorf("error = %q, want %q", responder.OAuthErr.ErrorCode, tt.wantError)
			}
		})
	}
}

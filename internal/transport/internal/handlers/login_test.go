package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/edugamja/gamja-mcp/internal/transport/internal/mocks"
)

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	creds := &mocks.Credentials{Username: "admin", Password: "secret", Token: "legacy-token"}

	tests := []struct {
		name        string
		method      string
		body        string
		wantCode    int
		wantSuccess bool
		wantToken   string
		wantError   string
	}{
		{
			name:      "GET not allowed",
			method:    http.MethodGet,
			wantCode:  http.StatusMethodNotAllowed,
			wantError: "Method not allowed. Use POST.",
		},
		{
			name:     "malformed JSON",
			method:   http.MethodPost,
			body:     "{not json",
			wantCode: http.StatusBadRequest,
		},
		{
			name:      "missing fields",
			method:    http.MethodPost,
			body:      `{"username":"admin"}`,
			wantCode:  http.StatusBadRequest,
			wantError: "Username and password are required",
		},
		{
			name:      "wrong credentials",
			method:    http.MethodPost,
			body:      `{"username":"admin","password":"nope"}`,
			wantCode:  http.StatusUnauthorized,
			wantError: "Invalid credentials",
		},
		{
			name:        "success returns static token",
			method:      http.MethodPost,
			body:        `{"username":"admin","password":"secret"}`,
			wantCode:    http.StatusOK,
			wantSuccess: true,
			wantToken:   "legacy-token",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := NewLoginHandler(creds, &mocks.ErrorResponder{})

			req := httptest.NewRequest(tt.method, "/auth/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("status = %v, want %v", w.Code, tt.wantCode)
			}

			var resp loginResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decode failed: %v", err)
			}

			if resp.Success != tt.wantSuccess {
				t.Errorf("success = %v, want %v", resp.Success, tt.wantSuccess)
			}
			if resp.Token != tt.wantToken {
				t.Errorf("token = %q, want %q", resp.Token, tt.wantToken)
			}
			if tt.wantError != "" && resp.Error != tt.wantError {
				t.Errorf("error = %q, want %q", resp.Error, tt.wantError)
			}
		})
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/edugamja/gamja-mcp/internal/mcp"
	"github.com/edugamja/gamja-mcp/internal/transport/internal/mocks"
)

func TestMCPHandler_ValidRequest(t *testing.T) {
	t.Parallel()

	expectedResult := map[string]any{"success": true}

	handler := &mocks.MCPHandler{
		HandleFunc: func(ctx context.Context, req *mcp.Request) (*mcp.Response, error) {
			return &mcp.Response{
				JSONRPC: mcp.JSONRPCVersion,
				ID:      req.ID,
				Result:  expectedResult,
			}, nil
		},
	}

	responder := &mocks.ErrorResponder{}
	mcpHandler := NewMCPHandler(handler, responder)

	reqBody := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`
	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	mcpHandler.ServeHTTP(w, req)

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %v, want 200", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		t.Errorf("Content-Type = %v, want application/json", contentType)
	}

	var jsonRPCResp mcp.Response
	if err := json.NewDecoder(resp.Body).Decode(&jsonRPCResp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if jsonRPCResp.JSONRPC != mcp.JSONRPCVersion {
		t.Errorf("JSONRPC version = %v, want 2.0", jsonRPCResp.JSONRPC)
	}
	if jsonRPCResp.Error != nil {
		t.Errorf("Unexpected error in response: %v", jsonRPCResp.Error)
	}
}

func TestMCPHandler_GET(t *testing.T) {
	t.Parallel()

	responder := &mocks.ErrorResponder{}
	mcpHandler := NewMCPHandler(&mocks.MCPHandler{}, responder)

	req := httptest.NewRequest(http.MethodGet, "/mcp", nil)
	w := httptest.NewRecorder()

	mcpHandler.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %v, want 405", w.Code)
	}
	if !responder.MethodNotAllowedCalled {
		t.Error("expected MethodNotAllowed on the responder")
	}
	if responder.MethodNotAllowedAllow != http.MethodPost {
		t.Errorf("Allow = %q, want POST", responder.MethodNotAllowedAllow)
	}
}

func TestMCPHandler_ParseError(t *testing.T) {
	t.Parallel()

	responder := &mocks.ErrorResponder{}
	mcpHandler := NewMCPHandler(&mocks.MCPHandler{}, responder)

	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	mcpHandler.ServeHTTP(w, req)

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()

	// Unparseable bodies are the one JSON-RPC error that is also an
	// HTTP-level failure.
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %v, want 400", resp.StatusCode)
	}

	var jsonRPCResp mcp.Response
	if err := json.NewDecoder(resp.Body).Decode(&jsonRPCResp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if jsonRPCResp.Error == nil {
		t.Fatal("expected a JSON-RPC error")
	}
	if jsonRPCResp.Error.Code != mcp.CodeParseError {
		t.Errorf("error code = %v, want %v", jsonRPCResp.Error.Code, mcp.CodeParseError)
	}
	if jsonRPCResp.Error.Message != "Parse error" {
		t.Errorf("error message = %q, want %q", jsonRPCResp.Error.Message, "Parse error")
	}
}

func TestMCPHandler_HandlerError(t *testing.T) {
	t.Parallel()

	handler := &mocks.MCPHandler{
		HandleFunc: func(ctx context.Context, req *mcp.Request) (*mcp.Response, error) {
			return nil, errors.New("boom")
		},
	}

	responder := &mocks.ErrorResponder{}
	mcpHandler := NewMCPHandler(handler, responder)

	reqBody := `{"jsonrpc":"2.0","id":7,"method":"tools/list"}`
	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(reqBody))
	w := httptest.NewRecorder()

	mcpHandler.ServeHTTP(w, req)

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()

	// Dispatch-level failures stay JSON-RPC errors on HTTP 200.
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %v, want 200", resp.StatusCode)
	}

	var jsonRPCResp mcp.Response
	if err := json.NewDecoder(resp.Body).Decode(&jsonRPCResp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if jsonRPCResp.Error == nil {
		t.Fatal("expected a JSON-RPC error")
	}
	if jsonRPCResp.Error.Code != mcp.CodeInternalError {
		t.Errorf("error code = %v, want %v", jsonRPCResp.Error.Code, mcp.CodeInternalError)
	}
}

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/edugamja/gamja-mcp/internal/transport/internal/mocks"
)

func TestHomeHandler_RendersPage(t *testing.T) {
	t.Parallel()

	handler := NewHomeHandler(&mocks.ErrorResponder{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "gamja.example.com"
	req.Header.Set("X-Forwarded-Proto", "https")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %v, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}

	body := w.Body.String()
	for _, want := range []string{
		"Gamja MCP Server",
		"https://gamja.example.com/mcp",
		"https://gamja.example.com/oauth/authorize",
		"list_subjects",
		"read_exam_registration",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("home page missing %q", want)
		}
	}
}

func TestHomeHandler_UnknownPath(t *testing.T) {
	t.Parallel()

	responder := &mocks.ErrorResponder{}
	handler := NewHomeHandler(responder)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %v, want 404", w.Code)
	}
	if !responder.NotFoundCalled {
		t.Error("expected NotFound on the responder")
	}
}

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	handler := NewHealthHandler(&mocks.ErrorResponder{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %v, want 200", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "Healthy") {
		t.Error("health page missing status text")
	}
	if !strings.Contains(body, "Last checked:") {
		t.Error("health page missing timestamp")
	}
	if !strings.Contains(body, "MCP 2024-11-05") {
		t.Error("health page missing protocol version")
	}
}

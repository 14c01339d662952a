// Package handlers provides HTTP handlers for the transport layer.
package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/edugamja/gamja-mcp/internal/oauth"
	"github.com/edugamja/gamja-mcp/internal/transport/transportcore"
	pkgoauth "github.com/edugamja/gamja-mcp/pkg/oauth"
)

// homeHandler serves the landing page at "/". Registered on the mux's
// catch-all pattern, so any other unmatched path gets the JSON 404.
type homeHandler struct {
	responder transportcore.ErrorResponder
}

// NewHomeHandler creates the handler for "/" and unmatched paths.
func NewHomeHandler(responder transportcore.ErrorResponder) http.Handler {
	if responder == nil {
		panic("responder cannot be nil")
	}
	return &homeHandler{responder: responder}
}

func (h *homeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.responder.NotFound(w)
		return
	}

	data := homePageData{ServerURL: oauth.ServerURL(r)}
	renderHTML(w, "home", func(buf *bytes.Buffer) error {
		return homeTemplate.Execute(buf, data)
	}, h.responder)
}

// healthHandler serves the human-readable health page.
type healthHandler struct {
	responder transportcore.ErrorResponder
	now       func() time.Time
}

// NewHealthHandler creates the health check page handler.
func NewHealthHandler(responder transportcore.ErrorResponder) http.Handler {
	if responder == nil {
		panic("responder cannot be nil")
	}
	return &healthHandler{responder: responder, now: time.Now}
}

func (h *healthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	data := healthPageData{Timestamp: h.now().UTC().Format(time.RFC3339)}
	renderHTML(w, "health", func(buf *bytes.Buffer) error {
		return healthTemplate.Execute(buf, data)
	}, h.responder)
}

// renderHTML executes a page template into a buffer so a render
// failure can still produce a clean 500 instead of a torn response.
func renderHTML(w http.ResponseWriter, name string, render func(*bytes.Buffer) error, responder transportcore.ErrorResponder) {
	renderHTMLStatus(w, http.StatusOK, name, render, responder)
}

// renderHTMLStatus is renderHTML with an explicit status code, used by
// the authorize endpoint's error pages.
func renderHTMLStatus(w http.ResponseWriter, status int, name string, render func(*bytes.Buffer) error, responder transportcore.ErrorResponder) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		slog.Error("template render failed", "template", name, "error", err)
		responder.InternalError(w, err)
		return
	}

	w.Header().Set(pkgoauth.HeaderContentType, pkgoauth.ContentTypeHTML)
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("failed to write page response", "template", name, "error", err)
	}
}

package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/edugamja/gamja-mcp/internal/mcp"
	"github.com/edugamja/gamja-mcp/internal/transport/transportcore"
	pkgoauth "github.com/edugamja/gamja-mcp/pkg/oauth"
)

// mcpHandler handles MCP protocol requests over HTTP.
type mcpHandler struct {
	handler   mcp.Handler
	responder transportcore.ErrorResponder
}

// NewMCPHandler creates a handler for MCP JSON-RPC requests.
// It parses JSON-RPC requests, delegates to the MCP handler, and returns JSON-RPC responses.
func NewMCPHandler(handler mcp.Handler, responder transportcore.ErrorResponder) http.Handler {
	if handler == nil {
		panic("handler cannot be nil")
	}
	if responder == nil {
		panic("responder cannot be nil")
	}

	return &mcpHandler{
		handler:   handler,
		responder: responder,
	}
}

// ServeHTTP handles POST requests for MCP protocol.
// Only POST method is allowed for JSON-RPC requests.
func (h *mcpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.responder.MethodNotAllowed(w, http.MethodPost, "Method not allowed. Use POST for MCP requests.")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		slog.Error("failed to read request body", "error", err)
		h.sendParseError(w, err)
		return
	}
	defer func() {
		if closeErr := r.Body.Close(); closeErr != nil {
			slog.Warn("failed to close request body", "error", closeErr)
		}
	}()

	var req mcp.Request
	if err := json.Unmarshal(body, &req); err != nil {
		slog.Error("failed to parse JSON-RPC request", "error", err)
		h.sendParseError(w, err)
		return
	}

	resp, err := h.handler.HandleRequest(r.Context(), &req)
	if err != nil {
		slog.Error("MCP handler error", "error", err, "method", req.Method)
		h.sendJSONRPCError(w, req.ID, mcp.CodeInternalError, "Internal error", err.Error())
		return
	}

	h.sendJSONRPCResponse(w, http.StatusOK, resp)
}

// sendParseError reports unparseable request bodies. Unlike method
// dispatch errors, which are JSON-RPC responses on HTTP 200, a body the
// server could not read at all is also an HTTP 400.
func (h *mcpHandler) sendParseError(w http.ResponseWriter, cause error) {
	resp := &mcp.Response{
		JSONRPC: mcp.JSONRPCVersion,
		ID:      0,
		Error: &mcp.Error{
			Code:    mcp.CodeParseError,
			Message: "Parse error",
			Data:    cause.Error(),
		},
	}
	h.sendJSONRPCResponse(w, http.StatusBadRequest, resp)
}

// sendJSONRPCError sends a JSON-RPC error response with HTTP 200.
func (h *mcpHandler) sendJSONRPCError(w http.ResponseWriter, id any, code int, message string, data any) {
	resp := &mcp.Response{
		JSONRPC: mcp.JSONRPCVersion,
		ID:      id,
		Error:   mcp.NewError(code, message, data),
	}
	h.sendJSONRPCResponse(w, http.StatusOK, resp)
}

// sendJSONRPCResponse sends a JSON-RPC response to the client.
func (h *mcpHandler) sendJSONRPCResponse(w http.ResponseWriter, status int, resp *mcp.Response) {
	w.Header().Set(pkgoauth.HeaderContentType, pkgoauth.ContentTypeJSON)
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode JSON-RPC response", "error", err)
	}
}

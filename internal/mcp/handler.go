package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	internalerrors "github.com/edugamja/gamja-mcp/internal/errors"
)

// handler implements the Handler interface.
// It routes JSON-RPC requests to appropriate method handlers.
type handler struct {
	toolRegistry ToolRegistry
	serverInfo   serverInfo
}

// serverInfo contains metadata about the MCP server.
type serverInfo struct {
	Name    string
	Version string
}

// newHandler creates a new MCP protocol handler.
func newHandler(toolRegistry ToolRegistry, info serverInfo) Handler {
	if toolRegistry == nil {
		panic("toolRegistry cannot be nil")
	}
	return &handler{
		toolRegistry: toolRegistry,
		serverInfo:   info,
	}
}

// HandleRequest processes an MCP JSON-RPC request.
func (h *handler) HandleRequest(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return h.errorResponse(nil, CodeInvalidRequest, "request cannot be nil", nil), nil
	}

	if req.JSONRPC != JSONRPCVersion {
		return h.errorResponse(req.ID, CodeInvalidRequest, "invalid jsonrpc version", nil), nil
	}

	if req.Method == "" {
		return h.errorResponse(req.ID, CodeInvalidRequest, "method is required", nil), nil
	}

	switch req.Method {
	case "initialize":
		return h.handleInitialize(ctx, req)
	case "notifications/initialized":
		// Acknowledged with an empty result; the handler keeps no
		// per-session state, so initialize is idempotent and this is
		// informational only.
		return &Response{JSONRPC: JSONRPCVersion, ID: req.ID, Result: struct{}{}}, nil
	case "tools/list":
		return h.handleToolsList(ctx, req)
	case "tools/call":
		return h.handleToolsCall(ctx, req)
	default:
		return h.errorResponse(req.ID, CodeMethodNotFound, fmt.Sprintf("Method not found: %s", req.Method), nil), nil
	}
}

// handleInitialize handles the initialize method.
func (h *handler) handleInitialize(_ context.Context, req *Request) (*Response, error) {
	var params InitializeParams
	if req.Params != nil {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return h.errorResponse(req.ID, CodeInvalidParams, "invalid initialize params", err.Error()), nil
		}
	}

	result := InitializeResult{
		ProtocolVersion: ProtocolVersion,
		Capabilities: Capabilities{
			Tools: ToolsCapability{},
		},
		ServerInfo: ServerInfoResponse{
			Name:    h.serverInfo.Name,
			Version: h.serverInfo.Version,
		},
	}

	return &Response{
		JSONRPC: JSONRPCVersion,
		ID:      req.ID,
		Result:  result,
	}, nil
}

// handleToolsList handles the tools/list method.
func (h *handler) handleToolsList(_ context.Context, req *Request) (*Response, error) {
	result := ToolsListResult{
		Tools: h.toolRegistry.ListTools(),
	}

	return &Response{
		JSONRPC: JSONRPCVersion,
		ID:      req.ID,
		Result:  result,
	}, nil
}

// handleToolsCall handles the tools/call method. An unknown or missing
// tool name reports method-not-found with the name echoed back, which
// is what MCP clients display to users.
func (h *handler) handleToolsCall(ctx context.Context, req *Request) (*Response, error) {
	var params ToolsCallParams
	if req.Params != nil {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return h.errorResponse(req.ID, CodeInvalidParams, "invalid tools/call params", err.Error()), nil
		}
	}

	tool, err := h.toolRegistry.GetTool(params.Name)
	if err != nil {
		return h.errorResponse(req.ID, CodeMethodNotFound, fmt.Sprintf("Unknown tool: %s", params.Name), nil), nil
	}

	text, err := tool.Execute(ctx, params.Arguments)
	if err != nil {
		domainErr := internalerrors.New("mcp", "HandleRequest", internalerrors.ErrInternal, err)
		slog.Error("tool execution failed", "tool", params.Name, "error", err)
		return h.errorResponse(req.ID, CodeInternalError, "tool execution failed", domainErr.Error()), nil
	}

	return &Response{
		JSONRPC: JSONRPCVersion,
		ID:      req.ID,
		Result:  TextResult(text),
	}, nil
}

// errorResponse creates a JSON-RPC error response.
func (h *handler) errorResponse(id any, code int, message string, data any) *Response {
	return &Response{
		JSONRPC: JSONRPCVersion,
		ID:      id,
		Error: &Error{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

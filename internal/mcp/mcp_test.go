package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

// stubTool is a canned-output tool for handler tests.
type stubTool struct {
	name   string
	output string
	err    error
	args   map[string]any
}

func (t *stubTool) Execute(_ context.Context, args map[string]any) (string, error) {
	t.args = args
	return t.output, t.err
}

func (t *stubTool) Definition() ToolDefinition {
	return ToolDefinition{
		Name:        t.name,
		Description: "stub",
		InputSchema: map[string]any{"type": "object", "properties": map[string]any{}},
	}
}

func newTestHandler(t *testing.T, tools ...*stubTool) (Handler, ToolRegistry) {
	t.Helper()
	h, reg := NewMCPServices(&Config{ServerName: "gamja-mcp-server", ServerVersion: "1.0.0"})
	for _, tool := range tools {
		if err := reg.RegisterTool(tool.name, tool); err != nil {
			t.Fatalf("RegisterTool(%q) error: %v", tool.name, err)
		}
	}
	return h, reg
}

func TestHandleInitialize(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)
	resp, err := h.HandleRequest(context.Background(), &Request{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "initialize",
		Params:  json.RawMessage(`{"protocolVersion":"2024-11-05","clientInfo":{"name":"test","version":"0.1"}}`),
	})
	if err != nil {
		t.Fatalf("HandleRequest error: %v", err)
	}
	if resp.IsError() {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}

	result, ok := resp.Result.(InitializeResult)
	if !ok {
		t.Fatalf("result type = %T", resp.Result)
	}
	if result.ProtocolVersion != "2024-11-05" {
		t.Errorf("protocolVersion = %q", result.ProtocolVersion)
	}
	if result.ServerInfo.Name != "gamja-mcp-server" || result.ServerInfo.Version != "1.0.0" {
		t.Errorf("serverInfo = %+v", result.ServerInfo)
	}
}

func TestHandleInitializeIdempotent(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)
	req := &Request{JSONRPC: "2.0", ID: 1, Method: "initialize"}

	first, _ := h.HandleRequest(context.Background(), req)
	second, _ := h.HandleRequest(context.Background(), req)
	if first.IsError() || second.IsError() {
		t.Fatalf("repeated initialize failed: %+v / %+v", first.Error, second.Error)
	}
}

func TestHandleNotificationsInitialized(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)
	resp, err := h.HandleRequest(context.Background(), &Request{
		JSONRPC: "2.0",
		ID:      2,
		Method:  "notifications/initialized",
	})
	if err != nil {
		t.Fatalf("HandleRequest error: %v", err)
	}
	if resp.IsError() {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
	if resp.Result == nil {
		t.Error("result is nil, want empty object")
	}
}

func TestHandleRequestValidation(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)
	tests := []struct {
		name     string
		req      *Request
		wantCode int
		wantMsg  string
	}{
		{
			name:     "nil request",
			req:      nil,
			wantCode: CodeInvalidRequest,
		},
		{
			name:     "wrong jsonrpc version",
			req:      &Request{JSONRPC: "1.0", ID: 1, Method: "initialize"},
			wantCode: CodeInvalidRequest,
		},
		{
			name:     "missing method",
			req:      &Request{JSONRPC: "2.0", ID: 1},
			wantCode: CodeInvalidRequest,
		},
		{
			name:     "unknown method",
			req:      &Request{JSONRPC: "2.0", ID: 1, Method: "resources/list"},
			wantCode: CodeMethodNotFound,
			wantMsg:  "Method not found: resources/list",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resp, err := h.HandleRequest(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("HandleRequest error: %v", err)
			}
			if !resp.IsError() {
				t.Fatal("expected error response")
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", resp.Error.Code, tt.wantCode)
			}
			if tt.wantMsg != "" && resp.Error.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", resp.Error.Message, tt.wantMsg)
			}
		})
	}
}

func TestHandleToolsListOrdered(t *testing.T) {
	t.Parallel()

	names := []string{"alpha", "bravo", "charlie"}
	var tools []*stubTool
	for _, n := range names {
		tools = append(tools, &stubTool{name: n, output: n})
	}
	h, _ := newTestHandler(t, tools...)

	for i := 0; i < 5; i++ {
		resp, err := h.HandleRequest(context.Background(), &Request{
			JSONRPC: "2.0", ID: 1, Method: "tools/list",
		})
		if err != nil {
			t.Fatalf("HandleRequest error: %v", err)
		}
		result := resp.Result.(ToolsListResult)
		if len(result.Tools) != len(names) {
			t.Fatalf("tools = %d, want %d", len(result.Tools), len(names))
		}
		for j, def := range result.Tools {
			if def.Name != names[j] {
				t.Errorf("tools[%d] = %q, want %q", j, def.Name, names[j])
			}
		}
	}
}

func TestHandleToolsCall(t *testing.T) {
	t.Parallel()

	tool := &stubTool{name: "list_subjects", output: "## jcg-gamza 과목 목록\n\n- 데이터베이스 (db): 12개 파일"}
	h, _ := newTestHandler(t, tool)

	resp, err := h.HandleRequest(context.Background(), &Request{
		JSONRPC: "2.0",
		ID:      7,
		Method:  "tools/call",
		Params:  json.RawMessage(`{"name":"list_subjects","arguments":{}}`),
	})
	if err != nil {
		t.Fatalf("HandleRequest error: %v", err)
	}
	if resp.IsError() {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}

	result := resp.Result.(ToolsCallResult)
	if len(result.Content) != 1 {
		t.Fatalf("content blocks = %d, want 1", len(result.Content))
	}
	if result.Content[0].Type != "text" {
		t.Errorf("content type = %q, want text", result.Content[0].Type)
	}
	if result.Content[0].Text != tool.output {
		t.Errorf("content text = %q", result.Content[0].Text)
	}
}

func TestHandleToolsCallArgumentsForwarded(t *testing.T) {
	t.Parallel()

	tool := &stubTool{name: "read_theory", output: "ok"}
	h, _ := newTestHandler(t, tool)

	_, err := h.HandleRequest(context.Background(), &Request{
		JSONRPC: "2.0",
		ID:      8,
		Method:  "tools/call",
		Params:  json.RawMessage(`{"name":"read_theory","arguments":{"subject":"db","filename":"normalization"}}`),
	})
	if err != nil {
		t.Fatalf("HandleRequest error: %v", err)
	}
	if tool.args["subject"] != "db" || tool.args["filename"] != "normalization" {
		t.Errorf("forwarded args = %v", tool.args)
	}
}

func TestHandleToolsCallUnknownTool(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, &stubTool{name: "list_subjects", output: "x"})

	tests := []struct {
		name    string
		params  json.RawMessage
		wantMsg string
	}{
		{
			name:    "unknown name",
			params:  json.RawMessage(`{"name":"delete_everything"}`),
			wantMsg: "Unknown tool: delete_everything",
		},
		{
			name:    "missing params",
			params:  nil,
			wantMsg: "Unknown tool: ",
		},
		{
			name:    "missing name",
			params:  json.RawMessage(`{"arguments":{}}`),
			wantMsg: "Unknown tool: ",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resp, err := h.HandleRequest(context.Background(), &Request{
				JSONRPC: "2.0", ID: 9, Method: "tools/call", Params: tt.params,
			})
			if err != nil {
				t.Fatalf("HandleRequest error: %v", err)
			}
			if !resp.IsError() {
				t.Fatal("expected error response")
			}
			if resp.Error.Code != CodeMethodNotFound {
				t.Errorf("code = %d, want %d", resp.Error.Code, CodeMethodNotFound)
			}
			if resp.Error.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", resp.Error.Message, tt.wantMsg)
			}
		})
	}
}

func TestHandleToolsCallExecutionError(t *testing.T) {
	t.Parallel()

	tool := &stubTool{name: "broken", err: errors.New("boom")}
	h, _ := newTestHandler(t, tool)

	resp, err := h.HandleRequest(context.Background(), &Request{
		JSONRPC: "2.0",
		ID:      10,
		Method:  "tools/call",
		Params:  json.RawMessage(`{"name":"broken"}`),
	})
	if err != nil {
		t.Fatalf("HandleRequest error: %v", err)
	}
	if !resp.IsError() || resp.Error.Code != CodeInternalError {
		t.Fatalf("error = %+v, want internal error", resp.Error)
	}
}

func TestToolRegistry(t *testing.T) {
	t.Parallel()

	reg := NewToolRegistry()

	if err := reg.RegisterTool("", &stubTool{name: "x"}); err == nil {
		t.Error("RegisterTool with empty name expected error")
	}
	if err := reg.RegisterTool("x", nil); err == nil {
		t.Error("RegisterTool with nil tool expected error")
	}

	if err := reg.RegisterTool("x", &stubTool{name: "x"}); err != nil {
		t.Fatalf("RegisterTool error: %v", err)
	}
	if err := reg.RegisterTool("x", &stubTool{name: "x"}); !errors.Is(err, ErrToolAlreadyRegistered) {
		t.Errorf("duplicate RegisterTool error = %v, want ErrToolAlreadyRegistered", err)
	}

	if _, err := reg.GetTool("x"); err != nil {
		t.Errorf("GetTool error: %v", err)
	}
	if _, err := reg.GetTool("missing"); !errors.Is(err, ErrToolNotFound) {
		t.Errorf("GetTool missing error = %v, want ErrToolNotFound", err)
	}
}

func TestToolRegistryOrderStable(t *testing.T) {
	t.Parallel()

	reg := NewToolRegistry()
	var want []string
	for i := 0; i < 10; i++ {
		name := fmt.Sprintf("tool_%d", i)
		want = append(want, name)
		if err := reg.RegisterTool(name, &stubTool{name: name}); err != nil {
			t.Fatalf("RegisterTool error: %v", err)
		}
	}

	defs := reg.ListTools()
	for i, def := range defs {
		if def.Name != want[i] {
			t.Errorf("ListTools()[%d] = %q, want %q", i, def.Name, want[i])
		}
	}
}

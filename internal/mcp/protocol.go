package mcp

// InitializeParams contains parameters for the initialize method.
type InitializeParams struct {
	// ProtocolVersion is the MCP protocol version the client supports.
	ProtocolVersion string `json:"protocolVersion"`

	// ClientInfo contains metadata about the client.
	ClientInfo ClientInfo `json:"clientInfo"`

	// Capabilities describes what the client supports.
	Capabilities ClientCapabilities `json:"capabilities,omitempty"`
}

// ClientInfo contains metadata about the MCP client.
type ClientInfo struct {
	// Name is the client name.
	Name string `json:"name"`

	// Version is the client version.
	Version string `json:"version"`
}

// ClientCapabilities describes what the client supports.
type ClientCapabilities struct {
	// Roots indicates if the client supports workspace roots.
	Roots *RootsCapability `json:"roots,omitempty"`

	// Sampling indicates if the client supports sampling.
	Sampling *SamplingCapability `json:"sampling,omitempty"`
}

// RootsCapability indicates roots support.
type RootsCapability struct {
	ListChanged bool `json:"listChanged,omitempty"`
}

// SamplingCapability indicates sampling support.
type SamplingCapability struct{}

// InitializeResult is the result of the initialize method.
type InitializeResult struct {
	// ProtocolVersion is the MCP protocol version the server supports.
	ProtocolVersion string `json:"protocolVersion"`

	// Capabilities describes what the server supports.
	Capabilities Capabilities `json:"capabilities"`

	// ServerInfo contains metadata about the server.
	ServerInfo ServerInfoResponse `json:"serverInfo"`
}

// ServerInfoResponse contains metadata about the MCP server.
type ServerInfoResponse struct {
	// Name is the server name.
	Name string `json:"name"`

	// Version is the server version.
	Version string `json:"version"`
}

// Capabilities describes what the MCP server supports. Only tools are
// offered; the empty object is still serialized so clients see the
// capability advertised.
type Capabilities struct {
	// Tools indicates the server supports tools.
	Tools ToolsCapability `json:"tools"`
}

// ToolsCapability indicates tools support.
type ToolsCapability struct {
	ListChanged bool `json:"listChanged,omitempty"`
}

// ToolsListResult is the result of the tools/list method.
type ToolsListResult struct {
	// Tools is the list of available tools.
	Tools []ToolDefinition `json:"tools"`
}

// ToolsCallParams contains parameters for the tools/call method.
type ToolsCallParams struct {
	// Name is the tool name to call.
	Name string `json:"name"`

	// Arguments contains the tool-specific arguments.
	Arguments map[string]any `json:"arguments,omitempty"`
}

// ToolsCallResult is the result of the tools/call method.
type ToolsCallResult struct {
	// Content contains the tool execution results.
	Content []Content `json:"content"`
}

// Content represents a piece of content in a tool result.
type Content struct {
	// Type is the content type; tools here only emit "text".
	Type string `json:"type"`

	// Text contains text content.
	Text string `json:"text"`
}

// TextResult wraps tool output text in the MCP content envelope.
func TextResult(text string) ToolsCallResult {
	return ToolsCallResult{
		Content: []Content{{Type: "text", Text: text}},
	}
}

// Package tools implements the seven read-only MCP tools exposing the
// jcg-gamza educational content API: subject and file catalogs, theory
// and exam-registration document reads, keyword search, and keyword
// table pattern extraction. Tool output is Korean Markdown; upstream
// failures are rendered into the output text rather than returned as
// errors.
package tools

import (
	"fmt"
	"strings"

	"github.com/edugamja/gamja-mcp/internal/content"
	"github.com/edugamja/gamja-mcp/internal/mcp"
)

// Register registers all tools on the registry in catalog order.
func Register(registry mcp.ToolRegistry, client *content.Client) error {
	all := []mcp.Tool{
		&ListSubjects{client: client},
		&ListTheoryFiles{client: client},
		&ReadTheory{client: client},
		&SearchContent{client: client},
		&ExtractPatterns{client: client},
		&ListExamRegistrationFiles{client: client},
		&ReadExamRegistration{client: client},
	}
	for _, tool := range all {
		if err := registry.RegisterTool(tool.Definition().Name, tool); err != nil {
			return fmt.Errorf("registering %s: %w", tool.Definition().Name, err)
		}
	}
	return nil
}

// stringArg reads a string argument, treating absent or non-string
// values as empty.
func stringArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

// intArg reads a numeric argument. JSON numbers decode as float64;
// absent, non-numeric, or zero values fall back to def, matching the
// catalog's documented defaults.
func intArg(args map[string]any, key string, def int) int {
	v, ok := args[key].(float64)
	if !ok || v == 0 {
		return def
	}
	return int(v)
}

// intArgAllowZero reads a numeric argument like intArg but honors an
// explicit zero instead of substituting the default.
func intArgAllowZero(args map[string]any, key string, def int) int {
	v, ok := args[key].(float64)
	if !ok {
		return def
	}
	return int(v)
}

// errorText renders an upstream failure the way every tool reports it.
func errorText(reason, fallback string) string {
	if reason == "" {
		reason = fallback
	}
	return "오류: " + reason
}

// titleOr returns the document title, or the fallback for absent or
// null titles.
func titleOr(title *string, fallback string) string {
	if title != nil && *title != "" {
		return *title
	}
	return fallback
}

// fileLine renders one catalog entry: bold filename, title or a
// placeholder, and bracketed tags when present.
func fileLine(filename string, title *string, tags []string) string {
	suffix := ""
	if len(tags) > 0 {
		suffix = " [" + strings.Join(tags, ", ") + "]"
	}
	return fmt.Sprintf("- **%s**: %s%s", filename, titleOr(title, "(제목 없음)"), suffix)
}

// documentText renders a full document: title heading, optional
// blockquoted description, optional tag list, a rule, then the body.
func documentText(filename string, title, description *string, tags []string, body string) string {
	var b strings.Builder
	b.WriteString("# " + titleOr(title, filename))
	if description != nil && *description != "" {
		b.WriteString("\n> " + *description)
	}
	if len(tags) > 0 {
		b.WriteString("\n\n**태그**: " + strings.Join(tags, ", "))
	}
	b.WriteString("\n\n---\n\n")
	b.WriteString(body)
	return b.String()
}

// objectSchema builds a JSON Schema object definition for a tool.
func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

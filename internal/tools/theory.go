package tools

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/edugamja/gamja-mcp/internal/content"
	"github.com/edugamja/gamja-mcp/internal/mcp"
)

// ListTheoryFiles lists the theory documents of one subject.
type ListTheoryFiles struct {
	client *content.Client
}

func (t *ListTheoryFiles) Definition() mcp.ToolDefinition {
	return mcp.ToolDefinition{
		Name:        "list_theory_files",
		Description: "특정 과목의 이론 파일 목록을 조회합니다",
		InputSchema: objectSchema(map[string]any{
			"subject": map[string]any{
				"type":        "string",
				"description": "과목 slug (예: db, network-os, sw-design, sw-dev, security-newtech)",
			},
		}, "subject"),
	}
}

func (t *ListTheoryFiles) Execute(ctx context.Context, args map[string]any) (string, error) {
	subject := stringArg(args, "subject")

	endpoint := "/api/content/theory?subject=" + url.QueryEscape(subject)
	env := content.Get[content.TheoryFileList](ctx, t.client, endpoint)
	if !env.Success || env.Data == nil {
		return errorText(env.Error, "파일 목록을 가져올 수 없습니다"), nil
	}

	lines := make([]string, 0, len(env.Data.Files))
	for _, f := range env.Data.Files {
		lines = append(lines, fileLine(f.Filename, f.Title, f.Tags))
	}

	return fmt.Sprintf("## %s 이론 파일 목록 (%d개)\n\n%s",
		subject, len(env.Data.Files), strings.Join(lines, "\n")), nil
}

// ReadTheory reads one theory document's full MDX content.
type ReadTheory struct {
	client *content.Client
}

func (t *ReadTheory) Definition() mcp.ToolDefinition {
	return mcp.ToolDefinition{
		Name:        "read_theory",
		Description: "특정 이론 파일의 전체 MDX 내용을 조회합니다",
		InputSchema: objectSchema(map[string]any{
			"subject": map[string]any{
				"type":        "string",
				"description": "과목 slug",
			},
			"filename": map[string]any{
				"type":        "string",
				"description": "파일명 (확장자 제외)",
			},
		}, "subject", "filename"),
	}
}

func (t *ReadTheory) Execute(ctx context.Context, args map[string]any) (string, error) {
	subject := stringArg(args, "subject")
	filename := stringArg(args, "filename")

	endpoint := fmt.Sprintf("/api/content/theory?subject=%s&file=%s",
		url.QueryEscape(subject), url.QueryEscape(filename))
	env := content.Get[content.TheoryContent](ctx, t.client, endpoint)
	if !env.Success || env.Data == nil {
		return errorText(env.Error, "파일을 가져올 수 없습니다"), nil
	}

	d := env.Data
	return documentText(filename, d.Title, d.Description, d.Tags, d.Content), nil
}

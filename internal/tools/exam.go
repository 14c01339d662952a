package tools

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/edugamja/gamja-mcp/internal/content"
	"github.com/edugamja/gamja-mcp/internal/mcp"
)

// ListExamRegistrationFiles lists the exam registration documents.
type ListExamRegistrationFiles struct {
	client *content.Client
}

func (t *ListExamRegistrationFiles) Definition() mcp.ToolDefinition {
	return mcp.ToolDefinition{
		Name:        "list_exam_registration_files",
		Description: "시험 응시(접수) 관련 파일 목록을 조회합니다",
		InputSchema: objectSchema(map[string]any{}),
	}
}

func (t *ListExamRegistrationFiles) Execute(ctx context.Context, _ map[string]any) (string, error) {
	env := content.Get[content.ExamRegistrationFileList](ctx, t.client, "/api/content/exam-registration")
	if !env.Success || env.Data == nil {
		return errorText(env.Error, "시험 응시 파일 목록을 가져올 수 없습니다"), nil
	}

	lines := make([]string, 0, len(env.Data.Files))
	for _, f := range env.Data.Files {
		lines = append(lines, fileLine(f.Filename, f.Title, f.Tags))
	}

	return fmt.Sprintf("## 시험 응시 파일 목록 (%d개)\n\n%s",
		len(env.Data.Files), strings.Join(lines, "\n")), nil
}

// ReadExamRegistration reads one exam registration document.
type ReadExamRegistration struct {
	client *content.Client
}

func (t *ReadExamRegistration) Definition() mcp.ToolDefinition {
	return mcp.ToolDefinition{
		Name:        "read_exam_registration",
		Description: "특정 시험 응시(접수) 파일의 전체 MDX 내용을 조회합니다",
		InputSchema: objectSchema(map[string]any{
			"filename": map[string]any{
				"type":        "string",
				"description": "파일명 (확장자 제외)",
			},
		}, "filename"),
	}
}

func (t *ReadExamRegistration) Execute(ctx context.Context, args map[string]any) (string, error) {
	filename := stringArg(args, "filename")

	endpoint := "/api/content/exam-registration?file=" + url.QueryEscape(filename)
	env := content.Get[content.ExamRegistrationContent](ctx, t.client, endpoint)
	if !env.Success || env.Data == nil {
		return errorText(env.Error, "파일을 가져올 수 없습니다"), nil
	}

	d := env.Data
	return documentText(filename, d.Title, d.Description, d.Tags, d.Content), nil
}

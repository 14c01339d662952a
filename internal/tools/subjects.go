package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/edugamja/gamja-mcp/internal/content"
	"github.com/edugamja/gamja-mcp/internal/mcp"
)

// ListSubjects lists the theory subject catalog.
type ListSubjects struct {
	client *content.Client
}

func (t *ListSubjects) Definition() mcp.ToolDefinition {
	return mcp.ToolDefinition{
		Name:        "list_subjects",
		Description: "jcg-gamza의 이론 과목 목록을 조회합니다",
		InputSchema: objectSchema(map[string]any{}),
	}
}

func (t *ListSubjects) Execute(ctx context.Context, _ map[string]any) (string, error) {
	env := content.Get[[]content.Subject](ctx, t.client, "/api/content/subjects")
	if !env.Success || env.Data == nil {
		return errorText(env.Error, "과목 목록을 가져올 수 없습니다"), nil
	}

	lines := make([]string, 0, len(*env.Data))
	for _, s := range *env.Data {
		lines = append(lines, fmt.Sprintf("- %s (%s): %d개 파일", s.Name, s.Slug, s.FileCount))
	}

	return "## jcg-gamza 과목 목록\n\n" + strings.Join(lines, "\n"), nil
}

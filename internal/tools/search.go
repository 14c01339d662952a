package tools

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/edugamja/gamja-mcp/internal/content"
	"github.com/edugamja/gamja-mcp/internal/mcp"
)

const defaultSearchLimit = 10

// SearchContent searches the content corpus for a keyword.
type SearchContent struct {
	client *content.Client
}

func (t *SearchContent) Definition() mcp.ToolDefinition {
	return mcp.ToolDefinition{
		Name:        "search_content",
		Description: "jcg-gamza 콘텐츠에서 키워드를 검색합니다",
		InputSchema: objectSchema(map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "검색 키워드 (2글자 이상)",
			},
			"subject": map[string]any{
				"type":        "string",
				"description": "특정 과목으로 제한 (선택사항)",
			},
			"limit": map[string]any{
				"type":        "number",
				"description": "결과 개수 제한 (기본값: 10)",
			},
		}, "query"),
	}
}

func (t *SearchContent) Execute(ctx context.Context, args map[string]any) (string, error) {
	query := stringArg(args, "query")
	subject := stringArg(args, "subject")
	limit := intArg(args, "limit", defaultSearchLimit)

	if utf8.RuneCountInString(query) < 2 {
		return "오류: 검색어는 2글자 이상이어야 합니다", nil
	}

	endpoint := fmt.Sprintf("/api/content/search?q=%s&limit=%d", url.QueryEscape(query), limit)
	if subject != "" {
		endpoint += "&subject=" + url.QueryEscape(subject)
	}

	env := content.Get[content.SearchResponse](ctx, t.client, endpoint)
	if !env.Success || env.Data == nil {
		return errorText(env.Error, "검색에 실패했습니다"), nil
	}

	if len(env.Data.Results) == 0 {
		return fmt.Sprintf(`"%s"에 대한 검색 결과가 없습니다.`, query), nil
	}

	blocks := make([]string, 0, len(env.Data.Results))
	for i, r := range env.Data.Results {
		preview := strings.ReplaceAll(r.MatchedContent, "\n", "\n  ")
		blocks = append(blocks, strings.Join([]string{
			fmt.Sprintf("### %d. %s", i+1, titleOr(r.Title, r.Filename)),
			fmt.Sprintf("- **위치**: %s/%s", r.Subject, r.Filename),
			fmt.Sprintf("- **매칭 횟수**: %d회", r.MatchCount),
			"- **내용 미리보기**:\n  " + preview,
		}, "\n"))
	}

	return fmt.Sprintf("## \"%s\" 검색 결과 (총 %d개 중 %d개 표시)\n\n%s",
		query, env.Data.TotalResults, len(env.Data.Results), strings.Join(blocks, "\n\n")), nil
}

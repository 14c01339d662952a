package tools

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/edugamja/gamja-mcp/internal/content"
	"github.com/edugamja/gamja-mcp/internal/mcp"
)

const defaultPatternLimit = 3

// defaultSubjects is the subject walk order when no subject is given.
var defaultSubjects = []string{"db", "network-os", "sw-design", "sw-dev", "security-newtech"}

// ExtractPatterns samples keyword table regions out of theory MDX
// files. It is a best-effort heuristic for agent development, not a
// Markdown table parser.
type ExtractPatterns struct {
	client *content.Client
}

func (t *ExtractPatterns) Definition() mcp.ToolDefinition {
	return mcp.ToolDefinition{
		Name:        "extract_patterns",
		Description: "이론 MDX 파일에서 키워드 표 패턴을 추출합니다 (에이전트 개발용)",
		InputSchema: objectSchema(map[string]any{
			"subject": map[string]any{
				"type":        "string",
				"description": "특정 과목으로 제한 (선택사항)",
			},
			"limit": map[string]any{
				"type":        "number",
				"description": "샘플 파일 수 (기본값: 3)",
			},
		}),
	}
}

func (t *ExtractPatterns) Execute(ctx context.Context, args map[string]any) (string, error) {
	subject := stringArg(args, "subject")
	limit := intArgAllowZero(args, "limit", defaultPatternLimit)

	subjects := defaultSubjects
	if subject != "" {
		subjects = []string{subject}
	}

	var patterns []string
	for _, subj := range subjects {
		if len(patterns) >= limit {
			break
		}

		listEnv := content.Get[content.TheoryFileList](ctx, t.client,
			"/api/content/theory?subject="+url.QueryEscape(subj))
		if !listEnv.Success || listEnv.Data == nil {
			continue
		}

		files := listEnv.Data.Files
		if remaining := limit - len(patterns); len(files) > remaining {
			files = files[:remaining]
		}

		for _, file := range files {
			endpoint := fmt.Sprintf("/api/content/theory?subject=%s&file=%s",
				url.QueryEscape(subj), url.QueryEscape(file.Filename))
			contentEnv := content.Get[content.TheoryContent](ctx, t.client, endpoint)
			if !contentEnv.Success || contentEnv.Data == nil {
				continue
			}

			if table, ok := extractTableRegion(contentEnv.Data.Content); ok {
				patterns = append(patterns,
					fmt.Sprintf("### %s/%s\n```markdown\n%s\n```", subj, file.Filename, table))
			}
		}
	}

	if len(patterns) == 0 {
		return "키워드 표 패턴을 찾을 수 없습니다.", nil
	}

	return fmt.Sprintf("## 키워드 표 패턴 샘플 (%d개)\n\n%s",
		len(patterns), strings.Join(patterns, "\n\n")), nil
}

// extractTableRegion finds the first pipe-delimited region: it starts
// at the first "|" that has another "|" at least two bytes later on
// the same line, and runs to the first blank line after it. A region
// with no terminating blank line does not match. The heuristic may
// capture prose between the table and the blank line; callers accept
// that.
func extractTableRegion(text string) (string, bool) {
	start := -1
	for lineStart := 0; lineStart < len(text); {
		lineEnd := strings.IndexByte(text[lineStart:], '\n')
		if lineEnd < 0 {
			lineEnd = len(text)
		} else {
			lineEnd += lineStart
		}

		line := text[lineStart:lineEnd]
		if first := strings.IndexByte(line, '|'); first >= 0 && first+2 <= len(line) {
			if strings.IndexByte(line[first+2:], '|') >= 0 {
				start = lineStart + first
				break
			}
		}
		lineStart = lineEnd + 1
	}
	if start < 0 {
		return "", false
	}

	end := strings.Index(text[start:], "\n\n")
	if end < 0 {
		return "", false
	}

	return strings.TrimSpace(text[start : start+end+2]), true
}

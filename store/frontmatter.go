package store

import (
	"errors"
	"strings"
)

const frontmatterDelimiter = "---"

// ErrNoFrontmatterEnd is returned when an opening "---" has no closing line.
var ErrNoFrontmatterEnd = errors.New("frontmatter is missing closing delimiter")

// ParseFrontmatter splits a markdown document into its YAML frontmatter and
// body. Content without a leading delimiter is all body.
func ParseFrontmatter(content string) (frontmatter string, body string, err error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(content, frontmatterDelimiter+"\n") {
		return "", content, nil
	}

	rest := content[len(frontmatterDelimiter)+1:]
	var after string
	if strings.HasPrefix(rest, frontmatterDelimiter) {
		after = rest[len(frontmatterDelimiter):]
	} else {
		idx := strings.Index(rest, "\n"+frontmatterDelimiter)
		if idx < 0 {
			return "", "", ErrNoFrontmatterEnd
		}
		frontmatter = rest[:idx]
		after = rest[idx+1+len(frontmatterDelimiter):]
	}

	body = strings.TrimPrefix(after, "\n")
	return strings.TrimSpace(frontmatter), body, nil
}

package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TaskFixture describes the frontmatter fields of a task file.
// Zero values are left out of the file.
type TaskFixture struct {
	Title        string
	Section      string
	Amount       string // written verbatim so tests can use "1200" or "12.50"
	Priority     string
	Completed    bool
	Due          string
	EmailSubject string
	EmailSender  string
	Description  string
}

// CreateTestTask creates a markdown task file with YAML frontmatter
func CreateTestTask(dir, id string, fx TaskFixture) error {
	// Task files are lowercase (e.g., rent.md)
	filename := strings.ToLower(id) + ".md"

	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %q\n", fx.Title)
	writeField(&b, "section", fx.Section)
	writeField(&b, "amount", fx.Amount)
	writeField(&b, "priority", fx.Priority)
	if fx.Completed {
		b.WriteString("completed: true\n")
	}
	writeField(&b, "due", fx.Due)
	if fx.EmailSubject != "" {
		fmt.Fprintf(&b, "email_subject: %q\n", fx.EmailSubject)
	}
	if fx.EmailSender != "" {
		fmt.Fprintf(&b, "email_sender: %q\n", fx.EmailSender)
	}
	b.WriteString("---\n")
	b.WriteString(fx.Description)
	b.WriteString("\n")

	return os.WriteFile(filepath.Join(dir, filename), []byte(b.String()), 0644)
}

func writeField(b *strings.Builder, key, value string) {
	if value != "" {
		fmt.Fprintf(b, "%s: %s\n", key, value)
	}
}

// WriteSections writes sections.yaml with the given id -> title pairs, in order.
func WriteSections(dir string, pairs ...[2]string) error {
	var b strings.Builder
	b.WriteString("sections:\n")
	for _, p := range pairs {
		fmt.Fprintf(&b, "  - id: %s\n    title: %q\n", p[0], p[1])
	}
	return os.WriteFile(filepath.Join(dir, "sections.yaml"), []byte(b.String()), 0644)
}

package render

import (
	"fmt"
	"strings"

	"github.com/derhamderham/diligence/task"
)

const dueLayout = "2006-01-02"

// ResultsMarkdown formats search results as a markdown table preceded by a
// heading with the query and match count.
func ResultsMarkdown(query string, results []task.SearchResult, sections []task.Section) string {
	var b strings.Builder

	if strings.TrimSpace(query) == "" {
		b.WriteString("## All tasks\n\n")
	} else {
		fmt.Fprintf(&b, "## Results for `%s`\n\n", strings.ReplaceAll(query, "`", "'"))
	}

	if len(results) == 0 {
		b.WriteString("_No matching tasks._\n")
		return b.String()
	}

	b.WriteString("| ID | Title | Section | Amount | Priority | Due | Status |\n")
	b.WriteString("|----|-------|---------|-------:|----------|-----|--------|\n")
	for _, r := range results {
		t := r.Task
		if t == nil {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			cell(t.ID),
			cell(t.Title),
			cell(sectionTitle(t, sections)),
			amountCell(t),
			priorityCell(t.Priority),
			dueCell(t),
			statusCell(t),
		)
	}

	noun := "tasks"
	if len(results) == 1 {
		noun = "task"
	}
	fmt.Fprintf(&b, "\n%d %s\n", len(results), noun)
	return b.String()
}

// cell keeps a value on one table row
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

func sectionTitle(t *task.Task, sections []task.Section) string {
	if s, ok := task.FindSection(sections, t.SectionID); ok {
		return s.Title
	}
	return ""
}

func amountCell(t *task.Task) string {
	if !t.HasAmount() {
		return ""
	}
	return fmt.Sprintf("$%.2f", *t.Amount)
}

func priorityCell(p task.Priority) string {
	if p == task.PriorityNone {
		return ""
	}
	return task.PriorityEmoji(p) + " " + task.PriorityLabel(p)
}

func dueCell(t *task.Task) string {
	if !t.HasDueDate() {
		return ""
	}
	return t.DueDate.Format(dueLayout)
}

func statusCell(t *task.Task) string {
	if t.Completed {
		return "completed"
	}
	return "todo"
}

// RenderResults renders search results through r.
func RenderResults(r MarkdownRenderer, query string, results []task.SearchResult, sections []task.Section) (string, error) {
	return r.Render(ResultsMarkdown(query, results, sections))
}

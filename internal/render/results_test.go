package render

import (
	"strings"
	"testing"
	"time"

	"github.com/derhamderham/diligence/task"
)

func sampleResults() ([]task.SearchResult, []task.Section) {
	rent := 1200.0
	due := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	sections := []task.Section{{ID: "fin", Title: "Finance"}}
	results := []task.SearchResult{
		{Task: &task.Task{ID: "T1", Title: "Pay rent", Amount: &rent, Priority: task.PriorityHigh, DueDate: &due, SectionID: "fin"}, Score: 1},
		{Task: &task.Task{ID: "T2", Title: "Fix a|b\nsplit", Completed: true}, Score: 1},
	}
	return results, sections
}

func TestResultsMarkdown(t *testing.T) {
	results, sections := sampleResults()
	md := ResultsMarkdown("rent OR fix", results, sections)

	wantLines := []string{
		"## Results for `rent OR fix`",
		"| T1 | Pay rent | Finance | $1200.00 | " + task.PriorityEmoji(task.PriorityHigh) + " High | 2026-05-01 | todo |",
		`| T2 | Fix a\|b split |  |  |  |  | completed |`,
		"2 tasks",
	}
	for _, want := range wantLines {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q\n%s", want, md)
		}
	}
}

func TestResultsMarkdownEmpty(t *testing.T) {
	md := ResultsMarkdown("", nil, nil)
	if !strings.Contains(md, "## All tasks") || !strings.Contains(md, "No matching tasks") {
		t.Errorf("unexpected markdown for empty results:\n%s", md)
	}
}

func TestRenderResultsWithGlamour(t *testing.T) {
	r, err := NewGlamourRenderer("notty", 120)
	if err != nil {
		t.Fatalf("NewGlamourRenderer: %v", err)
	}
	results, sections := sampleResults()

	out, err := RenderResults(r, "rent", results, sections)
	if err != nil {
		t.Fatalf("RenderResults: %v", err)
	}
	for _, want := range []string{"Pay rent", "Finance", "2026-05-01"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q\n%s", want, out)
		}
	}
}

func TestFallbackRenderer(t *testing.T) {
	out, err := FallbackRenderer{}.Render("# plain")
	if err != nil || out != "# plain" {
		t.Errorf("FallbackRenderer.Render = %q, %v", out, err)
	}
}

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/derhamderham/diligence/task"
)

func amountPtr(v float64) *float64 { return &v }

func newTestStore(t *testing.T) *InMemoryStore {
	t.Helper()
	s := NewInMemoryStore()
	s.SetSections([]task.Section{{ID: "fin", Title: "Finance"}})

	for _, tk := range []*task.Task{
		{ID: "t1", Title: "Pay rent", Amount: amountPtr(1200), SectionID: "fin", Priority: task.PriorityHigh},
		{ID: "t2", Title: "Buy milk"},
		{ID: "t3", Title: "File taxes", Completed: true, SectionID: "fin"},
	} {
		if err := s.CreateTask(tk); err != nil {
			t.Fatalf("CreateTask(%s): %v", tk.ID, err)
		}
	}
	return s
}

func resultIDs(results []task.SearchResult) []string {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.Task.ID
	}
	return ids
}

func TestInMemoryStoreSearch(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"T1", "T2", "T3"}},
		{"amount:>1000", []string{"T1"}},
		{"section:finance", []string{"T1", "T3"}},
		{"rent OR milk", []string{"T1", "T2"}},
		{"status:completed", []string{"T3"}},
		{"-rent section:none", []string{"T2"}},
		{"nothing-matches-this", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := resultIDs(s.Search(tt.query, nil))
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("Search(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestInMemoryStoreSearchFilterFunc(t *testing.T) {
	s := newTestStore(t)

	open := func(tk *task.Task) bool { return !tk.Completed }
	got := resultIDs(s.Search("section:finance", open))
	if len(got) != 1 || got[0] != "T1" {
		t.Errorf("Search with filterFunc = %v, want [T1]", got)
	}

	for _, r := range s.Search("", nil) {
		if r.Score != 1.0 {
			t.Errorf("result %s score = %v, want 1.0", r.Task.ID, r.Score)
		}
	}
}

func TestInMemoryStoreCreateTask(t *testing.T) {
	s := NewInMemoryStore()

	tk := &task.Task{Title: "No id yet"}
	if err := s.CreateTask(tk); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if !strings.HasPrefix(tk.ID, "TASK-") || len(tk.ID) != len("TASK-")+6 {
		t.Errorf("generated ID = %q", tk.ID)
	}
	if tk.CreatedAt.IsZero() || tk.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
	if s.GetTask(strings.ToLower(tk.ID)) != tk {
		t.Error("GetTask should be case insensitive")
	}

	if err := s.CreateTask(&task.Task{ID: tk.ID, Title: "dup"}); err == nil {
		t.Error("expected duplicate ID to fail")
	}
	if err := s.CreateTask(&task.Task{Title: " "}); err == nil {
		t.Error("expected invalid task to fail")
	}
}

func TestInMemoryStoreUpdateDelete(t *testing.T) {
	s := newTestStore(t)

	calls := 0
	id := s.AddListener(func() { calls++ })

	updated := &task.Task{ID: "t2", Title: "Buy oat milk", DueDate: func() *time.Time { d := time.Now(); return &d }()}
	if err := s.UpdateTask(updated); err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if got := s.GetTask("T2").Title; got != "Buy oat milk" {
		t.Errorf("title after update = %q", got)
	}
	if err := s.UpdateTask(&task.Task{ID: "missing", Title: "x"}); err == nil {
		t.Error("expected update of unknown task to fail")
	}

	s.DeleteTask("t2")
	if s.GetTask("t2") != nil {
		t.Error("task should be deleted")
	}
	if calls != 2 {
		t.Errorf("listener calls = %d, want 2", calls)
	}

	s.RemoveListener(id)
	_ = s.Reload()
	if calls != 2 {
		t.Errorf("removed listener was called")
	}
}

func TestInMemoryStoreSectionsAreCopied(t *testing.T) {
	s := newTestStore(t)
	sections := s.GetSections()
	sections[0].Title = "Changed"
	if s.GetSections()[0].Title != "Finance" {
		t.Error("GetSections should return a copy")
	}
}

func TestSearchTasks(t *testing.T) {
	now := time.Date(2026, time.May, 4, 12, 0, 0, 0, time.UTC)
	today := now.Add(2 * time.Hour)
	tasks := []*task.Task{
		{ID: "A", Title: "Rent", DueDate: &today},
		{ID: "B", Title: "Milk"},
	}

	got := resultIDs(SearchTasks(tasks, nil, "due:today", nil, now))
	if len(got) != 1 || got[0] != "A" {
		t.Errorf("SearchTasks(due:today) = %v", got)
	}

	if got := SearchTasks(nil, nil, "rent", nil, now); len(got) != 0 {
		t.Errorf("expected no results for empty task list, got %v", got)
	}
}

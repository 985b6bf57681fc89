package taskstore

import (
	"log/slog"
	"time"

	"github.com/derhamderham/diligence/store"
	taskpkg "github.com/derhamderham/diligence/task"
)

// GetAllTasks returns all tasks in display order
func (s *TaskStore) GetAllTasks() []*taskpkg.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]*taskpkg.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		tasks = append(tasks, t)
	}
	taskpkg.SortTasks(tasks)
	return tasks
}

// Search filters tasks with a search box query.
// query: raw query string (empty = all tasks)
// filterFunc: filter function to pre-filter tasks (nil = all tasks)
func (s *TaskStore) Search(query string, filterFunc func(*taskpkg.Task) bool) []taskpkg.SearchResult {
	q := s.queries.Parse(query)
	slog.Debug("searching tasks", "query", query, "parsed", q.String())

	s.mu.RLock()
	tasks := make([]*taskpkg.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		tasks = append(tasks, t)
	}
	sections := s.sections
	s.mu.RUnlock()

	return store.SearchParsed(tasks, sections, q, filterFunc, time.Now())
}

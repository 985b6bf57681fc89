package store

import (
	"time"

	"github.com/derhamderham/diligence/search"
	"github.com/derhamderham/diligence/task"
)

// SearchTasks is the filtering pass shared by store implementations: the
// query is parsed once and evaluated against every candidate task.
// Results are returned in task.SortTasks order.
func SearchTasks(tasks []*task.Task, sections []task.Section, query string, filterFunc func(*task.Task) bool, now time.Time) []task.SearchResult {
	q := search.ParseQuery(query)
	return SearchParsed(tasks, sections, q, filterFunc, now)
}

// SearchParsed is SearchTasks for a query that was already parsed.
func SearchParsed(tasks []*task.Task, sections []task.Section, q search.Query, filterFunc func(*task.Task) bool, now time.Time) []task.SearchResult {
	var matched []*task.Task
	for _, t := range tasks {
		if filterFunc != nil && !filterFunc(t) {
			continue
		}
		if search.MatchesAt(t, q, sections, now) {
			matched = append(matched, t)
		}
	}

	task.SortTasks(matched)
	results := make([]task.SearchResult, len(matched))
	for i, t := range matched {
		results[i] = task.SearchResult{Task: t, Score: 1.0}
	}
	return results
}

package store

import (
	"github.com/derhamderham/diligence/task"
)

// Store is the interface for task storage engines.
// Implementations must be thread-safe and notify listeners on changes.
// Tasks and sections handed out are snapshots the caller must not mutate.
type Store interface {
	// AddListener registers a callback for change notifications.
	// returns a listener ID that can be used to remove the listener.
	AddListener(listener ChangeListener) int

	// RemoveListener removes a previously registered listener by ID
	RemoveListener(id int)

	// GetTask retrieves a task by ID
	GetTask(id string) *task.Task

	// GetAllTasks returns all tasks
	GetAllTasks() []*task.Task

	// GetSections returns all sections used to resolve task section IDs
	GetSections() []task.Section

	// Search filters tasks with a search box query.
	// query: raw query string in the search grammar (empty = all tasks)
	// filterFunc: optional filter function to pre-filter tasks (nil = all tasks)
	// Returns matching tasks in display order.
	Search(query string, filterFunc func(*task.Task) bool) []task.SearchResult

	// Reload reloads all data from the backing store
	Reload() error
}

// ChangeListener is called when the store's data changes
type ChangeListener func()

package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/derhamderham/diligence/config"
	"github.com/derhamderham/diligence/search"
	"github.com/derhamderham/diligence/task"
)

// InMemoryStore is an in-memory task repository.
// Useful for testing and as a reference implementation.
type InMemoryStore struct {
	mu             sync.RWMutex
	tasks          map[string]*task.Task
	sections       []task.Section
	listeners      map[int]ChangeListener
	nextListenerID int
	queries        search.Cache
}

func normalizeTaskID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// NewInMemoryStore creates a new in-memory task store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		tasks:          make(map[string]*task.Task),
		listeners:      make(map[int]ChangeListener),
		nextListenerID: 1, // Start at 1 to avoid conflict with zero-value sentinel
	}
}

// AddListener registers a callback for change notifications.
// returns a listener ID that can be used to remove the listener.
func (s *InMemoryStore) AddListener(listener ChangeListener) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = listener
	return id
}

// RemoveListener removes a previously registered listener by ID
func (s *InMemoryStore) RemoveListener(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listeners, id)
}

// notifyListeners calls all registered listeners
func (s *InMemoryStore) notifyListeners() {
	s.mu.RLock()
	listeners := make([]ChangeListener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.RUnlock()

	for _, l := range listeners {
		l()
	}
}

// CreateTask adds a new task to the store. A task without an ID gets a
// random one.
func (s *InMemoryStore) CreateTask(t *task.Task) error {
	if err := task.ValidateTask(t); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}

	s.mu.Lock()
	if strings.TrimSpace(t.ID) == "" {
		t.ID = "TASK-" + config.GenerateRandomID()
	}
	t.ID = normalizeTaskID(t.ID)
	if _, exists := s.tasks[t.ID]; exists {
		s.mu.Unlock()
		return fmt.Errorf("task already exists: %s", t.ID)
	}

	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	s.tasks[t.ID] = t
	s.mu.Unlock()
	s.notifyListeners()
	return nil
}

// GetTask retrieves a task by ID
func (s *InMemoryStore) GetTask(id string) *task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tasks[normalizeTaskID(id)]
}

// UpdateTask updates an existing task
func (s *InMemoryStore) UpdateTask(t *task.Task) error {
	if err := task.ValidateTask(t); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}

	s.mu.Lock()
	t.ID = normalizeTaskID(t.ID)
	if _, exists := s.tasks[t.ID]; !exists {
		s.mu.Unlock()
		return fmt.Errorf("task not found: %s", t.ID)
	}

	t.UpdatedAt = time.Now()
	s.tasks[t.ID] = t
	s.mu.Unlock()
	s.notifyListeners()
	return nil
}

// DeleteTask removes a task from the store
func (s *InMemoryStore) DeleteTask(id string) {
	s.mu.Lock()
	delete(s.tasks, normalizeTaskID(id))
	s.mu.Unlock()
	s.notifyListeners()
}

// SetSections replaces the section list
func (s *InMemoryStore) SetSections(sections []task.Section) {
	s.mu.Lock()
	s.sections = append([]task.Section(nil), sections...)
	s.mu.Unlock()
	s.notifyListeners()
}

// GetSections returns a copy of the section list
func (s *InMemoryStore) GetSections() []task.Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]task.Section(nil), s.sections...)
}

// GetAllTasks returns all tasks in display order
func (s *InMemoryStore) GetAllTasks() []*task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]*task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		tasks = append(tasks, t)
	}
	task.SortTasks(tasks)
	return tasks
}

// Search filters tasks with a search box query.
// Repeated calls with the same query string reuse the previous parse.
func (s *InMemoryStore) Search(query string, filterFunc func(*task.Task) bool) []task.SearchResult {
	q := s.queries.Parse(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]*task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		tasks = append(tasks, t)
	}
	return SearchParsed(tasks, s.sections, q, filterFunc, time.Now())
}

// Reload is a no-op for in-memory store (no disk backing)
func (s *InMemoryStore) Reload() error {
	s.notifyListeners()
	return nil
}

// ensure InMemoryStore implements Store
var _ Store = (*InMemoryStore)(nil)

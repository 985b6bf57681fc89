package taskstore

// TaskStore is a read-only Store backed by a directory of markdown task files.

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/derhamderham/diligence/search"
	"github.com/derhamderham/diligence/store"
	taskpkg "github.com/derhamderham/diligence/task"
)

// ErrTaskNotFound indicates no task file exists for an ID
var ErrTaskNotFound = errors.New("task not found")

// sectionsFilename lives next to the task files and lists section titles
const sectionsFilename = "sections.yaml"

func normalizeTaskID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// TaskStore loads tasks from markdown files with YAML frontmatter.
// Each task is a separate .md file in the configured directory; the file
// name is the task ID and the body is the description.
type TaskStore struct {
	mu             sync.RWMutex
	dir            string // directory containing task files
	tasks          map[string]*taskpkg.Task
	sections       []taskpkg.Section
	listeners      map[int]store.ChangeListener
	nextListenerID int
	queries        search.Cache
}

// taskFrontmatter represents the YAML frontmatter in task files
type taskFrontmatter struct {
	Title        string                `yaml:"title"`
	Section      string                `yaml:"section,omitempty"`
	Amount       *float64              `yaml:"amount,omitempty"`
	Priority     taskpkg.PriorityValue `yaml:"priority,omitempty"`
	Completed    bool                  `yaml:"completed,omitempty"`
	Due          taskpkg.DueValue      `yaml:"due,omitempty"`
	EmailSubject string                `yaml:"email_subject,omitempty"`
	EmailSender  string                `yaml:"email_sender,omitempty"`
}

// sectionsFile represents sections.yaml
type sectionsFile struct {
	Sections []struct {
		ID    string `yaml:"id"`
		Title string `yaml:"title"`
	} `yaml:"sections"`
}

// NewTaskStore creates a new TaskStore and loads the directory.
// dir: directory containing task markdown files
func NewTaskStore(dir string) (*TaskStore, error) {
	slog.Debug("creating new TaskStore", "dir", dir)
	s := &TaskStore{
		dir:            dir,
		tasks:          make(map[string]*taskpkg.Task),
		listeners:      make(map[int]store.ChangeListener),
		nextListenerID: 1, // Start at 1 to avoid conflict with zero-value sentinel
	}

	s.mu.Lock()
	if err := s.loadLocked(); err != nil {
		s.mu.Unlock()
		slog.Error("failed to load tasks during store initialization", "dir", dir, "error", err)
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	s.mu.Unlock()

	slog.Info("taskStore initialized", "dir", dir, "num_tasks", len(s.tasks), "num_sections", len(s.sections))
	return s, nil
}

// Dir returns the directory the store reads from
func (s *TaskStore) Dir() string {
	return s.dir
}

// AddListener registers a callback for change notifications.
// returns a listener ID that can be used to remove the listener.
func (s *TaskStore) AddListener(listener store.ChangeListener) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = listener
	return id
}

// RemoveListener removes a previously registered listener by ID
func (s *TaskStore) RemoveListener(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listeners, id)
}

func (s *TaskStore) notifyListeners() {
	s.mu.RLock()
	listeners := make([]store.ChangeListener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.RUnlock()

	for _, l := range listeners {
		l()
	}
}

// GetTask retrieves a task by ID
func (s *TaskStore) GetTask(id string) *taskpkg.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tasks[normalizeTaskID(id)]
}

// GetSections returns a copy of the loaded sections
func (s *TaskStore) GetSections() []taskpkg.Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]taskpkg.Section(nil), s.sections...)
}

// ensure TaskStore implements Store
var _ store.Store = (*TaskStore)(nil)

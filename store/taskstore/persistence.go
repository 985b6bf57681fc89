package taskstore

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/derhamderham/diligence/store"
	taskpkg "github.com/derhamderham/diligence/task"

	"gopkg.in/yaml.v3"
)

// loadLocked reads sections and all task files from the directory.
// Caller must hold s.mu lock.
func (s *TaskStore) loadLocked() error {
	slog.Debug("loading tasks from directory", "dir", s.dir)

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("task directory does not exist, starting empty", "dir", s.dir)
			return nil
		}
		slog.Error("failed to read task directory", "dir", s.dir, "error", err)
		return fmt.Errorf("reading directory: %w", err)
	}

	sections, err := loadSections(filepath.Join(s.dir, sectionsFilename))
	if err != nil {
		// a broken sections file only costs section names
		slog.Warn("failed to load sections", "dir", s.dir, "error", err)
	}
	s.sections = sections

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		filePath := filepath.Join(s.dir, entry.Name())
		task, err := loadTaskFile(filePath)
		if err != nil {
			slog.Error("failed to load task file", "file", filePath, "error", err)
			// log error but continue loading other files
			continue
		}

		s.tasks[task.ID] = task
		slog.Debug("loaded task", "task_id", task.ID, "file", filePath)
	}
	slog.Info("finished loading tasks", "num_tasks", len(s.tasks))
	return nil
}

// loadSections reads sections.yaml. A missing file means no sections.
func loadSections(path string) ([]taskpkg.Section, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("no sections.yaml found", "path", path)
			return nil, nil
		}
		return nil, fmt.Errorf("reading sections: %w", err)
	}

	var sf sectionsFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing sections: %w", err)
	}

	sections := make([]taskpkg.Section, 0, len(sf.Sections))
	for i, sec := range sf.Sections {
		if strings.TrimSpace(sec.ID) == "" {
			slog.Warn("skipping section with no id", "path", path, "index", i)
			continue
		}
		sections = append(sections, taskpkg.Section{ID: strings.TrimSpace(sec.ID), Title: sec.Title})
	}
	return sections, nil
}

// loadTaskFile parses a single markdown file into a Task
func loadTaskFile(path string) (*taskpkg.Task, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	frontmatter, body, err := store.ParseFrontmatter(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing frontmatter: %w", err)
	}

	var fm taskFrontmatter
	if err := yaml.Unmarshal([]byte(frontmatter), &fm); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}

	// Derive ID from filename: "rent-may.md" -> "RENT-MAY"
	taskID := normalizeTaskID(strings.TrimSuffix(filepath.Base(path), ".md"))

	task := &taskpkg.Task{
		ID:           taskID,
		Title:        fm.Title,
		Description:  strings.TrimSpace(body),
		EmailSubject: fm.EmailSubject,
		EmailSender:  fm.EmailSender,
		Amount:       fm.Amount,
		Priority:     taskpkg.Priority(fm.Priority),
		Completed:    fm.Completed,
		DueDate:      fm.Due.Time(),
		SectionID:    strings.TrimSpace(fm.Section),
		CreatedAt:    info.ModTime(),
		UpdatedAt:    info.ModTime(),
	}

	if err := taskpkg.ValidateTask(task); err != nil {
		return nil, fmt.Errorf("invalid task: %w", err)
	}

	return task, nil
}

// Reload reloads all tasks from disk
func (s *TaskStore) Reload() error {
	slog.Info("reloading tasks from disk")
	start := time.Now()
	s.mu.Lock()
	s.tasks = make(map[string]*taskpkg.Task)
	s.sections = nil

	if err := s.loadLocked(); err != nil {
		s.mu.Unlock()
		slog.Error("error reloading tasks from disk", "error", err)
		return err
	}
	s.mu.Unlock()

	slog.Info("tasks reloaded successfully", "duration", time.Since(start).Round(time.Millisecond))
	s.notifyListeners()
	return nil
}

// ReloadTask reloads a single task from disk by ID
func (s *TaskStore) ReloadTask(taskID string) error {
	normalizedID := normalizeTaskID(taskID)
	slog.Debug("reloading single task", "task_id", normalizedID)

	filePath := filepath.Join(s.dir, strings.ToLower(normalizedID)+".md")
	if _, err := os.Stat(filePath); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, normalizedID)
	}

	task, err := loadTaskFile(filePath)
	if err != nil {
		return fmt.Errorf("loading task file %s: %w", filePath, err)
	}

	s.mu.Lock()
	s.tasks[task.ID] = task
	s.mu.Unlock()

	s.notifyListeners()
	slog.Debug("task reloaded successfully", "task_id", task.ID)
	return nil
}

package task

import "time"

// Task is a single to-do record as supplied by a store.
// Search code treats it as read-only.
type Task struct {
	ID           string
	Title        string
	Description  string
	EmailSubject string // set for tasks created from an email
	EmailSender  string
	Amount       *float64
	Priority     Priority
	Completed    bool
	DueDate      *time.Time
	SectionID    string // empty when the task is not filed under a section
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasAmount reports whether the task carries a numeric amount.
func (t *Task) HasAmount() bool {
	return t.Amount != nil
}

// HasDueDate reports whether the task has a due date.
func (t *Task) HasDueDate() bool {
	return t.DueDate != nil
}

// Section groups tasks under a display title.
type Section struct {
	ID    string
	Title string
}

// FindSection returns the section with the given ID, if any.
func FindSection(sections []Section, id string) (Section, bool) {
	if id == "" {
		return Section{}, false
	}
	for _, s := range sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// SearchResult pairs a task with its match score.
// Matching is boolean, so every returned result scores 1.0.
type SearchResult struct {
	Task  *Task
	Score float64
}

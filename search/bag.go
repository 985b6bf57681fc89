package search

import (
	"fmt"
	"strings"

	"github.com/derhamderham/diligence/task"
)

// Completion synonyms placed in the searchable bag and accepted by status filters.
var (
	completedWords  = [2]string{"completed", "complete"}
	incompleteWords = [2]string{"incomplete", "todo"}
)

func completionWords(completed bool) [2]string {
	if completed {
		return completedWords
	}
	return incompleteWords
}

// searchableBag collects the lowercase strings free-text terms match against.
func searchableBag(t *task.Task, sections []task.Section) []string {
	bag := make([]string, 0, 10)
	add := func(s string) {
		if s != "" {
			bag = append(bag, strings.ToLower(s))
		}
	}

	add(t.Title)
	add(t.Description)
	add(t.EmailSubject)
	add(t.EmailSender)
	if s, ok := task.FindSection(sections, t.SectionID); ok {
		add(s.Title)
	}
	if t.Amount != nil {
		add(fmt.Sprintf("%.2f", *t.Amount))
		add(fmt.Sprintf("$%.2f", *t.Amount))
	}
	add(task.PriorityLabel(t.Priority))
	for _, w := range completionWords(t.Completed) {
		add(w)
	}
	return bag
}

// matchesTerm applies one free-text term to a prepared bag.
func matchesTerm(term Term, bag []string) bool {
	needle := strings.ToLower(term.Text)

	if term.IsWildcard && !term.IsExactPhrase {
		for _, entry := range bag {
			for _, word := range strings.Fields(entry) {
				if strings.HasPrefix(word, needle) {
					return true
				}
			}
		}
		return false
	}

	for _, entry := range bag {
		if strings.Contains(entry, needle) {
			return true
		}
	}
	return false
}

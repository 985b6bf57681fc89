package search

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/derhamderham/diligence/task"
)

// amountEpsilon is the tolerance for amount equality.
const amountEpsilon = 0.01

// Matches reports whether t satisfies q, evaluating relative dates against the current time.
func Matches(t *task.Task, q Query, sections []task.Section) bool {
	return MatchesAt(t, q, sections, time.Now())
}

// MatchesAt reports whether t satisfies q, with now anchoring today/tomorrow/yesterday.
// An empty query matches every task. Free-text terms and field filters must
// both pass.
func MatchesAt(t *task.Task, q Query, sections []task.Section, now time.Time) bool {
	if t == nil {
		return false
	}
	if q.IsEmpty() {
		return true
	}

	if len(q.Terms) > 0 && !evaluateTerms(q.Terms, searchableBag(t, sections)) {
		return false
	}
	for _, f := range q.FieldFilters {
		if !f.Evaluate(t, sections, now) {
			return false
		}
	}
	return true
}

// evaluateTerms folds terms left to right. An OR term opens a group seeded
// with the result so far; the group stays open across further OR terms and
// is ANDed back into the result by the next AND or NOT term, or at the end.
func evaluateTerms(terms []Term, bag []string) bool {
	result := true
	groupOpen := false
	group := false

	closeGroup := func() {
		if groupOpen {
			result = result && group
			groupOpen = false
		}
	}

	for _, term := range terms {
		matched := matchesTerm(term, bag)
		switch term.Operator {
		case OpAnd:
			closeGroup()
			result = result && matched
		case OpOr:
			if !groupOpen {
				group = result
				groupOpen = true
				result = true
			}
			group = group || matched
		case OpNot:
			closeGroup()
			result = result && !matched
		}
	}
	closeGroup()
	return result
}

// Evaluate applies the filter to one task. Values that cannot be
// interpreted for the field make the filter fail.
func (f FieldFilter) Evaluate(t *task.Task, sections []task.Section, now time.Time) bool {
	switch f.Field {
	case FieldTitle:
		return compareText(t.Title, f.Comparison, f.Value)
	case FieldDescription:
		return compareText(t.Description, f.Comparison, f.Value)
	case FieldAmount:
		return f.evaluateAmount(t)
	case FieldSection:
		return f.evaluateSection(t, sections)
	case FieldPriority:
		return compareText(task.PriorityLabel(t.Priority), f.Comparison, f.Value)
	case FieldStatus:
		return f.evaluateStatus(t)
	case FieldDueDate:
		return f.evaluateDueDate(t, now)
	default:
		return false
	}
}

// compareText is an exact case-insensitive match for equals and a substring
// test for every other comparison.
func compareText(actual string, cmp Comparison, want string) bool {
	if cmp == CompareEquals {
		return strings.EqualFold(actual, want)
	}
	return strings.Contains(strings.ToLower(actual), strings.ToLower(want))
}

func (f FieldFilter) evaluateAmount(t *task.Task) bool {
	if t.Amount == nil {
		return false
	}
	raw := strings.TrimPrefix(strings.TrimSpace(f.Value), "$")
	raw = strings.ReplaceAll(raw, ",", "")
	target, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(target) {
		return false
	}

	amount := *t.Amount
	switch f.Comparison {
	case CompareGreater:
		return amount > target
	case CompareLess:
		return amount < target
	case CompareGreaterOrEqual:
		return amount >= target
	case CompareLessOrEqual:
		return amount <= target
	default:
		// equals and contains both mean "this amount"
		return math.Abs(amount-target) < amountEpsilon
	}
}

func (f FieldFilter) evaluateSection(t *task.Task, sections []task.Section) bool {
	s, ok := task.FindSection(sections, t.SectionID)
	if !ok {
		v := strings.ToLower(strings.TrimSpace(f.Value))
		return v == "none" || v == "null"
	}
	return compareText(s.Title, f.Comparison, f.Value)
}

// evaluateStatus ignores the comparison operator.
func (f FieldFilter) evaluateStatus(t *task.Task) bool {
	v := strings.ToLower(strings.TrimSpace(f.Value))
	for _, w := range completionWords(t.Completed) {
		if v == w {
			return true
		}
	}
	return false
}

func (f FieldFilter) evaluateDueDate(t *task.Task, now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	target, ok := resolveDate(f.Value, now)
	if !ok {
		return false
	}

	due := t.DueDate.In(now.Location())
	switch f.Comparison {
	case CompareGreater:
		return due.After(target)
	case CompareLess:
		return due.Before(target)
	case CompareGreaterOrEqual:
		return due.After(target) || sameDay(due, target)
	case CompareLessOrEqual:
		return due.Before(target) || sameDay(due, target)
	default:
		return sameDay(due, target)
	}
}

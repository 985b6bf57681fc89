package search

import (
	"strings"
)

// Operator says how a term combines with the result accumulated so far.
type Operator int

const (
	OpAnd Operator = iota
	OpOr
	OpNot
)

func (o Operator) String() string {
	switch o {
	case OpOr:
		return "OR"
	case OpNot:
		return "NOT"
	default:
		return "AND"
	}
}

// Field identifies the task attribute a FieldFilter constrains.
type Field int

const (
	FieldTitle Field = iota
	FieldDescription
	FieldAmount
	FieldSection
	FieldPriority
	FieldStatus
	FieldDueDate
)

func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldDescription:
		return "description"
	case FieldAmount:
		return "amount"
	case FieldSection:
		return "section"
	case FieldPriority:
		return "priority"
	case FieldStatus:
		return "status"
	case FieldDueDate:
		return "due"
	default:
		return "unknown"
	}
}

// fieldNames maps every accepted field spelling (lowercase) to its Field.
var fieldNames = map[string]Field{
	"title":       FieldTitle,
	"name":        FieldTitle,
	"desc":        FieldDescription,
	"description": FieldDescription,
	"notes":       FieldDescription,
	"amount":      FieldAmount,
	"price":       FieldAmount,
	"cost":        FieldAmount,
	"section":     FieldSection,
	"category":    FieldSection,
	"priority":    FieldPriority,
	"status":      FieldStatus,
	"complete":    FieldStatus,
	"completed":   FieldStatus,
	"due":         FieldDueDate,
	"duedate":     FieldDueDate,
	"date":        FieldDueDate,
}

// LookupField resolves a field name case-insensitively.
func LookupField(name string) (Field, bool) {
	f, ok := fieldNames[strings.ToLower(name)]
	return f, ok
}

// Comparison is the relation a FieldFilter applies between task value and filter value.
type Comparison int

const (
	CompareContains Comparison = iota
	CompareEquals
	CompareGreater
	CompareLess
	CompareGreaterOrEqual
	CompareLessOrEqual
)

func (c Comparison) String() string {
	switch c {
	case CompareEquals:
		return "="
	case CompareGreater:
		return ">"
	case CompareLess:
		return "<"
	case CompareGreaterOrEqual:
		return ">="
	case CompareLessOrEqual:
		return "<="
	default:
		return ""
	}
}

// comparisonPrefixes is ordered so two-character operators win over their
// one-character prefixes.
var comparisonPrefixes = []struct {
	prefix string
	cmp    Comparison
}{
	{">=", CompareGreaterOrEqual},
	{"<=", CompareLessOrEqual},
	{">", CompareGreater},
	{"<", CompareLess},
	{"=", CompareEquals},
}

// Term is a free-text search word or phrase.
type Term struct {
	Text          string
	IsExactPhrase bool
	IsWildcard    bool
	Operator      Operator
}

// FieldFilter constrains a single task attribute. Value stays raw text and
// is interpreted per field at evaluation time.
type FieldFilter struct {
	Field      Field
	Comparison Comparison
	Value      string
}

// Query is the parsed form of a search box string.
// The zero value matches every task.
type Query struct {
	Terms        []Term
	FieldFilters []FieldFilter
}

// IsEmpty reports whether the query has neither terms nor field filters.
func (q Query) IsEmpty() bool {
	return len(q.Terms) == 0 && len(q.FieldFilters) == 0
}

// String renders the query back into grammar form, mostly for logging.
func (q Query) String() string {
	parts := make([]string, 0, len(q.Terms)+len(q.FieldFilters))
	for i, t := range q.Terms {
		var sb strings.Builder
		if t.Operator != OpAnd || i > 0 {
			sb.WriteString(t.Operator.String())
			sb.WriteByte(' ')
		}
		if t.IsExactPhrase {
			sb.WriteByte('"')
			sb.WriteString(t.Text)
			sb.WriteByte('"')
		} else {
			sb.WriteString(t.Text)
			if t.IsWildcard {
				sb.WriteByte('*')
			}
		}
		parts = append(parts, sb.String())
	}
	for _, f := range q.FieldFilters {
		parts = append(parts, f.Field.String()+":"+f.Comparison.String()+f.Value)
	}
	return strings.Join(parts, " ")
}

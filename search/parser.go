package search

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParseQuery converts a raw search box string into a Query.
// It never fails: blank input yields an empty query and malformed input
// (for example an unterminated quote) yields a best-effort partial query.
//
// Example queries:
//   - payroll tax
//   - payroll OR invoice
//   - "payroll tax" -draft
//   - pay* amount:>5000 due:<=2026-01-31
//   - rent NOT section:none
func ParseQuery(text string) Query {
	text = strings.TrimSpace(text)
	if text == "" {
		return Query{}
	}

	p := &queryParser{input: text, pending: OpAnd}
	p.run()
	return p.query
}

// queryParser is a single left-to-right scanner with no backtracking.
type queryParser struct {
	input   string
	pos     int
	pending Operator
	query   Query
}

var keywords = []struct {
	word string
	op   Operator
}{
	{"AND", OpAnd},
	{"OR", OpOr},
	{"NOT", OpNot},
}

func (p *queryParser) run() {
	for p.pos < len(p.input) {
		p.skipSpace()
		if p.pos >= len(p.input) {
			return
		}

		start := p.pos
		switch {
		case p.consumeKeyword():
		case p.input[p.pos] == '"':
			p.parsePhrase()
		default:
			p.parseWord()
		}

		// every branch above consumes input; guard against a stalled cursor anyway
		if p.pos == start {
			p.pos++
		}
	}
}

func (p *queryParser) skipSpace() {
	for p.pos < len(p.input) {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

// consumeKeyword recognises AND/OR/NOT (any case) when followed by end of
// input, whitespace or an opening quote, and records it as the pending operator.
func (p *queryParser) consumeKeyword() bool {
	rest := p.input[p.pos:]
	for _, kw := range keywords {
		if len(rest) < len(kw.word) || !strings.EqualFold(rest[:len(kw.word)], kw.word) {
			continue
		}
		if !isKeywordBoundary(rest[len(kw.word):]) {
			continue
		}
		p.pending = kw.op
		p.pos += len(kw.word)
		return true
	}
	return false
}

func isKeywordBoundary(after string) bool {
	if after == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(after)
	return unicode.IsSpace(r) || r == '"'
}

// parsePhrase reads a quoted span. A missing closing quote extends the
// phrase to the end of input.
func (p *queryParser) parsePhrase() {
	p.pos++ // opening quote
	end := strings.IndexByte(p.input[p.pos:], '"')
	var phrase string
	if end < 0 {
		phrase = p.input[p.pos:]
		p.pos = len(p.input)
	} else {
		phrase = p.input[p.pos : p.pos+end]
		p.pos += end + 1
	}

	if phrase == "" {
		return
	}
	p.emit(Term{Text: phrase, IsExactPhrase: true, Operator: p.pending})
}

func (p *queryParser) parseWord() {
	start := p.pos
	for p.pos < len(p.input) {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if unicode.IsSpace(r) {
			break
		}
		p.pos += size
	}
	word := p.input[start:p.pos]

	if filter, ok := parseFieldFilter(word); ok {
		p.query.FieldFilters = append(p.query.FieldFilters, filter)
		return
	}

	op := p.pending
	if strings.HasPrefix(word, "-") {
		word = word[1:]
		op = OpNot
	}

	wildcard := false
	if strings.HasSuffix(word, "*") {
		word = strings.TrimSuffix(word, "*")
		wildcard = true
	}

	if word == "" {
		return
	}
	p.emit(Term{Text: word, IsWildcard: wildcard, Operator: op})
}

func (p *queryParser) emit(t Term) {
	p.query.Terms = append(p.query.Terms, t)
	p.pending = OpAnd
}

// parseFieldFilter interprets "field:value". Unknown field names are not
// filters, so the caller treats the token as a plain word.
func parseFieldFilter(word string) (FieldFilter, bool) {
	colon := strings.IndexByte(word, ':')
	if colon <= 0 {
		return FieldFilter{}, false
	}

	field, ok := LookupField(word[:colon])
	if !ok {
		return FieldFilter{}, false
	}

	value := word[colon+1:]
	cmp := CompareContains
	for _, cp := range comparisonPrefixes {
		if strings.HasPrefix(value, cp.prefix) {
			cmp = cp.cmp
			value = value[len(cp.prefix):]
			break
		}
	}

	return FieldFilter{Field: field, Comparison: cmp, Value: value}, true
}

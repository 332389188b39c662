package patterns

import "strings"

// Match is one positional hit reported by the matcher (spec.md §4.2).
type Match struct {
	Rule    Rule
	Line    int // 1-based
	Column  int // byte offset from the current line's start
	Context string
}

// Matcher scans raw source against a Table in a single left-to-right byte
// pass, grounded on the teacher's internal/core/line_scanner.go zero-
// allocation line-tracking discipline. It performs no deduplication —
// overlapping matches at the same offset for different rules are all
// reported, per spec.md §4.2's explicit contract.
type Matcher struct {
	table Table
}

// NewMatcher builds a Matcher bound to table. A nil or empty table is
// valid: FindMatches then reports no matches without allocating.
func NewMatcher(table Table) *Matcher {
	return &Matcher{table: table}
}

// FindMatches scans src once, reporting every rule match in byte order.
func (m *Matcher) FindMatches(src []byte) []Match {
	return m.FindMatchesInto(src, nil)
}

// FindMatchesInto is FindMatches but appends into buf (truncated to
// length zero first) instead of allocating a fresh slice, so a caller that
// pools per-run Match scratch space (internal/arena) can reuse one buffer
// across calls instead of paying a fresh allocation per extraction.
func (m *Matcher) FindMatchesInto(src []byte, buf []Match) []Match {
	matches := buf[:0]
	if len(m.table) == 0 || len(src) == 0 {
		return matches
	}

	line := 1
	lineStart := 0

	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
			continue
		}
		for _, rule := range m.table {
			p := rule.Pattern
			if p == "" {
				continue
			}
			if i+len(p) > len(src) {
				continue
			}
			if string(src[i:i+len(p)]) != p {
				continue
			}
			matches = append(matches, Match{
				Rule:    rule,
				Line:    line,
				Column:  i - lineStart,
				Context: currentLine(src, lineStart),
			})
		}
	}
	return matches
}

// currentLine returns the full line starting at lineStart, up to (not
// including) the next newline or end of source.
func currentLine(src []byte, lineStart int) string {
	end := lineStart
	for end < len(src) && src[end] != '\n' {
		end++
	}
	return strings.TrimRight(string(src[lineStart:end]), "\r")
}

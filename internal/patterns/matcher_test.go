package patterns

import (
	"testing"

	"github.com/rand/ananke-sub006/internal/ast"
	"github.com/rand/ananke-sub006/internal/constraint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcher_ReportsLineColumnContext(t *testing.T) {
	src := "package main\n\nfunc main() {\n\tif err != nil {\n\t}\n}\n"
	m := NewMatcher(TableFor(ast.LangGo))
	matches := m.FindMatches([]byte(src))
	require.NotEmpty(t, matches)

	var funcMatch *Match
	for i := range matches {
		if matches[i].Rule.Pattern == "func " {
			funcMatch = &matches[i]
			break
		}
	}
	require.NotNil(t, funcMatch)
	assert.Equal(t, 3, funcMatch.Line)
	assert.Equal(t, 0, funcMatch.Column)
	assert.Equal(t, "func main() {", funcMatch.Context)
}

func TestMatcher_OverlappingMatchesAllReported(t *testing.T) {
	table := Table{
		{"func ", CategoryFunctionDecl, constraint.Syntactic, "a"},
		{"func main", CategoryFunctionDecl, constraint.Syntactic, "b"},
	}
	m := NewMatcher(table)
	matches := m.FindMatches([]byte("func main() {}"))
	assert.Len(t, matches, 2)
}

func TestMatcher_NoDeduplication(t *testing.T) {
	m := NewMatcher(TableFor(ast.LangGo))
	matches := m.FindMatches([]byte("func a() {}\nfunc b() {}\n"))
	count := 0
	for _, mm := range matches {
		if mm.Rule.Pattern == "func " {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestMatcher_EmptyTableReturnsNilWithoutPanicking(t *testing.T) {
	m := NewMatcher(nil)
	assert.Nil(t, m.FindMatches([]byte("anything")))
}

func TestMatcher_EmptySourceReturnsNil(t *testing.T) {
	m := NewMatcher(TableFor(ast.LangGo))
	assert.Nil(t, m.FindMatches(nil))
}

func TestTableFor_UnsupportedLanguageIsNil(t *testing.T) {
	assert.Nil(t, TableFor(ast.Language("cobol")))
}

func TestAllLanguageTablesNonEmpty(t *testing.T) {
	langs := []ast.Language{
		ast.LangTypeScript, ast.LangJavaScript, ast.LangPython, ast.LangRust,
		ast.LangGo, ast.LangZig, ast.LangC, ast.LangCpp, ast.LangJava,
	}
	for _, lang := range langs {
		assert.NotEmpty(t, TableFor(lang), lang)
	}
}

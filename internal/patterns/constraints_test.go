package patterns

import (
	"testing"

	"github.com/rand/ananke-sub006/internal/ast"
	"github.com/rand/ananke-sub006/internal/constraint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToConstraints_GroupsByRuleAndCountsOccurrences(t *testing.T) {
	src := []byte("func A() {}\nfunc B() {}\n")
	m := NewMatcher(TableFor(ast.LangGo))
	matches := m.FindMatches(src)
	require.NotEmpty(t, matches)

	constraints := ToConstraints(matches)
	require.NotEmpty(t, constraints)

	var funcDecl *constraint.Constraint
	for i := range constraints {
		if constraints[i].Name == "function_declaration" {
			funcDecl = &constraints[i]
		}
	}
	require.NotNil(t, funcDecl)
	assert.EqualValues(t, 2, funcDecl.Frequency)
	assert.Equal(t, constraint.ConfidencePattern, funcDecl.Confidence)
	assert.Equal(t, 1, funcDecl.OriginLine)
}

func TestToConstraints_EmptyMatchesYieldsNil(t *testing.T) {
	assert.Nil(t, ToConstraints(nil))
}

func TestToConstraints_ErrorHandlingUsesControlFlowSource(t *testing.T) {
	src := []byte("if err != nil {\n\treturn err\n}\n")
	m := NewMatcher(TableFor(ast.LangGo))
	constraints := ToConstraints(m.FindMatches(src))
	var found bool
	for _, c := range constraints {
		if c.Name == "error_check" {
			found = true
			assert.Equal(t, constraint.SourceControlFlow, c.Source)
		}
	}
	assert.True(t, found)
}

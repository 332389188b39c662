package extract

import (
	"testing"

	"github.com/rand/ananke-sub006/internal/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsTypeKeyword_WordBoundary(t *testing.T) {
	assert.False(t, containsTypeKeyword("company", "any"))
	assert.True(t, containsTypeKeyword("any | string", "any"))
	assert.False(t, containsTypeKeyword("manyThings", "any"))
	assert.True(t, containsTypeKeyword("x: any", "any"))
	assert.True(t, containsTypeKeyword("any", "any"))
}

func TestContainsTypeKeyword_NullVsNone(t *testing.T) {
	assert.True(t, containsTypeKeyword("string | null", "null"))
	assert.False(t, containsTypeKeyword("nullable", "null"))
	assert.True(t, containsTypeKeyword("Optional[None]", "None"))
}

func analyze(t *testing.T, lang ast.Language, src string) TypeAnnotations {
	t.Helper()
	p := ast.NewParser()
	defer p.Close()
	tree, err := p.Parse(lang, []byte(src))
	require.NoError(t, err)
	defer tree.Close()
	return AnalyzeTypeAnnotations(tree.Root(), lang)
}

func TestAnalyzeTypeAnnotations_CleanTypeScriptSetsNoAnyFlag(t *testing.T) {
	ta := analyze(t, ast.LangTypeScript, "function generatePrimes(limit: number): number[] { return []; }\n")
	assert.False(t, ta.HasAnyTypes)
	assert.Greater(t, ta.TypeAnnotationCount, 0)
	assert.Equal(t, 0.95, ta.Confidence)
}

func TestAnalyzeTypeAnnotations_AnyAndUnion(t *testing.T) {
	ta := analyze(t, ast.LangTypeScript, "function f(x: any): string | number { return x; }\n")
	assert.True(t, ta.HasAnyTypes)
	assert.True(t, ta.HasUnionTypes)
}

func TestAnalyzeTypeAnnotations_PythonOptional(t *testing.T) {
	ta := analyze(t, ast.LangPython, "def f(x: Optional[int]) -> int | None:\n    return x\n")
	assert.True(t, ta.HasOptionalTypes)
	assert.True(t, ta.HasNullTypes)
	assert.Equal(t, 0.95, ta.Confidence)
}

func TestAnalyzeTypeAnnotations_GenericLanguageConfidence(t *testing.T) {
	ta := analyze(t, ast.LangGo, "package main\n\nvar x int\n")
	assert.Equal(t, 0.80, ta.Confidence)
}

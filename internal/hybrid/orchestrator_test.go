package hybrid

import (
	"testing"

	"github.com/rand/ananke-sub006/internal/ast"
	"github.com/stretchr/testify/assert"
)

const rateLimiterTS = `
class RateLimiter {
  constructor(private capacity: number) {}
  tryAcquire(tokens: number = 1): boolean {
    return tokens <= this.capacity;
  }
  private refill(): void {}
}
`

func TestOrchestrator_Combined_Dedup(t *testing.T) {
	o := New()
	defer o.Close()

	result := o.Extract([]byte(rateLimiterTS), ast.LangTypeScript, Combined)

	assert.True(t, result.TreeSitterAvailable)
	seen := make(map[string]int)
	for _, c := range result.Constraints {
		seen[string(c.Kind)+"/"+c.Name]++
	}
	for key, count := range seen {
		assert.Equal(t, 1, count, "duplicate (name, kind) in Combined output: %s", key)
	}
}

func TestOrchestrator_UnsupportedLanguage(t *testing.T) {
	o := New()
	defer o.Close()

	result := o.Extract([]byte("whatever"), ast.Language("cobol"), TreeSitterWithFallback)
	assert.False(t, result.TreeSitterAvailable)
	assert.Empty(t, result.Constraints)
	assert.Empty(t, result.TreeSitterErrors)

	only := o.Extract([]byte("whatever"), ast.Language("cobol"), TreeSitterOnly)
	assert.False(t, only.TreeSitterAvailable)
	assert.Empty(t, only.Constraints)
	assert.Contains(t, only.TreeSitterErrors, "unsupported language")
}

func TestOrchestrator_ExtractCached_HitsOnRepeat(t *testing.T) {
	o := New()
	defer o.Close()

	source := []byte(rateLimiterTS)
	first := o.ExtractCached(source, ast.LangTypeScript, Combined)
	statsAfterFirst := o.CacheStats()
	second := o.ExtractCached(source, ast.LangTypeScript, Combined)
	statsAfterSecond := o.CacheStats()

	assert.Equal(t, len(first.Constraints), len(second.Constraints))
	assert.Equal(t, statsAfterFirst.Hits, statsAfterSecond.Hits-1)
}

func TestOrchestrator_DetectHoles(t *testing.T) {
	o := New()
	defer o.Close()

	holes, err := o.DetectHoles([]byte("def f(self):\n    raise NotImplementedError\n"), ast.LangPython, "f.py")
	assert.NoError(t, err)
	assert.Len(t, holes, 1)
}

func TestOrchestrator_DetectHoles_UnsupportedLanguage(t *testing.T) {
	o := New()
	defer o.Close()

	holes, err := o.DetectHoles([]byte("whatever"), ast.Language("cobol"), "")
	assert.NoError(t, err)
	assert.Nil(t, holes)
}

func TestOrchestrator_ExtractWithInternStats_PopulatesField(t *testing.T) {
	o := New()
	defer o.Close()

	result := o.ExtractWithInternStats([]byte(rateLimiterTS), ast.LangTypeScript, Combined)
	if assert.NotNil(t, result.InternStats) {
		assert.GreaterOrEqual(t, result.InternStats.UniqueStrings, 0)
	}
}

func TestOrchestrator_Extract_LeavesInternStatsNil(t *testing.T) {
	o := New()
	defer o.Close()

	result := o.Extract([]byte(rateLimiterTS), ast.LangTypeScript, Combined)
	assert.Nil(t, result.InternStats)
}

func TestParseStrategy_KnownNames(t *testing.T) {
	for _, s := range []Strategy{TreeSitterOnly, PatternOnly, TreeSitterWithFallback, Combined} {
		got, err := ParseStrategy(string(s))
		assert.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestParseStrategy_UnknownNameErrors(t *testing.T) {
	_, err := ParseStrategy("fastest")
	assert.Error(t, err)
}

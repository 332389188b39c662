package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_AcceptedAliases(t *testing.T) {
	cases := map[string]Language{
		"typescript": LangTypeScript,
		"ts":         LangTypeScript,
		"tsx":        LangTypeScript,
		"javascript": LangJavaScript,
		"js":         LangJavaScript,
		"jsx":        LangJavaScript,
		"python":     LangPython,
		"py":         LangPython,
		"rust":       LangRust,
		"rs":         LangRust,
		"go":         LangGo,
		"zig":        LangZig,
		"c":          LangC,
		"cpp":        LangCpp,
		"c++":        LangCpp,
		"java":       LangJava,
	}
	for tag, want := range cases {
		got, err := Normalize(tag)
		require.NoError(t, err, tag)
		assert.Equal(t, want, got, tag)
	}
}

func TestNormalize_Unsupported(t *testing.T) {
	_, err := Normalize("csharp")
	require.Error(t, err)
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("ts"))
	assert.False(t, IsSupported("php"))
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, LangTypeScript, Canonical("ts"))
	assert.Equal(t, LangPython, Canonical("py"))
	assert.Equal(t, Language("cobol"), Canonical("cobol"), "unrecognized tags pass through for per-strategy handling")
}

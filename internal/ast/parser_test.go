package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_UnsupportedLanguage(t *testing.T) {
	p := NewParser()
	defer p.Close()

	_, err := p.Parse(Language("cobol"), []byte("IDENTIFICATION DIVISION."))
	require.Error(t, err)
}

func TestParser_ParsesEveryGrammar(t *testing.T) {
	p := NewParser()
	defer p.Close()

	samples := map[Language]string{
		LangGo:         "package main\nfunc main() {}\n",
		LangTypeScript: "function f(x: number): number { return x }\n",
		LangJavaScript: "function f(x) { return x }\n",
		LangPython:     "def f(x):\n    return x\n",
		LangRust:       "fn f(x: i32) -> i32 { x }\n",
		LangZig:        "fn f(x: i32) i32 { return x; }\n",
		LangC:          "int f(int x) { return x; }\n",
		LangCpp:        "int f(int x) { return x; }\n",
		LangJava:       "class A { int f(int x) { return x; } }\n",
	}

	for lang, src := range samples {
		tree, err := p.Parse(lang, []byte(src))
		require.NoError(t, err, lang)
		require.NotNil(t, tree, lang)
		root := tree.Root()
		require.NotNil(t, root, lang)
		assert.False(t, root.HasError(), "%s: %s", lang, src)
		tree.Close()
	}
}

func TestParser_MalformedSourceStillYieldsTree(t *testing.T) {
	p := NewParser()
	defer p.Close()

	tree, err := p.Parse(LangGo, []byte("package main\nfunc main( {\n"))
	require.NoError(t, err)
	require.NotNil(t, tree)
	defer tree.Close()

	root := tree.Root()
	require.NotNil(t, root)
	assert.True(t, root.HasError())
}

func TestParser_EmptySource(t *testing.T) {
	p := NewParser()
	defer p.Close()

	tree, err := p.Parse(LangGo, []byte(""))
	require.NoError(t, err)
	require.NotNil(t, tree)
	tree.Close()
}

func TestParser_ReusesCachedParserPerLanguage(t *testing.T) {
	p := NewParser()
	defer p.Close()

	_, err := p.Parse(LangGo, []byte("package main\n"))
	require.NoError(t, err)
	assert.Len(t, p.parsers, 1)

	_, err = p.Parse(LangGo, []byte("package main\nvar x = 1\n"))
	require.NoError(t, err)
	assert.Len(t, p.parsers, 1)
}

package extract

import (
	"testing"

	"github.com/rand/ananke-sub006/internal/ast"
	"github.com/rand/ananke-sub006/internal/constraint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDeclarations_Go(t *testing.T) {
	p := ast.NewParser()
	defer p.Close()

	tree, err := p.Parse(ast.LangGo, []byte(`package main

type Config struct {
	Name string
}

func Run(cfg Config) error {
	return nil
}
`))
	require.NoError(t, err)
	defer tree.Close()

	constraints := ExtractDeclarations(tree.Root(), ast.LangGo)
	var gotRun, gotConfig bool
	for _, c := range constraints {
		assert.Equal(t, constraint.ConfidenceAST, c.Confidence)
		assert.Equal(t, constraint.SourceASTPattern, c.Source)
		if c.Name == "Run" {
			gotRun = true
			assert.Equal(t, constraint.Syntactic, c.Kind)
		}
		if c.Name == "Config" {
			gotConfig = true
			assert.Equal(t, constraint.TypeSafety, c.Kind)
		}
	}
	assert.True(t, gotRun)
	assert.True(t, gotConfig)
}

// TestExtractDeclarations_TypeScriptRateLimiter mirrors the rate-limiter
// class example: the class is reported once as a type declaration and each
// of its three members (constructor included, via method_definition) once
// as a function declaration.
func TestExtractDeclarations_TypeScriptRateLimiter(t *testing.T) {
	p := ast.NewParser()
	defer p.Close()

	tree, err := p.Parse(ast.LangTypeScript, []byte(`class RateLimiter {
  constructor(private capacity: number) {}
  tryAcquire(tokens: number = 1): boolean {
    return tokens <= this.capacity;
  }
  private refill(): void {}
}
`))
	require.NoError(t, err)
	defer tree.Close()

	constraints := ExtractDeclarations(tree.Root(), ast.LangTypeScript)

	var functions, types []string
	for _, c := range constraints {
		switch c.Kind {
		case constraint.Syntactic:
			functions = append(functions, c.Name)
		case constraint.TypeSafety:
			types = append(types, c.Name)
		}
	}
	assert.Equal(t, []string{"RateLimiter"}, types)
	assert.Len(t, functions, 3)
	assert.Contains(t, functions, "constructor")
	assert.Contains(t, functions, "tryAcquire")
	assert.Contains(t, functions, "refill")
}

func TestExtractDeclarations_ZigContainer(t *testing.T) {
	p := ast.NewParser()
	defer p.Close()

	tree, err := p.Parse(ast.LangZig, []byte(`const User = struct {
    name: []const u8,
};

pub fn makeUser() User {
    return User{ .name = "x" };
}
`))
	require.NoError(t, err)
	defer tree.Close()

	constraints := ExtractDeclarations(tree.Root(), ast.LangZig)

	names := make(map[string]constraint.Kind)
	for _, c := range constraints {
		names[c.Name] = c.Kind
	}
	assert.Equal(t, constraint.TypeSafety, names["User"])
	assert.Equal(t, constraint.Syntactic, names["makeUser"])
}

func TestExtractDeclarations_UnknownLanguageReturnsNil(t *testing.T) {
	p := ast.NewParser()
	defer p.Close()
	tree, err := p.Parse(ast.LangGo, []byte("package main\n"))
	require.NoError(t, err)
	defer tree.Close()

	constraints := ExtractDeclarations(tree.Root(), ast.Language("cobol"))
	assert.Nil(t, constraints)
}

func TestExtractDeclarations_NilRoot(t *testing.T) {
	assert.Nil(t, ExtractDeclarations(nil, ast.LangGo))
}

package hybrid

import (
	"testing"

	"github.com/rand/ananke-sub006/internal/ast"
	"github.com/rand/ananke-sub006/internal/constraint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFor(t *testing.T, lang ast.Language, source string) *ast.Tree {
	t.Helper()
	p := ast.NewParser()
	t.Cleanup(p.Close)
	tree, err := p.Parse(lang, []byte(source))
	require.NoError(t, err)
	t.Cleanup(tree.Close)
	return tree
}

// TestDetectHoles_PythonNotImplemented covers spec.md §8 scenario 3.
func TestDetectHoles_PythonNotImplemented(t *testing.T) {
	tree := parseFor(t, ast.LangPython, "class Shape:\n    def area(self):\n        raise NotImplementedError\n")
	holes := DetectHoles(tree.Root(), ast.LangPython, "shape.py")

	var found bool
	for _, h := range holes {
		if h.Kind == constraint.KindUnimplementedMethod {
			found = true
			assert.Equal(t, 0.98, h.Confidence)
			assert.Equal(t, 3, h.Location.StartLine)
		}
	}
	assert.True(t, found, "expected an unimplemented_method hole")
}

// TestDetectHoles_RustIncompleteMatch covers spec.md §8 scenario 4.
func TestDetectHoles_RustIncompleteMatch(t *testing.T) {
	tree := parseFor(t, ast.LangRust, `fn f(x: i32) -> &'static str {
    match x {
        0 => "zero",
        _ => todo!(),
    }
}
`)
	holes := DetectHoles(tree.Root(), ast.LangRust, "lib.rs")

	var found bool
	for _, h := range holes {
		if h.Kind == constraint.KindIncompleteMatch {
			found = true
			assert.Equal(t, 0.95, h.Confidence)
		}
	}
	assert.True(t, found, "expected an incomplete_match hole")
}

// TestDetectHoles_ZigEmptyBody covers spec.md §8 scenario 5.
func TestDetectHoles_ZigEmptyBody(t *testing.T) {
	tree := parseFor(t, ast.LangZig, `fn foo() void { }
fn bar() !void { return error.Oops; }
`)
	holes := DetectHoles(tree.Root(), ast.LangZig, "main.zig")

	var empties int
	for _, h := range holes {
		if h.Kind == constraint.KindEmptyFunctionBody {
			empties++
			assert.Equal(t, 0.95, h.Confidence)
		}
	}
	assert.Equal(t, 1, empties, "bar() has a non-empty body and must not be flagged")
}

func TestDetectHoles_IDStableAcrossRuns(t *testing.T) {
	source := "def area(self):\n    raise NotImplementedError\n"
	tree1 := parseFor(t, ast.LangPython, source)
	tree2 := parseFor(t, ast.LangPython, source)

	h1 := DetectHoles(tree1.Root(), ast.LangPython, "a.py")
	h2 := DetectHoles(tree2.Root(), ast.LangPython, "a.py")

	require.Len(t, h1, 1)
	require.Len(t, h2, 1)
	assert.Equal(t, h1[0].ID, h2[0].ID)
}

func TestDetectHoles_NilRoot(t *testing.T) {
	assert.Nil(t, DetectHoles(nil, ast.LangGo, ""))
}

func TestDetectHoles_RustMissingAnnotation(t *testing.T) {
	tree := parseFor(t, ast.LangRust, "fn f(x: _) -> i32 { x }\n")
	holes := DetectHoles(tree.Root(), ast.LangRust, "lib.rs")

	var found bool
	for _, h := range holes {
		if h.Kind == constraint.KindMissingTypeAnnotation {
			found = true
			assert.Equal(t, 0.80, h.Confidence)
		}
	}
	assert.True(t, found, "expected a missing_type_annotation hole")
}

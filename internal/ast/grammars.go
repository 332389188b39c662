package ast

import (
	"unsafe"

	tree_sitter_zig "github.com/tree-sitter-grammars/tree-sitter-zig/bindings/go"
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_c "github.com/tree-sitter/tree-sitter-c/bindings/go"
	tree_sitter_cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	tree_sitter_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// grammarVersion records the grammar version a Language targets, so that a
// configured pin can be compared against it at startup (config.VerifyGrammars,
// ananke.VerifyGrammars) when a grammar upgrade renames node types (spec.md
// §6: "fn_item vs function_item", "FnProto vs FunctionPrototype"). The
// version strings are maintained by hand alongside go.mod; parser
// construction only logs them and performs no check.
type grammarVersion struct {
	language Language
	pkg      string
	version  string
	loader   func() unsafe.Pointer
}

// grammarRegistry is the process-global, read-only table of grammars this
// build targets. It is never mutated at runtime (spec.md §5: "Pattern rule
// tables ... are immutable global data" — the same discipline applies to
// the grammar table).
var grammarRegistry = []grammarVersion{
	{LangTypeScript, "github.com/tree-sitter/tree-sitter-typescript", "v0.23.2", func() unsafe.Pointer { return tree_sitter_typescript.LanguageTypescript() }},
	{LangJavaScript, "github.com/tree-sitter/tree-sitter-javascript", "v0.23.1", func() unsafe.Pointer { return tree_sitter_javascript.Language() }},
	{LangPython, "github.com/tree-sitter/tree-sitter-python", "v0.23.6", func() unsafe.Pointer { return tree_sitter_python.Language() }},
	{LangRust, "github.com/tree-sitter/tree-sitter-rust", "v0.23.0", func() unsafe.Pointer { return tree_sitter_rust.Language() }},
	{LangGo, "github.com/tree-sitter/tree-sitter-go", "v0.23.4", func() unsafe.Pointer { return tree_sitter_go.Language() }},
	{LangZig, "github.com/tree-sitter-grammars/tree-sitter-zig", "v1.1.2", func() unsafe.Pointer { return tree_sitter_zig.Language() }},
	{LangC, "github.com/tree-sitter/tree-sitter-c", "v0.23.4", func() unsafe.Pointer { return tree_sitter_c.Language() }},
	{LangCpp, "github.com/tree-sitter/tree-sitter-cpp", "v0.23.4", func() unsafe.Pointer { return tree_sitter_cpp.Language() }},
	{LangJava, "github.com/tree-sitter/tree-sitter-java", "v0.23.5", func() unsafe.Pointer { return tree_sitter_java.Language() }},
}

func grammarFor(lang Language) (*tree_sitter.Language, string, bool) {
	for _, g := range grammarRegistry {
		if g.language == lang {
			return tree_sitter.NewLanguage(g.loader()), g.version, true
		}
	}
	return nil, "", false
}

// GrammarVersions returns the pinned grammar version for every supported
// language, keyed by canonical Language tag.
func GrammarVersions() map[Language]string {
	out := make(map[Language]string, len(grammarRegistry))
	for _, g := range grammarRegistry {
		out[g.language] = g.version
	}
	return out
}

package patterns

import "github.com/rand/ananke-sub006/internal/ast"

// registry maps a canonical language to its compile-time rule table.
// Populated by each language's rules_*.go init-less package-level var.
var registry = map[ast.Language]Table{
	ast.LangTypeScript: typescriptRules,
	ast.LangJavaScript: javascriptRules,
	ast.LangPython:     pythonRules,
	ast.LangRust:       rustRules,
	ast.LangGo:         goRules,
	ast.LangZig:        zigRules,
	ast.LangC:          cRules,
	ast.LangCpp:        cppRules,
	ast.LangJava:       javaRules,
}

// TableFor returns the rule table for lang, or nil if lang has none. A
// language with no table is a valid state (spec.md §8: "pattern-only
// extraction returns [] and does not allocate per-constraint strings").
func TableFor(lang ast.Language) Table {
	return registry[lang]
}

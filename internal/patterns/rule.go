// Package patterns implements the fallback extraction path: per-language
// tables of literal substrings plus a single-pass byte scanner, grounded on
// the teacher's internal/regex_analyzer (compile-time pattern lists) and
// internal/core/line_scanner.go (zero-allocation line tracking), adapted
// here to literal-substring matching rather than regex classification.
package patterns

import "github.com/rand/ananke-sub006/internal/constraint"

// Category names the eight rule families from spec.md §4.2. The matcher
// does not branch on it; ToConstraints uses it to choose each constraint's
// Source.
type Category string

const (
	CategoryFunctionDecl     Category = "function_decl"
	CategoryTypeAnnotation   Category = "type_annotation"
	CategoryAsyncPattern     Category = "async_pattern"
	CategoryErrorHandling    Category = "error_handling"
	CategoryImports          Category = "imports"
	CategoryClassStruct      Category = "class_struct"
	CategoryMetadata         Category = "metadata"
	CategoryMemoryManagement Category = "memory_management"
)

// Rule is a single literal-substring pattern classified by category and
// constraint kind. Rules are compile-time constants: the matcher never owns
// or mutates them (spec.md §3, "Pattern rule tables are immutable global
// data").
type Rule struct {
	Pattern     string
	Category    Category
	Kind        constraint.Kind
	Description string
}

// Table is the full ordered rule list for one language.
type Table []Rule

package extract

import (
	"strings"

	"github.com/rand/ananke-sub006/internal/ast"
)

// TypeAnnotations is the result of AnalyzeTypeAnnotations: the four flags
// plus count from spec.md §4.3.
type TypeAnnotations struct {
	HasAnyTypes         bool
	HasOptionalTypes    bool
	HasNullTypes        bool
	HasUnionTypes       bool
	TypeAnnotationCount int
	Confidence          float64
}

// containsTypeKeyword reports whether keyword appears in text as a whole
// word — not as a substring of a larger identifier. This is the
// non-negotiable word-boundary check from spec.md §9: "any" must not match
// inside "many", but must match in "any | string".
func containsTypeKeyword(text, keyword string) bool {
	if keyword == "" {
		return false
	}
	searchFrom := 0
	for {
		idx := strings.Index(text[searchFrom:], keyword)
		if idx == -1 {
			return false
		}
		abs := searchFrom + idx

		boundedBefore := abs == 0 || !isIdentByte(text[abs-1])
		afterPos := abs + len(keyword)
		boundedAfter := afterPos >= len(text) || !isIdentByte(text[afterPos])

		if boundedBefore && boundedAfter {
			return true
		}
		searchFrom = abs + 1
	}
}

// isTypeAnnotationNodeKind treats any node whose grammar-assigned kind
// string contains "type" as an annotation-bearing node — tree-sitter
// grammars name these consistently across languages (type_annotation,
// type_identifier, generic_type, union_type, optional_type, primitive_type,
// ...), so a single substring test covers all nine languages without
// hand-pinning a kind list per grammar.
func isTypeAnnotationNodeKind(kind string) bool {
	return strings.Contains(kind, "type")
}

// genericConfidence and preciseConfidence implement spec.md §4.3's
// confidence contract: "generic-language type analysis carries 0.80;
// TypeScript/Python carry 0.95."
const (
	genericConfidence = 0.80
	preciseConfidence = 0.95
)

// AnalyzeTypeAnnotations walks root for type-annotation-bearing nodes and
// sets the four flags plus a count, per spec.md §4.3. lang only affects the
// reported Confidence.
func AnalyzeTypeAnnotations(root *ast.Node, lang ast.Language) TypeAnnotations {
	result := TypeAnnotations{Confidence: genericConfidence}
	if lang == ast.LangTypeScript || lang == ast.LangPython {
		result.Confidence = preciseConfidence
	}
	if root.IsNil() {
		return result
	}

	ast.PreOrder(root, func(n *ast.Node) bool {
		if !isTypeAnnotationNodeKind(n.Kind()) {
			return true
		}
		result.TypeAnnotationCount++
		text := n.Text()

		if containsTypeKeyword(text, "any") || containsTypeKeyword(text, "unknown") || containsTypeKeyword(text, "Any") {
			result.HasAnyTypes = true
		}
		if strings.Contains(text, "?") || containsTypeKeyword(text, "undefined") ||
			strings.Contains(text, "Optional[") || strings.Contains(text, "| None") {
			result.HasOptionalTypes = true
		}
		if containsTypeKeyword(text, "null") || containsTypeKeyword(text, "None") {
			result.HasNullTypes = true
		}
		if strings.Contains(text, "|") || strings.Contains(text, "Union[") {
			result.HasUnionTypes = true
		}
		return true
	})

	return result
}

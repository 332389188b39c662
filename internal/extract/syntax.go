// Package extract implements C3: per-language line-based SyntaxStructure
// extraction and its projection into summary constraints, the AST
// identifier walk, and the word-bounded type-annotation analyzer. Grounded
// on the teacher's per-language conditional dispatch style
// (internal/config/build_artifact_detector.go) and its field-name-first AST
// walks (internal/parser/parser.go).
package extract

// FunctionDecl is one function/method found by the line-based extractor.
type FunctionDecl struct {
	Name             string
	Line             int // 1-based
	IsAsync          bool
	IsPublic         bool
	ReturnType       string // empty if absent
	HasErrorHandling bool
}

// TypeDecl is one type-like declaration (struct/class/interface/enum/union)
// found by the line-based extractor.
type TypeDecl struct {
	Name string
	Line int
	Kind string // struct, class, interface, enum, union, trait, type_alias
}

// ImportDecl is one import/use/include statement found by the line-based
// extractor.
type ImportDecl struct {
	Text string
	Line int
}

// SyntaxStructure is the staging record produced by a per-language line
// extractor (spec.md §3), later projected into summary constraints by
// ProjectSyntaxStructure.
type SyntaxStructure struct {
	Functions []FunctionDecl
	Types     []TypeDecl
	Imports   []ImportDecl
}

package patterns

import "github.com/rand/ananke-sub006/internal/constraint"

var goRules = Table{
	{"func ", CategoryFunctionDecl, constraint.Syntactic, "function declaration"},
	{"func (", CategoryFunctionDecl, constraint.Syntactic, "method declaration"},
	{"interface{}", CategoryTypeAnnotation, constraint.TypeSafety, "empty interface annotation"},
	{"any", CategoryTypeAnnotation, constraint.TypeSafety, "any alias annotation"},
	{"go func", CategoryAsyncPattern, constraint.Semantic, "goroutine launch"},
	{"<-chan", CategoryAsyncPattern, constraint.Semantic, "receive-only channel"},
	{"error {", CategoryErrorHandling, constraint.Semantic, "error return"},
	{"if err != nil", CategoryErrorHandling, constraint.Semantic, "error check"},
	{"import (", CategoryImports, constraint.Architectural, "import block"},
	{"import \"", CategoryImports, constraint.Architectural, "single import"},
	{"type ", CategoryClassStruct, constraint.TypeSafety, "type declaration"},
	{"struct {", CategoryClassStruct, constraint.TypeSafety, "struct declaration"},
	{"// Deprecated:", CategoryMetadata, constraint.Operational, "deprecation comment"},
	{"//go:generate", CategoryMetadata, constraint.Operational, "generate directive"},
	{"runtime.SetFinalizer", CategoryMemoryManagement, constraint.Operational, "finalizer registration"},
	{"sync.Pool", CategoryMemoryManagement, constraint.Operational, "pooled allocation"},
}

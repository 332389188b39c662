package patterns

import "github.com/rand/ananke-sub006/internal/constraint"

var zigRules = Table{
	{"fn ", CategoryFunctionDecl, constraint.Syntactic, "function declaration"},
	{"pub fn ", CategoryFunctionDecl, constraint.Syntactic, "public function declaration"},
	{"anytype", CategoryTypeAnnotation, constraint.TypeSafety, "anytype parameter"},
	{"comptime ", CategoryTypeAnnotation, constraint.TypeSafety, "comptime parameter"},
	{"async ", CategoryAsyncPattern, constraint.Semantic, "async call"},
	{"await ", CategoryAsyncPattern, constraint.Semantic, "await expression"},
	{"!void", CategoryErrorHandling, constraint.Semantic, "error union return"},
	{"catch ", CategoryErrorHandling, constraint.Semantic, "catch expression"},
	{"@import(", CategoryImports, constraint.Architectural, "module import"},
	{"usingnamespace", CategoryImports, constraint.Architectural, "namespace import"},
	{"struct {", CategoryClassStruct, constraint.TypeSafety, "struct declaration"},
	{"union(", CategoryClassStruct, constraint.TypeSafety, "tagged union declaration"},
	{"test \"", CategoryMetadata, constraint.Operational, "test block"},
	{"@deprecated", CategoryMetadata, constraint.Operational, "deprecation marker"},
	{"allocator.free(", CategoryMemoryManagement, constraint.Operational, "explicit free"},
	{"defer ", CategoryMemoryManagement, constraint.Operational, "deferred cleanup"},
}

package patterns

import "github.com/rand/ananke-sub006/internal/constraint"

var cRules = Table{
	{"(void)", CategoryFunctionDecl, constraint.Syntactic, "no-argument function"},
	{"static ", CategoryFunctionDecl, constraint.Syntactic, "static function"},
	{"void *", CategoryTypeAnnotation, constraint.TypeSafety, "untyped pointer"},
	{"typedef ", CategoryTypeAnnotation, constraint.TypeSafety, "type alias"},
	{"pthread_create", CategoryAsyncPattern, constraint.Semantic, "thread creation"},
	{"_Atomic", CategoryAsyncPattern, constraint.Semantic, "atomic qualifier"},
	{"errno", CategoryErrorHandling, constraint.Semantic, "errno check"},
	{"setjmp(", CategoryErrorHandling, constraint.Semantic, "non-local jump"},
	{"#include <", CategoryImports, constraint.Architectural, "system include"},
	{"#include \"", CategoryImports, constraint.Architectural, "local include"},
	{"struct ", CategoryClassStruct, constraint.TypeSafety, "struct declaration"},
	{"union ", CategoryClassStruct, constraint.TypeSafety, "union declaration"},
	{"#pragma ", CategoryMetadata, constraint.Operational, "compiler pragma"},
	{"__attribute__", CategoryMetadata, constraint.Operational, "GCC attribute"},
	{"malloc(", CategoryMemoryManagement, constraint.Operational, "heap allocation"},
	{"free(", CategoryMemoryManagement, constraint.Operational, "explicit free"},
}

package patterns

import "github.com/rand/ananke-sub006/internal/constraint"

var cppRules = Table{
	{"void ", CategoryFunctionDecl, constraint.Syntactic, "void-returning function"},
	{"template<", CategoryFunctionDecl, constraint.Syntactic, "template function"},
	{"auto ", CategoryTypeAnnotation, constraint.TypeSafety, "inferred type annotation"},
	{"std::optional<", CategoryTypeAnnotation, constraint.TypeSafety, "optional annotation"},
	{"std::async(", CategoryAsyncPattern, constraint.Semantic, "async task launch"},
	{"std::thread", CategoryAsyncPattern, constraint.Semantic, "thread construction"},
	{"try {", CategoryErrorHandling, constraint.Semantic, "try block"},
	{"catch (", CategoryErrorHandling, constraint.Semantic, "catch clause"},
	{"#include <", CategoryImports, constraint.Architectural, "system include"},
	{"#include \"", CategoryImports, constraint.Architectural, "local include"},
	{"class ", CategoryClassStruct, constraint.TypeSafety, "class declaration"},
	{"struct ", CategoryClassStruct, constraint.TypeSafety, "struct declaration"},
	{"[[deprecated", CategoryMetadata, constraint.Operational, "deprecated attribute"},
	{"noexcept", CategoryMetadata, constraint.Operational, "noexcept specifier"},
	{"std::unique_ptr<", CategoryMemoryManagement, constraint.Operational, "unique ownership pointer"},
	{"std::shared_ptr<", CategoryMemoryManagement, constraint.Operational, "shared ownership pointer"},
}

package patterns

import "github.com/rand/ananke-sub006/internal/constraint"

var typescriptRules = Table{
	{"function ", CategoryFunctionDecl, constraint.Syntactic, "function declaration"},
	{"=> ", CategoryFunctionDecl, constraint.Syntactic, "arrow function"},
	{": any", CategoryTypeAnnotation, constraint.TypeSafety, "any-typed annotation"},
	{": unknown", CategoryTypeAnnotation, constraint.TypeSafety, "unknown-typed annotation"},
	{"async ", CategoryAsyncPattern, constraint.Semantic, "async function"},
	{"await ", CategoryAsyncPattern, constraint.Semantic, "await expression"},
	{"try {", CategoryErrorHandling, constraint.Semantic, "try block"},
	{"catch (", CategoryErrorHandling, constraint.Semantic, "catch clause"},
	{"import ", CategoryImports, constraint.Architectural, "ES module import"},
	{"require(", CategoryImports, constraint.Architectural, "CommonJS require"},
	{"class ", CategoryClassStruct, constraint.TypeSafety, "class declaration"},
	{"interface ", CategoryClassStruct, constraint.TypeSafety, "interface declaration"},
	{"export ", CategoryMetadata, constraint.Operational, "exported symbol"},
	{"@deprecated", CategoryMetadata, constraint.Operational, "deprecation marker"},
	{"new WeakRef(", CategoryMemoryManagement, constraint.Operational, "weak reference"},
	{"FinalizationRegistry", CategoryMemoryManagement, constraint.Operational, "finalization registry"},
}

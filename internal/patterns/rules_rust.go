package patterns

import "github.com/rand/ananke-sub006/internal/constraint"

var rustRules = Table{
	{"fn ", CategoryFunctionDecl, constraint.Syntactic, "function item"},
	{"impl ", CategoryFunctionDecl, constraint.Syntactic, "impl block"},
	{"Option<", CategoryTypeAnnotation, constraint.TypeSafety, "Option annotation"},
	{"Result<", CategoryTypeAnnotation, constraint.TypeSafety, "Result annotation"},
	{"async fn", CategoryAsyncPattern, constraint.Semantic, "async function"},
	{".await", CategoryAsyncPattern, constraint.Semantic, "await expression"},
	{"Result<", CategoryErrorHandling, constraint.Semantic, "fallible return type"},
	{"?;", CategoryErrorHandling, constraint.Semantic, "try operator"},
	{"use ", CategoryImports, constraint.Architectural, "use declaration"},
	{"extern crate", CategoryImports, constraint.Architectural, "extern crate"},
	{"struct ", CategoryClassStruct, constraint.TypeSafety, "struct declaration"},
	{"enum ", CategoryClassStruct, constraint.TypeSafety, "enum declaration"},
	{"#[derive(", CategoryMetadata, constraint.Operational, "derive attribute"},
	{"#[deprecated", CategoryMetadata, constraint.Operational, "deprecation attribute"},
	{"Rc<", CategoryMemoryManagement, constraint.Operational, "reference-counted pointer"},
	{"Box<", CategoryMemoryManagement, constraint.Operational, "heap allocation"},
}

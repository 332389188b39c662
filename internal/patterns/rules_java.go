package patterns

import "github.com/rand/ananke-sub006/internal/constraint"

var javaRules = Table{
	{"public ", CategoryFunctionDecl, constraint.Syntactic, "public method"},
	{"private ", CategoryFunctionDecl, constraint.Syntactic, "private method"},
	{"Optional<", CategoryTypeAnnotation, constraint.TypeSafety, "Optional annotation"},
	{"@Nullable", CategoryTypeAnnotation, constraint.TypeSafety, "nullable annotation"},
	{"CompletableFuture<", CategoryAsyncPattern, constraint.Semantic, "async future"},
	{"synchronized", CategoryAsyncPattern, constraint.Semantic, "synchronized block"},
	{"throws ", CategoryErrorHandling, constraint.Semantic, "checked-exception declaration"},
	{"catch (", CategoryErrorHandling, constraint.Semantic, "catch clause"},
	{"import ", CategoryImports, constraint.Architectural, "import declaration"},
	{"package ", CategoryImports, constraint.Architectural, "package declaration"},
	{"class ", CategoryClassStruct, constraint.TypeSafety, "class declaration"},
	{"interface ", CategoryClassStruct, constraint.TypeSafety, "interface declaration"},
	{"@Deprecated", CategoryMetadata, constraint.Operational, "deprecation annotation"},
	{"@Override", CategoryMetadata, constraint.Operational, "override annotation"},
	{"WeakReference<", CategoryMemoryManagement, constraint.Operational, "weak reference"},
	{"System.gc(", CategoryMemoryManagement, constraint.Operational, "explicit GC request"},
}

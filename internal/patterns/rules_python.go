package patterns

import "github.com/rand/ananke-sub006/internal/constraint"

var pythonRules = Table{
	{"def ", CategoryFunctionDecl, constraint.Syntactic, "function definition"},
	{"lambda ", CategoryFunctionDecl, constraint.Syntactic, "lambda expression"},
	{": Any", CategoryTypeAnnotation, constraint.TypeSafety, "Any-typed annotation"},
	{"Optional[", CategoryTypeAnnotation, constraint.TypeSafety, "Optional annotation"},
	{"async def", CategoryAsyncPattern, constraint.Semantic, "coroutine definition"},
	{"await ", CategoryAsyncPattern, constraint.Semantic, "await expression"},
	{"try:", CategoryErrorHandling, constraint.Semantic, "try block"},
	{"except ", CategoryErrorHandling, constraint.Semantic, "except clause"},
	{"import ", CategoryImports, constraint.Architectural, "module import"},
	{"from ", CategoryImports, constraint.Architectural, "from-import"},
	{"class ", CategoryClassStruct, constraint.TypeSafety, "class definition"},
	{"@dataclass", CategoryClassStruct, constraint.TypeSafety, "dataclass decorator"},
	{"@property", CategoryMetadata, constraint.Operational, "property decorator"},
	{"@staticmethod", CategoryMetadata, constraint.Operational, "staticmethod decorator"},
	{"__del__", CategoryMemoryManagement, constraint.Operational, "finalizer method"},
	{"weakref.", CategoryMemoryManagement, constraint.Operational, "weak reference"},
}

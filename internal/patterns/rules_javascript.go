package patterns

import "github.com/rand/ananke-sub006/internal/constraint"

var javascriptRules = Table{
	{"function ", CategoryFunctionDecl, constraint.Syntactic, "function declaration"},
	{"=> ", CategoryFunctionDecl, constraint.Syntactic, "arrow function"},
	{"typeof ", CategoryTypeAnnotation, constraint.TypeSafety, "runtime type check"},
	{"instanceof ", CategoryTypeAnnotation, constraint.TypeSafety, "prototype type check"},
	{"async ", CategoryAsyncPattern, constraint.Semantic, "async function"},
	{"await ", CategoryAsyncPattern, constraint.Semantic, "await expression"},
	{"try {", CategoryErrorHandling, constraint.Semantic, "try block"},
	{"catch (", CategoryErrorHandling, constraint.Semantic, "catch clause"},
	{"import ", CategoryImports, constraint.Architectural, "ES module import"},
	{"require(", CategoryImports, constraint.Architectural, "CommonJS require"},
	{"class ", CategoryClassStruct, constraint.TypeSafety, "class declaration"},
	{"prototype.", CategoryClassStruct, constraint.TypeSafety, "prototype extension"},
	{"module.exports", CategoryMetadata, constraint.Operational, "CommonJS export"},
	{"'use strict'", CategoryMetadata, constraint.Operational, "strict-mode pragma"},
	{"new WeakMap(", CategoryMemoryManagement, constraint.Operational, "weak map"},
	{"WeakRef(", CategoryMemoryManagement, constraint.Operational, "weak reference"},
}

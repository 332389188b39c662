package extract

import (
	"regexp"

	"github.com/rand/ananke-sub006/internal/ast"
	"github.com/rand/ananke-sub006/internal/constraint"
)

// functionNodeKinds and typeNodeKinds are the per-language AST node kinds
// that name a function/method or a type-like declaration, used by
// ExtractDeclarations. The function-node sets overlap with the hole
// detector's per-language empty-body kind sets in internal/hybrid
// (holeFunctionKinds), since both operations walk the same declaration
// shapes; the two tables are separate and not identical. Kind strings
// target the grammar versions pinned in internal/ast's registry.
var functionNodeKinds = map[ast.Language][]string{
	ast.LangPython:     {"function_definition"},
	ast.LangTypeScript: {"function_declaration", "method_definition", "arrow_function"},
	ast.LangJavaScript: {"function_declaration", "method_definition", "arrow_function"},
	ast.LangRust:       {"function_item"},
	ast.LangZig:        {"function_declaration"},
	ast.LangGo:         {"function_declaration", "method_declaration"},
	ast.LangC:          {"function_definition"},
	ast.LangCpp:        {"function_definition"},
	ast.LangJava:       {"method_declaration", "constructor_declaration"},
}

// The Zig grammar has no container-declaration kind of its own: `const Foo =
// struct { ... }` parses as a variable_declaration wrapping a
// struct_declaration, so the type set lists variable_declaration and
// ExtractDeclarations keeps only the ones that actually wrap a container.
var typeNodeKinds = map[ast.Language][]string{
	ast.LangPython:     {"class_definition"},
	ast.LangTypeScript: {"class_declaration", "interface_declaration", "type_alias_declaration", "enum_declaration"},
	ast.LangJavaScript: {"class_declaration"},
	ast.LangRust:       {"struct_item", "enum_item", "trait_item", "union_item"},
	ast.LangZig:        {"variable_declaration"},
	ast.LangGo:         {"type_spec"},
	ast.LangC:          {"struct_specifier", "enum_specifier", "union_specifier"},
	ast.LangCpp:        {"class_specifier", "struct_specifier", "enum_specifier", "union_specifier"},
	ast.LangJava:       {"class_declaration", "interface_declaration", "enum_declaration"},
}

var zigContainerKinds = map[string]bool{
	"struct_declaration": true,
	"union_declaration":  true,
	"enum_declaration":   true,
}

// zigContainerName returns the identifier of a variable_declaration that
// wraps a Zig container declaration, or "" when the declaration binds
// something other than a container.
func zigContainerName(n *ast.Node) string {
	name := ""
	container := false
	count := n.NamedChildCount()
	for i := uint(0); i < count; i++ {
		child := n.NamedChild(i)
		switch {
		case child.Kind() == "identifier" && name == "":
			name = child.Text()
		case zigContainerKinds[child.Kind()]:
			container = true
		}
	}
	if !container {
		return ""
	}
	return name
}

var pythonClassName = regexp.MustCompile(`^class\s+(\w+)`)

// ExtractDeclarations walks root collecting one constraint per named
// function/method and per named type declaration, per spec.md §4.3's
// "AST-based identifier extraction". Type declarations are emitted as
// type_safety (matching spec.md §8 scenario 2's worked example, "RateLimiter"
// type_safety), function/method declarations as syntactic.
func ExtractDeclarations(root *ast.Node, lang ast.Language) []constraint.Constraint {
	if root.IsNil() {
		return nil
	}

	funcKinds := functionNodeKinds[lang]
	typeKinds := typeNodeKinds[lang]
	allKinds := make([]string, 0, len(funcKinds)+len(typeKinds))
	allKinds = append(allKinds, funcKinds...)
	allKinds = append(allKinds, typeKinds...)
	if len(allKinds) == 0 {
		return nil
	}

	isTypeKind := make(map[string]bool, len(typeKinds))
	for _, k := range typeKinds {
		isTypeKind[k] = true
	}

	byKind := ast.FindByTypes(root, allKinds)

	var out []constraint.Constraint
	for _, kind := range allKinds {
		for _, node := range byKind[kind] {
			typeDecl := isTypeKind[kind]
			var name string
			if lang == ast.LangZig && kind == "variable_declaration" {
				name = zigContainerName(node)
			} else {
				name = declarationName(node, typeDecl)
			}
			if name == "" {
				continue
			}
			c := constraint.Constraint{
				Severity:   constraint.SeverityInfo,
				Name:       name,
				Source:     constraint.SourceASTPattern,
				Confidence: constraint.ConfidenceAST,
				Frequency:  1,
				OriginLine: int(node.StartPoint().Row) + 1,
			}
			if typeDecl {
				c.Kind = constraint.TypeSafety
				c.Description = "Type declaration: " + name
			} else {
				c.Kind = constraint.Syntactic
				c.Description = "Function declaration: " + name
			}
			out = append(out, c)
		}
	}
	return out
}

// declarationName resolves a declaration's identifier via (a) the "name"
// field, (b) a Python class-definition text fallback, (c) a type-vs-term
// fallback scanning named children for type_identifier or identifier.
func declarationName(n *ast.Node, isTypeKind bool) string {
	if nameNode := n.ChildByFieldName("name"); !nameNode.IsNil() {
		return nameNode.Text()
	}

	if n.Kind() == "class_definition" {
		if m := pythonClassName.FindStringSubmatch(n.Text()); m != nil {
			return m[1]
		}
	}

	want := "identifier"
	if isTypeKind {
		want = "type_identifier"
	}
	count := n.NamedChildCount()
	for i := uint(0); i < count; i++ {
		child := n.NamedChild(i)
		if child.Kind() == want {
			return child.Text()
		}
	}
	return ""
}

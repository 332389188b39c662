package extract

import (
	"strings"

	"github.com/rand/ananke-sub006/internal/ast"
)

// typeKW pairs a type-declaration keyword prefix with its TypeDecl.Kind.
type typeKW struct {
	Prefix string
	Kind   string
}

// ExtractSyntaxStructure runs the per-language, comment-stripped, line-level
// extractor for lang over source, producing the staging record that
// ProjectSyntaxStructure turns into summary constraints (spec.md §4.3). An
// unrecognized language yields a zero-value SyntaxStructure.
func ExtractSyntaxStructure(lang ast.Language, source string) SyntaxStructure {
	switch lang {
	case ast.LangGo:
		return extractGo(source)
	case ast.LangTypeScript:
		return extractTypeScriptLike(source, true)
	case ast.LangJavaScript:
		return extractTypeScriptLike(source, false)
	case ast.LangPython:
		return extractPython(source)
	case ast.LangRust:
		return extractRust(source)
	case ast.LangZig:
		return extractZig(source)
	case ast.LangC:
		return extractSignatureBased(source, "#include <", "#include \"", []typeKW{
			{"struct ", "struct"}, {"union ", "union"}, {"enum ", "enum"}, {"typedef ", "type_alias"},
		}, false)
	case ast.LangCpp:
		return extractSignatureBased(source, "#include <", "#include \"", []typeKW{
			{"class ", "class"}, {"struct ", "struct"}, {"union ", "union"}, {"enum ", "enum"},
		}, true)
	case ast.LangJava:
		return extractJava(source)
	default:
		return SyntaxStructure{}
	}
}

func typeDecl(lines []codeLine, i int, kws []typeKW) (TypeDecl, bool) {
	text := lines[i].Text
	for _, kw := range kws {
		if strings.HasPrefix(text, kw.Prefix) {
			name, _ := readIdentifier(text[len(kw.Prefix):])
			if name == "" {
				continue
			}
			return TypeDecl{Name: name, Line: lines[i].Line, Kind: kw.Kind}, true
		}
	}
	return TypeDecl{}, false
}

// extractGo handles "func"/"func (recv)" declarations, "type" declarations,
// and both single-line and parenthesized import blocks.
func extractGo(source string) SyntaxStructure {
	lines := preprocess(source, "//", "/*", "*/")
	var s SyntaxStructure

	inImportBlock := false
	for i := 0; i < len(lines); i++ {
		text := lines[i].Text

		if inImportBlock {
			if text == ")" {
				inImportBlock = false
				continue
			}
			s.Imports = append(s.Imports, ImportDecl{Text: text, Line: lines[i].Line})
			continue
		}
		if text == "import (" {
			inImportBlock = true
			continue
		}
		if strings.HasPrefix(text, "import \"") {
			s.Imports = append(s.Imports, ImportDecl{Text: text, Line: lines[i].Line})
			continue
		}

		if strings.HasPrefix(text, "type ") {
			if td, ok := typeDecl(lines, i, []typeKW{
				{"type ", pickGoTypeKind(text)},
			}); ok {
				s.Types = append(s.Types, td)
			}
			continue
		}

		if !strings.HasPrefix(text, "func ") {
			continue
		}
		rest := text[len("func "):]
		if strings.HasPrefix(rest, "(") {
			rest = strings.TrimSpace(afterMatchingParen(rest))
		}
		name, afterName := readIdentifier(rest)
		if name == "" {
			continue
		}
		paramsAfter := afterMatchingParen(afterName)
		returnType := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(paramsAfter), "{"))

		fn := FunctionDecl{
			Name:             name,
			Line:             lines[i].Line,
			IsAsync:          false,
			IsPublic:         len(name) > 0 && name[0] >= 'A' && name[0] <= 'Z',
			ReturnType:       returnType,
			HasErrorHandling: strings.Contains(returnType, "error"),
		}
		s.Functions = append(s.Functions, fn)
	}
	return s
}

func pickGoTypeKind(text string) string {
	switch {
	case strings.Contains(text, "struct {") || strings.Contains(text, "struct{"):
		return "struct"
	case strings.Contains(text, "interface {") || strings.Contains(text, "interface{"):
		return "interface"
	default:
		return "type_alias"
	}
}

// extractTypeScriptLike covers both TypeScript and JavaScript; typed
// controls whether return-type parsing is attempted (JS source has no type
// annotations to find).
func extractTypeScriptLike(source string, typed bool) SyntaxStructure {
	lines := preprocess(source, "//", "/*", "*/")
	var s SyntaxStructure

	typeKWs := []typeKW{{"class ", "class"}, {"interface ", "interface"}, {"enum ", "enum"}, {"type ", "type_alias"}}

	for i := 0; i < len(lines); i++ {
		text := lines[i].Text

		if strings.HasPrefix(text, "import ") {
			s.Imports = append(s.Imports, ImportDecl{Text: text, Line: lines[i].Line})
			continue
		}
		if strings.Contains(text, "require(") {
			s.Imports = append(s.Imports, ImportDecl{Text: text, Line: lines[i].Line})
			continue
		}

		if td, ok := typeDecl(lines, i, typeKWs); ok {
			s.Types = append(s.Types, td)
			continue
		}

		rest := text
		if strings.HasPrefix(rest, "export ") {
			rest = rest[len("export "):]
		}
		isAsync := false
		if strings.HasPrefix(rest, "async ") {
			isAsync = true
			rest = rest[len("async "):]
		}

		var name, afterName string
		matched := false
		if strings.HasPrefix(rest, "function ") {
			name, afterName = readIdentifier(rest[len("function "):])
			matched = name != ""
		} else if !isControlFlowLine(text) && strings.Contains(text, "(") &&
			strings.HasSuffix(strings.TrimRight(text, " \t"), "{") &&
			!strings.HasPrefix(text, "if") && !strings.HasPrefix(text, "}") {
			parenIdx := strings.Index(text, "(")
			before := strings.TrimSpace(text[:parenIdx])
			candidate := lastIdentifier(before)
			if candidate != "" && !isReservedTSWord(candidate) {
				name = candidate
				afterName = text[parenIdx:]
				matched = true
			}
		}
		if !matched {
			continue
		}

		returnType := ""
		if typed {
			paramsAfter := afterMatchingParen(afterName)
			trimmed := strings.TrimSpace(paramsAfter)
			if strings.HasPrefix(trimmed, ":") {
				body := trimmed[1:]
				if idx := strings.Index(body, "{"); idx != -1 {
					returnType = strings.TrimSpace(body[:idx])
				} else {
					returnType = strings.TrimSpace(body)
				}
			}
		}

		body, _ := captureBraceBody(lines, i)

		s.Functions = append(s.Functions, FunctionDecl{
			Name:             name,
			Line:             lines[i].Line,
			IsAsync:          isAsync,
			IsPublic:         !strings.Contains(text, "private ") && !strings.Contains(text, "#"),
			ReturnType:       returnType,
			HasErrorHandling: strings.Contains(body, "catch ("),
		})
	}
	return s
}

func isReservedTSWord(name string) bool {
	switch name {
	case "if", "for", "while", "switch", "catch", "return", "else":
		return true
	default:
		return false
	}
}

// extractPython handles "def"/"async def", indentation-delimited bodies,
// and import/from-import statements.
func extractPython(source string) SyntaxStructure {
	lines := preprocess(source, "#", "", "")
	var s SyntaxStructure

	for i := 0; i < len(lines); i++ {
		text := lines[i].Text

		if strings.HasPrefix(text, "import ") || strings.HasPrefix(text, "from ") {
			s.Imports = append(s.Imports, ImportDecl{Text: text, Line: lines[i].Line})
			continue
		}
		if td, ok := typeDecl(lines, i, []typeKW{{"class ", "class"}}); ok {
			s.Types = append(s.Types, td)
			continue
		}

		isAsync := false
		rest := text
		if strings.HasPrefix(rest, "async def ") {
			isAsync = true
			rest = rest[len("async def "):]
		} else if strings.HasPrefix(rest, "def ") {
			rest = rest[len("def "):]
		} else {
			continue
		}
		name, afterName := readIdentifier(rest)
		if name == "" {
			continue
		}
		paramsAfter := afterMatchingParen(afterName)
		returnType := returnTypeBetween(paramsAfter, "->", ":")

		body, _ := captureIndentBody(lines, i)
		s.Functions = append(s.Functions, FunctionDecl{
			Name:             name,
			Line:             lines[i].Line,
			IsAsync:          isAsync,
			IsPublic:         !strings.HasPrefix(name, "_"),
			ReturnType:       returnType,
			HasErrorHandling: strings.Contains(body, "raise") || strings.Contains(body, "try:"),
		})
	}
	return s
}

// extractRust handles "pub"/"async"-prefixed "fn" items, "use" imports, and
// struct/enum/trait declarations.
func extractRust(source string) SyntaxStructure {
	lines := preprocess(source, "//", "/*", "*/")
	var s SyntaxStructure

	typeKWs := []typeKW{{"struct ", "struct"}, {"enum ", "enum"}, {"trait ", "trait"}, {"union ", "union"}}

	for i := 0; i < len(lines); i++ {
		text := lines[i].Text

		if strings.HasPrefix(text, "use ") || strings.HasPrefix(text, "extern crate ") {
			s.Imports = append(s.Imports, ImportDecl{Text: text, Line: lines[i].Line})
			continue
		}
		if td, ok := typeDecl(lines, i, typeKWs); ok {
			s.Types = append(s.Types, td)
			continue
		}

		rest := text
		isPublic := false
		isAsync := false
		for {
			switch {
			case strings.HasPrefix(rest, "pub "):
				isPublic = true
				rest = rest[len("pub "):]
			case strings.HasPrefix(rest, "async "):
				isAsync = true
				rest = rest[len("async "):]
			default:
				goto matchFn
			}
		}
	matchFn:
		if !strings.HasPrefix(rest, "fn ") {
			continue
		}
		rest = rest[len("fn "):]
		name, afterName := readIdentifier(rest)
		if name == "" {
			continue
		}
		paramsAfter := afterMatchingParen(afterName)
		trimmed := strings.TrimSpace(paramsAfter)
		returnType := ""
		if strings.HasPrefix(trimmed, "->") {
			rt := trimmed[2:]
			if idx := strings.Index(rt, "{"); idx != -1 {
				returnType = strings.TrimSpace(rt[:idx])
			} else {
				returnType = strings.TrimSpace(rt)
			}
		}

		body, _ := captureBraceBody(lines, i)
		s.Functions = append(s.Functions, FunctionDecl{
			Name:             name,
			Line:             lines[i].Line,
			IsAsync:          isAsync,
			IsPublic:         isPublic,
			ReturnType:       returnType,
			HasErrorHandling: strings.Contains(returnType, "Result") || strings.Contains(body, "?"),
		})
	}
	return s
}

// extractZig handles "pub"-prefixed "fn" declarations and resolves the
// error-union signal by checking only the return-type span between the
// parameter list's close paren and the opening brace (spec.md §9's Open
// Question: the naive whole-line "!" search is too broad).
func extractZig(source string) SyntaxStructure {
	lines := preprocess(source, "//", "", "")
	var s SyntaxStructure

	typeKWs := []typeKW{{"struct ", "struct"}, {"union(", "union"}, {"enum ", "enum"}}

	for i := 0; i < len(lines); i++ {
		text := lines[i].Text

		if strings.HasPrefix(text, "@import(") || strings.HasPrefix(text, "usingnamespace ") {
			s.Imports = append(s.Imports, ImportDecl{Text: text, Line: lines[i].Line})
			continue
		}
		if td, ok := typeDecl(lines, i, typeKWs); ok {
			s.Types = append(s.Types, td)
			continue
		}

		rest := text
		isPublic := false
		if strings.HasPrefix(rest, "pub ") {
			isPublic = true
			rest = rest[len("pub "):]
		}
		if !strings.HasPrefix(rest, "fn ") {
			continue
		}
		rest = rest[len("fn "):]
		name, afterName := readIdentifier(rest)
		if name == "" {
			continue
		}
		paramsAfter := afterMatchingParen(afterName)
		trimmed := strings.TrimSpace(paramsAfter)
		returnType := strings.TrimSpace(strings.TrimSuffix(trimmed, "{"))

		s.Functions = append(s.Functions, FunctionDecl{
			Name:             name,
			Line:             lines[i].Line,
			IsAsync:          false,
			IsPublic:         isPublic,
			ReturnType:       returnType,
			HasErrorHandling: strings.Contains(returnType, "!"),
		})
	}
	return s
}

// extractSignatureBased covers C and C++: no function keyword exists, so a
// line is a candidate declaration when it is not control flow, contains a
// parameter list, and ends with "{". cpp additionally recognizes "throw"/
// "noexcept" as the error-handling signal (the table in spec.md §4.3 lists
// no C signal at all, so C functions always report HasErrorHandling=false).
func extractSignatureBased(source, sysInclude, localInclude string, typeKWs []typeKW, cpp bool) SyntaxStructure {
	lines := preprocess(source, "//", "/*", "*/")
	var s SyntaxStructure

	for i := 0; i < len(lines); i++ {
		text := lines[i].Text

		if strings.HasPrefix(text, sysInclude) || strings.HasPrefix(text, localInclude) {
			s.Imports = append(s.Imports, ImportDecl{Text: text, Line: lines[i].Line})
			continue
		}
		if td, ok := typeDecl(lines, i, typeKWs); ok {
			s.Types = append(s.Types, td)
			continue
		}

		if isControlFlowLine(text) {
			continue
		}
		parenIdx := strings.Index(text, "(")
		if parenIdx <= 0 {
			continue
		}
		if !strings.HasSuffix(strings.TrimRight(text, " \t"), "{") {
			continue
		}
		before := strings.TrimSpace(text[:parenIdx])
		name := lastIdentifier(before)
		if name == "" {
			continue
		}

		var body string
		if cpp {
			body, _ = captureBraceBody(lines, i)
		}

		s.Functions = append(s.Functions, FunctionDecl{
			Name:             name,
			Line:             lines[i].Line,
			IsAsync:          false,
			IsPublic:         !strings.HasPrefix(text, "static "),
			ReturnType:       strings.TrimSpace(before[:len(before)-len(name)]),
			HasErrorHandling: cpp && (strings.Contains(text, "noexcept") || strings.Contains(body, "throw")),
		})
	}
	return s
}

// extractJava handles modifier-prefixed method signatures (no function
// keyword exists in Java either).
func extractJava(source string) SyntaxStructure {
	lines := preprocess(source, "//", "/*", "*/")
	var s SyntaxStructure

	typeKWs := []typeKW{{"class ", "class"}, {"interface ", "interface"}, {"enum ", "enum"}}
	modifiers := []string{"public ", "private ", "protected ", "static ", "final ", "abstract ", "synchronized "}

	for i := 0; i < len(lines); i++ {
		text := lines[i].Text

		if strings.HasPrefix(text, "import ") || strings.HasPrefix(text, "package ") {
			s.Imports = append(s.Imports, ImportDecl{Text: text, Line: lines[i].Line})
			continue
		}

		rest := text
		isPublic := false
		for {
			advanced := false
			for _, m := range modifiers {
				if strings.HasPrefix(rest, m) {
					if m == "public " {
						isPublic = true
					}
					rest = rest[len(m):]
					advanced = true
					break
				}
			}
			if !advanced {
				break
			}
		}

		matchedType := false
		for _, kw := range typeKWs {
			if strings.HasPrefix(rest, kw.Prefix) {
				if name, _ := readIdentifier(rest[len(kw.Prefix):]); name != "" {
					s.Types = append(s.Types, TypeDecl{Name: name, Line: lines[i].Line, Kind: kw.Kind})
				}
				matchedType = true
				break
			}
		}
		if matchedType {
			continue
		}
		if isControlFlowLine(text) {
			continue
		}

		parenIdx := strings.Index(rest, "(")
		if parenIdx <= 0 {
			continue
		}
		if !strings.HasSuffix(strings.TrimRight(text, " \t"), "{") {
			continue
		}
		before := strings.TrimSpace(rest[:parenIdx])
		name := lastIdentifier(before)
		if name == "" {
			continue
		}

		s.Functions = append(s.Functions, FunctionDecl{
			Name:             name,
			Line:             lines[i].Line,
			IsAsync:          false,
			IsPublic:         isPublic,
			ReturnType:       strings.TrimSpace(before[:len(before)-len(name)]),
			HasErrorHandling: strings.Contains(text, "throws "),
		})
	}
	return s
}

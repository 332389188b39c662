package hybrid

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/rand/ananke-sub006/internal/ast"
	"github.com/rand/ananke-sub006/internal/constraint"
)

// holeFunctionKinds lists the function node kinds the empty-body family
// checks. It covers the same declaration shapes as internal/extract's
// functionNodeKinds but is a separate table: it adds
// async_function_definition (Python), function_signature_item (Rust) and
// test_declaration (Zig), and has no C, C++ or Java entries. Kind
// strings target the exact grammar versions pinned in internal/ast's
// registry — in particular the tree-sitter-grammars Zig grammar, whose
// kinds are lowercase (function_declaration, test_declaration, block), not
// the FnProto/TestDecl names older Zig grammars used.
var holeFunctionKinds = map[ast.Language][]string{
	ast.LangPython:     {"function_definition", "async_function_definition"},
	ast.LangTypeScript: {"function_declaration", "method_definition", "arrow_function"},
	ast.LangJavaScript: {"function_declaration", "method_definition", "arrow_function"},
	ast.LangRust:       {"function_item", "function_signature_item"},
	ast.LangZig:        {"function_declaration", "test_declaration"},
	ast.LangGo:         {"function_declaration", "method_declaration"},
}

// DetectHoles walks a parsed AST looking for the four hole families from
// spec.md §4.4: empty function bodies, unimplemented-method markers,
// incomplete match/switch statements, and missing type annotations. file is
// recorded on each Hole's Location and folded into its content-addressed
// ID; it may be empty for callers that don't track a path.
func DetectHoles(root *ast.Node, lang ast.Language, file string) []constraint.Hole {
	if root.IsNil() {
		return nil
	}

	var out []constraint.Hole
	out = append(out, detectEmptyBodies(root, lang, file)...)
	out = append(out, detectUnimplemented(root, lang, file)...)
	out = append(out, detectIncompleteMatch(root, lang, file)...)
	out = append(out, detectMissingAnnotations(root, lang, file)...)
	return out
}

// detectEmptyBodies implements spec.md §4.4 family 1.
func detectEmptyBodies(root *ast.Node, lang ast.Language, file string) []constraint.Hole {
	kinds := holeFunctionKinds[lang]
	if len(kinds) == 0 {
		return nil
	}

	var out []constraint.Hole
	byKind := ast.FindByTypes(root, kinds)
	for _, kind := range kinds {
		for _, n := range byKind[kind] {
			body := n.ChildByFieldName("body")
			if body.IsNil() && lang == ast.LangZig {
				body = firstChildOfKind(n, "block")
			}
			if body.IsNil() {
				continue
			}
			if !isEmptyBody(body.Text(), lang) {
				continue
			}
			out = append(out, newHole(n, file, constraint.KindEmptyFunctionBody, constraint.ScaleFunction, 0.95, "empty function body"))
		}
	}
	return out
}

// isEmptyBody applies spec.md §4.4's per-language emptiness rules to the
// text between (and including, for some languages) a function body node.
func isEmptyBody(text string, lang ast.Language) bool {
	trimmed := strings.TrimSpace(text)

	switch lang {
	case ast.LangPython:
		return trimmed == "pass" || trimmed == "..." || trimmed == ""
	case ast.LangTypeScript, ast.LangJavaScript, ast.LangZig:
		inner := strings.TrimSpace(stripOuterBraces(trimmed))
		if inner == "" {
			return true
		}
		return lang == ast.LangZig && inner == "unreachable"
	case ast.LangRust:
		inner := strings.TrimSpace(stripOuterBraces(trimmed))
		if inner == "" {
			return true
		}
		return strings.Contains(inner, "unimplemented!()") || strings.Contains(inner, "todo!()")
	default:
		return false
	}
}

// stripOuterBraces removes a single layer of matching `{`/`}` delimiters,
// returning the interior text unmodified when no such pair wraps the
// input.
func stripOuterBraces(s string) string {
	if len(s) >= 2 && s[0] == '{' && s[len(s)-1] == '}' {
		return s[1 : len(s)-1]
	}
	return s
}

// firstChildOfKind returns the first named child of n whose Kind matches,
// or nil. Used for Zig function declarations, whose body block isn't bound
// to a "body" field.
func firstChildOfKind(n *ast.Node, kind string) *ast.Node {
	count := n.NamedChildCount()
	for i := uint(0); i < count; i++ {
		child := n.NamedChild(i)
		if child.Kind() == kind {
			return child
		}
	}
	return nil
}

// unimplementedRule pairs a node kind with the substrings that mark it as
// an unimplemented-stub marker, plus the confidence spec.md §4.4 family 2
// assigns to that language.
type unimplementedRule struct {
	nodeKind   string
	substrings []string
	confidence float64
}

var unimplementedRules = map[ast.Language]unimplementedRule{
	ast.LangPython:     {"raise_statement", []string{"NotImplementedError"}, 0.98},
	ast.LangRust:       {"macro_invocation", []string{"unimplemented!", "todo!"}, 0.98},
	ast.LangTypeScript: {"throw_statement", []string{"TODO", "Not implemented", "NotImplementedError"}, 0.90},
	ast.LangJavaScript: {"throw_statement", []string{"TODO", "Not implemented", "NotImplementedError"}, 0.90},
	ast.LangZig:        {"builtin_function", []string{"@panic"}, 0.95},
}

// detectUnimplemented implements spec.md §4.4 family 2.
func detectUnimplemented(root *ast.Node, lang ast.Language, file string) []constraint.Hole {
	rule, ok := unimplementedRules[lang]
	if !ok {
		return nil
	}

	var out []constraint.Hole
	for _, n := range ast.FindByType(root, rule.nodeKind) {
		text := n.Text()
		if !containsAny(text, rule.substrings...) {
			continue
		}
		if lang == ast.LangZig {
			// @panic must itself carry a TODO/"not implemented" marker, not
			// merely the general substring list used by other languages.
			lower := strings.ToLower(text)
			if !strings.Contains(lower, "todo") && !strings.Contains(lower, "not implemented") {
				continue
			}
		}
		out = append(out, newHole(n, file, constraint.KindUnimplementedMethod, scaleFor(rule.nodeKind), rule.confidence, "unimplemented stub"))
	}
	return out
}

func containsAny(text string, substrings ...string) bool {
	for _, s := range substrings {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

func scaleFor(nodeKind string) constraint.HoleScale {
	if nodeKind == "raise_statement" || nodeKind == "throw_statement" {
		return constraint.ScaleStatement
	}
	return constraint.ScaleExpression
}

// detectIncompleteMatch implements spec.md §4.4 family 3.
func detectIncompleteMatch(root *ast.Node, lang ast.Language, file string) []constraint.Hole {
	var nodeKind string
	var confidence float64
	var check func(text string) bool

	switch lang {
	case ast.LangPython:
		nodeKind, confidence = "match_statement", 0.70
		check = func(text string) bool { return !strings.Contains(text, "case _:") }
	case ast.LangRust:
		nodeKind, confidence = "match_expression", 0.95
		check = func(text string) bool { return strings.Contains(text, "_ =>") && strings.Contains(text, "todo!()") }
	case ast.LangTypeScript:
		nodeKind, confidence = "switch_statement", 0.65
		check = func(text string) bool { return !strings.Contains(text, "default:") }
	case ast.LangJavaScript:
		nodeKind, confidence = "switch_statement", 0.65
		check = func(text string) bool { return !strings.Contains(text, "default:") }
	case ast.LangZig:
		nodeKind, confidence = "switch_expression", 0.90
		check = func(text string) bool { return strings.Contains(text, "else =>") && strings.Contains(text, "unreachable") }
	default:
		return nil
	}

	var out []constraint.Hole
	for _, n := range ast.FindByType(root, nodeKind) {
		if !check(n.Text()) {
			continue
		}
		out = append(out, newHole(n, file, constraint.KindIncompleteMatch, constraint.ScaleStatement, confidence, "non-exhaustive match"))
	}
	return out
}

// detectMissingAnnotations implements spec.md §4.4 family 4.
func detectMissingAnnotations(root *ast.Node, lang ast.Language, file string) []constraint.Hole {
	var nodeKind, marker string
	var confidence float64

	switch lang {
	case ast.LangZig:
		nodeKind, marker, confidence = "parameter", "anytype", 0.75
	case ast.LangRust:
		nodeKind, marker, confidence = "parameter", ": _", 0.80
	default:
		return nil
	}

	var out []constraint.Hole
	for _, n := range ast.FindByType(root, nodeKind) {
		if !strings.Contains(n.Text(), marker) {
			continue
		}
		out = append(out, newHole(n, file, constraint.KindMissingTypeAnnotation, constraint.ScaleExpression, confidence, "missing type annotation"))
	}
	return out
}

// newHole builds a Hole located at n, with a content-addressed ID derived
// from (file, start line, start column) per spec.md §3's stability
// invariant — the same triple always hashes to the same ID, independent of
// run-to-run allocation order.
func newHole(n *ast.Node, file string, kind constraint.HoleKind, scale constraint.HoleScale, confidence float64, context string) constraint.Hole {
	start := n.StartPoint()
	end := n.EndPoint()
	startLine := int(start.Row) + 1
	startCol := int(start.Column) + 1

	return constraint.Hole{
		ID:     holeID(file, startLine, startCol),
		Scale:  scale,
		Origin: constraint.OriginInferred,
		Location: constraint.Location{
			File:      file,
			StartLine: startLine,
			StartCol:  startCol,
			EndLine:   int(end.Row) + 1,
			EndCol:    int(end.Column) + 1,
		},
		Kind:       kind,
		Context:    context,
		Confidence: confidence,
	}
}

// holeID hashes (file, startLine, startCol) with xxhash, the same hasher
// internal/cache uses for its cache keys, giving a stable 64-bit ID per
// spec.md §3 and §8's "h.id depends only on (file_path, start_line,
// start_column) and is stable across runs" invariant.
func holeID(file string, startLine, startCol int) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(file)
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(strconv.Itoa(startLine))
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(strconv.Itoa(startCol))
	return h.Sum64()
}

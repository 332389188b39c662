package ast

import "github.com/rand/ananke-sub006/internal/cerrors"

// Language is a normalized, canonical language tag. External callers may
// pass any tag in the accepted set from spec.md §6; Normalize maps the
// short forms onto these canonical values before dispatch.
type Language string

const (
	LangTypeScript Language = "typescript"
	LangJavaScript Language = "javascript"
	LangPython     Language = "python"
	LangRust       Language = "rust"
	LangGo         Language = "go"
	LangZig        Language = "zig"
	LangC          Language = "c"
	LangCpp        Language = "cpp"
	LangJava       Language = "java"
)

// aliases maps every accepted tag from spec.md §6 to its canonical form.
// "ts" and "py" normalize to "typescript" and "python"; tsx/jsx sources are
// still tagged "typescript"/"javascript" (the grammar distinction is
// handled internally by the parser, not exposed as a separate tag).
var aliases = map[string]Language{
	"typescript": LangTypeScript,
	"ts":         LangTypeScript,
	"tsx":        LangTypeScript,
	"javascript": LangJavaScript,
	"js":         LangJavaScript,
	"jsx":        LangJavaScript,
	"python":     LangPython,
	"py":         LangPython,
	"rust":       LangRust,
	"rs":         LangRust,
	"go":         LangGo,
	"zig":        LangZig,
	"c":          LangC,
	"cpp":        LangCpp,
	"c++":        LangCpp,
	"java":       LangJava,
}

// Normalize maps a raw, case-sensitive language tag onto its canonical
// Language, reporting ErrorUnsupportedLanguage if the tag is not in the
// accepted set.
func Normalize(tag string) (Language, error) {
	if lang, ok := aliases[tag]; ok {
		return lang, nil
	}
	return "", cerrors.New(cerrors.ErrorUnsupportedLanguage, "ast.Normalize", nil).WithLanguage(tag)
}

// Canonical maps tag onto its canonical Language when tag is in the
// accepted set, and passes unrecognized tags through unchanged. Whether an
// unsupported tag is an error is a per-strategy decision that belongs to
// the orchestrator, not to tag normalization.
func Canonical(tag string) Language {
	if lang, ok := aliases[tag]; ok {
		return lang
	}
	return Language(tag)
}

// IsSupported reports whether tag is in the accepted set without
// allocating an error.
func IsSupported(tag string) bool {
	_, ok := aliases[tag]
	return ok
}

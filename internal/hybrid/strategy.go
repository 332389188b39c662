// Package hybrid implements the orchestrator that selects between the AST
// front end (internal/ast, internal/extract) and the pattern fallback
// (internal/patterns) per spec.md §4.4, merges their output with
// deduplication, and walks a parsed AST to find semantic holes.
package hybrid

import (
	"fmt"

	"github.com/rand/ananke-sub006/internal/constraint"
	"github.com/rand/ananke-sub006/internal/intern"
)

// Strategy selects which extraction engines the orchestrator runs for a
// given call. Selection is always explicit — there is no implicit
// per-language default baked into Extract itself.
type Strategy string

const (
	// TreeSitterOnly runs only the AST extractors. If the language is
	// unsupported or a parse produces a damaged tree, the result carries no
	// constraints rather than silently falling back.
	TreeSitterOnly Strategy = "tree_sitter_only"
	// PatternOnly runs only the text-based extractors (line-based
	// SyntaxStructure projection plus the literal pattern matcher),
	// ignoring tree-sitter entirely even when the language is supported.
	PatternOnly Strategy = "pattern_only"
	// TreeSitterWithFallback is the default: try AST extraction first, and
	// only run pattern extraction if AST extraction is unavailable or the
	// parsed tree is damaged.
	TreeSitterWithFallback Strategy = "tree_sitter_with_fallback"
	// Combined always runs both engines and merges their output, with the
	// AST-sourced entry winning any (name, kind) collision.
	Combined Strategy = "combined"
)

// ParseStrategy maps a config-file or request-level strategy name (as
// written in `.ananke.kdl` or Config.DefaultStrategy) onto a Strategy
// constant. An unrecognized name is an error rather than a silent fallback,
// since spec.md requires strategy selection to always be explicit
// somewhere in the call chain — a typo'd config value must not quietly
// become tree_sitter_with_fallback.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(name) {
	case TreeSitterOnly, PatternOnly, TreeSitterWithFallback, Combined:
		return Strategy(name), nil
	default:
		return "", fmt.Errorf("hybrid: unknown strategy %q", name)
	}
}

// ExtractionResult is the orchestrator's return value: the unified
// constraint list plus enough metadata for a caller to understand which
// engines actually ran (spec.md §4.4's "records which strategy was used and
// whether tree-sitter was available, with an optional error string").
type ExtractionResult struct {
	Constraints         []constraint.Constraint
	StrategyUsed        Strategy
	TreeSitterAvailable bool
	TreeSitterErrors    string
	// InternStats is populated only by ExtractWithInternStats; every other
	// path leaves it at its zero value, since interner statistics are an
	// opt-in supplement (spec.md §4.5 requires the interner track them, but
	// names no operation for surfacing them on every call).
	InternStats *intern.Stats
}

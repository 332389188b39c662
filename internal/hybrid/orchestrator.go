package hybrid

import (
	"github.com/rand/ananke-sub006/internal/arena"
	"github.com/rand/ananke-sub006/internal/ast"
	"github.com/rand/ananke-sub006/internal/cache"
	"github.com/rand/ananke-sub006/internal/clog"
	"github.com/rand/ananke-sub006/internal/constraint"
	"github.com/rand/ananke-sub006/internal/extract"
	"github.com/rand/ananke-sub006/internal/intern"
	"github.com/rand/ananke-sub006/internal/patterns"
)

// Orchestrator owns the parser and interner a single extraction run needs.
// Per spec.md §5's ownership summary, one Orchestrator is meant to back one
// run (or one caller-managed batch) — it is not a process-wide singleton.
type Orchestrator struct {
	parser     *ast.Parser
	interner   *intern.StringInterner
	cache      *cache.Cache[ExtractionResult]
	matchArena *arena.Arena[patterns.Match]
}

// New creates an Orchestrator with its own parser, interner, extraction
// cache, and per-run pattern-match scratch arena. Per §5's concurrency
// model, none of these are shared across Orchestrators — independent runs
// must each own their own instance.
func New() *Orchestrator {
	return &Orchestrator{
		parser:     ast.NewParser(),
		interner:   intern.New(),
		cache:      cache.New[ExtractionResult](cache.DefaultCapacity),
		matchArena: arena.NewDefault[patterns.Match](),
	}
}

// Close releases the parser's cached tree-sitter resources.
func (o *Orchestrator) Close() {
	o.parser.Close()
}

// Interner exposes the orchestrator's string interner for callers that want
// its Stats() after a batch.
func (o *Orchestrator) Interner() *intern.StringInterner {
	return o.interner
}

// Extract runs strategy against source in the given language, per spec.md
// §4.4.
func (o *Orchestrator) Extract(source []byte, lang ast.Language, strategy Strategy) ExtractionResult {
	switch strategy {
	case TreeSitterOnly:
		cs, available, errMsg := o.astConstraints(source, lang)
		return ExtractionResult{
			Constraints:         o.internAll(cs),
			StrategyUsed:        strategy,
			TreeSitterAvailable: available,
			TreeSitterErrors:    errMsg,
		}

	case PatternOnly:
		cs := o.patternConstraints(source, lang)
		return ExtractionResult{
			Constraints:         o.internAll(cs),
			StrategyUsed:        strategy,
			TreeSitterAvailable: false,
		}

	case Combined:
		astCS, available, errMsg := o.astConstraints(source, lang)
		patternCS := o.patternConstraints(source, lang)
		merged := mergeDedup(astCS, patternCS)
		return ExtractionResult{
			Constraints:         o.internAll(merged),
			StrategyUsed:        strategy,
			TreeSitterAvailable: available,
			TreeSitterErrors:    errMsg,
		}

	case TreeSitterWithFallback:
		fallthrough
	default:
		astCS, available, errMsg := o.astConstraints(source, lang)
		if available && errMsg == "" {
			return ExtractionResult{
				Constraints:         o.internAll(astCS),
				StrategyUsed:        TreeSitterWithFallback,
				TreeSitterAvailable: true,
			}
		}
		clog.Debugf("hybrid: tree-sitter unavailable for %s (%s), falling back to pattern extraction", lang, errMsg)
		cs := o.patternConstraints(source, lang)
		// An unsupported language is not an error under this strategy — the
		// pattern path is the intended engine for it. Only genuine parse
		// damage on a supported language is recorded.
		if !ast.IsSupported(string(lang)) {
			errMsg = ""
		}
		return ExtractionResult{
			Constraints:         o.internAll(cs),
			StrategyUsed:        TreeSitterWithFallback,
			TreeSitterAvailable: available,
			TreeSitterErrors:    errMsg,
		}
	}
}

// ExtractCached wraps Extract with the extraction cache from spec.md §4.5
// and §9: on a hit for the exact (source, language, strategy) triple, the
// cached ExtractionResult is returned without re-running any extractor.
func (o *Orchestrator) ExtractCached(source []byte, lang ast.Language, strategy Strategy) ExtractionResult {
	key := cache.Key{Source: string(source), Language: string(lang), Strategy: string(strategy)}
	if cached, ok := o.cache.Get(key); ok {
		return cached
	}
	result := o.Extract(source, lang, strategy)
	o.cache.Put(key, result)
	return result
}

// CacheStats exposes the extraction cache's hit/miss/eviction counters.
func (o *Orchestrator) CacheStats() cache.Stats {
	return o.cache.Stats()
}

// InternStats exposes the interner's unique-string and bytes-saved
// counters, per SPEC_FULL.md's supplemented InternStats feature.
func (o *Orchestrator) InternStats() intern.Stats {
	return o.interner.Stats()
}

// ExtractWithInternStats runs Extract and additionally populates the
// result's InternStats field with a snapshot of the interner's counters
// taken after this call. The counters are cumulative over every call made
// on this Orchestrator; they are not reset per call.
func (o *Orchestrator) ExtractWithInternStats(source []byte, lang ast.Language, strategy Strategy) ExtractionResult {
	result := o.Extract(source, lang, strategy)
	stats := o.interner.Stats()
	result.InternStats = &stats
	return result
}

// DetectHoles parses source as lang and walks the resulting AST for
// semantic holes per spec.md §4.4. file is threaded through to each Hole's
// Location and content-addressed ID. Unsupported languages yield an empty,
// non-nil-error-free result: hole detection has no pattern-only fallback,
// since every hole family is defined in terms of AST node kinds.
func (o *Orchestrator) DetectHoles(source []byte, lang ast.Language, file string) ([]constraint.Hole, error) {
	if !ast.IsSupported(string(lang)) {
		return nil, nil
	}
	tree, err := o.parser.Parse(lang, source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	return DetectHoles(tree.Root(), lang, file), nil
}

// astConstraints runs the C1/C3 AST path: parse, then declaration
// extraction plus the type-annotation analyzer. available is false, and
// errMsg non-empty, whenever parsing failed outright (unsupported language)
// or the resulting tree is structurally damaged (root.HasError()).
func (o *Orchestrator) astConstraints(source []byte, lang ast.Language) (cs []constraint.Constraint, available bool, errMsg string) {
	if !ast.IsSupported(string(lang)) {
		return nil, false, "unsupported language: " + string(lang)
	}

	tree, err := o.parser.Parse(lang, source)
	if err != nil {
		return nil, false, err.Error()
	}
	defer tree.Close()

	root := tree.Root()
	if root.HasError() {
		return nil, false, "parse tree contains errors"
	}

	cs = append(cs, extract.ExtractDeclarations(root, lang)...)
	cs = append(cs, extract.ProjectTypeAnnotations(extract.AnalyzeTypeAnnotations(root, lang))...)
	return cs, true, ""
}

// patternConstraints runs the C2/C3 text path: the line-based
// SyntaxStructure projection plus the literal pattern-table matcher.
func (o *Orchestrator) patternConstraints(source []byte, lang ast.Language) []constraint.Constraint {
	var cs []constraint.Constraint

	structure := extract.ExtractSyntaxStructure(lang, string(source))
	cs = append(cs, extract.ProjectSyntaxStructure(structure)...)

	table := patterns.TableFor(lang)
	if table != nil {
		matcher := patterns.NewMatcher(table)
		buf := o.matchArena.Get(len(table))
		matches := matcher.FindMatchesInto(source, buf)
		cs = append(cs, patterns.ToConstraints(matches)...)
		o.matchArena.Put(matches)
	}

	return cs
}

// mergeDedup implements spec.md §4.4's Combined-mode merge: pattern
// constraints are folded into the AST set, skipping any whose (name, kind)
// pair already appears among the AST constraints. The AST-sourced entry
// always wins a collision; confidence/description differences are
// immaterial to the dedup decision itself. The AST set is deduplicated on
// the same key, so two same-named declarations (e.g. methods on different
// classes) collapse to the first occurrence.
func mergeDedup(astCS, patternCS []constraint.Constraint) []constraint.Constraint {
	seen := make(map[constraint.DedupKey]bool, len(astCS))
	out := make([]constraint.Constraint, 0, len(astCS)+len(patternCS))

	for _, c := range astCS {
		if seen[c.Key()] {
			continue
		}
		seen[c.Key()] = true
		out = append(out, c)
	}
	for _, c := range patternCS {
		if seen[c.Key()] {
			continue
		}
		seen[c.Key()] = true
		out = append(out, c)
	}
	return out
}

// internAll interns every constraint's Name and Description, per spec.md
// §4.4's "String ownership in Combined mode" — applied uniformly across all
// strategies since every Extract call is meant to own its strings this way,
// not just Combined's merge.
func (o *Orchestrator) internAll(cs []constraint.Constraint) []constraint.Constraint {
	for i := range cs {
		cs[i].Name = o.interner.Intern(cs[i].Name)
		cs[i].Description = o.interner.Intern(cs[i].Description)
	}
	return cs
}

// Package ananke is the package-root convenience API over the extraction
// core: a single Extract/DetectHoles pair for one-off callers, and
// ExtractBatch for running many independent (source, language) extractions
// concurrently. Per spec.md §5, batch concurrency is coarse-grained — each
// request gets its own Orchestrator (own parser, interner, and cache), and
// nothing is shared between them.
package ananke

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/rand/ananke-sub006/internal/ast"
	"github.com/rand/ananke-sub006/internal/config"
	"github.com/rand/ananke-sub006/internal/constraint"
	"github.com/rand/ananke-sub006/internal/hybrid"
)

// Request is one unit of batch work: a source text tagged with a language
// and a strategy.
type Request struct {
	Source   []byte
	Language string
	Strategy hybrid.Strategy
}

// Result pairs a Request's outcome with its index in the original batch, so
// callers can correlate results back to requests after concurrent
// execution reorders completion.
type Result struct {
	Index      int
	Extraction hybrid.ExtractionResult
	Err        error
}

// Extract normalizes language, builds a short-lived Orchestrator, and runs
// a single strategy against source. An unsupported language tag is not a Go
// error: the orchestrator resolves it per strategy, yielding an empty
// result under the fallback-capable strategies and an unsupported-language
// string in the result's TreeSitterErrors under TreeSitterOnly. The error
// return is reserved for genuinely fatal conditions. Callers that issue
// many extractions should prefer ExtractBatch or construct their own
// long-lived hybrid.Orchestrator (via o := hybrid.New(); defer o.Close())
// to avoid re-building parsers per call.
func Extract(source []byte, language string, strategy hybrid.Strategy) (hybrid.ExtractionResult, error) {
	o := hybrid.New()
	defer o.Close()
	return o.Extract(source, ast.Canonical(language), strategy), nil
}

// ExtractDefault is Extract, but sources its Strategy from cfg.DefaultStrategy
// instead of requiring the caller to pass one — the config-driven default
// SPEC_FULL.md adds alongside Extract's always-explicit contract. An unknown
// DefaultStrategy value in cfg is reported as an error rather than silently
// falling back to TreeSitterWithFallback.
func ExtractDefault(cfg *config.Config, source []byte, language string) (hybrid.ExtractionResult, error) {
	strategy, err := hybrid.ParseStrategy(cfg.DefaultStrategy)
	if err != nil {
		return hybrid.ExtractionResult{}, err
	}
	return Extract(source, language, strategy)
}

// DetectHoles normalizes language and walks a freshly parsed AST for
// semantic holes. file is threaded through to each Hole's Location and ID.
// An unsupported language tag yields an empty hole list and no error, since
// every hole family is defined in terms of AST node kinds.
func DetectHoles(source []byte, language, file string) ([]constraint.Hole, error) {
	o := hybrid.New()
	defer o.Close()
	return o.DetectHoles(source, ast.Canonical(language), file)
}

// ExtractBatch runs every request concurrently, each against its own
// Orchestrator, and returns one Result per request in the same order as
// requests (Result.Index duplicates the slice position for callers that
// reorder or filter the return value). An unrecognized language tag is not
// a per-request error — the request's Extraction reports it per strategy,
// like Extract does; Result.Err is reserved for fatal conditions. ctx
// cancellation stops launching new requests and the function returns the
// context's error.
func ExtractBatch(ctx context.Context, requests []Request) ([]Result, error) {
	results := make([]Result, len(requests))
	g, gctx := errgroup.WithContext(ctx)

	for i, req := range requests {
		i, req := i, req
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			o := hybrid.New()
			defer o.Close()
			results[i] = Result{Index: i, Extraction: o.Extract(req.Source, ast.Canonical(req.Language), req.Strategy)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// VerifyGrammars checks cfg's pinned grammar versions against the grammars
// this binary was actually built with, per spec.md §6's "fail loudly on
// version mismatch" requirement. It returns one human-readable mismatch
// string per pinned-but-wrong-or-missing language; a nil/empty result means
// every pin (if any) matched.
func VerifyGrammars(cfg *config.Config) []string {
	actual := make(map[string]string, len(ast.GrammarVersions()))
	for lang, version := range ast.GrammarVersions() {
		actual[string(lang)] = version
	}
	return cfg.VerifyGrammars(actual)
}

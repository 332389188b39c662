// Package config loads the optional `.ananke.kdl` configuration file: the
// default extraction strategy, the extraction cache's capacity, and the
// grammar versions the running binary expects to be pinned against.
// Adapted from the teacher's internal/config/kdl_config.go — same
// kdl.Parse-then-walk-Nodes shape, same first*Arg helper family — retargeted
// from project/index/search sections onto this core's own settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// Config holds the ambient settings a caller may tune without recompiling.
type Config struct {
	// DefaultStrategy names the hybrid.Strategy to use when a caller asks
	// for the convenience API without specifying one explicitly. It is a
	// string rather than hybrid.Strategy to keep this package independent
	// of internal/hybrid.
	DefaultStrategy string
	// CacheCapacity bounds the extraction cache (internal/cache). Zero
	// means "use internal/cache.DefaultCapacity".
	CacheCapacity int
	// GrammarVersions pins the expected tree-sitter grammar version per
	// language tag, for VerifyGrammars to check against
	// internal/ast.GrammarVersions() at startup (spec.md §6: "pin grammar
	// versions and document the exact node-type set it targets").
	GrammarVersions map[string]string
}

// Default returns the configuration used when no `.ananke.kdl` file is
// present.
func Default() *Config {
	return &Config{
		DefaultStrategy: "tree_sitter_with_fallback",
		CacheCapacity:   0,
		GrammarVersions: map[string]string{},
	}
}

// Load reads `.ananke.kdl` from dir, returning Default() if the file does
// not exist.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ".ananke.kdl")
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(string(content))
}

// Parse decodes KDL text into a Config, starting from Default() so any
// section the document omits keeps its default value.
func Parse(content string) (*Config, error) {
	cfg := Default()

	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("config: parse KDL: %w", err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "strategy":
			if s, ok := firstStringArg(n); ok {
				cfg.DefaultStrategy = s
			}
		case "cache":
			for _, cn := range n.Children {
				if nodeName(cn) == "capacity" {
					if v, ok := firstIntArg(cn); ok {
						cfg.CacheCapacity = v
					}
				}
			}
		case "grammars":
			for _, cn := range n.Children {
				lang := nodeName(cn)
				if lang == "" {
					continue
				}
				if v, ok := firstStringArg(cn); ok {
					cfg.GrammarVersions[lang] = v
				}
			}
		}
	}

	return cfg, nil
}

// VerifyGrammars compares cfg's pinned versions (if any are set) against
// actual, the live grammar versions internal/ast.GrammarVersions() reports.
// A language pinned in cfg but absent or mismatched in actual is reported
// as a mismatch string; an unpinned language is not an error (pinning is
// opt-in per spec.md §9).
func (c *Config) VerifyGrammars(actual map[string]string) []string {
	var mismatches []string
	for lang, want := range c.GrammarVersions {
		got, ok := actual[lang]
		if !ok {
			mismatches = append(mismatches, fmt.Sprintf("%s: pinned to %s but no grammar registered", lang, want))
			continue
		}
		if got != want {
			mismatches = append(mismatches, fmt.Sprintf("%s: pinned to %s, built against %s", lang, want, got))
		}
	}
	return mismatches
}

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

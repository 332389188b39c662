package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, "tree_sitter_with_fallback", cfg.DefaultStrategy)
	assert.Equal(t, 0, cfg.CacheCapacity)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse(`
strategy "combined"
cache {
    capacity 512
}
grammars {
    python "v0.23.6"
    rust "v0.23.0"
}
`)
	require.NoError(t, err)
	assert.Equal(t, "combined", cfg.DefaultStrategy)
	assert.Equal(t, 512, cfg.CacheCapacity)
	assert.Equal(t, "v0.23.6", cfg.GrammarVersions["python"])
}

func TestVerifyGrammars_DetectsMismatch(t *testing.T) {
	cfg := Default()
	cfg.GrammarVersions["rust"] = "v0.23.0"

	mismatches := cfg.VerifyGrammars(map[string]string{"rust": "v0.24.0"})
	require.Len(t, mismatches, 1)
	assert.Contains(t, mismatches[0], "rust")
}

func TestVerifyGrammars_NoMismatchWhenUnpinned(t *testing.T) {
	cfg := Default()
	assert.Empty(t, cfg.VerifyGrammars(map[string]string{"rust": "v0.24.0"}))
}

func TestLoad_MissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default().DefaultStrategy, cfg.DefaultStrategy)
}

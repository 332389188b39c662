package cerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractionError_ErrorMessageIncludesUnderlying(t *testing.T) {
	underlying := errors.New("boom")
	e := New(ErrorParse, "parse", underlying).WithLanguage("rust")

	assert.Contains(t, e.Error(), "parse")
	assert.Contains(t, e.Error(), "rust")
	assert.Contains(t, e.Error(), "boom")
}

func TestExtractionError_ErrorMessageWithoutUnderlying(t *testing.T) {
	e := New(ErrorMalformedRequest, "validate", nil).WithLanguage("go")
	assert.NotContains(t, e.Error(), "<nil>")
}

func TestExtractionError_UnwrapReturnsUnderlying(t *testing.T) {
	underlying := errors.New("boom")
	e := New(ErrorParse, "parse", underlying)
	assert.Same(t, underlying, errors.Unwrap(e))
}

func TestExtractionError_IsFatalOnlyForAllocation(t *testing.T) {
	assert.True(t, New(ErrorAllocation, "alloc", nil).IsFatal())
	assert.False(t, New(ErrorParse, "parse", nil).IsFatal())
	assert.False(t, New(ErrorUnsupportedLanguage, "parse", nil).IsFatal())
	assert.False(t, New(ErrorMalformedRequest, "parse", nil).IsFatal())
}

func TestExtractionError_WithRecoverableSetsFlag(t *testing.T) {
	e := New(ErrorParse, "parse", nil).WithRecoverable(true)
	assert.True(t, e.Recoverable)
}

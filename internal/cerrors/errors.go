// Package cerrors defines the error taxonomy from spec.md §7, adapted from
// the teacher's internal/errors package (typed ErrorType constants, a
// context-carrying struct, fluent With* builders) and re-themed around
// extraction rather than indexing.
package cerrors

import "fmt"

// ErrorType classifies an extraction-time error per spec.md §7.
type ErrorType string

const (
	// ErrorUnsupportedLanguage: language tag not in the accepted set.
	ErrorUnsupportedLanguage ErrorType = "unsupported_language"
	// ErrorParse: tree-sitter root.HasError() is true.
	ErrorParse ErrorType = "parse"
	// ErrorAllocation: fatal, propagates to the caller.
	ErrorAllocation ErrorType = "allocation_failure"
	// ErrorMalformedRequest: empty source, negative offsets, etc.
	ErrorMalformedRequest ErrorType = "malformed_request"
)

// ExtractionError carries the type and context of a recoverable or fatal
// error encountered while extracting constraints or holes.
type ExtractionError struct {
	Type        ErrorType
	Language    string
	Operation   string
	Underlying  error
	Recoverable bool
}

// New creates an ExtractionError for op, wrapping err.
func New(errType ErrorType, op string, err error) *ExtractionError {
	return &ExtractionError{Type: errType, Operation: op, Underlying: err}
}

// WithLanguage records which language tag was being processed.
func (e *ExtractionError) WithLanguage(lang string) *ExtractionError {
	e.Language = lang
	return e
}

// WithRecoverable marks whether the core can fall back instead of failing
// the whole call.
func (e *ExtractionError) WithRecoverable(recoverable bool) *ExtractionError {
	e.Recoverable = recoverable
	return e
}

func (e *ExtractionError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s (%s): %v", e.Type, e.Operation, e.Language, e.Underlying)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Type, e.Operation, e.Language)
}

func (e *ExtractionError) Unwrap() error {
	return e.Underlying
}

// IsFatal reports whether an error must propagate rather than being
// absorbed into a degraded result (spec.md §7: allocation failures are
// always fatal; everything else is recoverable when a fallback exists).
func (e *ExtractionError) IsFatal() bool {
	return e.Type == ErrorAllocation
}

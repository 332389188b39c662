package extract

import (
	"fmt"
	"strings"

	"github.com/rand/ananke-sub006/internal/constraint"
)

// ProjectSyntaxStructure turns a SyntaxStructure into the summary
// constraints from spec.md §4.3's table. A condition's constraint is
// emitted only when its count is greater than zero (or, for typed_ratio,
// greater than 0.5).
func ProjectSyntaxStructure(s SyntaxStructure) []constraint.Constraint {
	var out []constraint.Constraint

	n := len(s.Functions)
	if n > 0 {
		async, typed := 0, 0
		errorHandling := 0
		for _, fn := range s.Functions {
			if fn.IsAsync {
				async++
			}
			if fn.ReturnType != "" {
				typed++
			}
			if fn.HasErrorHandling {
				errorHandling++
			}
		}

		out = append(out, constraint.Constraint{
			Kind:        constraint.Syntactic,
			Severity:    constraint.SeverityInfo,
			Name:        "function_structure",
			Description: fmt.Sprintf("Code contains %d function definitions (%d async, %d typed)", n, async, typed),
			Source:      constraint.SourceASTPattern,
			Confidence:  constraint.ConfidencePattern,
			Frequency:   uint32(n),
		})

		typedRatio := float64(typed) / float64(n)
		if typedRatio > 0.5 {
			out = append(out, constraint.Constraint{
				Kind:        constraint.TypeSafety,
				Severity:    constraint.SeverityInfo,
				Name:        "typed_functions",
				Description: fmt.Sprintf("%d of %d functions carry a return type annotation", typed, n),
				Source:      constraint.SourceASTPattern,
				Confidence:  typedRatio,
				Frequency:   uint32(typed),
			})
		}

		if errorHandling > 0 {
			out = append(out, constraint.Constraint{
				Kind:        constraint.Semantic,
				Severity:    constraint.SeverityInfo,
				Name:        "error_handling",
				Description: fmt.Sprintf("%d functions contain language-specific error handling", errorHandling),
				Source:      constraint.SourceControlFlow,
				Confidence:  constraint.ConfidencePattern,
				Frequency:   uint32(errorHandling),
			})
		}

		if async > 0 {
			out = append(out, constraint.Constraint{
				Kind:        constraint.Semantic,
				Severity:    constraint.SeverityInfo,
				Name:        "async_functions",
				Description: fmt.Sprintf("%d functions are async", async),
				Source:      constraint.SourceControlFlow,
				Confidence:  constraint.ConfidencePattern,
				Frequency:   uint32(async),
			})
		}
	}

	if len(s.Types) > 0 {
		out = append(out, constraint.Constraint{
			Kind:        constraint.TypeSafety,
			Severity:    constraint.SeverityInfo,
			Name:        "type_definitions",
			Description: fmt.Sprintf("Code contains %d type definitions", len(s.Types)),
			Source:      constraint.SourceASTPattern,
			Confidence:  constraint.ConfidencePattern,
			Frequency:   uint32(len(s.Types)),
		})
	}

	if len(s.Imports) > 0 {
		out = append(out, constraint.Constraint{
			Kind:        constraint.Architectural,
			Severity:    constraint.SeverityInfo,
			Name:        "modularity",
			Description: fmt.Sprintf("Code imports %d modules", len(s.Imports)),
			Source:      constraint.SourceASTPattern,
			Confidence:  constraint.ConfidencePattern,
			Frequency:   uint32(len(s.Imports)),
		})
	}

	return out
}

// ProjectTypeAnnotations turns a TypeAnnotations analysis into a single
// summary constraint, emitted only when at least one annotation-bearing
// node was seen. Source is Type_System — this is the one projection in the
// package that isn't derived from a line-based or AST-declaration walk but
// from the dedicated type-constraint analyzer (spec.md §4.3).
func ProjectTypeAnnotations(ta TypeAnnotations) []constraint.Constraint {
	if ta.TypeAnnotationCount == 0 {
		return nil
	}

	var flags []string
	if ta.HasAnyTypes {
		flags = append(flags, "any")
	}
	if ta.HasOptionalTypes {
		flags = append(flags, "optional")
	}
	if ta.HasNullTypes {
		flags = append(flags, "nullable")
	}
	if ta.HasUnionTypes {
		flags = append(flags, "union")
	}

	desc := fmt.Sprintf("%d type annotations seen", ta.TypeAnnotationCount)
	if len(flags) > 0 {
		desc += fmt.Sprintf(" (%s)", strings.Join(flags, ", "))
	}

	return []constraint.Constraint{{
		Kind:        constraint.TypeSafety,
		Severity:    constraint.SeverityInfo,
		Name:        "type_annotations",
		Description: desc,
		Source:      constraint.SourceTypeSystem,
		Confidence:  ta.Confidence,
		Frequency:   uint32(ta.TypeAnnotationCount),
	}}
}

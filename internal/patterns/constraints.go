package patterns

import (
	"fmt"
	"strings"

	"github.com/rand/ananke-sub006/internal/constraint"
)

// ToConstraints implements the "C3 pattern→constraint map" step of spec.md
// §2's control-flow diagram: matches is grouped by the Rule that produced
// them (Rule is a small comparable value, so it doubles as the group key),
// and each distinct rule that fired at least once becomes a single
// constraint carrying the total occurrence count and the first line it was
// seen on. Grouping here is an aggregation step, not deduplication — the
// matcher's no-dedup contract (spec.md §4.2) is preserved up to this point;
// nothing upstream of this function drops an overlapping match.
func ToConstraints(matches []Match) []constraint.Constraint {
	if len(matches) == 0 {
		return nil
	}

	type group struct {
		rule      Rule
		count     int
		firstLine int
	}
	order := make([]Rule, 0, len(matches))
	groups := make(map[Rule]*group, len(matches))

	for _, m := range matches {
		g, ok := groups[m.Rule]
		if !ok {
			g = &group{rule: m.Rule, firstLine: m.Line}
			groups[m.Rule] = g
			order = append(order, m.Rule)
		}
		g.count++
	}

	out := make([]constraint.Constraint, 0, len(order))
	for _, rule := range order {
		g := groups[rule]
		out = append(out, constraint.Constraint{
			Kind:        g.rule.Kind,
			Severity:    constraint.SeverityInfo,
			Name:        slug(g.rule.Description),
			Description: fmt.Sprintf("%s (%d occurrence(s))", g.rule.Description, g.count),
			Source:      sourceForCategory(g.rule.Category),
			Confidence:  constraint.ConfidencePattern,
			Frequency:   uint32(g.count),
			OriginLine:  g.firstLine,
		})
	}
	return out
}

func sourceForCategory(c Category) constraint.Source {
	switch c {
	case CategoryErrorHandling, CategoryAsyncPattern:
		return constraint.SourceControlFlow
	default:
		return constraint.SourceASTPattern
	}
}

func slug(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

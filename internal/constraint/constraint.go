// Package constraint defines the data model shared by the extraction
// pipeline: Constraint, ConstraintSet, Hole, and their provenance/severity
// vocabularies.
package constraint

// Kind classifies what a Constraint is fundamentally about.
type Kind string

const (
	Syntactic     Kind = "syntactic"
	TypeSafety    Kind = "type_safety"
	Semantic      Kind = "semantic"
	Architectural Kind = "architectural"
	Operational   Kind = "operational"
	Security      Kind = "security"
)

// Severity ranks how urgently a Constraint should be surfaced downstream.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	SeverityHint    Severity = "hint"
)

// Source records which extraction mechanism produced a Constraint.
type Source string

const (
	SourceASTPattern  Source = "AST_Pattern"
	SourceTypeSystem  Source = "Type_System"
	SourceLLMAnalysis Source = "LLM_Analysis"
	SourceTelemetry   Source = "Telemetry"
	SourceControlFlow Source = "Control_Flow"
	SourceStatic      Source = "Static_Analysis"
)

// Confidence constants for the two primary extraction engines (spec.md §3).
const (
	ConfidenceAST     = 0.95
	ConfidencePattern = 0.75
)

// Constraint is the fundamental output unit of the extraction pipeline.
// Instances are immutable after creation and trivially copyable; Name and
// Description are expected to be interner-owned strings (see
// internal/intern) once they leave a single extractor.
type Constraint struct {
	Kind        Kind
	Severity    Severity
	Name        string
	Description string
	Source      Source
	Confidence  float64
	Frequency   uint32
	// OriginLine is 1-based; zero means "not applicable".
	OriginLine int
}

// DedupKey identifies duplicates under the Combined-mode merge rule from
// spec.md §4.4: two constraints are duplicates iff Name and Kind match.
type DedupKey struct {
	Name string
	Kind Kind
}

func (c Constraint) Key() DedupKey {
	return DedupKey{Name: c.Name, Kind: c.Kind}
}

// Equivalent reports whether two constraints are equal for round-trip
// comparisons (spec.md §8): every observable field except ordering.
func (c Constraint) Equivalent(other Constraint) bool {
	return c.Kind == other.Kind &&
		c.Severity == other.Severity &&
		c.Name == other.Name &&
		c.Description == other.Description &&
		c.Source == other.Source &&
		c.Confidence == other.Confidence &&
		c.Frequency == other.Frequency &&
		c.OriginLine == other.OriginLine
}

// Set is a labeled, insertion-ordered collection of constraints. It carries
// no uniqueness invariant of its own — deduplication is a merge-time policy
// that lives in internal/hybrid.
type Set struct {
	Label string
	items []Constraint
}

// NewSet creates an empty ConstraintSet with the given label.
func NewSet(label string) *Set {
	return &Set{Label: label}
}

// Add appends a constraint, preserving insertion order.
func (s *Set) Add(c Constraint) {
	s.items = append(s.items, c)
}

// AddAll appends every constraint in order.
func (s *Set) AddAll(cs []Constraint) {
	s.items = append(s.items, cs...)
}

// Items returns the constraints in insertion order. The returned slice must
// not be mutated by callers.
func (s *Set) Items() []Constraint {
	return s.items
}

// Len returns the number of constraints currently held.
func (s *Set) Len() int {
	return len(s.items)
}

// Reset discards every constraint, keeping the backing array for reuse.
func (s *Set) Reset() {
	s.items = s.items[:0]
}

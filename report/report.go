// Package report holds the validation result model: Result, Report,
// severity filtering, merge, and the three serializations spec.md §4.7
// requires (RDF, JSON, text).
package report

import "github.com/ensaremirerol/shacl-validate/rdf"

// Result is one ValidationResult (spec.md §3). SourceConstraintComponent,
// Value, and ResultPath are nil when not applicable; Details holds nested
// sub-results (sh:or branches, sh:node recursion, and similar).
type Result struct {
	FocusNode                 rdf.Term
	SourceShape               rdf.Term
	SourceShapeName           string
	SourceConstraintComponent rdf.Term
	ConstraintDetail          string
	Severity                  rdf.Term
	ResultPath                rdf.Term // leading predicate of the shape's path, if any
	Value                     rdf.Term
	Messages                  []string
	Trace                     []string
	Details                   []*Result
}

// Report is a ValidationReport: conforms iff results is empty (spec.md
// §3's invariant, maintained by Add/Merge rather than left to callers).
type Report struct {
	Conforms bool
	Results  []*Result
}

// New returns an empty, conforming report.
func New() *Report {
	return &Report{Conforms: true}
}

// Add appends res and recomputes Conforms.
func (r *Report) Add(res *Result) {
	r.Results = append(r.Results, res)
	r.Conforms = false
}

// Merge folds other into r: results are appended, and the merged report
// conforms only if both r and other conformed, keeping Conforms true
// exactly when Results is empty.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Results = append(r.Results, other.Results...)
	r.Conforms = r.Conforms && other.Conforms
}

// ViolationsBySeverity filters results to those at the given severity.
func (r *Report) ViolationsBySeverity(severity rdf.Term) []*Result {
	var out []*Result
	for _, res := range r.Results {
		if rdf.Equal(res.Severity, severity) {
			out = append(out, res)
		}
	}
	return out
}

// DedupMessages merges a and b preserving first-occurrence order
// (spec.md §4.5: "union of constraint-emitted messages and the shape's
// sh:message set, deduplicated while preserving insertion order").
func DedupMessages(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, m := range append(append([]string{}, a...), b...) {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}

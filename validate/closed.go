package validate

import (
	"fmt"

	"github.com/ensaremirerol/shacl-validate/path"
	"github.com/ensaremirerol/shacl-validate/rdf"
	"github.com/ensaremirerol/shacl-validate/report"
	"github.com/ensaremirerol/shacl-validate/shape"
	"github.com/ensaremirerol/shacl-validate/voc/sh"
)

// checkClosed implements sh:closed (spec.md §4.5): every predicate used
// on focus that is neither sh:ignoredProperties nor the head predicate
// of one of s's property shapes is a violation.
func (e *Engine) checkClosed(focus rdf.Term, s *shape.Shape) []*report.Result {
	if s.Closed == nil {
		return nil
	}

	allowed := make(map[string]bool)
	for _, p := range s.Closed.IgnoredProperties {
		allowed[rdf.Key(p)] = true
	}
	for _, ps := range s.PropertyShapes {
		for _, head := range path.HeadPredicates(ps.Path) {
			allowed[rdf.Key(head)] = true
		}
	}

	var out []*report.Result
	seen := make(map[string]bool)
	for _, t := range e.Data.TriplesForSubject(focus) {
		k := rdf.Key(t.Predicate)
		if allowed[k] || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, &report.Result{
			FocusNode:                 focus,
			SourceShape:               s.Node,
			SourceShapeName:           s.Name,
			SourceConstraintComponent: rdf.IRI(sh.ConstraintComponent("Closed")),
			Severity:                  s.Severity,
			Value:                     t.Predicate,
			Messages:                  report.DedupMessages([]string{fmt.Sprintf("predicate %v is not allowed by this closed shape", t.Predicate)}, s.Message),
		})
	}
	return out
}

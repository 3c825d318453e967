package path

import "github.com/ensaremirerol/shacl-validate/rdf"

// Resolve evaluates path over g starting from node, applying elements
// left to right and deduplicating the final result while preserving
// first-occurrence order (spec.md §4.1).
func Resolve(p Path, g *rdf.Graph, node rdf.Term) []rdf.Term {
	cur := []rdf.Term{node}
	for _, el := range p {
		cur = el.walk(g, cur)
	}
	return rdf.DedupPreserveOrder(cur)
}

// HeadPredicates returns the set of direct IRI predicates a path can
// start with: for Iri, itself; for Alternative, the union of its
// branches' heads; inverse paths contribute nothing (spec.md §4.5's
// sh:closed rule: "inverse paths are excluded"). Sequences contribute
// only their first element's heads.
func HeadPredicates(p Path) []rdf.Term {
	if len(p) == 0 {
		return nil
	}
	return elementHeads(p[0])
}

func elementHeads(el Element) []rdf.Term {
	switch v := el.(type) {
	case Iri:
		return []rdf.Term{v.Pred}
	case Alternative:
		var out []rdf.Term
		for _, m := range v.Of {
			out = append(out, elementHeads(m)...)
		}
		return out
	case ZeroOrMore:
		return elementHeads(v.Of)
	case OneOrMore:
		return elementHeads(v.Of)
	case ZeroOrOne:
		return elementHeads(v.Of)
	default:
		// Inverse and anything else contributes no direct predicate.
		return nil
	}
}

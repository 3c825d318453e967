// Package path compiles and evaluates SHACL property paths: set-valued
// graph walks with transitive closure and cycle safety (spec.md §4.1).
//
// The element stack mirrors the morphism stack in Cayley's graph/path
// package: a Path is an ordered list of small, independently-applicable
// steps, each one a closed Go type implementing a single "walk a term
// set forward" method, the Go analogue of a cayley morphism's Apply.
package path

import "github.com/ensaremirerol/shacl-validate/rdf"

// Element is one step of a compiled SHACL path.
type Element interface {
	walk(g *rdf.Graph, in []rdf.Term) []rdf.Term
}

// Path is a compiled, top-level SHACL path: an ordered sequence of
// elements applied left to right.
type Path []Element

// Iri is a direct predicate step.
type Iri struct{ Pred rdf.Term }

func (e Iri) walk(g *rdf.Graph, in []rdf.Term) []rdf.Term {
	var out []rdf.Term
	for _, n := range in {
		if !rdf.IsNode(n) {
			// literals cannot appear in subject position (spec.md §4.1).
			continue
		}
		out = append(out, g.ObjectsForSubjectPredicate(n, e.Pred)...)
	}
	return out
}

// Inverse is an inverse-predicate step: walks from object to subject.
type Inverse struct{ Pred rdf.Term }

func (e Inverse) walk(g *rdf.Graph, in []rdf.Term) []rdf.Term {
	var out []rdf.Term
	for _, n := range in {
		out = append(out, g.SubjectsForPredicateObject(e.Pred, n)...)
	}
	return out
}

// Alternative is the union of several sub-paths applied to the same
// input set.
type Alternative struct{ Of []Element }

func (e Alternative) walk(g *rdf.Graph, in []rdf.Term) []rdf.Term {
	var out []rdf.Term
	for _, alt := range e.Of {
		out = append(out, alt.walk(g, in)...)
	}
	return out
}

// ZeroOrMore is the reflexive-transitive closure of a sub-path.
type ZeroOrMore struct{ Of Element }

func (e ZeroOrMore) walk(g *rdf.Graph, in []rdf.Term) []rdf.Term {
	return closure(g, e.Of, in, true)
}

// OneOrMore is the transitive closure of a sub-path, excluding the input
// itself unless a cycle re-visits it.
type OneOrMore struct{ Of Element }

func (e OneOrMore) walk(g *rdf.Graph, in []rdf.Term) []rdf.Term {
	return closure(g, e.Of, in, false)
}

// ZeroOrOne is the input set plus one application of a sub-path.
type ZeroOrOne struct{ Of Element }

func (e ZeroOrOne) walk(g *rdf.Graph, in []rdf.Term) []rdf.Term {
	out := append([]rdf.Term{}, in...)
	out = append(out, e.Of.walk(g, in)...)
	return rdf.DedupPreserveOrder(out)
}

// closure computes the fixed point of repeatedly applying sub over the
// frontier starting at seed, tracking a visited set to guarantee
// termination on cyclic graphs (spec.md §4.1, §9).
func closure(g *rdf.Graph, sub Element, seed []rdf.Term, reflexive bool) []rdf.Term {
	visited := make(map[string]bool, len(seed))
	var out []rdf.Term

	if reflexive {
		for _, n := range seed {
			k := rdf.Key(n)
			if !visited[k] {
				visited[k] = true
				out = append(out, n)
			}
		}
	}

	frontier := seed
	for len(frontier) > 0 {
		next := sub.walk(g, frontier)
		var newFrontier []rdf.Term
		for _, n := range next {
			k := rdf.Key(n)
			if visited[k] {
				continue
			}
			visited[k] = true
			out = append(out, n)
			newFrontier = append(newFrontier, n)
		}
		frontier = newFrontier
	}
	return out
}

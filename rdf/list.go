package rdf

import (
	"errors"

	"github.com/cayleygraph/quad"
)

// ErrCyclicList is returned by List when rdf:rest chasing re-visits a
// node, protecting the caller from an infinite walk over malformed data.
var ErrCyclicList = errors.New("rdf: cyclic list structure")

const (
	rdfFirst = quad.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#first")
	rdfRest  = quad.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#rest")
	rdfNil   = quad.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#nil")
)

// List decodes the RDF list headed at node, following rdf:first/rdf:rest
// links until rdf:nil or a cycle. It stops (without error) at the first
// node that has no rdf:first triple, treating it as an empty list.
func (g *Graph) List(head Term) ([]Term, error) {
	var out []Term
	visited := make(map[string]bool)
	cur := head
	for {
		if cur == nil || Equal(cur, rdfNil) {
			return out, nil
		}
		k := Key(cur)
		if visited[k] {
			return out, ErrCyclicList
		}
		visited[k] = true

		first, ok := g.ObjectForSubjectPredicate(cur, rdfFirst)
		if !ok {
			return out, nil
		}
		out = append(out, first)

		rest, ok := g.ObjectForSubjectPredicate(cur, rdfRest)
		if !ok {
			return out, nil
		}
		cur = rest
	}
}

package rdf

import "github.com/cayleygraph/quad"

// ShapesGraphIRI is the fixed named-graph identifier under which the
// shapes graph is exposed to SPARQL constraints (spec.md §6).
const ShapesGraphIRI = quad.IRI("urn:shacl:shapes-graph")

// Store owns the data graph and the shapes graph as two named graphs and
// exposes them as a single combined quad sequence, for consumption by a
// sparql.Store implementation. The core never mutates either graph once
// a Store is built: both are read-only for the lifetime of one
// validation run (spec.md §5).
type Store struct {
	Data   *Graph
	Shapes *Graph
}

// NewStore pairs a data graph and a shapes graph into one dataset.
func NewStore(data, shapes *Graph) *Store {
	return &Store{Data: data, Shapes: shapes}
}

// Quads returns every triple in the store as a labeled quad: data-graph
// triples carry a nil label (the default graph), shapes-graph triples
// carry ShapesGraphIRI.
func (s *Store) Quads() []quad.Quad {
	out := make([]quad.Quad, 0, s.Data.Len()+s.Shapes.Len())
	for _, t := range s.Data.All() {
		out = append(out, ToQuad(t, nil))
	}
	for _, t := range s.Shapes.All() {
		out = append(out, ToQuad(t, ShapesGraphIRI))
	}
	return out
}

package rdf

import "github.com/cayleygraph/quad"

// Triple is a subject-predicate-object fact. Unlike quad.Quad it carries
// no label: a Graph is always one homogeneous set of triples (the data
// graph, or the shapes graph); named-graph partitioning between the two
// lives one level up, in Store.
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// Graph is an immutable, in-memory, read-only-for-validation set of
// triples with index lookups by subject, predicate, and object.
//
// The index shape mirrors graph/memstore's per-direction tree index in
// the teacher repo, simplified from balanced trees to plain Go maps: the
// core only ever builds one snapshot per validation run and never
// mutates or persists it, so a persistent-store-grade index is not
// warranted here.
type Graph struct {
	triples []Triple

	bySubject   map[string][]int
	byPredicate map[string][]int
	byObject    map[string][]int
}

// NewGraph builds a Graph from a slice of triples, indexing them for
// constant-time direction lookups.
func NewGraph(triples []Triple) *Graph {
	g := &Graph{
		triples:     triples,
		bySubject:   make(map[string][]int, len(triples)),
		byPredicate: make(map[string][]int, len(triples)),
		byObject:    make(map[string][]int, len(triples)),
	}
	for i, t := range triples {
		g.bySubject[Key(t.Subject)] = append(g.bySubject[Key(t.Subject)], i)
		g.byPredicate[Key(t.Predicate)] = append(g.byPredicate[Key(t.Predicate)], i)
		g.byObject[Key(t.Object)] = append(g.byObject[Key(t.Object)], i)
	}
	return g
}

// Len reports the number of triples in the graph.
func (g *Graph) Len() int { return len(g.triples) }

// All returns every triple in the graph, in insertion order.
func (g *Graph) All() []Triple { return g.triples }

// TriplesForSubject returns every triple with subject s.
func (g *Graph) TriplesForSubject(s Term) []Triple {
	return g.lookup(g.bySubject, s)
}

// TriplesForPredicate returns every triple with predicate p.
func (g *Graph) TriplesForPredicate(p Term) []Triple {
	return g.lookup(g.byPredicate, p)
}

// TriplesForObject returns every triple with object o.
func (g *Graph) TriplesForObject(o Term) []Triple {
	return g.lookup(g.byObject, o)
}

func (g *Graph) lookup(idx map[string][]int, t Term) []Triple {
	ids, ok := idx[Key(t)]
	if !ok {
		return nil
	}
	out := make([]Triple, len(ids))
	for i, id := range ids {
		out[i] = g.triples[id]
	}
	return out
}

// ObjectsForSubjectPredicate returns every object reachable from s via p.
func (g *Graph) ObjectsForSubjectPredicate(s, p Term) []Term {
	var out []Term
	for _, id := range g.bySubject[Key(s)] {
		t := g.triples[id]
		if Equal(t.Predicate, p) {
			out = append(out, t.Object)
		}
	}
	return out
}

// ObjectForSubjectPredicate returns the first object reachable from s via
// p, mirroring quad-store "first value" convenience accessors.
func (g *Graph) ObjectForSubjectPredicate(s, p Term) (Term, bool) {
	objs := g.ObjectsForSubjectPredicate(s, p)
	if len(objs) == 0 {
		return nil, false
	}
	return objs[0], true
}

// SubjectsForPredicateObject returns every subject that reaches o via p.
func (g *Graph) SubjectsForPredicateObject(p, o Term) []Term {
	var out []Term
	for _, id := range g.byObject[Key(o)] {
		t := g.triples[id]
		if Equal(t.Predicate, p) {
			out = append(out, t.Subject)
		}
	}
	return out
}

// SubjectsForPredicate returns every distinct subject of a triple whose
// predicate is p.
func (g *Graph) SubjectsForPredicate(p Term) []Term {
	seen := make(map[string]bool)
	var out []Term
	for _, id := range g.byPredicate[Key(p)] {
		t := g.triples[id]
		k := Key(t.Subject)
		if !seen[k] {
			seen[k] = true
			out = append(out, t.Subject)
		}
	}
	return out
}

// ObjectsForPredicate returns every distinct object of a triple whose
// predicate is p, dropping literals (objects-of only ever selects nodes
// per spec.md §4.2).
func (g *Graph) ObjectsForPredicate(p Term) []Term {
	seen := make(map[string]bool)
	var out []Term
	for _, id := range g.byPredicate[Key(p)] {
		t := g.triples[id]
		if !IsNode(t.Object) {
			continue
		}
		k := Key(t.Object)
		if !seen[k] {
			seen[k] = true
			out = append(out, t.Object)
		}
	}
	return out
}

// ToQuad attaches a label to a triple, producing a full quad.Quad for
// serialization (report.ToGraph) or SPARQL dataset exposure.
func ToQuad(t Triple, label Term) quad.Quad {
	return quad.Quad{Subject: t.Subject, Predicate: t.Predicate, Object: t.Object, Label: label}
}

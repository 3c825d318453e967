package path_test

import (
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/require"

	"github.com/ensaremirerol/shacl-validate/path"
	"github.com/ensaremirerol/shacl-validate/rdf"
)

func TestZeroOrMoreClosure(t *testing.T) {
	a, b, c := quad.IRI("ex:A"), quad.IRI("ex:B"), quad.IRI("ex:C")
	knows := quad.IRI("ex:knows")
	g := rdf.NewGraph([]rdf.Triple{
		{Subject: a, Predicate: knows, Object: b},
		{Subject: b, Predicate: knows, Object: c},
		{Subject: c, Predicate: knows, Object: a},
	})

	p := path.Path{path.ZeroOrMore{Of: path.Iri{Pred: knows}}}
	got := path.Resolve(p, g, a)

	require.ElementsMatch(t, []rdf.Term{a, b, c}, got)
}

func TestOneOrMoreExcludesSeedWithoutCycle(t *testing.T) {
	a, b := quad.IRI("ex:A"), quad.IRI("ex:B")
	knows := quad.IRI("ex:knows")
	g := rdf.NewGraph([]rdf.Triple{
		{Subject: a, Predicate: knows, Object: b},
	})

	p := path.Path{path.OneOrMore{Of: path.Iri{Pred: knows}}}
	got := path.Resolve(p, g, a)

	require.Equal(t, []rdf.Term{b}, got)
}

func TestOneOrMoreRevisitsSeedOnCycle(t *testing.T) {
	a, b := quad.IRI("ex:A"), quad.IRI("ex:B")
	knows := quad.IRI("ex:knows")
	g := rdf.NewGraph([]rdf.Triple{
		{Subject: a, Predicate: knows, Object: b},
		{Subject: b, Predicate: knows, Object: a},
	})

	p := path.Path{path.OneOrMore{Of: path.Iri{Pred: knows}}}
	got := path.Resolve(p, g, a)

	require.ElementsMatch(t, []rdf.Term{a, b}, got)
}

func TestInverse(t *testing.T) {
	a, b := quad.IRI("ex:A"), quad.IRI("ex:B")
	knows := quad.IRI("ex:knows")
	g := rdf.NewGraph([]rdf.Triple{
		{Subject: a, Predicate: knows, Object: b},
	})

	p := path.Path{path.Inverse{Pred: knows}}
	got := path.Resolve(p, g, b)
	require.Equal(t, []rdf.Term{a}, got)
}

func TestAlternative(t *testing.T) {
	a, b, c := quad.IRI("ex:A"), quad.IRI("ex:B"), quad.IRI("ex:C")
	p1, p2 := quad.IRI("ex:p1"), quad.IRI("ex:p2")
	g := rdf.NewGraph([]rdf.Triple{
		{Subject: a, Predicate: p1, Object: b},
		{Subject: a, Predicate: p2, Object: c},
	})

	p := path.Path{path.Alternative{Of: []path.Element{path.Iri{Pred: p1}, path.Iri{Pred: p2}}}}
	got := path.Resolve(p, g, a)
	require.ElementsMatch(t, []rdf.Term{b, c}, got)
}

func TestSequence(t *testing.T) {
	a, b, c := quad.IRI("ex:A"), quad.IRI("ex:B"), quad.IRI("ex:C")
	p1, p2 := quad.IRI("ex:p1"), quad.IRI("ex:p2")
	g := rdf.NewGraph([]rdf.Triple{
		{Subject: a, Predicate: p1, Object: b},
		{Subject: b, Predicate: p2, Object: c},
	})

	p := path.Path{path.Iri{Pred: p1}, path.Iri{Pred: p2}}
	got := path.Resolve(p, g, a)
	require.Equal(t, []rdf.Term{c}, got)
}

func TestHeadPredicates(t *testing.T) {
	p1, p2 := quad.IRI("ex:p1"), quad.IRI("ex:p2")
	p := path.Path{path.Alternative{Of: []path.Element{path.Iri{Pred: p1}, path.Iri{Pred: p2}}}}
	heads := path.HeadPredicates(p)
	require.ElementsMatch(t, []rdf.Term{p1, p2}, heads)

	invPath := path.Path{path.Inverse{Pred: p1}}
	require.Nil(t, path.HeadPredicates(invPath))
}

package constraint

import (
	"context"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/require"

	"github.com/ensaremirerol/shacl-validate/path"
	"github.com/ensaremirerol/shacl-validate/rdf"
	"github.com/ensaremirerol/shacl-validate/report"
	"github.com/ensaremirerol/shacl-validate/shape"
	"github.com/ensaremirerol/shacl-validate/sparql"
	"github.com/ensaremirerol/shacl-validate/sparql/testutil"
)

func newTestContext(data *rdf.Graph, focus rdf.Term, p path.Path, values []rdf.Term) *Context {
	return &Context{
		Ctx:        context.Background(),
		Data:       data,
		FocusNode:  focus,
		Path:       p,
		ValueNodes: values,
		Shape:      &shape.Shape{Node: quad.BNode("s"), Severity: rdf.IRI("http://www.w3.org/ns/shacl#Violation")},
		ValidateNested: func(focus rdf.Term, s *shape.Shape) *NestedReport {
			return &NestedReport{Conforms: true}
		},
	}
}

func TestValidateClassFlagsInstanceOfWrongType(t *testing.T) {
	alice := quad.IRI("ex:alice")
	data := rdf.NewGraph([]rdf.Triple{
		{Subject: alice, Predicate: rdfTypeTerm, Object: quad.IRI("ex:Animal")},
	})
	ctx := newTestContext(data, alice, nil, []rdf.Term{alice})
	out := validateClass(ctx, &shape.ClassConstraint{Class: quad.IRI("ex:Person")})
	require.Len(t, out, 1)
	require.True(t, rdf.Equal(alice, out[0].Value))
}

func TestValidateClassAcceptsSubclassInstance(t *testing.T) {
	alice := quad.IRI("ex:alice")
	subClassOf := rdf.IRI("http://www.w3.org/2000/01/rdf-schema#subClassOf")
	data := rdf.NewGraph([]rdf.Triple{
		{Subject: alice, Predicate: rdfTypeTerm, Object: quad.IRI("ex:Student")},
		{Subject: quad.IRI("ex:Student"), Predicate: subClassOf, Object: quad.IRI("ex:Person")},
	})
	ctx := newTestContext(data, alice, nil, []rdf.Term{alice})
	out := validateClass(ctx, &shape.ClassConstraint{Class: quad.IRI("ex:Person")})
	require.Empty(t, out)
}

func TestValidateDatatypeAcceptsMatchingTypedLiteral(t *testing.T) {
	data := rdf.NewGraph(nil)
	xsdInteger := rdf.IRI("http://www.w3.org/2001/XMLSchema#integer")
	value := quad.TypedString{Value: "42", Type: quad.IRI("http://www.w3.org/2001/XMLSchema#integer")}
	ctx := newTestContext(data, quad.IRI("ex:bob"), nil, []rdf.Term{value})
	out := validateDatatype(ctx, &shape.DatatypeConstraint{Datatype: xsdInteger})
	require.Empty(t, out)
}

func TestValidateDatatypeFlagsMismatchedLiteral(t *testing.T) {
	data := rdf.NewGraph(nil)
	xsdInteger := rdf.IRI("http://www.w3.org/2001/XMLSchema#integer")
	value := quad.String("not a number")
	ctx := newTestContext(data, quad.IRI("ex:bob"), nil, []rdf.Term{value})
	out := validateDatatype(ctx, &shape.DatatypeConstraint{Datatype: xsdInteger})
	require.Len(t, out, 1)
}

func TestValidateMinCountViolation(t *testing.T) {
	data := rdf.NewGraph(nil)
	ctx := newTestContext(data, quad.IRI("ex:bob"), path.Path{path.Iri{Pred: rdf.IRI("ex:name")}}, nil)
	out := validateMinCount(ctx, &shape.MinCountConstraint{Min: 1})
	require.Len(t, out, 1)
}

func TestValidateMaxCountOK(t *testing.T) {
	data := rdf.NewGraph(nil)
	ctx := newTestContext(data, quad.IRI("ex:bob"), path.Path{path.Iri{Pred: rdf.IRI("ex:name")}}, []rdf.Term{quad.String("Bob")})
	out := validateMaxCount(ctx, &shape.MaxCountConstraint{Max: 1})
	require.Empty(t, out)
}

func TestValidateRangeMinInclusive(t *testing.T) {
	data := rdf.NewGraph(nil)
	ctx := newTestContext(data, quad.IRI("ex:x"), nil, []rdf.Term{quad.Int(3)})
	out := validateRange(ctx, &shape.RangeConstraint{Op: shape.OpMinInclusive, Bound: quad.Int(5)})
	require.Len(t, out, 1)

	ctx2 := newTestContext(data, quad.IRI("ex:x"), nil, []rdf.Term{quad.Int(7)})
	out2 := validateRange(ctx2, &shape.RangeConstraint{Op: shape.OpMinInclusive, Bound: quad.Int(5)})
	require.Empty(t, out2)
}

func TestValidatePatternMatch(t *testing.T) {
	data := rdf.NewGraph(nil)
	ctx := newTestContext(data, quad.IRI("ex:x"), nil, []rdf.Term{quad.String("abc123")})
	out := validatePattern(ctx, &shape.PatternConstraint{Pattern: `^[a-z]+\d+$`})
	require.Empty(t, out)

	ctx2 := newTestContext(data, quad.IRI("ex:x"), nil, []rdf.Term{quad.String("???")})
	out2 := validatePattern(ctx2, &shape.PatternConstraint{Pattern: `^[a-z]+\d+$`})
	require.Len(t, out2, 1)
}

func TestValidateOrConformsIfAnyBranchConforms(t *testing.T) {
	data := rdf.NewGraph(nil)
	value := quad.IRI("ex:v")
	calls := 0
	ctx := newTestContext(data, quad.IRI("ex:f"), nil, []rdf.Term{value})
	ctx.ValidateNested = func(focus rdf.Term, s *shape.Shape) *NestedReport {
		calls++
		if calls == 1 {
			return &NestedReport{Conforms: false, Results: []*report.Result{{}}}
		}
		return &NestedReport{Conforms: true}
	}
	out := validateOr(ctx, &shape.OrConstraint{Shapes: []*shape.Shape{{}, {}}})
	require.Empty(t, out)
}

func TestValidateXoneFailsWhenMultipleBranchesConform(t *testing.T) {
	data := rdf.NewGraph(nil)
	value := quad.IRI("ex:v")
	ctx := newTestContext(data, quad.IRI("ex:f"), nil, []rdf.Term{value})
	ctx.ValidateNested = func(focus rdf.Term, s *shape.Shape) *NestedReport {
		return &NestedReport{Conforms: true}
	}
	out := validateXone(ctx, &shape.XoneConstraint{Shapes: []*shape.Shape{{}, {}}})
	require.Len(t, out, 1)
}

func TestValidateQualifiedValueShapeCountsConformingSiblingsExclusive(t *testing.T) {
	data := rdf.NewGraph(nil)
	v1, v2 := quad.IRI("ex:v1"), quad.IRI("ex:v2")
	ctx := newTestContext(data, quad.IRI("ex:f"), nil, []rdf.Term{v1, v2})

	main := &shape.QualifiedValueShapeConstraint{Shape: &shape.Shape{}, Disjoint: true}
	sibling := &shape.QualifiedValueShapeConstraint{Shape: &shape.Shape{}}
	main.Siblings = []*shape.QualifiedValueShapeConstraint{sibling}

	ctx.ValidateNested = func(focus rdf.Term, s *shape.Shape) *NestedReport {
		// both values conform to every shape (main + sibling), so the
		// disjoint qualification should drop both.
		return &NestedReport{Conforms: true}
	}
	min := 1
	main.Min = &min
	out := validateQualifiedValueShape(ctx, main)
	require.Len(t, out, 1)
}

func TestValidateHasValueAndIn(t *testing.T) {
	data := rdf.NewGraph(nil)
	ctx := newTestContext(data, quad.IRI("ex:f"), nil, []rdf.Term{quad.IRI("ex:a")})
	require.Empty(t, validateHasValue(ctx, &shape.HasValueConstraint{Value: quad.IRI("ex:a")}))
	require.Len(t, validateHasValue(ctx, &shape.HasValueConstraint{Value: quad.IRI("ex:b")}), 1)

	require.Empty(t, validateIn(ctx, &shape.InConstraint{Values: []rdf.Term{quad.IRI("ex:a"), quad.IRI("ex:c")}}))
	require.Len(t, validateIn(ctx, &shape.InConstraint{Values: []rdf.Term{quad.IRI("ex:c")}}), 1)
}

func TestValidateSparqlAskTrueProducesNoViolation(t *testing.T) {
	data := rdf.NewGraph(nil)
	store := testutil.NewScripted(sparql.Results{Ask: true, AskResult: true})
	ctx := newTestContext(data, quad.IRI("ex:f"), nil, []rdf.Term{})
	ctx.SparqlStore = store
	ctx.ShapesGraphIRI = rdf.ShapesGraphIRI

	c := &shape.SparqlConstraint{
		Select:     false,
		Executable: "ASK WHERE { $this ex:broken true }",
		Messages:   []string{"{$this} is broken"},
	}
	out := validateSparql(ctx, c)
	// sh:ask semantics: the query must evaluate to true for the focus to
	// conform, so AskResult=true yields no violation.
	require.Empty(t, out)
}

func TestValidateSparqlUsesCustomSourceConstraintComponent(t *testing.T) {
	data := rdf.NewGraph(nil)
	store := testutil.NewScripted(sparql.Results{Ask: true, AskResult: false})
	ctx := newTestContext(data, quad.IRI("ex:f"), nil, []rdf.Term{})
	ctx.SparqlStore = store
	ctx.ShapesGraphIRI = rdf.ShapesGraphIRI

	component := quad.IRI("ex:MaxLenComponent")
	c := &shape.SparqlConstraint{
		Select:                    false,
		Executable:                "ASK WHERE { $this ex:broken true }",
		Messages:                  []string{"{$this} is broken"},
		SourceConstraintComponent: component,
		ParameterBindings:         map[string]rdf.Term{"maxLen": quad.Int(5)},
	}
	out := validateSparql(ctx, c)
	require.Len(t, out, 1)
	require.True(t, rdf.Equal(component, out[0].SourceConstraintComponent))
}

func TestValidateSparqlSelectProducesViolationPerSolution(t *testing.T) {
	data := rdf.NewGraph(nil)
	store := testutil.NewScripted(sparql.Results{
		Solutions: []sparql.Solution{
			{"value": quad.IRI("ex:bad")},
		},
	})
	ctx := newTestContext(data, quad.IRI("ex:f"), nil, []rdf.Term{})
	ctx.SparqlStore = store
	ctx.ShapesGraphIRI = rdf.ShapesGraphIRI

	c := &shape.SparqlConstraint{
		Select:     true,
		Executable: "SELECT $this WHERE { $this ex:bad ?value }",
		Messages:   []string{"{?value} is not allowed"},
	}
	out := validateSparql(ctx, c)
	require.Len(t, out, 1)
	require.Contains(t, out[0].Messages[0], "ex:bad")
}

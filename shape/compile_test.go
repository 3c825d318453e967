package shape_test

import (
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/require"

	"github.com/ensaremirerol/shacl-validate/rdf"
	"github.com/ensaremirerol/shacl-validate/shape"
	"github.com/ensaremirerol/shacl-validate/target"
)

func quads(triples ...rdf.Triple) *rdf.Graph { return rdf.NewGraph(triples) }

func TestCompileNodeShapeWithTargetClassAndConstraints(t *testing.T) {
	personShape := quad.BNode("personShape")
	shapes := quads(
		rdf.Triple{Subject: personShape, Predicate: quad.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type"), Object: quad.IRI("http://www.w3.org/ns/shacl#NodeShape")},
		rdf.Triple{Subject: personShape, Predicate: quad.IRI("http://www.w3.org/ns/shacl#targetClass"), Object: quad.IRI("ex:Person")},
		rdf.Triple{Subject: personShape, Predicate: quad.IRI("http://www.w3.org/ns/shacl#closed"), Object: quad.Bool(true)},
	)

	res, err := shape.Compile(shapes)
	require.NoError(t, err)
	require.Len(t, res.Shapes, 1)
	s := res.Shapes[0]
	require.False(t, s.IsPropertyShape())
	require.Len(t, s.Targets, 1)
	require.Equal(t, target.Class, s.Targets[0].Kind)
	require.NotNil(t, s.Closed)
}

func TestCompilePropertyShapeRequiresPath(t *testing.T) {
	propShape := quad.BNode("nameProp")
	parent := quad.BNode("personShape")
	shapes := quads(
		rdf.Triple{Subject: parent, Predicate: quad.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type"), Object: quad.IRI("http://www.w3.org/ns/shacl#NodeShape")},
		rdf.Triple{Subject: parent, Predicate: quad.IRI("http://www.w3.org/ns/shacl#property"), Object: propShape},
		rdf.Triple{Subject: propShape, Predicate: quad.IRI("http://www.w3.org/ns/shacl#path"), Object: quad.IRI("ex:name")},
		rdf.Triple{Subject: propShape, Predicate: quad.IRI("http://www.w3.org/ns/shacl#minCount"), Object: quad.Int(1)},
	)

	res, err := shape.Compile(shapes)
	require.NoError(t, err)
	require.Len(t, res.Shapes, 1)
	require.Len(t, res.Shapes[0].PropertyShapes, 1)
	prop := res.Shapes[0].PropertyShapes[0]
	require.True(t, prop.IsPropertyShape())
	require.Len(t, prop.Constraints, 1)
	mc, ok := prop.Constraints[0].(*shape.MinCountConstraint)
	require.True(t, ok)
	require.Equal(t, 1, mc.Min)
}

func TestCompileSkipsMissingPathWithWarning(t *testing.T) {
	propShape := quad.BNode("badProp")
	parent := quad.BNode("personShape")
	shapes := quads(
		rdf.Triple{Subject: parent, Predicate: quad.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type"), Object: quad.IRI("http://www.w3.org/ns/shacl#NodeShape")},
		rdf.Triple{Subject: parent, Predicate: quad.IRI("http://www.w3.org/ns/shacl#property"), Object: propShape},
		rdf.Triple{Subject: propShape, Predicate: quad.IRI("http://www.w3.org/ns/shacl#minCount"), Object: quad.Int(1)},
	)

	res, err := shape.Compile(shapes)
	require.NoError(t, err)
	require.Empty(t, res.Shapes[0].PropertyShapes)
	require.NotEmpty(t, res.Warnings)
}

func TestCompileImplicitClassTarget(t *testing.T) {
	classShape := quad.IRI("ex:Person")
	shapes := quads(
		rdf.Triple{Subject: classShape, Predicate: quad.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type"), Object: quad.IRI("http://www.w3.org/2000/01/rdf-schema#Class")},
		rdf.Triple{Subject: classShape, Predicate: quad.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type"), Object: quad.IRI("http://www.w3.org/ns/shacl#NodeShape")},
	)

	res, err := shape.Compile(shapes)
	require.NoError(t, err)
	require.Len(t, res.Shapes, 1)
	require.Len(t, res.Shapes[0].Targets, 1)
	require.Equal(t, target.Class, res.Shapes[0].Targets[0].Kind)
}

func TestCompileComponentSparqlConstraintBindsParameter(t *testing.T) {
	component := quad.IRI("ex:MaxLenComponent")
	param := quad.BNode("param")
	validator := quad.BNode("validator")
	personShape := quad.BNode("personShape")

	shapes := quads(
		rdf.Triple{Subject: component, Predicate: quad.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type"), Object: quad.IRI("http://www.w3.org/ns/shacl#ConstraintComponent")},
		rdf.Triple{Subject: component, Predicate: quad.IRI("http://www.w3.org/ns/shacl#parameter"), Object: param},
		rdf.Triple{Subject: param, Predicate: quad.IRI("http://www.w3.org/ns/shacl#path"), Object: quad.IRI("ex:maxLen")},
		rdf.Triple{Subject: component, Predicate: quad.IRI("http://www.w3.org/ns/shacl#nodeValidator"), Object: validator},
		rdf.Triple{Subject: validator, Predicate: quad.IRI("http://www.w3.org/ns/shacl#select"), Object: quad.String("SELECT $this WHERE { $this ex:value ?v . FILTER (strlen(?v) > ?maxLen) }")},

		rdf.Triple{Subject: personShape, Predicate: quad.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type"), Object: quad.IRI("http://www.w3.org/ns/shacl#NodeShape")},
		rdf.Triple{Subject: personShape, Predicate: quad.IRI("http://www.w3.org/ns/shacl#targetClass"), Object: quad.IRI("ex:Person")},
		rdf.Triple{Subject: personShape, Predicate: quad.IRI("ex:maxLen"), Object: quad.Int(5)},
	)

	res, err := shape.Compile(shapes)
	require.NoError(t, err)
	require.Len(t, res.Shapes, 1)

	var found *shape.SparqlConstraint
	for _, con := range res.Shapes[0].Constraints {
		if sc, ok := con.(*shape.SparqlConstraint); ok {
			found = sc
		}
	}
	require.NotNil(t, found)
	require.True(t, rdf.Equal(component, found.SourceConstraintComponent))
	require.True(t, rdf.Equal(quad.Int(5), found.ParameterBindings["maxLen"]))
}

func TestCompileComponentSparqlConstraintSkipsMissingRequiredParameter(t *testing.T) {
	component := quad.IRI("ex:MaxLenComponent")
	param := quad.BNode("param")
	validator := quad.BNode("validator")
	personShape := quad.BNode("personShape")

	shapes := quads(
		rdf.Triple{Subject: component, Predicate: quad.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type"), Object: quad.IRI("http://www.w3.org/ns/shacl#ConstraintComponent")},
		rdf.Triple{Subject: component, Predicate: quad.IRI("http://www.w3.org/ns/shacl#parameter"), Object: param},
		rdf.Triple{Subject: param, Predicate: quad.IRI("http://www.w3.org/ns/shacl#path"), Object: quad.IRI("ex:maxLen")},
		rdf.Triple{Subject: component, Predicate: quad.IRI("http://www.w3.org/ns/shacl#nodeValidator"), Object: validator},
		rdf.Triple{Subject: validator, Predicate: quad.IRI("http://www.w3.org/ns/shacl#select"), Object: quad.String("SELECT $this WHERE { $this ex:value ?v . FILTER (strlen(?v) > ?maxLen) }")},

		rdf.Triple{Subject: personShape, Predicate: quad.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type"), Object: quad.IRI("http://www.w3.org/ns/shacl#NodeShape")},
		rdf.Triple{Subject: personShape, Predicate: quad.IRI("http://www.w3.org/ns/shacl#targetClass"), Object: quad.IRI("ex:Person")},
	)

	res, err := shape.Compile(shapes)
	require.NoError(t, err)
	require.Len(t, res.Shapes, 1)
	require.Empty(t, res.Shapes[0].Constraints)
}

func TestCompileOrLinksNestedShapes(t *testing.T) {
	root := quad.BNode("root")
	branchA := quad.BNode("branchA")
	branchB := quad.BNode("branchB")
	listHead := quad.BNode("list0")
	shapes := quads(
		rdf.Triple{Subject: root, Predicate: quad.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type"), Object: quad.IRI("http://www.w3.org/ns/shacl#NodeShape")},
		rdf.Triple{Subject: root, Predicate: quad.IRI("http://www.w3.org/ns/shacl#or"), Object: listHead},
		rdf.Triple{Subject: listHead, Predicate: quad.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#first"), Object: branchA},
		rdf.Triple{Subject: listHead, Predicate: quad.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#rest"), Object: quad.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#nil")},
		rdf.Triple{Subject: branchA, Predicate: quad.IRI("http://www.w3.org/ns/shacl#class"), Object: quad.IRI("ex:A")},
	)
	_ = branchB

	res, err := shape.Compile(shapes)
	require.NoError(t, err)
	require.Len(t, res.Shapes[0].Constraints, 1)
	or, ok := res.Shapes[0].Constraints[0].(*shape.OrConstraint)
	require.True(t, ok)
	require.Len(t, or.Shapes, 1)
	require.Len(t, or.Shapes[0].Constraints, 1)
}

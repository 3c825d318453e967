package sparql_test

import (
	"context"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/require"

	"github.com/ensaremirerol/shacl-validate/rdf"
	"github.com/ensaremirerol/shacl-validate/sparql"
	"github.com/ensaremirerol/shacl-validate/sparql/testutil"
)

func TestFormatTermVariants(t *testing.T) {
	require.Equal(t, "<ex:alice>", sparql.FormatTerm(quad.IRI("ex:alice")))
	require.Equal(t, "_:b1", sparql.FormatTerm(quad.BNode("b1")))
	require.Equal(t, `"hello"`, sparql.FormatTerm(quad.String("hello")))
}

func TestTemplateMessageSubstitutesBindings(t *testing.T) {
	msg := "value {?value} violates {$this}"
	got := sparql.TemplateMessage(msg, map[string]rdf.Term{
		"value": quad.String("x"),
		"this":  quad.IRI("ex:alice"),
	})
	require.Equal(t, "value x violates ex:alice", got)
}

func TestEvaluateSelectProducesOneViolationPerSolution(t *testing.T) {
	store := testutil.NewScripted(sparql.Results{
		Solutions: []sparql.Solution{
			{"value": quad.String("bad")},
		},
	})
	violations, err := sparql.Evaluate(context.Background(), store, sparql.EvalOptions{
		Query:            "SELECT ?value WHERE { ?this ex:p ?value }",
		Select:           true,
		Bindings:         map[string]rdf.Term{"this": quad.IRI("ex:alice")},
		MessageTemplates: []string{"bad value {?value}"},
	})
	require.NoError(t, err)
	require.Len(t, violations, 1)
	require.Equal(t, "bad value bad", violations[0].Messages[0])
	require.Contains(t, store.Queries[0], "VALUES ?this")
}

func TestEvaluateAskFalseProducesOneViolation(t *testing.T) {
	store := testutil.NewScripted(sparql.Results{Ask: true, AskResult: false})
	violations, err := sparql.Evaluate(context.Background(), store, sparql.EvalOptions{
		Query:    "ASK WHERE { ?this ex:p ?o }",
		Select:   false,
		Bindings: map[string]rdf.Term{"this": quad.IRI("ex:alice")},
	})
	require.NoError(t, err)
	require.Len(t, violations, 1)
}

func TestEvaluateAskTrueConforms(t *testing.T) {
	store := testutil.NewScripted(sparql.Results{Ask: true, AskResult: true})
	violations, err := sparql.Evaluate(context.Background(), store, sparql.EvalOptions{
		Query:    "ASK WHERE { ?this ex:p ?o }",
		Bindings: map[string]rdf.Term{"this": quad.IRI("ex:alice")},
	})
	require.NoError(t, err)
	require.Empty(t, violations)
}

func TestEvaluateFallsBackWhenThisProducesNoViolations(t *testing.T) {
	store := testutil.NewScripted(
		sparql.Results{Solutions: nil},
		sparql.Results{Solutions: []sparql.Solution{{"value": quad.String("bad")}}},
	)
	violations, err := sparql.Evaluate(context.Background(), store, sparql.EvalOptions{
		Query:    "SELECT ?value WHERE { ?this ex:p ?value }",
		Select:   true,
		Bindings: map[string]rdf.Term{"this": quad.IRI("ex:alice")},
	})
	require.NoError(t, err)
	require.Len(t, violations, 1)
	require.Len(t, store.Queries, 2)
	require.Contains(t, store.Queries[1], "BIND(")
}

func TestEvaluateRejectsNestedSelect(t *testing.T) {
	store := testutil.NewScripted(sparql.Results{})
	_, err := sparql.Evaluate(context.Background(), store, sparql.EvalOptions{
		Query:    "SELECT * WHERE { { SELECT ?x WHERE { ?x ?y ?z } } }",
		Select:   true,
		Bindings: map[string]rdf.Term{"this": quad.IRI("ex:alice")},
	})
	require.Error(t, err)
}

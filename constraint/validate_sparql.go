package constraint

import (
	"fmt"

	"github.com/ensaremirerol/shacl-validate/path"
	"github.com/ensaremirerol/shacl-validate/rdf"
	"github.com/ensaremirerol/shacl-validate/report"
	"github.com/ensaremirerol/shacl-validate/shape"
	"github.com/ensaremirerol/shacl-validate/sparql"
)

// validateSparql runs a SPARQL-based constraint per spec.md §4.6. When
// the owning shape has a path, the query runs once per value node with
// ?value bound to it; otherwise it runs once against the focus node,
// matching how every other value-oriented constraint in this catalog
// treats the node-shape/no-path case (spec.md §8: value_nodes = [focus]).
func validateSparql(ctx *Context, c *shape.SparqlConstraint) []*report.Result {
	store := ctx.SparqlStore
	if store == nil {
		store = sparql.NopStore{}
	}

	component := componentIRI(c.Component())
	if c.SourceConstraintComponent != nil {
		component = c.SourceConstraintComponent
	}

	base := map[string]rdf.Term{
		"this":         ctx.FocusNode,
		"shapesGraph":  ctx.ShapesGraphIRI,
		"currentShape": ctx.Shape.Node,
	}
	for k, v := range c.ParameterBindings {
		base[k] = v
	}
	if len(ctx.Path) > 0 {
		if heads := path.HeadPredicates(ctx.Path); len(heads) > 0 {
			base["PATH"] = heads[0]
		}
	}

	runs := [][2]rdf.Term{{nil, nil}} // (value, nil) sentinel for the no-path case
	if len(ctx.Path) > 0 {
		runs = nil
		for _, v := range ctx.ValueNodes {
			runs = append(runs, [2]rdf.Term{v, nil})
		}
	}

	var out []*report.Result
	for _, run := range runs {
		bindings := make(map[string]rdf.Term, len(base)+1)
		for k, v := range base {
			bindings[k] = v
		}
		if run[0] != nil {
			bindings["value"] = run[0]
		}

		violations, err := sparql.Evaluate(ctx.Ctx, store, sparql.EvalOptions{
			Query:            c.Executable,
			Select:           c.Select,
			Bindings:         bindings,
			MessageTemplates: c.Messages,
		})
		if err != nil {
			out = append(out, ctx.newResultTerm(component, run[0], fmt.Sprintf("sparql constraint failed: %v", err)))
			continue
		}
		for _, v := range violations {
			msg := ""
			if len(v.Messages) > 0 {
				msg = v.Messages[0]
			}
			r := ctx.newResultTerm(component, v.Bindings["value"], msg)
			if len(v.Messages) > 1 {
				r.Messages = report.DedupMessages(v.Messages, ctx.Shape.Message)
			}
			out = append(out, r)
		}
	}
	return out
}

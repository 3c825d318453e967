// Package constraint implements the SHACL core constraint catalog
// (spec.md §4.4): one validator per constraint component, each a pure
// function of a Context producing zero or more report.Result values.
//
// Grounded on the teacher's graph/shape cost-model dispatch idiom in
// spirit only (closed Go interface + type switch), since no code is
// shared: that package dispatches query-plan shapes, this one dispatches
// constraint variants.
package constraint

import (
	"context"

	"github.com/ensaremirerol/shacl-validate/path"
	"github.com/ensaremirerol/shacl-validate/rdf"
	"github.com/ensaremirerol/shacl-validate/report"
	"github.com/ensaremirerol/shacl-validate/shape"
	"github.com/ensaremirerol/shacl-validate/sparql"
)

// Context is everything one constraint evaluation needs (spec.md §4.4's
// validate(dataset, focus_node, path?, value_nodes, owning_shape)).
type Context struct {
	Ctx context.Context

	Data   *rdf.Graph
	Shapes *rdf.Graph

	FocusNode  rdf.Term
	Path       path.Path // nil for node shapes
	ValueNodes []rdf.Term
	Shape      *shape.Shape

	// SparqlStore backs SPARQL-based constraints; nil is treated as
	// sparql.NopStore (every SPARQL constraint becomes a diagnostic
	// violation rather than a panic, per spec.md §4.6/§7).
	SparqlStore sparql.Store

	// ShapesGraphIRI is exposed to SPARQL constraints as the fixed named
	// graph identifier (spec.md §6).
	ShapesGraphIRI rdf.Term

	// ValidateNested lets a constraint recurse into a referenced shape
	// (sh:node/sh:not/sh:and/sh:or/sh:xone/sh:qualifiedValueShape)
	// without this package depending on validate, which would create an
	// import cycle (validate already depends on constraint and shape).
	ValidateNested func(focus rdf.Term, s *shape.Shape) *NestedReport

	// Depth is a recursion counter for nested shape validation. Neither
	// ValidateAll nor validate.Engine sets or checks it, so recursion
	// through mutually-referential shapes is not bounded by this field.
	Depth int
}

// NestedReport is the minimal slice of validate.Engine's recursive
// result that constraint validators need: whether the nested shape
// conformed, and the results to attach as Details.
type NestedReport struct {
	Conforms bool
	Results  []*report.Result
}

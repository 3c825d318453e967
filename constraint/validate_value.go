package constraint

import (
	"fmt"

	"github.com/ensaremirerol/shacl-validate/rdf"
	"github.com/ensaremirerol/shacl-validate/report"
	"github.com/ensaremirerol/shacl-validate/shape"
	"github.com/ensaremirerol/shacl-validate/target"
)

var rdfTypeTerm = rdf.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type")

func validateClass(ctx *Context, c *shape.ClassConstraint) []*report.Result {
	allowed := target.ClassClosure(ctx.Data, c.Class)
	var out []*report.Result
	for _, v := range ctx.ValueNodes {
		if !rdf.IsNode(v) {
			out = append(out, ctx.newResult(c.Component(), v, fmt.Sprintf("%v is a literal, not an instance of %v", v, c.Class)))
			continue
		}
		types := ctx.Data.ObjectsForSubjectPredicate(v, rdfTypeTerm)
		if !intersects(types, allowed) {
			out = append(out, ctx.newResult(c.Component(), v, fmt.Sprintf("%v is not an instance of %v", v, c.Class)))
		}
	}
	return out
}

func validateDatatype(ctx *Context, c *shape.DatatypeConstraint) []*report.Result {
	want, ok := rdf.IRIString(c.Datatype)
	if !ok {
		want = c.Datatype.String()
	}
	var out []*report.Result
	for _, v := range ctx.ValueNodes {
		lit, ok := rdf.AsLiteral(v)
		if !ok || lit.Datatype != want {
			out = append(out, ctx.newResult(c.Component(), v, fmt.Sprintf("%v does not have datatype %v", v, c.Datatype)))
		}
	}
	return out
}

func validateNodeKind(ctx *Context, c *shape.NodeKindConstraint) []*report.Result {
	var out []*report.Result
	for _, v := range ctx.ValueNodes {
		if !nodeKindMatches(c.Kind, v) {
			out = append(out, ctx.newResult(c.Component(), v, fmt.Sprintf("%v does not match the required node kind", v)))
		}
	}
	return out
}

func nodeKindMatches(kind shape.NodeKind, v rdf.Term) bool {
	isIRI, isBlank := rdf.IsIRI(v), rdf.IsBlank(v)
	_, isLiteral := rdf.AsLiteral(v)
	switch kind {
	case shape.KindIRI:
		return isIRI
	case shape.KindBlankNode:
		return isBlank
	case shape.KindLiteral:
		return isLiteral
	case shape.KindBlankNodeOrIRI:
		return isBlank || isIRI
	case shape.KindBlankNodeOrLiteral:
		return isBlank || isLiteral
	case shape.KindIRIOrLiteral:
		return isIRI || isLiteral
	default:
		return false
	}
}

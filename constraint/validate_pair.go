package constraint

import (
	"fmt"

	"github.com/ensaremirerol/shacl-validate/rdf"
	"github.com/ensaremirerol/shacl-validate/report"
	"github.com/ensaremirerol/shacl-validate/shape"
)

// thisValues is the set compared on the left side of a property-pair
// constraint: the shape's own value nodes for a property shape, or the
// focus node itself for a node shape (spec.md §4.4's Equals contract,
// which applies identically to Disjoint).
func (ctx *Context) thisValues() []rdf.Term {
	if len(ctx.Path) > 0 {
		return ctx.ValueNodes
	}
	return []rdf.Term{ctx.FocusNode}
}

func validateEquals(ctx *Context, c *shape.EqualsConstraint) []*report.Result {
	this := ctx.thisValues()
	other := ctx.resolvePath(c.Path, ctx.FocusNode)
	var out []*report.Result
	for _, v := range this {
		if !containsTerm(other, v) {
			out = append(out, ctx.newResult(c.Component(), v, fmt.Sprintf("%v has no matching equals value", v)))
		}
	}
	for _, v := range other {
		if !containsTerm(this, v) {
			out = append(out, ctx.newResult(c.Component(), v, fmt.Sprintf("%v is only present on the compared path", v)))
		}
	}
	return out
}

func validateDisjoint(ctx *Context, c *shape.DisjointConstraint) []*report.Result {
	this := ctx.thisValues()
	other := ctx.resolvePath(c.Path, ctx.FocusNode)
	var out []*report.Result
	for _, v := range this {
		if containsTerm(other, v) {
			out = append(out, ctx.newResult(c.Component(), v, fmt.Sprintf("%v also appears on the disjoint path", v)))
		}
	}
	return out
}

func validateLessThan(ctx *Context, c *shape.LessThanConstraint) []*report.Result {
	other := ctx.resolvePath(c.Path, ctx.FocusNode)
	var out []*report.Result
	for _, v := range ctx.ValueNodes {
		if !anySatisfies(v, other, cmpLess) {
			out = append(out, ctx.newResult(c.Component(), v, fmt.Sprintf("%v is not less than any compared value", v)))
		}
	}
	return out
}

func validateLessThanOrEquals(ctx *Context, c *shape.LessThanOrEqualsConstraint) []*report.Result {
	other := ctx.resolvePath(c.Path, ctx.FocusNode)
	var out []*report.Result
	for _, v := range ctx.ValueNodes {
		if !anySatisfies(v, other, cmpLess, cmpEqual) {
			out = append(out, ctx.newResult(c.Component(), v, fmt.Sprintf("%v is not less than or equal to any compared value", v)))
		}
	}
	return out
}

func anySatisfies(v rdf.Term, others []rdf.Term, accept ...compareResult) bool {
	for _, o := range others {
		cmp := compare(v, o)
		for _, a := range accept {
			if cmp == a {
				return true
			}
		}
	}
	return false
}

package constraint

import (
	"fmt"

	"github.com/ensaremirerol/shacl-validate/rdf"
	"github.com/ensaremirerol/shacl-validate/report"
	"github.com/ensaremirerol/shacl-validate/shape"
)

func validateQualifiedValueShape(ctx *Context, c *shape.QualifiedValueShapeConstraint) []*report.Result {
	count := 0
	for _, v := range ctx.ValueNodes {
		if !ctx.ValidateNested(v, c.Shape).Conforms {
			continue
		}
		if c.Disjoint && conformsToSibling(ctx, v, c.Siblings) {
			continue
		}
		count++
	}

	var out []*report.Result
	if c.Min != nil && count < *c.Min {
		out = append(out, ctx.newResult("QualifiedMinCount", nil, fmt.Sprintf("only %d value(s) conform to the qualified shape, expected at least %d", count, *c.Min)))
	}
	if c.Max != nil && count > *c.Max {
		out = append(out, ctx.newResult("QualifiedMaxCount", nil, fmt.Sprintf("%d value(s) conform to the qualified shape, expected at most %d", count, *c.Max)))
	}
	return out
}

func conformsToSibling(ctx *Context, v rdf.Term, siblings []*shape.QualifiedValueShapeConstraint) bool {
	for _, sib := range siblings {
		if ctx.ValidateNested(v, sib.Shape).Conforms {
			return true
		}
	}
	return false
}

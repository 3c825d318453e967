package constraint

import (
	"fmt"

	"github.com/ensaremirerol/shacl-validate/report"
	"github.com/ensaremirerol/shacl-validate/shape"
)

func validateHasValue(ctx *Context, c *shape.HasValueConstraint) []*report.Result {
	if containsTerm(ctx.ValueNodes, c.Value) {
		return nil
	}
	return []*report.Result{ctx.newResult(c.Component(), nil, fmt.Sprintf("no value node equals required value %v", c.Value))}
}

func validateIn(ctx *Context, c *shape.InConstraint) []*report.Result {
	var out []*report.Result
	for _, v := range ctx.ValueNodes {
		if !containsTerm(c.Values, v) {
			out = append(out, ctx.newResult(c.Component(), v, fmt.Sprintf("%v is not in the allowed value list", v)))
		}
	}
	return out
}

package constraint

import (
	"fmt"

	"github.com/ensaremirerol/shacl-validate/report"
	"github.com/ensaremirerol/shacl-validate/shape"
)

func validateNode(ctx *Context, c *shape.NodeConstraint) []*report.Result {
	var out []*report.Result
	for _, v := range ctx.ValueNodes {
		nested := ctx.ValidateNested(v, c.Shape)
		if !nested.Conforms {
			r := ctx.newResult(c.Component(), v, fmt.Sprintf("%v does not conform to the referenced shape", v))
			r.Details = nested.Results
			out = append(out, r)
		}
	}
	return out
}

func validateNot(ctx *Context, c *shape.NotConstraint) []*report.Result {
	var out []*report.Result
	for _, v := range ctx.ValueNodes {
		nested := ctx.ValidateNested(v, c.Shape)
		if nested.Conforms {
			out = append(out, ctx.newResult(c.Component(), v, fmt.Sprintf("%v conforms to the negated shape", v)))
		}
	}
	return out
}

func validateAnd(ctx *Context, c *shape.AndConstraint) []*report.Result {
	var out []*report.Result
	for _, v := range ctx.ValueNodes {
		var details []*report.Result
		failed := false
		for _, s := range c.Shapes {
			nested := ctx.ValidateNested(v, s)
			if !nested.Conforms {
				failed = true
				details = append(details, nested.Results...)
			}
		}
		if failed {
			r := ctx.newResult(c.Component(), v, fmt.Sprintf("%v does not conform to every branch of sh:and", v))
			r.Details = details
			out = append(out, r)
		}
	}
	return out
}

func validateOr(ctx *Context, c *shape.OrConstraint) []*report.Result {
	var out []*report.Result
	for _, v := range ctx.ValueNodes {
		var details []*report.Result
		conformed := false
		for _, s := range c.Shapes {
			nested := ctx.ValidateNested(v, s)
			if nested.Conforms {
				conformed = true
				break
			}
			details = append(details, nested.Results...)
		}
		if !conformed {
			r := ctx.newResult(c.Component(), v, fmt.Sprintf("%v does not conform to any branch of sh:or", v))
			r.Details = details
			out = append(out, r)
		}
	}
	return out
}

func validateXone(ctx *Context, c *shape.XoneConstraint) []*report.Result {
	var out []*report.Result
	for _, v := range ctx.ValueNodes {
		var details []*report.Result
		count := 0
		for _, s := range c.Shapes {
			nested := ctx.ValidateNested(v, s)
			if nested.Conforms {
				count++
			} else {
				details = append(details, nested.Results...)
			}
		}
		if count != 1 {
			r := ctx.newResult(c.Component(), v, fmt.Sprintf("%v conforms to %d of the sh:xone branches, expected exactly 1", v, count))
			r.Details = details
			out = append(out, r)
		}
	}
	return out
}

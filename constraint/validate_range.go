package constraint

import (
	"fmt"

	"github.com/ensaremirerol/shacl-validate/report"
	"github.com/ensaremirerol/shacl-validate/shape"
)

func validateRange(ctx *Context, c *shape.RangeConstraint) []*report.Result {
	var out []*report.Result
	for _, v := range ctx.ValueNodes {
		cmp := compare(v, c.Bound)
		ok := false
		switch c.Op {
		case shape.OpMinExclusive:
			ok = cmp == cmpGreater
		case shape.OpMinInclusive:
			ok = cmp == cmpGreater || cmp == cmpEqual
		case shape.OpMaxExclusive:
			ok = cmp == cmpLess
		case shape.OpMaxInclusive:
			ok = cmp == cmpLess || cmp == cmpEqual
		}
		if !ok {
			out = append(out, ctx.newResult(c.Component(), v, fmt.Sprintf("%v fails the %s bound %v", v, c.Component(), c.Bound)))
		}
	}
	return out
}

package constraint

import (
	"fmt"

	"github.com/ensaremirerol/shacl-validate/report"
	"github.com/ensaremirerol/shacl-validate/shape"
)

func validateMinCount(ctx *Context, c *shape.MinCountConstraint) []*report.Result {
	if len(ctx.ValueNodes) >= c.Min {
		return nil
	}
	return []*report.Result{ctx.newResult(c.Component(), nil, fmt.Sprintf("expected at least %d value(s), got %d", c.Min, len(ctx.ValueNodes)))}
}

func validateMaxCount(ctx *Context, c *shape.MaxCountConstraint) []*report.Result {
	if len(ctx.ValueNodes) <= c.Max {
		return nil
	}
	return []*report.Result{ctx.newResult(c.Component(), nil, fmt.Sprintf("expected at most %d value(s), got %d", c.Max, len(ctx.ValueNodes)))}
}

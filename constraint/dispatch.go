package constraint

import (
	"sort"

	"github.com/ensaremirerol/shacl-validate/report"
	"github.com/ensaremirerol/shacl-validate/shape"
)

// catalogOrder is the fixed evaluation order, independent of compile
// order, required by spec.md §4.4 ("so diagnostics are reproducible").
var catalogOrder = []string{
	"Class", "Datatype", "NodeKind",
	"MinCount", "MaxCount",
	"MinExclusive", "MinInclusive", "MaxExclusive", "MaxInclusive",
	"MinLength", "MaxLength", "Pattern", "LanguageIn", "UniqueLang",
	"Equals", "Disjoint", "LessThan", "LessThanOrEquals",
	"HasValue", "In",
	"Node", "Not", "And", "Or", "Xone", "QualifiedMinCount", "QualifiedMaxCount",
	"SPARQL",
}

var orderIndex = func() map[string]int {
	m := make(map[string]int, len(catalogOrder))
	for i, c := range catalogOrder {
		m[c] = i
	}
	return m
}()

// ValidateAll runs every constraint on ctx.Shape against ctx.ValueNodes
// in catalog order, returning every emitted result (spec.md §4.4).
func ValidateAll(ctx *Context) []*report.Result {
	cons := make([]shape.Constraint, len(ctx.Shape.Constraints))
	copy(cons, ctx.Shape.Constraints)
	sort.SliceStable(cons, func(i, j int) bool {
		return orderIndex[cons[i].Component()] < orderIndex[cons[j].Component()]
	})

	var out []*report.Result
	for _, con := range cons {
		out = append(out, evalOne(ctx, con)...)
	}
	return out
}

func evalOne(ctx *Context, con shape.Constraint) []*report.Result {
	switch c := con.(type) {
	case *shape.ClassConstraint:
		return validateClass(ctx, c)
	case *shape.DatatypeConstraint:
		return validateDatatype(ctx, c)
	case *shape.NodeKindConstraint:
		return validateNodeKind(ctx, c)
	case *shape.MinCountConstraint:
		return validateMinCount(ctx, c)
	case *shape.MaxCountConstraint:
		return validateMaxCount(ctx, c)
	case *shape.RangeConstraint:
		return validateRange(ctx, c)
	case *shape.MinLengthConstraint:
		return validateMinLength(ctx, c)
	case *shape.MaxLengthConstraint:
		return validateMaxLength(ctx, c)
	case *shape.PatternConstraint:
		return validatePattern(ctx, c)
	case *shape.LanguageInConstraint:
		return validateLanguageIn(ctx, c)
	case *shape.UniqueLangConstraint:
		return validateUniqueLang(ctx, c)
	case *shape.EqualsConstraint:
		return validateEquals(ctx, c)
	case *shape.DisjointConstraint:
		return validateDisjoint(ctx, c)
	case *shape.LessThanConstraint:
		return validateLessThan(ctx, c)
	case *shape.LessThanOrEqualsConstraint:
		return validateLessThanOrEquals(ctx, c)
	case *shape.HasValueConstraint:
		return validateHasValue(ctx, c)
	case *shape.InConstraint:
		return validateIn(ctx, c)
	case *shape.NodeConstraint:
		return validateNode(ctx, c)
	case *shape.NotConstraint:
		return validateNot(ctx, c)
	case *shape.AndConstraint:
		return validateAnd(ctx, c)
	case *shape.OrConstraint:
		return validateOr(ctx, c)
	case *shape.XoneConstraint:
		return validateXone(ctx, c)
	case *shape.QualifiedValueShapeConstraint:
		return validateQualifiedValueShape(ctx, c)
	case *shape.SparqlConstraint:
		return validateSparql(ctx, c)
	default:
		return nil
	}
}

package constraint

import (
	"strconv"

	"github.com/ensaremirerol/shacl-validate/path"
	"github.com/ensaremirerol/shacl-validate/rdf"
	"github.com/ensaremirerol/shacl-validate/report"
	"github.com/ensaremirerol/shacl-validate/voc/sh"
)

// componentIRI builds the sh:XConstraintComponent IRI for a Component().
func componentIRI(component string) rdf.Term {
	return rdf.IRI(sh.ConstraintComponent(component))
}

// newResult builds the common shape of a violation result: focus node,
// source shape, severity, and source constraint component always set;
// message is the sole constraint-emitted diagnostic, unioned with the
// shape's own sh:message set (spec.md §4.5).
func (ctx *Context) newResult(component string, value rdf.Term, message string) *report.Result {
	return ctx.newResultTerm(componentIRI(component), value, message)
}

// newResultTerm is newResult with the source-constraint-component IRI
// given directly rather than built from a core-catalog local name, for
// constraints whose component is a custom sh:ConstraintComponent
// declaration rather than one of spec.md §6's built-in components.
func (ctx *Context) newResultTerm(component rdf.Term, value rdf.Term, message string) *report.Result {
	r := &report.Result{
		FocusNode:                 ctx.FocusNode,
		SourceShape:               ctx.Shape.Node,
		SourceShapeName:           ctx.Shape.Name,
		SourceConstraintComponent: component,
		Severity:                  ctx.Shape.Severity,
		Value:                     value,
	}
	if len(ctx.Path) > 0 {
		if heads := path.HeadPredicates(ctx.Path); len(heads) > 0 {
			r.ResultPath = heads[0]
		}
	}
	var msgs []string
	if message != "" {
		msgs = []string{message}
	}
	r.Messages = report.DedupMessages(msgs, ctx.Shape.Message)
	return r
}

// resolvePath evaluates p against node over the data graph.
func (ctx *Context) resolvePath(p path.Path, node rdf.Term) []rdf.Term {
	return path.Resolve(p, ctx.Data, node)
}

// parseNumber returns the float64 value of a literal's lexical form, or
// false if it is not numeric.
func parseNumber(t rdf.Term) (float64, bool) {
	lit, ok := rdf.AsLiteral(t)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(lit.Lexical, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// compareResult is the outcome of comparing two terms under spec.md
// §4.4's "numeric if both parse as numbers, else lexicographic, mixed
// pairs fail" discipline.
type compareResult int

const (
	cmpFail compareResult = iota // operands not comparable: treat as a failed relation
	cmpLess
	cmpEqual
	cmpGreater
)

// compare orders a against b per the range/pair comparison discipline.
// Non-literal operands always fail to compare.
func compare(a, b rdf.Term) compareResult {
	la, aok := rdf.AsLiteral(a)
	lb, bok := rdf.AsLiteral(b)
	if !aok || !bok {
		return cmpFail
	}
	na, aNum := parseNumber(a)
	nb, bNum := parseNumber(b)
	if aNum && bNum {
		switch {
		case na < nb:
			return cmpLess
		case na > nb:
			return cmpGreater
		default:
			return cmpEqual
		}
	}
	if aNum != bNum {
		return cmpFail
	}
	switch {
	case la.Lexical < lb.Lexical:
		return cmpLess
	case la.Lexical > lb.Lexical:
		return cmpGreater
	default:
		return cmpEqual
	}
}

func containsTerm(vs []rdf.Term, t rdf.Term) bool {
	for _, v := range vs {
		if rdf.Equal(v, t) {
			return true
		}
	}
	return false
}

func sameTermSet(a, b []rdf.Term) bool {
	if len(a) != len(b) {
		return false
	}
	for _, v := range a {
		if !containsTerm(b, v) {
			return false
		}
	}
	return true
}

func intersects(a, b []rdf.Term) bool {
	for _, v := range a {
		if containsTerm(b, v) {
			return true
		}
	}
	return false
}

package constraint

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ensaremirerol/shacl-validate/rdf"
	"github.com/ensaremirerol/shacl-validate/report"
	"github.com/ensaremirerol/shacl-validate/shape"
)

// lengthOf returns the string form min/maxLength measures length
// against: a literal's lexical form, or an IRI's string form. Blank
// nodes have no string form and always fail the length check.
func lengthOf(v rdf.Term) (string, bool) {
	if lit, ok := rdf.AsLiteral(v); ok {
		return lit.Lexical, true
	}
	if rdf.IsIRI(v) {
		return v.String(), true
	}
	return "", false
}

func validateMinLength(ctx *Context, c *shape.MinLengthConstraint) []*report.Result {
	var out []*report.Result
	for _, v := range ctx.ValueNodes {
		s, ok := lengthOf(v)
		if !ok || len(s) < c.Min {
			out = append(out, ctx.newResult(c.Component(), v, fmt.Sprintf("%v is shorter than minLength %d", v, c.Min)))
		}
	}
	return out
}

func validateMaxLength(ctx *Context, c *shape.MaxLengthConstraint) []*report.Result {
	var out []*report.Result
	for _, v := range ctx.ValueNodes {
		s, ok := lengthOf(v)
		if !ok || len(s) > c.Max {
			out = append(out, ctx.newResult(c.Component(), v, fmt.Sprintf("%v is longer than maxLength %d", v, c.Max)))
		}
	}
	return out
}

// compilePattern builds a regexp honoring the {i, m, s} SHACL flag
// subset, translated to Go's inline (?ims) group.
func compilePattern(pattern, flags string) (*regexp.Regexp, error) {
	var allowed strings.Builder
	for _, f := range flags {
		if f == 'i' || f == 'm' || f == 's' {
			allowed.WriteRune(f)
		}
	}
	expr := pattern
	if allowed.Len() > 0 {
		expr = "(?" + allowed.String() + ")" + pattern
	}
	return regexp.Compile(expr)
}

func validatePattern(ctx *Context, c *shape.PatternConstraint) []*report.Result {
	re, err := compilePattern(c.Pattern, c.Flags)
	if err != nil {
		return []*report.Result{ctx.newResult(c.Component(), nil, fmt.Sprintf("invalid pattern %q: %v", c.Pattern, err))}
	}
	var out []*report.Result
	for _, v := range ctx.ValueNodes {
		lit, ok := rdf.AsLiteral(v)
		if !ok {
			continue // non-literals are skipped (spec.md §4.4)
		}
		if !re.MatchString(lit.Lexical) {
			out = append(out, ctx.newResult(c.Component(), v, fmt.Sprintf("%q does not match pattern %q", lit.Lexical, c.Pattern)))
		}
	}
	return out
}

func validateLanguageIn(ctx *Context, c *shape.LanguageInConstraint) []*report.Result {
	var out []*report.Result
	for _, v := range ctx.ValueNodes {
		lit, ok := rdf.AsLiteral(v)
		if !ok || !lit.HasLang || !langAllowed(lit.Lang, c.Langs) {
			out = append(out, ctx.newResult(c.Component(), v, fmt.Sprintf("%v's language tag is not in the allowed set", v)))
		}
	}
	return out
}

func langAllowed(lang string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(a, lang) {
			return true
		}
	}
	return false
}

func validateUniqueLang(ctx *Context, c *shape.UniqueLangConstraint) []*report.Result {
	if !c.Enabled {
		return nil
	}
	seen := make(map[string]rdf.Term)
	var out []*report.Result
	for _, v := range ctx.ValueNodes {
		lit, ok := rdf.AsLiteral(v)
		if !ok || !lit.HasLang {
			continue
		}
		key := strings.ToLower(lit.Lang)
		if first, dup := seen[key]; dup {
			out = append(out, ctx.newResult(c.Component(), v, fmt.Sprintf("language %q duplicated by %v and %v", lit.Lang, first, v)))
			continue
		}
		seen[key] = v
	}
	return out
}

package sparql

import (
	"regexp"

	"github.com/ensaremirerol/shacl-validate/rdf"
)

var reVarToken = regexp.MustCompile(`[{][?$]([A-Za-z_][A-Za-z0-9_]*)[}]`)

// TemplateMessage substitutes every {?var}/{$var} occurrence in msg with
// the normalized string form of bindings[var] (spec.md §4.6's message
// templating rule): a literal's lexical form, or any other term's string
// form with IRI brackets stripped. A token with no matching binding is
// left untouched.
func TemplateMessage(msg string, bindings map[string]rdf.Term) string {
	return reVarToken.ReplaceAllStringFunc(msg, func(tok string) string {
		name := reVarToken.FindStringSubmatch(tok)[1]
		v, ok := bindings[name]
		if !ok || v == nil {
			return tok
		}
		if lit, isLit := rdf.AsLiteral(v); isLit {
			return lit.Lexical
		}
		return StripBrackets(v.String())
	})
}

// TemplateMessages maps TemplateMessage over every template.
func TemplateMessages(templates []string, bindings map[string]rdf.Term) []string {
	out := make([]string, len(templates))
	for i, t := range templates {
		out[i] = TemplateMessage(t, bindings)
	}
	return out
}

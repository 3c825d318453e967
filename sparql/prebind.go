package sparql

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/ensaremirerol/shacl-validate/rdf"
)

// ErrUnsupportedConstruct is returned when a query contains a construct
// pre-binding cannot safely rewrite around (spec.md §4.6 step 3: nested
// SELECT, MINUS, SERVICE).
var ErrUnsupportedConstruct = errors.New("sparql: query uses a construct unsupported by pre-binding")

var (
	reWhere        = regexp.MustCompile(`WHERE\s*\{`)
	reNestedSelect = regexp.MustCompile(`(?i)\{\s*SELECT\b`)
	reMinus        = regexp.MustCompile(`(?i)\bMINUS\b`)
	reService      = regexp.MustCompile(`(?i)\bSERVICE\b`)
	reThisVar      = regexp.MustCompile(`[?$]this\b`)
)

// checkSupported rejects queries using a construct pre-binding cannot
// safely handle.
func checkSupported(query string) error {
	if reNestedSelect.MatchString(query) || reMinus.MatchString(query) || reService.MatchString(query) {
		return ErrUnsupportedConstruct
	}
	return nil
}

// bindQuery injects a VALUES clause for every binding immediately after
// the query's outer WHERE { (spec.md §4.6 steps 1-2).
func bindQuery(query string, bindings map[string]rdf.Term) (string, error) {
	if err := checkSupported(query); err != nil {
		return "", err
	}
	loc := reWhere.FindStringIndex(query)
	if loc == nil {
		return "", fmt.Errorf("sparql: query has no WHERE { block")
	}
	var values strings.Builder
	for name, term := range bindings {
		if term == nil {
			continue
		}
		fmt.Fprintf(&values, " VALUES ?%s { %s } ", name, FormatTerm(term))
	}
	return query[:loc[1]] + values.String() + query[loc[1]:], nil
}

// fallbackRewrite substitutes ?this/$this textually and injects a BIND
// immediately after WHERE {, used when the initial pre-bound execution
// produced no violations but the query references $this/?this (spec.md
// §4.6 step 5).
func fallbackRewrite(query string, this rdf.Term) (string, error) {
	loc := reWhere.FindStringIndex(query)
	if loc == nil {
		return "", fmt.Errorf("sparql: query has no WHERE { block")
	}
	bind := fmt.Sprintf(" BIND(%s AS ?this) ", FormatTerm(this))
	return query[:loc[1]] + bind + query[loc[1]:], nil
}

// referencesThis reports whether query mentions ?this or $this.
func referencesThis(query string) bool {
	return reThisVar.MatchString(query)
}

// FormatTerm renders t in SPARQL term syntax: <iri>, _:blank, or a
// quoted literal with datatype/language suffix.
func FormatTerm(t rdf.Term) string {
	switch v := t.(type) {
	case quad.IRI:
		return "<" + string(v) + ">"
	case quad.BNode:
		return "_:" + string(v)
	default:
		lit, ok := rdf.AsLiteral(t)
		if !ok {
			return fmt.Sprintf("%q", t.String())
		}
		if lit.HasLang {
			return fmt.Sprintf("%q@%s", lit.Lexical, lit.Lang)
		}
		if lit.Datatype != "" && lit.Datatype != "http://www.w3.org/2001/XMLSchema#string" {
			return fmt.Sprintf("%q^^<%s>", lit.Lexical, lit.Datatype)
		}
		return fmt.Sprintf("%q", lit.Lexical)
	}
}

// StripBrackets normalizes an IRI's bracketed form for message
// templating (spec.md §4.6: "normalized string form ... IRI-brackets
// stripped").
func StripBrackets(s string) string {
	s = strings.TrimPrefix(s, "<")
	s = strings.TrimSuffix(s, ">")
	return s
}

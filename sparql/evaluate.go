package sparql

import (
	"context"

	"github.com/ensaremirerol/shacl-validate/rdf"
)

// EvalOptions is everything one SPARQL-based constraint evaluation
// needs, already assembled by the caller (spec.md §4.6 step 1):
// Bindings always carries "this", "shapesGraph", "currentShape", and
// optionally "value"/"PATH" plus the component's parameter bindings.
type EvalOptions struct {
	Query            string
	Select           bool
	Bindings         map[string]rdf.Term
	MessageTemplates []string
}

// Violation is one pre-binding-produced failure: for a SELECT query, the
// returned solution merged over the base bindings; for an ASK query, the
// base bindings alone. Messages are already templated.
type Violation struct {
	Bindings map[string]rdf.Term
	Messages []string
}

// Evaluate runs one SPARQL-based constraint per spec.md §4.6: bind,
// execute, and — if the query mentions $this/?this but produced no
// violations — retry with the textual fallback rewrite.
func Evaluate(ctx context.Context, store Store, opt EvalOptions) ([]Violation, error) {
	violations, err := evaluateOnce(ctx, store, opt.Query, opt)
	if err != nil {
		return nil, err
	}
	if len(violations) == 0 && referencesThis(opt.Query) {
		this := opt.Bindings["this"]
		rewritten, rerr := fallbackRewrite(opt.Query, this)
		if rerr == nil {
			if v2, err2 := evaluateOnce(ctx, store, rewritten, opt); err2 == nil {
				violations = v2
			}
		}
	}
	return violations, nil
}

func evaluateOnce(ctx context.Context, store Store, query string, opt EvalOptions) ([]Violation, error) {
	bound, err := bindQuery(query, opt.Bindings)
	if err != nil {
		return nil, err
	}
	prepared, err := store.Parse(bound)
	if err != nil {
		return nil, err
	}
	res, err := store.Execute(ctx, prepared)
	if err != nil {
		return nil, err
	}
	return buildViolations(opt, res), nil
}

func buildViolations(opt EvalOptions, res Results) []Violation {
	if opt.Select {
		var out []Violation
		for _, sol := range res.Solutions {
			merged := mergeBindings(opt.Bindings, sol)
			out = append(out, Violation{Bindings: merged, Messages: TemplateMessages(opt.MessageTemplates, merged)})
		}
		return out
	}
	if res.AskResult {
		return nil
	}
	return []Violation{{Bindings: opt.Bindings, Messages: TemplateMessages(opt.MessageTemplates, opt.Bindings)}}
}

func mergeBindings(base map[string]rdf.Term, sol Solution) map[string]rdf.Term {
	out := make(map[string]rdf.Term, len(base)+len(sol))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range sol {
		out[k] = v
	}
	return out
}

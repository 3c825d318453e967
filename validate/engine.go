// Package validate wires the shape compiler, target resolver, and
// constraint catalog into the end-to-end SHACL core validation process
// (spec.md §4.5, §5): one Engine per run, holding the data graph, the
// compiled shapes, a warmed target cache, and an optional SPARQL store.
package validate

import (
	"context"
	"runtime"
	"sync"

	"github.com/ensaremirerol/shacl-validate/constraint"
	"github.com/ensaremirerol/shacl-validate/path"
	"github.com/ensaremirerol/shacl-validate/rdf"
	"github.com/ensaremirerol/shacl-validate/report"
	"github.com/ensaremirerol/shacl-validate/shape"
	"github.com/ensaremirerol/shacl-validate/sparql"
	"github.com/ensaremirerol/shacl-validate/target"
)

// Engine runs shape validation against a fixed data graph and shapes
// graph (spec.md §4.5). Build one per validation run; it holds no state
// that should outlive the run.
type Engine struct {
	Data        *rdf.Graph
	Shapes      []*shape.Shape
	Cache       *target.Cache
	SparqlStore sparql.Store

	// Workers bounds the shape-level goroutine fan-out; zero means
	// runtime.GOMAXPROCS(0) (spec.md §5).
	Workers int
}

// NewEngine builds an Engine from a data graph and a compiled shape set,
// warming the target cache once, single-threaded, before any concurrent
// validation starts (spec.md §5).
func NewEngine(data *rdf.Graph, shapes []*shape.Shape, store sparql.Store) *Engine {
	cache := target.NewCache(data)
	cache.Warm(allTargets(shapes))
	return &Engine{Data: data, Shapes: shapes, Cache: cache, SparqlStore: store}
}

func allTargets(shapes []*shape.Shape) []target.Target {
	var out []target.Target
	seen := make(map[string]bool)
	var walk func(*shape.Shape)
	walk = func(s *shape.Shape) {
		if s == nil {
			return
		}
		k := rdf.Key(s.Node)
		if seen[k] {
			return
		}
		seen[k] = true
		out = append(out, s.Targets...)
		for _, ps := range s.PropertyShapes {
			walk(ps)
		}
	}
	for _, s := range shapes {
		walk(s)
	}
	return out
}

// Validate runs every top-level shape against its resolved targets and
// merges the results into a single report (spec.md §4.5). Nested shapes
// reached only through sh:property/sh:node/sh:and/... are validated as
// part of their referencing constraint, never as independent top-level
// tasks.
func (e *Engine) Validate(ctx context.Context) *report.Report {
	workers := e.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	type job struct{ s *shape.Shape }
	jobs := make(chan job)
	results := make(chan *report.Report, len(e.Shapes))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- e.validateTopLevel(ctx, j.s)
			}
		}()
	}
	go func() {
		for _, s := range e.Shapes {
			jobs <- job{s}
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	out := report.New()
	for r := range results {
		out.Merge(r)
	}
	return out
}

// validateTopLevel resolves one shape's targets and fans out one
// goroutine per focus node (spec.md §4.5), merging per-focus reports
// sequentially.
func (e *Engine) validateTopLevel(ctx context.Context, s *shape.Shape) *report.Report {
	out := report.New()
	if s.Deactivated {
		return out
	}

	focusNodes := e.resolveFocusNodes(s)
	if len(focusNodes) == 0 {
		return out
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, focus := range focusNodes {
		focus := focus
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := e.validateFocus(ctx, focus, s)
			mu.Lock()
			out.Merge(r)
			mu.Unlock()
		}()
	}
	wg.Wait()
	return out
}

func (e *Engine) resolveFocusNodes(s *shape.Shape) []rdf.Term {
	seen := make(map[string]bool)
	var out []rdf.Term
	for _, t := range s.Targets {
		for _, f := range e.Cache.Resolve(t) {
			k := rdf.Key(f)
			if !seen[k] {
				seen[k] = true
				out = append(out, f)
			}
		}
	}
	return out
}

// validateFocus runs every constraint and closedness check for shape s
// against one focus node, recursing into nested shapes via
// constraint.Context.ValidateNested.
func (e *Engine) validateFocus(ctx context.Context, focus rdf.Term, s *shape.Shape) *report.Report {
	out := report.New()
	nested := e.ValidateNested(ctx, focus, s)
	out.Conforms = nested.Conforms
	out.Results = nested.Results
	return out
}

// ValidateNested runs shape s against one already-known focus node
// (i.e. a focus node supplied by a referencing constraint, not a
// target), returning the minimal constraint.NestedReport shape the
// constraint package needs. This is the callback wired into every
// constraint.Context so sh:node/sh:and/sh:or/sh:xone/sh:not/
// sh:qualifiedValueShape can recurse without constraint importing
// validate (spec.md §4.4, §9).
func (e *Engine) ValidateNested(ctx context.Context, focus rdf.Term, s *shape.Shape) *constraint.NestedReport {
	if s.Deactivated {
		return &constraint.NestedReport{Conforms: true}
	}

	var results []*report.Result
	if s.HasPath {
		values := path.Resolve(s.Path, e.Data, focus)
		results = append(results, e.runConstraints(ctx, focus, s.Path, values, s)...)
		for _, v := range values {
			for _, ps := range s.PropertyShapes {
				results = append(results, e.validateNestedPath(ctx, v, ps)...)
			}
		}
	} else {
		results = append(results, e.runConstraints(ctx, focus, nil, []rdf.Term{focus}, s)...)
		for _, ps := range s.PropertyShapes {
			results = append(results, e.validateNestedPath(ctx, focus, ps)...)
		}
	}
	results = append(results, e.checkClosed(focus, s)...)

	return &constraint.NestedReport{Conforms: len(results) == 0, Results: results}
}

func (e *Engine) validateNestedPath(ctx context.Context, focus rdf.Term, ps *shape.Shape) []*report.Result {
	if ps.Deactivated {
		return nil
	}
	values := path.Resolve(ps.Path, e.Data, focus)
	out := e.runConstraints(ctx, focus, ps.Path, values, ps)
	for _, v := range values {
		for _, child := range ps.PropertyShapes {
			out = append(out, e.validateNestedPath(ctx, v, child)...)
		}
	}
	out = append(out, e.checkClosed(focus, ps)...)
	return out
}

func (e *Engine) runConstraints(ctx context.Context, focus rdf.Term, p path.Path, values []rdf.Term, s *shape.Shape) []*report.Result {
	cctx := &constraint.Context{
		Ctx:            ctx,
		Data:           e.Data,
		FocusNode:      focus,
		Path:           p,
		ValueNodes:     values,
		Shape:          s,
		SparqlStore:    e.SparqlStore,
		ShapesGraphIRI: rdf.ShapesGraphIRI,
		ValidateNested: func(focus rdf.Term, nested *shape.Shape) *constraint.NestedReport {
			return e.ValidateNested(ctx, focus, nested)
		},
	}
	return constraint.ValidateAll(cctx)
}

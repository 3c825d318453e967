// Package testutil provides an in-memory sparql.Store double for
// exercising pre-binding, fallback rewrite, and message templating
// without a real SPARQL engine (spec.md §4.6/§9: the engine is an
// external collaborator, not part of the core's test surface).
package testutil

import (
	"context"
	"errors"

	"github.com/ensaremirerol/shacl-validate/sparql"
)

// Scripted is a recording, scripted sparql.Store: Parse always
// succeeds and records the bound query text it was given; Execute
// returns whatever script was queued, one entry per call, so a test can
// assert on the exact text pre-binding produced and control what each
// successive Execute call returns (e.g. empty on the first pre-bound
// attempt, then a violation on the fallback-rewritten retry).
type Scripted struct {
	Queries []string
	script  []scriptedResult
	calls   int
}

type scriptedResult struct {
	res sparql.Results
	err error
}

// NewScripted builds a double that returns results[i] (and no error) on
// the i-th Execute call, repeating the last entry if exhausted.
func NewScripted(results ...sparql.Results) *Scripted {
	s := &Scripted{}
	for _, r := range results {
		s.script = append(s.script, scriptedResult{res: r})
	}
	return s
}

// FailNext appends a scripted error result.
func (s *Scripted) FailNext(err error) {
	s.script = append(s.script, scriptedResult{err: err})
}

func (s *Scripted) Parse(query string) (sparql.Prepared, error) {
	s.Queries = append(s.Queries, query)
	return query, nil
}

func (s *Scripted) Execute(_ context.Context, p sparql.Prepared) (sparql.Results, error) {
	if s.calls >= len(s.script) {
		if len(s.script) == 0 {
			return sparql.Results{}, errors.New("testutil: no scripted result")
		}
		return s.script[len(s.script)-1].res, s.script[len(s.script)-1].err
	}
	r := s.script[s.calls]
	s.calls++
	return r.res, r.err
}

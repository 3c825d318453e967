// Package sparql implements spec.md §4.6's SPARQL constraint
// pre-binding, parameter substitution, and message templating over an
// externally supplied SPARQL backend. No query engine ships here: the
// engine is an external collaborator per spec.md §1, reached through
// the Store trait-shaped interface below.
package sparql

import (
	"context"
	"errors"

	"github.com/ensaremirerol/shacl-validate/rdf"
)

// ErrNoBackend is returned by NopStore, for building and testing
// without wiring a real SPARQL engine.
var ErrNoBackend = errors.New("sparql: no backend configured")

// Prepared is an opaque, store-specific compiled query.
type Prepared interface{}

// Solution is one row of a SELECT result: variable name (without the
// leading '?'/'$') to bound term.
type Solution map[string]rdf.Term

// Results is the outcome of executing a Prepared query: either a SELECT
// solution set or an ASK boolean, discriminated by Ask.
type Results struct {
	Ask       bool
	AskResult bool
	Solutions []Solution
}

// Store is the abstract SPARQL executor the core validates constraints
// against (spec.md §4.6/§9's trait-shaped interface).
type Store interface {
	Parse(query string) (Prepared, error)
	Execute(ctx context.Context, p Prepared) (Results, error)
}

// NopStore always fails, letting a caller build and run the rest of the
// module without a SPARQL backend wired in.
type NopStore struct{}

func (NopStore) Parse(string) (Prepared, error)                      { return nil, ErrNoBackend }
func (NopStore) Execute(context.Context, Prepared) (Results, error) { return Results{}, ErrNoBackend }

// Package loader reads an N-Quads/N-Triples file into an rdf.Graph,
// grounded on Cayley's own graphtest/testutil.LoadGraph: open the file,
// decode with quad/nquads, and collect the result with quad.ReadAll.
package loader

import (
	"fmt"
	"os"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"

	"github.com/ensaremirerol/shacl-validate/rdf"
)

// Load reads every quad in path and returns it as a triple graph. The
// quad label (named-graph component), if any, is dropped: this core
// treats the data graph and the shapes graph as two homogeneous triple
// sets, not a full named-graph quad store (spec.md §1).
func Load(path string) (*rdf.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: could not open %q: %w", path, err)
	}
	defer f.Close()

	dec := nquads.NewReader(f, false)
	quads, err := quad.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("loader: could not parse %q: %w", path, err)
	}

	triples := make([]rdf.Triple, len(quads))
	for i, q := range quads {
		triples[i] = rdf.Triple{Subject: q.Subject, Predicate: q.Predicate, Object: q.Object}
	}
	return rdf.NewGraph(triples), nil
}

package path

import (
	"errors"
	"fmt"

	"github.com/ensaremirerol/shacl-validate/rdf"
	"github.com/ensaremirerol/shacl-validate/voc/sh"
)

// ErrUnsupportedPathShape is returned when a path term in the shapes
// graph does not match any recognized SHACL path structure. This is a
// fatal Parse error for the containing shape (spec.md §7, error kind 1).
var ErrUnsupportedPathShape = errors.New("path: unsupported path structure")

var (
	pInverse     = rdf.IRI(sh.InversePath)
	pAlternative = rdf.IRI(sh.AlternativePath)
	pZeroOrMore  = rdf.IRI(sh.ZeroOrMorePath)
	pOneOrMore   = rdf.IRI(sh.OneOrMorePath)
	pZeroOrOne   = rdf.IRI(sh.ZeroOrOnePath)

	rdfFirst = rdf.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#first")
)

// Compile builds a Path from the shapes-graph term reachable at sh:path.
// term is either a bare IRI (a single-element path), a blank node headed
// RDF list (a sequence), or a blank node carrying exactly one of the
// sh:inversePath/sh:alternativePath/sh:zeroOrMorePath/sh:oneOrMorePath/
// sh:zeroOrOnePath modifiers.
func Compile(shapes *rdf.Graph, term rdf.Term) (Path, error) {
	if rdf.IsIRI(term) {
		return Path{Iri{Pred: term}}, nil
	}
	if !rdf.IsBlank(term) {
		return nil, fmt.Errorf("%w: path term %v is neither an IRI nor a blank node", ErrUnsupportedPathShape, term)
	}

	// Try the RDF-list (sequence) encoding first: a node with rdf:first
	// decodes as a sequence of recursively-compiled elements.
	if _, ok := shapes.ObjectForSubjectPredicate(term, rdfFirst); ok {
		members, err := shapes.List(term)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedPathShape, err)
		}
		if len(members) == 0 {
			return nil, fmt.Errorf("%w: empty path sequence", ErrUnsupportedPathShape)
		}
		seq := make(Path, 0, len(members))
		for _, m := range members {
			el, err := compileElement(shapes, m)
			if err != nil {
				return nil, err
			}
			seq = append(seq, el)
		}
		return seq, nil
	}

	el, err := compileElement(shapes, term)
	if err != nil {
		return nil, err
	}
	return Path{el}, nil
}

// compileElement compiles a single path element, handling the modifier
// blank-node shapes; it does not recurse into sequence lists because only
// a top-level Path may be a sequence (spec.md §3: "A top-level Path is a
// sequence; arbitrary nesting inside recursive variants is allowed").
func compileElement(shapes *rdf.Graph, term rdf.Term) (Element, error) {
	if rdf.IsIRI(term) {
		return Iri{Pred: term}, nil
	}
	if !rdf.IsBlank(term) {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedPathShape, term)
	}

	if inv, ok := shapes.ObjectForSubjectPredicate(term, pInverse); ok {
		if rdf.IsIRI(inv) {
			return Inverse{Pred: inv}, nil
		}
		sub, err := compileElement(shapes, inv)
		if err != nil {
			return nil, err
		}
		return inverseOf(sub)
	}
	if alt, ok := shapes.ObjectForSubjectPredicate(term, pAlternative); ok {
		members, err := shapes.List(alt)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedPathShape, err)
		}
		els := make([]Element, 0, len(members))
		for _, m := range members {
			el, err := compileElement(shapes, m)
			if err != nil {
				return nil, err
			}
			els = append(els, el)
		}
		return Alternative{Of: els}, nil
	}
	if zm, ok := shapes.ObjectForSubjectPredicate(term, pZeroOrMore); ok {
		sub, err := compileElement(shapes, zm)
		if err != nil {
			return nil, err
		}
		return ZeroOrMore{Of: sub}, nil
	}
	if om, ok := shapes.ObjectForSubjectPredicate(term, pOneOrMore); ok {
		sub, err := compileElement(shapes, om)
		if err != nil {
			return nil, err
		}
		return OneOrMore{Of: sub}, nil
	}
	if zo, ok := shapes.ObjectForSubjectPredicate(term, pZeroOrOne); ok {
		sub, err := compileElement(shapes, zo)
		if err != nil {
			return nil, err
		}
		return ZeroOrOne{Of: sub}, nil
	}

	return nil, fmt.Errorf("%w: blank node %v has no recognized path predicate", ErrUnsupportedPathShape, term)
}

// inverseOf wraps a compiled sub-element so it walks backwards, used when
// sh:inversePath points at something other than a bare IRI (e.g.
// inverse-of-a-sequence is not legal SHACL, but inverse-of-an-alternative
// is representable by inverting each branch).
func inverseOf(el Element) (Element, error) {
	switch v := el.(type) {
	case Iri:
		return Inverse{Pred: v.Pred}, nil
	case Alternative:
		inv := make([]Element, 0, len(v.Of))
		for _, m := range v.Of {
			im, err := inverseOf(m)
			if err != nil {
				return nil, err
			}
			inv = append(inv, im)
		}
		return Alternative{Of: inv}, nil
	default:
		return nil, fmt.Errorf("%w: sh:inversePath of a non-predicate element is not supported", ErrUnsupportedPathShape)
	}
}

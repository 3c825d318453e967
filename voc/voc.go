// Package voc implements an RDF namespace (vocabulary) registry, adapted
// from Cayley's voc package: a prefix/full-IRI registry used to shorten
// IRIs in diagnostics and long-form reports.
package voc

import (
	"strings"
	"sync"
)

// Namespace is an RDF namespace (vocabulary): a full IRI base and the
// short prefix used to abbreviate it.
type Namespace struct {
	Full   string
	Prefix string
}

// Namespaces is a set of registered namespaces, safe for concurrent use.
type Namespaces struct {
	mu       sync.RWMutex
	prefixes map[string]string
}

// Register adds ns to the registry.
func (p *Namespaces) Register(ns Namespace) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.prefixes == nil {
		p.prefixes = make(map[string]string)
	}
	p.prefixes[ns.Prefix] = ns.Full
}

// ShortIRI replaces a registered namespace's full IRI base with its
// prefix, e.g. "http://www.w3.org/ns/shacl#Violation" -> "sh:Violation".
func (p *Namespaces) ShortIRI(iri string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for pref, ns := range p.prefixes {
		if strings.HasPrefix(iri, ns) {
			return pref + iri[len(ns):]
		}
	}
	return iri
}

var global Namespaces

// Register adds ns to the global registry.
func Register(ns Namespace) { global.Register(ns) }

// RegisterPrefix globally associates prefix with a base vocabulary IRI.
func RegisterPrefix(prefix, ns string) {
	Register(Namespace{Prefix: prefix, Full: ns})
}

// ShortIRI shortens iri using the global registry.
func ShortIRI(iri string) string { return global.ShortIRI(iri) }

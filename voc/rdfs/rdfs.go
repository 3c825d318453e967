// Package rdfs contains constants of the RDF Schema vocabulary, copied
// from Cayley's voc/rdfs and trimmed to the terms the SHACL core reads
// for target resolution (rdfs:subClassOf, rdfs:subPropertyOf) and shape
// naming (rdfs:label).
package rdfs

import "github.com/ensaremirerol/shacl-validate/voc"

func init() {
	voc.RegisterPrefix(Prefix, NS)
}

const (
	NS     = `http://www.w3.org/2000/01/rdf-schema#`
	Prefix = `rdfs:`
)

const (
	// The class resource; everything is a class.
	Class = NS + `Class`
	// A human-readable name for the subject.
	Label = NS + `label`
	// A human-readable description of the subject.
	Comment = NS + `comment`
	// The subject is a subclass of a class.
	SubClassOf = NS + `subClassOf`
	// The subject is a subproperty of a property.
	SubPropertyOf = NS + `subPropertyOf`
)

// Package rdf contains constants of the RDF Concepts Vocabulary, copied
// from Cayley's voc/rdf and trimmed to the terms the SHACL core reads.
package rdf

import "github.com/ensaremirerol/shacl-validate/voc"

func init() {
	voc.RegisterPrefix(Prefix, NS)
}

const (
	NS     = `http://www.w3.org/1999/02/22-rdf-syntax-ns#`
	Prefix = `rdf:`
)

const (
	// The subject is an instance of a class.
	Type = NS + `type`
	// The class of RDF Lists.
	List = NS + `List`
	// The empty list.
	Nil = NS + `nil`
	// The first item in the subject RDF list.
	First = NS + `first`
	// The rest of the subject RDF list after the first item.
	Rest = NS + `rest`
	// The datatype of language-tagged string values.
	LangString = NS + `langString`
)

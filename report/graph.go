package report

import (
	"fmt"

	"github.com/cayleygraph/quad"

	"github.com/ensaremirerol/shacl-validate/rdf"
	"github.com/ensaremirerol/shacl-validate/voc/sh"
)

var (
	tValidationReport = rdf.IRI(sh.ValidationReport)
	tValidationResult = rdf.IRI(sh.ValidationResult)
	pConforms         = rdf.IRI(sh.Conforms)
	pResult           = rdf.IRI(sh.Result)
	pFocusNode        = rdf.IRI(sh.FocusNode)
	pResultSeverity   = rdf.IRI(sh.ResultSeverity)
	pSourceShape      = rdf.IRI(sh.SourceShape)
	pSourceCC         = rdf.IRI(sh.SourceConstraintComponent)
	pValue            = rdf.IRI(sh.Value)
	pResultPath       = rdf.IRI(sh.ResultPath)
	pResultMessage    = rdf.IRI(sh.ResultMessage)
	pDetail           = rdf.IRI(sh.Detail)
	pType             = rdf.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type")
)

// ToGraph serializes r as RDF per spec.md §4.7: one blank node per
// result carrying sh:focusNode/sh:resultSeverity/sh:sourceShape and the
// optional fields, plus sh:detail for nested sub-results and trace
// entries. A report blank node ties sh:conforms and sh:result together.
func ToGraph(r *Report) *rdf.Graph {
	b := &graphBuilder{}
	root := b.next()
	b.emit(root, pType, tValidationReport)
	b.emit(root, pConforms, quad.Bool(r.Conforms))
	for _, res := range r.Results {
		node := b.emitResult(res)
		b.emit(root, pResult, node)
	}
	return rdf.NewGraph(b.triples)
}

type graphBuilder struct {
	triples []rdf.Triple
	counter int
}

func (b *graphBuilder) next() rdf.Term {
	b.counter++
	return quad.BNode(fmt.Sprintf("result%d", b.counter))
}

func (b *graphBuilder) emit(s, p, o rdf.Term) {
	b.triples = append(b.triples, rdf.Triple{Subject: s, Predicate: p, Object: o})
}

func (b *graphBuilder) emitResult(res *Result) rdf.Term {
	node := b.next()
	b.emit(node, pType, tValidationResult)
	b.emit(node, pFocusNode, res.FocusNode)
	b.emit(node, pSourceShape, res.SourceShape)
	if res.Severity != nil {
		b.emit(node, pResultSeverity, res.Severity)
	}
	if res.SourceConstraintComponent != nil {
		b.emit(node, pSourceCC, res.SourceConstraintComponent)
	}
	if res.Value != nil {
		b.emit(node, pValue, res.Value)
	}
	if res.ResultPath != nil {
		b.emit(node, pResultPath, res.ResultPath)
	}
	for _, m := range res.Messages {
		b.emit(node, pResultMessage, quad.String(m))
	}
	for _, tr := range res.Trace {
		b.emit(node, pDetail, quad.String(tr))
	}
	for _, d := range res.Details {
		detailNode := b.emitResult(d)
		b.emit(node, pDetail, detailNode)
	}
	return node
}

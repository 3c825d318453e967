package shape

import (
	"errors"
	"fmt"

	"github.com/ensaremirerol/shacl-validate/internal/clog"
	"github.com/ensaremirerol/shacl-validate/path"
	"github.com/ensaremirerol/shacl-validate/rdf"
	"github.com/ensaremirerol/shacl-validate/target"
	rdfvoc "github.com/ensaremirerol/shacl-validate/voc/rdf"
	"github.com/ensaremirerol/shacl-validate/voc/rdfs"
	"github.com/ensaremirerol/shacl-validate/voc/sh"
)

// ErrMissingPath is returned when a property shape has no sh:path.
var ErrMissingPath = errors.New("shape: property shape requires sh:path")

// CompileWarning records a non-fatal problem found while compiling one
// shape (spec.md §7, error kind 2): a malformed constraint is skipped
// rather than failing the whole compile.
type CompileWarning struct {
	ShapeNode rdf.Term
	Message   string
}

// CompileResult is the output of Compile: the successfully built
// top-level shapes plus every warning encountered along the way.
type CompileResult struct {
	Shapes   []*Shape
	Warnings []CompileWarning
}

var (
	rdfType    = rdf.IRI(rdfvoc.Type)
	rdfsClass  = rdf.IRI(rdfs.Class)
	shShape    = rdf.IRI(sh.Shape)
	shNode     = rdf.IRI(sh.NodeShape)
	shProperty = rdf.IRI(sh.PropertyShape)
	defaultSeverity = rdf.IRI(sh.Violation)
)

// Compile builds the set of top-level shapes from shapesGraph, per
// spec.md §4.3.
func Compile(shapesGraph *rdf.Graph) (*CompileResult, error) {
	c := &compiler{g: shapesGraph, compiled: make(map[string]*Shape)}

	candidates := c.discoverTopLevel()
	res := &CompileResult{}
	for _, node := range candidates {
		s, err := c.shapeFor(node, nil, defaultSeverity)
		if err != nil {
			c.warn(node, err.Error())
			continue
		}
		res.Shapes = append(res.Shapes, s)
	}
	res.Warnings = c.warnings
	linkQualifiedSiblings(res.Shapes)
	return res, nil
}

type compiler struct {
	g        *rdf.Graph
	compiled map[string]*Shape
	warnings []CompileWarning
}

func (c *compiler) warn(node rdf.Term, msg string) {
	clog.Warningf("shacl: shape %v: %s", node, msg)
	c.warnings = append(c.warnings, CompileWarning{ShapeNode: node, Message: msg})
}

// discoverTopLevel finds every subject that declares itself a shape
// either via rdf:type or via a shape-defining predicate (spec.md §4.3
// step 1).
func (c *compiler) discoverTopLevel() []rdf.Term {
	seen := make(map[string]bool)
	var out []rdf.Term
	add := func(n rdf.Term) {
		k := rdf.Key(n)
		if !seen[k] {
			seen[k] = true
			out = append(out, n)
		}
	}

	for _, typ := range []rdf.Term{shShape, shNode, shProperty} {
		for _, s := range c.g.SubjectsForPredicateObject(rdfType, typ) {
			add(s)
		}
	}
	for _, pred := range []rdf.Term{
		rdf.IRI(sh.TargetClass), rdf.IRI(sh.TargetNode),
		rdf.IRI(sh.TargetSubjectsOf), rdf.IRI(sh.TargetObjectsOf), rdf.IRI(sh.Target),
	} {
		for _, s := range c.g.SubjectsForPredicate(pred) {
			add(s)
		}
	}
	return out
}

// shapeFor returns the compiled Shape for node, building it on first
// request and returning the same pointer for every subsequent reference
// (spec.md §9: cycle detection via a visited-set on shape-node identity).
func (c *compiler) shapeFor(node rdf.Term, parent *Shape, inheritedSeverity rdf.Term) (*Shape, error) {
	k := rdf.Key(node)
	if s, ok := c.compiled[k]; ok {
		return s, nil
	}
	s := &Shape{Node: node, Parent: parent, Severity: inheritedSeverity}
	c.compiled[k] = s

	if pathTerm, ok := c.g.ObjectForSubjectPredicate(node, rdf.IRI(sh.Path)); ok {
		p, err := path.Compile(c.g, pathTerm)
		if err != nil {
			delete(c.compiled, k)
			return nil, fmt.Errorf("%v: %w", node, err)
		}
		s.HasPath = true
		s.Path = p
	}

	c.parseCommon(s)
	c.parseTargets(s)
	c.parseConstraints(s)
	c.parseClosed(s)
	c.parseNestedProperties(s)

	return s, nil
}

func (c *compiler) parseCommon(s *Shape) {
	if v, ok := c.g.ObjectForSubjectPredicate(s.Node, rdf.IRI(sh.Name)); ok {
		if lit, ok := rdf.AsLiteral(v); ok {
			s.Name = lit.Lexical
		}
	} else if v, ok := c.g.ObjectForSubjectPredicate(s.Node, rdf.IRI(rdfs.Label)); ok {
		if lit, ok := rdf.AsLiteral(v); ok {
			s.Name = lit.Lexical
		}
	}
	if v, ok := c.g.ObjectForSubjectPredicate(s.Node, rdf.IRI(sh.Description)); ok {
		if lit, ok := rdf.AsLiteral(v); ok {
			s.Description = lit.Lexical
		}
	}
	if v, ok := c.g.ObjectForSubjectPredicate(s.Node, rdf.IRI(sh.Deactivated)); ok {
		if b, ok := c.boolLiteral(v); ok {
			s.Deactivated = b
		}
	}
	for _, v := range c.g.ObjectsForSubjectPredicate(s.Node, rdf.IRI(sh.Message)) {
		if lit, ok := rdf.AsLiteral(v); ok {
			s.Message = append(s.Message, lit.Lexical)
		}
	}
	if v, ok := c.g.ObjectForSubjectPredicate(s.Node, rdf.IRI(sh.Severity)); ok {
		s.Severity = v
	}
}

func (c *compiler) parseTargets(s *Shape) {
	for _, v := range c.g.ObjectsForSubjectPredicate(s.Node, rdf.IRI(sh.TargetNode)) {
		s.Targets = append(s.Targets, target.Target{Kind: target.Node, Term: v})
	}
	for _, v := range c.g.ObjectsForSubjectPredicate(s.Node, rdf.IRI(sh.TargetClass)) {
		s.Targets = append(s.Targets, target.Target{Kind: target.Class, Term: v})
	}
	for _, v := range c.g.ObjectsForSubjectPredicate(s.Node, rdf.IRI(sh.TargetSubjectsOf)) {
		s.Targets = append(s.Targets, target.Target{Kind: target.SubjectsOf, Term: v})
	}
	for _, v := range c.g.ObjectsForSubjectPredicate(s.Node, rdf.IRI(sh.TargetObjectsOf)) {
		s.Targets = append(s.Targets, target.Target{Kind: target.ObjectsOf, Term: v})
	}
	for _, v := range c.g.ObjectsForSubjectPredicate(s.Node, rdf.IRI(sh.Target)) {
		s.Targets = append(s.Targets, target.Target{Kind: target.Advanced, Term: v})
	}

	// Implicit class target: a shape node that is itself declared
	// rdfs:Class targets its own instances (spec.md §4.3 step "a node
	// that participates in a class declaration implicitly gains a Class
	// target on itself").
	for _, t := range c.g.ObjectsForSubjectPredicate(s.Node, rdfType) {
		if rdf.Equal(t, rdfsClass) {
			s.Targets = append(s.Targets, target.Target{Kind: target.Class, Term: s.Node})
			break
		}
	}
}

func (c *compiler) parseClosed(s *Shape) {
	v, ok := c.g.ObjectForSubjectPredicate(s.Node, rdf.IRI(sh.Closed))
	if !ok {
		return
	}
	enabled, ok := c.boolLiteral(v)
	if !ok || !enabled {
		return
	}
	spec := &ClosedSpec{}
	if head, ok := c.g.ObjectForSubjectPredicate(s.Node, rdf.IRI(sh.IgnoredProperties)); ok {
		props, err := c.g.List(head)
		if err != nil {
			c.warn(s.Node, "sh:ignoredProperties: "+err.Error())
		}
		spec.IgnoredProperties = props
	}
	s.Closed = spec
}

func (c *compiler) parseNestedProperties(s *Shape) {
	for _, v := range c.g.ObjectsForSubjectPredicate(s.Node, rdf.IRI(sh.Property)) {
		child, err := c.shapeFor(v, s, s.Severity)
		if err != nil {
			c.warn(s.Node, "sh:property: "+err.Error())
			continue
		}
		if !child.HasPath {
			c.warn(v, ErrMissingPath.Error())
			continue
		}
		s.PropertyShapes = append(s.PropertyShapes, child)
	}
}

// linkQualifiedSiblings wires each QualifiedValueShapeConstraint's
// Siblings slice to its co-declared peers on the same parent shape, so
// the disjoint count in constraint.validateQualifiedValueShape can see every
// sibling (spec.md §4.4, concrete scenario 6).
func linkQualifiedSiblings(shapes []*Shape) {
	visited := make(map[string]bool)
	var walk func(*Shape)
	walk = func(s *Shape) {
		if s == nil || visited[rdf.Key(s.Node)] {
			return
		}
		visited[rdf.Key(s.Node)] = true

		var qvs []*QualifiedValueShapeConstraint
		for _, ps := range s.PropertyShapes {
			for _, con := range ps.Constraints {
				if q, ok := con.(*QualifiedValueShapeConstraint); ok {
					qvs = append(qvs, q)
				}
			}
		}
		for _, q := range qvs {
			var siblings []*QualifiedValueShapeConstraint
			for _, o := range qvs {
				if o != q {
					siblings = append(siblings, o)
				}
			}
			q.Siblings = siblings
		}

		for _, ps := range s.PropertyShapes {
			walk(ps)
		}
		for _, con := range s.Constraints {
			for _, nested := range constraintSubShapes(con) {
				walk(nested)
			}
		}
	}
	for _, s := range shapes {
		walk(s)
	}
}

func constraintSubShapes(c Constraint) []*Shape {
	switch v := c.(type) {
	case *NodeConstraint:
		return []*Shape{v.Shape}
	case *NotConstraint:
		return []*Shape{v.Shape}
	case *AndConstraint:
		return v.Shapes
	case *OrConstraint:
		return v.Shapes
	case *XoneConstraint:
		return v.Shapes
	case *QualifiedValueShapeConstraint:
		return []*Shape{v.Shape}
	default:
		return nil
	}
}

package shape

import (
	"strconv"
	"strings"

	"github.com/ensaremirerol/shacl-validate/path"
	"github.com/ensaremirerol/shacl-validate/rdf"
	"github.com/ensaremirerol/shacl-validate/target"
	"github.com/ensaremirerol/shacl-validate/voc/sh"
)

// parseConstraints runs the fixed dispatch table over s.Node, appending
// one Constraint per recognized, well-formed value found and logging a
// warning for anything malformed (spec.md §4.3's "fixed dispatch table
// — one small parser per constraint component").
func (c *compiler) parseConstraints(s *Shape) {
	c.parseValueType(s)
	c.parseCardinality(s)
	c.parseRange(s)
	c.parseStringBased(s)
	c.parsePropertyPair(s)
	c.parseOtherValue(s)
	c.parseLogical(s)
	c.parseQualified(s)
	c.parseSparql(s)
	c.parseComponentSparql(s)
}

func (c *compiler) intLiteral(node rdf.Term) (int, bool) {
	lit, ok := rdf.AsLiteral(node)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(lit.Lexical)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (c *compiler) boolLiteral(node rdf.Term) (bool, bool) {
	lit, ok := rdf.AsLiteral(node)
	if !ok {
		return false, false
	}
	switch strings.ToLower(lit.Lexical) {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	default:
		return false, false
	}
}

func (c *compiler) compilePath(s *Shape, term rdf.Term) (path.Path, bool) {
	p, err := path.Compile(c.g, term)
	if err != nil {
		c.warn(s.Node, err.Error())
		return nil, false
	}
	return p, true
}

// value-type constraints

func (c *compiler) parseValueType(s *Shape) {
	for _, v := range c.g.ObjectsForSubjectPredicate(s.Node, rdf.IRI(sh.Class)) {
		s.Constraints = append(s.Constraints, &ClassConstraint{Class: v})
	}
	if v, ok := c.g.ObjectForSubjectPredicate(s.Node, rdf.IRI(sh.Datatype)); ok {
		s.Constraints = append(s.Constraints, &DatatypeConstraint{Datatype: v})
	}
	if v, ok := c.g.ObjectForSubjectPredicate(s.Node, rdf.IRI(sh.NodeKind)); ok {
		kind, ok := nodeKindFor(v)
		if !ok {
			c.warn(s.Node, "sh:nodeKind: unrecognized value")
		} else {
			s.Constraints = append(s.Constraints, &NodeKindConstraint{Kind: kind})
		}
	}
}

func nodeKindFor(v rdf.Term) (NodeKind, bool) {
	switch rdf.Key(v) {
	case rdf.Key(rdf.IRI(sh.IRI)):
		return KindIRI, true
	case rdf.Key(rdf.IRI(sh.BlankNode)):
		return KindBlankNode, true
	case rdf.Key(rdf.IRI(sh.Literal)):
		return KindLiteral, true
	case rdf.Key(rdf.IRI(sh.BlankNodeOrIRI)):
		return KindBlankNodeOrIRI, true
	case rdf.Key(rdf.IRI(sh.BlankNodeOrLiteral)):
		return KindBlankNodeOrLiteral, true
	case rdf.Key(rdf.IRI(sh.IRIOrLiteral)):
		return KindIRIOrLiteral, true
	default:
		return 0, false
	}
}

// cardinality constraints

func (c *compiler) parseCardinality(s *Shape) {
	if v, ok := c.g.ObjectForSubjectPredicate(s.Node, rdf.IRI(sh.MinCount)); ok {
		if n, ok := c.intLiteral(v); ok {
			s.Constraints = append(s.Constraints, &MinCountConstraint{Min: n})
		} else {
			c.warn(s.Node, "sh:minCount: not an integer")
		}
	}
	if v, ok := c.g.ObjectForSubjectPredicate(s.Node, rdf.IRI(sh.MaxCount)); ok {
		if n, ok := c.intLiteral(v); ok {
			s.Constraints = append(s.Constraints, &MaxCountConstraint{Max: n})
		} else {
			c.warn(s.Node, "sh:maxCount: not an integer")
		}
	}
}

// range constraints

func (c *compiler) parseRange(s *Shape) {
	add := func(pred string, op RangeOp) {
		if v, ok := c.g.ObjectForSubjectPredicate(s.Node, rdf.IRI(pred)); ok {
			if _, ok := rdf.AsLiteral(v); !ok {
				c.warn(s.Node, pred+": value is not a literal")
				return
			}
			s.Constraints = append(s.Constraints, &RangeConstraint{Op: op, Bound: v})
		}
	}
	add(sh.MinExclusive, OpMinExclusive)
	add(sh.MinInclusive, OpMinInclusive)
	add(sh.MaxExclusive, OpMaxExclusive)
	add(sh.MaxInclusive, OpMaxInclusive)
}

// string-based constraints

func (c *compiler) parseStringBased(s *Shape) {
	if v, ok := c.g.ObjectForSubjectPredicate(s.Node, rdf.IRI(sh.MinLength)); ok {
		if n, ok := c.intLiteral(v); ok {
			s.Constraints = append(s.Constraints, &MinLengthConstraint{Min: n})
		} else {
			c.warn(s.Node, "sh:minLength: not an integer")
		}
	}
	if v, ok := c.g.ObjectForSubjectPredicate(s.Node, rdf.IRI(sh.MaxLength)); ok {
		if n, ok := c.intLiteral(v); ok {
			s.Constraints = append(s.Constraints, &MaxLengthConstraint{Max: n})
		} else {
			c.warn(s.Node, "sh:maxLength: not an integer")
		}
	}
	if v, ok := c.g.ObjectForSubjectPredicate(s.Node, rdf.IRI(sh.Pattern)); ok {
		lit, ok := rdf.AsLiteral(v)
		if !ok {
			c.warn(s.Node, "sh:pattern: value is not a literal")
		} else {
			flags := ""
			if f, ok := c.g.ObjectForSubjectPredicate(s.Node, rdf.IRI(sh.Flags)); ok {
				if flit, ok := rdf.AsLiteral(f); ok {
					flags = flit.Lexical
				}
			}
			s.Constraints = append(s.Constraints, &PatternConstraint{Pattern: lit.Lexical, Flags: flags})
		}
	}
	if head, ok := c.g.ObjectForSubjectPredicate(s.Node, rdf.IRI(sh.LanguageIn)); ok {
		items, err := c.g.List(head)
		if err != nil {
			c.warn(s.Node, "sh:languageIn: "+err.Error())
		} else {
			var langs []string
			for _, it := range items {
				if lit, ok := rdf.AsLiteral(it); ok {
					langs = append(langs, lit.Lexical)
				}
			}
			s.Constraints = append(s.Constraints, &LanguageInConstraint{Langs: langs})
		}
	}
	if v, ok := c.g.ObjectForSubjectPredicate(s.Node, rdf.IRI(sh.UniqueLang)); ok {
		if b, ok := c.boolLiteral(v); ok {
			s.Constraints = append(s.Constraints, &UniqueLangConstraint{Enabled: b})
		} else {
			c.warn(s.Node, "sh:uniqueLang: not a boolean")
		}
	}
}

// property-pair constraints

func (c *compiler) parsePropertyPair(s *Shape) {
	addPath := func(pred string, build func(path.Path) Constraint) {
		if v, ok := c.g.ObjectForSubjectPredicate(s.Node, rdf.IRI(pred)); ok {
			if p, ok := c.compilePath(s, v); ok {
				s.Constraints = append(s.Constraints, build(p))
			}
		}
	}
	addPath(sh.Equals, func(p path.Path) Constraint { return &EqualsConstraint{Path: p} })
	addPath(sh.Disjoint, func(p path.Path) Constraint { return &DisjointConstraint{Path: p} })
	addPath(sh.LessThan, func(p path.Path) Constraint { return &LessThanConstraint{Path: p} })
	addPath(sh.LessThanOrEquals, func(p path.Path) Constraint { return &LessThanOrEqualsConstraint{Path: p} })
}

// other value constraints

func (c *compiler) parseOtherValue(s *Shape) {
	if v, ok := c.g.ObjectForSubjectPredicate(s.Node, rdf.IRI(sh.HasValue)); ok {
		s.Constraints = append(s.Constraints, &HasValueConstraint{Value: v})
	}
	if head, ok := c.g.ObjectForSubjectPredicate(s.Node, rdf.IRI(sh.In)); ok {
		items, err := c.g.List(head)
		if err != nil {
			c.warn(s.Node, "sh:in: "+err.Error())
		} else {
			s.Constraints = append(s.Constraints, &InConstraint{Values: items})
		}
	}
}

// logical / recursive constraints

func (c *compiler) parseLogical(s *Shape) {
	for _, v := range c.g.ObjectsForSubjectPredicate(s.Node, rdf.IRI(sh.Node)) {
		child, err := c.shapeFor(v, s, s.Severity)
		if err != nil {
			c.warn(s.Node, "sh:node: "+err.Error())
			continue
		}
		s.Constraints = append(s.Constraints, &NodeConstraint{Shape: child})
	}
	if v, ok := c.g.ObjectForSubjectPredicate(s.Node, rdf.IRI(sh.Not)); ok {
		child, err := c.shapeFor(v, s, s.Severity)
		if err != nil {
			c.warn(s.Node, "sh:not: "+err.Error())
		} else {
			s.Constraints = append(s.Constraints, &NotConstraint{Shape: child})
		}
	}

	parseList := func(pred string, build func([]*Shape) Constraint) {
		head, ok := c.g.ObjectForSubjectPredicate(s.Node, rdf.IRI(pred))
		if !ok {
			return
		}
		members, err := c.g.List(head)
		if err != nil {
			c.warn(s.Node, pred+": "+err.Error())
			return
		}
		var shapes []*Shape
		for _, m := range members {
			child, err := c.shapeFor(m, s, s.Severity)
			if err != nil {
				c.warn(s.Node, pred+": "+err.Error())
				continue
			}
			shapes = append(shapes, child)
		}
		if len(shapes) > 0 {
			s.Constraints = append(s.Constraints, build(shapes))
		}
	}
	parseList(sh.And, func(ss []*Shape) Constraint { return &AndConstraint{Shapes: ss} })
	parseList(sh.Or, func(ss []*Shape) Constraint { return &OrConstraint{Shapes: ss} })
	parseList(sh.Xone, func(ss []*Shape) Constraint { return &XoneConstraint{Shapes: ss} })
}

// qualified value shape

func (c *compiler) parseQualified(s *Shape) {
	v, ok := c.g.ObjectForSubjectPredicate(s.Node, rdf.IRI(sh.QualifiedValueShape))
	if !ok {
		return
	}
	child, err := c.shapeFor(v, s, s.Severity)
	if err != nil {
		c.warn(s.Node, "sh:qualifiedValueShape: "+err.Error())
		return
	}
	con := &QualifiedValueShapeConstraint{Shape: child}
	if mv, ok := c.g.ObjectForSubjectPredicate(s.Node, rdf.IRI(sh.QualifiedMinCount)); ok {
		if n, ok := c.intLiteral(mv); ok {
			con.Min = &n
		}
	}
	if mv, ok := c.g.ObjectForSubjectPredicate(s.Node, rdf.IRI(sh.QualifiedMaxCount)); ok {
		if n, ok := c.intLiteral(mv); ok {
			con.Max = &n
		}
	}
	if dv, ok := c.g.ObjectForSubjectPredicate(s.Node, rdf.IRI(sh.QualifiedValueShapesDisjoint)); ok {
		if b, ok := c.boolLiteral(dv); ok {
			con.Disjoint = b
		}
	}
	s.Constraints = append(s.Constraints, con)
}

// SPARQL-based constraints

func (c *compiler) parseSparql(s *Shape) {
	for _, v := range c.g.ObjectsForSubjectPredicate(s.Node, rdf.IRI(sh.SPARQL)) {
		con, ok := c.parseSparqlNode(v)
		if !ok {
			c.warn(s.Node, "sh:sparql: malformed constraint, skipped")
			continue
		}
		s.Constraints = append(s.Constraints, con)
	}
}

func (c *compiler) parseSparqlNode(node rdf.Term) (*SparqlConstraint, bool) {
	con := &SparqlConstraint{SourceConstraint: node}
	if v, ok := c.g.ObjectForSubjectPredicate(node, rdf.IRI(sh.Select)); ok {
		if lit, ok := rdf.AsLiteral(v); ok {
			con.Select = true
			con.Executable = lit.Lexical
		}
	} else if v, ok := c.g.ObjectForSubjectPredicate(node, rdf.IRI(sh.Ask)); ok {
		if lit, ok := rdf.AsLiteral(v); ok {
			con.Select = false
			con.Executable = lit.Lexical
		}
	}
	if con.Executable == "" {
		return nil, false
	}
	for _, m := range c.g.ObjectsForSubjectPredicate(node, rdf.IRI(sh.Message)) {
		if lit, ok := rdf.AsLiteral(m); ok {
			con.Messages = append(con.Messages, lit.Lexical)
		}
	}
	if head, ok := c.g.ObjectForSubjectPredicate(node, rdf.IRI(sh.Prefixes)); ok {
		prefixNodes, err := c.g.List(head)
		if err == nil {
			con.Prefixes = make(map[string]string)
			for _, pn := range prefixNodes {
				c.collectPrefixDecls(pn, con.Prefixes)
			}
		}
	}
	return con, true
}

// parseComponentSparql finds every sh:ConstraintComponent declared
// anywhere in the shapes graph that s's node supplies values for (via
// the component's sh:parameter paths), and compiles one SparqlConstraint
// per SPARQL-based validator the component declares for s's shape kind
// (spec.md §3's Sparql variant: parameter_bindings/
// source_constraint_component; grounded on the Rust
// parse_component_sparql_constraints reference).
func (c *compiler) parseComponentSparql(s *Shape) {
	for _, component := range c.constraintComponents() {
		bindings, ok := c.componentParameterBindings(component, s.Node)
		if !ok {
			continue
		}

		validatorPreds := []string{sh.Validator}
		if s.HasPath {
			validatorPreds = append(validatorPreds, sh.PropertyValidator)
		} else {
			validatorPreds = append(validatorPreds, sh.NodeValidator)
		}

		for _, pred := range validatorPreds {
			for _, v := range c.g.ObjectsForSubjectPredicate(component, rdf.IRI(pred)) {
				con, ok := c.parseSparqlNode(v)
				if !ok {
					continue
				}
				con.SourceConstraintComponent = component
				con.ParameterBindings = bindings
				s.Constraints = append(s.Constraints, con)
			}
		}
	}
}

// constraintComponents returns every subject in the shapes graph typed
// sh:ConstraintComponent, directly or through an rdfs:subClassOf chain,
// that also declares at least one sh:parameter (a custom constraint
// component with nothing to look up on the shape is never reachable from
// this compiler, since there is no parameter to bind).
func (c *compiler) constraintComponents() []rdf.Term {
	declared := target.ClassClosure(c.g, rdf.IRI(sh.ConstraintComponentClass))
	seen := make(map[string]bool, len(declared))
	componentTypes := make(map[string]bool, len(declared))
	for _, t := range declared {
		componentTypes[rdf.Key(t)] = true
	}

	var out []rdf.Term
	for _, tr := range c.g.TriplesForPredicate(rdf.IRI(sh.Parameter)) {
		component := tr.Subject
		k := rdf.Key(component)
		if seen[k] {
			continue
		}
		seen[k] = true

		isComponent := false
		for _, t := range c.g.ObjectsForSubjectPredicate(component, rdfType) {
			if componentTypes[rdf.Key(t)] {
				isComponent = true
				break
			}
		}
		if isComponent {
			out = append(out, component)
		}
	}
	return out
}

// componentParameterBindings resolves each of component's sh:parameter
// paths against shapeNode, returning ok=false if a required (non
// sh:optional) parameter has no value on shapeNode.
func (c *compiler) componentParameterBindings(component, shapeNode rdf.Term) (map[string]rdf.Term, bool) {
	bindings := make(map[string]rdf.Term)
	for _, p := range c.g.ObjectsForSubjectPredicate(component, rdf.IRI(sh.Parameter)) {
		pathTerm, ok := c.g.ObjectForSubjectPredicate(p, rdf.IRI(sh.Path))
		if !ok {
			return nil, false
		}
		pathIRI, ok := rdf.IRIString(pathTerm)
		if !ok {
			return nil, false
		}
		varName, ok := localName(pathIRI)
		if !ok {
			return nil, false
		}

		optional := false
		if v, ok := c.g.ObjectForSubjectPredicate(p, rdf.IRI(sh.Optional)); ok {
			optional, _ = c.boolLiteral(v)
		}

		value, hasValue := c.g.ObjectForSubjectPredicate(shapeNode, pathTerm)
		if hasValue {
			bindings[varName] = value
		} else if !optional {
			return nil, false
		}
	}
	return bindings, true
}

// localName returns the part of an IRI after its last '#', '/' or ':'
// (the fragment, final path segment, or local part of a compact IRI such
// as "ex:maxLen"), the same "variable name from predicate" convention
// sh:parameter's sh:path uses to name its SPARQL binding.
func localName(iri string) (string, bool) {
	if i := strings.LastIndexAny(iri, "#/:"); i >= 0 && i < len(iri)-1 {
		return iri[i+1:], true
	}
	if iri == "" {
		return "", false
	}
	return iri, true
}

func (c *compiler) collectPrefixDecls(ontology rdf.Term, out map[string]string) {
	for _, decl := range c.g.ObjectsForSubjectPredicate(ontology, rdf.IRI(sh.Declare)) {
		prefix, hasPrefix := c.g.ObjectForSubjectPredicate(decl, rdf.IRI(sh.NamespacePrefix))
		ns, hasNs := c.g.ObjectForSubjectPredicate(decl, rdf.IRI(sh.Namespace))
		if !hasPrefix || !hasNs {
			continue
		}
		plit, ok1 := rdf.AsLiteral(prefix)
		nlit, ok2 := rdf.AsLiteral(ns)
		if ok1 && ok2 {
			out[plit.Lexical] = nlit.Lexical
		}
	}
}

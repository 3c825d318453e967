// Package shape lifts an unstructured shapes-graph triple set into typed,
// composable shape objects: targets, paths, constraints, nested property
// shapes, and the recursive logical combinators (spec.md §3, §4.3).
//
// The compiler here is grounded on Cayley's schema package (schema/schema.go):
// both walk a quad set looking for a fixed set of well-known predicates on
// each candidate subject and build a typed Go value from what they find,
// tolerating missing/malformed pieces by skipping them rather than failing
// the whole walk.
package shape

import (
	"github.com/ensaremirerol/shacl-validate/path"
	"github.com/ensaremirerol/shacl-validate/rdf"
	"github.com/ensaremirerol/shacl-validate/target"
)

// NodeKind is the set of sh:nodeKind values.
type NodeKind int

const (
	KindIRI NodeKind = iota
	KindBlankNode
	KindLiteral
	KindBlankNodeOrIRI
	KindBlankNodeOrLiteral
	KindIRIOrLiteral
)

// ClosedSpec is the parsed form of sh:closed/sh:ignoredProperties.
type ClosedSpec struct {
	IgnoredProperties []rdf.Term
}

// Shape is the single structure used for both node shapes and property
// shapes (spec.md §3).
type Shape struct {
	Node           rdf.Term
	HasPath        bool
	Path           path.Path
	Targets        []target.Target
	Deactivated    bool
	Name           string
	Description    string
	Message        []string
	Severity       rdf.Term
	Constraints    []Constraint
	Closed         *ClosedSpec
	PropertyShapes []*Shape
	Parent         *Shape
}

// IsPropertyShape reports whether s has a path, i.e. is a property shape
// rather than a node shape (spec.md §3's node/path invariant).
func (s *Shape) IsPropertyShape() bool { return s.HasPath }

// Constraint is a single SHACL core constraint component attached to a
// shape. It is a closed sum type: RequiresPath reports whether the
// constraint is only meaningful when the owning shape has a path
// (spec.md §3: "Each variant knows whether it requires a path to be
// meaningful").
type Constraint interface {
	isConstraint()
	RequiresPath() bool
	// Component is the local name used to build the
	// sh:XConstraintComponent source-constraint-component IRI.
	Component() string
}

type baseConstraint struct{}

func (baseConstraint) isConstraint() {}

// value-type constraints

type ClassConstraint struct {
	baseConstraint
	Class rdf.Term
}

func (ClassConstraint) RequiresPath() bool { return false }
func (ClassConstraint) Component() string  { return "Class" }

type DatatypeConstraint struct {
	baseConstraint
	Datatype rdf.Term
}

func (DatatypeConstraint) RequiresPath() bool { return false }
func (DatatypeConstraint) Component() string  { return "Datatype" }

type NodeKindConstraint struct {
	baseConstraint
	Kind NodeKind
}

func (NodeKindConstraint) RequiresPath() bool { return false }
func (NodeKindConstraint) Component() string  { return "NodeKind" }

// cardinality constraints (property shapes only)

type MinCountConstraint struct {
	baseConstraint
	Min int
}

func (MinCountConstraint) RequiresPath() bool { return true }
func (MinCountConstraint) Component() string  { return "MinCount" }

type MaxCountConstraint struct {
	baseConstraint
	Max int
}

func (MaxCountConstraint) RequiresPath() bool { return true }
func (MaxCountConstraint) Component() string  { return "MaxCount" }

// range constraints

type RangeOp int

const (
	OpMinExclusive RangeOp = iota
	OpMinInclusive
	OpMaxExclusive
	OpMaxInclusive
)

type RangeConstraint struct {
	baseConstraint
	Op    RangeOp
	Bound rdf.Term
}

func (RangeConstraint) RequiresPath() bool { return false }
func (r RangeConstraint) Component() string {
	switch r.Op {
	case OpMinExclusive:
		return "MinExclusive"
	case OpMinInclusive:
		return "MinInclusive"
	case OpMaxExclusive:
		return "MaxExclusive"
	default:
		return "MaxInclusive"
	}
}

// string-based constraints

type MinLengthConstraint struct {
	baseConstraint
	Min int
}

func (MinLengthConstraint) RequiresPath() bool { return false }
func (MinLengthConstraint) Component() string  { return "MinLength" }

type MaxLengthConstraint struct {
	baseConstraint
	Max int
}

func (MaxLengthConstraint) RequiresPath() bool { return false }
func (MaxLengthConstraint) Component() string  { return "MaxLength" }

type PatternConstraint struct {
	baseConstraint
	Pattern string
	Flags   string
}

func (PatternConstraint) RequiresPath() bool { return false }
func (PatternConstraint) Component() string  { return "Pattern" }

type LanguageInConstraint struct {
	baseConstraint
	Langs []string
}

func (LanguageInConstraint) RequiresPath() bool { return false }
func (LanguageInConstraint) Component() string  { return "LanguageIn" }

type UniqueLangConstraint struct {
	baseConstraint
	Enabled bool
}

func (UniqueLangConstraint) RequiresPath() bool { return true }
func (UniqueLangConstraint) Component() string  { return "UniqueLang" }

// property-pair constraints

type EqualsConstraint struct {
	baseConstraint
	Path path.Path
}

func (EqualsConstraint) RequiresPath() bool { return false }
func (EqualsConstraint) Component() string  { return "Equals" }

type DisjointConstraint struct {
	baseConstraint
	Path path.Path
}

func (DisjointConstraint) RequiresPath() bool { return false }
func (DisjointConstraint) Component() string  { return "Disjoint" }

type LessThanConstraint struct {
	baseConstraint
	Path path.Path
}

func (LessThanConstraint) RequiresPath() bool { return true }
func (LessThanConstraint) Component() string  { return "LessThan" }

type LessThanOrEqualsConstraint struct {
	baseConstraint
	Path path.Path
}

func (LessThanOrEqualsConstraint) RequiresPath() bool { return true }
func (LessThanOrEqualsConstraint) Component() string  { return "LessThanOrEquals" }

// other value constraints

type HasValueConstraint struct {
	baseConstraint
	Value rdf.Term
}

func (HasValueConstraint) RequiresPath() bool { return false }
func (HasValueConstraint) Component() string  { return "HasValue" }

type InConstraint struct {
	baseConstraint
	Values []rdf.Term
}

func (InConstraint) RequiresPath() bool { return false }
func (InConstraint) Component() string  { return "In" }

// logical / recursive constraints

type NodeConstraint struct {
	baseConstraint
	Shape *Shape
}

func (NodeConstraint) RequiresPath() bool { return false }
func (NodeConstraint) Component() string  { return "Node" }

type AndConstraint struct {
	baseConstraint
	Shapes []*Shape
}

func (AndConstraint) RequiresPath() bool { return false }
func (AndConstraint) Component() string  { return "And" }

type OrConstraint struct {
	baseConstraint
	Shapes []*Shape
}

func (OrConstraint) RequiresPath() bool { return false }
func (OrConstraint) Component() string  { return "Or" }

type XoneConstraint struct {
	baseConstraint
	Shapes []*Shape
}

func (XoneConstraint) RequiresPath() bool { return false }
func (XoneConstraint) Component() string  { return "Xone" }

type NotConstraint struct {
	baseConstraint
	Shape *Shape
}

func (NotConstraint) RequiresPath() bool { return false }
func (NotConstraint) Component() string  { return "Not" }

// QualifiedValueShapeConstraint is spec.md §3/§4.4's qualified value
// shape constraint. Min/Max are nil when the corresponding bound is
// absent.
type QualifiedValueShapeConstraint struct {
	baseConstraint
	Shape     *Shape
	Min       *int
	Max       *int
	Disjoint  bool
	// Siblings holds the other qualified value shapes declared under the
	// same parent shape, used to implement qualifiedValueShapesDisjoint
	// (spec.md §4.4). Populated by the compiler after all of a parent's
	// property shapes are known.
	Siblings []*QualifiedValueShapeConstraint
}

func (QualifiedValueShapeConstraint) RequiresPath() bool { return false }

// Component picks the catalog sort key for this constraint. A single
// sh:qualifiedValueShape can carry both a min and a max bound, each of
// which is its own constraint component with its own IRI
// (sh:QualifiedMinCountConstraintComponent /
// sh:QualifiedMaxCountConstraintComponent) — validateQualifiedValueShape
// names the failing bound's component explicitly rather than going
// through this method when it builds a violation; this return value is
// only used to place the constraint in the fixed evaluation order.
func (c QualifiedValueShapeConstraint) Component() string {
	switch {
	case c.Min != nil:
		return "QualifiedMinCount"
	case c.Max != nil:
		return "QualifiedMaxCount"
	default:
		return "QualifiedMinCount"
	}
}

// SparqlConstraint is spec.md §3/§4.6's SPARQL-based constraint.
type SparqlConstraint struct {
	baseConstraint
	Select                    bool // true: SELECT, false: ASK
	Executable                string
	Messages                  []string
	Prefixes                  map[string]string
	ParameterBindings         map[string]rdf.Term
	SourceConstraint          rdf.Term
	SourceConstraintComponent rdf.Term
}

func (SparqlConstraint) RequiresPath() bool { return false }
func (SparqlConstraint) Component() string  { return "SPARQL" }

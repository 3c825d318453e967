// Package sh contains constants of the SHACL vocabulary
// (http://www.w3.org/ns/shacl#), the IRIs the shape compiler reads and
// the report model writes. Adapted from the per-vocabulary packages
// under Cayley's voc/ (voc/rdf, voc/rdfs, voc/schema).
package sh

import "github.com/ensaremirerol/shacl-validate/voc"

func init() {
	voc.RegisterPrefix(Prefix, NS)
}

const (
	NS     = `http://www.w3.org/ns/shacl#`
	Prefix = `sh:`
)

const (
	// Shape kinds.
	Shape         = NS + `Shape`
	NodeShape     = NS + `NodeShape`
	PropertyShape = NS + `PropertyShape`

	// Shape attributes.
	TargetClass      = NS + `targetClass`
	TargetNode       = NS + `targetNode`
	TargetSubjectsOf = NS + `targetSubjectsOf`
	TargetObjectsOf  = NS + `targetObjectsOf`
	Target           = NS + `target`
	Path             = NS + `path`
	Property         = NS + `property`
	Name             = NS + `name`
	Description      = NS + `description`
	Deactivated      = NS + `deactivated`
	Message          = NS + `message`
	Severity         = NS + `severity`
	Closed           = NS + `closed`
	IgnoredProperties = NS + `ignoredProperties`

	// Severities.
	Violation = NS + `Violation`
	Warning   = NS + `Warning`
	Info      = NS + `Info`

	// Path building blocks.
	InversePath     = NS + `inversePath`
	AlternativePath = NS + `alternativePath`
	ZeroOrMorePath  = NS + `zeroOrMorePath`
	OneOrMorePath   = NS + `oneOrMorePath`
	ZeroOrOnePath   = NS + `zeroOrOnePath`

	// Value-type constraints.
	Class      = NS + `class`
	Datatype   = NS + `datatype`
	NodeKind   = NS + `nodeKind`
	IRI        = NS + `IRI`
	BlankNode  = NS + `BlankNode`
	Literal    = NS + `Literal`
	BlankNodeOrIRI     = NS + `BlankNodeOrIRI`
	BlankNodeOrLiteral = NS + `BlankNodeOrLiteral`
	IRIOrLiteral       = NS + `IRIOrLiteral`

	// Cardinality constraints.
	MinCount = NS + `minCount`
	MaxCount = NS + `maxCount`

	// Range constraints.
	MinExclusive = NS + `minExclusive`
	MinInclusive = NS + `minInclusive`
	MaxExclusive = NS + `maxExclusive`
	MaxInclusive = NS + `maxInclusive`

	// String-based constraints.
	MinLength   = NS + `minLength`
	MaxLength   = NS + `maxLength`
	Pattern     = NS + `pattern`
	Flags       = NS + `flags`
	LanguageIn  = NS + `languageIn`
	UniqueLang  = NS + `uniqueLang`

	// Property-pair constraints.
	Equals           = NS + `equals`
	Disjoint         = NS + `disjoint`
	LessThan         = NS + `lessThan`
	LessThanOrEquals = NS + `lessThanOrEquals`

	// Other value constraints.
	HasValue = NS + `hasValue`
	In       = NS + `in`

	// Logical constraints.
	Node  = NS + `node`
	And   = NS + `and`
	Or    = NS + `or`
	Xone  = NS + `xone`
	Not   = NS + `not`

	// Qualified value shapes.
	QualifiedValueShape          = NS + `qualifiedValueShape`
	QualifiedMinCount            = NS + `qualifiedMinCount`
	QualifiedMaxCount            = NS + `qualifiedMaxCount`
	QualifiedValueShapesDisjoint = NS + `qualifiedValueShapesDisjoint`

	// SPARQL-based constraints.
	SPARQLConstraintComponent = NS + `SPARQLConstraintComponent`
	SPARQL                    = NS + `sparql`
	Select                    = NS + `select`
	Ask                       = NS + `ask`
	Prefixes                  = NS + `prefixes`
	Declare                   = NS + `declare`
	Namespace                 = NS + `namespace`
	NamespacePrefix           = NS + `prefix`

	// Constraint component declarations (sh:ConstraintComponent).
	ConstraintComponentClass = NS + `ConstraintComponent`
	Parameter                = NS + `parameter`
	Validator                = NS + `validator`
	NodeValidator             = NS + `nodeValidator`
	PropertyValidator         = NS + `propertyValidator`
	Optional                  = NS + `optional`

	// Report vocabulary.
	ValidationReport            = NS + `ValidationReport`
	ValidationResult            = NS + `ValidationResult`
	Conforms                    = NS + `conforms`
	Result                      = NS + `result`
	FocusNode                   = NS + `focusNode`
	ResultSeverity              = NS + `resultSeverity`
	SourceShape                 = NS + `sourceShape`
	SourceConstraintComponent   = NS + `sourceConstraintComponent`
	SourceConstraint            = NS + `sourceConstraint`
	Value                       = NS + `value`
	ResultPath                  = NS + `resultPath`
	ResultMessage               = NS + `resultMessage`
	Detail                      = NS + `detail`
)

// ConstraintComponent builds the sh:XConstraintComponent IRI for a core
// constraint component name, e.g. ConstraintComponent("MinCount") ->
// "http://www.w3.org/ns/shacl#MinCountConstraintComponent".
func ConstraintComponent(name string) string {
	return NS + name + `ConstraintComponent`
}

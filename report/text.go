package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ensaremirerol/shacl-validate/rdf"
	"github.com/ensaremirerol/shacl-validate/voc"
	"github.com/ensaremirerol/shacl-validate/voc/sh"
)

var (
	sevViolation = rdf.IRI(sh.Violation)
	sevWarning   = rdf.IRI(sh.Warning)
	sevInfo      = rdf.IRI(sh.Info)
)

// ToText renders a human-readable report: a conforms banner, a
// per-severity count table, then one indented block per result (spec.md
// §4.7's "grouped by severity counts then per-result blocks with
// indented details").
func ToText(r *Report) string {
	var b strings.Builder

	if r.Conforms {
		color.New(color.FgGreen, color.Bold).Fprintln(&b, "conforms: true")
	} else {
		color.New(color.FgRed, color.Bold).Fprintln(&b, "conforms: false")
	}

	t := table.NewWriter()
	t.SetOutputMirror(&b)
	t.AppendHeader(table.Row{"severity", "count"})
	t.AppendRow(table.Row{"Violation", len(r.ViolationsBySeverity(sevViolation))})
	t.AppendRow(table.Row{"Warning", len(r.ViolationsBySeverity(sevWarning))})
	t.AppendRow(table.Row{"Info", len(r.ViolationsBySeverity(sevInfo))})
	t.SetStyle(table.StyleRounded)
	t.Style().Options.SeparateRows = false
	t.Render()
	b.WriteByte('\n')

	for _, res := range r.Results {
		writeResult(&b, res, 0)
	}
	return b.String()
}

func writeResult(b *strings.Builder, res *Result, depth int) {
	indent := strings.Repeat("  ", depth)
	sevColor := severityColor(res.Severity)
	fmt.Fprintf(b, "%s%s focus=%s shape=%s\n", indent, sevColor.Sprint(shortTerm(res.Severity)), shortTerm(res.FocusNode), shortTerm(res.SourceShape))
	if res.SourceConstraintComponent != nil {
		fmt.Fprintf(b, "%s  component: %s\n", indent, shortTerm(res.SourceConstraintComponent))
	}
	if res.ResultPath != nil {
		fmt.Fprintf(b, "%s  path: %s\n", indent, shortTerm(res.ResultPath))
	}
	if res.Value != nil {
		fmt.Fprintf(b, "%s  value: %s\n", indent, shortTerm(res.Value))
	}
	for _, m := range res.Messages {
		fmt.Fprintf(b, "%s  message: %s\n", indent, m)
	}
	for _, tr := range res.Trace {
		fmt.Fprintf(b, "%s  trace: %s\n", indent, tr)
	}
	for _, d := range res.Details {
		writeResult(b, d, depth+1)
	}
}

func severityColor(sev rdf.Term) *color.Color {
	switch {
	case sev != nil && rdf.Equal(sev, sevWarning):
		return color.New(color.FgYellow)
	case sev != nil && rdf.Equal(sev, sevInfo):
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgRed)
	}
}

func shortTerm(t rdf.Term) string {
	if t == nil {
		return ""
	}
	if iri, ok := rdf.IRIString(t); ok {
		return voc.ShortIRI(iri)
	}
	return t.String()
}

package report_test

import (
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/require"

	"github.com/ensaremirerol/shacl-validate/report"
)

func TestEmptyReportConforms(t *testing.T) {
	r := report.New()
	require.True(t, r.Conforms)
	require.Empty(t, r.Results)
}

func TestAddFlipsConforms(t *testing.T) {
	r := report.New()
	r.Add(&report.Result{FocusNode: quad.IRI("ex:alice"), SourceShape: quad.BNode("s1")})
	require.False(t, r.Conforms)
	require.Len(t, r.Results, 1)
}

func TestMergeAndsConformsAndAppends(t *testing.T) {
	a := report.New()
	b := report.New()
	b.Add(&report.Result{FocusNode: quad.IRI("ex:bob"), SourceShape: quad.BNode("s1")})

	a.Merge(b)
	require.False(t, a.Conforms)
	require.Len(t, a.Results, 1)
}

func TestViolationsBySeverity(t *testing.T) {
	r := report.New()
	violation := quad.IRI("http://www.w3.org/ns/shacl#Violation")
	warning := quad.IRI("http://www.w3.org/ns/shacl#Warning")
	r.Add(&report.Result{Severity: violation})
	r.Add(&report.Result{Severity: warning})

	require.Len(t, r.ViolationsBySeverity(violation), 1)
	require.Len(t, r.ViolationsBySeverity(warning), 1)
}

func TestDedupMessagesPreservesOrder(t *testing.T) {
	got := report.DedupMessages([]string{"a", "b"}, []string{"b", "c"})
	require.Equal(t, []string{"a", "b", "c"}, got)
}

func TestToGraphEmitsConformsAndResults(t *testing.T) {
	r := report.New()
	r.Add(&report.Result{FocusNode: quad.IRI("ex:alice"), SourceShape: quad.BNode("s1"), Severity: quad.IRI("http://www.w3.org/ns/shacl#Violation")})

	g := report.ToGraph(r)
	require.Greater(t, g.Len(), 0)
}

func TestToJSONRoundTripsFields(t *testing.T) {
	r := report.New()
	r.Add(&report.Result{
		FocusNode:   quad.IRI("ex:alice"),
		SourceShape: quad.BNode("s1"),
		Severity:    quad.IRI("http://www.w3.org/ns/shacl#Violation"),
		Messages:    []string{"too short"},
	})
	data, err := report.ToJSON(r)
	require.NoError(t, err)
	require.Contains(t, string(data), "\"conforms\": false")
	require.Contains(t, string(data), "too short")
}

func TestToTextRendersConformsBanner(t *testing.T) {
	r := report.New()
	text := report.ToText(r)
	require.Contains(t, text, "conforms: true")
}

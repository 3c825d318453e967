package report

import (
	"encoding/json"

	"github.com/ensaremirerol/shacl-validate/rdf"
)

// jsonResult mirrors spec.md §6's JSON result shape: focusNode,
// sourceShape, severity, and optional sourceConstraintComponent,
// resultPath, value, messages, trace, details.
type jsonResult struct {
	FocusNode                 string       `json:"focusNode"`
	SourceShape               string       `json:"sourceShape"`
	Severity                  string       `json:"severity"`
	SourceConstraintComponent string       `json:"sourceConstraintComponent,omitempty"`
	ResultPath                string       `json:"resultPath,omitempty"`
	Value                     string       `json:"value,omitempty"`
	Messages                  []string     `json:"messages,omitempty"`
	Trace                     []string     `json:"trace,omitempty"`
	Details                   []jsonResult `json:"details,omitempty"`
}

type jsonReport struct {
	Conforms bool         `json:"conforms"`
	Results  []jsonResult `json:"results"`
}

func termString(t rdf.Term) string {
	if t == nil {
		return ""
	}
	return t.String()
}

func toJSONResult(r *Result) jsonResult {
	out := jsonResult{
		FocusNode:                 termString(r.FocusNode),
		SourceShape:               termString(r.SourceShape),
		Severity:                  termString(r.Severity),
		SourceConstraintComponent: termString(r.SourceConstraintComponent),
		ResultPath:                termString(r.ResultPath),
		Value:                     termString(r.Value),
		Messages:                  r.Messages,
		Trace:                     r.Trace,
	}
	for _, d := range r.Details {
		out.Details = append(out.Details, toJSONResult(d))
	}
	return out
}

// ToJSON renders r as the compact structured form from spec.md §4.7/§6.
func ToJSON(r *Report) ([]byte, error) {
	jr := jsonReport{Conforms: r.Conforms}
	for _, res := range r.Results {
		jr.Results = append(jr.Results, toJSONResult(res))
	}
	return json.MarshalIndent(jr, "", "  ")
}

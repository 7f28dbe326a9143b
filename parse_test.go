package vizschema_test

import (
	"context"
	"io"
	"strings"
	"testing"

	vizschema "github.com/reportkit/vizschema"
	"github.com/reportkit/vizschema/coerce"
)

const candidateJSON = `{
  "version": "1.0.0",
  "meta": {"reportId": "r-1", "title": "Quarterly"},
  "sections": [
    {"id": "s1", "title": "Overview", "elements": [
      {"id": "e1", "type": "bar-chart", "title": "Revenue",
       "data": {"categories": ["Q1", "Q2"],
                "series": [{"name": "Revenue", "values": ["1.2k", 800]}]}}
    ]}
  ]
}`

const candidateYAML = `
version: "1.0.0"
meta:
  reportId: r-1
  title: Quarterly
sections:
  - id: s1
    title: Overview
    elements:
      - id: e1
        type: bar-chart
        title: Revenue
        data:
          categories: [Q1, Q2]
          series:
            - name: Revenue
              values: ["1.2k", 800]
`

func TestParseReport_JSON(t *testing.T) {
	doc, iss, err := vizschema.ParseReport(context.Background(), vizschema.JSONBytes([]byte(candidateJSON)))
	if err != nil {
		t.Fatalf("ParseReport: %v", err)
	}
	for _, code := range []string{vizschema.CodeLegacyShape, vizschema.CodeRetyped, vizschema.CodeIDAssigned} {
		if hasIssue(iss, code) {
			t.Fatalf("canonical candidate must not trigger repairs, got %v", iss)
		}
	}
	if doc.Meta.ReportID != "r-1" || doc.Sections[0].Elements[0].Type != vizschema.TypeBarChart {
		t.Fatalf("unexpected document: %+v", doc)
	}
}

func TestParseReport_YAMLMatchesJSON(t *testing.T) {
	ctx := context.Background()
	fromJSON, _, err := vizschema.ParseReport(ctx, vizschema.JSONBytes([]byte(candidateJSON)))
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	fromYAML, _, err := vizschema.ParseReport(ctx, vizschema.YAMLBytes([]byte(candidateYAML)))
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}

	if fromYAML.Meta.ReportID != fromJSON.Meta.ReportID ||
		fromYAML.Sections[0].ID != fromJSON.Sections[0].ID ||
		fromYAML.Sections[0].Elements[0].Type != fromJSON.Sections[0].Elements[0].Type {
		t.Fatalf("yaml and json candidates diverged:\n%+v\n%+v", fromYAML, fromJSON)
	}

	// The decoders produce different numeric wrapper types; coercion must
	// erase the difference.
	dj := coerce.Fan(fromJSON.Sections[0].Elements[0].Data)
	dy := coerce.Fan(fromYAML.Sections[0].Elements[0].Data)
	nj := dj.Series[0].Values
	ny := dy.Series[0].Values
	if len(nj) != len(ny) || nj[0] != ny[0] || nj[1] != ny[1] {
		t.Fatalf("series values diverged: %v vs %v", nj, ny)
	}
	if nj[0] != 1200 {
		t.Fatalf("suffix coercion lost in transit: %v", nj)
	}
}

func TestParseReport_MalformedJSON(t *testing.T) {
	_, _, err := vizschema.ParseReport(context.Background(), vizschema.JSONBytes([]byte(`{"sections": [`)))
	if err == nil {
		t.Fatalf("malformed input must surface as an error")
	}
}

func TestParseReport_ByteCap(t *testing.T) {
	big := []byte(`{"sections": [{"id": "` + strings.Repeat("x", 512) + `", "elements": []}]}`)

	_, _, err := vizschema.ParseReport(context.Background(), vizschema.JSONBytes(big), vizschema.ParseOpt{MaxBytes: 64})
	if err == nil {
		t.Fatalf("JSON candidate over the cap must fail to decode")
	}

	_, _, err = vizschema.ParseReport(context.Background(), vizschema.YAMLBytes(big), vizschema.ParseOpt{MaxBytes: 64})
	if err == nil {
		t.Fatalf("YAML candidate over the cap must be rejected")
	}
	if iss, ok := vizschema.AsIssues(err); !ok || !hasIssue(iss, vizschema.CodeTooBig) {
		t.Fatalf("expected %s issue, got %v", vizschema.CodeTooBig, err)
	}

	doc, _, err := vizschema.ParseReport(context.Background(), vizschema.JSONBytes(big), vizschema.ParseOpt{MaxBytes: 4096})
	if err != nil {
		t.Fatalf("candidate under the cap must parse, got %v", err)
	}
	if len(doc.Sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(doc.Sections))
	}
}

func TestParseReport_NilSource(t *testing.T) {
	_, _, err := vizschema.ParseReport(context.Background(), nil)
	if err == nil {
		t.Fatalf("nil source must error")
	}
}

func TestParseReport_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := vizschema.ParseReport(ctx, vizschema.JSONBytes([]byte(`{}`)))
	if err == nil {
		t.Fatalf("canceled context must error")
	}
}

func TestSetJSONDriver(t *testing.T) {
	defer vizschema.UseDefaultJSONDriver()
	vizschema.SetJSONDriver(stubDriver{})

	doc, _, err := vizschema.ParseReport(context.Background(), vizschema.JSONBytes(nil))
	if err != nil {
		t.Fatalf("ParseReport: %v", err)
	}
	if len(doc.Sections) != 1 || doc.Sections[0].ID != "stubbed" {
		t.Fatalf("replacement driver not used: %+v", doc)
	}
}

type stubDriver struct{}

func (stubDriver) NewReader(io.Reader) vizschema.Source { return stubSource{} }
func (stubDriver) NewBytes([]byte) vizschema.Source     { return stubSource{} }
func (stubDriver) Name() string                         { return "stub" }

type stubSource struct{}

func (stubSource) Decode() (any, error) {
	return map[string]any{"sections": []any{
		map[string]any{"id": "stubbed", "elements": []any{}},
	}}, nil
}
func (stubSource) Name() string { return "stub" }

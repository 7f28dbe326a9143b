package vizschema_test

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	vizschema "github.com/reportkit/vizschema"
)

func hasIssue(iss vizschema.Issues, code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

func oneElementDoc(el map[string]any) map[string]any {
	return map[string]any{
		"version": "1.0.0",
		"sections": []any{
			map[string]any{"id": "s1", "elements": []any{el}},
		},
	}
}

func TestNormalize_NilInput(t *testing.T) {
	doc, iss := vizschema.Normalize(nil)
	if doc != nil || iss != nil {
		t.Fatalf("nil input must yield (nil, nil), got (%v, %v)", doc, iss)
	}
}

func TestNormalize_NonObjectInput(t *testing.T) {
	doc, iss := vizschema.Normalize("definitely not a report")
	if doc == nil {
		t.Fatalf("non-object input must still yield a document")
	}
	if !hasIssue(iss, vizschema.CodeInvalidType) {
		t.Fatalf("expected %s issue, got %v", vizschema.CodeInvalidType, iss)
	}
	if doc.Version != vizschema.DefaultVersion {
		t.Fatalf("version = %q, want default", doc.Version)
	}
	if doc.Meta.ReportID == "" || doc.Meta.Title != "Untitled Report" {
		t.Fatalf("meta not defaulted: %+v", doc.Meta)
	}
	if doc.Renderable() {
		t.Fatalf("document with no sections must not be renderable")
	}
}

func TestNormalize_PositionalIDs(t *testing.T) {
	doc, iss := vizschema.Normalize(map[string]any{
		"sections": []any{
			map[string]any{"elements": []any{
				map[string]any{"type": "markdown"},
				map[string]any{"type": "table", "id": "keep-me"},
			}},
			map[string]any{"elements": []any{}},
		},
	})
	if got := doc.Sections[0].ID; got != "s1" {
		t.Fatalf("section id = %q, want s1", got)
	}
	if got := doc.Sections[1].ID; got != "s2" {
		t.Fatalf("section id = %q, want s2", got)
	}
	if got := doc.Sections[0].Elements[0].ID; got != "s1-e1" {
		t.Fatalf("element id = %q, want s1-e1", got)
	}
	if got := doc.Sections[0].Elements[1].ID; got != "keep-me" {
		t.Fatalf("supplied element id must survive, got %q", got)
	}
	if !hasIssue(iss, vizschema.CodeIDAssigned) {
		t.Fatalf("expected %s issues", vizschema.CodeIDAssigned)
	}
}

func TestNormalize_ThemeOverlay(t *testing.T) {
	doc, _ := vizschema.Normalize(map[string]any{
		"theme": map[string]any{
			"colors": map[string]any{"primary": "#102030"},
		},
		"sections": []any{},
	})
	if doc.Theme.Colors.Primary != "#102030" {
		t.Fatalf("primary = %q, want overlay value", doc.Theme.Colors.Primary)
	}
	def := vizschema.DefaultTheme()
	if doc.Theme.Colors.Danger != def.Colors.Danger {
		t.Fatalf("unspecified color must keep default, got %q", doc.Theme.Colors.Danger)
	}
	if len(doc.Theme.Colors.ChartPalette) != len(def.Colors.ChartPalette) {
		t.Fatalf("chart palette must keep default")
	}
}

func TestNormalize_MarkdownSynthesis(t *testing.T) {
	doc, iss := vizschema.Normalize(oneElementDoc(map[string]any{
		"id":   "e1",
		"type": "markdown",
		"data": map[string]any{"status": "ok", "items": []any{"a", "b"}},
	}))
	if !hasIssue(iss, vizschema.CodeSynthesizedMarkdown) {
		t.Fatalf("expected %s issue, got %v", vizschema.CodeSynthesizedMarkdown, iss)
	}
	md, _ := doc.Sections[0].Elements[0].Data["markdown"].(string)
	for _, want := range []string{"### Items", "- a\n- b", "- **Status**: ok"} {
		if !strings.Contains(md, want) {
			t.Fatalf("synthesized markdown missing %q:\n%s", want, md)
		}
	}
	// Scalar bullets come before headed sections; after a list a blank line
	// plus another bullet would continue the same list.
	if strings.Index(md, "- **Status**: ok") > strings.Index(md, "### Items") {
		t.Fatalf("scalar bullet must precede headed sections:\n%s", md)
	}
}

func TestNormalize_BarLegacyLabelsValues(t *testing.T) {
	doc, iss := vizschema.Normalize(oneElementDoc(map[string]any{
		"id":    "e1",
		"type":  "bar-chart",
		"title": "Revenue",
		"data": map[string]any{
			"labels": []any{"Q1", "Q2"},
			"values": []any{float64(10), float64(20)},
		},
	}))
	if !hasIssue(iss, vizschema.CodeLegacyShape) {
		t.Fatalf("expected %s issue, got %v", vizschema.CodeLegacyShape, iss)
	}
	data := doc.Sections[0].Elements[0].Data
	if _, ok := data["labels"]; ok {
		t.Fatalf("labels must be consumed by the migration")
	}
	cats, _ := data["categories"].([]any)
	if len(cats) != 2 || cats[0] != "Q1" {
		t.Fatalf("categories = %v", cats)
	}
	series, _ := data["series"].([]any)
	first, _ := series[0].(map[string]any)
	if first["name"] != "Revenue" {
		t.Fatalf("series named after element title, got %v", first["name"])
	}
}

func TestNormalize_DonutPointSeriesRetypesToLine(t *testing.T) {
	doc, iss := vizschema.Normalize(oneElementDoc(map[string]any{
		"id":   "e1",
		"type": "donut-chart",
		"data": map[string]any{
			"series": []any{map[string]any{
				"name": "Visits",
				"points": []any{
					map[string]any{"x": "Jan", "y": float64(3)},
					map[string]any{"x": "Feb", "y": float64(5)},
				},
			}},
		},
	}))
	if !hasIssue(iss, vizschema.CodeRetyped) {
		t.Fatalf("expected %s issue, got %v", vizschema.CodeRetyped, iss)
	}
	el := doc.Sections[0].Elements[0]
	if el.Type != vizschema.TypeLineChart {
		t.Fatalf("type = %q, want line-chart", el.Type)
	}
	cats, _ := el.Data["categories"].([]any)
	if len(cats) != 2 || cats[0] != "Jan" {
		t.Fatalf("categories = %v", cats)
	}
	series, _ := el.Data["series"].([]any)
	first, _ := series[0].(map[string]any)
	vals, _ := first["values"].([]any)
	if len(vals) != 2 || vals[1] != float64(5) {
		t.Fatalf("values = %v", vals)
	}
}

func TestNormalize_DonutFlatSeriesBecomesSlices(t *testing.T) {
	doc, iss := vizschema.Normalize(oneElementDoc(map[string]any{
		"id":   "e1",
		"type": "donut-chart",
		"data": map[string]any{
			"series": []any{
				map[string]any{"name": "Chrome", "value": float64(62)},
				map[string]any{"label": "Firefox", "value": float64(8)},
			},
		},
	}))
	if !hasIssue(iss, vizschema.CodeLegacyShape) {
		t.Fatalf("expected %s issue, got %v", vizschema.CodeLegacyShape, iss)
	}
	data := doc.Sections[0].Elements[0].Data
	if _, ok := data["series"]; ok {
		t.Fatalf("series must be consumed by the migration")
	}
	slices, _ := data["slices"].([]any)
	if len(slices) != 2 {
		t.Fatalf("slices = %v", slices)
	}
	second, _ := slices[1].(map[string]any)
	if second["label"] != "Firefox" || second["value"] != float64(8) {
		t.Fatalf("slice = %v", second)
	}
}

func TestNormalize_RiskScaleDefault(t *testing.T) {
	doc, iss := vizschema.Normalize(oneElementDoc(map[string]any{
		"id":   "e1",
		"type": "risk-matrix",
		"data": map[string]any{"risks": []any{}},
	}))
	if !hasIssue(iss, vizschema.CodeScaleDefaulted) {
		t.Fatalf("expected %s issue, got %v", vizschema.CodeScaleDefaulted, iss)
	}
	scale, _ := doc.Sections[0].Elements[0].Data["scale"].(map[string]any)
	lk, _ := scale["likelihood"].([]any)
	im, _ := scale["impact"].([]any)
	if len(lk) != 5 || len(im) != 5 || lk[0] != "1" || im[4] != "5" {
		t.Fatalf("defaulted scale = %v", scale)
	}
}

func TestNormalize_GatesDegradeToCardGrid(t *testing.T) {
	doc, iss := vizschema.Normalize(oneElementDoc(map[string]any{
		"id":   "e1",
		"type": "milestone-map",
		"data": map[string]any{
			"gates": []any{map[string]any{
				"name": "Gate 1", "label": "Design review", "owner": "Ada",
			}},
		},
	}))
	if !hasIssue(iss, vizschema.CodeDegraded) {
		t.Fatalf("expected %s issue, got %v", vizschema.CodeDegraded, iss)
	}
	el := doc.Sections[0].Elements[0]
	if el.Type != vizschema.TypeCardGrid {
		t.Fatalf("type = %q, want card-grid", el.Type)
	}
	cards, _ := el.Data["cards"].([]any)
	card, _ := cards[0].(map[string]any)
	if card["title"] != "Gate 1" {
		t.Fatalf("card = %v", card)
	}
	body, _ := card["body"].(string)
	if !strings.Contains(body, "Owner: Ada") {
		t.Fatalf("card body = %q", body)
	}
}

func TestNormalize_MilestoneMapWithLanesIsUntouched(t *testing.T) {
	doc, _ := vizschema.Normalize(oneElementDoc(map[string]any{
		"id":   "e1",
		"type": "milestone-map",
		"data": map[string]any{
			"lanes": []any{},
			"gates": []any{map[string]any{"name": "g"}},
		},
	}))
	if got := doc.Sections[0].Elements[0].Type; got != vizschema.TypeMilestoneMap {
		t.Fatalf("lanes present, element must keep its type, got %q", got)
	}
}

func TestNormalize_FlagsUnknownTypeAndMissingData(t *testing.T) {
	doc, iss := vizschema.Normalize(oneElementDoc(map[string]any{
		"id":   "e1",
		"type": "hologram",
	}))
	if !hasIssue(iss, vizschema.CodeUnknownType) {
		t.Fatalf("expected %s issue, got %v", vizschema.CodeUnknownType, iss)
	}
	if !hasIssue(iss, vizschema.CodeMissingData) {
		t.Fatalf("expected %s issue, got %v", vizschema.CodeMissingData, iss)
	}
	// Informational only: the element survives for the dispatcher.
	if len(doc.Sections[0].Elements) != 1 {
		t.Fatalf("unknown-type element must be kept")
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	doc, _ := vizschema.Normalize(oneElementDoc(map[string]any{
		"type": "markdown",
		"data": map[string]any{"note": "hello"},
	}))

	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var round any
	if err := json.Unmarshal(b, &round); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	doc2, iss2 := vizschema.Normalize(round)
	if len(iss2) != 0 {
		t.Fatalf("normalizing canonical output must be issue-free, got %v", iss2)
	}
	if !doc2.Renderable() {
		t.Fatalf("canonical output must stay renderable")
	}
	if doc2.Sections[0].Elements[0].ID != doc.Sections[0].Elements[0].ID {
		t.Fatalf("ids must be stable across re-normalization")
	}
}

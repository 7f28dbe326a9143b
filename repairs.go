package vizschema

import (
	"fmt"
	"sort"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/reportkit/vizschema/coerce"
)

// Per-type repair rules. These are shape migrations, not validation failures:
// the external generator has historically produced several alternative shapes
// for the same semantic content, and the contract is to accept all of them
// losslessly where possible. The table is ordered; each rule whose trigger
// matches is applied. Unrecognized types and already-canonical shapes pass
// through untouched, and an element no rule can repair is left for the
// dispatcher to degrade locally.
type repairRule struct {
	name  string
	match func(el *ElementSpec) bool
	apply func(el *ElementSpec, path string) Issue
}

var repairRules = []repairRule{
	{"markdown-synthesis", matchMarkdownSynthesis, applyMarkdownSynthesis},
	{"bar-legacy-labels-values", matchBarLegacy, applyBarLegacy},
	{"donut-point-series", matchDonutPointSeries, applyDonutPointSeries},
	{"donut-flat-series", matchDonutFlatSeries, applyDonutFlatSeries},
	{"risk-scale-default", matchRiskScaleDefault, applyRiskScaleDefault},
	{"gates-to-cards", matchGatesToCards, applyGatesToCards},
}

// repairElement runs the repair table over one element. Total over
// {type, data}: it never fails, it only rewrites.
func repairElement(el *ElementSpec, path string) Issues {
	var iss Issues
	for _, r := range repairRules {
		if r.match(el) {
			iss = AppendIssues(iss, r.apply(el, path))
		}
	}
	return iss
}

// ---- markdown synthesis ----

func matchMarkdownSynthesis(el *ElementSpec) bool {
	if el.Type != TypeMarkdown || len(el.Data) == 0 {
		return false
	}
	md, _ := el.Data["markdown"].(string)
	return md == ""
}

func applyMarkdownSynthesis(el *ElementSpec, path string) Issue {
	el.Data["markdown"] = SynthesizeMarkdown(el.Data)
	return IssueAt(path+"/data", CodeSynthesizedMarkdown, "markdown synthesized from payload", nil)
}

// SynthesizeMarkdown builds markdown from an arbitrary key/value payload:
// scalar keys become a "**Key**: value" bullet, array-valued keys a "###"
// heading followed by a bulleted list (objects inside serialized as fenced
// JSON). The reserved "markdown" key is excluded. Scalar bullets are emitted
// as one block before any headed section; otherwise a scalar bullet after a
// list's trailing blank line would continue that list. Keys are iterated in
// sorted order within each block so synthesis is reproducible. The markdown
// renderer calls this directly for payloads that bypassed Normalize.
func SynthesizeMarkdown(data map[string]any) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		if k == "markdown" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		switch data[k].(type) {
		case []any, map[string]any:
		default:
			fmt.Fprintf(&b, "- **%s**: %s\n", coerce.Humanize(k), coerce.Stringify(data[k]))
		}
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	for _, k := range keys {
		switch val := data[k].(type) {
		case []any:
			fmt.Fprintf(&b, "### %s\n\n", coerce.Humanize(k))
			for _, item := range val {
				switch item.(type) {
				case map[string]any, []any:
					b.WriteString(fencedJSON(item))
				default:
					fmt.Fprintf(&b, "- %s\n", coerce.Stringify(item))
				}
			}
			b.WriteString("\n")
		case map[string]any:
			fmt.Fprintf(&b, "### %s\n\n%s\n", coerce.Humanize(k), fencedJSON(val))
		}
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func fencedJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("```\n%v\n```\n", v)
	}
	return fmt.Sprintf("```json\n%s\n```\n", b)
}

// ---- bar chart: legacy parallel labels/values ----

func matchBarLegacy(el *ElementSpec) bool {
	if el.Type != TypeBarChart && el.Type != TypeStackedBar {
		return false
	}
	if el.Data == nil || el.Data["categories"] != nil {
		return false
	}
	_, lok := el.Data["labels"].([]any)
	_, vok := el.Data["values"].([]any)
	return lok && vok
}

func applyBarLegacy(el *ElementSpec, path string) Issue {
	labels, _ := el.Data["labels"].([]any)
	values, _ := el.Data["values"].([]any)
	name := el.Title
	if name == "" {
		name = "Series 1"
	}
	el.Data["categories"] = labels
	el.Data["series"] = []any{map[string]any{"name": name, "values": values}}
	delete(el.Data, "labels")
	delete(el.Data, "values")
	return IssueAt(path+"/data", CodeLegacyShape, "parallel labels/values migrated to categories+series",
		map[string]any{"series": name})
}

// ---- donut chart carrying a time series: re-type to line chart ----

func matchDonutPointSeries(el *ElementSpec) bool {
	if el.Type != TypeDonutChart {
		return false
	}
	entries, _ := el.Data["series"].([]any)
	if len(entries) == 0 {
		return false
	}
	first, ok := entries[0].(map[string]any)
	if !ok {
		return false
	}
	pts, ok := first["points"].([]any)
	return ok && len(pts) > 0
}

func applyDonutPointSeries(el *ElementSpec, path string) Issue {
	entries, _ := el.Data["series"].([]any)
	first, _ := entries[0].(map[string]any)
	pts, _ := first["points"].([]any)

	cats := make([]any, 0, len(pts))
	for _, p := range pts {
		pm, ok := p.(map[string]any)
		if !ok {
			continue
		}
		cats = append(cats, coerce.Stringify(pm["x"]))
	}

	series := make([]any, 0, len(entries))
	for i, e := range entries {
		em, ok := e.(map[string]any)
		if !ok {
			continue
		}
		name, _ := em["name"].(string)
		if name == "" {
			name, _ = em["label"].(string)
		}
		if name == "" {
			name = fmt.Sprintf("Series %d", i+1)
		}
		ep, _ := em["points"].([]any)
		ys := make([]any, 0, len(ep))
		for _, p := range ep {
			if pm, ok := p.(map[string]any); ok {
				ys = append(ys, pm["y"])
			}
		}
		series = append(series, map[string]any{"name": name, "values": ys})
	}

	el.Type = TypeLineChart
	el.Data["categories"] = cats
	el.Data["series"] = series
	return IssueAt(path, CodeRetyped, "donut payload is a time series; re-typed to line chart",
		map[string]any{"from": string(TypeDonutChart), "to": string(TypeLineChart)})
}

// ---- donut chart: flat {name,value} series becomes slices ----

func matchDonutFlatSeries(el *ElementSpec) bool {
	if el.Type != TypeDonutChart {
		return false
	}
	if el.Data == nil || el.Data["slices"] != nil {
		return false
	}
	entries, _ := el.Data["series"].([]any)
	if len(entries) == 0 {
		return false
	}
	first, ok := entries[0].(map[string]any)
	if !ok {
		return false
	}
	_, hasValue := first["value"]
	return hasValue
}

func applyDonutFlatSeries(el *ElementSpec, path string) Issue {
	entries, _ := el.Data["series"].([]any)
	slices := make([]any, 0, len(entries))
	for _, e := range entries {
		em, ok := e.(map[string]any)
		if !ok {
			continue
		}
		label, _ := em["name"].(string)
		if label == "" {
			label, _ = em["label"].(string)
		}
		slices = append(slices, map[string]any{"label": label, "value": em["value"]})
	}
	el.Data["slices"] = slices
	delete(el.Data, "series")
	return IssueAt(path+"/data", CodeLegacyShape, "flat series migrated to slices", nil)
}

// ---- risk matrix: default 5-point ordinal scales ----

func matchRiskScaleDefault(el *ElementSpec) bool {
	if el.Type != TypeRiskMatrix || el.Data == nil {
		return false
	}
	scale, ok := el.Data["scale"].(map[string]any)
	if !ok {
		return true
	}
	_, lok := scale["likelihood"].([]any)
	_, iok := scale["impact"].([]any)
	return !lok || !iok
}

func applyRiskScaleDefault(el *ElementSpec, path string) Issue {
	five := func() []any { return []any{"1", "2", "3", "4", "5"} }
	scale, ok := el.Data["scale"].(map[string]any)
	if !ok {
		scale = map[string]any{}
	}
	if _, ok := scale["likelihood"].([]any); !ok {
		scale["likelihood"] = five()
	}
	if _, ok := scale["impact"].([]any); !ok {
		scale["impact"] = five()
	}
	el.Data["scale"] = scale
	return IssueAt(path+"/data/scale", CodeScaleDefaulted, "5-point ordinal scales defaulted", nil)
}

// ---- milestone map expressed as gates: degrade to a card grid ----

func matchGatesToCards(el *ElementSpec) bool {
	if el.Type != TypeMilestoneMap || el.Data == nil {
		return false
	}
	if _, hasLanes := el.Data["lanes"]; hasLanes {
		return false
	}
	gates, ok := el.Data["gates"].([]any)
	return ok && len(gates) > 0
}

func applyGatesToCards(el *ElementSpec, path string) Issue {
	gates, _ := el.Data["gates"].([]any)
	cards := make([]any, 0, len(gates))
	for _, g := range gates {
		gm, ok := g.(map[string]any)
		if !ok {
			continue
		}
		name, _ := gm["name"].(string)
		label, _ := gm["label"].(string)
		owner, _ := gm["owner"].(string)
		cards = append(cards, map[string]any{
			"title": name,
			"body":  fmt.Sprintf("%s — Owner: %s", label, owner),
		})
	}
	el.Type = TypeCardGrid
	el.Data["cards"] = cards
	delete(el.Data, "gates")
	return IssueAt(path, CodeDegraded, "gate map degraded to card grid",
		map[string]any{"from": string(TypeMilestoneMap), "to": string(TypeCardGrid)})
}

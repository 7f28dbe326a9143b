package coerce

import "fmt"

// Series is one named run of values aligned to a Dataset's categories.
type Series struct {
	Name   string
	Values []float64
}

// Dataset is the internal chart representation every series shape converges
// to: ordered category labels plus one or more aligned series.
type Dataset struct {
	Categories []string
	Series     []Series
}

// Empty reports whether the dataset carries nothing renderable.
func (d Dataset) Empty() bool {
	if len(d.Series) == 0 {
		return true
	}
	for _, s := range d.Series {
		if len(s.Values) > 0 {
			return false
		}
	}
	return true
}

// seriesShape pairs a detector with its converter. Shapes are tried in
// priority order; the first match wins. Keeping the list data-driven lets new
// legacy shapes slot in without touching dispatch logic.
type seriesShape struct {
	name    string
	detect  func(map[string]any) bool
	convert func(map[string]any) Dataset
}

var seriesShapes = []seriesShape{
	{"canonical", detectCanonical, convertCanonical},
	{"series", detectSeries, convertSeries},
	{"slices", detectSlices, convertSlices},
	{"items", detectItems, convertItems},
	{"labels+values", detectLabelsValues, convertLabelsValues},
	{"x+y", detectXY, convertXY},
}

// Fan converges any recognized chart data shape into a Dataset. Nil or
// unrecognized data yields an empty Dataset, never an error.
func Fan(data map[string]any) Dataset {
	if data == nil {
		return Dataset{}
	}
	for _, s := range seriesShapes {
		if s.detect(data) {
			return s.convert(data)
		}
	}
	return Dataset{}
}

// ---- shape detectors / converters ----

func detectCanonical(m map[string]any) bool {
	cats, _ := m["categories"].([]any)
	if cats == nil {
		return false
	}
	entries, _ := m["series"].([]any)
	for _, e := range entries {
		em, ok := e.(map[string]any)
		if !ok {
			continue
		}
		if _, ok := em["values"].([]any); ok {
			return true
		}
	}
	return false
}

func convertCanonical(m map[string]any) Dataset {
	out := Dataset{Categories: Strings(m["categories"])}
	entries, _ := m["series"].([]any)
	for i, e := range entries {
		em, ok := e.(map[string]any)
		if !ok {
			continue
		}
		vals, ok := em["values"].([]any)
		if !ok {
			continue
		}
		out.Series = append(out.Series, Series{
			Name:   nameOf(em, fmt.Sprintf("Series %d", i+1)),
			Values: Nums(vals),
		})
	}
	return out
}

func detectSeries(m map[string]any) bool {
	entries, _ := m["series"].([]any)
	if len(entries) == 0 {
		return false
	}
	_, ok := entries[0].(map[string]any)
	return ok
}

func convertSeries(m map[string]any) Dataset {
	entries, _ := m["series"].([]any)
	first, _ := entries[0].(map[string]any)

	// point-series: series[].points[].{x,y}
	if pts, ok := first["points"].([]any); ok {
		out := Dataset{Categories: pointXs(pts)}
		for i, e := range entries {
			em, ok := e.(map[string]any)
			if !ok {
				continue
			}
			ep, _ := em["points"].([]any)
			out.Series = append(out.Series, Series{
				Name:   nameOf(em, fmt.Sprintf("Series %d", i+1)),
				Values: pointYs(ep),
			})
		}
		return out
	}

	// flat series: series[].{name|label, value}
	out := Dataset{}
	var vals []float64
	for _, e := range entries {
		em, ok := e.(map[string]any)
		if !ok {
			continue
		}
		out.Categories = append(out.Categories, nameOf(em, ""))
		vals = append(vals, Num(em["value"]))
	}
	out.Series = []Series{{Name: "Values", Values: vals}}
	return out
}

func detectSlices(m map[string]any) bool {
	entries, _ := m["slices"].([]any)
	return len(entries) > 0
}

func convertSlices(m map[string]any) Dataset {
	entries, _ := m["slices"].([]any)
	out := Dataset{}
	var vals []float64
	for _, e := range entries {
		em, ok := e.(map[string]any)
		if !ok {
			continue
		}
		label, _ := em["label"].(string)
		if label == "" {
			label = nameOf(em, "")
		}
		out.Categories = append(out.Categories, label)
		vals = append(vals, Num(em["value"]))
	}
	out.Series = []Series{{Name: "Values", Values: vals}}
	return out
}

func detectItems(m map[string]any) bool {
	entries, _ := m["items"].([]any)
	if len(entries) == 0 {
		return false
	}
	_, ok := entries[0].(map[string]any)
	return ok
}

func convertItems(m map[string]any) Dataset {
	entries, _ := m["items"].([]any)
	out := Dataset{}
	var vals []float64
	for _, e := range entries {
		em, ok := e.(map[string]any)
		if !ok {
			continue
		}
		out.Categories = append(out.Categories, nameOf(em, ""))
		v := em["value"]
		if v == nil {
			v = em["count"]
		}
		if v == nil {
			v = em["percentage"]
		}
		vals = append(vals, Num(v))
	}
	out.Series = []Series{{Name: "Values", Values: vals}}
	return out
}

func detectLabelsValues(m map[string]any) bool {
	_, lok := m["labels"].([]any)
	_, vok := m["values"].([]any)
	return lok && vok
}

func convertLabelsValues(m map[string]any) Dataset {
	labels, _ := m["labels"].([]any)
	values, _ := m["values"].([]any)
	return Dataset{
		Categories: Strings(labels),
		Series:     []Series{{Name: "Values", Values: Nums(values)}},
	}
}

func detectXY(m map[string]any) bool {
	_, xok := m["x"].([]any)
	_, yok := m["y"].([]any)
	return xok && yok
}

func convertXY(m map[string]any) Dataset {
	xs, _ := m["x"].([]any)
	ys, _ := m["y"].([]any)
	return Dataset{
		Categories: Strings(xs),
		Series:     []Series{{Name: "Values", Values: Nums(ys)}},
	}
}

// ---- small value helpers ----

// nameOf resolves the display name of an entry from its name or label key.
func nameOf(m map[string]any, fallback string) string {
	if s, ok := m["name"].(string); ok && s != "" {
		return s
	}
	if s, ok := m["label"].(string); ok && s != "" {
		return s
	}
	return fallback
}

func pointXs(pts []any) []string {
	out := make([]string, 0, len(pts))
	for _, p := range pts {
		pm, ok := p.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, Stringify(pm["x"]))
	}
	return out
}

func pointYs(pts []any) []float64 {
	out := make([]float64, 0, len(pts))
	for _, p := range pts {
		pm, ok := p.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, Num(pm["y"]))
	}
	return out
}

// Strings stringifies a decoded []any; non-slice input yields nil.
func Strings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, Stringify(it))
	}
	return out
}

// Nums coerces a decoded []any through Num; non-slice input yields nil.
func Nums(v any) []float64 {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]float64, 0, len(items))
	for _, it := range items {
		out = append(out, Num(it))
	}
	return out
}

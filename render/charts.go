package render

import (
	"fmt"
	"html"
	"strings"

	json "github.com/goccy/go-json"

	vizschema "github.com/reportkit/vizschema"
	"github.com/reportkit/vizschema/coerce"
)

// ChartConfig is what the engine hands to a drawing backend. The engine owns
// contract, repair and dispatch; it never draws a bar or a slice itself.
type ChartConfig struct {
	ElementID  string           `json:"elementId"`
	Kind       string           `json:"kind"`
	Title      string           `json:"title,omitempty"`
	Categories []string         `json:"categories,omitempty"`
	Series     []chartSeries    `json:"series,omitempty"`
	Points     []chartPoint     `json:"points,omitempty"`
	Links      []chartLink      `json:"links,omitempty"`
	Palette    []string         `json:"palette,omitempty"`
	Stacked    bool             `json:"stacked,omitempty"`
	AriaLabel  string           `json:"ariaLabel,omitempty"`
}

type chartSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
	Color  string    `json:"color,omitempty"`
}

type chartPoint struct {
	Label string  `json:"label,omitempty"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	R     float64 `json:"r,omitempty"`
}

type chartLink struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Value  float64 `json:"value"`
}

// renderChart is the shared path for every chart kind: resolve the drawing
// backend through the loader, fan the payload in, and emit. A pending load
// renders the fixed-size placeholder; a failed load falls back to the table
// renderer for this element so the data stays visible.
func renderChart(r *Renderer, el vizschema.ElementSpec) string {
	emitter, status := r.loader.Get(libraryFor(el.Type))
	switch status {
	case LoadPending:
		return chartLoading(el)
	case LoadFailed:
		r.flag(el, "chart backend failed to load; falling back to table")
		return renderTable(r, el)
	}

	cfg := buildChartConfig(r, el)
	if cfg.empty() {
		return noData(el)
	}
	return emitter.Emit(cfg)
}

func buildChartConfig(r *Renderer, el vizschema.ElementSpec) ChartConfig {
	cfg := ChartConfig{
		ElementID: el.ID,
		Kind:      string(el.Type),
		Title:     el.Title,
		Palette:   r.palette(),
		Stacked:   el.Type == vizschema.TypeStackedBar,
	}
	if el.Accessibility != nil {
		cfg.AriaLabel = el.Accessibility.AriaLabel
	}
	switch el.Type {
	case vizschema.TypeBubbleChart:
		for _, p := range coerce.Points(el.Data) {
			cfg.Points = append(cfg.Points, chartPoint(p))
		}
	case vizschema.TypeSankey:
		for _, l := range coerce.Links(el.Data) {
			cfg.Links = append(cfg.Links, chartLink(l))
		}
	default:
		ds := coerce.Fan(el.Data)
		cfg.Categories = ds.Categories
		for i, s := range ds.Series {
			cs := chartSeries{Name: s.Name, Values: s.Values}
			if len(cfg.Palette) > 0 {
				cs.Color = cfg.Palette[i%len(cfg.Palette)]
			}
			cfg.Series = append(cfg.Series, cs)
		}
	}
	return cfg
}

func (c ChartConfig) empty() bool {
	return len(c.Series) == 0 && len(c.Points) == 0 && len(c.Links) == 0
}

// builtinEmitter embeds the config as JSON for the bundled client-side
// drawing library. It keeps the placeholder geometry so a late-hydrating
// chart does not shift the layout.
type builtinEmitter struct{}

func (builtinEmitter) Emit(cfg ChartConfig) string {
	b, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Sprintf(`<div class="chart chart-error" data-kind=%q></div>`, cfg.Kind)
	}
	var sb strings.Builder
	label := cfg.AriaLabel
	if label == "" {
		label = cfg.Title
	}
	fmt.Fprintf(&sb, `<div class="chart" id="chart-%s" data-kind=%q role="img" aria-label=%q>`,
		html.EscapeString(cfg.ElementID), cfg.Kind, label)
	fmt.Fprintf(&sb, `<script type="application/json" data-chart-config>%s</script>`,
		strings.ReplaceAll(string(b), "</", `<\/`))
	sb.WriteString(`</div>`)
	return sb.String()
}

// chartLoading is the fixed-size placeholder shown while a backend load is
// pending. It must not block sibling elements from rendering.
func chartLoading(el vizschema.ElementSpec) string {
	return fmt.Sprintf(`<div class="chart chart-loading" id="chart-%s" data-kind=%q aria-busy="true"></div>`,
		html.EscapeString(el.ID), string(el.Type))
}

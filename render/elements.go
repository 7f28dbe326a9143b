package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	vizschema "github.com/reportkit/vizschema"
	"github.com/reportkit/vizschema/coerce"
)

// markdown is the shared converter. Raw HTML inside generated markdown stays
// escaped; the payload is untrusted.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

func renderMarkdown(r *Renderer, el vizschema.ElementSpec) string {
	src, _ := el.Data["markdown"].(string)
	if src == "" && len(el.Data) > 0 {
		// Direct-render path: the payload never went through Normalize.
		src = vizschema.SynthesizeMarkdown(el.Data)
	}
	if src == "" {
		return noData(el)
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return fmt.Sprintf(`<pre class="el-markdown">%s</pre>`, esc(src))
	}
	return fmt.Sprintf(`<div class="el-markdown">%s</div>`, buf.String())
}

func renderTable(r *Renderer, el vizschema.ElementSpec) string {
	cols := coerce.Columns(el.Data)
	rows := coerce.Rows(el.Data)
	if len(cols) == 0 {
		return noData(el)
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<table class="el-table" id="table-%s"><thead><tr>`, esc(el.ID))
	for _, c := range cols {
		fmt.Fprintf(&b, "<th>%s</th>", esc(c.Label))
	}
	b.WriteString("</tr></thead><tbody>")
	for _, row := range rows {
		b.WriteString("<tr>")
		for _, c := range cols {
			fmt.Fprintf(&b, "<td>%s</td>", esc(coerce.CellString(coerce.Lookup(row, c.Key))))
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}

func renderKPIGroup(r *Renderer, el vizschema.ElementSpec) string {
	entries := entryList(el.Data, "items", "cards", "kpis")
	if len(entries) == 0 {
		return noData(el)
	}
	var b strings.Builder
	b.WriteString(`<div class="el-kpis">`)
	for _, e := range entries {
		label := firstStr(e, "label", "name", "title")
		value := coerce.Stringify(pick(e, "value", "amount"))
		unit := firstStr(e, "unit")
		b.WriteString(`<div class="kpi">`)
		fmt.Fprintf(&b, `<div class="kpi-value">%s%s</div>`, esc(value), esc(unit))
		fmt.Fprintf(&b, `<div class="kpi-label">%s</div>`, esc(label))
		if d := pick(e, "delta", "change"); d != nil {
			dir := "up"
			if coerce.Num(d) < 0 {
				dir = "down"
			}
			fmt.Fprintf(&b, `<div class="kpi-delta kpi-%s">%s</div>`, dir, esc(coerce.Stringify(d)))
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

func renderCardGrid(r *Renderer, el vizschema.ElementSpec) string {
	entries := entryList(el.Data, "cards", "items")
	if len(entries) == 0 {
		return noData(el)
	}
	var b strings.Builder
	b.WriteString(`<div class="el-cards">`)
	for _, e := range entries {
		b.WriteString(`<div class="card">`)
		if t := firstStr(e, "title", "name", "label"); t != "" {
			fmt.Fprintf(&b, `<h4>%s</h4>`, esc(t))
		}
		if body := firstStr(e, "body", "description", "text"); body != "" {
			fmt.Fprintf(&b, `<p>%s</p>`, esc(body))
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

func renderTimeline(r *Renderer, el vizschema.ElementSpec) string {
	entries := entryList(el.Data, "events", "items", "milestones")
	if len(entries) == 0 {
		return noData(el)
	}
	var b strings.Builder
	b.WriteString(`<ol class="el-timeline">`)
	for _, e := range entries {
		b.WriteString("<li>")
		if d := firstStr(e, "date", "when", "time"); d != "" {
			fmt.Fprintf(&b, `<time>%s</time> `, esc(d))
		}
		fmt.Fprintf(&b, `<strong>%s</strong>`, esc(firstStr(e, "title", "name", "label")))
		if desc := firstStr(e, "description", "body", "detail"); desc != "" {
			fmt.Fprintf(&b, `<p>%s</p>`, esc(desc))
		}
		b.WriteString("</li>")
	}
	b.WriteString(`</ol>`)
	return b.String()
}

func renderMilestoneMap(r *Renderer, el vizschema.ElementSpec) string {
	ms := coerce.Milestones(el.Data)
	if len(ms) == 0 {
		return noData(el)
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<table class="el-table el-milestones" id="table-%s">`, esc(el.ID))
	b.WriteString("<thead><tr><th>Name</th><th>Title</th><th>Date</th><th>Outcome</th><th>Duration</th></tr></thead><tbody>")
	for _, m := range ms {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			esc(m.Name), esc(m.Title), esc(m.Date), esc(m.Outcome), esc(m.Duration))
	}
	b.WriteString("</tbody></table>")
	return b.String()
}

func renderGantt(r *Renderer, el vizschema.ElementSpec) string {
	entries := entryList(el.Data, "tasks", "items", "bars")
	if len(entries) == 0 {
		return noData(el)
	}
	var b strings.Builder
	b.WriteString(`<div class="el-gantt">`)
	for _, e := range entries {
		name := firstStr(e, "name", "label", "title")
		start := coerce.Stringify(pick(e, "start", "from"))
		end := coerce.Stringify(pick(e, "end", "to"))
		progress := coerce.Num(pick(e, "progress", "percent"))
		if progress < 0 {
			progress = 0
		}
		if progress > 100 {
			progress = 100
		}
		b.WriteString(`<div class="gantt-row">`)
		fmt.Fprintf(&b, `<span class="gantt-name">%s</span>`, esc(name))
		fmt.Fprintf(&b, `<span class="gantt-range">%s – %s</span>`, esc(start), esc(end))
		fmt.Fprintf(&b, `<span class="gantt-bar"><span class="gantt-fill" style="width:%g%%"></span></span>`, progress)
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

func renderRiskMatrix(r *Renderer, el vizschema.ElementSpec) string {
	scale, _ := el.Data["scale"].(map[string]any)
	likelihood := coerce.Strings(scale["likelihood"])
	impact := coerce.Strings(scale["impact"])
	if len(likelihood) == 0 || len(impact) == 0 {
		// Direct-render path without the Normalizer's scale default.
		likelihood = []string{"1", "2", "3", "4", "5"}
		impact = []string{"1", "2", "3", "4", "5"}
	}
	risks := entryList(el.Data, "risks", "items")

	cell := func(li, ii int) []string {
		var names []string
		for _, rk := range risks {
			if scaleIndex(pick(rk, "likelihood"), likelihood) == li &&
				scaleIndex(pick(rk, "impact"), impact) == ii {
				names = append(names, firstStr(rk, "name", "label", "title"))
			}
		}
		return names
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<table class="el-risk-matrix" id="risk-%s"><thead><tr><th></th>`, esc(el.ID))
	for _, im := range impact {
		fmt.Fprintf(&b, "<th>%s</th>", esc(im))
	}
	b.WriteString("</tr></thead><tbody>")
	// Highest likelihood row first, matrix convention.
	for li := len(likelihood) - 1; li >= 0; li-- {
		fmt.Fprintf(&b, "<tr><th>%s</th>", esc(likelihood[li]))
		for ii := range impact {
			names := cell(li, ii)
			fmt.Fprintf(&b, `<td data-count="%d">%s</td>`, len(names), esc(strings.Join(names, ", ")))
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}

// scaleIndex maps a risk coordinate onto its ordinal scale: a numeric value
// is treated as 1-based position, a string is matched against scale labels.
func scaleIndex(v any, scale []string) int {
	if s, ok := v.(string); ok {
		for i, label := range scale {
			if strings.EqualFold(s, label) {
				return i
			}
		}
	}
	n := int(coerce.Num(v))
	if n >= 1 && n <= len(scale) {
		return n - 1
	}
	return -1
}

func renderJourneyMap(r *Renderer, el vizschema.ElementSpec) string {
	entries := entryList(el.Data, "stages", "phases", "steps")
	if len(entries) == 0 {
		return noData(el)
	}
	var b strings.Builder
	b.WriteString(`<div class="el-journey">`)
	for _, e := range entries {
		b.WriteString(`<div class="journey-stage">`)
		fmt.Fprintf(&b, `<h4>%s</h4>`, esc(firstStr(e, "name", "label", "stage", "title")))
		if desc := firstStr(e, "description", "body"); desc != "" {
			fmt.Fprintf(&b, `<p>%s</p>`, esc(desc))
		}
		steps, ok := e["steps"].([]any)
		if !ok {
			steps, _ = e["touchpoints"].([]any)
		}
		if len(steps) > 0 {
			b.WriteString("<ul>")
			for _, s := range steps {
				fmt.Fprintf(&b, "<li>%s</li>", esc(coerce.Stringify(s)))
			}
			b.WriteString("</ul>")
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

func renderProgressRing(r *Renderer, el vizschema.ElementSpec) string {
	raw := pick(el.Data, "value", "percent", "progress")
	if raw == nil {
		return noData(el)
	}
	value := coerce.Num(raw)
	max := coerce.Num(pick(el.Data, "max", "total"))
	if max <= 0 {
		max = 100
	}
	pct := value / max * 100
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return fmt.Sprintf(
		`<div class="el-ring" id="ring-%s" role="meter" aria-valuenow="%g" aria-valuemax="%g" style="--ring-pct:%g"><span>%g%%</span></div>`,
		esc(el.ID), value, max, pct, pct)
}

func renderInfographic(r *Renderer, el vizschema.ElementSpec) string {
	entries := entryList(el.Data, "blocks", "items")
	if len(entries) == 0 {
		return noData(el)
	}
	var b strings.Builder
	b.WriteString(`<div class="el-infographic">`)
	for _, e := range entries {
		kind := firstStr(e, "kind", "type")
		if kind == "" && pick(e, "value") != nil {
			kind = "stat"
		}
		switch kind {
		case "stat":
			b.WriteString(`<div class="info-stat">`)
			fmt.Fprintf(&b, `<div class="info-value">%s</div>`, esc(coerce.Stringify(pick(e, "value"))))
			fmt.Fprintf(&b, `<div class="info-label">%s</div>`, esc(firstStr(e, "label", "name")))
			b.WriteString(`</div>`)
		default:
			fmt.Fprintf(&b, `<p class="info-text">%s</p>`, esc(firstStr(e, "text", "body", "label")))
		}
	}
	b.WriteString(`</div>`)
	return b.String()
}

func renderFlowchart(r *Renderer, el vizschema.ElementSpec) string {
	nodes := entryList(el.Data, "nodes")
	edges := entryList(el.Data, "edges", "links")
	if len(nodes) == 0 {
		return noData(el)
	}
	labels := map[string]string{}
	var b strings.Builder
	b.WriteString(`<div class="el-flowchart"><ul class="flow-nodes">`)
	for _, n := range nodes {
		id := firstStr(n, "id", "name")
		label := firstStr(n, "label", "title", "name")
		if label == "" {
			label = id
		}
		labels[id] = label
		fmt.Fprintf(&b, `<li data-node=%q>%s</li>`, esc(id), esc(label))
	}
	b.WriteString("</ul>")
	if len(edges) > 0 {
		b.WriteString(`<ul class="flow-edges">`)
		for _, e := range edges {
			from := firstStr(e, "from", "source")
			to := firstStr(e, "to", "target")
			fl, tl := labels[from], labels[to]
			if fl == "" {
				fl = from
			}
			if tl == "" {
				tl = to
			}
			fmt.Fprintf(&b, "<li>%s &rarr; %s", esc(fl), esc(tl))
			if lab := firstStr(e, "label"); lab != "" {
				fmt.Fprintf(&b, " <em>(%s)</em>", esc(lab))
			}
			b.WriteString("</li>")
		}
		b.WriteString("</ul>")
	}
	b.WriteString("</div>")
	return b.String()
}

func renderMedia(r *Renderer, el vizschema.ElementSpec) string {
	url := firstStr(el.Data, "url", "src")
	if url == "" {
		return noData(el)
	}
	kind := firstStr(el.Data, "kind", "type")
	alt := firstStr(el.Data, "alt")
	if alt == "" && el.Accessibility != nil {
		alt = el.Accessibility.AltText
	}
	caption := firstStr(el.Data, "caption")

	var inner string
	switch kind {
	case "video":
		inner = fmt.Sprintf(`<video controls src=%q></video>`, esc(url))
	case "embed":
		inner = fmt.Sprintf(`<iframe src=%q loading="lazy"></iframe>`, esc(url))
	default:
		inner = fmt.Sprintf(`<img src=%q alt=%q loading="lazy">`, esc(url), esc(alt))
	}
	if caption != "" {
		return fmt.Sprintf(`<figure class="el-media">%s<figcaption>%s</figcaption></figure>`, inner, esc(caption))
	}
	return fmt.Sprintf(`<figure class="el-media">%s</figure>`, inner)
}

// ---- payload helpers ----

// entryList returns the first present list of object entries under keys.
func entryList(data map[string]any, keys ...string) []map[string]any {
	if data == nil {
		return nil
	}
	for _, k := range keys {
		items, ok := data[k].([]any)
		if !ok {
			continue
		}
		out := make([]map[string]any, 0, len(items))
		for _, it := range items {
			if m, ok := it.(map[string]any); ok {
				out = append(out, m)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

func firstStr(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func pick(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

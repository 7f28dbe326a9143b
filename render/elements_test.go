package render_test

import (
	"strings"
	"testing"

	vizschema "github.com/reportkit/vizschema"
)

func renderOne(t *testing.T, el vizschema.ElementSpec) string {
	t.Helper()
	return newTestRenderer().RenderHTML(testDoc(el))
}

func TestProgressRing(t *testing.T) {
	html := renderOne(t, vizschema.ElementSpec{
		ID: "e1", Type: vizschema.TypeProgressRing,
		Data: map[string]any{"value": float64(30), "max": float64(40)},
	})
	if !strings.Contains(html, `role="meter"`) || !strings.Contains(html, "--ring-pct:75") {
		t.Fatalf("ring output wrong:\n%s", html)
	}

	// Out-of-range values clamp instead of breaking the gradient.
	html = renderOne(t, vizschema.ElementSpec{
		ID: "e2", Type: vizschema.TypeProgressRing,
		Data: map[string]any{"value": float64(250)},
	})
	if !strings.Contains(html, "--ring-pct:100") {
		t.Fatalf("expected clamped percentage:\n%s", html)
	}
}

func TestRiskMatrix_Placement(t *testing.T) {
	html := renderOne(t, vizschema.ElementSpec{
		ID: "e1", Type: vizschema.TypeRiskMatrix,
		Data: map[string]any{
			"scale": map[string]any{
				"likelihood": []any{"Low", "Medium", "High"},
				"impact":     []any{"Minor", "Major", "Severe"},
			},
			"risks": []any{
				map[string]any{"name": "Churn", "likelihood": "High", "impact": "Severe"},
				map[string]any{"name": "Outage", "likelihood": float64(1), "impact": float64(2)},
			},
		},
	})
	if !strings.Contains(html, "<th>Severe</th>") {
		t.Fatalf("impact labels missing:\n%s", html)
	}
	if !strings.Contains(html, ">Churn</td>") {
		t.Fatalf("string coordinates must place the risk:\n%s", html)
	}
	if !strings.Contains(html, ">Outage</td>") {
		t.Fatalf("numeric coordinates must place the risk:\n%s", html)
	}
	// Highest likelihood row renders first.
	if strings.Index(html, "<th>High</th>") > strings.Index(html, "<th>Low</th>") {
		t.Fatalf("likelihood rows out of order:\n%s", html)
	}
}

func TestFlowchart(t *testing.T) {
	html := renderOne(t, vizschema.ElementSpec{
		ID: "e1", Type: vizschema.TypeFlowchart,
		Data: map[string]any{
			"nodes": []any{
				map[string]any{"id": "a", "label": "Start"},
				map[string]any{"id": "b", "label": "End"},
			},
			"edges": []any{
				map[string]any{"from": "a", "to": "b", "label": "ship"},
			},
		},
	})
	for _, want := range []string{
		`<li data-node="a">Start</li>`,
		"Start &rarr; End",
		"<em>(ship)</em>",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("output missing %q:\n%s", want, html)
		}
	}
}

func TestGantt_ClampsProgress(t *testing.T) {
	html := renderOne(t, vizschema.ElementSpec{
		ID: "e1", Type: vizschema.TypeGantt,
		Data: map[string]any{"tasks": []any{
			map[string]any{"name": "Build", "start": "W1", "end": "W3", "progress": float64(150)},
		}},
	})
	if !strings.Contains(html, "width:100%") {
		t.Fatalf("progress must clamp to 100:\n%s", html)
	}
	if !strings.Contains(html, "W1 – W3") {
		t.Fatalf("range missing:\n%s", html)
	}
}

func TestTimeline(t *testing.T) {
	html := renderOne(t, vizschema.ElementSpec{
		ID: "e1", Type: vizschema.TypeTimeline,
		Data: map[string]any{"events": []any{
			map[string]any{"date": "2026-02-01", "title": "Kickoff", "description": "started"},
		}},
	})
	for _, want := range []string{"<time>2026-02-01</time>", "<strong>Kickoff</strong>", "<p>started</p>"} {
		if !strings.Contains(html, want) {
			t.Fatalf("output missing %q:\n%s", want, html)
		}
	}
}

func TestMedia_Kinds(t *testing.T) {
	html := renderOne(t, vizschema.ElementSpec{
		ID: "e1", Type: vizschema.TypeMedia,
		Data: map[string]any{"url": "https://x/img.png", "alt": "chart", "caption": "fig 1"},
	})
	if !strings.Contains(html, `<img src="https://x/img.png" alt="chart"`) ||
		!strings.Contains(html, "<figcaption>fig 1</figcaption>") {
		t.Fatalf("image output wrong:\n%s", html)
	}

	html = renderOne(t, vizschema.ElementSpec{
		ID: "e2", Type: vizschema.TypeMedia,
		Data: map[string]any{"url": "https://x/v.mp4", "kind": "video"},
	})
	if !strings.Contains(html, "<video controls") {
		t.Fatalf("video output wrong:\n%s", html)
	}

	html = renderOne(t, vizschema.ElementSpec{
		ID: "e3", Type: vizschema.TypeMedia,
		Data: map[string]any{"url": "https://x/embed", "kind": "embed"},
	})
	if !strings.Contains(html, "<iframe") {
		t.Fatalf("embed output wrong:\n%s", html)
	}
}

func TestJourneyMap(t *testing.T) {
	html := renderOne(t, vizschema.ElementSpec{
		ID: "e1", Type: vizschema.TypeJourneyMap,
		Data: map[string]any{"stages": []any{
			map[string]any{"name": "Discover", "steps": []any{"search", "compare"}},
		}},
	})
	for _, want := range []string{"<h4>Discover</h4>", "<li>search</li>", "<li>compare</li>"} {
		if !strings.Contains(html, want) {
			t.Fatalf("output missing %q:\n%s", want, html)
		}
	}
}

func TestMilestoneMap_Table(t *testing.T) {
	html := renderOne(t, vizschema.ElementSpec{
		ID: "e1", Type: vizschema.TypeMilestoneMap,
		Data: map[string]any{"milestones": []any{
			map[string]any{"name": "M1", "title": "Alpha", "date": "2026-03-01", "outcome": "shipped", "duration": float64(45)},
		}},
	})
	for _, want := range []string{"el-milestones", "<td>M1</td>", "<td>Alpha</td>", "<td>45 min</td>"} {
		if !strings.Contains(html, want) {
			t.Fatalf("output missing %q:\n%s", want, html)
		}
	}
}

package render

import (
	"go.uber.org/zap"

	vizschema "github.com/reportkit/vizschema"
)

// renderFunc renders one element body. Implementations never return an error:
// anything unrenderable degrades to the element's own empty state.
type renderFunc func(r *Renderer, el vizschema.ElementSpec) string

// renderers is the dispatch registry over the closed element-type set. The
// placeholder arm in dispatch stays reachable only for tags missing from this
// map, so a newly added canonical type shows up as a placeholder in output
// (and in tests) until it gets a renderer here.
var renderers = map[vizschema.ElementType]renderFunc{
	vizschema.TypeKPICardGroup: renderKPIGroup,
	vizschema.TypeTimeline:     renderTimeline,
	vizschema.TypeMilestoneMap: renderMilestoneMap,
	vizschema.TypeGantt:        renderGantt,
	vizschema.TypeRiskMatrix:   renderRiskMatrix,
	vizschema.TypeBarChart:     renderChart,
	vizschema.TypeStackedBar:   renderChart,
	vizschema.TypeLineChart:    renderChart,
	vizschema.TypeAreaChart:    renderChart,
	vizschema.TypeDonutChart:   renderChart,
	vizschema.TypeRadarChart:   renderChart,
	vizschema.TypeBubbleChart:  renderChart,
	vizschema.TypeHeatmap:      renderChart,
	vizschema.TypeFunnelChart:  renderChart,
	vizschema.TypeSankey:       renderChart,
	vizschema.TypeJourneyMap:   renderJourneyMap,
	vizschema.TypeProgressRing: renderProgressRing,
	vizschema.TypeTable:        renderTable,
	vizschema.TypeCardGrid:     renderCardGrid,
	vizschema.TypeInfographic:  renderInfographic,
	vizschema.TypeFlowchart:    renderFlowchart,
	vizschema.TypeMarkdown:     renderMarkdown,
	vizschema.TypeMedia:        renderMedia,
}

// dispatch selects the renderer by exact match on the element type. Unknown
// types get the visible placeholder; an element with absent or empty data is
// flagged in diagnostic mode but still dispatched, so the slot degrades to
// that renderer's own "no data" fallback rather than vanishing.
func (r *Renderer) dispatch(el vizschema.ElementSpec) string {
	fn, ok := renderers[el.Type]
	if !ok {
		r.log.Warn("unsupported element type",
			zap.String("element", el.ID), zap.String("type", string(el.Type)))
		return placeholder(el)
	}
	if len(el.Data) == 0 {
		r.flag(el, "element has no data")
	}
	return fn(r, el)
}

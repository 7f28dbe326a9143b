package vizschema

// ElementType tags one visual unit inside a section. The set is closed: the
// dispatcher matches exactly on these tags and renders a placeholder for
// anything else.
type ElementType string

const (
	TypeKPICardGroup ElementType = "kpi-card-group"
	TypeTimeline     ElementType = "timeline"
	TypeMilestoneMap ElementType = "milestone-map"
	TypeGantt        ElementType = "gantt"
	TypeRiskMatrix   ElementType = "risk-matrix"
	TypeBarChart     ElementType = "bar-chart"
	TypeStackedBar   ElementType = "stacked-bar-chart"
	TypeLineChart    ElementType = "line-chart"
	TypeAreaChart    ElementType = "area-chart"
	TypeDonutChart   ElementType = "donut-chart"
	TypeRadarChart   ElementType = "radar-chart"
	TypeBubbleChart  ElementType = "bubble-chart"
	TypeHeatmap      ElementType = "heatmap"
	TypeFunnelChart  ElementType = "funnel-chart"
	TypeSankey       ElementType = "sankey-diagram"
	TypeJourneyMap   ElementType = "journey-map"
	TypeProgressRing ElementType = "progress-ring"
	TypeTable        ElementType = "table"
	TypeCardGrid     ElementType = "card-grid"
	TypeInfographic  ElementType = "infographic"
	TypeFlowchart    ElementType = "flowchart"
	TypeMarkdown     ElementType = "markdown"
	TypeMedia        ElementType = "media"
)

// elementTypeOrder preserves the canonical declaration order for ElementTypes.
var elementTypeOrder = []ElementType{
	TypeKPICardGroup, TypeTimeline, TypeMilestoneMap, TypeGantt, TypeRiskMatrix,
	TypeBarChart, TypeStackedBar, TypeLineChart, TypeAreaChart, TypeDonutChart,
	TypeRadarChart, TypeBubbleChart, TypeHeatmap, TypeFunnelChart, TypeSankey,
	TypeJourneyMap, TypeProgressRing, TypeTable, TypeCardGrid, TypeInfographic,
	TypeFlowchart, TypeMarkdown, TypeMedia,
}

var elementTypeSet = func() map[ElementType]struct{} {
	m := make(map[ElementType]struct{}, len(elementTypeOrder))
	for _, t := range elementTypeOrder {
		m[t] = struct{}{}
	}
	return m
}()

// IsElementType reports whether s names a member of the closed element-type
// set. It never panics; any other value yields false.
func IsElementType(s string) bool {
	_, ok := elementTypeSet[ElementType(s)]
	return ok
}

// ElementTypes returns the closed element-type set in declaration order. The
// returned slice is a copy.
func ElementTypes() []ElementType {
	out := make([]ElementType, len(elementTypeOrder))
	copy(out, elementTypeOrder)
	return out
}

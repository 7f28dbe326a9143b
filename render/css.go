package render

import (
	"fmt"
	"strings"

	vizschema "github.com/reportkit/vizschema"
)

// baseCSS emits the structural stylesheet: the responsive grid driven by the
// schema's LayoutSpec, slot variants, and the entrance animations. Theme
// tokens arrive separately through the presentation context's :root block.
func baseCSS(l vizschema.LayoutSpec) string {
	var b strings.Builder

	b.WriteString(`
body { margin: 0; font-family: var(--font-body); background: var(--bg-1); color: var(--color-neutral-5); }
header[role="banner"] { padding: var(--space-6) var(--space-5) var(--space-4); }
h1, h2, h3, h4 { font-family: var(--font-heading); }
.skip-link { position: absolute; left: -999px; }
.skip-link:focus { left: var(--space-2); top: var(--space-2); }
.report-section { padding: var(--space-4) var(--space-5); }
.section-hero { background: var(--bg-2); }
.variant-card { background: var(--bg-1); border-radius: var(--radius-2); box-shadow: var(--shadow-1); padding: var(--space-4); }
.variant-inset { background: var(--bg-3); border-radius: var(--radius-1); padding: var(--space-3); }
.pad-none { padding: 0; }
.pad-compact { padding: var(--space-2); }
.pad-spacious { padding: var(--space-6); }
.el-placeholder, .el-empty, .diag { border: 1px dashed var(--color-neutral-3); color: var(--color-neutral-4); padding: var(--space-3); border-radius: var(--radius-1); }
.chart, .chart-loading { min-height: 280px; }
.chart-loading { background: var(--bg-2); border-radius: var(--radius-1); }
.el-table { width: 100%; border-collapse: collapse; }
.el-table th, .el-table td { text-align: left; padding: var(--space-2); border-bottom: 1px solid var(--color-neutral-2); }
.el-kpis, .el-cards, .el-infographic { display: flex; flex-wrap: wrap; gap: var(--space-3); }
.kpi-value, .info-value { font-size: var(--text-7); font-weight: var(--weight-4); }
.kpi-up { color: var(--color-success); }
.kpi-down { color: var(--color-danger); }
.gantt-bar { display: inline-block; width: 40%; background: var(--bg-3); border-radius: var(--radius-1); }
.gantt-fill { display: block; height: 8px; background: var(--color-primary); border-radius: var(--radius-1); }
.el-ring { width: 120px; height: 120px; border-radius: 50%; display: grid; place-items: center; background: conic-gradient(var(--color-primary) calc(var(--ring-pct) * 1%), var(--bg-3) 0); }
.el-ring span { background: var(--bg-1); border-radius: 50%; width: 88px; height: 88px; display: grid; place-items: center; }
@keyframes el-fade { from { opacity: 0; } to { opacity: 1; } }
@keyframes el-rise { from { opacity: 0; transform: translateY(12px); } to { opacity: 1; transform: none; } }
.anim-fade { animation: el-fade var(--motion-duration-3, 320ms) var(--motion-easing-1, ease-out) both; }
.anim-rise { animation: el-rise var(--motion-duration-3, 320ms) var(--motion-easing-3, ease-out) both; }
`)

	fmt.Fprintf(&b, `
.grid { display: grid; gap: %dpx; grid-template-columns: repeat(%d, minmax(0, 1fr)); }
.el { --cols: %d; grid-column: span min(var(--span-sm, var(--cols)), %d); order: var(--order-sm, 0); }
`, l.GapsPX.SM, l.Columns.SM, l.Columns.SM, l.Columns.SM)

	fmt.Fprintf(&b, `
@media (min-width: %dpx) {
  .grid { gap: %dpx; grid-template-columns: repeat(%d, minmax(0, 1fr)); }
  .el { --cols: %d; grid-column: span min(var(--span-md, var(--cols)), %d); order: var(--order-md, 0); }
}
`, l.Breakpoints.MD, l.GapsPX.MD, l.Columns.MD, l.Columns.MD, l.Columns.MD)

	fmt.Fprintf(&b, `
@media (min-width: %dpx) {
  .grid { gap: %dpx; grid-template-columns: repeat(%d, minmax(0, 1fr)); }
  .el { --cols: %d; grid-column: span min(var(--span-lg, var(--cols)), %d); order: var(--order-lg, 0); }
}
`, l.Breakpoints.LG, l.GapsPX.LG, l.Columns.LG, l.Columns.LG, l.Columns.LG)

	return b.String()
}

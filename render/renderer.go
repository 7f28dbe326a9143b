// Package render turns a canonical VisualSchema into a self-contained HTML
// report: theme tokens become CSS custom properties, sections become grid
// blocks, and each element is dispatched to its renderer over the closed
// element-type set. Error containment is local by design: a malformed element
// degrades to a placeholder or empty state and never aborts the document.
package render

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	vizschema "github.com/reportkit/vizschema"
	"github.com/reportkit/vizschema/theme"
)

// Renderer is the composition root. Zero-value options render silently with
// the built-in chart backend and the global presentation context.
type Renderer struct {
	log    *zap.Logger
	pctx   *theme.Context
	loader *DriverLoader
	diag   bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger installs a zap logger and turns on development diagnostics:
// empty sections and elements missing type or data are logged and flagged
// inline without interrupting sibling rendering.
func WithLogger(l *zap.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.log = l
			r.diag = true
		}
	}
}

// WithContext renders against a private presentation context instead of the
// process-wide one.
func WithContext(c *theme.Context) Option {
	return func(r *Renderer) {
		if c != nil {
			r.pctx = c
		}
	}
}

// WithChartLoader substitutes the chart backend loader.
func WithChartLoader(l *DriverLoader) Option {
	return func(r *Renderer) {
		if l != nil {
			r.loader = l
		}
	}
}

// New builds a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		log:    zap.NewNop(),
		pctx:   theme.Global(),
		loader: NewDriverLoader(nil),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// RenderHTML renders the document. An absent, invalid or section-less schema
// renders nothing (empty string), never an error; the producing collaborator
// is expected to occasionally fail and regeneration belongs to the layer
// above. Applying the theme to the presentation context is the one side
// effect per (re)render.
func (r *Renderer) RenderHTML(s *vizschema.VisualSchema) string {
	if !s.Renderable() {
		r.log.Debug("schema not renderable; rendering nothing")
		return ""
	}
	r.pctx.Apply(s.Theme)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", esc(s.Meta.Title))
	b.WriteString("<style>\n")
	b.WriteString(r.pctx.CSS())
	b.WriteString(baseCSS(s.Layout))
	b.WriteString("</style>\n</head>\n<body>\n")

	if s.Accessibility.SkipToContent {
		b.WriteString(`<a class="skip-link" href="#report-main">Skip to content</a>` + "\n")
	}
	b.WriteString(`<header role="banner">`)
	fmt.Fprintf(&b, "<h1>%s</h1>", esc(s.Meta.Title))
	if s.Meta.Subtitle != "" {
		fmt.Fprintf(&b, "<p class=\"report-subtitle\">%s</p>", esc(s.Meta.Subtitle))
	}
	b.WriteString("</header>\n")

	b.WriteString(`<main id="report-main" role="main">` + "\n")
	for _, sec := range s.Sections {
		b.WriteString(r.renderSection(sec))
	}
	b.WriteString("</main>\n</body>\n</html>\n")
	return b.String()
}

func (r *Renderer) renderSection(sec vizschema.SectionSpec) string {
	var b strings.Builder
	class := "report-section"
	if sec.Variant == "hero" {
		class += " section-hero"
	}
	fmt.Fprintf(&b, `<section id=%q class=%q aria-label=%q>`, esc(sec.ID), class, esc(sec.Title))
	b.WriteString("\n")
	if sec.Title != "" {
		fmt.Fprintf(&b, "<h2>%s</h2>\n", esc(sec.Title))
	}
	if sec.Subtitle != "" {
		fmt.Fprintf(&b, "<p class=\"section-subtitle\">%s</p>\n", esc(sec.Subtitle))
	}
	if sec.Intro != "" {
		fmt.Fprintf(&b, "<p class=\"section-intro\">%s</p>\n", esc(sec.Intro))
	}
	if len(sec.Elements) == 0 && r.diag {
		r.log.Warn("section has no elements", zap.String("section", sec.ID))
		b.WriteString(`<div class="diag">section has no elements</div>` + "\n")
	}
	b.WriteString(`<div class="grid">` + "\n")
	for _, el := range sec.Elements {
		b.WriteString(r.renderElementSlot(el))
		b.WriteString("\n")
	}
	b.WriteString("</div>\n</section>\n")
	return b.String()
}

// renderElementSlot wraps one element body in its grid slot: span/order
// overrides, style variant, and the entrance animation class. The animation
// class is suppressed entirely, not shortened, when reduced motion is in
// effect.
func (r *Renderer) renderElementSlot(el vizschema.ElementSpec) string {
	classes := []string{"el", "el-" + string(el.Type)}
	var style []string

	if el.Layout != nil {
		if el.Layout.Variant != "" {
			classes = append(classes, "variant-"+el.Layout.Variant)
		}
		if el.Layout.Padding != "" {
			classes = append(classes, "pad-"+el.Layout.Padding)
		}
		appendSpan(&style, "sm", el.Layout.Span.SM, el.Layout.Order.SM)
		appendSpan(&style, "md", el.Layout.Span.MD, el.Layout.Order.MD)
		appendSpan(&style, "lg", el.Layout.Span.LG, el.Layout.Order.LG)
	}
	if el.Style != nil {
		if el.Style.Background != "" {
			style = append(style, "background:"+el.Style.Background)
		}
		if el.Style.Border != "" {
			style = append(style, "border:"+el.Style.Border)
		}
		if el.Style.Radius != "" {
			style = append(style, "border-radius:"+el.Style.Radius)
		}
		if el.Style.Shadow != "" {
			style = append(style, "box-shadow:"+el.Style.Shadow)
		}
	}
	if !r.pctx.ReducedMotion() {
		enter := "fade"
		if el.Animation != nil && el.Animation.Enter != "" {
			enter = el.Animation.Enter
		}
		if enter != "none" {
			classes = append(classes, "anim-"+enter)
			if el.Animation != nil && el.Animation.Stagger {
				classes = append(classes, "anim-stagger")
			}
		}
	}
	if r.diag && string(el.Type) == "" {
		r.log.Warn("element missing type", zap.String("element", el.ID))
		classes = append(classes, "diag")
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div id=%q class=%q`, esc(el.ID), strings.Join(classes, " "))
	if len(style) > 0 {
		fmt.Fprintf(&b, ` style=%q`, strings.Join(style, ";"))
	}
	if el.Accessibility != nil && el.Accessibility.AriaLabel != "" {
		fmt.Fprintf(&b, ` aria-label=%q`, esc(el.Accessibility.AriaLabel))
	}
	b.WriteString(">")
	if el.Title != "" {
		fmt.Fprintf(&b, "<h3>%s</h3>", esc(el.Title))
	}
	if el.Subtitle != "" {
		fmt.Fprintf(&b, `<p class="el-subtitle">%s</p>`, esc(el.Subtitle))
	}
	b.WriteString(r.dispatch(el))
	if el.Description != "" {
		fmt.Fprintf(&b, `<p class="el-description">%s</p>`, esc(el.Description))
	}
	b.WriteString("</div>")
	return b.String()
}

func appendSpan(style *[]string, bp string, span, order int) {
	if span > 0 {
		*style = append(*style, fmt.Sprintf("--span-%s:%d", bp, span))
	}
	if order > 0 {
		*style = append(*style, fmt.Sprintf("--order-%s:%d", bp, order))
	}
}

// flag records a diagnostic for one element in development mode. Rendering
// continues regardless.
func (r *Renderer) flag(el vizschema.ElementSpec, msg string) {
	if !r.diag {
		return
	}
	r.log.Warn(msg, zap.String("element", el.ID), zap.String("type", string(el.Type)))
}

// palette resolves the active chart palette from the presentation context,
// falling back to the default theme's palette when nothing is applied yet.
func (r *Renderer) palette() []string {
	var out []string
	for i := 1; ; i++ {
		c := r.pctx.Token(fmt.Sprintf("chart-%d", i))
		if c == "" {
			break
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		out = vizschema.DefaultTheme().Colors.ChartPalette
	}
	return out
}

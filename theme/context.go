// Package theme applies a canonical ThemeSpec to the shared presentation
// context: a process-wide, flat token→value store that renders as CSS custom
// properties. All writes funnel through Apply; semantics are last-writer-wins
// and a reapplication fully overwrites prior values (no partial merge).
package theme

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	vizschema "github.com/reportkit/vizschema"
)

// QueryReducedMotion reports the platform reduced-motion preference. The
// default reads the VIZSCHEMA_REDUCED_MOTION environment variable ("1" or
// "true"); embedders with a richer platform signal may swap it.
var QueryReducedMotion = func() bool {
	v := os.Getenv("VIZSCHEMA_REDUCED_MOTION")
	return v == "1" || strings.EqualFold(v, "true")
}

// Context is the shared presentation state. Any component in the surrounding
// application may read it to stay visually consistent with the active report.
type Context struct {
	mu            sync.RWMutex
	tokens        map[string]string
	reducedMotion bool
}

var global = &Context{tokens: map[string]string{}}

// Global returns the process-wide presentation context. At most one active
// report view is expected to write it at a time.
func Global() *Context { return global }

// Apply writes every themed value into the context exactly once per
// invocation, replacing all prior tokens. When the theme's motion spec asks
// for it, the platform reduced-motion preference is queried and recorded.
// Apply has no return value and is idempotent for identical input.
func (c *Context) Apply(t vizschema.ThemeSpec) {
	tokens := tokenize(t)
	reduced := false
	if t.Motion.RespectReducedMotion {
		reduced = QueryReducedMotion()
	}
	c.mu.Lock()
	c.tokens = tokens
	c.reducedMotion = reduced
	c.mu.Unlock()
}

// Token returns one token value, or "" when it is not set.
func (c *Context) Token(name string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tokens[name]
}

// Snapshot copies the current token map for outside collaborators.
func (c *Context) Snapshot() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]string, len(c.tokens))
	for k, v := range c.tokens {
		out[k] = v
	}
	return out
}

// ReducedMotion reports whether entrance animation must be suppressed.
func (c *Context) ReducedMotion() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.reducedMotion
}

// CSS renders the context as a :root custom-property block, tokens in sorted
// order so output is reproducible.
func (c *Context) CSS() string {
	c.mu.RLock()
	keys := make([]string, 0, len(c.tokens))
	for k := range c.tokens {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "  --%s: %s;\n", k, c.tokens[k])
	}
	c.mu.RUnlock()
	b.WriteString("}\n")
	return b.String()
}

// tokenize flattens a ThemeSpec into presentation tokens.
func tokenize(t vizschema.ThemeSpec) map[string]string {
	m := map[string]string{}
	put := func(k, v string) {
		if v != "" {
			m[k] = v
		}
	}
	putRamp := func(prefix string, vals []string) {
		for i, v := range vals {
			put(fmt.Sprintf("%s-%d", prefix, i+1), v)
		}
	}

	put("brand-name", t.Brand.Name)
	put("brand-logo", t.Brand.LogoURL)

	put("color-primary", t.Colors.Primary)
	put("color-secondary", t.Colors.Secondary)
	put("color-accent", t.Colors.Accent)
	putRamp("color-neutral", t.Colors.Neutral)
	put("color-success", t.Colors.Success)
	put("color-info", t.Colors.Info)
	put("color-warning", t.Colors.Warning)
	put("color-danger", t.Colors.Danger)
	putRamp("bg", t.Colors.Background)
	putRamp("chart", t.Colors.ChartPalette)
	putRamp("chart-cb", t.Colors.ChartPaletteColorBlind)

	put("font-body", t.Typography.FontBody)
	put("font-heading", t.Typography.FontHeading)
	put("font-mono", t.Typography.FontMono)
	putRamp("text", t.Typography.Scale)
	putRamp("leading", t.Typography.LineHeights)
	for i, w := range t.Typography.Weights {
		put(fmt.Sprintf("weight-%d", i+1), fmt.Sprintf("%d", w))
	}

	putRamp("space", t.Spacing)
	putRamp("radius", t.Radii)
	putRamp("shadow", t.Shadows)

	putRamp("motion-duration", t.Motion.Durations)
	putRamp("motion-easing", t.Motion.Easings)
	if t.Motion.StaggerMS > 0 {
		put("motion-stagger", fmt.Sprintf("%dms", t.Motion.StaggerMS))
	}
	return m
}

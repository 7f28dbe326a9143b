package vizschema

// VisualSchema is the root report document. Sections are ordered; their order
// defines the top-to-bottom reading order of the rendered report. A document
// with no sections is renderable as "nothing", not an error.
type VisualSchema struct {
	Version       string            `json:"version"`
	Meta          Meta              `json:"meta"`
	Theme         ThemeSpec         `json:"theme"`
	Accessibility AccessibilitySpec `json:"accessibility"`
	Layout        LayoutSpec        `json:"layout"`
	Sections      []SectionSpec     `json:"sections"`
}

// Meta carries report identity and provenance for display purposes only.
type Meta struct {
	ReportID    string `json:"reportId"`
	GeneratedAt string `json:"generatedAt"` // RFC 3339
	UserID      string `json:"userId,omitempty"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Description string `json:"description,omitempty"`
}

// AccessibilitySpec is declared policy, consumed read-only by renderers. The
// engine carries it; it does not enforce contrast.
type AccessibilitySpec struct {
	MinContrastRatio      float64  `json:"minContrastRatio"`
	ColorBlindSafe        bool     `json:"colorBlindSafe"`
	HighContrastAvailable bool     `json:"highContrastAvailable"`
	LandmarkRoles         []string `json:"landmarkRoles"`
	KeyboardFocusRing     bool     `json:"keyboardFocusRing"`
	SkipToContent         bool     `json:"skipToContent"`
}

// GridSteps holds one integer per breakpoint (small/medium/large).
type GridSteps struct {
	SM int `json:"sm"`
	MD int `json:"md"`
	LG int `json:"lg"`
}

// LayoutSpec defines the responsive grid used identically by every section.
type LayoutSpec struct {
	Columns     GridSteps `json:"columns"`
	GapsPX      GridSteps `json:"gaps"`
	Breakpoints GridSteps `json:"breakpoints"` // px thresholds for sm/md/lg
}

// SectionSpec is an ordered, titled group of elements.
type SectionSpec struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle,omitempty"`
	Intro    string        `json:"intro,omitempty"`
	Variant  string        `json:"variant,omitempty"` // "hero" | "default"
	Elements []ElementSpec `json:"elements"`
}

// ElementSpec is one visual unit. Data stays untyped until the element's
// renderer coerces it; a raw value arriving from an external generator is
// never trusted as-is.
type ElementSpec struct {
	ID            string             `json:"id"`
	Type          ElementType        `json:"type"`
	Title         string             `json:"title,omitempty"`
	Subtitle      string             `json:"subtitle,omitempty"`
	Description   string             `json:"description,omitempty"`
	Accessibility *ElementA11y       `json:"accessibility,omitempty"`
	Layout        *ElementLayout     `json:"layout,omitempty"`
	Style         *StyleOverride     `json:"style,omitempty"`
	Animation     *AnimationSpec     `json:"animation,omitempty"`
	Interaction   *InteractionSpec   `json:"interaction,omitempty"`
	Data          map[string]any     `json:"data,omitempty"`
}

// ElementA11y overrides document-level accessibility metadata per element.
type ElementA11y struct {
	AriaLabel       string `json:"ariaLabel,omitempty"`
	LongDescription string `json:"longDescription,omitempty"`
	AltText         string `json:"altText,omitempty"`
}

// ElementLayout overrides grid placement per element. A zero span means
// "full width at that breakpoint"; a zero order means "declared order".
type ElementLayout struct {
	Span    GridSteps `json:"span,omitempty"`
	Order   GridSteps `json:"order,omitempty"`
	Padding string    `json:"padding,omitempty"` // "none" | "compact" | "default" | "spacious"
	Variant string    `json:"variant,omitempty"` // "card" | "edge" | "inset" | "hero"
}

// StyleOverride adjusts the element surface without touching the theme.
type StyleOverride struct {
	Background string `json:"background,omitempty"`
	Border     string `json:"border,omitempty"`
	Radius     string `json:"radius,omitempty"`
	Shadow     string `json:"shadow,omitempty"`
}

// AnimationSpec describes entrance/exit transitions. The renderer suppresses
// entrance animation entirely when reduced motion is in effect.
type AnimationSpec struct {
	Enter        string `json:"enter,omitempty"` // "fade" | "rise" | "none"
	Exit         string `json:"exit,omitempty"`
	DurationMS   int    `json:"durationMs,omitempty"`
	DelayMS      int    `json:"delayMs,omitempty"`
	Easing       string `json:"easing,omitempty"`
	Stagger      bool   `json:"stagger,omitempty"`
	ScrollLinked bool   `json:"scrollLinked,omitempty"`
	AutoLoop     bool   `json:"autoLoop,omitempty"`
}

// InteractionSpec declares optional interactive affordances.
type InteractionSpec struct {
	Tooltip          bool     `json:"tooltip,omitempty"`
	HoverEmphasis    bool     `json:"hoverEmphasis,omitempty"`
	Selectable       bool     `json:"selectable,omitempty"`
	DrillDownSection string   `json:"drillDownSection,omitempty"`
	Filters          []string `json:"filters,omitempty"`
	ExportFormats    []string `json:"exportFormats,omitempty"` // "csv" | "png" | "pdf"
}

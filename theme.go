package vizschema

// ThemeSpec is the brand/design system for a report. Values are immutable
// once applied; reapplying a theme fully overwrites prior values (no partial
// merge).
type ThemeSpec struct {
	Brand      BrandSpec      `json:"brand"`
	Colors     ColorSpec      `json:"colors"`
	Typography TypographySpec `json:"typography"`
	Spacing    []string       `json:"spacing"` // 7 steps
	Radii      []string       `json:"radii"`   // 4 steps
	Shadows    []string       `json:"shadows"` // 3 steps
	Motion     MotionSpec     `json:"motion"`
}

// BrandSpec names the brand and optional asset references.
type BrandSpec struct {
	Name       string `json:"name"`
	LogoURL    string `json:"logoUrl,omitempty"`
	FaviconURL string `json:"faviconUrl,omitempty"`
}

// ColorSpec is the color system: core colors, a 5-step neutral ramp, semantic
// colors, 3 background layers, and two chart palettes (default and
// color-blind-safe).
type ColorSpec struct {
	Primary   string   `json:"primary"`
	Secondary string   `json:"secondary"`
	Accent    string   `json:"accent"`
	Neutral   []string `json:"neutral"` // 5 steps, light to dark

	Success string `json:"success"`
	Info    string `json:"info"`
	Warning string `json:"warning"`
	Danger  string `json:"danger"`

	Background []string `json:"background"` // 3 layers

	ChartPalette          []string `json:"chartPalette"`
	ChartPaletteColorBlind []string `json:"chartPaletteColorBlind"`
}

// TypographySpec holds font roles, a 9-step type scale, 3 line-height ramps
// and 4 weight tokens.
type TypographySpec struct {
	FontBody    string   `json:"fontBody"`
	FontHeading string   `json:"fontHeading"`
	FontMono    string   `json:"fontMono"`
	Scale       []string `json:"scale"`       // 9 steps
	LineHeights []string `json:"lineHeights"` // 3 ramps
	Weights     []int    `json:"weights"`     // 4 tokens
}

// MotionSpec carries duration/easing tokens, the stagger interval, and
// whether the platform reduced-motion preference must be honored.
type MotionSpec struct {
	Durations            []string `json:"durations"` // 4 tokens
	Easings              []string `json:"easings"`   // 3 curves
	StaggerMS            int      `json:"staggerMs"`
	RespectReducedMotion bool     `json:"respectReducedMotion"`
}

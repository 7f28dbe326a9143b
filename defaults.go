package vizschema

// Default values used by the Normalizer when a generated document omits a
// top-level section. The defaults form a complete design system and satisfy
// the same type guards as generated schemas.

// DefaultVersion is assumed when a candidate carries no version string.
const DefaultVersion = "1.0.0"

// DefaultTheme returns the stock design system.
func DefaultTheme() ThemeSpec {
	return ThemeSpec{
		Brand: BrandSpec{Name: "Report"},
		Colors: ColorSpec{
			Primary:   "#4F46E5",
			Secondary: "#0EA5E9",
			Accent:    "#F59E0B",
			Neutral:   []string{"#F8FAFC", "#E2E8F0", "#94A3B8", "#475569", "#0F172A"},
			Success:   "#10B981",
			Info:      "#06B6D4",
			Warning:   "#F59E0B",
			Danger:    "#EF4444",
			Background: []string{"#FFFFFF", "#F8FAFC", "#F1F5F9"},
			ChartPalette: []string{
				"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
				"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
			},
			ChartPaletteColorBlind: []string{
				"#0072B2", "#E69F00", "#009E73", "#CC79A7", "#56B4E9",
				"#D55E00", "#F0E442", "#000000",
			},
		},
		Typography: TypographySpec{
			FontBody:    "'Inter', system-ui, sans-serif",
			FontHeading: "'Inter', system-ui, sans-serif",
			FontMono:    "'JetBrains Mono', monospace",
			Scale: []string{
				"0.75rem", "0.875rem", "1rem", "1.125rem", "1.25rem",
				"1.5rem", "1.875rem", "2.25rem", "3rem",
			},
			LineHeights: []string{"1.25", "1.5", "1.75"},
			Weights:     []int{400, 500, 600, 700},
		},
		Spacing: []string{"0.25rem", "0.5rem", "0.75rem", "1rem", "1.5rem", "2rem", "3rem"},
		Radii:   []string{"0.25rem", "0.5rem", "0.75rem", "1rem"},
		Shadows: []string{
			"0 1px 2px rgba(15,23,42,0.06)",
			"0 4px 12px rgba(15,23,42,0.10)",
			"0 12px 32px rgba(15,23,42,0.16)",
		},
		Motion: MotionSpec{
			Durations:            []string{"120ms", "200ms", "320ms", "500ms"},
			Easings:              []string{"ease-out", "ease-in-out", "cubic-bezier(0.22,1,0.36,1)"},
			StaggerMS:            60,
			RespectReducedMotion: true,
		},
	}
}

// DefaultAccessibility returns the declared accessibility policy used when a
// candidate omits one.
func DefaultAccessibility() AccessibilitySpec {
	return AccessibilitySpec{
		MinContrastRatio:      4.5,
		ColorBlindSafe:        true,
		HighContrastAvailable: true,
		LandmarkRoles:         []string{"banner", "main", "contentinfo"},
		KeyboardFocusRing:     true,
		SkipToContent:         true,
	}
}

// DefaultLayout returns the responsive grid used when a candidate omits one.
func DefaultLayout() LayoutSpec {
	return LayoutSpec{
		Columns:     GridSteps{SM: 1, MD: 6, LG: 12},
		GapsPX:      GridSteps{SM: 12, MD: 16, LG: 24},
		Breakpoints: GridSteps{SM: 640, MD: 1024, LG: 1440},
	}
}

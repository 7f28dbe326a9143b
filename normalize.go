package vizschema

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Normalize accepts an arbitrary value intended to be a VisualSchema
// (typically the decoded JSON output of a generative model call) and returns
// a best-effort canonical document. It returns nil only for nil input;
// otherwise it always returns a document. Every default filled and every
// shape repair applied is recorded as an Issue diagnostic; normalization
// itself never fails.
//
// Normalizing an already-canonical document is a no-op with respect to
// validity: the result still satisfies the type guards.
func Normalize(v any) (*VisualSchema, Issues) {
	if v == nil {
		return nil, nil
	}
	var iss Issues

	m, ok := v.(map[string]any)
	if !ok {
		iss = AppendIssues(iss, IssueAt("", CodeInvalidType, "candidate is not an object",
			map[string]any{"got": fmt.Sprintf("%T", v)}))
		m = map[string]any{}
	}

	doc := &VisualSchema{
		Theme:         DefaultTheme(),
		Accessibility: DefaultAccessibility(),
		Layout:        DefaultLayout(),
		Sections:      []SectionSpec{},
	}

	if s, ok := m["version"].(string); ok && s != "" {
		doc.Version = s
	} else {
		doc.Version = DefaultVersion
		iss = AppendIssues(iss, IssueAt("/version", CodeDefaultFilled, "version defaulted", nil))
	}

	iss = AppendIssues(iss, normalizeMeta(m["meta"], &doc.Meta)...)

	// Theme, accessibility and layout overlay onto the complete defaults so a
	// partial object still yields an internally consistent design system.
	for _, sub := range []struct {
		key string
		dst any
	}{
		{"theme", &doc.Theme},
		{"accessibility", &doc.Accessibility},
		{"layout", &doc.Layout},
	} {
		raw, ok := m[sub.key].(map[string]any)
		if !ok {
			iss = AppendIssues(iss, IssueAt("/"+sub.key, CodeDefaultFilled, "filled with defaults", nil))
			continue
		}
		if err := decodeInto(raw, sub.dst); err != nil {
			iss = AppendIssues(iss, IssueAt("/"+sub.key, CodeInvalidType,
				"partially unreadable; defaults retained for unreadable fields", nil))
		}
	}

	rawSecs, ok := m["sections"].([]any)
	if !ok {
		if _, present := m["sections"]; present {
			iss = AppendIssues(iss, IssueAt("/sections", CodeInvalidType, "sections is not a sequence", nil))
		}
		return doc, iss
	}
	for i, rs := range rawSecs {
		sec, secIss, ok := normalizeSection(i, rs)
		iss = AppendIssues(iss, secIss...)
		if ok {
			doc.Sections = append(doc.Sections, sec)
		}
	}
	return doc, iss
}

func normalizeMeta(v any, dst *Meta) Issues {
	var iss Issues
	m, ok := v.(map[string]any)
	if !ok {
		iss = AppendIssues(iss, IssueAt("/meta", CodeDefaultFilled, "filled with defaults", nil))
		m = map[string]any{}
	}
	if err := decodeInto(m, dst); err != nil {
		iss = AppendIssues(iss, IssueAt("/meta", CodeInvalidType, "partially unreadable", nil))
	}
	if dst.ReportID == "" {
		dst.ReportID = uuid.NewString()
		iss = AppendIssues(iss, IssueAt("/meta/reportId", CodeIDAssigned, "report id assigned", nil))
	}
	if dst.GeneratedAt == "" {
		dst.GeneratedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if dst.Title == "" {
		dst.Title = "Untitled Report"
	}
	return iss
}

func normalizeSection(i int, v any) (SectionSpec, Issues, bool) {
	path := fmt.Sprintf("/sections/%d", i)
	var iss Issues
	m, ok := v.(map[string]any)
	if !ok {
		iss = AppendIssues(iss, IssueAt(path, CodeInvalidType, "section is not an object", nil))
		return SectionSpec{}, iss, false
	}
	sec := SectionSpec{
		Title:    stringAt(m, "title"),
		Subtitle: stringAt(m, "subtitle"),
		Intro:    stringAt(m, "intro"),
		Elements: []ElementSpec{},
	}
	if id := stringAt(m, "id"); id != "" {
		sec.ID = id
	} else {
		sec.ID = fmt.Sprintf("s%d", i+1)
		iss = AppendIssues(iss, IssueAt(path+"/id", CodeIDAssigned, "section id assigned", nil))
	}
	if v := stringAt(m, "variant"); v == "hero" || v == "default" {
		sec.Variant = v
	}
	rawEls, _ := m["elements"].([]any)
	for j, re := range rawEls {
		el, elIss, ok := normalizeElement(i, j, re)
		iss = AppendIssues(iss, elIss...)
		if ok {
			sec.Elements = append(sec.Elements, el)
		}
	}
	return sec, iss, true
}

func normalizeElement(si, ei int, v any) (ElementSpec, Issues, bool) {
	path := fmt.Sprintf("/sections/%d/elements/%d", si, ei)
	var iss Issues
	m, ok := v.(map[string]any)
	if !ok {
		iss = AppendIssues(iss, IssueAt(path, CodeInvalidType, "element is not an object", nil))
		return ElementSpec{}, iss, false
	}
	el := ElementSpec{
		Type:        ElementType(stringAt(m, "type")),
		Title:       stringAt(m, "title"),
		Subtitle:    stringAt(m, "subtitle"),
		Description: stringAt(m, "description"),
	}
	if id := stringAt(m, "id"); id != "" {
		el.ID = id
	} else {
		el.ID = fmt.Sprintf("s%d-e%d", si+1, ei+1)
		iss = AppendIssues(iss, IssueAt(path+"/id", CodeIDAssigned, "element id assigned", nil))
	}
	if sub, ok := m["accessibility"].(map[string]any); ok {
		el.Accessibility = &ElementA11y{}
		_ = decodeInto(sub, el.Accessibility)
	}
	if sub, ok := m["layout"].(map[string]any); ok {
		el.Layout = &ElementLayout{}
		_ = decodeInto(sub, el.Layout)
	}
	if sub, ok := m["style"].(map[string]any); ok {
		el.Style = &StyleOverride{}
		_ = decodeInto(sub, el.Style)
	}
	if sub, ok := m["animation"].(map[string]any); ok {
		el.Animation = &AnimationSpec{}
		_ = decodeInto(sub, el.Animation)
	}
	if sub, ok := m["interaction"].(map[string]any); ok {
		el.Interaction = &InteractionSpec{}
		_ = decodeInto(sub, el.Interaction)
	}
	if data, ok := m["data"].(map[string]any); ok {
		el.Data = data
	}
	// Informational only: the element is kept either way. Unknown types reach
	// the dispatcher's placeholder and data-less elements degrade to their
	// renderer's empty state.
	if t := string(el.Type); t != "" && !IsElementType(t) {
		iss = AppendIssues(iss, IssueAt(path+"/type", CodeUnknownType, "unknown element type",
			map[string]any{"type": t}))
	}
	if len(el.Data) == 0 {
		iss = AppendIssues(iss, IssueAt(path+"/data", CodeMissingData, "element has no data", nil))
	}
	iss = AppendIssues(iss, repairElement(&el, path)...)
	return el, iss, true
}

// decodeInto overlays a decoded map onto dst (a struct pointer) via a JSON
// round-trip, so absent fields keep whatever dst already holds.
func decodeInto(m map[string]any, dst any) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}

func stringAt(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

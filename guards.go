package vizschema

// Type guards over untrusted values. All guards are pure and total: any
// non-conforming input yields false, never a panic. They are the gate between
// the Normalizer's best-effort output and the renderer; a false result from
// IsSchema means "render nothing", not a fatal error.

// IsElement reports whether v looks like a canonical element: a map whose
// "id" is a non-empty string and whose "type" is a member of the closed
// element-type set.
func IsElement(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	id, ok := m["id"].(string)
	if !ok || id == "" {
		return false
	}
	t, ok := m["type"].(string)
	return ok && IsElementType(t)
}

// IsSection reports whether v looks like a canonical section: a map with an
// "id" present and an "elements" sequence (possibly empty).
func IsSection(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	if _, ok := m["id"]; !ok {
		return false
	}
	_, ok = m["elements"].([]any)
	return ok
}

// IsSchema reports whether v looks like a canonical document: a map whose
// "sections" is a sequence and every member independently satisfies
// IsSection.
func IsSchema(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	secs, ok := m["sections"].([]any)
	if !ok {
		return false
	}
	for _, s := range secs {
		if !IsSection(s) {
			return false
		}
	}
	return true
}

// ---- typed variants (post-normalization checks) ----

// ValidElement reports whether the typed element satisfies the same contract
// as IsElement.
func ValidElement(el ElementSpec) bool {
	return el.ID != "" && IsElementType(string(el.Type))
}

// ValidSection reports whether the typed section satisfies the same contract
// as IsSection. Section validity deliberately does not recurse into element
// validity: elements with unknown types still reach the dispatcher, which
// renders a placeholder for them.
func ValidSection(sec SectionSpec) bool {
	return sec.ID != ""
}

// Renderable reports whether the document should produce visible output: a
// non-nil schema with at least one valid section.
func (s *VisualSchema) Renderable() bool {
	if s == nil || len(s.Sections) == 0 {
		return false
	}
	for _, sec := range s.Sections {
		if !ValidSection(sec) {
			return false
		}
	}
	return true
}

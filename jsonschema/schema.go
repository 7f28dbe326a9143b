// Package jsonschema carries the canonical document's JSON Schema and an
// optional strict pre-flight over raw candidates. The Normalizer never needs
// this (it repairs anything), but callers that want to observe how far a
// generator drifted from the contract can validate before normalizing.
package jsonschema

import (
	_ "embed"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	vizschema "github.com/reportkit/vizschema"
)

//go:embed schema.json
var canonicalSchema []byte

// Canonical returns the embedded JSON Schema document for VisualSchema.
func Canonical() []byte {
	out := make([]byte, len(canonicalSchema))
	copy(out, canonicalSchema)
	return out
}

// Validate checks a raw candidate against the canonical schema. Violations
// come back as Issues (code schema_violation, one per finding); the error
// return is reserved for unloadable input or a broken embedded schema.
func Validate(raw []byte) (vizschema.Issues, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(canonicalSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return nil, err
	}
	if result.Valid() {
		return nil, nil
	}
	var iss vizschema.Issues
	for _, e := range result.Errors() {
		iss = vizschema.AppendIssues(iss, vizschema.IssueAt(
			pointer(e.Field()), vizschema.CodeSchemaViolation, e.Description(), nil))
	}
	return iss, nil
}

// pointer converts gojsonschema's dotted field ("sections.0.id") into a JSON
// Pointer ("/sections/0/id").
func pointer(field string) string {
	if field == "" || field == "(root)" {
		return ""
	}
	return "/" + strings.ReplaceAll(field, ".", "/")
}

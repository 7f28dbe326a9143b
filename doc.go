package vizschema

// Package vizschema provides:
//
// - A canonical data model for generated reports (theme, accessibility, layout, sections, elements)
// - Runtime type guards over untrusted values (IsElement/IsSection/IsSchema)
// - A repair layer (Normalize) that coerces malformed or historically drifted generator output into the canonical model without failing
// - A stable diagnostics model via Issues (JSON Pointer, code, message)
// - Input sources for JSON and YAML candidates (JSONBytes/JSONReader/YAMLBytes)
//
// Design policy:
// - Keep only public APIs in the root package; rendering, coercion, theming and export live under render/, coerce/, theme/, export/ and jsonschema/.
// - Normalization is total: recoverable conditions become Issue diagnostics, never errors. Only undecodable input bytes produce an error.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  doc, iss, err := vizschema.ParseReport(ctx, vizschema.JSONBytes(raw))
//  html := render.New().RenderHTML(doc)
//

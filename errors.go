package vizschema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType = "invalid_type"
	CodeParseError  = "parse_error"
	CodeTooBig      = "too_big"
	CodeUnknownType = "unknown_type"
	CodeMissingData = "missing_data"
	// Repair passes (shape migrations, not failures)
	CodeDefaultFilled       = "default_filled"
	CodeIDAssigned          = "id_assigned"
	CodeLegacyShape         = "legacy_shape"
	CodeRetyped             = "retyped"
	CodeSynthesizedMarkdown = "synthesized_markdown"
	CodeScaleDefaulted      = "scale_defaulted"
	CodeDegraded            = "degraded"
	// jsonschema pre-flight
	CodeSchemaViolation = "schema_violation"
)

// Issue records one diagnostic: either a repair/default applied by the
// Normalizer or a violation reported by the optional strict pre-flight.
// Repair issues are informational; normalization never fails.
type Issue struct {
	Path    string // JSON Pointer (for example: /sections/2/elements/0/data)
	Code    string // One of the codes listed above.
	Message string
	// Params carries structured parameters (e.g., {"from":"donut-chart","to":"line-chart"})
	// for observability.
	Params map[string]any
}

// Issues is a collection of diagnostics that implements error so callers that
// treat strict-mode violations as failures can return it directly.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. legacy_shape at /sections/0/elements/1
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IssueAt creates an Issue at the given pointer path with the provided code,
// message and params map. Convenience for call sites with many parameters.
func IssueAt(path, code, msg string, params map[string]any) Issue {
	return Issue{Path: path, Code: code, Message: msg, Params: params}
}

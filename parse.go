package vizschema

import (
	"context"
	"fmt"
	"io"
)

// ParseReport is the primary entry point. It decodes the candidate from the
// Source, normalizes it into a canonical document and reports the repairs
// applied as Issues. The error return is reserved for undecodable input
// (malformed bytes, input over the configured cap, context cancellation);
// recoverable shape problems never surface as errors.
func ParseReport(ctx context.Context, src Source, opts ...ParseOpt) (*VisualSchema, Issues, error) {
	if src == nil {
		return nil, nil, singleIssue(CodeParseError, "nil source")
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	src = limitSourceIfNeeded(src, opt.MaxBytes)

	v, err := src.Decode()
	if err != nil {
		return nil, nil, fmt.Errorf("vizschema: decode %s candidate: %w", src.Name(), err)
	}
	doc, iss := Normalize(v)
	return doc, iss, nil
}

// singleIssue wraps one issue as the Issues error type.
func singleIssue(code, msg string) error {
	return Issues{{Code: code, Message: msg}}
}

// limitSourceIfNeeded wraps known sources with a byte cap, preventing a
// runaway generated document from exhausting memory. Unknown Source
// implementations pass through unchanged; zero disables the cap.
func limitSourceIfNeeded(src Source, max int64) Source {
	if max <= 0 {
		return src
	}
	switch s := src.(type) {
	case *jsonSource:
		return &jsonSource{r: io.LimitReader(s.r, max)}
	case *yamlSource:
		if int64(len(s.b)) > max {
			return errSource{name: s.Name(), err: singleIssue(CodeTooBig, "candidate exceeds byte cap")}
		}
		return s
	default:
		return src
	}
}

type errSource struct {
	name string
	err  error
}

func (e errSource) Decode() (any, error) { return nil, e.err }
func (e errSource) Name() string         { return e.name }

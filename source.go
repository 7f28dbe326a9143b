package vizschema

import (
	"bytes"
	"io"
	"sync"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Source abstracts over polymorphic candidate inputs. A Source decodes the
// whole candidate into an any tree (maps, slices, json.Number, string, bool,
// nil); the Normalizer takes it from there.
type Source interface {
	Decode() (any, error)
	Name() string
}

// JSONDriver converts JSON input into a Source via a pluggable SPI. The
// default implementation is backed by goccy/go-json and may be swapped with
// SetJSONDriver.
type JSONDriver interface {
	NewReader(r io.Reader) Source
	NewBytes(b []byte) Source
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = defaultJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the default go-json-backed driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = defaultJSONDriver{}
	jsonDriverMu.Unlock()
}

func getJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

// defaultJSONDriver wraps goccy/go-json with UseNumber semantics so numeric
// payload values survive verbatim into table cells.
type defaultJSONDriver struct{}

func (defaultJSONDriver) NewReader(r io.Reader) Source { return &jsonSource{r: r} }
func (defaultJSONDriver) NewBytes(b []byte) Source     { return &jsonSource{r: bytes.NewReader(b)} }
func (defaultJSONDriver) Name() string                 { return "go-json" }

type jsonSource struct {
	r io.Reader
}

func (s *jsonSource) Decode() (any, error) {
	dec := json.NewDecoder(s.r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *jsonSource) Name() string { return "json" }

// JSONReader wraps an io.Reader as a JSON Source.
func JSONReader(r io.Reader) Source { return getJSONDriver().NewReader(r) }

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return getJSONDriver().NewBytes(b) }

// YAMLBytes wraps a byte slice holding a YAML candidate. The decoded tree is
// converted to string-keyed maps so it normalizes identically to JSON input.
func YAMLBytes(b []byte) Source { return &yamlSource{b: b} }

type yamlSource struct {
	b []byte
}

func (s *yamlSource) Decode() (any, error) {
	var v any
	if err := yaml.Unmarshal(s.b, &v); err != nil {
		return nil, err
	}
	return yamlToStringKeys(v), nil
}

func (s *yamlSource) Name() string { return "yaml" }

// yamlToStringKeys rewrites any-keyed maps into string-keyed maps, dropping
// entries whose keys are not strings. yaml.v3 produces string-keyed maps for
// typical documents; the rewrite covers the rest.
func yamlToStringKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlToStringKeys(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlToStringKeys(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = yamlToStringKeys(vv)
		}
		return out
	default:
		return v
	}
}

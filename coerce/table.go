package coerce

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Column is one resolved table column. Key addresses the row (dot notation
// supported), Label is what the header displays and what CSV export writes.
type Column struct {
	Key   string
	Label string
}

// Rows resolves the row list of a table payload from rows, data or items.
func Rows(data map[string]any) []any {
	if data == nil {
		return nil
	}
	for _, k := range []string{"rows", "data", "items"} {
		if rows, ok := data[k].([]any); ok {
			return rows
		}
	}
	return nil
}

// Columns resolves column definitions. Accepted shapes, in order: an array of
// bare strings (key = label = string), an array of objects keyed by
// key|accessor|field|name with labels from label|header|title|name, or no
// definitions at all, in which case columns are derived from the first row:
// its sorted key set for object rows, or synthesized "Col 1..N" for array
// rows.
func Columns(data map[string]any) []Column {
	if data == nil {
		return nil
	}
	if defs, ok := data["columns"].([]any); ok && len(defs) > 0 {
		out := make([]Column, 0, len(defs))
		for _, d := range defs {
			switch c := d.(type) {
			case string:
				out = append(out, Column{Key: c, Label: c})
			case map[string]any:
				key := firstString(c, "key", "accessor", "field", "name")
				label := firstString(c, "label", "header", "title", "name")
				if key == "" {
					key = label
				}
				if label == "" {
					label = key
				}
				if key != "" {
					out = append(out, Column{Key: key, Label: label})
				}
			}
		}
		return out
	}
	return deriveColumns(Rows(data))
}

func deriveColumns(rows []any) []Column {
	if len(rows) == 0 {
		return nil
	}
	switch first := rows[0].(type) {
	case map[string]any:
		keys := make([]string, 0, len(first))
		for k := range first {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]Column, 0, len(keys))
		for _, k := range keys {
			out = append(out, Column{Key: k, Label: k})
		}
		return out
	case []any:
		out := make([]Column, 0, len(first))
		for i := range first {
			out = append(out, Column{Key: strconv.Itoa(i), Label: fmt.Sprintf("Col %d", i+1)})
		}
		return out
	default:
		return nil
	}
}

// Lookup resolves a column key against a row. Object rows support dot
// notation for nested fields ("stats.total"); array rows are indexed by the
// numeric key.
func Lookup(row any, key string) any {
	switch r := row.(type) {
	case map[string]any:
		cur := any(r)
		for _, part := range strings.Split(key, ".") {
			m, ok := cur.(map[string]any)
			if !ok {
				return nil
			}
			cur = m[part]
		}
		return cur
	case []any:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(r) {
			return nil
		}
		return r[i]
	default:
		return nil
	}
}

// CellString renders a cell the way the table displays it: strings and
// numbers verbatim, everything else JSON-stringified. CSV export reuses it,
// guaranteeing WYSIWYG output.
func CellString(v any) string { return Stringify(v) }

// Stringify renders strings and numbers verbatim and JSON-stringifies
// anything else. Nil yields the empty string.
func Stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case json.Number:
		return s.String()
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case bool:
		return strconv.FormatBool(s)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

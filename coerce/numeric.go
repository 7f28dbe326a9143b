package coerce

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Num coerces a value into a float64. It accepts native numbers, json.Number,
// and strings with comma/space/percent noise and an optional k/m suffix
// (×1,000 / ×1,000,000). Unparseable input yields 0.
func Num(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint64:
		return float64(n)
	case bool:
		if n {
			return 1
		}
		return 0
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return numFromString(n.String())
		}
		return f
	case string:
		return numFromString(n)
	default:
		return 0
	}
}

func numFromString(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	mult := 1.0
	switch {
	case strings.HasSuffix(s, "k"), strings.HasSuffix(s, "K"):
		mult = 1_000
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "m"), strings.HasSuffix(s, "M"):
		mult = 1_000_000
		s = s[:len(s)-1]
	}
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ',', ' ', '%', '$', ' ':
			return -1
		}
		return r
	}, s)
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0
	}
	return f * mult
}

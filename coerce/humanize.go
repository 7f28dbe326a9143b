package coerce

import "strings"

// Humanize turns a payload key like "total_risk-score" into "Total Risk
// Score": underscores and dashes become spaces and each word is capitalized.
func Humanize(key string) string {
	key = strings.NewReplacer("_", " ", "-", " ").Replace(key)
	words := strings.Fields(key)
	for i, w := range words {
		r := []rune(w)
		if len(r) > 0 {
			r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

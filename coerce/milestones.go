package coerce

import "fmt"

// Milestone is the internal row the milestone table renders.
type Milestone struct {
	Name     string
	Title    string
	Date     string
	Outcome  string
	Duration string // already formatted; blank when the payload had none
}

// Milestones fans in the milestone-table shapes: a milestones list, a gates
// list (name←name/label, title←label, outcome←owner), or a generic items
// list. A missing duration stays blank rather than becoming "0 min".
func Milestones(data map[string]any) []Milestone {
	if data == nil {
		return nil
	}
	if ms, ok := data["milestones"].([]any); ok {
		return milestoneEntries(ms, false)
	}
	if gates, ok := data["gates"].([]any); ok {
		return milestoneEntries(gates, true)
	}
	if items, ok := data["items"].([]any); ok {
		return milestoneEntries(items, false)
	}
	return nil
}

func milestoneEntries(entries []any, gates bool) []Milestone {
	out := make([]Milestone, 0, len(entries))
	for _, e := range entries {
		em, ok := e.(map[string]any)
		if !ok {
			continue
		}
		m := Milestone{
			Name:    nameOf(em, ""),
			Title:   firstString(em, "title"),
			Date:    firstString(em, "date", "due", "when"),
			Outcome: firstString(em, "outcome", "status", "result"),
		}
		if gates {
			if m.Title == "" {
				m.Title = firstString(em, "label")
			}
			if m.Outcome == "" {
				m.Outcome = firstString(em, "owner")
			}
		}
		if d, ok := em["duration"]; ok && d != nil {
			if n := Num(d); n != 0 || Stringify(d) == "0" {
				m.Duration = fmt.Sprintf("%g min", n)
			} else if s := Stringify(d); s != "" {
				m.Duration = s
			}
		}
		out = append(out, m)
	}
	return out
}

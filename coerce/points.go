package coerce

// Point is one bubble/scatter entry.
type Point struct {
	Label string
	X     float64
	Y     float64
	R     float64 // bubble radius; 0 means "unsized"
}

// Points fans in the bubble/scatter shapes: a points|data|items list of
// {x, y, r|size, label|name} entries, or parallel x+y(+r) arrays.
func Points(data map[string]any) []Point {
	if data == nil {
		return nil
	}
	for _, k := range []string{"points", "data", "items"} {
		entries, ok := data[k].([]any)
		if !ok {
			continue
		}
		out := make([]Point, 0, len(entries))
		for _, e := range entries {
			em, ok := e.(map[string]any)
			if !ok {
				continue
			}
			r := em["r"]
			if r == nil {
				r = em["size"]
			}
			out = append(out, Point{
				Label: nameOf(em, ""),
				X:     Num(em["x"]),
				Y:     Num(em["y"]),
				R:     Num(r),
			})
		}
		if len(out) > 0 {
			return out
		}
	}
	xs, xok := data["x"].([]any)
	ys, yok := data["y"].([]any)
	if !xok || !yok {
		return nil
	}
	rs, _ := data["r"].([]any)
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	out := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		p := Point{X: Num(xs[i]), Y: Num(ys[i])}
		if i < len(rs) {
			p.R = Num(rs[i])
		}
		out = append(out, p)
	}
	return out
}

// Link is one sankey flow.
type Link struct {
	Source string
	Target string
	Value  float64
}

// Links fans in sankey shapes: a links|flows|edges list of
// {source|from, target|to, value|weight} entries.
func Links(data map[string]any) []Link {
	if data == nil {
		return nil
	}
	for _, k := range []string{"links", "flows", "edges"} {
		entries, ok := data[k].([]any)
		if !ok {
			continue
		}
		out := make([]Link, 0, len(entries))
		for _, e := range entries {
			em, ok := e.(map[string]any)
			if !ok {
				continue
			}
			v := em["value"]
			if v == nil {
				v = em["weight"]
			}
			out = append(out, Link{
				Source: firstString(em, "source", "from"),
				Target: firstString(em, "target", "to"),
				Value:  Num(v),
			})
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

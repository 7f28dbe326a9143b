package coerce_test

import (
	"reflect"
	"testing"

	"github.com/reportkit/vizschema/coerce"
)

func TestFan_ShapePriority(t *testing.T) {
	cases := []struct {
		name     string
		data     map[string]any
		wantCats []string
		wantSer  []coerce.Series
	}{
		{
			name: "canonical categories+series",
			data: map[string]any{
				"categories": []any{"Q1", "Q2"},
				"series": []any{
					map[string]any{"name": "Revenue", "values": []any{"1k", "2k"}},
				},
			},
			wantCats: []string{"Q1", "Q2"},
			wantSer:  []coerce.Series{{Name: "Revenue", Values: []float64{1000, 2000}}},
		},
		{
			name: "point series",
			data: map[string]any{
				"series": []any{
					map[string]any{"name": "North", "points": []any{
						map[string]any{"x": "Jan", "y": 1},
						map[string]any{"x": "Feb", "y": 2},
					}},
				},
			},
			wantCats: []string{"Jan", "Feb"},
			wantSer:  []coerce.Series{{Name: "North", Values: []float64{1, 2}}},
		},
		{
			name: "flat series",
			data: map[string]any{
				"series": []any{
					map[string]any{"name": "A", "value": 3},
					map[string]any{"label": "B", "value": "4"},
				},
			},
			wantCats: []string{"A", "B"},
			wantSer:  []coerce.Series{{Name: "Values", Values: []float64{3, 4}}},
		},
		{
			name: "slices",
			data: map[string]any{
				"slices": []any{
					map[string]any{"label": "X", "value": 10},
				},
			},
			wantCats: []string{"X"},
			wantSer:  []coerce.Series{{Name: "Values", Values: []float64{10}}},
		},
		{
			name: "items with count",
			data: map[string]any{
				"items": []any{
					map[string]any{"name": "open", "count": 7},
					map[string]any{"name": "closed", "percentage": "45%"},
				},
			},
			wantCats: []string{"open", "closed"},
			wantSer:  []coerce.Series{{Name: "Values", Values: []float64{7, 45}}},
		},
		{
			name:     "parallel labels+values",
			data:     map[string]any{"labels": []any{"A", "B"}, "values": []any{1, 2}},
			wantCats: []string{"A", "B"},
			wantSer:  []coerce.Series{{Name: "Values", Values: []float64{1, 2}}},
		},
		{
			name:     "parallel x+y",
			data:     map[string]any{"x": []any{"a"}, "y": []any{"2.5"}},
			wantCats: []string{"a"},
			wantSer:  []coerce.Series{{Name: "Values", Values: []float64{2.5}}},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ds := coerce.Fan(c.data)
			if !reflect.DeepEqual(ds.Categories, c.wantCats) {
				t.Fatalf("categories = %v, want %v", ds.Categories, c.wantCats)
			}
			if !reflect.DeepEqual(ds.Series, c.wantSer) {
				t.Fatalf("series = %v, want %v", ds.Series, c.wantSer)
			}
		})
	}
}

func TestFan_NoMatchIsEmptyNotError(t *testing.T) {
	for _, data := range []map[string]any{
		nil,
		{},
		{"whatever": "else"},
		{"series": []any{}},
	} {
		ds := coerce.Fan(data)
		if !ds.Empty() {
			t.Fatalf("expected empty dataset for %v, got %+v", data, ds)
		}
	}
}

func TestPoints_ParallelArrays(t *testing.T) {
	pts := coerce.Points(map[string]any{
		"x": []any{1, 2},
		"y": []any{3, 4},
		"r": []any{5},
	})
	if len(pts) != 2 {
		t.Fatalf("expected 2 points, got %d", len(pts))
	}
	if pts[0].X != 1 || pts[0].Y != 3 || pts[0].R != 5 {
		t.Fatalf("point 0 = %+v", pts[0])
	}
	if pts[1].R != 0 {
		t.Fatalf("point 1 radius should default to 0, got %v", pts[1].R)
	}
}

func TestLinks_Aliases(t *testing.T) {
	links := coerce.Links(map[string]any{
		"flows": []any{
			map[string]any{"from": "a", "to": "b", "weight": "2k"},
		},
	})
	if len(links) != 1 {
		t.Fatalf("expected 1 link, got %d", len(links))
	}
	l := links[0]
	if l.Source != "a" || l.Target != "b" || l.Value != 2000 {
		t.Fatalf("link = %+v", l)
	}
}

package export_test

import (
	"testing"

	vizschema "github.com/reportkit/vizschema"
	"github.com/reportkit/vizschema/export"
)

func TestTableCSV(t *testing.T) {
	el := vizschema.ElementSpec{
		ID: "e1", Type: vizschema.TypeTable,
		Data: map[string]any{
			"columns": []any{
				map[string]any{"key": "name", "label": "Name"},
				map[string]any{"key": "stats.total", "label": "Total"},
			},
			"rows": []any{
				map[string]any{"name": "Ada", "stats": map[string]any{"total": float64(97)}},
				map[string]any{"name": "Lin, Q", "stats": map[string]any{}},
			},
		},
	}

	got, err := export.TableCSV(el)
	if err != nil {
		t.Fatalf("TableCSV: %v", err)
	}
	want := "Name,Total\nAda,97\n\"Lin, Q\",\n"
	if got != want {
		t.Fatalf("csv = %q, want %q", got, want)
	}
}

func TestTableCSV_DerivedColumns(t *testing.T) {
	el := vizschema.ElementSpec{
		ID: "e1", Type: vizschema.TypeTable,
		Data: map[string]any{
			"rows": []any{
				map[string]any{"b": "2", "a": "1"},
			},
		},
	}

	got, err := export.TableCSV(el)
	if err != nil {
		t.Fatalf("TableCSV: %v", err)
	}
	// Derived columns come out in sorted key order, same as the display.
	if got != "a,b\n1,2\n" {
		t.Fatalf("csv = %q", got)
	}
}

func TestTableCSV_EmptyElement(t *testing.T) {
	got, err := export.TableCSV(vizschema.ElementSpec{ID: "e1", Type: vizschema.TypeTable})
	if err != nil {
		t.Fatalf("TableCSV: %v", err)
	}
	if got != "\n" {
		t.Fatalf("empty table must yield an empty record, got %q", got)
	}
}

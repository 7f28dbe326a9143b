// Package export snapshots rendered output: per-table CSV, and raster/PDF
// captures of the whole document. Exports are user-triggered and independent
// of the render pipeline: they read the element or document handed to them
// at invocation time and have no ordering relationship to later renders.
package export

import (
	"bytes"
	"encoding/csv"

	vizschema "github.com/reportkit/vizschema"
	"github.com/reportkit/vizschema/coerce"
)

// TableCSV flattens a table element. The header row is the resolved column
// labels and each cell goes through the same coercion the on-screen table
// uses, so the file matches the display byte for byte (WYSIWYG).
func TableCSV(el vizschema.ElementSpec) (string, error) {
	cols := coerce.Columns(el.Data)
	rows := coerce.Rows(el.Data)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.Label
	}
	if err := w.Write(header); err != nil {
		return "", err
	}
	record := make([]string, len(cols))
	for _, row := range rows {
		for i, c := range cols {
			record[i] = coerce.CellString(coerce.Lookup(row, c.Key))
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

package render

import (
	"fmt"
	"html"

	vizschema "github.com/reportkit/vizschema"
)

func esc(s string) string { return html.EscapeString(s) }

// placeholder renders the visible, non-fatal slot for an unrecognized element
// type. It names the type so a reviewer can spot generator drift; it never
// crashes the surrounding layout.
func placeholder(el vizschema.ElementSpec) string {
	return fmt.Sprintf(`<div class="el-placeholder" data-el=%q>Unsupported element type: <code>%s</code></div>`,
		esc(el.ID), esc(string(el.Type)))
}

// noData is an element's own empty-state rendering: the slot stays, the
// document does not.
func noData(el vizschema.ElementSpec) string {
	return fmt.Sprintf(`<div class="el-empty" data-el=%q>No data</div>`, esc(el.ID))
}

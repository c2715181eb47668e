package output

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// renderTable renders pattern entries as an ASCII table.
func renderTable(entries []PatternEntry) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Pattern", "Example"})

	for _, entry := range entries {
		t.AppendRow(table.Row{entry.Pattern, entry.Example})
	}

	t.AppendFooter(table.Row{fmt.Sprintf("%d patterns", len(entries)), ""})
	return t.Render()
}

package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// WritePlain writes v as plain tables, for output that is not a terminal.
func WritePlain(w io.Writer, v View) {
	if v.Error != "" {
		fmt.Fprintf(w, "Error: %s\n", v.Error)
	}
	if v.Hint != "" {
		fmt.Fprintln(w, v.Hint)
	}
	if !v.HasResult() {
		return
	}

	fmt.Fprintf(w, "%s: %s - %s\n", v.Texture.Title, v.Texture.Name, v.Texture.Artist)
	ft := table.NewWriter()
	ft.SetOutputMirror(w)
	ft.SetStyle(table.StyleLight)
	ft.AppendHeader(table.Row{"Feature", "Value", "Bar"})
	ft.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	for _, row := range v.Texture.Rows {
		ft.AppendRow(table.Row{row.Label, fmt.Sprintf("%g", row.Value), FormatPercent(row.Percent)})
	}
	ft.Render()

	fmt.Fprintf(w, "\n%s\n", v.Gems.Title)
	gt := table.NewWriter()
	gt.SetOutputMirror(w)
	gt.SetStyle(table.StyleLight)
	gt.AppendHeader(table.Row{"#", "Track", "Artist", "Link"})
	for _, row := range v.Gems.Rows {
		gt.AppendRow(table.Row{row.Rank, row.Name, row.Artist, row.URL})
	}
	gt.Render()
}

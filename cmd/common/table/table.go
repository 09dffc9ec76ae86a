// Package table renders fixed-order, selectable terminal tables with lipgloss.
//
// Rows are shown in the order they were added and are never sorted; callers pass
// ranked results.
package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Row is one table row.
type Row struct {
	Cells []string
}

// Table holds columns, rows and selection state.
type Table struct {
	Columns  []Column
	Rows     []Row
	Selected int // -1 = no selection
	Offset   int // first visible row
	Height   int // visible rows; 0 = all
	Width    int // available width in cells
	Padding  int

	HeaderStyle   lipgloss.Style
	SelectedStyle lipgloss.Style
	SeparatorChar string
}

// New creates a table with the given columns and no selection.
func New(columns ...Column) *Table {
	return &Table{
		Columns:       columns,
		Selected:      -1,
		Width:         DefaultTerminalWidth,
		Padding:       2,
		HeaderStyle:   lipgloss.NewStyle().Bold(true),
		SelectedStyle: lipgloss.NewStyle().Reverse(true),
		SeparatorChar: "─",
	}
}

// AddRow appends a row.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, Row{Cells: cells})
}

// Widths returns the computed column widths for the current content.
func (t *Table) Widths() []int {
	content := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		content[i] = StringWidth(col.Header)
	}
	for _, row := range t.Rows {
		for i, cell := range row.Cells {
			if i < len(content) {
				content[i] = max(content[i], StringWidth(cell))
			}
		}
	}
	return ColumnWidths(t.Columns, t.Width, t.Padding, content)
}

// Select moves the selection to index, clamped to the row range, and scrolls it into view.
func (t *Table) Select(index int) {
	if len(t.Rows) == 0 {
		t.Selected = -1
		return
	}
	t.Selected = max(0, min(index, len(t.Rows)-1))
	t.ensureVisible()
}

// SelectedRow returns the selected row, or nil.
func (t *Table) SelectedRow() *Row {
	if t.Selected < 0 || t.Selected >= len(t.Rows) {
		return nil
	}
	return &t.Rows[t.Selected]
}

func (t *Table) ensureVisible() {
	if t.Height <= 0 || t.Selected < 0 {
		return
	}
	if t.Selected < t.Offset {
		t.Offset = t.Selected
	}
	if t.Selected >= t.Offset+t.Height {
		t.Offset = t.Selected - t.Height + 1
	}
	t.Offset = max(0, min(t.Offset, len(t.Rows)-t.Height))
}

func (t *Table) visibleRange() (int, int) {
	start := max(0, min(t.Offset, len(t.Rows)))
	end := len(t.Rows)
	if t.Height > 0 {
		end = min(start+t.Height, len(t.Rows))
	}
	return start, end
}

func (t *Table) line(cells []string, widths []int) string {
	parts := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = FormatCell(cell, col, widths[i])
	}
	return strings.Join(parts, strings.Repeat(" ", t.Padding))
}

// Render returns header, separator and visible rows.
func (t *Table) Render() string {
	if len(t.Columns) == 0 {
		return ""
	}
	widths := t.Widths()

	headers := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		headers[i] = col.Header
	}

	total := t.Padding * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}

	lines := []string{
		t.HeaderStyle.Render(t.line(headers, widths)),
		strings.Repeat(t.SeparatorChar, total),
	}

	start, end := t.visibleRange()
	for i := start; i < end; i++ {
		text := t.line(t.Rows[i].Cells, widths)
		if i == t.Selected {
			text = t.SelectedStyle.Render(text)
		}
		lines = append(lines, text)
	}

	return strings.Join(lines, "\n")
}

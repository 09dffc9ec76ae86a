package table

// Alignment of text inside a column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column describes one table column.
type Column struct {
	Header   string
	Width    int // fixed width; 0 = flexible
	MinWidth int
	MaxWidth int // 0 = unlimited
	Align    Alignment
}

// ColumnWidths lays out columns inside totalWidth cells.
//
// Fixed columns get their width. Flexible columns get what they need for their content
// (capped at MaxWidth); when that does not fit, the space left after fixed columns is
// shared in proportion to content width, never below MinWidth or 1.
func ColumnWidths(columns []Column, totalWidth, padding int, contentWidths []int) []int {
	if len(columns) == 0 {
		return nil
	}

	widths := make([]int, len(columns))
	available := totalWidth - padding*(len(columns)-1)

	wanted := 0
	var flexible []int
	for i, col := range columns {
		if col.Width > 0 {
			widths[i] = col.Width
			available -= col.Width
			continue
		}
		need := 1
		if i < len(contentWidths) {
			need = max(contentWidths[i], need)
		}
		if col.MaxWidth > 0 {
			need = min(need, col.MaxWidth)
		}
		need = max(need, col.MinWidth)
		widths[i] = need
		wanted += need
		flexible = append(flexible, i)
	}

	if wanted > available && wanted > 0 {
		budget := max(available, 0)
		for _, i := range flexible {
			share := widths[i] * budget / wanted
			widths[i] = max(share, columns[i].MinWidth, 1)
		}
	}

	return widths
}

// FormatCell pads or truncates value to width according to the column alignment.
func FormatCell(value string, col Column, width int) string {
	if col.Align == AlignRight {
		return PadLeft(value, width)
	}
	return PadRight(value, width)
}

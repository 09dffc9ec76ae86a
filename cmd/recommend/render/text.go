package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gigurra/tunetexture/cmd/common/table"
)

// DefaultBarWidth is the number of cells of a full feature bar.
const DefaultBarWidth = 20

// sideBySideWidth is the narrowest terminal that shows both panels next to each other.
const sideBySideWidth = 96

var (
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250"))
	songStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")) // Green
	artistStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	barFull     = lipgloss.NewStyle().Foreground(lipgloss.Color("33")) // Blue
	barEmpty    = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	linkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Underline(true)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// TextOptions control terminal rendering.
type TextOptions struct {
	Width      int // available width; 0 = DefaultTerminalWidth
	BarWidth   int // 0 = DefaultBarWidth
	Selected   int // selected gem row, -1 for none
	GemsHeight int // visible gem rows, 0 = all
	ShowLinks  bool
}

// Text draws the error line and the result panels of v.
func Text(v View, opts TextOptions) string {
	width := opts.Width
	if width <= 0 {
		width = table.DefaultTerminalWidth
	}

	var parts []string
	if v.Error != "" {
		line := errorStyle.Render("✗ " + v.Error)
		if v.Stale {
			line += hintStyle.Render("  (showing previous results)")
		}
		parts = append(parts, line)
	}
	if v.Hint != "" {
		parts = append(parts, hintStyle.Render(v.Hint))
	}
	if !v.HasResult() {
		return strings.Join(parts, "\n")
	}

	panelWidth := width
	sideBySide := width >= sideBySideWidth
	if sideBySide {
		panelWidth = (width - 1) / 2
	}
	// Border and padding take two cells on each side.
	inner := max(panelWidth-4, 10)

	texture := panelStyle.Width(inner + 2).Render(TexturePanelText(*v.Texture, inner, opts.BarWidth))
	gems := panelStyle.Width(inner + 2).Render(GemsPanelText(*v.Gems, inner, opts))

	if sideBySide {
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, texture, " ", gems))
	} else {
		parts = append(parts, texture, gems)
	}
	return strings.Join(parts, "\n")
}

// TexturePanelText draws the analyzed song and one bar per feature.
func TexturePanelText(p TexturePanel, width, barWidth int) string {
	if barWidth <= 0 {
		barWidth = DefaultBarWidth
	}

	labelWidth := 0
	for _, row := range p.Rows {
		labelWidth = max(labelWidth, table.StringWidth(row.Label))
	}
	// Label, bar and the percent column must fit the panel.
	barWidth = max(min(barWidth, width-labelWidth-7), 1)
	labelWidth = min(labelWidth, max(width-barWidth-7, 1))

	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Title))
	b.WriteString("\n")
	b.WriteString(songStyle.Render(table.Truncate(p.Name, width)))
	b.WriteString("\n")
	b.WriteString(artistStyle.Render(table.Truncate(p.Artist, width)))
	b.WriteString("\n")

	for _, row := range p.Rows {
		b.WriteString("\n")
		b.WriteString(table.PadRight(row.Label, labelWidth))
		b.WriteString("  ")
		b.WriteString(Bar(row.Percent, barWidth))
		b.WriteString(" ")
		b.WriteString(table.PadLeft(FormatPercent(row.Percent), 4))
	}
	return b.String()
}

// GemsPanelText draws the ranked recommendations.
func GemsPanelText(p GemsPanel, width int, opts TextOptions) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Title))
	b.WriteString("\n\n")

	if len(p.Rows) == 0 {
		b.WriteString(hintStyle.Render("No hidden gems this time."))
		return b.String()
	}

	columns := []table.Column{
		{Header: "#", Width: 2, Align: table.AlignRight},
		{Header: "TRACK", MinWidth: 6},
		{Header: "ARTIST", MinWidth: 6},
	}
	if opts.ShowLinks {
		columns = append(columns, table.Column{Header: "LINK", MinWidth: 8})
	}

	tbl := table.New(columns...)
	tbl.Width = width
	tbl.Height = opts.GemsHeight
	tbl.HeaderStyle = titleStyle
	for _, row := range p.Rows {
		cells := []string{strconv.Itoa(row.Rank), row.Name, row.Artist}
		if opts.ShowLinks {
			cells = append(cells, row.URL)
		}
		tbl.AddRow(cells...)
	}
	if opts.Selected >= 0 {
		tbl.Select(opts.Selected)
	}
	b.WriteString(tbl.Render())

	if tbl.SelectedRow() != nil {
		url := p.Rows[tbl.Selected].URL
		b.WriteString("\n\n")
		b.WriteString(PlayLabel + " ")
		b.WriteString(linkStyle.Render(table.Truncate(url, max(width-len(PlayLabel)-1, 1))))
	}
	return b.String()
}

// Bar draws a horizontal bar of width cells filled to percent.
func Bar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	if math.IsNaN(percent) {
		percent = 0
	}
	percent = math.Max(0, math.Min(percent, 100))
	filled := int(math.Round(percent / 100 * float64(width)))
	return barFull.Render(strings.Repeat("█", filled)) + barEmpty.Render(strings.Repeat("░", width-filled))
}

// FormatPercent formats a bar percent for display.
func FormatPercent(percent float64) string {
	return fmt.Sprintf("%.0f%%", percent)
}

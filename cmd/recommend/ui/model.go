// Package ui is the interactive search: a query input with a trigger button above the
// analyzed texture and hidden gems panels.
package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gigurra/tunetexture/cmd/common/table"
	"github.com/gigurra/tunetexture/cmd/recommend/api"
	"github.com/gigurra/tunetexture/cmd/recommend/render"
	"github.com/gigurra/tunetexture/cmd/recommend/search"
)

const (
	appTitle    = "TuneTexture"
	appSubtitle = "Discover music by texture, not popularity."
	placeholder = "Enter a song you love..."
)

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")) // Green
	subtitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	inputStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
	inputFocused     = inputStyle.BorderForeground(lipgloss.Color("42"))
	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	buttonStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 2)
	buttonFocused    = buttonStyle.Bold(true).Foreground(lipgloss.Color("15")).BorderForeground(lipgloss.Color("42"))
	busyStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	noticeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type focus int

const (
	focusInput focus = iota
	focusButton
	focusGems
)

// settledMsg carries a finished search back to the event loop.
type settledMsg search.Settlement

// actionMsg reports the outcome of opening or copying a link.
type actionMsg struct {
	notice string
	err    error
}

type model struct {
	ctx      context.Context
	ctrl     *search.Controller
	opts     render.Options
	barWidth int
	initial  string
	focus    focus
	selected int
	width    int
	height   int
	notice   string
	noticeOK bool
}

func newModel(ctx context.Context, ctrl *search.Controller, opts render.Options, barWidth int, initial string) model {
	ctrl.SetQuery(initial)
	return model{
		ctx:      ctx,
		ctrl:     ctrl,
		opts:     opts,
		barWidth: barWidth,
		initial:  initial,
	}
}

func (m model) Init() tea.Cmd {
	if strings.TrimSpace(m.initial) == "" {
		return nil
	}
	ticket, ok := m.ctrl.Begin(m.initial)
	if !ok {
		return nil
	}
	return m.runCmd(ticket)
}

func (m model) runCmd(ticket search.Ticket) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return settledMsg(ctrl.Run(ctx, ticket))
	}
}

// submit is the single path for both the Enter key and the button.
func (m model) submit() (model, tea.Cmd) {
	ticket, ok := m.ctrl.Begin(m.ctrl.Query())
	if !ok {
		return m, nil
	}
	m.notice = ""
	return m, m.runCmd(ticket)
}

func (m model) gems() []api.Recommendation {
	state := m.ctrl.State()
	if state.Result == nil {
		return nil
	}
	return state.Result.Recommendations
}

func (m model) view() render.View {
	return render.Project(m.ctrl.State(), m.opts)
}

func (m model) selectedURL() string {
	v := m.view()
	if v.Gems == nil || m.selected < 0 || m.selected >= len(v.Gems.Rows) {
		return ""
	}
	return v.Gems.Rows[m.selected].URL
}

func (m model) cycleFocus(delta int) model {
	stops := []focus{focusInput, focusButton}
	if len(m.gems()) > 0 {
		stops = append(stops, focusGems)
	}
	idx := 0
	for i, f := range stops {
		if f == m.focus {
			idx = i
		}
	}
	m.focus = stops[(idx+delta+len(stops))%len(stops)]
	return m
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			return m.cycleFocus(1), nil
		case "shift+tab":
			return m.cycleFocus(-1), nil
		}

		switch m.focus {
		case focusInput:
			return m.updateInput(msg)
		case focusButton:
			return m.updateButton(msg)
		case focusGems:
			return m.updateGems(msg)
		}

	case settledMsg:
		if m.ctrl.Settle(search.Settlement(msg)) {
			state := m.ctrl.State()
			if state.Status == search.StatusSuccess {
				m.selected = 0
			}
			if m.focus == focusGems && len(m.gems()) == 0 {
				m.focus = focusInput
			}
		}

	case actionMsg:
		if msg.err != nil {
			m.notice = msg.err.Error()
			m.noticeOK = false
		} else {
			m.notice = msg.notice
			m.noticeOK = true
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.submit()
	case "esc":
		return m, tea.Quit
	case "backspace":
		m.ctrl.Backspace()
	case "ctrl+u":
		m.ctrl.ClearQuery()
	case "down":
		if len(m.gems()) > 0 {
			m.focus = focusGems
		}
	default:
		switch msg.Type {
		case tea.KeyRunes:
			m.ctrl.AppendRunes(msg.Runes)
		case tea.KeySpace:
			m.ctrl.AppendRunes([]rune{' '})
		}
	}
	return m, nil
}

func (m model) updateButton(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", " ":
		if m.ctrl.State().Loading() {
			return m, nil
		}
		return m.submit()
	case "esc", "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) updateGems(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.focus = focusInput
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.gems())-1 {
			m.selected++
		}
	case "home", "g":
		m.selected = 0
	case "end", "G":
		m.selected = max(len(m.gems())-1, 0)
	case "enter", "o":
		if url := m.selectedURL(); url != "" {
			ctx := m.ctx
			return m, func() tea.Msg {
				if err := openURL(ctx, url); err != nil {
					return actionMsg{err: err}
				}
				return actionMsg{notice: "Opened " + url}
			}
		}
	case "c", "y":
		if url := m.selectedURL(); url != "" {
			return m, func() tea.Msg {
				if err := clipboardWriteAll(url); err != nil {
					return actionMsg{err: err}
				}
				return actionMsg{notice: "Copied " + url}
			}
		}
	}
	return m, nil
}

// View shrinks the gems table until the screen fits the terminal height, so the title and
// the search controls never scroll off.
func (m model) View() string {
	rows := len(m.gems())
	out := m.render(0)
	if m.height <= 0 {
		return out
	}
	for h := rows - 1; h >= 1 && lipgloss.Height(out) > m.height; h-- {
		out = m.render(h)
	}
	return out
}

// render draws the screen with at most gemsHeight visible gem rows, 0 for all.
func (m model) render(gemsHeight int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(appTitle))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(appSubtitle))
	b.WriteString("\n")

	b.WriteString(m.renderControls())
	b.WriteString("\n")

	v := m.view()
	selected := -1
	if m.focus == focusGems {
		selected = m.selected
	}
	if panels := render.Text(v, render.TextOptions{
		Width:      m.width,
		BarWidth:   m.barWidth,
		Selected:   selected,
		GemsHeight: gemsHeight,
	}); panels != "" {
		b.WriteString(panels)
		b.WriteString("\n")
	}

	if m.notice != "" {
		style := noticeStyle
		if !m.noticeOK {
			style = failStyle
		}
		b.WriteString(style.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.helpLine()))
	return b.String()
}

func (m model) renderControls() string {
	width := m.width
	if width <= 0 {
		width = table.DefaultTerminalWidth
	}
	v := m.view()
	caption := v.Caption
	if v.Busy {
		caption = busyStyle.Render(caption)
	}

	button := buttonStyle
	if m.focus == focusButton {
		button = buttonFocused
	}
	buttonText := button.Render(caption)

	// Border and padding of the input take four cells.
	inputWidth := max(width-lipgloss.Width(buttonText)-5, 10)
	var text string
	if query := v.Query; query == "" {
		hint := table.Truncate(placeholder, inputWidth-1)
		text = placeholderStyle.Render(hint)
		if m.focus == focusInput {
			text = "█" + text
		}
	} else {
		if m.focus == focusInput {
			query += "█"
		}
		text = tailFit(query, inputWidth)
	}

	input := inputStyle
	if m.focus == focusInput {
		input = inputFocused
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, input.Width(inputWidth+2).Render(text), " ", buttonText)
}

// tailFit keeps the end of s so the cursor stays visible while typing long queries.
func tailFit(s string, width int) string {
	if table.StringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && table.StringWidth(string(runes)) > width {
		runes = runes[1:]
	}
	return string(runes)
}

func (m model) helpLine() string {
	switch m.focus {
	case focusButton:
		return "enter/space: find gems • tab: next • esc: quit"
	case focusGems:
		return "↑/↓: select • enter/o: open • c: copy link • esc: back to search • q: quit"
	default:
		return "enter: find gems • tab: next • ctrl+u: clear • esc: quit"
	}
}

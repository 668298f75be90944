// Package tui is a terminal frontend for the country lookup. It renders the
// same controller state as the desktop window using bubbletea.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"world-countries/internal/controllers"
	"world-countries/internal/models"
)

// defaultListHeight is used until the first WindowSizeMsg arrives.
const defaultListHeight = 15

// rows reserved for title, input, population, status and alert lines
const chromeHeight = 8

var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	cursorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	placeholderText = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
	populationStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	statusStyle     = lipgloss.NewStyle().Faint(true)
	alertStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// dispatchMsg carries a closure posted from a background goroutine.
type dispatchMsg struct {
	fn func()
}

// Dispatcher returns a controllers.Dispatcher that runs closures inside the
// program's Update loop.
func Dispatcher(p *tea.Program) controllers.Dispatcher {
	return func(fn func()) {
		p.Send(dispatchMsg{fn: fn})
	}
}

// screen is the controller-facing state. It is only touched from Update, or
// before the program starts.
type screen struct {
	status     string
	population string
	alert      string
	rows       []string
	cursor     int
	offset     int

	onFilter func(string)
	onSelect func(int)
}

func (s *screen) SetStatus(status string)   { s.status = status }
func (s *screen) SetPopulation(text string) { s.population = text }

func (s *screen) SetRows(rows []string) {
	s.rows = append([]string(nil), rows...)
	s.cursor = 0
	s.offset = 0
}

func (s *screen) ShowAlert(title, message string) {
	s.alert = title + ": " + message
}

func (s *screen) SetFilterHandler(handler func(string)) { s.onFilter = handler }
func (s *screen) SetSelectHandler(handler func(int))    { s.onSelect = handler }

// Model is the bubbletea model for the lookup screen.
type Model struct {
	screen     *screen
	input      textinput.Model
	listHeight int
	title      string
}

// New creates the terminal model with the given window title.
func New(title string) Model {
	input := textinput.New()
	input.Prompt = "Search Country: "
	input.Placeholder = "type part of a country name"
	input.Focus()

	return Model{
		screen:     &screen{status: controllers.StatusReady},
		input:      input,
		listHeight: defaultListHeight,
		title:      title,
	}
}

// Screen returns the controllers.View backed by this model.
func (m Model) Screen() controllers.View {
	return m.screen
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dispatchMsg:
		msg.fn()
		return m, nil

	case tea.WindowSizeMsg:
		m.listHeight = max(msg.Height-chromeHeight, 1)
		m.scrollToCursor()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

//nolint:exhaustive // only navigation keys are intercepted, the rest go to the input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.screen
	s.alert = ""

	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyUp:
		if s.cursor > 0 {
			s.cursor--
		}
		m.selectCursor()
		return m, nil

	case tea.KeyDown:
		if s.cursor < len(s.rows)-1 {
			s.cursor++
		}
		m.selectCursor()
		return m, nil

	case tea.KeyEnter:
		m.selectCursor()
		return m, nil

	case tea.KeyEsc:
		m.input.SetValue("")
		m.notifyFilter("")
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.notifyFilter(after)
	}
	return m, cmd
}

func (m Model) notifyFilter(text string) {
	if m.screen.onFilter != nil {
		m.screen.onFilter(text)
	}
}

func (m Model) selectCursor() {
	m.scrollToCursor()
	if m.screen.onSelect != nil && len(m.screen.rows) > 0 {
		m.screen.onSelect(m.screen.cursor)
	}
}

func (m Model) scrollToCursor() {
	s := m.screen
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+m.listHeight {
		s.offset = s.cursor - m.listHeight + 1
	}
}

func (m Model) View() string {
	s := m.screen
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	end := min(s.offset+m.listHeight, len(s.rows))
	for i := s.offset; i < end; i++ {
		row := s.rows[i]
		switch {
		case len(s.rows) == 1 && isPlaceholder(row):
			b.WriteString("  " + placeholderText.Render(row))
		case i == s.cursor:
			b.WriteString(cursorStyle.Render("> " + row))
		default:
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}

	b.WriteString(populationStyle.Render(s.population))
	b.WriteString("\n")
	if s.alert != "" {
		b.WriteString(alertStyle.Render(s.alert))
		b.WriteString("\n")
	}
	b.WriteString(statusStyle.Render(s.status + "  (↑/↓ select, esc clear, ctrl+c quit)"))
	b.WriteString("\n")

	return b.String()
}

func isPlaceholder(row string) bool {
	switch row {
	case models.PlaceholderLoading, models.PlaceholderNoResults, models.PlaceholderUnavailable:
		return true
	}
	return false
}

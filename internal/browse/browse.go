// Package browse is an interactive terminal viewer for solved tables.
package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjack-ev/internal/report"
)

var (
	tabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#626262"))

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// Model is the bubbletea model for the table browser. Each page is a
// pre-rendered grid; the viewport scrolls the active one.
type Model struct {
	header   string
	names    []string
	pages    []string
	active   int
	viewport viewport.Model
	ready    bool
}

// New creates a browser over the given grids. header is shown above the tabs.
func New(header string, grids []report.Grid) *Model {
	m := &Model{
		header:   header,
		viewport: viewport.New(80, 20),
	}
	for _, g := range grids {
		m.names = append(m.names, g.Name)
		m.pages = append(m.pages, report.Render(g))
	}
	m.show(0)
	return m
}

// Active returns the name of the page being shown.
func (m *Model) Active() string {
	if len(m.names) == 0 {
		return ""
	}
	return m.names[m.active]
}

func (m *Model) show(i int) {
	if len(m.pages) == 0 {
		return
	}
	m.active = (i + len(m.pages)) % len(m.pages)
	m.viewport.SetContent(m.pages[m.active])
	m.viewport.GotoTop()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		chrome := lipgloss.Height(m.headerView()) + lipgloss.Height(m.footerView())
		m.viewport.Width = max(msg.Width, 1)
		m.viewport.Height = max(msg.Height-chrome, 1)
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab", "right", "l":
			m.show(m.active + 1)
			return m, nil
		case "shift+tab", "left", "h":
			m.show(m.active - 1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) headerView() string {
	tabs := make([]string, len(m.names))
	for i, name := range m.names {
		if i == m.active {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(name)
		}
	}
	return m.header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) footerView() string {
	return helpStyle.Render(fmt.Sprintf("%3.f%%  ←/→ switch table  ↑/↓ scroll  q quit", m.viewport.ScrollPercent()*100))
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.footerView())
	return b.String()
}

// Run starts the browser on the terminal and blocks until the user quits.
func Run(header string, grids []report.Grid) error {
	_, err := tea.NewProgram(New(header, grids), tea.WithAltScreen()).Run()
	return err
}

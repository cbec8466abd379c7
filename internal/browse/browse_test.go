package browse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack-ev/internal/report"
)

func grids() []report.Grid {
	return []report.Grid{
		{
			Name:      "strategy",
			Title:     "Basic strategy",
			Rows:      []string{"H16"},
			Columns:   []string{"H10"},
			Cells:     [][]string{{"X/H"}},
			Decisions: true,
		},
		{
			Name:    "stand",
			Title:   "EV of standing",
			Rows:    []string{"H16"},
			Columns: []string{"H10"},
			Cells:   [][]string{{"-0.540430"}},
		},
	}
}

func TestBrowserSwitchesTables(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	m := New("S17", grids())
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	require.Equal(t, "strategy", m.Active())
	assert.Contains(t, m.View(), "X/H")

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "stand", m.Active())
	assert.Contains(t, m.View(), "-0.540430")

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "strategy", m.Active(), "tabs wrap around")

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "stand", m.Active())
}

func TestBrowserQuits(t *testing.T) {
	m := New("S17", grids())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestBrowserEmpty(t *testing.T) {
	m := New("empty", nil)
	assert.Equal(t, "", m.Active())
	assert.NotPanics(t, func() { _ = m.View() })
}

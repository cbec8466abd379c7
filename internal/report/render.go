package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/blackjack-ev/internal/edge"
	"github.com/lox/blackjack-ev/internal/hand"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Align(lipgloss.Right).
			Foreground(lipgloss.Color("14"))

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Align(lipgloss.Right)

	// keyed by the leading chart code
	actionColors = map[byte]lipgloss.Color{
		'H': lipgloss.Color("9"),
		'S': lipgloss.Color("11"),
		'D': lipgloss.Color("10"),
		'P': lipgloss.Color("12"),
		'X': lipgloss.Color("13"),
	}

	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Render draws a grid as a bordered console table.
func Render(g Grid) string {
	headers := append([]string{""}, g.Columns...)
	rows := make([][]string, len(g.Rows))
	for i, label := range g.Rows {
		rows[i] = append([]string{label}, g.Cells[i]...)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return headerStyle
			}
			if !g.Decisions || row < 0 || row >= len(rows) {
				return cellStyle
			}
			cell := rows[row][col]
			if cell == "" {
				return cellStyle
			}
			if c, ok := actionColors[cell[0]]; ok {
				return cellStyle.Foreground(c)
			}
			return cellStyle
		})

	var b strings.Builder
	if g.Title != "" {
		b.WriteString(titleStyle.Render(g.Title))
		b.WriteString("\n")
	}
	b.WriteString(t.String())
	b.WriteString("\n")
	return b.String()
}

// Legend explains the chart codes.
func Legend() string {
	codes := []struct{ code, meaning string }{
		{"H", "hit"},
		{"S", "stand"},
		{"D/x", "double, otherwise x"},
		{"P", "split"},
		{"X/x", "surrender, otherwise x"},
	}
	parts := make([]string, len(codes))
	for i, c := range codes {
		style := lipgloss.NewStyle().Foreground(actionColors[c.code[0]]).Bold(true)
		parts[i] = style.Render(c.code) + " " + c.meaning
	}
	return strings.Join(parts, "  ") + "\n"
}

// Summary renders the headline expected value of a solve.
func Summary(name string, rep edge.Report) string {
	style := positiveStyle
	if rep.EV < 0 {
		style = negativeStyle
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render("Expected value ("+name+"):"), style.Render(fmt.Sprintf("%.6f", rep.EV)))
	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render("House edge:"), style.Render(fmt.Sprintf("%.4f%%", rep.HouseEdge()*100)))
	return b.String()
}

// Upcards renders each dealer upcard's contribution to the expected value.
func Upcards(rep edge.Report) string {
	cols := make([]string, len(hand.Ranks))
	vals := make([]string, len(hand.Ranks))
	for i, r := range hand.Ranks {
		cols[i] = r.String()
		vals[i] = fmt.Sprintf("%.5f", rep.ByUpcard[i])
	}
	return Render(Grid{
		Title:   "Contribution by dealer upcard",
		Rows:    []string{"EV"},
		Columns: cols,
		Cells:   [][]string{vals},
	})
}

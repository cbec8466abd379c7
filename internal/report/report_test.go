package report

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack-ev/internal/edge"
	"github.com/lox/blackjack-ev/internal/rules"
	"github.com/lox/blackjack-ev/internal/solver"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func solved(t *testing.T) (*solver.Result, edge.Report) {
	t.Helper()
	res, err := solver.New(rules.Default()).Solve()
	require.NoError(t, err)
	return res, edge.Compute(res)
}

func cell(t *testing.T, g Grid, row, col string) string {
	t.Helper()
	for i, r := range g.Rows {
		if r != row {
			continue
		}
		for j, c := range g.Columns {
			if c == col {
				return g.Cells[i][j]
			}
		}
	}
	t.Fatalf("no cell %s/%s in %s", row, col, g.Name)
	return ""
}

func TestStrategyGrids(t *testing.T) {
	res, _ := solved(t)
	grids := Strategy(res)
	require.Len(t, grids, 2)

	totals, pairs := grids[0], grids[1]
	assert.Len(t, totals.Rows, 24)
	assert.Equal(t, []string{"H2", "H3", "H4", "H5", "H6", "H7", "H8", "H9", "H10", "S11"}, totals.Columns)
	assert.Equal(t, "X/H", cell(t, totals, "H16", "H10"))
	assert.Equal(t, "D/H", cell(t, totals, "H11", "H6"))

	assert.Len(t, pairs.Rows, 10)
	assert.Equal(t, "P", cell(t, pairs, "8,8", "H6"))
	assert.Equal(t, "S", cell(t, pairs, "10,10", "H6"))
}

func TestRender(t *testing.T) {
	res, _ := solved(t)
	out := Render(Strategy(res)[0])

	assert.Contains(t, out, "Basic strategy")
	assert.Contains(t, out, "H16")
	assert.Contains(t, out, "X/H")
	assert.Contains(t, out, "S11")
	assert.Contains(t, out, "│")
	assert.NotContains(t, out, "\x1b[", "ascii profile should not emit colour")
}

func TestSummary(t *testing.T) {
	_, rep := solved(t)
	out := Summary("S17", rep)
	assert.Contains(t, out, "-0.003438")
	assert.Contains(t, out, "0.3438%")
	assert.Contains(t, Upcards(rep), "Contribution by dealer upcard")
}

func TestTablesIncludeBreakdown(t *testing.T) {
	res, rep := solved(t)
	names := Names(Tables(res, &rep))
	assert.Contains(t, names, "stand")
	assert.Contains(t, names, "final-pairs-actions")
	assert.Contains(t, names, "breakdown")

	assert.NotContains(t, Names(Tables(res, nil)), "breakdown")

	g, ok := Find(Tables(res, nil), "hit")
	require.True(t, ok)
	assert.Equal(t, "-1.000000", cell(t, g, "H21", "H10"))

	_, ok = Find(Tables(res, nil), "nope")
	assert.False(t, ok)
}

func TestWriteCSV(t *testing.T) {
	g := Grid{
		Rows:    []string{"H16", "S18"},
		Columns: []string{"H9", "H10"},
		Cells:   [][]string{{"H", "X/H"}, {"H", "H"}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, g))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{"---,H9,H10", "H16,H,X/H", "S18,H,H"}, lines)
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "chart.csv")

	require.NoError(t, WriteFile(path, 0o644, func(w io.Writer) error {
		_, err := io.WriteString(w, "first")
		return err
	}))

	boom := errors.New("boom")
	err := WriteFile(path, 0o644, func(w io.Writer) error {
		io.WriteString(w, "partial")
		return boom
	})
	require.ErrorIs(t, err, boom)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must be cleaned up")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestWriteFileInvalidDir(t *testing.T) {
	t.Parallel()

	err := WriteFile("/nonexistent/dir/test.csv", 0o644, func(io.Writer) error { return nil })
	assert.Error(t, err)
}

func TestExportCSV(t *testing.T) {
	res, rep := solved(t)
	dir := filepath.Join(t.TempDir(), "out")

	paths, err := ExportCSV(dir, Tables(res, &rep))
	require.NoError(t, err)
	assert.Len(t, paths, 14)

	data, err := os.ReadFile(filepath.Join(dir, "final-actions.csv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "---,H2,H3"))
}

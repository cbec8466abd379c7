package report

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV writes a grid as CSV. The header row starts with "---" followed
// by the column labels; each following row starts with its label.
func WriteCSV(w io.Writer, g Grid) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"---"}, g.Columns...)); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, label := range g.Rows {
		if err := cw.Write(append([]string{label}, g.Cells[i]...)); err != nil {
			return fmt.Errorf("writing row %s: %w", label, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Package report renders solved tables for people: styled console charts,
// CSV dumps and the files they are written to.
package report

import (
	"fmt"

	"github.com/lox/blackjack-ev/internal/edge"
	"github.com/lox/blackjack-ev/internal/hand"
	"github.com/lox/blackjack-ev/internal/solver"
)

// Grid is a labelled two-dimensional table of display strings.
type Grid struct {
	Name    string
	Title   string
	Rows    []string
	Columns []string
	Cells   [][]string
	// Decisions marks grids whose cells are strategy codes.
	Decisions bool
}

func labels(hands []hand.Hand) []string {
	out := make([]string, len(hands))
	for i, h := range hands {
		out[i] = h.String()
	}
	return out
}

func build(name, title string, rows, cols []hand.Hand, cell func(p, d hand.Hand) string) Grid {
	g := Grid{
		Name:    name,
		Title:   title,
		Rows:    labels(rows),
		Columns: labels(cols),
		Cells:   make([][]string, len(rows)),
	}
	for i, p := range rows {
		g.Cells[i] = make([]string, len(cols))
		for j, d := range cols {
			g.Cells[i][j] = cell(p, d)
		}
	}
	return g
}

// DecisionGrid renders decisions as chart codes.
func DecisionGrid(name, title string, rows, cols []hand.Hand, at func(p, d hand.Hand) solver.Decision) Grid {
	g := build(name, title, rows, cols, func(p, d hand.Hand) string {
		return at(p, d).String()
	})
	g.Decisions = true
	return g
}

// EVGrid renders expected values with six decimals.
func EVGrid(name, title string, rows, cols []hand.Hand, at func(p, d hand.Hand) float64) Grid {
	return build(name, title, rows, cols, func(p, d hand.Hand) string {
		return fmt.Sprintf("%f", at(p, d))
	})
}

func pairs() []hand.Hand {
	p := hand.Pairs()
	return p[:]
}

func upcards() []hand.Hand {
	u := hand.Upcards()
	return u[:]
}

// Strategy returns the basic strategy charts: totals, then pairs.
func Strategy(res *solver.Result) []Grid {
	return []Grid{
		DecisionGrid("strategy", "Basic strategy", hand.ChartRows(), upcards(), res.Final.Decisions.At),
		DecisionGrid("strategy-pairs", "Pairs", pairs(), upcards(), res.FinalPairs.Decisions.At),
	}
}

// Tables returns every table of a solve over the full state space, plus the
// house edge breakdown when rep is non-nil.
func Tables(res *solver.Result, rep *edge.Report) []Grid {
	all := hand.Display()
	ps := pairs()

	grids := []Grid{
		EVGrid("stand", "EV of standing", all, all, res.Standing.At),
		EVGrid("hit", "EV of hitting", all, all, res.Hitting.At),
		EVGrid("double", "EV of doubling", all, all, res.Doubling.At),
		EVGrid("split", "EV of splitting", ps, all, res.Split.At),
		EVGrid("hit-stand", "EV of hit or stand", all, all, res.HitStand.EV.At),
		DecisionGrid("hit-stand-actions", "Hit or stand", all, all, res.HitStand.Decisions.At),
		EVGrid("hit-stand-double", "EV of hit, stand or double", all, all, res.HitStandDouble.EV.At),
		DecisionGrid("hit-stand-double-actions", "Hit, stand or double", all, all, res.HitStandDouble.Decisions.At),
		EVGrid("final", "EV with surrender", all, all, res.Final.EV.At),
		DecisionGrid("final-actions", "Actions with surrender", all, all, res.Final.Decisions.At),
		EVGrid("final-pairs", "Pair EV with surrender", ps, all, res.FinalPairs.EV.At),
		DecisionGrid("final-pairs-actions", "Pair actions with surrender", ps, all, res.FinalPairs.Decisions.At),
	}
	if rep != nil {
		grids = append(grids,
			EVGrid("breakdown", "Contribution to EV", all, upcards(), rep.Breakdown.At),
			EVGrid("breakdown-pairs", "Pair contribution to EV", ps, upcards(), rep.PairBreakdown.At),
		)
	}
	return grids
}

// Find returns the grid with the given name.
func Find(grids []Grid, name string) (Grid, bool) {
	for _, g := range grids {
		if g.Name == name {
			return g, true
		}
	}
	return Grid{}, false
}

// Names lists the grid names in order.
func Names(grids []Grid) []string {
	out := make([]string, len(grids))
	for i, g := range grids {
		out[i] = g.Name
	}
	return out
}

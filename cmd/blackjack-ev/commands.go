package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lox/blackjack-ev/internal/browse"
	"github.com/lox/blackjack-ev/internal/edge"
	"github.com/lox/blackjack-ev/internal/hand"
	"github.com/lox/blackjack-ev/internal/report"
	"github.com/lox/blackjack-ev/internal/rules"
	"github.com/lox/blackjack-ev/internal/solver"
)

// StrategyCmd prints the basic strategy charts.
type StrategyCmd struct {
	Legend bool `default:"true" negatable:"" help:"Show the chart code legend"`
}

func (c *StrategyCmd) Run(g *Globals) error {
	res, rep, _, err := g.solve()
	if err != nil {
		return err
	}

	for _, grid := range report.Strategy(res) {
		fmt.Print(report.Render(grid))
	}
	if c.Legend {
		fmt.Print(report.Legend())
	}
	fmt.Println()
	fmt.Print(report.Summary(res.Rules.Name(), rep))
	return nil
}

// EdgeCmd prints the expected value and where it comes from.
type EdgeCmd struct {
	Breakdown bool `short:"b" help:"Show each starting hand's contribution"`
}

func (c *EdgeCmd) Run(g *Globals) error {
	res, rep, _, err := g.solve()
	if err != nil {
		return err
	}

	fmt.Print(report.Summary(res.Rules.Name(), rep))
	fmt.Println()
	fmt.Print(report.Upcards(rep))

	if c.Breakdown {
		grids := report.Tables(res, &rep)
		for _, name := range []string{"breakdown", "breakdown-pairs"} {
			if grid, ok := report.Find(grids, name); ok {
				fmt.Print(report.Render(grid))
			}
		}
	}
	return nil
}

// LookupCmd shows every table's value for a single cell.
type LookupCmd struct {
	Player string `arg:"" help:"Player hand: H16, S18, 8,8 or A,A"`
	Upcard string `arg:"" help:"Dealer upcard: 2-10 or A"`
}

func (c *LookupCmd) Run(g *Globals) error {
	player, err := hand.Parse(c.Player)
	if err != nil {
		return err
	}
	if player.Kind() == hand.Single {
		return fmt.Errorf("%w: %q is a single card, not a starting hand", hand.ErrInvalid, c.Player)
	}
	up, err := hand.ParseRank(c.Upcard)
	if err != nil {
		return err
	}
	dealer := hand.Upcard(up)

	res, _, _, err := g.solve()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "hand\t%s vs %s\n", player, up)
	if player.Kind() == hand.Pair {
		fmt.Fprintf(w, "split\t%f\n", res.Split.At(player, dealer))
		fmt.Fprintf(w, "best\t%f\n", res.FinalPairs.EV.At(player, dealer))
	} else {
		fmt.Fprintf(w, "stand\t%f\n", res.Standing.At(player, dealer))
		fmt.Fprintf(w, "hit\t%f\n", res.Hitting.At(player, dealer))
		fmt.Fprintf(w, "double\t%f\n", res.Doubling.At(player, dealer))
		fmt.Fprintf(w, "best\t%f\n", res.Final.EV.At(player, dealer))
	}

	d := res.Decision(player, dealer)
	fmt.Fprintf(w, "decision\t%s\n", d)
	for {
		next, ok := d.Fallback()
		if !ok {
			break
		}
		fmt.Fprintf(w, "otherwise\t%s\n", next.Primary())
		d = next
	}
	return w.Flush()
}

// ExportCmd writes every table as CSV.
type ExportCmd struct {
	Dir   string   `short:"o" type:"path" default:"tables" help:"Output directory"`
	Table []string `short:"t" help:"Only export the named tables"`
}

func (c *ExportCmd) Run(g *Globals) error {
	res, rep, logger, err := g.solve()
	if err != nil {
		return err
	}

	grids := append(report.Tables(res, &rep), report.Strategy(res)...)
	if len(c.Table) > 0 {
		var selected []report.Grid
		for _, name := range c.Table {
			grid, ok := report.Find(grids, name)
			if !ok {
				return fmt.Errorf("unknown table %q (available: %v)", name, report.Names(grids))
			}
			selected = append(selected, grid)
		}
		grids = selected
	}

	paths, err := report.ExportCSV(c.Dir, grids)
	if err != nil {
		return err
	}
	for _, path := range paths {
		logger.Info("Wrote table", "path", path)
	}
	return nil
}

// CompareCmd solves both soft 17 rules concurrently and prints them side by side.
type CompareCmd struct{}

func (c *CompareCmd) Run(g *Globals) error {
	r, logger, err := g.setup()
	if err != nil {
		return err
	}

	s17, h17 := r, r
	s17.DealerHitsSoft17 = false
	h17.DealerHitsSoft17 = true

	variants, err := edge.Compare(context.Background(), []rules.Rules{s17, h17}, solver.WithLogger(logger))
	if err != nil {
		return err
	}
	if len(variants) != 2 {
		return errors.New("expected two solved variants")
	}

	for _, v := range variants {
		fmt.Print(report.Summary(v.Rules.Name(), v.Report))
	}
	fmt.Printf("Cost of H17: %.4f%%\n\n", (variants[0].Report.EV-variants[1].Report.EV)*100)

	rows := hand.ChartRows()
	for _, up := range hand.Upcards() {
		for _, p := range rows {
			a := variants[0].Result.Final.Decisions.At(p, up)
			b := variants[1].Result.Final.Decisions.At(p, up)
			if a != b {
				fmt.Printf("%-4s vs %-4s  S17 %-5s H17 %s\n", p, up, a, b)
			}
		}
		for _, p := range hand.Pairs() {
			a := variants[0].Result.FinalPairs.Decisions.At(p, up)
			b := variants[1].Result.FinalPairs.Decisions.At(p, up)
			if a != b {
				fmt.Printf("%-5s vs %-4s S17 %-5s H17 %s\n", p, up, a, b)
			}
		}
	}
	return nil
}

// BrowseCmd opens the interactive table browser.
type BrowseCmd struct{}

func (c *BrowseCmd) Run(g *Globals) error {
	res, rep, _, err := g.solve()
	if err != nil {
		return err
	}

	grids := append(report.Strategy(res), report.Tables(res, &rep)...)
	header := report.Summary(res.Rules.Name(), rep)
	return browse.Run(header, grids)
}

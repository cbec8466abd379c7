package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/blackjack-ev/internal/edge"
	"github.com/lox/blackjack-ev/internal/rules"
	"github.com/lox/blackjack-ev/internal/solver"
)

// Globals are the flags shared by every command.
type Globals struct {
	Config    string `short:"c" type:"path" default:"blackjack.hcl" help:"HCL rules file (defaults apply when it does not exist)"`
	HitSoft17 bool   `name:"hit-soft-17" help:"Dealer hits soft 17 (overrides the config file)"`
	Debug     bool   `help:"Enable debug logging"`
	NoColor   bool   `help:"Disable coloured output"`
}

func (g *Globals) setup() (rules.Rules, *log.Logger, error) {
	if g.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	cfg, err := rules.LoadConfig(g.Config)
	if err != nil {
		return rules.Rules{}, nil, err
	}

	logger, err := newLogger(cfg.LogLevel, g.Debug)
	if err != nil {
		return rules.Rules{}, nil, err
	}

	r, err := cfg.Resolve()
	if err != nil {
		return rules.Rules{}, nil, fmt.Errorf("%s: %w", g.Config, err)
	}
	if g.HitSoft17 {
		r.DealerHitsSoft17 = true
	}
	logger.Debug("Loaded rules", "config", g.Config, "rules", r)
	return r, logger, nil
}

// solve runs the solver and the house edge aggregation for the configured
// rules.
func (g *Globals) solve() (*solver.Result, edge.Report, *log.Logger, error) {
	r, logger, err := g.setup()
	if err != nil {
		return nil, edge.Report{}, nil, err
	}

	res, err := solver.New(r, solver.WithLogger(logger), solver.WithClock(quartz.NewReal())).Solve()
	if err != nil {
		return nil, edge.Report{}, nil, err
	}

	rep := edge.Compute(res)
	logger.Info("Solved", "rules", r.Name(), "ev", rep.EV, "elapsed", res.Elapsed)
	return res, rep, logger, nil
}

func newLogger(level string, debug bool) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if debug {
		lvl = log.DebugLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "blackjack-ev",
	}), nil
}

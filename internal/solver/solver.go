// Package solver builds the chained expected-value tables of a blackjack
// game: standing, hitting, doubling, splitting and surrender, each derived
// from the ones before it.
package solver

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack-ev/internal/hand"
	"github.com/lox/blackjack-ev/internal/outcome"
	"github.com/lox/blackjack-ev/internal/rules"
)

// Result holds every table produced by one solve. Tables are never modified
// after Solve returns.
type Result struct {
	Rules rules.Rules

	// Standing is the EV of standing with one dealer card known.
	Standing *EVTable
	Hitting  *EVTable
	Doubling *EVTable
	Split    *PairEVTable

	HitStand       Stage
	HitStandDouble Stage
	SplitCombined  PairStage

	// Final and FinalPairs include surrender.
	Final      Stage
	FinalPairs PairStage

	Elapsed time.Duration
}

// Decision returns the final decision for a starting hand, which may be a pair.
func (r *Result) Decision(player, dealer hand.Hand) Decision {
	if player.Kind() == hand.Pair {
		return r.FinalPairs.Decisions.At(player, dealer)
	}
	return r.Final.Decisions.At(player, dealer)
}

// EV returns the final expected value for a starting hand, which may be a pair.
func (r *Result) EV(player, dealer hand.Hand) float64 {
	if player.Kind() == hand.Pair {
		return r.FinalPairs.EV.At(player, dealer)
	}
	return r.Final.EV.At(player, dealer)
}

// Solver runs the table chain for one rule set.
type Solver struct {
	rules  rules.Rules
	logger *log.Logger
	clock  quartz.Clock
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the logger used to report stage progress.
func WithLogger(logger *log.Logger) Option {
	return func(s *Solver) {
		s.logger = logger
	}
}

// WithClock sets the clock used to time stages.
func WithClock(clock quartz.Clock) Option {
	return func(s *Solver) {
		s.clock = clock
	}
}

// New creates a solver for r.
func New(r rules.Rules, opts ...Option) *Solver {
	s := &Solver{
		rules:  r,
		logger: log.New(io.Discard),
		clock:  quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "solver", "rules", r.Name())
	return s
}

// Rules returns the rules the solver was created with.
func (s *Solver) Rules() rules.Rules {
	return s.rules
}

// Solve builds every table in dependency order and verifies each one before
// the next stage reads it.
func (s *Solver) Solve() (*Result, error) {
	if err := s.rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	if err := CheckDistributions(); err != nil {
		return nil, err
	}

	start := s.clock.Now()
	res := &Result{Rules: s.rules}

	err := s.stage("standing", func() error {
		res.Standing = BuildStandingChain(s.rules)
		return res.Standing.Verify("standing")
	})
	if err != nil {
		return nil, err
	}

	err = s.stage("hitting", func() error {
		res.Hitting, res.HitStand = BuildHitting(s.rules, res.Standing)
		if err := res.Hitting.Verify("hitting"); err != nil {
			return err
		}
		return res.HitStand.Verify("hit/stand")
	})
	if err != nil {
		return nil, err
	}

	err = s.stage("doubling", func() error {
		res.Doubling, res.HitStandDouble = BuildDoubling(s.rules, res.Standing, res.HitStand)
		if err := res.Doubling.Verify("doubling"); err != nil {
			return err
		}
		return res.HitStandDouble.Verify("hit/stand/double")
	})
	if err != nil {
		return nil, err
	}

	err = s.stage("splitting", func() error {
		res.Split, res.SplitCombined = BuildSplitting(res.Standing, res.HitStandDouble)
		if err := res.Split.Verify("splitting"); err != nil {
			return err
		}
		return res.SplitCombined.Verify("split combined")
	})
	if err != nil {
		return nil, err
	}

	err = s.stage("surrender", func() error {
		res.Final = ApplySurrender(res.HitStandDouble)
		res.FinalPairs = ApplyPairSurrender(res.SplitCombined)
		if err := res.Final.Verify("final"); err != nil {
			return err
		}
		return res.FinalPairs.Verify("final pairs")
	})
	if err != nil {
		return nil, err
	}

	res.Elapsed = s.clock.Since(start)
	s.logger.Debug("Tables solved", "elapsed", res.Elapsed)
	return res, nil
}

func (s *Solver) stage(name string, build func() error) error {
	start := s.clock.Now()
	if err := build(); err != nil {
		s.logger.Error("Stage failed", "stage", name, "error", err)
		return fmt.Errorf("%s stage: %w", name, err)
	}
	s.logger.Debug("Stage complete", "stage", name, "elapsed", s.clock.Since(start))
	return nil
}

// CheckDistributions validates the outcome distribution of every hand the
// engine draws from, in both hole-card modes.
func CheckDistributions() error {
	hands := hand.Display()
	for _, r := range hand.Ranks {
		hands = append(hands, hand.SingleOf(r))
	}
	for _, h := range hands {
		if cannotDraw(h) {
			continue
		}
		for _, hole := range []bool{false, true} {
			if err := outcome.Outcomes(h, hole).Validate(); err != nil {
				return fmt.Errorf("outcomes of %s (hole card %v): %w", h, hole, err)
			}
		}
	}
	return nil
}

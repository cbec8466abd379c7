package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/blackjack-ev/internal/hand"
)

// Sentinel pre-fills every EV cell; no real expected value comes close to it.
const Sentinel = -1e8

// ErrUnresolved is returned by Verify when a table still holds unfilled cells,
// which means a lookup ran ahead of the solve order.
var ErrUnresolved = errors.New("table has unresolved cells")

// EVTable maps (player hand, dealer hand) to an expected value. Both axes are
// indexed by hand.Index.
type EVTable [hand.Count][hand.Count]float64

// NewEVTable returns a table with every cell set to fill.
func NewEVTable(fill float64) *EVTable {
	t := new(EVTable)
	for i := range t {
		for j := range t[i] {
			t[i][j] = fill
		}
	}
	return t
}

// At returns the value for player against dealer.
func (t *EVTable) At(player, dealer hand.Hand) float64 {
	return t[player.Index()][dealer.Index()]
}

// Add accumulates v into a cell.
func (t *EVTable) Add(player, dealer hand.Hand, v float64) {
	t[player.Index()][dealer.Index()] += v
}

func (t *EVTable) set(player, dealer hand.Hand, v float64) {
	t[player.Index()][dealer.Index()] = v
}

// Verify returns ErrUnresolved if any cell still holds the Sentinel.
func (t *EVTable) Verify(name string) error {
	var missing []string
	for i := range t {
		for j := range t[i] {
			if t[i][j] == Sentinel {
				missing = append(missing, hand.At(i).String()+"/"+hand.At(j).String())
			}
		}
	}
	return unresolved(name, missing)
}

// PairEVTable maps (pair, dealer hand) to an expected value.
type PairEVTable [hand.PairCount][hand.Count]float64

// NewPairEVTable returns a pair table with every cell set to fill.
func NewPairEVTable(fill float64) *PairEVTable {
	t := new(PairEVTable)
	for i := range t {
		for j := range t[i] {
			t[i][j] = fill
		}
	}
	return t
}

// At returns the value for the pair against dealer.
func (t *PairEVTable) At(pair, dealer hand.Hand) float64 {
	return t[pair.PairIndex()][dealer.Index()]
}

// Add accumulates v into a cell.
func (t *PairEVTable) Add(pair, dealer hand.Hand, v float64) {
	t[pair.PairIndex()][dealer.Index()] += v
}

func (t *PairEVTable) set(pair, dealer hand.Hand, v float64) {
	t[pair.PairIndex()][dealer.Index()] = v
}

// Verify returns ErrUnresolved if any cell still holds the Sentinel.
func (t *PairEVTable) Verify(name string) error {
	pairs := hand.Pairs()
	var missing []string
	for i := range t {
		for j := range t[i] {
			if t[i][j] == Sentinel {
				missing = append(missing, pairs[i].String()+"/"+hand.At(j).String())
			}
		}
	}
	return unresolved(name, missing)
}

// DecisionTable maps (player hand, dealer hand) to the best decision.
type DecisionTable [hand.Count][hand.Count]Decision

// At returns the decision for player against dealer.
func (t *DecisionTable) At(player, dealer hand.Hand) Decision {
	return t[player.Index()][dealer.Index()]
}

func (t *DecisionTable) set(player, dealer hand.Hand, d Decision) {
	t[player.Index()][dealer.Index()] = d
}

// Verify returns ErrUnresolved if any cell has no decision.
func (t *DecisionTable) Verify(name string) error {
	var missing []string
	for i := range t {
		for j := range t[i] {
			if !t[i][j].resolved() {
				missing = append(missing, hand.At(i).String()+"/"+hand.At(j).String())
			}
		}
	}
	return unresolved(name, missing)
}

// PairDecisionTable maps (pair, dealer hand) to the best decision.
type PairDecisionTable [hand.PairCount][hand.Count]Decision

// At returns the decision for the pair against dealer.
func (t *PairDecisionTable) At(pair, dealer hand.Hand) Decision {
	return t[pair.PairIndex()][dealer.Index()]
}

func (t *PairDecisionTable) set(pair, dealer hand.Hand, d Decision) {
	t[pair.PairIndex()][dealer.Index()] = d
}

// Verify returns ErrUnresolved if any cell has no decision.
func (t *PairDecisionTable) Verify(name string) error {
	pairs := hand.Pairs()
	var missing []string
	for i := range t {
		for j := range t[i] {
			if !t[i][j].resolved() {
				missing = append(missing, pairs[i].String()+"/"+hand.At(j).String())
			}
		}
	}
	return unresolved(name, missing)
}

// Stage is a combined table: the best EV over the actions considered so far
// and the decision that achieves it.
type Stage struct {
	EV        *EVTable
	Decisions *DecisionTable
}

func newStage() Stage {
	return Stage{EV: NewEVTable(Sentinel), Decisions: new(DecisionTable)}
}

// Verify checks both halves of the stage.
func (s Stage) Verify(name string) error {
	if err := s.EV.Verify(name); err != nil {
		return err
	}
	return s.Decisions.Verify(name + " decisions")
}

// PairStage is the combined table for pairs.
type PairStage struct {
	EV        *PairEVTable
	Decisions *PairDecisionTable
}

func newPairStage() PairStage {
	return PairStage{EV: NewPairEVTable(Sentinel), Decisions: new(PairDecisionTable)}
}

// Verify checks both halves of the stage.
func (s PairStage) Verify(name string) error {
	if err := s.EV.Verify(name); err != nil {
		return err
	}
	return s.Decisions.Verify(name + " decisions")
}

func unresolved(name string, missing []string) error {
	if len(missing) == 0 {
		return nil
	}
	const shown = 5
	sample := missing
	if len(sample) > shown {
		sample = sample[:shown]
	}
	return fmt.Errorf("%s: %w: %d cells (%s)", name, ErrUnresolved, len(missing), strings.Join(sample, ", "))
}

// Package outcome computes the probability-weighted successors of a hand
// after one more card, including the dealer hole-card correction.
package outcome

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/lox/blackjack-ev/internal/hand"
)

// Tolerance is the allowed deviation of a distribution's total from 1.
const Tolerance = 1e-9

// ErrNotNormalised is returned by Validate when probabilities do not sum to 1.
var ErrNotNormalised = errors.New("outcome probabilities do not sum to 1")

// Outcome is one successor hand and the chance of reaching it.
type Outcome struct {
	Rank hand.Rank
	Hand hand.Hand
	Prob float64
}

// Distribution holds one outcome per rank, in hand.Ranks order.
type Distribution [hand.RankCount]Outcome

// Outcomes returns every hand reachable from h by drawing one card.
//
// When holeCard is set and h is a dealer hand that could still turn into a
// natural (H10 or S11), the card completing the natural is impossible: the
// game only continues because the dealer did not have blackjack. That rank
// gets probability zero and the remaining nine are renormalised by the sum
// of their weights. holeCard has no effect on any other hand.
func Outcomes(h hand.Hand, holeCard bool) Distribution {
	var d Distribution
	excluded, conditioned := impossibleHoleCard(h, holeCard)

	norm := 1.0
	if conditioned {
		norm = 0
		for _, r := range hand.Ranks {
			if r != excluded {
				norm += r.Probability()
			}
		}
	}

	for i, r := range hand.Ranks {
		p := r.Probability()
		switch {
		case conditioned && r == excluded:
			p = 0
		case conditioned:
			p /= norm
		}
		d[i] = Outcome{Rank: r, Hand: h.Draw(r), Prob: p}
	}
	return d
}

func impossibleHoleCard(h hand.Hand, holeCard bool) (hand.Rank, bool) {
	if !holeCard {
		return 0, false
	}
	switch h {
	case hand.HardTotal(10):
		return hand.Ace, true
	case hand.SoftTotal(hand.MinSoft):
		return hand.Ten, true
	}
	return 0, false
}

// Probabilities returns the outcome weights in rank order.
func (d Distribution) Probabilities() []float64 {
	out := make([]float64, len(d))
	for i, o := range d {
		out[i] = o.Prob
	}
	return out
}

// Sum returns the total probability mass.
func (d Distribution) Sum() float64 {
	return floats.Sum(d.Probabilities())
}

// Of returns the probability of drawing r.
func (d Distribution) Of(r hand.Rank) float64 {
	return d[r.Index()].Prob
}

// Validate returns ErrNotNormalised when the distribution does not sum to 1.
func (d Distribution) Validate() error {
	if sum := d.Sum(); math.Abs(sum-1) > Tolerance {
		return fmt.Errorf("%w: got %.12f", ErrNotNormalised, sum)
	}
	return nil
}

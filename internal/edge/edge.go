// Package edge folds the solved tables into the expected return of a whole
// hand of blackjack, starting from the initial deal.
package edge

import (
	"github.com/lox/blackjack-ev/internal/hand"
	"github.com/lox/blackjack-ev/internal/solver"
)

// Report is the expected value of the game under optimal play and where it
// comes from.
type Report struct {
	// EV is the player's expected return per initial bet. The house edge is -EV.
	EV float64

	// Breakdown and PairBreakdown hold each starting hand's weighted
	// contribution to EV against each dealer upcard.
	Breakdown     *solver.EVTable
	PairBreakdown *solver.PairEVTable

	// ByUpcard is the contribution of each dealer upcard, in hand.Ranks order.
	ByUpcard [hand.RankCount]float64
}

// HouseEdge returns the house advantage as a fraction of the initial bet.
func (r Report) HouseEdge() float64 {
	return -r.EV
}

// Compute enumerates every ordered pair of player cards against every dealer
// upcard and accumulates the probability-weighted value of each deal.
func Compute(res *solver.Result) Report {
	rep := Report{
		Breakdown:     solver.NewEVTable(0),
		PairBreakdown: solver.NewPairEVTable(0),
	}
	payouts := res.Rules.Payouts

	for _, c1 := range hand.Ranks {
		for _, c2 := range hand.Ranks {
			for _, up := range hand.Ranks {
				player := hand.Deal(c1, c2)
				dealer := hand.Upcard(up)

				value := res.EV(player, dealer)
				dealerNatural := payouts.Loss
				if hand.IsNatural(player, 2) {
					value = payouts.Blackjack
					dealerNatural = payouts.Push
				}

				weight := c1.Probability() * c2.Probability() * up.Probability()
				contribution := weight * peek(up, value, dealerNatural)

				rep.EV += contribution
				rep.ByUpcard[up.Index()] += contribution
				if player.Kind() == hand.Pair {
					rep.PairBreakdown.Add(player, dealer, contribution)
				} else {
					rep.Breakdown.Add(player, dealer, contribution)
				}
			}
		}
	}
	return rep
}

// peek weights a hand's value by whether the dealer turns out to hold a
// natural. Only an ace or ten upcard can hide one; the solved tables already
// condition on the dealer not having it.
func peek(up hand.Rank, value, dealerNatural float64) float64 {
	var hole hand.Rank
	switch up {
	case hand.Ace:
		hole = hand.Ten
	case hand.Ten:
		hole = hand.Ace
	default:
		return value
	}
	p := hole.Probability()
	return p*dealerNatural + (1-p)*value
}

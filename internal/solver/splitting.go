package solver

import (
	"github.com/lox/blackjack-ev/internal/hand"
	"github.com/lox/blackjack-ev/internal/outcome"
)

// SplitEV returns the value of splitting pair against dealer.
//
// Each split hand starts from the lone pair card and draws one more. Drawing
// the same rank again (probability q) re-splits, which repeats the whole
// situation; every other card (summing to k) leads to a playable two-card
// hand. Each split doubles the number of hands in play, so the re-splits form
// a geometric series in 2q whose closed form is 2k / (1 - 2q).
//
// Split aces receive exactly one card each and stand; every other pair plays
// on using the hit/stand/double stage.
func SplitEV(pair, dealer hand.Hand, stand *EVTable, hsd Stage) float64 {
	var k, q float64
	aces := pair.Rank() == hand.Ace
	for _, o := range outcome.Outcomes(hand.SingleOf(pair.Rank()), false) {
		switch {
		case o.Hand == pair:
			q = o.Prob
		case aces:
			k += o.Prob * stand.At(o.Hand, dealer)
		default:
			k += o.Prob * hsd.EV.At(o.Hand, dealer)
		}
	}
	return (2 * k) / (1 - 2*q)
}

// BuildSplitting returns the EV of splitting each pair and the stage that
// picks between splitting and playing the pair as its unsplit total.
func BuildSplitting(stand *EVTable, hsd Stage) (*PairEVTable, PairStage) {
	split := NewPairEVTable(Sentinel)
	combined := newPairStage()

	for _, pair := range hand.Pairs() {
		noSplit := pair.Unsplit()
		for _, dealer := range hand.Order() {
			ev := SplitEV(pair, dealer, stand, hsd)
			split.set(pair, dealer, ev)

			fallback := hsd.Decisions.At(noSplit, dealer)
			if ev > hsd.EV.At(noSplit, dealer) {
				fallback.Split = true
				combined.EV.set(pair, dealer, ev)
			} else {
				combined.EV.set(pair, dealer, hsd.EV.At(noSplit, dealer))
			}
			combined.Decisions.set(pair, dealer, fallback)
		}
	}
	return split, combined
}

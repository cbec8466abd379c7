package solver

import (
	"github.com/lox/blackjack-ev/internal/hand"
	"github.com/lox/blackjack-ev/internal/outcome"
	"github.com/lox/blackjack-ev/internal/rules"
)

// BuildDoubling returns the EV of doubling (one card, then a forced stand,
// at twice the stake) and the hit/stand/double stage.
//
// Doubling is computed for every hand so later formulas can chain through
// it; in play it is only offered on the first two cards of a hand, which
// is why a winning double keeps its hit-or-stand fallback.
func BuildDoubling(r rules.Rules, stand *EVTable, hs Stage) (*EVTable, Stage) {
	dbl := NewEVTable(Sentinel)
	hsd := newStage()

	order := hand.Order()
	for _, player := range order {
		var dist outcome.Distribution
		draws := !cannotDraw(player)
		if draws {
			dist = outcome.Outcomes(player, false)
		}

		for _, dealer := range order {
			ev := 2 * r.Payouts.Loss
			if draws {
				ev = 0
				for _, o := range dist {
					ev += 2 * o.Prob * stand.At(o.Hand, dealer)
				}
			}
			dbl.set(player, dealer, ev)

			fallback := hs.Decisions.At(player, dealer)
			if ev > hs.EV.At(player, dealer) {
				fallback.Double = true
				hsd.EV.set(player, dealer, ev)
			} else {
				hsd.EV.set(player, dealer, hs.EV.At(player, dealer))
			}
			hsd.Decisions.set(player, dealer, fallback)
		}
	}
	return dbl, hsd
}

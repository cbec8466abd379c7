package solver

import (
	"github.com/lox/blackjack-ev/internal/hand"
	"github.com/lox/blackjack-ev/internal/outcome"
	"github.com/lox/blackjack-ev/internal/rules"
)

// cannotDraw reports hands for which drawing is a guaranteed loss: busted
// totals and hard 21.
func cannotDraw(h hand.Hand) bool {
	return h.Busted() || h == hand.HardTotal(hand.Blackjack)
}

// BuildHitting returns the EV of taking one card and continuing optimally,
// and the combined hit-or-stand stage. The two are built together because
// the value of hitting depends on the best hit-or-stand value of each
// resulting hand, which solve order has already filled.
func BuildHitting(r rules.Rules, stand *EVTable) (*EVTable, Stage) {
	hit := NewEVTable(Sentinel)
	hs := newStage()

	order := hand.Order()
	for _, player := range order {
		var dist outcome.Distribution
		draws := !cannotDraw(player)
		if draws {
			dist = outcome.Outcomes(player, false)
		}

		for _, dealer := range order {
			ev := r.Payouts.Loss
			if draws {
				ev = 0
				for _, o := range dist {
					ev += o.Prob * hs.EV.At(o.Hand, dealer)
				}
			}
			hit.set(player, dealer, ev)

			if sv := stand.At(player, dealer); ev > sv {
				hs.EV.set(player, dealer, ev)
				hs.Decisions.set(player, dealer, Decision{Play: Hit})
			} else {
				hs.EV.set(player, dealer, sv)
				hs.Decisions.set(player, dealer, Decision{Play: Stand})
			}
		}
	}
	return hit, hs
}

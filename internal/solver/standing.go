package solver

import (
	"github.com/lox/blackjack-ev/internal/hand"
	"github.com/lox/blackjack-ev/internal/outcome"
	"github.com/lox/blackjack-ev/internal/rules"
)

// BuildStanding returns the EV of standing on every player total against
// every dealer total, given that the dealer currently holds dealerCards
// cards. When the dealer must draw, the value is the weighted sum over the
// dealer's next card of next's entry for the resulting dealer hand; next is
// the table for one more dealer card. A nil next makes the table its own
// lookup, which is how the three-card table is built: solve order
// guarantees the dealer outcome is filled before it is read. A busted
// player loses outright whatever the dealer goes on to draw.
func BuildStanding(r rules.Rules, dealerCards int, next *EVTable) *EVTable {
	t := NewEVTable(Sentinel)
	if next == nil {
		next = t
	}
	holeCard := dealerCards == 1

	order := hand.Order()
	for _, player := range order {
		for _, dealer := range order {
			if player.Busted() || !r.DealerShouldHit(dealer) {
				t.set(player, dealer, r.Payout(player, rules.DrawnCards, dealer, dealerCards))
				continue
			}

			var ev float64
			for _, o := range outcome.Outcomes(dealer, holeCard) {
				ev += o.Prob * next.At(player, o.Hand)
			}
			t.set(player, dealer, ev)
		}
	}
	return t
}

// BuildStandingChain builds the three, two and one dealer card tables in
// turn and returns the one-card table, the only one used downstream. The
// hole-card correction applies only while a single dealer card is known.
func BuildStandingChain(r rules.Rules) *EVTable {
	three := BuildStanding(r, 3, nil)
	two := BuildStanding(r, 2, three)
	return BuildStanding(r, 1, two)
}

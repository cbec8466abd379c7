// Package rules holds the table rules the solver is parameterised by: the
// dealer's soft 17 behaviour and the payout for each way a hand can end.
package rules

import (
	"errors"
	"fmt"
	"math"

	"github.com/lox/blackjack-ev/internal/hand"
)

// DrawnCards is the card count the solver uses for player hands at showdown.
// Naturals are settled before any decision is made.
const DrawnCards = 3

// Payouts are expressed in units of the original bet.
type Payouts struct {
	Win       float64
	Loss      float64
	Push      float64
	Blackjack float64
}

// Rules is the complete set of table rules the solver understands.
type Rules struct {
	DealerHitsSoft17 bool
	Payouts          Payouts
}

// Default returns the standard game: dealer stands on all 17s, even money
// wins and 3:2 blackjacks.
func Default() Rules {
	return Rules{
		DealerHitsSoft17: false,
		Payouts: Payouts{
			Win:       1.0,
			Loss:      -1.0,
			Push:      0.0,
			Blackjack: 1.5,
		},
	}
}

// Name returns the conventional short name of the soft 17 rule.
func (r Rules) Name() string {
	if r.DealerHitsSoft17 {
		return "H17"
	}
	return "S17"
}

func (r Rules) String() string {
	return fmt.Sprintf("%s win=%g loss=%g push=%g blackjack=%g",
		r.Name(), r.Payouts.Win, r.Payouts.Loss, r.Payouts.Push, r.Payouts.Blackjack)
}

// Validate ensures the payouts are usable by the solver.
func (r Rules) Validate() error {
	p := r.Payouts
	for _, payout := range []struct {
		name  string
		value float64
	}{
		{"win", p.Win},
		{"loss", p.Loss},
		{"push", p.Push},
		{"blackjack", p.Blackjack},
	} {
		if math.IsNaN(payout.value) || math.IsInf(payout.value, 0) {
			return fmt.Errorf("%s payout must be finite", payout.name)
		}
	}
	if p.Loss >= p.Push {
		return errors.New("loss payout must be less than push payout")
	}
	if p.Push >= p.Win {
		return errors.New("push payout must be less than win payout")
	}
	if p.Blackjack < p.Win {
		return errors.New("blackjack payout cannot be less than win payout")
	}
	return nil
}

// DealerShouldHit reports whether the house rules force the dealer to draw
// to h.
func (r Rules) DealerShouldHit(h hand.Hand) bool {
	total := h.Total()
	switch {
	case total <= 16:
		return true
	case total >= 18:
		return false
	case !h.IsSoft():
		return false
	default:
		return r.DealerHitsSoft17
	}
}

// Payout returns the result of a finished hand given both final totals and
// how many cards each side holds.
func (r Rules) Payout(player hand.Hand, playerCards int, dealer hand.Hand, dealerCards int) float64 {
	p := r.Payouts
	pv, dv := player.Total(), dealer.Total()
	dealerNatural := hand.IsNatural(dealer, dealerCards)

	switch {
	case pv > hand.Blackjack:
		return p.Loss
	case hand.IsNatural(player, playerCards):
		if dealerNatural {
			return p.Push
		}
		return p.Blackjack
	case dealerNatural:
		return p.Loss
	case dv > hand.Blackjack:
		return p.Win
	case dv == pv:
		return p.Push
	case dv > pv:
		return p.Loss
	default:
		return p.Win
	}
}

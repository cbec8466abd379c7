package outcome

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/lox/blackjack-ev/internal/hand"
)

func TestEveryDistributionSumsToOne(t *testing.T) {
	starts := append(hand.Display(), hand.SingleOf(hand.Ace), hand.SingleOf(hand.Eight), hand.SingleOf(hand.Ten))

	for _, h := range starts {
		if h.Busted() {
			continue
		}
		for _, hole := range []bool{false, true} {
			d := Outcomes(h, hole)
			require.NoError(t, d.Validate(), "%s hole=%v", h, hole)
			assert.True(t, scalar.EqualWithinAbs(1, d.Sum(), Tolerance), "%s hole=%v sums to %v", h, hole, d.Sum())
		}
	}
}

func TestHoleCardTenShowing(t *testing.T) {
	h := hand.HardTotal(10)
	plain := Outcomes(h, false)
	hole := Outcomes(h, true)

	assert.Equal(t, 0.0, hole.Of(hand.Ace))
	assert.Equal(t, hand.SoftTotal(21), hole[hand.Ace.Index()].Hand)

	norm := 1 - hand.Ace.Probability()
	for _, r := range hand.Ranks {
		if r == hand.Ace {
			continue
		}
		assert.InDelta(t, plain.Of(r)/norm, hole.Of(r), 1e-15, "rank %s", r)
	}
}

func TestHoleCardAceShowing(t *testing.T) {
	h := hand.SoftTotal(11)
	plain := Outcomes(h, false)
	hole := Outcomes(h, true)

	assert.Equal(t, 0.0, hole.Of(hand.Ten))
	assert.Equal(t, hand.SoftTotal(21), hole[hand.Ten.Index()].Hand)

	norm := 1 - hand.Ten.Probability()
	for _, r := range hand.Ranks {
		if r == hand.Ten {
			continue
		}
		assert.InDelta(t, plain.Of(r)/norm, hole.Of(r), 1e-15, "rank %s", r)
	}
}

func TestHoleCardIgnoredForOtherHands(t *testing.T) {
	for _, h := range []hand.Hand{hand.HardTotal(9), hand.HardTotal(12), hand.SoftTotal(12), hand.SingleOf(hand.Ace)} {
		assert.Equal(t, Outcomes(h, false), Outcomes(h, true), h.String())
	}
}

func TestOutcomesFollowHandAlgebra(t *testing.T) {
	d := Outcomes(hand.SingleOf(hand.Eight), false)
	assert.Equal(t, hand.PairOf(hand.Eight), d[hand.Eight.Index()].Hand)
	assert.Equal(t, hand.SoftTotal(19), d[hand.Ace.Index()].Hand)
	assert.Equal(t, hand.HardTotal(18), d[hand.Ten.Index()].Hand)
	assert.Equal(t, hand.Ten.Probability(), d.Of(hand.Ten))
}

func TestValidateRejectsBrokenDistribution(t *testing.T) {
	d := Outcomes(hand.HardTotal(12), false)
	d[0].Prob = 0
	assert.ErrorIs(t, d.Validate(), ErrNotNormalised)
}

package edge

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/lox/blackjack-ev/internal/hand"
	"github.com/lox/blackjack-ev/internal/rules"
	"github.com/lox/blackjack-ev/internal/solver"
)

func solve(t *testing.T, r rules.Rules) *solver.Result {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	res, err := solver.New(r, solver.WithLogger(logger)).Solve()
	require.NoError(t, err)
	return res
}

func TestDefaultGameIsNearlyEven(t *testing.T) {
	rep := Compute(solve(t, rules.Default()))

	// Infinite shoe, S17, double any two, double and resplit after splits,
	// late surrender: the house keeps a fraction of a percent.
	assert.Less(t, rep.EV, 0.0)
	assert.Greater(t, rep.EV, -0.01)
	assert.InDelta(t, -0.0034378, rep.EV, 1e-6)
	assert.Equal(t, -rep.EV, rep.HouseEdge())
}

func TestBreakdownSumsToEV(t *testing.T) {
	rep := Compute(solve(t, rules.Default()))

	var total float64
	for i := range rep.Breakdown {
		total += floats.Sum(rep.Breakdown[i][:])
	}
	for i := range rep.PairBreakdown {
		total += floats.Sum(rep.PairBreakdown[i][:])
	}
	assert.InDelta(t, rep.EV, total, 1e-12)
	assert.InDelta(t, rep.EV, floats.Sum(rep.ByUpcard[:]), 1e-12)
}

func TestBreakdownOnlyUsesStartingCells(t *testing.T) {
	rep := Compute(solve(t, rules.Default()))

	for _, player := range hand.Order() {
		for _, dealer := range hand.Order() {
			if !hand.IsUpcard(dealer) {
				assert.Zero(t, rep.Breakdown.At(player, dealer), "%s vs %s", player, dealer)
			}
		}
	}
	assert.Zero(t, rep.Breakdown.At(hand.HardTotal(4), hand.HardTotal(6)), "2,2 is a pair")
	assert.NotZero(t, rep.PairBreakdown.At(hand.PairOf(hand.Two), hand.HardTotal(6)))
}

func TestNaturalOverride(t *testing.T) {
	res := solve(t, rules.Default())
	rep := Compute(res)

	pAce, pTen := hand.Ace.Probability(), hand.Ten.Probability()
	weight := 2 * pAce * pTen // A,10 and 10,A

	// against a ten upcard the dealer natural pushes the player's natural
	expected := weight * pTen * (pAce*0 + (1-pAce)*1.5)
	assert.InDelta(t, expected, rep.Breakdown.At(hand.SoftTotal(21), hand.HardTotal(10)), 1e-15)

	// against a six nothing can interfere
	expected = weight * hand.Six.Probability() * 1.5
	assert.InDelta(t, expected, rep.Breakdown.At(hand.SoftTotal(21), hand.HardTotal(6)), 1e-15)
}

func TestHitSoft17CostsThePlayer(t *testing.T) {
	h17 := rules.Default()
	h17.DealerHitsSoft17 = true

	variants, err := Compare(context.Background(), []rules.Rules{rules.Default(), h17})
	require.NoError(t, err)
	require.Len(t, variants, 2)

	assert.Equal(t, "S17", variants[0].Rules.Name())
	assert.Equal(t, "H17", variants[1].Rules.Name())
	assert.Less(t, variants[1].Report.EV, variants[0].Report.EV)
	assert.InDelta(t, -0.0054790, variants[1].Report.EV, 1e-6)
}

func TestSixToFiveBlackjackCostsThePlayer(t *testing.T) {
	sixFive := rules.Default()
	sixFive.Payouts.Blackjack = 1.2

	full := Compute(solve(t, rules.Default()))
	reduced := Compute(solve(t, sixFive))

	// the payout only enters through naturals, so the difference is exact
	pAce, pTen := hand.Ace.Probability(), hand.Ten.Probability()
	natural := 2 * pAce * pTen
	dealerNatural := pTen*pAce + pAce*pTen // ten showing with ace hole, ace showing with ten hole
	assert.InDelta(t, natural*(1-dealerNatural)*0.3, full.EV-reduced.EV, 1e-12)
}

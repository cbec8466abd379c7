package rules

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack-ev/internal/hand"
)

func TestDealerShouldHit(t *testing.T) {
	s17 := Default()
	h17 := Default()
	h17.DealerHitsSoft17 = true

	tests := []struct {
		hand    string
		s17Hits bool
		h17Hits bool
	}{
		{"H2", true, true},
		{"H16", true, true},
		{"S16", true, true},
		{"H17", false, false},
		{"S17", false, true},
		{"S18", false, false},
		{"H18", false, false},
		{"H22", false, false},
		{"S11", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.hand, func(t *testing.T) {
			h := hand.MustParse(tt.hand)
			assert.Equal(t, tt.s17Hits, s17.DealerShouldHit(h), "S17")
			assert.Equal(t, tt.h17Hits, h17.DealerShouldHit(h), "H17")
		})
	}
}

func TestPayout(t *testing.T) {
	r := Default()

	tests := []struct {
		name        string
		player      string
		playerCards int
		dealer      string
		dealerCards int
		expected    float64
	}{
		{"player bust", "H22", 3, "H25", 3, -1.0},
		{"player natural", "S21", 2, "H20", 3, 1.5},
		{"both natural", "S21", 2, "S21", 2, 0.0},
		{"dealer natural", "H21", 3, "S21", 2, -1.0},
		{"dealer bust", "H12", 3, "H22", 3, 1.0},
		{"push", "H18", 3, "S18", 3, 0.0},
		{"dealer higher", "H18", 3, "H19", 3, -1.0},
		{"player higher", "S20", 3, "H17", 3, 1.0},
		{"three card 21 vs dealer three card 21", "S21", 3, "H21", 3, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Payout(hand.MustParse(tt.player), tt.playerCards, hand.MustParse(tt.dealer), tt.dealerCards)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Default().Validate())

	bad := Default()
	bad.Payouts.Loss = 0.5
	assert.Error(t, bad.Validate())

	bad = Default()
	bad.Payouts.Blackjack = 0.5
	assert.Error(t, bad.Validate())

	six5 := Default()
	six5.Payouts.Blackjack = 1.2
	assert.NoError(t, six5.Validate())
}

func TestValidateReportsFirstNonFinitePayout(t *testing.T) {
	bad := Default()
	bad.Payouts.Loss = math.Inf(-1)
	bad.Payouts.Push = math.NaN()
	bad.Payouts.Blackjack = math.Inf(1)

	for range 20 {
		err := bad.Validate()
		require.Error(t, err)
		assert.Equal(t, "loss payout must be finite", err.Error())
	}
}

func TestName(t *testing.T) {
	r := Default()
	assert.Equal(t, "S17", r.Name())
	r.DealerHitsSoft17 = true
	assert.Equal(t, "H17", r.Name())
}

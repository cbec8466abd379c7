package hand

import "fmt"

// Rank represents a blackjack card rank. Ten covers 10, J, Q and K.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Ace
)

// RankCount is the number of distinct blackjack ranks.
const RankCount = 10

// Ranks lists every rank in draw order.
var Ranks = [RankCount]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Ace}

// String returns the chart label of a rank ("2".."10", "A").
func (r Rank) String() string {
	if r == Ace {
		return "A"
	}
	if r >= Two && r <= Ten {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

// Value returns the pip value of the rank, counting an ace as 11.
func (r Rank) Value() int {
	return int(r)
}

// Index returns the rank's position in Ranks.
func (r Rank) Index() int {
	return int(r - Two)
}

// Probability returns the chance of drawing the rank from an infinite shoe
// built from standard 52-card decks.
func (r Rank) Probability() float64 {
	if r == Ten {
		return 16.0 / 52.0
	}
	return 4.0 / 52.0
}

// ParseRank parses "2".."10", "T", "J", "Q", "K" or "A".
func ParseRank(s string) (Rank, error) {
	switch s {
	case "A", "a":
		return Ace, nil
	case "T", "t", "J", "j", "Q", "q", "K", "k", "10":
		return Ten, nil
	}
	if len(s) == 1 && s[0] >= '2' && s[0] <= '9' {
		return Rank(s[0] - '0'), nil
	}
	return 0, fmt.Errorf("%w: rank %q", ErrInvalid, s)
}

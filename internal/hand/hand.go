// Package hand models running blackjack hand totals and the card arithmetic
// that moves one total to the next.
package hand

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalid is returned when a hand or rank label cannot be parsed.
var ErrInvalid = errors.New("invalid hand")

// Kind tags the shape of a Hand.
type Kind uint8

const (
	// Hard totals count every ace as 1.
	Hard Kind = iota
	// Soft totals count exactly one ace as 11.
	Soft
	// Pair is two cards of one rank, the entry point of a split.
	Pair
	// Single is the one card left in a hand right after a split.
	Single
)

func (k Kind) String() string {
	switch k {
	case Hard:
		return "hard"
	case Soft:
		return "soft"
	case Pair:
		return "pair"
	case Single:
		return "single"
	default:
		return "unknown"
	}
}

const (
	// MaxHard is the largest hard total reachable: hitting hard 20 with a ten.
	MaxHard = 30
	// MinHard is the smallest two-card hard total.
	MinHard = 2
	// MinSoft is a lone ace.
	MinSoft = 11
	// Blackjack is the best total.
	Blackjack = 21
)

// Hand is a running hand total. Pair and Single hands carry the rank value
// (ace = 11) instead of a total.
type Hand struct {
	kind  Kind
	total int
}

// HardTotal returns the hard hand with total n.
func HardTotal(n int) Hand { return Hand{kind: Hard, total: n} }

// SoftTotal returns the soft hand with total n.
func SoftTotal(n int) Hand { return Hand{kind: Soft, total: n} }

// PairOf returns the two-card pair of rank r.
func PairOf(r Rank) Hand { return Hand{kind: Pair, total: r.Value()} }

// SingleOf returns the hand holding only a card of rank r.
func SingleOf(r Rank) Hand { return Hand{kind: Single, total: r.Value()} }

// Kind returns the hand's tag.
func (h Hand) Kind() Kind { return h.kind }

// Total returns the counted total. For pairs and singles it is the total of
// the equivalent unsplit hand.
func (h Hand) Total() int {
	switch h.kind {
	case Pair, Single:
		return h.Unsplit().total
	default:
		return h.total
	}
}

// Rank returns the rank of a Pair or Single hand.
func (h Hand) Rank() Rank {
	return Rank(h.total)
}

// IsSoft reports whether the hand counts an ace as 11.
func (h Hand) IsSoft() bool {
	return h.kind == Soft
}

// Busted reports whether the total is over 21.
func (h Hand) Busted() bool {
	return h.Total() > Blackjack
}

// Valid reports whether h lies inside the modelled state space.
func (h Hand) Valid() bool {
	switch h.kind {
	case Hard:
		return h.total >= MinHard && h.total <= MaxHard
	case Soft:
		return h.total >= MinSoft && h.total <= Blackjack
	case Pair, Single:
		return h.total >= int(Two) && h.total <= int(Ace)
	default:
		return false
	}
}

// Unsplit converts a Pair or Single into the hard or soft total it
// represents when it is not split. Other hands are returned unchanged.
func (h Hand) Unsplit() Hand {
	switch h.kind {
	case Pair:
		if h.Rank() == Ace {
			return SoftTotal(12)
		}
		return HardTotal(2 * h.total)
	case Single:
		if h.Rank() == Ace {
			return SoftTotal(MinSoft)
		}
		return HardTotal(h.total)
	default:
		return h
	}
}

// AddValue returns the hand after drawing a non-ace card worth v.
func (h Hand) AddValue(v int) Hand {
	switch h.kind {
	case Hard:
		return HardTotal(h.total + v)
	case Soft:
		if h.total+v > Blackjack {
			return HardTotal(h.total + v - 10)
		}
		return SoftTotal(h.total + v)
	case Single:
		if h.total == v {
			return Hand{kind: Pair, total: v}
		}
	}
	return h.Unsplit().AddValue(v)
}

// AddAce returns the hand after drawing an ace.
func (h Hand) AddAce() Hand {
	switch h.kind {
	case Hard:
		if h.total+11 <= Blackjack {
			return SoftTotal(h.total + 11)
		}
		return HardTotal(h.total + 1)
	case Soft:
		if h.total == Blackjack {
			return HardTotal(12)
		}
		return SoftTotal(h.total + 1)
	case Single:
		if h.Rank() == Ace {
			return PairOf(Ace)
		}
	}
	return h.Unsplit().AddAce()
}

// Draw returns the hand after drawing a card of rank r.
func (h Hand) Draw(r Rank) Hand {
	if r == Ace {
		return h.AddAce()
	}
	return h.AddValue(r.Value())
}

// String returns the chart label: "H16", "S18", "8,8", "A,A", "8" or "A".
func (h Hand) String() string {
	switch h.kind {
	case Hard:
		return "H" + strconv.Itoa(h.total)
	case Soft:
		return "S" + strconv.Itoa(h.total)
	case Pair:
		r := h.Rank().String()
		return r + "," + r
	case Single:
		return h.Rank().String()
	default:
		return "?"
	}
}

// Parse parses a label produced by String. Ten-valued pairs may be written
// "10,10" or "T,T".
func Parse(s string) (Hand, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return Hand{}, fmt.Errorf("%w: empty label", ErrInvalid)
	}

	if first, second, ok := strings.Cut(s, ","); ok {
		r1, err := ParseRank(first)
		if err != nil {
			return Hand{}, err
		}
		r2, err := ParseRank(second)
		if err != nil {
			return Hand{}, err
		}
		if r1 != r2 {
			return Hand{}, fmt.Errorf("%w: %q is not a pair", ErrInvalid, s)
		}
		return PairOf(r1), nil
	}

	var h Hand
	switch s[0] {
	case 'H', 'S':
		n, err := strconv.Atoi(s[1:])
		if err != nil {
			return Hand{}, fmt.Errorf("%w: %q", ErrInvalid, s)
		}
		if s[0] == 'H' {
			h = HardTotal(n)
		} else {
			h = SoftTotal(n)
		}
	default:
		r, err := ParseRank(s)
		if err != nil {
			return Hand{}, err
		}
		h = SingleOf(r)
	}

	if !h.Valid() {
		return Hand{}, fmt.Errorf("%w: %q out of range", ErrInvalid, s)
	}
	return h, nil
}

// MustParse is like Parse but panics on error. Intended for tests and tables.
func MustParse(s string) Hand {
	h, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return h
}

// Upcard returns the one-card dealer hand showing rank r.
func Upcard(r Rank) Hand {
	return SingleOf(r).Unsplit()
}

// Deal returns the player's starting hand for two initial cards. Matching
// ranks produce a Pair.
func Deal(first, second Rank) Hand {
	switch {
	case first == second:
		return PairOf(first)
	case first == Ace:
		return HardTotal(second.Value()).AddAce()
	case second == Ace:
		return HardTotal(first.Value()).AddAce()
	default:
		return HardTotal(first.Value() + second.Value())
	}
}

// IsNatural reports whether h is a two-card 21.
func IsNatural(h Hand, cards int) bool {
	return cards == 2 && h.Total() == Blackjack
}

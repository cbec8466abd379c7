package hand

import "fmt"

// Count is the number of hard and soft totals in the state space.
const Count = 40

// PairCount is the number of splittable pairs.
const PairCount = RankCount

// solveOrder lists every hard and soft total so that drawing a card from any
// hand the engine recurses on lands on a hand listed earlier.
var solveOrder = [Count]Hand{
	HardTotal(30), HardTotal(29), HardTotal(28), HardTotal(27), HardTotal(26),
	HardTotal(25), HardTotal(24), HardTotal(23), HardTotal(22), HardTotal(21),
	HardTotal(20), HardTotal(19), HardTotal(18), HardTotal(17), HardTotal(16),
	HardTotal(15), HardTotal(14), HardTotal(13), HardTotal(12), HardTotal(11),
	SoftTotal(21), HardTotal(10), SoftTotal(20), HardTotal(9), SoftTotal(19),
	HardTotal(8), SoftTotal(18), HardTotal(7), SoftTotal(17), HardTotal(6),
	SoftTotal(16), HardTotal(5), SoftTotal(15), HardTotal(4), SoftTotal(14),
	HardTotal(3), SoftTotal(13), HardTotal(2), SoftTotal(12), SoftTotal(11),
}

// position[kind][total] is the index of a hand in solveOrder, or -1.
var position [2][MaxHard + 1]int

func init() {
	for k := range position {
		for t := range position[k] {
			position[k][t] = -1
		}
	}
	for i, h := range solveOrder {
		position[h.kind][h.total] = i
	}
}

// Order returns all hard and soft totals in dependency order.
func Order() [Count]Hand {
	return solveOrder
}

// At returns the hand stored at index i of the solve order.
func At(i int) Hand {
	return solveOrder[i]
}

// Index returns the position of h in the solve order. It panics for pairs,
// singles and totals outside the state space; reaching one is an engine bug.
func (h Hand) Index() int {
	if (h.kind == Hard || h.kind == Soft) && h.total >= 0 && h.total <= MaxHard {
		if i := position[h.kind][h.total]; i >= 0 {
			return i
		}
	}
	panic(fmt.Sprintf("hand %s is outside the solved state space", h))
}

// PairIndex returns the position of a pair in Pairs.
func (h Hand) PairIndex() int {
	if h.kind != Pair || !h.Valid() {
		panic(fmt.Sprintf("hand %s is not a pair", h))
	}
	return h.Rank().Index()
}

// Pairs returns the ten splittable pairs, 2,2 through A,A.
func Pairs() [PairCount]Hand {
	var out [PairCount]Hand
	for i, r := range Ranks {
		out[i] = PairOf(r)
	}
	return out
}

// Upcards returns the dealer's possible one-card hands, 2 through A.
func Upcards() [RankCount]Hand {
	var out [RankCount]Hand
	for i, r := range Ranks {
		out[i] = Upcard(r)
	}
	return out
}

// ChartRows returns the player totals shown on a basic strategy chart:
// hard 8 through 21, then soft 12 through 21.
func ChartRows() []Hand {
	rows := make([]Hand, 0, 24)
	for n := 8; n <= Blackjack; n++ {
		rows = append(rows, HardTotal(n))
	}
	for n := 12; n <= Blackjack; n++ {
		rows = append(rows, SoftTotal(n))
	}
	return rows
}

// Display returns every hard then soft total in ascending order.
func Display() []Hand {
	out := make([]Hand, 0, Count)
	for n := MinHard; n <= MaxHard; n++ {
		out = append(out, HardTotal(n))
	}
	for n := MinSoft; n <= Blackjack; n++ {
		out = append(out, SoftTotal(n))
	}
	return out
}

// InChart reports whether h is one of the ChartRows.
func InChart(h Hand) bool {
	switch h.kind {
	case Hard:
		return h.total >= 8 && h.total <= Blackjack
	case Soft:
		return h.total >= 12 && h.total <= Blackjack
	default:
		return false
	}
}

// IsUpcard reports whether h is a one-card dealer hand.
func IsUpcard(h Hand) bool {
	switch h.kind {
	case Hard:
		return h.total >= 2 && h.total <= 10
	case Soft:
		return h.total == MinSoft
	default:
		return false
	}
}

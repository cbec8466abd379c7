package solver

import "github.com/lox/blackjack-ev/internal/hand"

// SurrenderValue is the fixed result of giving up half the stake.
const SurrenderValue = -0.5

// surrenderable reports whether surrender is considered for a cell: a chart
// row or pair facing a dealer upcard.
func surrenderable(player, dealer hand.Hand) bool {
	if !hand.IsUpcard(dealer) {
		return false
	}
	return player.Kind() == hand.Pair || hand.InChart(player)
}

func surrender(ev float64, d Decision) (float64, Decision) {
	if ev < SurrenderValue {
		d.Surrender = true
		return SurrenderValue, d
	}
	return ev, d
}

// ApplySurrender returns a copy of in where every surrenderable cell worth
// less than SurrenderValue is clamped to it and marked surrender. Other
// cells pass through unchanged.
func ApplySurrender(in Stage) Stage {
	out := Stage{EV: new(EVTable), Decisions: new(DecisionTable)}
	*out.EV = *in.EV
	*out.Decisions = *in.Decisions

	order := hand.Order()
	for _, player := range order {
		for _, dealer := range order {
			if !surrenderable(player, dealer) {
				continue
			}
			ev, d := surrender(in.EV.At(player, dealer), in.Decisions.At(player, dealer))
			out.EV.set(player, dealer, ev)
			out.Decisions.set(player, dealer, d)
		}
	}
	return out
}

// ApplyPairSurrender is ApplySurrender for the pair stage.
func ApplyPairSurrender(in PairStage) PairStage {
	out := PairStage{EV: new(PairEVTable), Decisions: new(PairDecisionTable)}
	*out.EV = *in.EV
	*out.Decisions = *in.Decisions

	for _, pair := range hand.Pairs() {
		for _, dealer := range hand.Order() {
			if !surrenderable(pair, dealer) {
				continue
			}
			ev, d := surrender(in.EV.At(pair, dealer), in.Decisions.At(pair, dealer))
			out.EV.set(pair, dealer, ev)
			out.Decisions.set(pair, dealer, d)
		}
	}
	return out
}

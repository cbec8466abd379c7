package solver

import "strings"

// Action is a single player move.
type Action uint8

const (
	NoAction Action = iota
	Stand
	Hit
	Double
	Split
	Surrender
)

// String returns the action's name.
func (a Action) String() string {
	switch a {
	case Stand:
		return "stand"
	case Hit:
		return "hit"
	case Double:
		return "double"
	case Split:
		return "split"
	case Surrender:
		return "surrender"
	default:
		return "none"
	}
}

// Short returns the one-letter chart code.
func (a Action) Short() string {
	switch a {
	case Stand:
		return "S"
	case Hit:
		return "H"
	case Double:
		return "D"
	case Split:
		return "P"
	case Surrender:
		return "X"
	default:
		return "?"
	}
}

// Decision is the best play for a cell together with the fallbacks to use
// when the better option is not offered. Surrender falls back to Split or
// Double, and those fall back to Play, which is always Hit or Stand.
type Decision struct {
	Surrender bool
	Split     bool
	Double    bool
	Play      Action
}

// Primary returns the action to take when every option is available.
func (d Decision) Primary() Action {
	switch {
	case d.Surrender:
		return Surrender
	case d.Split:
		return Split
	case d.Double:
		return Double
	default:
		return d.Play
	}
}

// Fallback returns the decision to use when Primary is not allowed. It
// returns false once only Hit or Stand remain.
func (d Decision) Fallback() (Decision, bool) {
	switch {
	case d.Surrender:
		d.Surrender = false
	case d.Split:
		d.Split = false
	case d.Double:
		d.Double = false
	default:
		return d, false
	}
	return d, true
}

// String renders the chart label, e.g. "H", "D/S", "X/H" or "P". Split is
// shown on its own because a pair can always be split.
func (d Decision) String() string {
	var b strings.Builder
	if d.Surrender {
		b.WriteString("X/")
	}
	if d.Split {
		b.WriteString("P")
		return b.String()
	}
	if d.Double {
		b.WriteString("D/")
	}
	b.WriteString(d.Play.Short())
	return b.String()
}

func (d Decision) resolved() bool {
	return d.Play == Hit || d.Play == Stand
}

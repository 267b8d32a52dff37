package hand

import "fmt"

// Label derives the display name of an action from the actions recorded
// up to and including it. Non-raise kinds map to their lowercase name.
// Raise-kind actions are labeled by counting prior raises on the same
// street, the action counting itself: preflop the first raise is the
// open and the nth is the (n+1)bet; postflop the first is a bet and the
// rest are raises. Labels are recomputed on every render and never
// stored.
func Label(a Action, actions []Action) string {
	if !a.IsRaise() {
		return a.Type.String()
	}

	n := 0
	for _, other := range actions {
		if other.IsRaise() && other.Street == a.Street && other.Order <= a.Order {
			n++
		}
	}
	if n < 1 {
		n = 1
	}

	if a.Street == Preflop {
		if n == 1 {
			return "open"
		}
		return fmt.Sprintf("%dbet", n+1)
	}

	if n == 1 {
		return "bet"
	}
	return "raise"
}

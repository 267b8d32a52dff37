package hand

// allInPlaceholderBB stands in for an all-in of unknown size when
// summing pot contributions. The true stack is unknown, so the pot
// figure is an approximation used for sizing and display, not an exact
// settlement. Side pots are not modeled.
const allInPlaceholderBB = 100

// PotAtStreet returns the pot in big blinds entering the given street,
// before any action on that street.
//
// The preflop contribution map is seeded with the forced bets: the big
// blind posts 1 BB and, at three seats or more, the small blind posts
// its fraction (heads-up tables have no separate SB seat). Each elapsed
// street then tracks every seat's total contribution: a raise sets the
// actor's total to its size, a call matches the largest outstanding
// total, checks and folds contribute nothing. At the end of each street
// the totals are collected into the pot and reset.
func PotAtStreet(actions []Action, street Street, tableSize int, blind Blind) float64 {
	bets := map[Position]float64{BB: 1}
	if tableSize >= 3 {
		bets[SB] = blind.SBFraction()
	}

	pot := 0.0
	for st := Preflop; st < street; st++ {
		for _, a := range StreetActions(actions, st) {
			switch {
			case a.IsRaise():
				amount, known := a.Amount.Chips()
				if !known {
					amount = allInPlaceholderBB
				}
				bets[a.Position] = amount
			case a.Type == Call:
				bets[a.Position] = maxContribution(bets)
			}
		}

		for _, v := range bets {
			pot += v
		}
		bets = map[Position]float64{}
	}

	if street == Preflop {
		for _, v := range bets {
			pot += v
		}
	}

	return pot
}

func maxContribution(bets map[Position]float64) float64 {
	max := 0.0
	for _, v := range bets {
		if v > max {
			max = v
		}
	}
	return max
}

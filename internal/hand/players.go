package hand

// PlayersInHand computes which seats remain in the hand for postflop
// streets from the preflop actions, returned in postflop action order.
//
// With no preflop raise the pot was limped and nobody is excluded here;
// explicit folds are filtered separately so this stays stateless with
// respect to postflop folds. Otherwise the last raiser is in, along
// with every seat that called after the last raise and every seat that
// moved all-in for an unknown amount anywhere preflop. An all-in seat
// stays in even when raised over the top: without side-pot math the
// all-in player never has to act again.
func PlayersInHand(preflop []Action, postflopOrder []Position) []Position {
	lastRaise, ok := lastRaiseAction(preflop)
	if !ok {
		out := make([]Position, len(postflopOrder))
		copy(out, postflopOrder)
		return out
	}

	in := map[Position]bool{lastRaise.Position: true}
	for _, a := range preflop {
		if a.Type == Call && a.Order > lastRaise.Order {
			in[a.Position] = true
		}
		if a.IsRaise() && a.Amount.Unknown() {
			in[a.Position] = true
		}
	}

	var out []Position
	for _, p := range postflopOrder {
		if in[p] {
			out = append(out, p)
		}
	}
	return out
}

// ImplicitFolds infers the seats that folded before the first preflop
// raise. The tool only records interesting actions, so a seat preceding
// the opener with no recorded action anywhere is deemed folded. With no
// preflop raise there are no implicit folds: limped action is always
// explicit.
func ImplicitFolds(actions []Action, preflopOrder []Position) []Position {
	opener, ok := firstRaiseAction(StreetActions(actions, Preflop))
	if !ok {
		return nil
	}

	openerIdx := -1
	for i, p := range preflopOrder {
		if p == opener.Position {
			openerIdx = i
			break
		}
	}
	if openerIdx <= 0 {
		return nil
	}

	acted := map[Position]bool{}
	for _, a := range actions {
		acted[a.Position] = true
	}

	var out []Position
	for _, p := range preflopOrder[:openerIdx] {
		if !acted[p] {
			out = append(out, p)
		}
	}
	return out
}

// ExplicitFolds returns the seats with a recorded fold on any street
func ExplicitFolds(actions []Action) map[Position]bool {
	folded := map[Position]bool{}
	for _, a := range actions {
		if a.Type == Fold {
			folded[a.Position] = true
		}
	}
	return folded
}

// AvailablePositions returns the seats still able to act preflop, in
// preflop order: the union of implicit and explicit folds is the
// authoritative out-of-hand set.
func AvailablePositions(actions []Action, tableSize int) []Position {
	order := PreflopOrder(tableSize)

	out := map[Position]bool{}
	for _, p := range ImplicitFolds(actions, order) {
		out[p] = true
	}
	for p := range ExplicitFolds(actions) {
		out[p] = true
	}

	var available []Position
	for _, p := range order {
		if !out[p] {
			available = append(available, p)
		}
	}
	return available
}

func firstRaiseAction(actions []Action) (Action, bool) {
	var first Action
	found := false
	for _, a := range actions {
		if a.IsRaise() && (!found || a.Order < first.Order) {
			first = a
			found = true
		}
	}
	return first, found
}

func lastRaiseAction(actions []Action) (Action, bool) {
	var last Action
	found := false
	for _, a := range actions {
		if a.IsRaise() && (!found || a.Order > last.Order) {
			last = a
			found = true
		}
	}
	return last, found
}

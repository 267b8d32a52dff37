package hand

// IsStreetComplete decides whether the betting round on a street is
// closed, from that street's recorded actions, the seats contesting the
// street and the full set of explicitly folded seats. The editor
// evaluates it after every append; a true result triggers the debounced
// auto-advance to the next street.
//
// The detector never rejects input: an impossible sequence degrades to
// "incomplete" rather than erroring, since the tool records what the
// user says happened instead of validating poker legality.
func IsStreetComplete(street Street, streetActions []Action, active []Position, folded map[Position]bool) bool {
	if len(streetActions) == 0 {
		return false
	}

	actions := sortChronological(streetActions)
	last := actions[len(actions)-1]

	// Folds ending the hand close the street regardless of who called.
	remaining := 0
	for _, p := range active {
		if !folded[p] {
			remaining++
		}
	}
	if remaining <= 1 {
		return true
	}

	// An open bet or raise of known size always awaits a response. An
	// unknown-size all-in may close the round: nobody is required to
	// act over it in this model.
	if last.IsRaise() && !last.Amount.Unknown() {
		return false
	}

	var raises []Action
	for _, a := range actions {
		if a.IsRaise() {
			raises = append(raises, a)
		}
	}

	if street == Preflop {
		return preflopComplete(raises, last)
	}
	return postflopComplete(actions, raises, active)
}

// preflopComplete closes a raised preflop round when the right caller
// closes the action: the big blind against a single raise, or the
// out-raised raiser in a re-raise war. An unraised round needs the big
// blind's own closing check or call.
func preflopComplete(raises []Action, last Action) bool {
	switch {
	case len(raises) == 0:
		return last.Position == BB && (last.Type == Check || last.Type == Call)
	case len(raises) == 1:
		return last.Type == Call && last.Position == BB
	default:
		secondToLast := raises[len(raises)-2]
		return last.Type == Call && last.Position == secondToLast.Position
	}
}

// postflopComplete closes an unraised round once every active seat has
// checked, and a raised round once every active seat other than the
// last raiser has responded after the final raise.
//
// Responses are measured against the last raise of known size: an
// unknown-size all-in never reopens the action, because nobody can be
// required to act over an unknown amount in this model. That is also
// why an all-in may itself be the closing action, while a known-size
// raise as the last action was already rejected by the caller.
func postflopComplete(actions, raises []Action, active []Position) bool {
	if len(raises) == 0 {
		checks := 0
		for _, a := range actions {
			if a.Type == Check {
				checks++
			}
		}
		return checks >= len(active)
	}

	lastRaise := raises[len(raises)-1]
	for i := len(raises) - 1; i >= 0; i-- {
		if !raises[i].Amount.Unknown() {
			lastRaise = raises[i]
			break
		}
	}

	for _, p := range active {
		if p == lastRaise.Position {
			continue
		}
		responded := false
		for _, a := range actions {
			if a.Position == p && a.Order > lastRaise.Order {
				responded = true
				break
			}
		}
		if !responded {
			return false
		}
	}
	return true
}

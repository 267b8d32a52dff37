package hand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func preflopSeats(actions []Action) []Position {
	implicit := map[Position]bool{}
	for _, p := range ImplicitFolds(actions, PreflopOrder(6)) {
		implicit[p] = true
	}
	var out []Position
	for _, p := range PreflopOrder(6) {
		if !implicit[p] {
			out = append(out, p)
		}
	}
	return out
}

func TestStreetIncompleteWithNoActions(t *testing.T) {
	t.Parallel()

	assert.False(t, IsStreetComplete(Preflop, nil, PreflopOrder(6), nil))
	assert.False(t, IsStreetComplete(Flop, nil, []Position{BB, BTN}, nil))
}

func TestPreflopSingleRaiseClosedByBBCall(t *testing.T) {
	t.Parallel()

	actions := []Action{
		act(1, Preflop, BTN, Raise, FixedAmount(3)),
		act(2, Preflop, SB, Fold),
		act(3, Preflop, BB, Call),
	}
	assert.True(t, IsStreetComplete(Preflop, actions, preflopSeats(actions), ExplicitFolds(actions)))
}

func TestPreflopBB3betKeepsStreetOpen(t *testing.T) {
	t.Parallel()

	actions := []Action{
		act(1, Preflop, BTN, Raise, FixedAmount(3)),
		act(2, Preflop, SB, Fold),
		act(3, Preflop, BB, Raise, FixedAmount(9)),
	}
	assert.False(t, IsStreetComplete(Preflop, actions, preflopSeats(actions), ExplicitFolds(actions)))
}

func TestPreflopRaiseWarClosedByOutRaisedRaiser(t *testing.T) {
	t.Parallel()

	// BTN opens, BB 3bets, BTN calls: the out-raised raiser closes it
	actions := []Action{
		act(1, Preflop, BTN, Raise, FixedAmount(3)),
		act(2, Preflop, SB, Fold),
		act(3, Preflop, BB, Raise, FixedAmount(9)),
		act(4, Preflop, BTN, Call),
	}
	assert.True(t, IsStreetComplete(Preflop, actions, preflopSeats(actions), ExplicitFolds(actions)))
}

func TestPreflopRaiseWarNotClosedByColdCall(t *testing.T) {
	t.Parallel()

	// SB cold-calls the 3bet; only BTN's call can close the war
	actions := []Action{
		act(1, Preflop, BTN, Raise, FixedAmount(3)),
		act(2, Preflop, BB, Raise, FixedAmount(9)),
		act(3, Preflop, SB, Call),
	}
	assert.False(t, IsStreetComplete(Preflop, actions, preflopSeats(actions), ExplicitFolds(actions)))
}

func TestPreflopClosesWhenFoldsLeaveOneSeat(t *testing.T) {
	t.Parallel()

	actions := []Action{
		act(1, Preflop, BTN, Raise, FixedAmount(3)),
		act(2, Preflop, SB, Fold),
		act(3, Preflop, BB, Fold),
	}
	assert.True(t, IsStreetComplete(Preflop, actions, preflopSeats(actions), ExplicitFolds(actions)))
}

func TestPreflopLimpedClosedByBBCheck(t *testing.T) {
	t.Parallel()

	actions := []Action{
		act(1, Preflop, BTN, Call),
		act(2, Preflop, SB, Call),
		act(3, Preflop, BB, Check),
	}
	assert.True(t, IsStreetComplete(Preflop, actions, preflopSeats(actions), ExplicitFolds(actions)))

	// Without the BB's closing action the round stays open
	open := actions[:2]
	assert.False(t, IsStreetComplete(Preflop, open, preflopSeats(open), ExplicitFolds(open)))
}

func TestPostflopChecksAroundCloseStreet(t *testing.T) {
	t.Parallel()

	active := []Position{BB, BTN}
	actions := []Action{
		act(10, Flop, BB, Check),
		act(11, Flop, BTN, Check),
	}
	assert.True(t, IsStreetComplete(Flop, actions, active, nil))
	assert.False(t, IsStreetComplete(Flop, actions[:1], active, nil))
}

func TestPostflopBetCallClosesStreet(t *testing.T) {
	t.Parallel()

	active := []Position{BB, BTN}
	actions := []Action{
		act(10, Flop, BB, Check),
		act(11, Flop, BTN, Raise, FixedAmount(4)),
		act(12, Flop, BB, Call),
	}
	assert.True(t, IsStreetComplete(Flop, actions, active, nil))
	assert.False(t, IsStreetComplete(Flop, actions[:2], active, nil))
}

func TestPostflopRaiseOfKnownSizeKeepsStreetOpen(t *testing.T) {
	t.Parallel()

	active := []Position{BB, BTN}
	actions := []Action{
		act(10, Flop, BB, Raise, FixedAmount(4)),
		act(11, Flop, BTN, Raise, FixedAmount(12)),
	}
	assert.False(t, IsStreetComplete(Flop, actions, active, nil))
}

func TestPostflopUnknownAllInMayCloseStreet(t *testing.T) {
	t.Parallel()

	// Everyone has responded to the bet and the closing action is an
	// unknown-size all-in; nobody can act over it in this model.
	active := []Position{BB, BTN, CO}
	actions := []Action{
		act(10, Flop, BB, Raise, FixedAmount(4)),
		act(11, Flop, BTN, Call),
		act(12, Flop, CO, Raise, AllInUnknown()),
	}
	assert.True(t, IsStreetComplete(Flop, actions, active, nil))

	// A lone unknown all-in with nobody having responded stays open
	lone := []Action{act(10, Flop, BB, Raise, AllInUnknown())}
	assert.False(t, IsStreetComplete(Flop, lone, []Position{BB, BTN}, nil))
}

func TestPostflopEveryResponderMustActAfterLastRaise(t *testing.T) {
	t.Parallel()

	// CO called the first bet but has not responded to the raise over it
	active := []Position{BB, CO, BTN}
	actions := []Action{
		act(10, Flop, BB, Raise, FixedAmount(4)),
		act(11, Flop, CO, Call),
		act(12, Flop, BTN, Raise, FixedAmount(12)),
		act(13, Flop, BB, Call),
	}
	assert.False(t, IsStreetComplete(Flop, actions, active, nil))

	closed := append(actions, act(14, Flop, CO, Fold))
	assert.True(t, IsStreetComplete(Flop, closed, active, nil))
}

func TestNonsenseSequencesDegradeToIncomplete(t *testing.T) {
	t.Parallel()

	// Two raises with no response in between are accepted as entered
	actions := []Action{
		act(1, Preflop, BTN, Raise, FixedAmount(3)),
		act(2, Preflop, CO, Raise, FixedAmount(6)),
	}
	assert.False(t, IsStreetComplete(Preflop, actions, preflopSeats(actions), ExplicitFolds(actions)))
}

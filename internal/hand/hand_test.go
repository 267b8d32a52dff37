package hand

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHand(t *testing.T) *Hand {
	t.Helper()
	h, err := New("hand-1", 6, halfBlind, BTN, time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return h
}

func TestNewValidatesSetup(t *testing.T) {
	t.Parallel()

	_, err := New("h", 12, halfBlind, BTN, time.Now())
	assert.Error(t, err, "table size out of range")

	_, err = New("h", 5, halfBlind, UTG, time.Now())
	assert.Error(t, err, "UTG does not exist at 5-max")

	h := testHand(t)
	assert.Equal(t, StatusDraft, h.Status)
	assert.True(t, h.Seats[BTN].Hero)
}

func TestNextOrderSurvivesDeletions(t *testing.T) {
	t.Parallel()

	h := testHand(t)
	h.Actions = []Action{
		act(1, Preflop, BTN, Raise, FixedAmount(3)),
		act(2, Preflop, SB, Fold),
		act(3, Preflop, BB, Call),
	}
	assert.Equal(t, 4, h.NextOrder())

	// Deleting an action does not renumber the rest
	h.Actions = h.Actions[:2]
	assert.Equal(t, 3, h.NextOrder())
}

func TestCurrentStreetAdvancesPastCompletedRounds(t *testing.T) {
	t.Parallel()

	h := testHand(t)
	assert.Equal(t, Preflop, h.CurrentStreet())

	h.Actions = []Action{
		act(1, Preflop, BTN, Raise, FixedAmount(3)),
		act(2, Preflop, SB, Fold),
		act(3, Preflop, BB, Call),
	}
	assert.Equal(t, Flop, h.CurrentStreet())

	h.Actions = append(h.Actions,
		act(4, Flop, BB, Check),
		act(5, Flop, BTN, Check),
		act(6, Turn, BB, Check),
	)
	assert.Equal(t, Turn, h.CurrentStreet())
}

func TestSeatsInStreetExcludesEarlierFoldsOnly(t *testing.T) {
	t.Parallel()

	h := testHand(t)
	h.Actions = []Action{
		act(1, Preflop, CO, Raise, FixedAmount(3)),
		act(2, Preflop, BTN, Call),
		act(3, Preflop, SB, Fold),
		act(4, Preflop, BB, Call),
		act(5, Flop, BB, Fold),
	}

	// Same-street folds are left to the completion detector
	assert.Equal(t, []Position{BB, CO, BTN}, h.SeatsInStreet(Flop))
	assert.Equal(t, []Position{CO, BTN}, h.SeatsInStreet(Turn))
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	h := testHand(t)
	card := NewCard(Ace, Hearts)
	h.HeroCards[0] = &card
	h.Actions = []Action{act(1, Preflop, BTN, Raise, FixedAmount(3))}

	c := h.Clone()
	c.Actions = append(c.Actions, act(2, Preflop, BB, Call))
	c.HeroCards[0].Rank = King
	c.Seats[BB] = Seat{PlayerID: "p1"}

	assert.Len(t, h.Actions, 1)
	assert.Equal(t, Ace, h.HeroCards[0].Rank)
	assert.NotContains(t, h.Seats, BB)
}

func TestHandJSONRoundTrip(t *testing.T) {
	t.Parallel()

	h := testHand(t)
	card := NewCard(Ace, Hearts)
	h.HeroCards[0] = &card
	h.Actions = []Action{
		act(1, Preflop, BTN, Raise, AllInUnknown()),
		act(2, Preflop, BB, Call),
	}
	h.Result = Result{Winners: []Position{BTN}, Showdown: true}

	data, err := json.Marshal(h)
	require.NoError(t, err)

	// The unknown all-in keeps its legacy sentinel encoding
	assert.Contains(t, string(data), `"sizeBb":-1`)

	var decoded Hand
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Actions[0].Amount.Unknown())
	assert.Equal(t, "Ah", decoded.HeroCards[0].String())
	assert.Equal(t, h.Result, decoded.Result)
}

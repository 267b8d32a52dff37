package editor

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/handnotes/internal/hand"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestSession(t *testing.T, opts ...Option) (*Session, *quartz.Mock) {
	t.Helper()
	h, err := hand.New("hand-1", 6, hand.DefaultBlind, hand.BTN, time.Now())
	require.NoError(t, err)

	mock := quartz.NewMock(t)
	opts = append([]Option{WithClock(mock)}, opts...)
	s := NewSession(h, testLogger(), opts...)
	t.Cleanup(s.Close)
	return s, mock
}

func TestAppendAssignsMonotonicOrder(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t)
	a1, err := s.Append(hand.BTN, hand.Raise, hand.FixedAmount(3))
	require.NoError(t, err)
	a2, err := s.Append(hand.SB, hand.Fold, hand.RaiseAmount{})
	require.NoError(t, err)

	assert.Equal(t, hand.Preflop, a1.Street)
	assert.Greater(t, a2.Order, a1.Order)
	assert.NotEqual(t, a1.ID, a2.ID)
}

func TestAppendRejectsForeignSeat(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t)
	_, err := s.Append(hand.UTG1, hand.Fold, hand.RaiseAmount{})
	assert.Error(t, err)
}

func TestCompletedStreetAdvancesAfterDelay(t *testing.T) {
	s, mock := newTestSession(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.Append(hand.BTN, hand.Raise, hand.FixedAmount(3))
	require.NoError(t, err)
	_, err = s.Append(hand.SB, hand.Fold, hand.RaiseAmount{})
	require.NoError(t, err)
	_, err = s.Append(hand.BB, hand.Call, hand.RaiseAmount{})
	require.NoError(t, err)

	require.True(t, s.AdvancePending())
	assert.Equal(t, hand.Preflop, s.Street())

	mock.Advance(DefaultAdvanceDelay).MustWait(ctx)
	assert.Equal(t, hand.Flop, s.Street())
	assert.False(t, s.AdvancePending())
}

func TestRemovingTriggerCancelsAdvance(t *testing.T) {
	s, mock := newTestSession(t)

	_, err := s.Append(hand.BTN, hand.Raise, hand.FixedAmount(3))
	require.NoError(t, err)
	_, err = s.Append(hand.SB, hand.Fold, hand.RaiseAmount{})
	require.NoError(t, err)
	closing, err := s.Append(hand.BB, hand.Call, hand.RaiseAmount{})
	require.NoError(t, err)
	require.True(t, s.AdvancePending())

	require.NoError(t, s.RemoveAction(closing.ID))
	assert.False(t, s.AdvancePending())

	// The elapsed delay must not fire a stale advance
	mock.Advance(DefaultAdvanceDelay)
	assert.Equal(t, hand.Preflop, s.Street())
}

func TestCloseCancelsPendingAdvance(t *testing.T) {
	s, mock := newTestSession(t)

	_, err := s.Append(hand.BTN, hand.Raise, hand.FixedAmount(3))
	require.NoError(t, err)
	_, err = s.Append(hand.SB, hand.Fold, hand.RaiseAmount{})
	require.NoError(t, err)
	_, err = s.Append(hand.BB, hand.Call, hand.RaiseAmount{})
	require.NoError(t, err)
	require.True(t, s.AdvancePending())

	s.Close()
	mock.Advance(DefaultAdvanceDelay)
	assert.Equal(t, hand.Preflop, s.Street())
}

func TestRemoveActionRejectsClosedStreets(t *testing.T) {
	s, mock := newTestSession(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	open, err := s.Append(hand.BTN, hand.Raise, hand.FixedAmount(3))
	require.NoError(t, err)
	_, err = s.Append(hand.SB, hand.Fold, hand.RaiseAmount{})
	require.NoError(t, err)
	_, err = s.Append(hand.BB, hand.Call, hand.RaiseAmount{})
	require.NoError(t, err)

	mock.Advance(DefaultAdvanceDelay).MustWait(ctx)
	require.Equal(t, hand.Flop, s.Street())

	err = s.RemoveAction(open.ID)
	assert.Error(t, err, "preflop actions are display-only once the flop opens")
}

func TestUndoRestoresPriorSnapshot(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t)
	_, err := s.Append(hand.BTN, hand.Raise, hand.FixedAmount(3))
	require.NoError(t, err)
	_, err = s.Append(hand.SB, hand.Fold, hand.RaiseAmount{})
	require.NoError(t, err)

	require.True(t, s.Undo())
	assert.Len(t, s.Hand().Actions, 1)

	require.True(t, s.Redo())
	assert.Len(t, s.Hand().Actions, 2)

	// Editing after an undo truncates the redo side
	require.True(t, s.Undo())
	s.SetMemo("villain was steaming")
	assert.False(t, s.Redo())
	assert.Equal(t, "villain was steaming", s.Hand().SpotMemo)
}

func TestEveryEditIsSaved(t *testing.T) {
	var (
		mu    sync.Mutex
		saves []int
	)
	save := func(h *hand.Hand) {
		mu.Lock()
		defer mu.Unlock()
		saves = append(saves, len(h.Actions))
	}

	s, _ := newTestSession(t, WithSaveFunc(save))
	_, err := s.Append(hand.BTN, hand.Raise, hand.FixedAmount(3))
	require.NoError(t, err)
	s.SetMemo("standard open")

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(saves) == 2
	}, time.Second, 10*time.Millisecond)
}

func TestAssignSeatGuardsHero(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t)
	assert.Error(t, s.AssignSeat(hand.BTN, "p1"), "hero seat is fixed")
	require.NoError(t, s.AssignSeat(hand.CO, "p1"))
	assert.Equal(t, "p1", s.Hand().Seats[hand.CO].PlayerID)

	require.NoError(t, s.AssignSeat(hand.CO, ""))
	assert.NotContains(t, s.Hand().Seats, hand.CO)
}

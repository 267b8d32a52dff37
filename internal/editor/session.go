// Package editor holds the single editing session for one hand: an
// immutable snapshot per edit, a bounded undo/redo history around it,
// and the debounced auto-advance that fires when a street's betting
// round completes.
package editor

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/handnotes/internal/hand"
	"github.com/lox/handnotes/internal/handid"
	"github.com/lox/handnotes/internal/history"
)

// DefaultAdvanceDelay is how long a completed street is shown before
// the editor advances to the next one
const DefaultAdvanceDelay = 600 * time.Millisecond

// Snapshot is the whole editor state at one point in time: the hand and
// the currently open street. Edits replace it wholesale.
type Snapshot struct {
	Hand   *hand.Hand
	Street hand.Street
}

// SaveFunc persists a hand. It is called fire-and-forget after every
// state change and may be synchronous; the session never blocks on it.
type SaveFunc func(*hand.Hand)

// Session serializes all edits to one open hand. The only asynchronous
// behavior is the scheduled auto-advance, which is cancelled by any
// state change and by Close.
type Session struct {
	logger *log.Logger
	clock  quartz.Clock
	save   SaveFunc

	mu           sync.Mutex
	cur          Snapshot
	hist         *history.History[Snapshot]
	advanceDelay time.Duration
	advanceTimer *quartz.Timer
	onAdvance    func(hand.Street)
	closed       bool
}

// Option configures a Session
type Option func(*Session)

// WithClock substitutes the wall clock, for tests
func WithClock(clock quartz.Clock) Option {
	return func(s *Session) { s.clock = clock }
}

// WithAdvanceDelay overrides the auto-advance debounce delay
func WithAdvanceDelay(d time.Duration) Option {
	return func(s *Session) { s.advanceDelay = d }
}

// WithSaveFunc sets the persistence callback
func WithSaveFunc(save SaveFunc) Option {
	return func(s *Session) { s.save = save }
}

// WithOnAdvance sets a notification callback invoked after an automatic
// street advance, so the UI can refresh
func WithOnAdvance(fn func(hand.Street)) Option {
	return func(s *Session) { s.onAdvance = fn }
}

// NewSession opens an editing session on the given hand. The open
// street is re-derived from the recorded actions.
func NewSession(h *hand.Hand, logger *log.Logger, opts ...Option) *Session {
	s := &Session{
		logger:       logger.WithPrefix("editor"),
		clock:        quartz.NewReal(),
		advanceDelay: DefaultAdvanceDelay,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.cur = Snapshot{Hand: h.Clone(), Street: h.CurrentStreet()}
	s.hist = history.New(s.cur, history.DefaultLimit)
	return s
}

// Hand returns the current snapshot's hand. Callers must treat it as
// read-only; all mutation goes through the session.
func (s *Session) Hand() *hand.Hand {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur.Hand
}

// Street returns the currently open street
func (s *Session) Street() hand.Street {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur.Street
}

// Append records an action on the open street and, if that completes
// the street's betting round, schedules the debounced advance.
func (s *Session) Append(pos hand.Position, typ hand.ActionType, amount hand.RaiseAmount) (hand.Action, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.cur.Hand
	if !hand.ValidPosition(pos, h.TableSize) {
		return hand.Action{}, fmt.Errorf("editor: %s is not a seat at %d-max", pos, h.TableSize)
	}

	a := hand.Action{
		ID:       handid.New(),
		Order:    h.NextOrder(),
		Street:   s.cur.Street,
		Position: pos,
		Type:     typ,
		Amount:   amount,
	}

	s.applyLocked(func(h *hand.Hand) {
		h.Actions = append(h.Actions, a)
	})

	if s.cur.Hand.StreetComplete(s.cur.Street) {
		s.scheduleAdvanceLocked()
	}
	return a, nil
}

// RemoveAction deletes an action from the open street. Past-street
// actions are display-only: deleting them would corrupt already-closed
// rounds.
func (s *Session) RemoveAction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, a := range s.cur.Hand.Actions {
		if a.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("editor: no action %s", id)
	}
	if s.cur.Hand.Actions[idx].Street != s.cur.Street {
		return fmt.Errorf("editor: action %s is on a closed street", id)
	}

	s.applyLocked(func(h *hand.Hand) {
		h.Actions = append(h.Actions[:idx:idx], h.Actions[idx+1:]...)
	})
	return nil
}

// SetHeroCards sets the hero's hole card slots
func (s *Session) SetHeroCards(cards hand.HoleCards) {
	s.edit(func(h *hand.Hand) { h.HeroCards = cards })
}

// SetFlopCard sets one of the three flop slots independently
func (s *Session) SetFlopCard(slot int, c *hand.Card) error {
	if slot < 0 || slot > 2 {
		return fmt.Errorf("editor: flop slot %d out of range", slot)
	}
	s.edit(func(h *hand.Hand) { h.Board.Flop[slot] = c })
	return nil
}

// SetTurn sets the turn card
func (s *Session) SetTurn(c *hand.Card) {
	s.edit(func(h *hand.Hand) { h.Board.Turn = c })
}

// SetRiver sets the river card
func (s *Session) SetRiver(c *hand.Card) {
	s.edit(func(h *hand.Hand) { h.Board.River = c })
}

// AssignSeat links a seat to a player from the directory. Passing an
// empty id clears the assignment. The hero seat cannot be reassigned.
func (s *Session) AssignSeat(pos hand.Position, playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.cur.Hand
	if !hand.ValidPosition(pos, h.TableSize) {
		return fmt.Errorf("editor: %s is not a seat at %d-max", pos, h.TableSize)
	}
	if pos == h.HeroPosition {
		return fmt.Errorf("editor: %s is the hero seat", pos)
	}

	s.applyLocked(func(h *hand.Hand) {
		if playerID == "" {
			delete(h.Seats, pos)
			return
		}
		h.Seats[pos] = hand.Seat{PlayerID: playerID}
	})
	return nil
}

// SetResult records the winning seats and the showdown flag
func (s *Session) SetResult(winners []hand.Position, showdown bool) {
	s.edit(func(h *hand.Hand) {
		h.Result = hand.Result{Winners: winners, Showdown: showdown}
	})
}

// SetOpponentCards records a shown-down opponent hand for a seat
func (s *Session) SetOpponentCards(pos hand.Position, cards hand.HoleCards) {
	s.edit(func(h *hand.Hand) { h.Opponents[pos] = cards })
}

// SetMemo sets the free-text spot memo
func (s *Session) SetMemo(memo string) {
	s.edit(func(h *hand.Hand) { h.SpotMemo = memo })
}

// SetStatus flips the draft/done lifecycle flag
func (s *Session) SetStatus(status hand.Status) {
	s.edit(func(h *hand.Hand) { h.Status = status })
}

// Undo steps back one snapshot. Any pending advance is cancelled.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.hist.Undo()
	if !ok {
		return false
	}
	s.cancelAdvanceLocked()
	s.cur = prev
	s.persistLocked()
	return true
}

// Redo steps forward one snapshot. Any pending advance is cancelled.
func (s *Session) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := s.hist.Redo()
	if !ok {
		return false
	}
	s.cancelAdvanceLocked()
	s.cur = next
	s.persistLocked()
	return true
}

// AdvancePending reports whether a street advance is scheduled
func (s *Session) AdvancePending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.advanceTimer != nil
}

// Close cancels any scheduled advance. Further edits are rejected by
// the timer guard but the session does not police them otherwise.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelAdvanceLocked()
	s.closed = true
}

// edit wraps a simple snapshot mutation: it cancels any pending
// advance, clones, applies and persists
func (s *Session) edit(fn func(*hand.Hand)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyLocked(fn)
}

func (s *Session) applyLocked(fn func(*hand.Hand)) {
	s.cancelAdvanceLocked()

	next := Snapshot{Hand: s.cur.Hand.Clone(), Street: s.cur.Street}
	fn(next.Hand)
	s.cur = next
	s.hist.Push(next)
	s.persistLocked()
}

// persistLocked hands the current hand to the save callback on its own
// goroutine so a synchronous store never blocks the input loop
func (s *Session) persistLocked() {
	if s.save == nil {
		return
	}
	clone := s.cur.Hand.Clone()
	go s.save(clone)
}

func (s *Session) scheduleAdvanceLocked() {
	if s.cur.Street == hand.River {
		s.logger.Debug("river betting complete, hand ready to finalize", "hand", s.cur.Hand.ID)
		return
	}

	from := s.cur.Street
	s.logger.Debug("street complete, scheduling advance", "street", from, "delay", s.advanceDelay)
	s.advanceTimer = s.clock.AfterFunc(s.advanceDelay, func() {
		s.fireAdvance(from)
	})
}

func (s *Session) fireAdvance(from hand.Street) {
	s.mu.Lock()

	// The triggering edit may have been undone or removed while the
	// timer was pending; advance only if nothing changed underneath.
	if s.closed || s.advanceTimer == nil || s.cur.Street != from {
		s.mu.Unlock()
		return
	}
	s.advanceTimer = nil
	if !s.cur.Hand.StreetComplete(from) {
		s.mu.Unlock()
		return
	}

	next, ok := from.Next()
	if !ok {
		s.mu.Unlock()
		return
	}
	s.cur = Snapshot{Hand: s.cur.Hand, Street: next}
	s.hist.Push(s.cur)
	s.logger.Debug("advanced street", "from", from, "to", next)
	notify := s.onAdvance
	s.mu.Unlock()

	if notify != nil {
		notify(next)
	}
}

func (s *Session) cancelAdvanceLocked() {
	if s.advanceTimer != nil {
		s.advanceTimer.Stop()
		s.advanceTimer = nil
	}
}

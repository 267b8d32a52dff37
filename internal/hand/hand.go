// Package hand holds the recorded-hand data model and the derivation
// engine that recomputes pot sizes, active players, street completion,
// action labels and bet sizing from the append-only action list. All
// derivations are pure functions of the full list; nothing derived is
// ever stored.
package hand

import (
	"fmt"
	"time"
)

// Status is the user-controlled lifecycle flag of a hand
type Status string

const (
	StatusDraft Status = "draft"
	StatusDone  Status = "done"
)

// Blind is one of the fixed set of blind structures, small and big blind
// expressed in currency units. The big-blind-normalized small-blind
// fraction is derived from it.
type Blind struct {
	Name  string  `json:"name"`
	Small float64 `json:"small"`
	Big   float64 `json:"big"`
}

// SBFraction returns the small blind in big-blind units
func (b Blind) SBFraction() float64 {
	if b.Big == 0 {
		return 0
	}
	return b.Small / b.Big
}

func (b Blind) String() string {
	return b.Name
}

// Blinds is the fixed set of selectable blind structures
var Blinds = []Blind{
	{Name: "1/2", Small: 1, Big: 2},
	{Name: "1/3", Small: 1, Big: 3},
	{Name: "2/5", Small: 2, Big: 5},
	{Name: "5/5", Small: 5, Big: 5},
	{Name: "5/10", Small: 5, Big: 10},
	{Name: "10/20", Small: 10, Big: 20},
}

// DefaultBlind is the structure used when none has been chosen
var DefaultBlind = Blinds[0]

// BlindByName looks up a blind structure from the fixed set
func BlindByName(name string) (Blind, bool) {
	for _, b := range Blinds {
		if b.Name == name {
			return b, true
		}
	}
	return Blind{}, false
}

// Seat is one table assignment: an optional player reference plus the
// hero marker. At most one seat carries the hero flag.
type Seat struct {
	PlayerID string `json:"playerId,omitempty"`
	Hero     bool   `json:"hero,omitempty"`
}

// Board holds the community cards: three independently settable flop
// slots plus turn and river
type Board struct {
	Flop  [3]*Card `json:"flop"`
	Turn  *Card    `json:"turn,omitempty"`
	River *Card    `json:"river,omitempty"`
}

// Result records the winning seats (several for split pots) and whether
// the hand went to showdown
type Result struct {
	Winners  []Position `json:"winners"`
	Showdown bool       `json:"showdown"`
}

// HoleCards is a pair of optional card slots
type HoleCards [2]*Card

// Hand is one recorded poker hand. Everything derivable (pot, active
// players, labels, street completion) is recomputed from Actions on
// demand and never persisted.
type Hand struct {
	ID        string    `json:"id"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	TableSize    int                    `json:"tableSize"`
	Blind        Blind                  `json:"blind"`
	HeroPosition Position               `json:"heroPosition"`
	HeroCards    HoleCards              `json:"heroCards"`
	Seats        map[Position]Seat      `json:"tableAssignments"`
	Board        Board                  `json:"board"`
	Actions      []Action               `json:"actions"`
	Result       Result                 `json:"result"`
	Opponents    map[Position]HoleCards `json:"opponentHands,omitempty"`
	SpotMemo     string                 `json:"spotMemo,omitempty"`
}

// New creates a draft hand. The hero seat assignment mirrors heroPos.
func New(id string, tableSize int, blind Blind, heroPos Position, now time.Time) (*Hand, error) {
	if tableSize < MinTableSize || tableSize > MaxTableSize {
		return nil, fmt.Errorf("hand: table size %d out of range", tableSize)
	}
	if !ValidPosition(heroPos, tableSize) {
		return nil, fmt.Errorf("hand: position %s not valid at %d-max", heroPos, tableSize)
	}

	return &Hand{
		ID:           id,
		Status:       StatusDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
		TableSize:    tableSize,
		Blind:        blind,
		HeroPosition: heroPos,
		Seats:        map[Position]Seat{heroPos: {Hero: true}},
		Opponents:    map[Position]HoleCards{},
	}, nil
}

// NextOrder returns the order value for the next appended action
func (h *Hand) NextOrder() int {
	next := 1
	for _, a := range h.Actions {
		if a.Order >= next {
			next = a.Order + 1
		}
	}
	return next
}

// StreetActions returns the hand's actions on the given street, in
// chronological order
func (h *Hand) StreetActions(street Street) []Action {
	return StreetActions(h.Actions, street)
}

// CurrentStreet derives the open street from the recorded actions: the
// latest street whose betting round is not yet complete, advancing past
// every completed one.
func (h *Hand) CurrentStreet() Street {
	street := Preflop
	for {
		if !h.StreetComplete(street) {
			return street
		}
		next, ok := street.Next()
		if !ok {
			return River
		}
		street = next
	}
}

// StreetComplete reports whether the betting round on the given street
// is closed
func (h *Hand) StreetComplete(street Street) bool {
	return IsStreetComplete(street, h.StreetActions(street), h.SeatsInStreet(street), ExplicitFolds(h.Actions))
}

// SeatsInStreet returns the seats contesting the given street, in action
// order for that street. Seats folded on earlier streets are excluded;
// same-street folds are not, so completion logic can account for them.
func (h *Hand) SeatsInStreet(street Street) []Position {
	if street == Preflop {
		implicit := map[Position]bool{}
		for _, p := range ImplicitFolds(h.Actions, PreflopOrder(h.TableSize)) {
			implicit[p] = true
		}
		var out []Position
		for _, p := range PreflopOrder(h.TableSize) {
			if !implicit[p] {
				out = append(out, p)
			}
		}
		return out
	}

	folded := map[Position]bool{}
	for _, a := range h.Actions {
		if a.Type == Fold && a.Street < street {
			folded[a.Position] = true
		}
	}
	var out []Position
	for _, p := range PlayersInHand(h.StreetActions(Preflop), PostflopOrder(h.TableSize)) {
		if !folded[p] {
			out = append(out, p)
		}
	}
	return out
}

// PotAt returns the pot entering the given street in big blinds
func (h *Hand) PotAt(street Street) float64 {
	return PotAtStreet(h.Actions, street, h.TableSize, h.Blind)
}

// Clone returns a deep copy of the hand, for snapshot-based editing
func (h *Hand) Clone() *Hand {
	c := *h

	c.HeroCards = h.HeroCards.clone()

	c.Seats = make(map[Position]Seat, len(h.Seats))
	for k, v := range h.Seats {
		c.Seats[k] = v
	}

	c.Board.Flop = [3]*Card{cloneCard(h.Board.Flop[0]), cloneCard(h.Board.Flop[1]), cloneCard(h.Board.Flop[2])}
	c.Board.Turn = cloneCard(h.Board.Turn)
	c.Board.River = cloneCard(h.Board.River)

	c.Actions = make([]Action, len(h.Actions))
	copy(c.Actions, h.Actions)

	c.Result.Winners = make([]Position, len(h.Result.Winners))
	copy(c.Result.Winners, h.Result.Winners)

	c.Opponents = make(map[Position]HoleCards, len(h.Opponents))
	for k, v := range h.Opponents {
		c.Opponents[k] = v.clone()
	}

	return &c
}

func (hc HoleCards) clone() HoleCards {
	return HoleCards{cloneCard(hc[0]), cloneCard(hc[1])}
}

func cloneCard(c *Card) *Card {
	if c == nil {
		return nil
	}
	copied := *c
	return &copied
}

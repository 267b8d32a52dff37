package hand

import (
	"fmt"
	"sort"
	"strconv"
)

// ActionType represents a recorded action kind. Bet, raise and all-in are
// all stored as Raise: a new chip commitment others must respond to. The
// displayed label (bet vs raise, open vs Nbet) is derived, never stored.
type ActionType int

const (
	Fold ActionType = iota
	Check
	Call
	Raise
)

func (a ActionType) String() string {
	return [...]string{"fold", "check", "call", "raise"}[a]
}

// MarshalText encodes the action type as its lowercase name
func (a ActionType) MarshalText() ([]byte, error) {
	if a < Fold || a > Raise {
		return nil, fmt.Errorf("hand: invalid action type %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText decodes a lowercase action type name
func (a *ActionType) UnmarshalText(text []byte) error {
	for t := Fold; t <= Raise; t++ {
		if t.String() == string(text) {
			*a = t
			return nil
		}
	}
	return fmt.Errorf("hand: unknown action type %q", text)
}

// allInSentinel is the legacy wire encoding for an all-in whose amount is
// unknown because no stack size was recorded.
const allInSentinel = -1

// RaiseAmount is the size of a raise-kind action in big-blind units. It is
// either a fixed chip amount or an all-in of unknown size. The JSON form
// is a plain number, with -1 meaning unknown all-in.
type RaiseAmount struct {
	chips   float64
	unknown bool
}

// FixedAmount returns a known chip amount in big blinds
func FixedAmount(bb float64) RaiseAmount {
	return RaiseAmount{chips: bb}
}

// AllInUnknown returns the unknown-size all-in amount
func AllInUnknown() RaiseAmount {
	return RaiseAmount{unknown: true}
}

// Chips returns the chip amount and whether it is known
func (r RaiseAmount) Chips() (float64, bool) {
	return r.chips, !r.unknown
}

// Unknown reports whether this is an all-in of unknown size
func (r RaiseAmount) Unknown() bool {
	return r.unknown
}

func (r RaiseAmount) String() string {
	if r.unknown {
		return "all-in"
	}
	return strconv.FormatFloat(r.chips, 'f', -1, 64) + "bb"
}

// MarshalJSON encodes the amount as a number, -1 for unknown all-ins
func (r RaiseAmount) MarshalJSON() ([]byte, error) {
	if r.unknown {
		return []byte(strconv.Itoa(allInSentinel)), nil
	}
	return []byte(strconv.FormatFloat(r.chips, 'f', -1, 64)), nil
}

// UnmarshalJSON decodes a number, mapping the -1 sentinel to unknown
func (r *RaiseAmount) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("hand: invalid raise amount %q: %w", data, err)
	}
	if v == allInSentinel {
		*r = AllInUnknown()
		return nil
	}
	if v < 0 {
		return fmt.Errorf("hand: negative raise amount %v", v)
	}
	*r = FixedAmount(v)
	return nil
}

// Action is one recorded betting event. Actions are never mutated after
// creation; corrections are modeled as delete + re-add. Order is assigned
// at append time and strictly increases across the whole hand, so it is
// the only valid chronological sort key (deletions do not renumber).
type Action struct {
	ID       string      `json:"id"`
	Order    int         `json:"order"`
	Street   Street      `json:"street"`
	Position Position    `json:"position"`
	Type     ActionType  `json:"type"`
	Amount   RaiseAmount `json:"sizeBb"`
}

// IsRaise reports whether the action is raise-kind (bet/raise/all-in)
func (a Action) IsRaise() bool {
	return a.Type == Raise
}

// sortChronological orders a copy of actions by their append order
func sortChronological(actions []Action) []Action {
	sorted := make([]Action, len(actions))
	copy(sorted, actions)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	return sorted
}

// StreetActions returns the actions recorded on the given street, in
// chronological order
func StreetActions(actions []Action, street Street) []Action {
	var out []Action
	for _, a := range sortChronological(actions) {
		if a.Street == street {
			out = append(out, a)
		}
	}
	return out
}

package hand

// Position is a table position label, denoting both a role and an
// action-order slot
type Position string

const (
	UTG  Position = "UTG"
	UTG1 Position = "UTG1"
	UTG2 Position = "UTG2"
	LJ   Position = "LJ"
	HJ   Position = "HJ"
	CO   Position = "CO"
	BTN  Position = "BTN"
	SB   Position = "SB"
	BB   Position = "BB"
)

// MinTableSize and MaxTableSize bound the supported table sizes.
// DefaultTableSize is the fallback for out-of-range requests.
const (
	MinTableSize     = 2
	MaxTableSize     = 9
	DefaultTableSize = 6
)

// preflopOrders maps table size to the seats in preflop action order.
// BB is always last. Heads-up tables have no separate SB seat: the
// button posts the small blind and acts first.
var preflopOrders = map[int][]Position{
	2: {BTN, BB},
	3: {BTN, SB, BB},
	4: {CO, BTN, SB, BB},
	5: {HJ, CO, BTN, SB, BB},
	6: {UTG, HJ, CO, BTN, SB, BB},
	7: {UTG, LJ, HJ, CO, BTN, SB, BB},
	8: {UTG, UTG1, LJ, HJ, CO, BTN, SB, BB},
	9: {UTG, UTG1, UTG2, LJ, HJ, CO, BTN, SB, BB},
}

// postflopOrders maps table size to the seats in postflop action order.
// The blinds act first and the button last.
var postflopOrders = map[int][]Position{
	2: {BB, BTN},
	3: {SB, BB, BTN},
	4: {SB, BB, CO, BTN},
	5: {SB, BB, HJ, CO, BTN},
	6: {SB, BB, UTG, HJ, CO, BTN},
	7: {SB, BB, UTG, LJ, HJ, CO, BTN},
	8: {SB, BB, UTG, UTG1, LJ, HJ, CO, BTN},
	9: {SB, BB, UTG, UTG1, UTG2, LJ, HJ, CO, BTN},
}

// PreflopOrder returns the seats for the given table size in preflop
// action order. Out-of-range sizes fall back to the default table size.
func PreflopOrder(tableSize int) []Position {
	order, ok := preflopOrders[tableSize]
	if !ok {
		order = preflopOrders[DefaultTableSize]
	}
	out := make([]Position, len(order))
	copy(out, order)
	return out
}

// PostflopOrder returns the seats for the given table size in postflop
// action order. Out-of-range sizes fall back to the default table size.
func PostflopOrder(tableSize int) []Position {
	order, ok := postflopOrders[tableSize]
	if !ok {
		order = postflopOrders[DefaultTableSize]
	}
	out := make([]Position, len(order))
	copy(out, order)
	return out
}

// ValidPosition reports whether seat is part of the position set for the
// given table size
func ValidPosition(seat Position, tableSize int) bool {
	for _, p := range PreflopOrder(tableSize) {
		if p == seat {
			return true
		}
	}
	return false
}

package hand

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the display glyph for the suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Letter returns the compact one-letter form used in storage and exports
func (s Suit) Letter() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank, aces high
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankLetters = map[Rank]string{
	Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7",
	Eight: "8", Nine: "9", Ten: "T", Jack: "J", Queen: "Q", King: "K", Ace: "A",
}

func (r Rank) String() string {
	if s, ok := rankLetters[r]; ok {
		return s
	}
	return "?"
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the compact form of the card (e.g. "Ah")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.Letter()
}

// Display returns the pretty form of the card (e.g. "A♥")
func (c Card) Display() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseCard parses the compact two-character form (e.g. "Ks", "Th")
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("hand: invalid card %q", s)
	}

	var rank Rank
	found := false
	for r, letter := range rankLetters {
		if letter == string(s[0]) {
			rank = r
			found = true
			break
		}
	}
	if !found {
		return Card{}, fmt.Errorf("hand: invalid card rank %q", s)
	}

	var suit Suit
	switch s[1] {
	case 's':
		suit = Spades
	case 'h':
		suit = Hearts
	case 'd':
		suit = Diamonds
	case 'c':
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("hand: invalid card suit %q", s)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MarshalText encodes the card in its compact form
func (c Card) MarshalText() ([]byte, error) {
	if c.Rank.String() == "?" || c.Suit.Letter() == "?" {
		return nil, fmt.Errorf("hand: invalid card %+v", c)
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes the compact card form
func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

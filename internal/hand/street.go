package hand

import "fmt"

// Street represents a betting round
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

func (s Street) String() string {
	return [...]string{"preflop", "flop", "turn", "river"}[s]
}

// Code returns the short street code used in exported action lines
func (s Street) Code() string {
	return [...]string{"PF", "F", "T", "R"}[s]
}

// Next returns the following street, or false if s is the river
func (s Street) Next() (Street, bool) {
	if s >= River {
		return River, false
	}
	return s + 1, true
}

// MarshalText encodes the street as its lowercase name
func (s Street) MarshalText() ([]byte, error) {
	if s < Preflop || s > River {
		return nil, fmt.Errorf("hand: invalid street %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a lowercase street name
func (s *Street) UnmarshalText(text []byte) error {
	for st := Preflop; st <= River; st++ {
		if st.String() == string(text) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("hand: unknown street %q", text)
}

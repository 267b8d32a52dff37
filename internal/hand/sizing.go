package hand

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// PreflopOpenPresets are the fixed big-blind sizes offered for the first
// preflop raise. Later raises offer free entry and all-in only.
var PreflopOpenPresets = []float64{2, 2.5, 3, 3.5, 4}

// Fraction is a pot-fraction bet-size preset
type Fraction struct {
	Num int
	Den int
}

func (f Fraction) String() string {
	if f.Num == f.Den {
		return "pot"
	}
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// PotFractionPresets are the postflop sizing shortcuts, expressed as
// multiples of the pot entering the street
var PotFractionPresets = []Fraction{
	{1, 4}, {1, 3}, {1, 2}, {2, 3}, {1, 1},
}

// SizingOptions describes which size inputs to offer for an action
type SizingOptions struct {
	Presets   []float64  // fixed big-blind amounts, preflop opens only
	Fractions []Fraction // pot fractions, postflop only
	AllIn     bool
	FreeForm  bool
}

// OptionsFor returns the sizing inputs to offer a raise on the given
// street, given how many raises were already recorded there
func OptionsFor(street Street, priorRaises int) SizingOptions {
	opts := SizingOptions{AllIn: true, FreeForm: true}
	if street == Preflop {
		if priorRaises == 0 {
			opts.Presets = PreflopOpenPresets
		}
		return opts
	}
	opts.Fractions = PotFractionPresets
	return opts
}

// ResolveFraction converts a pot-fraction preset into a chip amount in
// big blinds, rounding half away from zero (2.5 rounds to 3).
func ResolveFraction(pot float64, f Fraction) float64 {
	return math.Round(pot * float64(f.Num) / float64(f.Den))
}

var amountPattern = regexp.MustCompile(`^[0-9]+([.,][0-9]+)?$`)

// ParseAmount parses free-form numeric size entry. Only positive decimal
// values with at most one fractional separator are accepted; anything
// else is rejected with no action recorded.
func ParseAmount(input string) (float64, error) {
	trimmed := strings.TrimSpace(input)
	if !amountPattern.MatchString(trimmed) {
		return 0, fmt.Errorf("hand: invalid amount %q", input)
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("hand: invalid amount %q: %w", input, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("hand: amount must be positive, got %v", v)
	}
	return v, nil
}

// Contributed returns the seat's total contribution across the whole
// hand in big blinds, blinds included, with actions up to and including
// the current street applied. Unknown all-in sizes count as the fixed
// placeholder, consistent with the pot calculator.
func Contributed(actions []Action, seat Position, tableSize int, blind Blind) float64 {
	bets := map[Position]float64{BB: 1}
	if tableSize >= 3 {
		bets[SB] = blind.SBFraction()
	}

	total := 0.0
	for st := Preflop; st <= River; st++ {
		for _, a := range StreetActions(actions, st) {
			switch {
			case a.IsRaise():
				amount, known := a.Amount.Chips()
				if !known {
					amount = allInPlaceholderBB
				}
				bets[a.Position] = amount
			case a.Type == Call:
				bets[a.Position] = maxContribution(bets)
			}
		}
		total += bets[seat]
		bets = map[Position]float64{}
	}
	return total
}

// AllInAmount resolves the recorded size of an all-in. With a known
// stack the action carries the seat's exact remaining chips; otherwise
// the unknown-size sentinel is recorded.
func AllInAmount(actions []Action, seat Position, stack float64, stackKnown bool, tableSize int, blind Blind) RaiseAmount {
	if !stackKnown {
		return AllInUnknown()
	}
	remaining := stack - Contributed(actions, seat, tableSize, blind)
	if remaining < 0 {
		remaining = 0
	}
	return FixedAmount(remaining)
}

package hand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFraction(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5.0, ResolveFraction(7, Fraction{2, 3}))
	assert.Equal(t, 7.0, ResolveFraction(7, Fraction{1, 1}))
	assert.Equal(t, 2.0, ResolveFraction(7, Fraction{1, 4}))
}

func TestResolveFractionRoundsHalfAwayFromZero(t *testing.T) {
	t.Parallel()

	// 10 * 1/4 = 2.5 rounds up, not to even
	assert.Equal(t, 3.0, ResolveFraction(10, Fraction{1, 4}))
	assert.Equal(t, 5.0, ResolveFraction(9, Fraction{1, 2}))
}

func TestOptionsForFirstPreflopRaiseOffersPresets(t *testing.T) {
	t.Parallel()

	opts := OptionsFor(Preflop, 0)
	assert.Equal(t, PreflopOpenPresets, opts.Presets)
	assert.Empty(t, opts.Fractions)
	assert.True(t, opts.AllIn)
	assert.True(t, opts.FreeForm)
}

func TestOptionsForPreflopReRaiseHasNoPresets(t *testing.T) {
	t.Parallel()

	opts := OptionsFor(Preflop, 1)
	assert.Empty(t, opts.Presets)
	assert.True(t, opts.AllIn)
	assert.True(t, opts.FreeForm)
}

func TestOptionsForPostflopOffersPotFractions(t *testing.T) {
	t.Parallel()

	opts := OptionsFor(Turn, 0)
	assert.Equal(t, PotFractionPresets, opts.Fractions)
	assert.Empty(t, opts.Presets)
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"2.5", 2.5, true},
		{"2,5", 2.5, true},
		{"10", 10, true},
		{" 3 ", 3, true},
		{"0", 0, false},
		{"-4", 0, false},
		{"1.2.3", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"1e3", 0, false},
	}

	for _, tc := range tests {
		got, err := ParseAmount(tc.input)
		if tc.ok {
			require.NoError(t, err, "input %q", tc.input)
			assert.Equal(t, tc.want, got, "input %q", tc.input)
		} else {
			assert.Error(t, err, "input %q", tc.input)
		}
	}
}

func TestContributedIncludesBlinds(t *testing.T) {
	t.Parallel()

	actions := []Action{
		act(1, Preflop, BTN, Raise, FixedAmount(3)),
		act(2, Preflop, SB, Fold),
		act(3, Preflop, BB, Call),
		act(4, Flop, BB, Raise, FixedAmount(4)),
	}

	assert.Equal(t, 0.5, Contributed(actions, SB, 6, halfBlind))
	assert.Equal(t, 7.0, Contributed(actions, BB, 6, halfBlind))
	assert.Equal(t, 3.0, Contributed(actions, BTN, 6, halfBlind))
}

func TestAllInAmountClampsToRemainingStack(t *testing.T) {
	t.Parallel()

	actions := []Action{
		act(1, Preflop, BTN, Raise, FixedAmount(3)),
		act(2, Preflop, BB, Call),
	}

	amount := AllInAmount(actions, BB, 50, true, 6, halfBlind)
	chips, known := amount.Chips()
	require.True(t, known)
	assert.Equal(t, 47.0, chips)
}

func TestAllInAmountUnknownStack(t *testing.T) {
	t.Parallel()

	amount := AllInAmount(nil, BTN, 0, false, 6, halfBlind)
	assert.True(t, amount.Unknown())
}

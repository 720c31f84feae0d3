package odds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmoran14/buddies-cup/internal/models"
)

func TestSnapHandicap(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{4, 4},
		{23, 23},
		{6, 5},   // 5 is nearer than 8
		{14, 13}, // 13 is nearer than 16
		{18, 16}, // Equidistant from 16 and 20: ties prefer the lower value
		{1, 4},   // Below the table floor
		{30, 23}, // Above the table ceiling
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, snapHandicap(tt.in), "snap(%d)", tt.in)
	}
}

func TestMatchupPickem(t *testing.T) {
	line := Matchup(10, 10)
	assert.Equal(t, 50.0, line.AWinPct)
	assert.Equal(t, 50.0, line.BWinPct)
	assert.Equal(t, -105, line.AMoneyline)
	assert.Equal(t, -105, line.BMoneyline)

	// Different inputs snapping to the same table value are also a pick'em:
	// 14 and 13 both snap to 13.
	same := Matchup(14, 13)
	assert.Equal(t, -105, same.AMoneyline)
	assert.Equal(t, -105, same.BMoneyline)
}

func TestMatchupSymmetry(t *testing.T) {
	set := []int{4, 5, 8, 9, 10, 11, 12, 13, 16, 20, 21, 23}
	for _, a := range set {
		for _, b := range set {
			ab := Matchup(a, b)
			ba := Matchup(b, a)
			assert.InDelta(t, 100, ab.AWinPct+ab.BWinPct, 1e-9, "(%d,%d)", a, b)
			assert.Equal(t, ab.AMoneyline, ba.BMoneyline, "(%d,%d)", a, b)
			assert.Equal(t, ab.BMoneyline, ba.AMoneyline, "(%d,%d)", a, b)
		}
	}
}

func TestMatchupHigherHandicapIsTheFavorite(t *testing.T) {
	// Net scoring at full playing handicaps: the more strokes you get, the
	// more holes you win. The 4 against the 23 is a massive underdog.
	line := Matchup(4, 23)
	assert.Less(t, line.AWinPct, 1.0)
	assert.Greater(t, line.BWinPct, 99.0)
	assert.Positive(t, line.AMoneyline)
	assert.Negative(t, line.BMoneyline)
	assert.Less(t, line.BMoneyline, -10000) // Deeply lopsided favorite
	assert.Zero(t, line.AMoneyline%5)
	assert.Zero(t, line.BMoneyline%5)
}

func TestMoneylineForRoundsToNearestFive(t *testing.T) {
	tests := []struct {
		pct  float64
		want int
	}{
		{50, -100},
		{60, -150},
		{40, 150},
		{66.67, -200},
		{33.33, 200},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, moneylineFor(tt.pct), "pct %.2f", tt.pct)
	}
}

func TestSmoothWinPctInterpolatesBetweenTableValues(t *testing.T) {
	// 14 sits between the simulated 13 and 16: the smooth value must land
	// strictly between the two discrete values.
	p13 := discreteWinPct(13, 8)
	p16 := discreteWinPct(16, 8)
	p14 := smoothWinPct(14, 8)
	assert.Greater(t, p14, p13)
	assert.Less(t, p14, p16)
}

func TestSmoothWinPctClampedOutsideTable(t *testing.T) {
	// Extrapolating far past the table stays inside [2, 98] so a quote never
	// reads as certain.
	assert.GreaterOrEqual(t, smoothWinPct(-10, 23), 2.0)
	assert.LessOrEqual(t, smoothWinPct(40, 4), 98.0)
}

func TestTeaseMonotone(t *testing.T) {
	// Every stroke added to a handicap makes that side stronger under net
	// scoring, so win% never decreases as the shift grows.
	prev := Tease(10, 12, -5, models.BetTypeOverall).AWinPct
	for shift := -4; shift <= 5; shift++ {
		cur := Tease(10, 12, shift, models.BetTypeOverall).AWinPct
		assert.GreaterOrEqual(t, cur, prev, "shift %d", shift)
		prev = cur
	}
}

func TestTeaseNineHoleRegression(t *testing.T) {
	overall := Tease(8, 16, 2, models.BetTypeOverall)
	front := Tease(8, 16, 2, models.BetTypeFront)
	back := Tease(8, 16, 2, models.BetTypeBack)

	// The 9-hole bets regress toward the coin flip: same side of 50, smaller
	// edge. Front and back share the identical regression.
	assert.Equal(t, front, back)
	require.NotEqual(t, 50.0, overall.AWinPct)
	distOverall := overall.AWinPct - 50
	distFront := front.AWinPct - 50
	assert.InDelta(t, nineHoleRegression*distOverall, distFront, 1e-9)
}

func TestTeamEffectiveHandicap(t *testing.T) {
	tests := []struct {
		h1, h2, want int
	}{
		{10, 20, 14}, // 10*0.6 + 20*0.4
		{20, 10, 14}, // Order insensitive
		{5, 8, 6},    // 6.2 rounds down
		{9, 9, 9},
		{4, 23, 12}, // 2.4 + 9.2 = 11.6 rounds up
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TeamEffectiveHandicap(tt.h1, tt.h2), "(%d,%d)", tt.h1, tt.h2)
	}
}

func TestLiveWinProbabilityBoundaries(t *testing.T) {
	// Nothing played: the pre-match number stands.
	assert.Equal(t, 73.5, LiveWinProbability(73.5, 0, 0, 18))

	// Round complete: only the sign of the lead matters.
	assert.Equal(t, 99.0, LiveWinProbability(20, 3, 18, 18))
	assert.Equal(t, 1.0, LiveWinProbability(80, -1, 18, 18))
	assert.Equal(t, 50.0, LiveWinProbability(80, 0, 18, 18))
}

func TestLiveWinProbabilityBlendsTowardEvidence(t *testing.T) {
	base := 30.0

	// Leading mid-round pulls the number up from a weak pre-match quote, and
	// more holes at the same lead pull harder (the live term gains weight and
	// the lead means more with fewer holes left).
	early := LiveWinProbability(base, 2, 3, 18)
	late := LiveWinProbability(base, 2, 12, 18)
	assert.Greater(t, early, base)
	assert.Greater(t, late, early)

	// Trailing drags it down symmetrically.
	assert.Less(t, LiveWinProbability(70, -2, 12, 18), 70.0)

	// Never clamps past the live bounds while holes remain.
	extreme := LiveWinProbability(99, 15, 17, 18)
	assert.LessOrEqual(t, extreme, 98.0)
	assert.GreaterOrEqual(t, LiveWinProbability(1, -15, 17, 18), 2.0)
}

func TestFormatMoneyline(t *testing.T) {
	tests := []struct {
		ml   int
		want string
	}{
		{130, "+130"},
		{-150, "-150"},
		{100, "EVEN"},
		{-100, "EVEN"},
		{105, "EVEN"},
		{-105, "EVEN"},
		{110, "+110"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMoneyline(tt.ml), "ml %d", tt.ml)
	}
}

func TestTableCoversEveryPair(t *testing.T) {
	for i, a := range handicapSet {
		for _, b := range handicapSet[i+1:] {
			row, ok := lookupRow(a, b)
			require.True(t, ok, "(%d,%d)", a, b)
			assert.Equal(t, a, row.low)
			assert.Equal(t, b, row.high)
			assert.Greater(t, row.higherWin, row.lowerWin, "(%d,%d)", a, b)
			assert.InDelta(t, 100, row.lowerWin+row.higherWin+row.draw, 0.5, "(%d,%d)", a, b)
		}
	}
}

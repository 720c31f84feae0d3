package odds

import (
	"fmt"
	"math"

	"github.com/dmoran14/buddies-cup/internal/models"
)

// Line is a priced two-way matchup. Win percentages are the draw-excluded,
// renormalized values (they sum to 100); moneylines are American odds rounded
// to the nearest 5, negative for the favorite.
type Line struct {
	AWinPct    float64 `json:"a_win_pct"`
	BWinPct    float64 `json:"b_win_pct"`
	AMoneyline int     `json:"a_moneyline"`
	BMoneyline int     `json:"b_moneyline"`
}

// pickemMoneyline is the fixed juiced line quoted when both players snap to
// the same table handicap: a true 50/50 with the house's nickel on each side.
const pickemMoneyline = -105

// snapHandicap snaps a handicap to the nearest value in the simulated set.
// Ties between two equally near values prefer the lower one (the set is
// scanned ascending and only a strictly smaller distance moves the pick).
func snapHandicap(h int) int {
	best := handicapSet[0]
	bestDist := math.Abs(float64(h - best))
	for _, v := range handicapSet[1:] {
		if d := math.Abs(float64(h - v)); d < bestDist {
			best, bestDist = v, d
		}
	}
	return best
}

// discreteWinPct returns a's renormalized (draw-excluded) win percentage
// against b, both already snapped to table values. Same value → 50.
func discreteWinPct(a, b int) float64 {
	if a == b {
		return 50
	}
	row, ok := lookupRow(a, b)
	if !ok {
		return 50
	}
	lowerPct := row.lowerWin / (row.lowerWin + row.higherWin) * 100
	if a < b {
		return lowerPct
	}
	return 100 - lowerPct
}

// moneylineFor converts a win percentage into an American moneyline rounded to
// the nearest 5. At or above 50 the side lays odds (negative); below 50 it
// takes them (positive).
func moneylineFor(winPct float64) int {
	if winPct >= 50 {
		return int(math.Round(-(winPct/(100-winPct))*100/5) * 5)
	}
	return int(math.Round((100-winPct)/winPct*100/5) * 5)
}

// lineFromPct builds a symmetric Line from side A's win percentage.
func lineFromPct(aWinPct float64) Line {
	return Line{
		AWinPct:    aWinPct,
		BWinPct:    100 - aWinPct,
		AMoneyline: moneylineFor(aWinPct),
		BMoneyline: moneylineFor(100 - aWinPct),
	}
}

// Matchup quotes the pre-match line for two playing handicaps using straight
// nearest-neighbor snapping into the empirical table. Symmetric by
// construction: Matchup(a, b).AMoneyline == Matchup(b, a).BMoneyline.
func Matchup(hcpA, hcpB int) Line {
	a, b := snapHandicap(hcpA), snapHandicap(hcpB)
	if a == b {
		return Line{AWinPct: 50, BWinPct: 50, AMoneyline: pickemMoneyline, BMoneyline: pickemMoneyline}
	}
	return lineFromPct(discreteWinPct(a, b))
}

// smoothWinPct computes side A's win percentage against hcpB with hcpA treated
// continuously: linear interpolation between the bracketing table handicaps
// inside the simulated range, linear extrapolation on the boundary slope
// outside it, clamped to [2, 98]. This is what makes teased handicaps beyond
// the empirical range produce distinct, monotone lines.
func smoothWinPct(hcpA float64, hcpB int) float64 {
	b := snapHandicap(hcpB)
	n := len(handicapSet)
	min, max := handicapSet[0], handicapSet[n-1]

	var pct float64
	switch {
	case hcpA <= float64(min):
		pct = extrapolate(hcpA, min, handicapSet[1], b)
	case hcpA >= float64(max):
		pct = extrapolate(hcpA, handicapSet[n-2], max, b)
	default:
		for i := 0; i < n-1; i++ {
			lo, hi := handicapSet[i], handicapSet[i+1]
			if hcpA >= float64(lo) && hcpA <= float64(hi) {
				pct = lerp(hcpA, lo, hi, b)
				break
			}
		}
	}
	return clamp(pct, 2, 98)
}

// lerp linearly interpolates A's win% between two table handicaps.
func lerp(x float64, lo, hi, opponent int) float64 {
	pLo := discreteWinPct(lo, opponent)
	pHi := discreteWinPct(hi, opponent)
	t := (x - float64(lo)) / float64(hi-lo)
	return pLo + t*(pHi-pLo)
}

// extrapolate extends the win% curve past the table boundary using the slope
// between the two nearest table values.
func extrapolate(x float64, lo, hi, opponent int) float64 {
	pLo := discreteWinPct(lo, opponent)
	pHi := discreteWinPct(hi, opponent)
	slope := (pHi - pLo) / float64(hi-lo)
	return pLo + (x-float64(lo))*slope
}

// MatchupSmooth quotes a line with hcpA interpolated/extrapolated against the
// table instead of snapped. Used wherever a shifted or effective handicap may
// fall between (or outside) the simulated values.
func MatchupSmooth(hcpA, hcpB int) Line {
	return lineFromPct(smoothWinPct(float64(hcpA), hcpB))
}

// nineHoleRegression is how far a 9-hole bet's win% is kept away from the
// 18-hole value: over nine holes variance is higher, so the edge regresses
// 45% of the way toward a coin flip (keeping 55% of the distance from 50).
const nineHoleRegression = 0.55

// Tease reprices a matchup after the bettor shifts side A's handicap by
// strokeShift (signed, typically ±1..5). Front and back bets settle over nine
// holes and get the variance regression; overall bets use the 18-hole value.
func Tease(hcpA, hcpB, strokeShift int, betType models.BetType) Line {
	pct := smoothWinPct(float64(hcpA+strokeShift), hcpB)
	if betType == models.BetTypeFront || betType == models.BetTypeBack {
		pct = 50 + nineHoleRegression*(pct-50)
	}
	return lineFromPct(pct)
}

// TeamEffectiveHandicap collapses a two-player best-ball side into a single
// handicap for pricing. The stronger player is weighted 60/40 because best
// ball rides the better score most holes.
func TeamEffectiveHandicap(hcp1, hcp2 int) int {
	lo, hi := hcp1, hcp2
	if lo > hi {
		lo, hi = hi, lo
	}
	return int(math.Round(float64(lo)*0.6 + float64(hi)*0.4))
}

// LiveWinProbability blends a pre-match win percentage with in-round evidence.
//
// With nothing played it returns the base; with the round complete it returns
// 99/1/50 by the sign of the lead. In between, the lead is scored against a
// normal with sigma = sqrt(remaining holes) * 1.3 (via the standard logistic
// approximation of the normal CDF), and the live estimate ramps linearly from
// no weight to full weight over the first 40% of the round. Clamped to
// [2, 98] so a line never reads as settled while holes remain.
func LiveWinProbability(basePct float64, netLead, holesPlayed, totalHoles int) float64 {
	if holesPlayed <= 0 || totalHoles <= 0 {
		return basePct
	}
	if holesPlayed >= totalHoles {
		switch {
		case netLead > 0:
			return 99
		case netLead < 0:
			return 1
		default:
			return 50
		}
	}

	remaining := float64(totalHoles - holesPlayed)
	sigma := math.Sqrt(remaining) * 1.3
	z := float64(netLead) / sigma
	livePct := 100 / (1 + math.Exp(-1.702*z))

	weight := float64(holesPlayed) / (0.4 * float64(totalHoles))
	if weight > 1 {
		weight = 1
	}
	return clamp(basePct+weight*(livePct-basePct), 2, 98)
}

// FormatMoneyline renders an American moneyline for display: "+130", "-150",
// with the juiced pick'em band (|ml| of 100 or 105) shown as "EVEN".
func FormatMoneyline(ml int) string {
	abs := ml
	if abs < 0 {
		abs = -abs
	}
	if abs == 100 || abs == 105 {
		return "EVEN"
	}
	if ml > 0 {
		return fmt.Sprintf("+%d", ml)
	}
	return fmt.Sprintf("%d", ml)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

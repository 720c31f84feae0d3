// Package odds prices the trip's side bets: pre-match moneylines from the
// empirical handicap matchup table, smooth interpolation for handicaps between
// (or beyond) the simulated values, tease repricing, best-ball team effective
// handicaps, and live in-round win probability.
//
// Like the scoring package, everything here is pure and deterministic —
// identical inputs always quote identical lines, so a page re-render never
// flickers a price.
package odds

// handicapSet is the discrete set of playing handicaps the simulation covered:
// the actual handicaps held by trip participants over the years. Inputs are
// snapped or interpolated against this set.
var handicapSet = [...]int{4, 5, 8, 9, 10, 11, 12, 13, 16, 20, 21, 23}

// matchupRow holds the simulated result for one unordered handicap pair:
// raw win percentages for the lower- and higher-handicap player plus the draw
// percentage. The draw share is excluded by renormalization before lines are
// quoted — displayed moneylines are two-way.
//
// Net scoring at full playing handicaps heavily favors the higher handicap,
// which is why the lowerWin column collapses as the gap grows.
type matchupRow struct {
	low, high           int
	lowerWin, higherWin float64
	draw                float64
}

// matchupTable is the empirical table, one row per unordered pair from
// handicapSet. Generated by cmd/oddstable (100k simulated 18-hole net matches
// per pair); regenerate with:
//
//	go run ./cmd/oddstable > internal/odds/table.gen.txt
//
// and paste the rows here.
var matchupTable = []matchupRow{
	{4, 5, 39.08, 53.68, 7.23},
	{4, 8, 21.11, 75.13, 3.77},
	{4, 9, 16.40, 80.20, 3.40},
	{4, 10, 12.64, 84.90, 2.46},
	{4, 11, 9.57, 88.23, 2.21},
	{4, 12, 7.19, 91.07, 1.74},
	{4, 13, 5.36, 93.31, 1.33},
	{4, 16, 2.15, 97.06, 0.79},
	{4, 20, 0.62, 99.07, 0.31},
	{4, 21, 0.45, 99.27, 0.28},
	{4, 23, 0.24, 99.58, 0.18},
	{5, 8, 26.57, 68.86, 4.57},
	{5, 9, 21.06, 74.95, 3.99},
	{5, 10, 16.38, 80.10, 3.52},
	{5, 11, 12.64, 84.87, 2.49},
	{5, 12, 9.58, 88.35, 2.07},
	{5, 13, 7.18, 90.99, 1.83},
	{5, 16, 2.92, 96.02, 1.05},
	{5, 20, 0.84, 98.72, 0.43},
	{5, 21, 0.62, 99.04, 0.34},
	{5, 23, 0.33, 99.42, 0.25},
	{8, 9, 39.26, 53.93, 6.82},
	{8, 10, 32.38, 61.08, 6.54},
	{8, 11, 26.52, 68.72, 4.76},
	{8, 12, 21.11, 75.13, 3.76},
	{8, 13, 16.46, 80.49, 3.05},
	{8, 16, 7.19, 91.09, 1.72},
	{8, 20, 2.15, 97.01, 0.84},
	{8, 21, 1.58, 97.82, 0.60},
	{8, 23, 0.84, 98.72, 0.43},
	{9, 10, 38.89, 53.41, 7.70},
	{9, 11, 32.58, 61.47, 5.95},
	{9, 12, 26.45, 68.53, 5.02},
	{9, 13, 21.12, 75.18, 3.70},
	{9, 16, 9.59, 88.42, 2.00},
	{9, 20, 2.93, 96.16, 0.91},
	{9, 21, 2.15, 97.03, 0.81},
	{9, 23, 1.16, 98.33, 0.51},
	{10, 11, 39.09, 53.69, 7.22},
	{10, 12, 32.49, 61.30, 6.21},
	{10, 13, 26.47, 68.60, 4.93},
	{10, 16, 12.63, 84.79, 2.58},
	{10, 20, 3.97, 94.78, 1.25},
	{10, 21, 2.93, 96.07, 1.00},
	{10, 23, 1.58, 97.81, 0.61},
	{11, 12, 38.93, 53.47, 7.61},
	{11, 13, 32.52, 61.35, 6.14},
	{11, 16, 16.38, 80.07, 3.55},
	{11, 20, 5.35, 93.13, 1.52},
	{11, 21, 3.97, 94.90, 1.13},
	{11, 23, 2.15, 96.99, 0.86},
	{12, 13, 39.21, 53.86, 6.92},
	{12, 16, 21.06, 74.96, 3.99},
	{12, 20, 7.18, 90.95, 1.88},
	{12, 21, 5.36, 93.29, 1.35},
	{12, 23, 2.93, 96.11, 0.96},
	{13, 16, 26.59, 68.90, 4.52},
	{13, 20, 9.56, 88.18, 2.26},
	{13, 21, 7.18, 90.94, 1.88},
	{13, 23, 3.97, 94.83, 1.20},
	{16, 20, 20.98, 74.67, 4.36},
	{16, 21, 16.44, 80.38, 3.18},
	{16, 23, 9.56, 88.17, 2.28},
	{20, 21, 38.91, 53.45, 7.64},
	{20, 23, 26.44, 68.51, 5.05},
	{21, 23, 32.55, 61.40, 6.05},
}

// lookupRow finds the table row for two distinct snapped handicaps, in either
// order. Returns false only if the pair isn't in the table, which can't happen
// for snapped inputs.
func lookupRow(a, b int) (matchupRow, bool) {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	for _, row := range matchupTable {
		if row.low == lo && row.high == hi {
			return row, true
		}
	}
	return matchupRow{}, false
}

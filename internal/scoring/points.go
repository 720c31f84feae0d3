package scoring

// NetScore is a gross score adjusted by the strokes received on that hole.
func NetScore(gross, strokesReceived int) int {
	return gross - strokesReceived
}

// StablefordPoints converts a net score into match Stableford points.
//
// This is the scale used by the Day 2 team matches:
//
//	net vs par:  -3 or better  -2  -1  even  +1  +2 or worse
//	points:            5        4   3    2    1       0
//
// The quota side game uses its own, steeper table (QuotaPoints below). The two
// scales are intentionally separate games and must never be unified.
func StablefordPoints(net, par int) int {
	switch diff := net - par; {
	case diff <= -3:
		return 5
	case diff == -2:
		return 4
	case diff == -1:
		return 3
	case diff == 0:
		return 2
	case diff == 1:
		return 1
	default:
		return 0
	}
}

// QuotaPoints converts a gross score into quota side-game points.
//
// The side game scores gross (no strokes) against par on its own doubled scale:
//
//	gross vs par:  -3 or better  -2  -1  even  +1  +2 or worse
//	points:              16       8   4    2    1       0
//
// Distinct from StablefordPoints by design; see that function's note.
func QuotaPoints(gross, par int) int {
	switch diff := gross - par; {
	case diff <= -3:
		return 16
	case diff == -2:
		return 8
	case diff == -1:
		return 4
	case diff == 0:
		return 2
	case diff == 1:
		return 1
	default:
		return 0
	}
}

package scoring

import "github.com/dmoran14/buddies-cup/internal/models"

// ComputeRoundStat builds the per-round aggregate record for one player's day:
// gross/net totals, the score-distribution counts, and the best and worst holes
// relative to par. The handler layer persists it; this function only computes.
//
// Only holes with a recorded gross count. A day with no scores yields a zeroed
// record (HolesPlayed 0, hole fields 0).
func ComputeRoundStat(player models.Player, day int, scores []models.Score, course models.Course) models.RoundStat {
	gross := grossByPlayer(scores)
	stat := models.RoundStat{PlayerID: player.ID, Day: day}

	bestDiff, worstDiff := 0, 0
	for hole := 1; hole <= 18; hole++ {
		g, ok := gross[player.ID][hole]
		if !ok {
			continue
		}
		par, si := HoleInfo(course, hole)

		stat.HolesPlayed++
		stat.GrossTotal += g
		stat.NetTotal += NetScore(g, StrokesForHole(player.PlayingHandicap, si))

		switch diff := g - par; {
		case diff <= -2:
			stat.Eagles++
		case diff == -1:
			stat.Birdies++
		case diff == 0:
			stat.Pars++
		case diff == 1:
			stat.Bogeys++
		case diff == 2:
			stat.Doubles++
		default:
			stat.Others++
		}

		diff := g - par
		if stat.BestHole == 0 || diff < bestDiff {
			stat.BestHole = hole
			bestDiff = diff
		}
		if stat.WorstHole == 0 || diff > worstDiff {
			stat.WorstHole = hole
			worstDiff = diff
		}
	}
	stat.BestHoleDiff = bestDiff
	stat.WorstHoleDiff = worstDiff
	return stat
}

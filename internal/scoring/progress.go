package scoring

import "github.com/dmoran14/buddies-cup/internal/models"

// MatchProgress reduces a match to the two numbers the live odds blend needs:
// side 1's aggregate lead and how many holes have been decided.
//
// HolesPlayed counts holes where both sides have data. Lead is hole wins
// (side 1 minus side 2) for best ball, raw point differential for stableford,
// and summed pair hole wins for singles — the same aggregates each format's
// overall point is decided on.
func MatchProgress(in MatchInput) (lead, holesPlayed int) {
	gross := grossByPlayer(in.Scores)

	switch in.Match.Format {
	case models.FormatStableford:
		for hole := 1; hole <= 18; hole++ {
			par, si := HoleInfo(in.Course, hole)
			p1, ok1 := sidePoints(in.Team1, gross, hole, par, si)
			p2, ok2 := sidePoints(in.Team2, gross, hole, par, si)
			if !ok1 || !ok2 {
				continue
			}
			holesPlayed++
			lead += p1 - p2
		}

	case models.FormatIndividual:
		pairs := len(in.Team1)
		if len(in.Team2) < pairs {
			pairs = len(in.Team2)
		}
		decided := 0
		for i := 0; i < pairs; i++ {
			p1, p2 := in.Team1[i], in.Team2[i]
			strokes1 := MatchPlayStrokes(p1.PlayingHandicap, p2.PlayingHandicap, in.Course)
			strokes2 := MatchPlayStrokes(p2.PlayingHandicap, p1.PlayingHandicap, in.Course)
			for hole := 1; hole <= 18; hole++ {
				g1, ok1 := gross[p1.ID][hole]
				g2, ok2 := gross[p2.ID][hole]
				if !ok1 || !ok2 {
					continue
				}
				decided++
				net1 := NetScore(g1, strokes1[hole])
				net2 := NetScore(g2, strokes2[hole])
				switch {
				case net1 < net2:
					lead++
				case net2 < net1:
					lead--
				}
			}
		}
		// Average pair progress so a 4-pair day still reads on an 18-hole scale.
		if pairs > 0 {
			holesPlayed = decided / pairs
		}

	default: // best ball
		for hole := 1; hole <= 18; hole++ {
			_, si := HoleInfo(in.Course, hole)
			net1, ok1 := bestNet(in.Team1, gross, hole, si)
			net2, ok2 := bestNet(in.Team2, gross, hole, si)
			if !ok1 || !ok2 {
				continue
			}
			holesPlayed++
			switch {
			case net1 < net2:
				lead++
			case net2 < net1:
				lead--
			}
		}
	}
	return lead, holesPlayed
}

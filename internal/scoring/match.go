package scoring

import (
	"github.com/google/uuid"

	"github.com/dmoran14/buddies-cup/internal/models"
)

// MatchInput is the read snapshot a match evaluation runs over. The caller
// (handler layer) is responsible for fetching a consistent snapshot; the
// evaluators never touch storage.
//
// Team1 and Team2 are the match rosters resolved to players, ordered by slot.
// For the individual format the rosters are parallel: Team1[i] plays Team2[i].
type MatchInput struct {
	Match  models.Match
	Course models.Course
	Team1  []models.Player
	Team2  []models.Player
	Scores []models.Score
}

// MatchResult is the derived outcome of a match: front-9, back-9, and total
// points per side. Each of front/back is worth one point (ties split 0.5/0.5),
// and the total adds a third point for the overall comparison, so the maximum
// is 3 points per side per match.
type MatchResult struct {
	Team1Front float64            `json:"team1_front"`
	Team1Back  float64            `json:"team1_back"`
	Team1Total float64            `json:"team1_total"`
	Team2Front float64            `json:"team2_front"`
	Team2Back  float64            `json:"team2_back"`
	Team2Total float64            `json:"team2_total"`
	Status     models.MatchStatus `json:"status"`
}

// holeOutcome is the winner of a single hole from team 1's perspective.
type holeOutcome int

const (
	outcomeNone  holeOutcome = iota // At least one side has no score on the hole
	outcomeSide1                    // Team 1 won the hole
	outcomeSide2                    // Team 2 won the hole
	outcomeTie                      // Hole halved
)

// EvaluateMatch dispatches to the evaluator for the match's format.
func EvaluateMatch(in MatchInput) MatchResult {
	switch in.Match.Format {
	case models.FormatStableford:
		return EvaluateStableford(in)
	case models.FormatIndividual:
		return EvaluateIndividual(in)
	default:
		return EvaluateBestBall(in)
	}
}

// grossByPlayer indexes recorded scores by player and hole. Rows with a NULL
// gross are skipped — an empty row means "hole not yet played", never zero.
func grossByPlayer(scores []models.Score) map[uuid.UUID]map[int]int {
	byPlayer := make(map[uuid.UUID]map[int]int)
	for _, s := range scores {
		if s.Gross == nil {
			continue
		}
		if byPlayer[s.PlayerID] == nil {
			byPlayer[s.PlayerID] = make(map[int]int, 18)
		}
		byPlayer[s.PlayerID][s.HoleNumber] = *s.Gross
	}
	return byPlayer
}

// matchStatus reports "upcoming" when no scores exist for the match, otherwise
// "in_progress". "completed" is never emitted here: completion is an external
// determination (every roster player has all 18 holes in).
func matchStatus(gross map[uuid.UUID]map[int]int) models.MatchStatus {
	for _, holes := range gross {
		if len(holes) > 0 {
			return models.MatchStatusInProgress
		}
	}
	return models.MatchStatusUpcoming
}

// segmentPoints splits one point between the sides: outright win takes the
// full point, equal tallies take half each. Applied independently at the
// front, back, and overall levels — ties never cascade.
func segmentPoints(side1, side2 int) (float64, float64) {
	switch {
	case side1 > side2:
		return 1, 0
	case side2 > side1:
		return 0, 1
	default:
		return 0.5, 0.5
	}
}

// bestNet returns the lowest net score among a side's players who have a score
// on the hole, using each player's full playing handicap. ok is false when no
// player on the side has a score there.
func bestNet(side []models.Player, gross map[uuid.UUID]map[int]int, hole, strokeIndex int) (best int, ok bool) {
	for _, p := range side {
		g, has := gross[p.ID][hole]
		if !has {
			continue
		}
		net := NetScore(g, StrokesForHole(p.PlayingHandicap, strokeIndex))
		if !ok || net < best {
			best = net
			ok = true
		}
	}
	return best, ok
}

// tally accumulates hole outcomes into front-9 / back-9 / overall win counts.
type tally struct {
	front1, front2     int
	back1, back2       int
	overall1, overall2 int
}

func (t *tally) add(hole int, outcome holeOutcome) {
	var d1, d2 int
	switch outcome {
	case outcomeSide1:
		d1 = 1
	case outcomeSide2:
		d2 = 1
	default:
		return // Ties and no-data holes move no tallies
	}
	if hole <= 9 {
		t.front1 += d1
		t.front2 += d2
	} else {
		t.back1 += d1
		t.back2 += d2
	}
	t.overall1 += d1
	t.overall2 += d2
}

// result assembles the final MatchResult from the tallies, using the given
// overall aggregates (formats define "overall" differently — best ball uses
// 18-hole win counts, stableford uses raw point sums).
func (t *tally) result(overall1, overall2 int, status models.MatchStatus) MatchResult {
	f1, f2 := segmentPoints(t.front1, t.front2)
	b1, b2 := segmentPoints(t.back1, t.back2)
	o1, o2 := segmentPoints(overall1, overall2)
	return MatchResult{
		Team1Front: f1,
		Team1Back:  b1,
		Team1Total: f1 + b1 + o1,
		Team2Front: f2,
		Team2Back:  b2,
		Team2Total: f2 + b2 + o2,
		Status:     status,
	}
}

// EvaluateBestBall scores a 2v2 better-ball match: on each hole only the lower
// net score on each side counts, and the side with the lower best net wins the
// hole. A hole where either side has no recorded score is no-data and moves
// nothing. The overall point goes to the side with more hole wins across all 18.
func EvaluateBestBall(in MatchInput) MatchResult {
	gross := grossByPlayer(in.Scores)
	var t tally
	for hole := 1; hole <= 18; hole++ {
		_, si := HoleInfo(in.Course, hole)
		net1, ok1 := bestNet(in.Team1, gross, hole, si)
		net2, ok2 := bestNet(in.Team2, gross, hole, si)
		if !ok1 || !ok2 {
			continue
		}
		switch {
		case net1 < net2:
			t.add(hole, outcomeSide1)
		case net2 < net1:
			t.add(hole, outcomeSide2)
		default:
			t.add(hole, outcomeTie)
		}
	}
	return t.result(t.overall1, t.overall2, matchStatus(gross))
}

// EvaluateStableford scores a 2v2 combined-points match: each side sums the
// Stableford points of its players who have a score on the hole, higher sum
// wins the hole. Front and back are decided on hole-win counts like best ball,
// but the overall point compares the raw full-18 point sums per side — a side
// can lose more holes yet take overall on total points.
func EvaluateStableford(in MatchInput) MatchResult {
	gross := grossByPlayer(in.Scores)
	var t tally
	var points1, points2 int
	for hole := 1; hole <= 18; hole++ {
		par, si := HoleInfo(in.Course, hole)
		p1, ok1 := sidePoints(in.Team1, gross, hole, par, si)
		p2, ok2 := sidePoints(in.Team2, gross, hole, par, si)
		points1 += p1
		points2 += p2
		if !ok1 || !ok2 {
			continue
		}
		switch {
		case p1 > p2:
			t.add(hole, outcomeSide1)
		case p2 > p1:
			t.add(hole, outcomeSide2)
		default:
			t.add(hole, outcomeTie)
		}
	}
	return t.result(points1, points2, matchStatus(gross))
}

// sidePoints sums a side's Stableford points on one hole. ok is false when no
// player on the side has a score there.
func sidePoints(side []models.Player, gross map[uuid.UUID]map[int]int, hole, par, strokeIndex int) (points int, ok bool) {
	for _, p := range side {
		g, has := gross[p.ID][hole]
		if !has {
			continue
		}
		net := NetScore(g, StrokesForHole(p.PlayingHandicap, strokeIndex))
		points += StablefordPoints(net, par)
		ok = true
	}
	return points, ok
}

// EvaluateIndividual scores the singles day: rosters pair by slot
// (Team1[i] vs Team2[i]), each pair plays its own front/back/overall
// mini-match with strokes allocated off the low man, and each pair's point
// awards are summed into the team totals.
func EvaluateIndividual(in MatchInput) MatchResult {
	gross := grossByPlayer(in.Scores)
	pairs := len(in.Team1)
	if len(in.Team2) < pairs {
		pairs = len(in.Team2)
	}

	var out MatchResult
	for i := 0; i < pairs; i++ {
		p1, p2 := in.Team1[i], in.Team2[i]
		// Off the low man: only the higher-handicap player of the pair
		// receives strokes, and only the difference is dealt out.
		strokes1 := MatchPlayStrokes(p1.PlayingHandicap, p2.PlayingHandicap, in.Course)
		strokes2 := MatchPlayStrokes(p2.PlayingHandicap, p1.PlayingHandicap, in.Course)

		var t tally
		for hole := 1; hole <= 18; hole++ {
			g1, ok1 := gross[p1.ID][hole]
			g2, ok2 := gross[p2.ID][hole]
			if !ok1 || !ok2 {
				continue
			}
			net1 := NetScore(g1, strokes1[hole])
			net2 := NetScore(g2, strokes2[hole])
			switch {
			case net1 < net2:
				t.add(hole, outcomeSide1)
			case net2 < net1:
				t.add(hole, outcomeSide2)
			default:
				t.add(hole, outcomeTie)
			}
		}

		pair := t.result(t.overall1, t.overall2, models.MatchStatusInProgress)
		out.Team1Front += pair.Team1Front
		out.Team1Back += pair.Team1Back
		out.Team1Total += pair.Team1Total
		out.Team2Front += pair.Team2Front
		out.Team2Back += pair.Team2Back
		out.Team2Total += pair.Team2Total
	}

	out.Status = matchStatus(gross)
	return out
}

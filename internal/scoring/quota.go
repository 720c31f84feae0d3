package scoring

import (
	"sort"

	"github.com/google/uuid"

	"github.com/dmoran14/buddies-cup/internal/models"
)

// QuotaStanding is one player's line in the handicap quota side game.
//
// The game is independent of the team matches: each player chases a personal
// target of 36 minus playing handicap, earning QuotaPoints per hole from gross
// score against par. Beat (or meet) the quota and you're eligible to win.
type QuotaStanding struct {
	PlayerID    uuid.UUID `json:"player_id"`
	PlayerName  string    `json:"player_name"`
	Target      int       `json:"target"`
	TotalPoints int       `json:"total_points"`
	Surplus     int       `json:"surplus"` // TotalPoints minus Target; eligibility margin
	Eligible    bool      `json:"eligible"`
	Rank        int       `json:"rank"`
	Birdies     int       `json:"birdies"` // Gross birdies, used as a tie-break
	Pars        int       `json:"pars"`
}

// hardestHoleGross is the tie-break score: gross on the stroke-index-1 hole.
// Players without a score there sort behind players with one.
type quotaLine struct {
	QuotaStanding
	hardestGross int
	hasHardest   bool
}

// EvaluateQuota computes the side-game standings for a day.
//
// Eligible players (surplus >= 0) rank above every ineligible player and are
// ordered by surplus descending, with ties broken by the lowest gross on the
// hardest hole, then most birdies, then most pars. Ineligible players are
// ordered among themselves by raw total points descending.
func EvaluateQuota(players []models.Player, scores []models.Score, course models.Course) []QuotaStanding {
	gross := grossByPlayer(scores)

	// Which hole carries stroke index 1. Falls back to hole 1 via HoleInfo's
	// defaults when the course data is missing.
	hardestHole := 1
	for _, h := range course.Holes {
		if h.StrokeIndex == 1 {
			hardestHole = h.HoleNumber
			break
		}
	}

	lines := make([]quotaLine, 0, len(players))
	for _, p := range players {
		line := quotaLine{QuotaStanding: QuotaStanding{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Target:     36 - p.PlayingHandicap,
		}}
		for hole := 1; hole <= 18; hole++ {
			g, ok := gross[p.ID][hole]
			if !ok {
				continue
			}
			par, _ := HoleInfo(course, hole)
			line.TotalPoints += QuotaPoints(g, par)
			switch {
			case g == par-1:
				line.Birdies++
			case g == par:
				line.Pars++
			}
			if hole == hardestHole {
				line.hardestGross = g
				line.hasHardest = true
			}
		}
		line.Surplus = line.TotalPoints - line.Target
		line.Eligible = line.Surplus >= 0
		lines = append(lines, line)
	}

	sort.SliceStable(lines, func(i, j int) bool {
		a, b := lines[i], lines[j]
		// Eligible players always rank above ineligible ones.
		if a.Eligible != b.Eligible {
			return a.Eligible
		}
		if !a.Eligible {
			// Ineligible players order by raw points only.
			return a.TotalPoints > b.TotalPoints
		}
		if a.Surplus != b.Surplus {
			return a.Surplus > b.Surplus
		}
		// Tie-breaks: lowest gross on the hardest hole, then most birdies,
		// then most pars. No score on the hardest hole sorts behind a score.
		if a.hasHardest != b.hasHardest {
			return a.hasHardest
		}
		if a.hasHardest && a.hardestGross != b.hardestGross {
			return a.hardestGross < b.hardestGross
		}
		if a.Birdies != b.Birdies {
			return a.Birdies > b.Birdies
		}
		return a.Pars > b.Pars
	})

	standings := make([]QuotaStanding, len(lines))
	for i, line := range lines {
		line.Rank = i + 1
		standings[i] = line.QuotaStanding
	}
	return standings
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dmoran14/buddies-cup/internal/models"
	"github.com/dmoran14/buddies-cup/internal/scoring"
)

// DayStanding is one day's slice of the leaderboard: every match with its
// evaluated result plus the day's team point totals.
type DayStanding struct {
	Day         int             `json:"day"`
	Matches     []MatchResponse `json:"matches"`
	ShaftPoints float64         `json:"shaft_points"`
	BallsPoints float64         `json:"balls_points"`
}

// LeaderboardResponse is the whole-tournament view.
type LeaderboardResponse struct {
	Days       []DayStanding `json:"days"`
	ShaftTotal float64       `json:"shaft_total"`
	BallsTotal float64       `json:"balls_total"`
}

// GetLeaderboard returns a handler for GET /api/v1/leaderboard.
// Everything is derived on the fly: each match is re-evaluated, day totals sum
// match totals by trip team, and the tournament total sums the days. Matches
// with no scores yet contribute nothing (their all-tied 1.5/1.5 shape is a
// placeholder, not points on the board).
func GetLeaderboard(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out := LeaderboardResponse{}
		for day := 1; day <= 3; day++ {
			standing := DayStanding{Day: day}

			var ids []uuid.UUID
			if err := db.Model(&models.Match{}).Where("day = ?", day).
				Order("created_at").Pluck("id", &ids).Error; err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "failed to fetch matches",
				})
			}

			for _, id := range ids {
				in, err := loadMatchInput(db, id)
				if err != nil {
					return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
						"error": "failed to load match",
					})
				}
				result := scoring.EvaluateMatch(in)
				standing.Matches = append(standing.Matches, matchResponse(in, result))

				if result.Status == models.MatchStatusUpcoming {
					continue
				}
				shaft, balls := teamPoints(in, result)
				standing.ShaftPoints += shaft
				standing.BallsPoints += balls
			}

			out.ShaftTotal += standing.ShaftPoints
			out.BallsTotal += standing.BallsPoints
			out.Days = append(out.Days, standing)
		}
		return c.JSON(out)
	}
}

// teamPoints maps a match's side totals onto the two trip teams. Sides are
// resolved by roster membership rather than assuming side 1 is always shaft.
func teamPoints(in scoring.MatchInput, result scoring.MatchResult) (shaft, balls float64) {
	side1 := models.TeamShaft
	if len(in.Team1) > 0 {
		side1 = in.Team1[0].Team
	}
	if side1 == models.TeamShaft {
		return result.Team1Total, result.Team2Total
	}
	return result.Team2Total, result.Team1Total
}

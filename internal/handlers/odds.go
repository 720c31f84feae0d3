package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dmoran14/buddies-cup/internal/models"
	"github.com/dmoran14/buddies-cup/internal/odds"
	"github.com/dmoran14/buddies-cup/internal/scoring"
)

// LineResponse decorates an odds.Line with the display strings the UI shows
// next to each name ("+130", "-150", "EVEN").
type LineResponse struct {
	odds.Line
	ADisplay string `json:"a_display"`
	BDisplay string `json:"b_display"`
}

func lineResponse(line odds.Line) LineResponse {
	return LineResponse{
		Line:     line,
		ADisplay: odds.FormatMoneyline(line.AMoneyline),
		BDisplay: odds.FormatMoneyline(line.BMoneyline),
	}
}

// GetMatchupOdds returns a handler for GET /api/v1/odds/matchup.
// Query: hcp_a, hcp_b (playing handicaps). Straight table lookup with
// nearest-neighbor snapping — the pre-match line for a singles matchup.
func GetMatchupOdds() fiber.Handler {
	return func(c *fiber.Ctx) error {
		hcpA, hcpB := c.QueryInt("hcp_a", -1), c.QueryInt("hcp_b", -1)
		if hcpA < 0 || hcpB < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "hcp_a and hcp_b are required",
			})
		}
		oddsQuotes.WithLabelValues("matchup").Inc()
		return c.JSON(lineResponse(odds.Matchup(hcpA, hcpB)))
	}
}

// GetTeamOdds returns a handler for GET /api/v1/odds/team.
// Query: a1, a2, b1, b2 — the four playing handicaps of a best-ball matchup.
// Each side collapses to its effective handicap (60/40 toward the stronger
// player) and is priced on the smooth curve, since effective handicaps rarely
// land on simulated values.
func GetTeamOdds() fiber.Handler {
	return func(c *fiber.Ctx) error {
		a1, a2 := c.QueryInt("a1", -1), c.QueryInt("a2", -1)
		b1, b2 := c.QueryInt("b1", -1), c.QueryInt("b2", -1)
		if a1 < 0 || a2 < 0 || b1 < 0 || b2 < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "a1, a2, b1, b2 are required",
			})
		}
		effA := odds.TeamEffectiveHandicap(a1, a2)
		effB := odds.TeamEffectiveHandicap(b1, b2)
		oddsQuotes.WithLabelValues("matchup").Inc()
		return c.JSON(fiber.Map{
			"effective_a": effA,
			"effective_b": effB,
			"line":        lineResponse(odds.MatchupSmooth(effA, effB)),
		})
	}
}

// GetTeaseOdds returns a handler for GET /api/v1/odds/tease.
// Query: hcp_a, hcp_b, shift (−5..+5), bet_type (front|back|overall).
// Reprices the line after shifting side A's handicap; 9-hole bet types get
// the variance regression toward even money.
func GetTeaseOdds() fiber.Handler {
	return func(c *fiber.Ctx) error {
		hcpA, hcpB := c.QueryInt("hcp_a", -1), c.QueryInt("hcp_b", -1)
		if hcpA < 0 || hcpB < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "hcp_a and hcp_b are required",
			})
		}
		shift := c.QueryInt("shift")
		if shift < -5 || shift > 5 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "shift must be between -5 and 5",
			})
		}
		betType := models.BetType(c.Query("bet_type", string(models.BetTypeOverall)))
		switch betType {
		case models.BetTypeFront, models.BetTypeBack, models.BetTypeOverall:
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "bet_type must be 'front', 'back', or 'overall'",
			})
		}
		oddsQuotes.WithLabelValues("tease").Inc()
		return c.JSON(lineResponse(odds.Tease(hcpA, hcpB, shift, betType)))
	}
}

// LiveOddsResponse is the in-round probability update for a match.
type LiveOddsResponse struct {
	BasePct     float64 `json:"base_pct"`
	LivePct     float64 `json:"live_pct"`
	Lead        int     `json:"lead"`
	HolesPlayed int     `json:"holes_played"`
}

// GetLiveOdds returns a handler for GET /api/v1/odds/live/:matchId.
// Blends the pre-match win percentage (from the sides' effective handicaps)
// with the current aggregate lead. Recomputed from scratch on every call, so
// it tracks the scoreboard exactly.
func GetLiveOdds(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		matchID, err := uuid.Parse(c.Params("matchId"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid match id",
			})
		}
		in, err := loadMatchInput(db, matchID)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "match not found",
			})
		}
		if len(in.Team1) == 0 || len(in.Team2) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "match has no rosters",
			})
		}

		basePct := odds.MatchupSmooth(sideHandicap(in.Team1), sideHandicap(in.Team2)).AWinPct
		lead, played := scoring.MatchProgress(in)
		livePct := odds.LiveWinProbability(basePct, lead, played, 18)

		oddsQuotes.WithLabelValues("live").Inc()
		return c.JSON(LiveOddsResponse{
			BasePct:     basePct,
			LivePct:     livePct,
			Lead:        lead,
			HolesPlayed: played,
		})
	}
}

// sideHandicap reduces a roster to one handicap for pricing: a single player's
// own number, or the best-ball effective handicap of the first two.
func sideHandicap(side []models.Player) int {
	if len(side) == 1 {
		return side[0].PlayingHandicap
	}
	return odds.TeamEffectiveHandicap(side[0].PlayingHandicap, side[1].PlayingHandicap)
}

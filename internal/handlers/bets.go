package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/dmoran14/buddies-cup/internal/models"
	"github.com/dmoran14/buddies-cup/internal/odds"
)

// BetRequest is the JSON body for POST /api/v1/bets. The server prices the
// line itself from the two players' handicaps and the tease — the client
// never supplies moneylines.
type BetRequest struct {
	MatchID         string `json:"match_id"`
	Side1PlayerID   string `json:"side1_player_id"`
	Side2PlayerID   string `json:"side2_player_id"`
	Amount          string `json:"amount"` // Decimal string, e.g. "25.00"
	BetType         string `json:"bet_type"`
	TeaseAdjustment int    `json:"tease_adjustment"`
}

// BetResponse echoes a bet with its locked-in terms and display strings.
type BetResponse struct {
	ID              string           `json:"id"`
	MatchID         string           `json:"match_id"`
	Side1PlayerID   string           `json:"side1_player_id"`
	Side2PlayerID   string           `json:"side2_player_id"`
	Amount          decimal.Decimal  `json:"amount"`
	BetType         string           `json:"bet_type"`
	TeaseAdjustment int              `json:"tease_adjustment"`
	Side1Moneyline  int              `json:"side1_moneyline"`
	Side2Moneyline  int              `json:"side2_moneyline"`
	Side1Display    string           `json:"side1_display"`
	Side2Display    string           `json:"side2_display"`
	Status          string           `json:"status"`
	WinnerPlayerID  *string          `json:"winner_player_id,omitempty"`
	Payout          *decimal.Decimal `json:"payout,omitempty"`
}

func betResponse(b models.Bet) BetResponse {
	out := BetResponse{
		ID:              b.ID.String(),
		MatchID:         b.MatchID.String(),
		Side1PlayerID:   b.Side1PlayerID.String(),
		Side2PlayerID:   b.Side2PlayerID.String(),
		Amount:          b.Amount,
		BetType:         string(b.BetType),
		TeaseAdjustment: b.TeaseAdjustment,
		Side1Moneyline:  b.Side1Moneyline,
		Side2Moneyline:  b.Side2Moneyline,
		Side1Display:    odds.FormatMoneyline(b.Side1Moneyline),
		Side2Display:    odds.FormatMoneyline(b.Side2Moneyline),
		Status:          string(b.Status),
	}
	if b.WinnerPlayerID != nil {
		id := b.WinnerPlayerID.String()
		out.WinnerPlayerID = &id
		payout := winnings(b)
		out.Payout = &payout
	}
	return out
}

// winnings computes what the loser owes on a settled bet: at negative odds the
// winner staked |ml| to win 100, at positive odds 100 to win ml — scaled to
// the actual stake.
func winnings(b models.Bet) decimal.Decimal {
	ml := b.Side1Moneyline
	if b.WinnerPlayerID != nil && *b.WinnerPlayerID == b.Side2PlayerID {
		ml = b.Side2Moneyline
	}
	if ml < 0 {
		return b.Amount.Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(-ml))).Round(2)
	}
	return b.Amount.Mul(decimal.NewFromInt(int64(ml))).
		Div(decimal.NewFromInt(100)).Round(2)
}

// GetBets returns a handler for GET /api/v1/bets, optionally ?match_id=.
func GetBets(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := db.Order("created_at")
		if raw := c.Query("match_id"); raw != "" {
			matchID, err := uuid.Parse(raw)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "invalid match id",
				})
			}
			query = query.Where("match_id = ?", matchID)
		}
		var bets []models.Bet
		if err := query.Find(&bets).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch bets",
			})
		}
		out := make([]BetResponse, 0, len(bets))
		for _, b := range bets {
			out = append(out, betResponse(b))
		}
		return c.JSON(out)
	}
}

// CreateBet returns a handler for POST /api/v1/bets.
// Looks up both players' handicaps, prices the (possibly teased) line, and
// stores the quoted moneylines with the bet so later table changes can't
// reprice agreed terms.
func CreateBet(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req BetRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}

		matchID, err := uuid.Parse(req.MatchID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid match id",
			})
		}
		side1ID, err := uuid.Parse(req.Side1PlayerID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid side1 player id",
			})
		}
		side2ID, err := uuid.Parse(req.Side2PlayerID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid side2 player id",
			})
		}
		if side1ID == side2ID {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "a bet needs two different players",
			})
		}
		amount, err := decimal.NewFromString(req.Amount)
		if err != nil || !amount.IsPositive() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "amount must be a positive decimal",
			})
		}
		betType := models.BetType(req.BetType)
		switch betType {
		case models.BetTypeFront, models.BetTypeBack, models.BetTypeOverall:
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "bet_type must be 'front', 'back', or 'overall'",
			})
		}
		if req.TeaseAdjustment < -5 || req.TeaseAdjustment > 5 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "tease_adjustment must be between -5 and 5",
			})
		}

		var match models.Match
		if err := db.First(&match, "id = ?", matchID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "match not found",
			})
		}
		var side1, side2 models.Player
		if err := db.First(&side1, "id = ?", side1ID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "side1 player not found",
			})
		}
		if err := db.First(&side2, "id = ?", side2ID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "side2 player not found",
			})
		}

		line := odds.Tease(side1.PlayingHandicap, side2.PlayingHandicap,
			req.TeaseAdjustment, betType)

		bet := models.Bet{
			MatchID:         matchID,
			Side1PlayerID:   side1ID,
			Side2PlayerID:   side2ID,
			Amount:          amount,
			BetType:         betType,
			TeaseAdjustment: req.TeaseAdjustment,
			Side1Moneyline:  line.AMoneyline,
			Side2Moneyline:  line.BMoneyline,
		}
		if err := db.Create(&bet).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to create bet",
			})
		}
		return c.Status(fiber.StatusCreated).JSON(betResponse(bet))
	}
}

// SettleBet returns a handler for PUT /api/v1/bets/:id/settle (admin only).
// Body: {"winner_player_id": "..."} to settle, or {"void": true} to void.
// The response includes the payout owed; actually moving money stays between
// the players.
func SettleBet(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid bet id",
			})
		}
		var req struct {
			WinnerPlayerID string `json:"winner_player_id"`
			Void           bool   `json:"void"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}

		var bet models.Bet
		if err := db.First(&bet, "id = ?", id).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "bet not found",
			})
		}
		if bet.Status != models.BetStatusOpen {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "bet is already settled",
			})
		}

		if req.Void {
			bet.Status = models.BetStatusVoided
		} else {
			winnerID, err := uuid.Parse(req.WinnerPlayerID)
			if err != nil || (winnerID != bet.Side1PlayerID && winnerID != bet.Side2PlayerID) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "winner must be one of the bet's players",
				})
			}
			bet.Status = models.BetStatusSettled
			bet.WinnerPlayerID = &winnerID
		}

		if err := db.Save(&bet).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to settle bet",
			})
		}
		return c.JSON(betResponse(bet))
	}
}

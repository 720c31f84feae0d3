package handlers

import (
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/dmoran14/buddies-cup/internal/scoring"
)

// SkinsPayout is one player's skins winnings on one track, priced when the
// caller supplies a per-skin dollar value.
type SkinsPayout struct {
	PlayerID string          `json:"player_id"`
	Skins    int             `json:"skins"`
	Amount   decimal.Decimal `json:"amount"`
}

// SkinsResponse wraps the evaluated day with optional dollar payouts.
type SkinsResponse struct {
	scoring.SkinsSummary
	GrossPayouts []SkinsPayout `json:"gross_payouts,omitempty"`
	NetPayouts   []SkinsPayout `json:"net_payouts,omitempty"`
}

// GetSkins returns a handler for GET /api/v1/skins/:day.
// Skins are tournament-day scope: every player's scores from every match that
// day compete on every hole. Optional ?value=25 prices each skin at $25 and
// adds payout lines.
func GetSkins(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		day, err := c.ParamsInt("day")
		if err != nil || day < 1 || day > 3 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "day must be 1, 2, or 3",
			})
		}

		snap, err := loadDaySnapshot(db, day)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "no course configured for that day",
			})
		}
		summary := scoring.EvaluateSkins(snap.Players, snap.Scores, snap.Course)
		out := SkinsResponse{SkinsSummary: summary}

		if raw := c.Query("value"); raw != "" {
			value, err := decimal.NewFromString(raw)
			if err != nil || value.IsNegative() {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "value must be a non-negative amount",
				})
			}
			out.GrossPayouts = payouts(summary.GrossWon, value)
			out.NetPayouts = payouts(summary.NetWon, value)
		}
		return c.JSON(out)
	}
}

// payouts prices a winnings map at a per-skin value, in a stable order so the
// same standings always serialize identically.
func payouts(won map[uuid.UUID]int, value decimal.Decimal) []SkinsPayout {
	ids := make([]uuid.UUID, 0, len(won))
	for id := range won {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	out := make([]SkinsPayout, 0, len(ids))
	for _, id := range ids {
		out = append(out, SkinsPayout{
			PlayerID: id.String(),
			Skins:    won[id],
			Amount:   value.Mul(decimal.NewFromInt(int64(won[id]))),
		})
	}
	return out
}
